package punkui

import "github.com/hajimehoshi/ebiten/v2"

// CursorIcon selects the cursor image.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota // idle pointer
	CursorPointer                   // over a clickable widget
	CursorGrab                      // button held down
)

// cursorCell maps an icon to an atlas cell and its hotspot in cell pixels.
type cursorCell struct {
	index   int
	hotspot Vec2
}

// Cursor is a software cursor drawn from a GridAtlas on top of the scene.
// The icon follows the pointer state: CursorGrab while a button is held,
// CursorPointer over widgets with a click handler, CursorDefault otherwise.
type Cursor struct {
	Atlas   *GridAtlas
	Scale   float64
	Color   Color
	Visible bool

	icon  CursorIcon
	cells map[CursorIcon]cursorCell
}

// NewCursor creates a visible cursor drawing from atlas.
func NewCursor(atlas *GridAtlas) *Cursor {
	return &Cursor{
		Atlas:   atlas,
		Scale:   1,
		Color:   ColorWhite,
		Visible: true,
		cells:   make(map[CursorIcon]cursorCell),
	}
}

// SetIndex maps icon to an atlas cell with its hotspot in cell pixels.
func (c *Cursor) SetIndex(icon CursorIcon, index int, hotspot Vec2) *Cursor {
	c.cells[icon] = cursorCell{index: index, hotspot: hotspot}
	return c
}

// Icon returns the current icon.
func (c *Cursor) Icon() CursorIcon {
	return c.icon
}

// cell returns the mapping of the current icon, falling back to the
// default icon.
func (c *Cursor) cell() (cursorCell, bool) {
	if cc, ok := c.cells[c.icon]; ok {
		return cc, true
	}
	cc, ok := c.cells[CursorDefault]
	return cc, ok
}

// drawMatrix returns the cell to screen matrix for a pointer at p.
func (c *Cursor) drawMatrix(p Vec2) [6]float64 {
	cc, _ := c.cell()
	return [6]float64{
		c.Scale, 0, 0, c.Scale,
		p.X - cc.hotspot.X*c.Scale,
		p.Y - cc.hotspot.Y*c.Scale,
	}
}

// draw renders the cursor at the scene pointer position.
func (c *Cursor) draw(screen *ebiten.Image, p Vec2) {
	if !c.Visible || c.Atlas == nil {
		return
	}
	cc, ok := c.cell()
	if !ok {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = geoM(c.drawMatrix(p))
	a := float32(clamp01(c.Color.A))
	op.ColorScale.Scale(float32(c.Color.R)*a, float32(c.Color.G)*a, float32(c.Color.B)*a, a)
	screen.DrawImage(c.Atlas.SubImage(cc.index), &op)
}

// SetCursor installs a software cursor. Pass nil to remove it.
func (s *Scene) SetCursor(c *Cursor) {
	s.cursor = c
}

// Cursor returns the installed software cursor, or nil.
func (s *Scene) Cursor() *Cursor {
	return s.cursor
}

// updateCursorIcon picks the icon for the current pointer state.
func (s *Scene) updateCursorIcon(over map[string]bool) {
	if s.cursor == nil {
		return
	}
	switch {
	case s.pointer.down:
		s.cursor.icon = CursorGrab
	case s.overClickable(over):
		s.cursor.icon = CursorPointer
	default:
		s.cursor.icon = CursorDefault
	}
}

func (s *Scene) overClickable(over map[string]bool) bool {
	for _, h := range s.handlers.click {
		if over[h.path] {
			return true
		}
	}
	return false
}
