package punkui

import "math"

// Layout computes a widget's rectangle from its parent's resolved rectangle.
// All layouts work in the hierarchy's Y-down space.
type Layout interface {
	Compute(parent Rect) Rect
}

// RelativeLayout places a widget between two corners given in percent of the
// parent rectangle. Corners outside [0, 100] overflow the parent.
type RelativeLayout struct {
	P1, P2 Vec2
}

// FullLayout returns a RelativeLayout covering the whole parent.
func FullLayout() RelativeLayout {
	return RelativeLayout{P2: Vec2{100, 100}}
}

// Compute implements Layout.
func (l RelativeLayout) Compute(parent Rect) Rect {
	return Rect{
		X:      parent.X + parent.Width*l.P1.X/100,
		Y:      parent.Y + parent.Height*l.P1.Y/100,
		Width:  parent.Width * (l.P2.X - l.P1.X) / 100,
		Height: parent.Height * (l.P2.Y - l.P1.Y) / 100,
	}
}

// WindowLayout places a widget at Pos with the given Width and Height, all in
// percent of the parent rectangle.
type WindowLayout struct {
	Pos           Vec2
	Width, Height float64
}

// Compute implements Layout.
func (l WindowLayout) Compute(parent Rect) Rect {
	return Rect{
		X:      parent.X + parent.Width*l.Pos.X/100,
		Y:      parent.Y + parent.Height*l.Pos.Y/100,
		Width:  parent.Width * l.Width / 100,
		Height: parent.Height * l.Height / 100,
	}
}

// SolidScaling selects how a SolidLayout fits its aspect ratio into the parent.
type SolidScaling uint8

const (
	SolidFit  SolidScaling = iota // largest box fully inside the parent
	SolidFill                     // smallest box fully covering the parent
)

// SolidLayout keeps a fixed Width:Height aspect ratio. The box is scaled to
// fit or fill the parent, then slid inside the free space by AnchorX and
// AnchorY in [-1, 1] (-1 = left/top, 0 = centered, 1 = right/bottom).
type SolidLayout struct {
	Width, Height    float64
	AnchorX, AnchorY float64
	Scaling          SolidScaling
}

// Compute implements Layout. A solid layout with a non-positive dimension
// covers the parent.
func (l SolidLayout) Compute(parent Rect) Rect {
	if l.Width <= 0 || l.Height <= 0 {
		return parent
	}
	sx := parent.Width / l.Width
	sy := parent.Height / l.Height
	var s float64
	if l.Scaling == SolidFill {
		s = math.Max(sx, sy)
	} else {
		s = math.Min(sx, sy)
	}
	w := l.Width * s
	h := l.Height * s
	return Rect{
		X:      parent.X + (parent.Width-w)*(l.AnchorX+1)/2,
		Y:      parent.Y + (parent.Height-h)*(l.AnchorY+1)/2,
		Width:  w,
		Height: h,
	}
}

// Grid lays out equally sized Window cells. Cell sizes and gaps are in percent
// of the grid container. When Padding is set, the gap is also inserted before
// the first column and row.
type Grid struct {
	CellWidth, CellHeight float64
	GapX, GapY            float64
	Padding               bool
}

// Cell returns the window layout of the cell at (col, row).
func (g Grid) Cell(col, row int) WindowLayout {
	var padX, padY float64
	if g.Padding {
		padX, padY = g.GapX, g.GapY
	}
	return WindowLayout{
		Pos: Vec2{
			X: padX + float64(col)*(g.CellWidth+g.GapX),
			Y: padY + float64(row)*(g.CellHeight+g.GapY),
		},
		Width:  g.CellWidth,
		Height: g.CellHeight,
	}
}

// CreateGrid creates a nameless container under parentPath and one named
// cell per entry of names, indexed names[col][row]. It returns the container
// and the cells in the same [col][row] order.
func (g Grid) CreateGrid(h *Hierarchy, parentPath string, names [][]string) (*Widget, [][]*Widget, error) {
	container, err := h.Create(joinPath(parentPath, ""), FullLayout())
	if err != nil {
		return nil, nil, err
	}
	cells := make([][]*Widget, len(names))
	for col, column := range names {
		cells[col] = make([]*Widget, len(column))
		for row, name := range column {
			cell, err := h.Create(container.End(name), g.Cell(col, row))
			if err != nil {
				return nil, nil, err
			}
			cells[col][row] = cell
		}
	}
	return container, cells, nil
}
