package punkui

import "errors"

// Projection failures. They are always recovered into the Offscreen
// placement; the Project* functions return them for logging only.
var (
	// ErrInvisible reports a widget that exists but is hidden.
	ErrInvisible = errors.New("punkui: widget not visible")
	// ErrAssetMissing reports an image element with no usable native size.
	ErrAssetMissing = errors.New("punkui: image asset missing")
)

// Tree is the layout service the projector reads from.
type Tree interface {
	// Extents returns the root width and height.
	Extents() Vec2
	// Lookup returns the node at path, or an error wrapping ErrNotFound.
	Lookup(path string) (LayoutNode, error)
}

// LayoutNode is a resolved node of a Tree.
type LayoutNode interface {
	// Rect returns the node rectangle with Y growing downward.
	Rect() Rect
	Visible() bool
	Depth() float64
}

// OffscreenPosition is where hidden or unresolved elements are parked.
var OffscreenPosition = Vec2{-10000, -10000}

// Placement is the projected transform of one element for one pass.
// Position is in a space centered on the root with Y growing upward.
type Placement struct {
	Position Vec2
	Scale    Vec2
	Depth    float64
	Visible  bool
	// Size is the resolved widget size in layout units.
	Size Vec2
}

// Offscreen is the placement of elements whose widget is missing, hidden,
// or whose image has no size.
var Offscreen = Placement{Position: OffscreenPosition}

// anchorOffset moves the layout origin to the root center.
func anchorOffset(extents Vec2) Vec2 {
	return Vec2{-extents.X / 2, extents.Y / 2}
}

// project looks up path and returns the flipped node rectangle with the
// anchor offset and the node depth.
func project(t Tree, path string) (flipped Rect, offset Vec2, depth float64, err error) {
	node, err := t.Lookup(path)
	if err != nil {
		return Rect{}, Vec2{}, 0, err
	}
	if !node.Visible() {
		return Rect{}, Vec2{}, 0, ErrInvisible
	}
	ext := t.Extents()
	return node.Rect().InvertY(ext.Y), anchorOffset(ext), node.Depth(), nil
}

// ProjectPlain places an element at its widget's top-left corner with unit
// scale and the widget's depth.
func ProjectPlain(t Tree, path string) (Placement, error) {
	r, off, depth, err := project(t, path)
	if err != nil {
		return Offscreen, err
	}
	return Placement{
		Position: Vec2{r.X + off.X, r.Y + off.Y},
		Scale:    Vec2{1, 1},
		Depth:    depth,
		Visible:  true,
		Size:     r.Size(),
	}, nil
}

// ProjectImage is ProjectPlain with the scale stretching an image of the
// given native pixel size over the whole widget.
func ProjectImage(t Tree, path string, native Vec2) (Placement, error) {
	p, err := ProjectPlain(t, path)
	if err != nil {
		return p, err
	}
	if native.X <= 0 || native.Y <= 0 {
		return Offscreen, ErrAssetMissing
	}
	p.Scale = Vec2{p.Size.X / native.X, p.Size.Y / native.Y}
	return p, nil
}

// ProjectRule places an element at rule.Relative inside its widget, scales
// it per the rule's policy, and adds the rule's depth bias.
func ProjectRule(t Tree, path string, rule ElementRule) (Placement, error) {
	r, off, depth, err := project(t, path)
	if err != nil {
		return Offscreen, err
	}
	pos := r.PointInverted(rule.Relative)
	return Placement{
		Position: pos.Add(off),
		Scale:    rule.ScaleFor(r.Size()),
		Depth:    depth + rule.Depth,
		Visible:  true,
		Size:     r.Size(),
	}, nil
}

// ResolvePlain is ProjectPlain without the recovered error.
func ResolvePlain(t Tree, path string) Placement {
	p, _ := ProjectPlain(t, path)
	return p
}

// ResolveImage is ProjectImage without the recovered error.
func ResolveImage(t Tree, path string, native Vec2) Placement {
	p, _ := ProjectImage(t, path, native)
	return p
}

// ResolveWithRule is ProjectRule without the recovered error.
func ResolveWithRule(t Tree, path string, rule ElementRule) Placement {
	p, _ := ProjectRule(t, path, rule)
	return p
}

// Unproject maps a point from the projected space back to the tree's Y-down
// layout space.
func Unproject(t Tree, p Vec2) Vec2 {
	ext := t.Extents()
	off := anchorOffset(ext)
	return Vec2{p.X - off.X, ext.Y - (p.Y - off.Y)}
}

// ProjectPoint maps a layout-space point into the projected space.
func ProjectPoint(t Tree, p Vec2) Vec2 {
	ext := t.Extents()
	off := anchorOffset(ext)
	return Vec2{p.X + off.X, ext.Y - p.Y + off.Y}
}
