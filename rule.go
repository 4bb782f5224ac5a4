package punkui

import "math"

// ScaleMode is the scale policy of an ElementRule, selected from which
// percent fields are set.
type ScaleMode uint8

const (
	ScaleFixed        ScaleMode = iota // width and height percents scale each axis independently
	ScaleWidthDriven                   // width percent drives a uniform scale
	ScaleHeightDriven                  // height percent drives a uniform scale
	ScaleFit                           // uniform scale fitting the boundary inside the node
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleFixed:
		return "fixed"
	case ScaleWidthDriven:
		return "width"
	case ScaleHeightDriven:
		return "height"
	case ScaleFit:
		return "fit"
	default:
		return "unknown"
	}
}

// ElementRule declares how a visual element maps onto its widget's
// rectangle.
//
// Boundary is the element's own reference size (an image's pixel size or a
// text block's measured size). Width and Height, when set, are the percent
// of the widget the boundary should span. Scale is an extra percent applied
// on top (100 = none). Relative is the anchor point inside the widget in
// percent, measured right and down from the top-left corner. Depth is added
// to the widget depth so elements sharing a widget can be ordered.
type ElementRule struct {
	Width    *float64
	Height   *float64
	Boundary Vec2
	Scale    float64
	Relative Vec2
	Depth    float64
}

// DefaultRule returns a fit rule with no extra scaling anchored at the
// widget's top-left corner.
func DefaultRule() ElementRule {
	return ElementRule{Scale: 100}
}

// Percent returns a pointer to v for the optional percent fields.
func Percent(v float64) *float64 {
	return &v
}

// Policy returns the scale mode selected by the set percent fields.
func (r ElementRule) Policy() ScaleMode {
	switch {
	case r.Width != nil && r.Height != nil:
		return ScaleFixed
	case r.Width != nil:
		return ScaleWidthDriven
	case r.Height != nil:
		return ScaleHeightDriven
	default:
		return ScaleFit
	}
}

// ScaleFor returns the element scale for a widget of the given size. A zero
// boundary dimension yields an infinite or NaN scale.
func (r ElementRule) ScaleFor(size Vec2) Vec2 {
	k := r.Scale / 100
	switch r.Policy() {
	case ScaleFixed:
		return Vec2{
			X: (size.X / r.Boundary.X) * (*r.Width / 100) * k,
			Y: (size.Y / r.Boundary.Y) * (*r.Height / 100) * k,
		}
	case ScaleWidthDriven:
		s := (size.X / r.Boundary.X) * (*r.Width / 100) * k
		return Vec2{s, s}
	case ScaleHeightDriven:
		s := (size.Y / r.Boundary.Y) * (*r.Height / 100) * k
		return Vec2{s, s}
	default:
		s := math.Min(size.X/r.Boundary.X, size.Y/r.Boundary.Y) * k
		return Vec2{s, s}
	}
}

// At returns a copy of r anchored at (x, y) percent of the widget.
func (r ElementRule) At(x, y float64) ElementRule {
	r.Relative = Vec2{x, y}
	return r
}

// Scaled returns a copy of r with the extra scale percent set.
func (r ElementRule) Scaled(pct float64) ElementRule {
	r.Scale = pct
	return r
}

// WithWidth returns a copy of r with the width percent set.
func (r ElementRule) WithWidth(pct float64) ElementRule {
	r.Width = Percent(pct)
	return r
}

// WithHeight returns a copy of r with the height percent set.
func (r ElementRule) WithHeight(pct float64) ElementRule {
	r.Height = Percent(pct)
	return r
}

// WithDepth returns a copy of r with the depth bias set.
func (r ElementRule) WithDepth(bias float64) ElementRule {
	r.Depth = bias
	return r
}
