package punkui

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorPunkYellow is the accent used by the cursor and highlighted buttons.
var ColorPunkYellow = Color{R: 1, G: 0.87, B: 0.24, A: 1}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates from c to to. t is clamped to [0, 1].
func (c Color) Lerp(to Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*c.A*255 + 0.5),
		G: uint8(clamp01(c.G)*c.A*255 + 0.5),
		B: uint8(clamp01(c.B)*c.A*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and scales
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Lerp linearly interpolates from v to to.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{v.X + (to.X-v.X)*t, v.Y + (to.Y-v.Y)*t}
}

// Rect is an axis-aligned rectangle. Layout rectangles have their origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Size returns the rectangle's extents.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width, r.Height}
}

// InvertY mirrors the rectangle's primary corner inside a layout space of the
// given height, so that Y grows upward. Width and height are unchanged.
func (r Rect) InvertY(height float64) Rect {
	r.Y = height - r.Y
	return r
}

// PointInverted returns the point at rel (percent of width and height,
// measured right and down from the primary corner) of a rectangle already
// flipped with InvertY. Moving down means decreasing Y in the flipped space.
func (r Rect) PointInverted(rel Vec2) Vec2 {
	return Vec2{
		X: r.X + r.Width*rel.X/100,
		Y: r.Y - r.Height*rel.Y/100,
	}
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders an image or a solid color quad
	NodeTypeText                      // renders a Label
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of widget interaction event.
type EventType uint8

const (
	EventPointerDown  EventType = iota // fires when a pointer button is pressed over a widget
	EventPointerUp                     // fires when a pointer button is released
	EventClick                         // fires on press then release over the same widget
	EventPointerEnter                  // fires when the pointer enters a widget's rectangle
	EventPointerLeave                  // fires when the pointer leaves a widget's rectangle
)

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
