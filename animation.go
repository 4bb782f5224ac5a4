package punkui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor, TweenAlpha) and either call Update(dt) each frame or hand it to
// Scene.AddTween. The group auto-applies values and marks the node dirty. If
// the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
	// OnDone, when set, runs once after the last field reaches its target.
	OnDone func()
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
	if g.Done && g.OnDone != nil {
		g.OnDone()
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenColor creates a TweenGroup that animates all four components of
// node.Color (R, G, B, A) to the target color over the specified duration.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &node.Color.R
	g.fields[1] = &node.Color.G
	g.fields[2] = &node.Color.B
	g.fields[3] = &node.Color.A
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// TweenValue creates a TweenGroup animating an arbitrary field. It is not
// tied to a node and never stops early.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// --- Widget effects ---

// Effect is advanced once per Scene.Update, after tweens and before layout.
type Effect interface {
	Update(s *Scene, dt float64)
}

// Hover slider data keys written by hover handlers and read by effects.
const (
	KeyColorHighlight = "color_highlight_effect_slider"
	KeyAnimateWidget  = "animate_widget_effect_slider"
)

// eased maps a slider value in [0, 1] through fn. A nil fn is linear.
func eased(fn ease.TweenFunc, t float64) float64 {
	t = clamp01(t)
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// Slider decays a widget data slot back to zero at 1/Duration per second.
// Hover handlers raise the slot to 1 on every frame the pointer is over the
// widget, so the slot falls off smoothly once the pointer leaves.
type Slider struct {
	Path     string
	Key      string
	Duration float64
}

// Update implements Effect.
func (sl *Slider) Update(s *Scene, dt float64) {
	w, err := s.tree.Widget(sl.Path)
	if err != nil {
		return
	}
	v := w.Data(sl.Key)
	if v <= 0 {
		return
	}
	step := 1.0
	if sl.Duration > 0 {
		step = dt / sl.Duration
	}
	w.SetData(sl.Key, math.Max(0, v-step))
}

// ColorHighlight lerps a node's color between From and To by a widget slider.
type ColorHighlight struct {
	Node     *Node
	Path     string
	Key      string
	From, To Color
	Ease     ease.TweenFunc
}

// Update implements Effect.
func (c *ColorHighlight) Update(s *Scene, _ float64) {
	w, err := s.tree.Widget(c.Path)
	if err != nil {
		return
	}
	c.Node.Color = c.From.Lerp(c.To, eased(c.Ease, w.Data(c.Key)))
}

// AnimateWidget shifts a widget's layout by From..To percent of its parent,
// driven by a widget slider.
type AnimateWidget struct {
	Path     string
	Key      string
	From, To Vec2
	Ease     ease.TweenFunc

	base   Layout
	target *Widget
}

// Update implements Effect.
func (a *AnimateWidget) Update(s *Scene, _ float64) {
	w, err := s.tree.Widget(a.Path)
	if err != nil {
		return
	}
	if a.target != w {
		a.target = w
		a.base = w.Layout()
	}
	t := eased(a.Ease, w.Data(a.Key))
	w.SetLayout(offsetLayout(a.base, a.From.Lerp(a.To, t)))
}

// SmoothWiggle sways a widget around its layout position. Speed is in
// radians per second per axis, Amplitude in percent of the parent. The
// offset stays within [-2*Amplitude, 0] so an oversized background keeps
// covering its parent.
type SmoothWiggle struct {
	Path      string
	Speed     Vec2
	Amplitude Vec2

	base   Layout
	target *Widget
}

// Update implements Effect.
func (e *SmoothWiggle) Update(s *Scene, _ float64) {
	w, err := s.tree.Widget(e.Path)
	if err != nil {
		return
	}
	if e.target != w {
		e.target = w
		e.base = w.Layout()
	}
	w.SetLayout(offsetLayout(e.base, e.Offset(s.Elapsed())))
}

// Offset returns the sway offset at time t in seconds.
func (e *SmoothWiggle) Offset(t float64) Vec2 {
	return Vec2{
		X: e.Amplitude.X*math.Sin(t*e.Speed.X) - e.Amplitude.X,
		Y: e.Amplitude.Y*math.Sin(t*e.Speed.Y) - e.Amplitude.Y,
	}
}

// offsetLayout moves a percent based layout by d percent. Other layouts are
// returned unchanged.
func offsetLayout(l Layout, d Vec2) Layout {
	switch l := l.(type) {
	case WindowLayout:
		l.Pos = l.Pos.Add(d)
		return l
	case RelativeLayout:
		l.P1 = l.P1.Add(d)
		l.P2 = l.P2.Add(d)
		return l
	default:
		return l
	}
}
