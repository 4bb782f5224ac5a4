package punkui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerContext is passed to widget pointer callbacks.
type PointerContext struct {
	// Path is the widget path the callback was registered for.
	Path string
	// X and Y are the pointer position in layout space (Y down).
	X, Y   float64
	Button MouseButton
}

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	x, y    float64
	button  MouseButton // button captured at press time
	pressed map[string]bool
	hovered map[string]bool
}

// --- Handler registry ---

type pointerHandler struct {
	id   uint32
	path string
	fn   func(PointerContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	hover        []pointerHandler
	click        []pointerHandler
	nextID       uint32
}

// eventHover is an internal registry slot; hover callbacks fire every frame
// and are not forwarded to the EntityStore.
const eventHover EventType = 255

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if list := h.reg.list(h.event); list != nil {
		*list = removePointerHandler(*list, h.id)
	}
}

func (r *handlerRegistry) list(event EventType) *[]pointerHandler {
	switch event {
	case EventPointerDown:
		return &r.pointerDown
	case EventPointerUp:
		return &r.pointerUp
	case EventPointerEnter:
		return &r.pointerEnter
	case EventPointerLeave:
		return &r.pointerLeave
	case EventClick:
		return &r.click
	case eventHover:
		return &r.hover
	}
	return nil
}

func (r *handlerRegistry) add(event EventType, path string, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	list := r.list(event)
	*list = append(*list, pointerHandler{id: r.nextID, path: path, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// clear drops every handler whose path starts with prefix.
func (r *handlerRegistry) clear(prefix string) {
	for _, event := range []EventType{EventPointerDown, EventPointerUp, EventPointerEnter, EventPointerLeave, EventClick, eventHover} {
		list := r.list(event)
		kept := (*list)[:0]
		for _, h := range *list {
			if !pathHasPrefix(h.path, prefix) {
				kept = append(kept, h)
			}
		}
		clear((*list)[len(kept):])
		*list = kept
	}
}

// paths returns the distinct widget paths with at least one handler.
func (r *handlerRegistry) paths() []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range [][]pointerHandler{r.pointerDown, r.pointerUp, r.pointerEnter, r.pointerLeave, r.click, r.hover} {
		for _, h := range list {
			if !seen[h.path] {
				seen[h.path] = true
				out = append(out, h.path)
			}
		}
	}
	return out
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Widget event registration ---

// OnClick registers a callback fired when a press and the following release
// both happen over the widget at path.
func (s *Scene) OnClick(path string, fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventClick, path, fn)
}

// OnHover registers a callback fired on every update while the pointer is
// over the visible widget at path.
func (s *Scene) OnHover(path string, fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(eventHover, path, fn)
}

// OnPointerEnter registers a callback fired when the pointer enters the widget.
func (s *Scene) OnPointerEnter(path string, fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerEnter, path, fn)
}

// OnPointerLeave registers a callback fired when the pointer leaves the widget.
func (s *Scene) OnPointerLeave(path string, fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerLeave, path, fn)
}

// OnPointerDown registers a callback fired when a button is pressed over the widget.
func (s *Scene) OnPointerDown(path string, fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerDown, path, fn)
}

// OnPointerUp registers a callback fired when a button is released over the widget.
func (s *Scene) OnPointerUp(path string, fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerUp, path, fn)
}

// ClearHandlers removes every callback registered for prefix or a widget
// below it.
func (s *Scene) ClearHandlers(prefix string) {
	s.handlers.clear(prefix)
	for p := range s.pointer.hovered {
		if pathHasPrefix(p, prefix) {
			delete(s.pointer.hovered, p)
		}
	}
	for p := range s.pointer.pressed {
		if pathHasPrefix(p, prefix) {
			delete(s.pointer.pressed, p)
		}
	}
}

// CursorPosition returns the last pointer position in layout space.
func (s *Scene) CursorPosition() Vec2 {
	return Vec2{s.pointer.x, s.pointer.y}
}

// HitWidget reports whether the pointer is over the visible widget at path.
func (s *Scene) HitWidget(path string) bool {
	ok, err := s.tree.Contains(path, s.CursorPosition())
	return err == nil && ok
}

// --- Input processing ---

// processInput is called from Scene.Update to feed one pointer sample through
// the state machine. Injected events take priority over the real mouse,
// which is only polled while the game loop runs. Without either, the last
// sample is repeated so hover callbacks keep firing.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.liveInput {
		s.processPointer(s.pointer.x, s.pointer.y, s.pointer.down, s.pointer.button)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.SetDebugMode(!s.debug)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		s.Screenshot("manual")
	}
	s.processMousePointer()
}

// processMousePointer handles real mouse input.
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the stored button to avoid
	// changing mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}

	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the pointer state machine for one sample.
func (s *Scene) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	ps.x, ps.y = x, y
	if ps.hovered == nil {
		ps.hovered = make(map[string]bool)
		ps.pressed = make(map[string]bool)
	}
	if ps.down {
		button = ps.button
	}

	paths := s.handlers.paths()
	over := make(map[string]bool, len(paths))
	for _, path := range paths {
		if s.HitWidget(path) {
			over[path] = true
		}
	}

	// Enter and leave when the hovered set changes.
	for _, path := range paths {
		switch {
		case ps.hovered[path] && !over[path]:
			delete(ps.hovered, path)
			s.fire(EventPointerLeave, path, button)
		case over[path] && !ps.hovered[path]:
			ps.hovered[path] = true
			s.fire(EventPointerEnter, path, button)
		}
	}
	for _, path := range paths {
		if over[path] {
			s.fire(eventHover, path, button)
		}
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		clear(ps.pressed)
		for _, path := range paths {
			if over[path] {
				ps.pressed[path] = true
				s.fire(EventPointerDown, path, button)
			}
		}
	case !pressed && ps.down:
		ps.down = false
		for _, path := range paths {
			if !over[path] {
				continue
			}
			s.fire(EventPointerUp, path, button)
			if ps.pressed[path] {
				s.fire(EventClick, path, button)
			}
		}
		clear(ps.pressed)
	}
	s.updateCursorIcon(over)
}

// fire calls every handler registered for event on path and forwards the
// event to the EntityStore.
func (s *Scene) fire(event EventType, path string, button MouseButton) {
	ctx := PointerContext{Path: path, X: s.pointer.x, Y: s.pointer.y, Button: button}
	// Handlers may unregister themselves; iterate over a snapshot.
	list := append([]pointerHandler(nil), *s.handlers.list(event)...)
	for _, h := range list {
		if h.path == path {
			h.fn(ctx)
		}
	}
	if s.store != nil && event != eventHover {
		s.store.EmitEvent(InteractionEvent{
			Type:   event,
			Path:   path,
			X:      ctx.X,
			Y:      ctx.Y,
			Button: button,
		})
	}
}
