package punkui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by hierarchy construction and lookup.
var (
	// ErrNotFound reports a path that does not address any widget.
	ErrNotFound = errors.New("punkui: widget not found")
	// ErrDuplicate reports a sibling with the same name already exists.
	ErrDuplicate = errors.New("punkui: duplicate widget name")
	// ErrInvalidName reports a name using the reserved '#' prefix.
	ErrInvalidName = errors.New("punkui: invalid widget name")
)

// baseDepth is the depth of the hierarchy root. Every level adds one, so
// main_menu sits at 101 and main_menu/board at 102.
const baseDepth = 100

// namelessPrefix marks generated names of nameless widgets. Nameless widgets
// only group layout and are skipped when resolving public paths.
const namelessPrefix = "#"

// Hierarchy is the layout tree. It owns the root extents (usually the window
// size) and resolves every widget's rectangle from its Layout.
//
// Paths are slash separated widget names, e.g. "main_menu/board/logo".
// Nameless widgets are transparent: a widget under board/<nameless>/logo is
// addressed as "board/logo".
type Hierarchy struct {
	name          string
	width, height float64
	root          *Widget
	nameless      int
	dirty         bool
}

// NewHierarchy creates an empty hierarchy with the given root extents.
func NewHierarchy(name string, width, height float64) *Hierarchy {
	h := &Hierarchy{name: name, width: width, height: height, dirty: true}
	h.root = &Widget{
		name:    name,
		h:       h,
		visible: true,
		depth:   baseDepth,
		layout:  FullLayout(),
	}
	return h
}

// Name returns the hierarchy name.
func (h *Hierarchy) Name() string {
	return h.name
}

// Extents returns the root width and height.
func (h *Hierarchy) Extents() Vec2 {
	return Vec2{h.width, h.height}
}

// SetExtents resizes the root. Rectangles are recomputed on the next lookup.
func (h *Hierarchy) SetExtents(width, height float64) {
	if h.width == width && h.height == height {
		return
	}
	h.width = width
	h.height = height
	h.dirty = true
}

// Root returns the root widget.
func (h *Hierarchy) Root() *Widget {
	return h.root
}

// Create adds a widget at path. The last path segment is the new widget's
// name; an empty last segment ("board/" or "") creates a nameless widget.
// The parent must already exist. Widgets created directly under the root
// start hidden, all others start visible.
func (h *Hierarchy) Create(path string, layout Layout) (*Widget, error) {
	parentPath, name := splitLast(path)
	if strings.HasPrefix(name, namelessPrefix) {
		return nil, fmt.Errorf("punkui: create %q: %w", path, ErrInvalidName)
	}
	parent, err := h.Widget(parentPath)
	if err != nil {
		return nil, fmt.Errorf("punkui: create %q: %w", path, err)
	}
	if name == "" {
		name = namelessPrefix + strconv.Itoa(h.nameless)
		h.nameless++
	} else if parent.child(name) != nil {
		return nil, fmt.Errorf("punkui: create %q: %w", path, ErrDuplicate)
	}

	w := &Widget{
		name:    name,
		h:       h,
		parent:  parent,
		layout:  layout,
		visible: parent != h.root,
		level:   parent.level + 1,
	}
	w.depth = baseDepth + float64(w.level)
	parent.children = append(parent.children, w)
	h.dirty = true
	return w, nil
}

// Widget returns the widget at path. The empty path addresses the root.
func (h *Hierarchy) Widget(path string) (*Widget, error) {
	w := h.root
	if path == "" {
		return w, nil
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		next := w.find(seg)
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		w = next
	}
	return w, nil
}

// Lookup implements Tree. It resolves pending layout changes before
// returning the node.
func (h *Hierarchy) Lookup(path string) (LayoutNode, error) {
	w, err := h.Widget(path)
	if err != nil {
		return nil, err
	}
	h.ensureComputed()
	return w, nil
}

// Remove detaches the widget at path and its subtree.
func (h *Hierarchy) Remove(path string) error {
	w, err := h.Widget(path)
	if err != nil {
		return err
	}
	if w == h.root {
		return fmt.Errorf("punkui: remove root: %w", ErrInvalidName)
	}
	p := w.parent
	for i, c := range p.children {
		if c == w {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			break
		}
	}
	w.parent = nil
	h.dirty = true
	return nil
}

// Compute resolves every widget rectangle top-down from the root extents.
func (h *Hierarchy) Compute() {
	h.root.rect = Rect{Width: h.width, Height: h.height}
	for _, c := range h.root.children {
		computeWidget(c, h.root.rect)
	}
	h.dirty = false
}

func (h *Hierarchy) ensureComputed() {
	if h.dirty {
		h.Compute()
	}
}

// Contains reports whether the layout-space point p lies inside the widget
// at path and the widget is visible.
func (h *Hierarchy) Contains(path string, p Vec2) (bool, error) {
	w, err := h.Widget(path)
	if err != nil {
		return false, err
	}
	return w.Visible() && w.Rect().Contains(p.X, p.Y), nil
}

// Walk visits widgets depth-first, parents before children. Returning false
// from fn skips the widget's subtree.
func (h *Hierarchy) Walk(fn func(w *Widget) bool) {
	h.ensureComputed()
	walkWidget(h.root, fn)
}

func walkWidget(w *Widget, fn func(w *Widget) bool) {
	if !fn(w) {
		return
	}
	for _, c := range w.children {
		walkWidget(c, fn)
	}
}

func computeWidget(w *Widget, parent Rect) {
	if w.layout != nil {
		w.rect = w.layout.Compute(parent)
	} else {
		w.rect = parent
	}
	for _, c := range w.children {
		computeWidget(c, w.rect)
	}
}

// Widget is a node of the layout tree. It implements LayoutNode.
type Widget struct {
	name     string
	h        *Hierarchy
	parent   *Widget
	children []*Widget

	layout  Layout
	rect    Rect
	visible bool
	depth   float64
	level   int
	data    map[string]float64
}

// Name returns the widget name. Nameless widgets return their generated
// "#n" name.
func (w *Widget) Name() string {
	return w.name
}

// IsNameless reports whether the widget was created without a name.
func (w *Widget) IsNameless() bool {
	return strings.HasPrefix(w.name, namelessPrefix)
}

// Path returns the public path of the widget, omitting nameless ancestors.
func (w *Widget) Path() string {
	var segs []string
	for p := w; p != nil && p.parent != nil; p = p.parent {
		if !p.IsNameless() {
			segs = append(segs, p.name)
		}
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, "/")
}

// FullPath is like Path but keeps generated nameless names, so it addresses
// the widget exactly even when a nameless sibling holds a widget of the same
// name.
func (w *Widget) FullPath() string {
	var segs []string
	for p := w; p != nil && p.parent != nil; p = p.parent {
		segs = append(segs, p.name)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, "/")
}

// End returns the path of a child named name. Pass "" to address a new
// nameless child.
func (w *Widget) End(name string) string {
	return joinPath(w.FullPath(), name)
}

// Parent returns the parent widget, or nil for the root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (w *Widget) Children() []*Widget {
	return w.children
}

// Level returns the number of edges between the widget and the root.
func (w *Widget) Level() int {
	return w.level
}

// Layout returns the widget's layout.
func (w *Widget) Layout() Layout {
	return w.layout
}

// SetLayout replaces the widget's layout.
func (w *Widget) SetLayout(l Layout) {
	w.layout = l
	w.h.dirty = true
}

// Rect returns the resolved rectangle in the hierarchy's Y-down space.
func (w *Widget) Rect() Rect {
	w.h.ensureComputed()
	return w.rect
}

// Visible reports whether the widget and all of its ancestors are visible.
func (w *Widget) Visible() bool {
	for p := w; p != nil; p = p.parent {
		if !p.visible {
			return false
		}
	}
	return true
}

// SetVisible sets the widget's own visibility flag.
func (w *Widget) SetVisible(v bool) {
	w.visible = v
}

// Depth returns the widget depth. Defaults to 100 + level.
func (w *Widget) Depth() float64 {
	return w.depth
}

// SetDepth overrides the widget depth.
func (w *Widget) SetDepth(d float64) {
	w.depth = d
}

// Data returns a named float slot, or 0 if unset.
func (w *Widget) Data(key string) float64 {
	return w.data[key]
}

// SetData stores a named float slot on the widget. Effects read these slots
// to drive hover animations.
func (w *Widget) SetData(key string, v float64) {
	if w.data == nil {
		w.data = make(map[string]float64)
	}
	w.data[key] = v
}

func (w *Widget) child(name string) *Widget {
	for _, c := range w.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// find resolves one path segment: a direct child first, then the nearest
// match below nameless children.
func (w *Widget) find(seg string) *Widget {
	if c := w.child(seg); c != nil {
		return c
	}
	if strings.HasPrefix(seg, namelessPrefix) {
		return nil
	}
	queue := make([]*Widget, 0, len(w.children))
	for _, c := range w.children {
		if c.IsNameless() {
			queue = append(queue, c)
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if c := n.child(seg); c != nil {
			return c
		}
		for _, c := range n.children {
			if c.IsNameless() {
				queue = append(queue, c)
			}
		}
	}
	return nil
}

func splitLast(path string) (parent, name string) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
