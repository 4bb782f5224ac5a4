package punkui

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type EventType
	// Path is the public path of the widget the event targets.
	Path string
	// X and Y are the pointer position in layout space (Y down).
	X, Y   float64
	Button MouseButton
}

// ErrExit is returned from Scene.Update once RequestExit has been called.
// Run treats it as a normal shutdown.
var ErrExit = errors.New("punkui: exit requested")

const defaultCommandCap = 256

// elementBinding ties a node to a widget through a scaling rule.
type elementBinding struct {
	node *Node
	path string
	rule ElementRule
}

// imageBinding stretches a node's image over a whole widget.
type imageBinding struct {
	node *Node
	path string
}

// Scene is the top-level object that owns the node tree, the layout
// hierarchy, the bindings between them, input state and render buffers.
type Scene struct {
	root  *Node
	tree  *Hierarchy
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// Projection bindings
	elements []elementBinding
	images   []imageBinding

	// Animation state
	tweens  []*TweenGroup
	effects []Effect
	elapsed float64

	// Render state
	commands []drawCommand
	sortBuf  []drawCommand
	view     [6]float64

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	cursor      *Cursor
	liveInput   bool

	screenshotQueue []string
	updateFunc      func() error
	exit            bool
	ctx             context.Context
}

// NewScene creates a scene projecting the widgets of tree.
func NewScene(tree *Hierarchy) *Scene {
	return &Scene{
		root:          NewContainer("root"),
		tree:          tree,
		ScreenshotDir: "screenshots",
		commands:      make([]drawCommand, 0, defaultCommandCap),
		sortBuf:       make([]drawCommand, 0, defaultCommandCap),
		view:          viewTransform(tree.Extents()),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Hierarchy returns the layout tree the scene projects.
func (s *Scene) Hierarchy() *Hierarchy {
	return s.tree
}

// Bind attaches node under the scene root and projects it onto the widget at
// path with rule on every update. A zero rule boundary is taken from the
// node's native size.
func (s *Scene) Bind(node *Node, path string, rule ElementRule) *Node {
	if node.Parent == nil {
		s.root.AddChild(node)
	}
	s.elements = append(s.elements, elementBinding{node: node, path: path, rule: rule})
	return node
}

// BindImage attaches node under the scene root and stretches its image over
// the whole widget at path on every update.
func (s *Scene) BindImage(node *Node, path string) *Node {
	if node.Parent == nil {
		s.root.AddChild(node)
	}
	s.images = append(s.images, imageBinding{node: node, path: path})
	return node
}

// Unbind removes every binding of node. The node stays in the tree.
func (s *Scene) Unbind(node *Node) {
	elements := s.elements[:0]
	for _, b := range s.elements {
		if b.node != node {
			elements = append(elements, b)
		}
	}
	clear(s.elements[len(elements):])
	s.elements = elements

	images := s.images[:0]
	for _, b := range s.images {
		if b.node != node {
			images = append(images, b)
		}
	}
	clear(s.images[len(images):])
	s.images = images
}

// UnbindPrefix disposes and unbinds every bound node whose widget path starts
// with prefix. Routes use it to tear down their widgets.
func (s *Scene) UnbindPrefix(prefix string) {
	var nodes []*Node
	for _, b := range s.elements {
		if pathHasPrefix(b.path, prefix) {
			nodes = append(nodes, b.node)
		}
	}
	for _, b := range s.images {
		if pathHasPrefix(b.path, prefix) {
			nodes = append(nodes, b.node)
		}
	}
	for _, n := range nodes {
		s.Unbind(n)
		n.Dispose()
	}
}

// AddTween registers a tween group advanced on every update until done.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// AddEffect registers an effect advanced on every update.
func (s *Scene) AddEffect(e Effect) {
	s.effects = append(s.effects, e)
}

// RemoveEffects drops every registered effect.
func (s *Scene) RemoveEffects() {
	clear(s.effects)
	s.effects = s.effects[:0]
}

// SetUpdateFunc sets a callback run at the start of every Update. A non-nil
// error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// RequestExit makes the next Update return ErrExit.
func (s *Scene) RequestExit() {
	s.exit = true
}

// ExitRequested reports whether RequestExit has been called.
func (s *Scene) ExitRequested() bool {
	return s.exit
}

// Elapsed returns the simulated time in seconds since the scene started.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// Update processes input, advances animations, resolves the layout and
// projects every binding. It runs at the ebiten tick rate and stops with the
// context error once the context passed to Run is done.
func (s *Scene) Update() error {
	if s.ctx != nil {
		if err := s.ctx.Err(); err != nil {
			return err
		}
	}
	return s.step(1.0 / float64(ebiten.TPS()))
}

// step runs one update with an explicit frame delta in seconds.
//
// Order: update callback, test script, input, tweens and effects, node
// callbacks, layout, element pass, image pass.
func (s *Scene) step(dt float64) error {
	if s.exit {
		return ErrExit
	}
	s.elapsed += dt
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	// OnDone callbacks may add tweens; those start next frame.
	for i, n := 0, len(s.tweens); i < n; i++ {
		s.tweens[i].Update(float32(dt))
	}
	tweens := s.tweens[:0]
	for _, g := range s.tweens {
		if !g.Done {
			tweens = append(tweens, g)
		}
	}
	clear(s.tweens[len(tweens):])
	s.tweens = tweens
	for _, e := range s.effects {
		e.Update(s, dt)
	}
	updateNodes(s.root, dt)

	s.tree.Compute()
	s.project()
	if s.exit {
		return ErrExit
	}
	return nil
}

// project runs the element pass then the image pass.
func (s *Scene) project() {
	for i := range s.elements {
		b := &s.elements[i]
		rule := b.rule
		if rule.Boundary == (Vec2{}) {
			rule.Boundary = b.node.NativeSize()
		}
		p, err := ProjectRule(s.tree, b.path, rule)
		if err != nil && !errors.Is(err, ErrInvisible) {
			debugProjection(s, b.path, err)
		}
		b.node.ApplyPlacement(p)
	}
	for i := range s.images {
		b := &s.images[i]
		p, err := ProjectImage(s.tree, b.path, b.node.NativeSize())
		if err != nil && !errors.Is(err, ErrInvisible) {
			debugProjection(s, b.path, err)
		}
		b.node.ApplyPlacement(p)
	}
}

// Draw traverses the scene tree, emits draw commands, sorts them by depth and
// draws them to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if c, ok := s.clearColor(); ok {
		screen.Fill(c)
	}
	s.prepare()

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.submitCommands(screen)
	if s.cursor != nil {
		s.cursor.draw(screen, s.CursorPosition())
	}

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// prepare emits and sorts the draw commands for the current frame.
func (s *Scene) prepare() {
	s.commands = s.commands[:0]
	s.view = viewTransform(s.tree.Extents())
	treeOrder := 0
	s.traverse(s.root, identityTransform, 1.0, false, &treeOrder)
	s.mergeSort()
}

// Layout implements the ebiten layout callback: the hierarchy root follows
// the window size.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.tree.SetExtents(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame timing stats and recovered projection failures are logged at
// debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

func pathHasPrefix(path, prefix string) bool {
	if prefix == "" || path == prefix {
		return true
	}
	return len(path) > len(prefix) && path[:len(prefix)] == prefix && path[len(prefix)] == '/'
}
