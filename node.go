package punkui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- ID counter ---

// nodeIDCounter is a plain counter; punkui is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is a scene graph element and the sink projected placements are
// written into. A single flat struct is used for all node types to avoid
// interface dispatch on the hot path.
//
// Node coordinates live in the projected space: origin at the window
// center, Y growing upward. Images are drawn with their top-left pixel at
// the node position, extending right and down on screen.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	// PivotX and PivotY are in image pixels, measured from the top-left.
	PivotX float64
	PivotY float64

	// Z orders drawing; bound nodes receive the placement depth.
	Z float64

	// Computed (unexported, updated by updateWorldTransform)
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility
	Alpha      float64
	Visible    bool
	Renderable bool

	// Metadata
	UserData any

	// Sprite fields (NodeTypeSprite)
	Image *ebiten.Image
	Color Color
	// nativeSize stands in for the image size of solid color sprites.
	nativeSize Vec2

	// Text fields (NodeTypeText)
	Label *Label

	// OnUpdate, when set, is called once per Scene.Update with the frame
	// delta in seconds.
	OnUpdate func(dt float64)

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.Renderable = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that draws img. A nil image draws a solid
// quad of Color sized by SetNativeSize.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img}
	nodeDefaults(n)
	return n
}

// NewSolid creates a solid color sprite with the given native size.
func NewSolid(name string, c Color, w, h float64) *Node {
	n := NewSprite(name, nil)
	n.Color = c
	n.nativeSize = Vec2{w, h}
	return n
}

// NewText creates a text node drawing label.
func NewText(name string, label *Label) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Label: label}
	nodeDefaults(n)
	return n
}

// SetNativeSize sets the unscaled size used when the node has no image.
func (n *Node) SetNativeSize(w, h float64) {
	n.nativeSize = Vec2{w, h}
}

// NativeSize returns the node's unscaled size: the image bounds for sprites
// with an image, the measured label for text, otherwise the size set with
// SetNativeSize. Zero means the node has no drawable asset.
func (n *Node) NativeSize() Vec2 {
	switch {
	case n.Type == NodeTypeSprite && n.Image != nil:
		b := n.Image.Bounds()
		return Vec2{float64(b.Dx()), float64(b.Dy())}
	case n.Type == NodeTypeText && n.Label != nil:
		w, h := n.Label.Measure()
		return Vec2{w, h}
	default:
		return n.nativeSize
	}
}

// ApplyPlacement writes a projected placement into the node's transform.
// The node is hidden when the placement is not visible.
func (n *Node) ApplyPlacement(p Placement) {
	n.X = p.Position.X
	n.Y = p.Position.Y
	n.ScaleX = p.Scale.X
	n.ScaleY = p.Scale.Y
	n.Z = p.Depth
	n.Visible = p.Visible
	n.transformDirty = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("punkui: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("punkui: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("punkui: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Image = nil
	n.Label = nil
	n.UserData = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// updateNodes calls OnUpdate on every node in the subtree.
func updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		updateNodes(child, dt)
	}
}
