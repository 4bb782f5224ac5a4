package punkui

import (
	"errors"
	"math"
	"testing"
)

// fakeTree is a Tree with fixed nodes, independent of Hierarchy.
type fakeTree struct {
	extents Vec2
	nodes   map[string]fakeNode
}

type fakeNode struct {
	rect    Rect
	visible bool
	depth   float64
}

func (n fakeNode) Rect() Rect     { return n.rect }
func (n fakeNode) Visible() bool  { return n.visible }
func (n fakeNode) Depth() float64 { return n.depth }

func (f *fakeTree) Extents() Vec2 { return f.extents }

func (f *fakeTree) Lookup(path string) (LayoutNode, error) {
	n, ok := f.nodes[path]
	if !ok {
		return nil, ErrNotFound
	}
	return n, nil
}

func newFakeTree() *fakeTree {
	return &fakeTree{
		extents: Vec2{800, 600},
		nodes: map[string]fakeNode{
			"menu":   {rect: Rect{X: 100, Y: 50, Width: 400, Height: 200}, visible: true, depth: 5},
			"hidden": {rect: Rect{X: 100, Y: 50, Width: 400, Height: 200}, visible: false, depth: 5},
			"wide":   {rect: Rect{X: 0, Y: 0, Width: 300, Height: 100}, visible: true, depth: 1},
		},
	}
}

func assertOffscreen(t *testing.T, p Placement) {
	t.Helper()
	if p.Visible {
		t.Error("Visible should be false")
	}
	if p.Position != OffscreenPosition {
		t.Errorf("Position = %v, want %v", p.Position, OffscreenPosition)
	}
	if p != Offscreen {
		t.Errorf("placement = %+v, want Offscreen", p)
	}
}

// --- Sentinel ---

func TestProjectUnknownPathIsOffscreen(t *testing.T) {
	tree := newFakeTree()
	rules := []ElementRule{
		DefaultRule(),
		DefaultRule().WithWidth(50).WithHeight(50),
		DefaultRule().WithDepth(3).At(50, 50),
	}

	p, err := ProjectPlain(tree, "missing")
	assertOffscreen(t, p)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	for _, r := range rules {
		p, err := ProjectRule(tree, "missing", r)
		assertOffscreen(t, p)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	}
}

func TestProjectInvisibleNodeIsOffscreen(t *testing.T) {
	tree := newFakeTree()

	p, err := ProjectPlain(tree, "hidden")
	assertOffscreen(t, p)
	if !errors.Is(err, ErrInvisible) {
		t.Errorf("err = %v, want ErrInvisible", err)
	}

	p, err = ProjectRule(tree, "hidden", DefaultRule().WithWidth(10).WithDepth(4))
	assertOffscreen(t, p)
	if !errors.Is(err, ErrInvisible) {
		t.Errorf("err = %v, want ErrInvisible", err)
	}

	assertOffscreen(t, ResolveImage(tree, "hidden", Vec2{10, 10}))
}

// --- Plain ---

func TestResolvePlainPosition(t *testing.T) {
	tree := newFakeTree()
	p := ResolvePlain(tree, "menu")

	// (100 - 400, 600 - 50 + 300)
	assertVec(t, "Position", p.Position, Vec2{-300, 850})
	assertVec(t, "Scale", p.Scale, Vec2{1, 1})
	assertVec(t, "Size", p.Size, Vec2{400, 200})
	assertNear(t, "Depth", p.Depth, 5)
	if !p.Visible {
		t.Error("Visible should be true")
	}
}

func TestResolvePlainTracksExtents(t *testing.T) {
	tree := newFakeTree()
	tree.extents = Vec2{1000, 1000}
	p := ResolvePlain(tree, "menu")
	assertVec(t, "Position", p.Position, Vec2{100 - 500, 1000 - 50 + 500})
}

func TestResolveImageStretchesNativeSize(t *testing.T) {
	tree := newFakeTree()
	p := ResolveImage(tree, "menu", Vec2{200, 400})
	assertVec(t, "Scale", p.Scale, Vec2{2, 0.5})
	assertVec(t, "Position", p.Position, Vec2{-300, 850})
}

func TestProjectImageMissingAsset(t *testing.T) {
	tree := newFakeTree()
	for _, native := range []Vec2{{}, {0, 10}, {10, 0}, {-1, 5}} {
		p, err := ProjectImage(tree, "menu", native)
		if !errors.Is(err, ErrAssetMissing) {
			t.Errorf("native %v: err = %v, want ErrAssetMissing", native, err)
		}
		assertOffscreen(t, p)
	}
}

// --- Rule ---

func TestResolveWithRuleFixedScale(t *testing.T) {
	tree := newFakeTree()
	rule := ElementRule{
		Width:    Percent(50),
		Height:   Percent(50),
		Boundary: Vec2{200, 100},
		Scale:    100,
	}
	p := ResolveWithRule(tree, "menu", rule)
	assertVec(t, "Scale", p.Scale, Vec2{1, 1})
}

func TestResolveWithRuleFitScale(t *testing.T) {
	tree := newFakeTree()
	rule := ElementRule{Boundary: Vec2{100, 100}, Scale: 100}
	p := ResolveWithRule(tree, "wide", rule)
	assertVec(t, "Scale", p.Scale, Vec2{1, 1})
}

func TestResolveWithRuleWidthAndHeightDriven(t *testing.T) {
	tree := newFakeTree()
	base := ElementRule{Boundary: Vec2{100, 100}, Scale: 50}

	p := ResolveWithRule(tree, "menu", base.WithWidth(50))
	// (400/100) * 0.5 * 0.5
	assertVec(t, "width-driven", p.Scale, Vec2{1, 1})

	p = ResolveWithRule(tree, "menu", base.WithHeight(100))
	// (200/100) * 1 * 0.5
	assertVec(t, "height-driven", p.Scale, Vec2{1, 1})

	p = ResolveWithRule(tree, "menu", base.WithHeight(50).Scaled(100))
	assertVec(t, "height-driven unscaled", p.Scale, Vec2{1, 1})
}

func TestResolveWithRuleDepthBias(t *testing.T) {
	tree := newFakeTree()
	p := ResolveWithRule(tree, "menu", DefaultRule().WithDepth(1))
	if p.Depth != 6.0 {
		t.Errorf("Depth = %v, want exactly 6", p.Depth)
	}
}

func TestResolveWithRuleRelativeAnchor(t *testing.T) {
	tree := newFakeTree()

	corner := ResolveWithRule(tree, "menu", DefaultRule())
	assertVec(t, "corner", corner.Position, ResolvePlain(tree, "menu").Position)

	// Center of (100,50,400,200): x = 300, y-down = 150.
	center := ResolveWithRule(tree, "menu", DefaultRule().At(50, 50))
	assertVec(t, "center", center.Position, Vec2{300 - 400, 600 - 50 - 100 + 300})

	// Center-left anchor used by menu labels.
	left := ResolveWithRule(tree, "menu", DefaultRule().At(5, 50))
	assertVec(t, "left", left.Position, Vec2{100 + 20 - 400, 750})
}

func TestResolveIsIdempotent(t *testing.T) {
	tree := newFakeTree()
	rule := DefaultRule().WithWidth(33).At(12.5, 70).WithDepth(0.25)
	a := ResolveWithRule(tree, "menu", rule)
	b := ResolveWithRule(tree, "menu", rule)
	if a != b {
		t.Errorf("placements differ: %+v vs %+v", a, b)
	}
	if ResolvePlain(tree, "menu") != ResolvePlain(tree, "menu") {
		t.Error("plain placements differ")
	}
}

func TestResolveZeroBoundaryIsDegenerate(t *testing.T) {
	tree := newFakeTree()
	p := ResolveWithRule(tree, "menu", DefaultRule())
	if !math.IsInf(p.Scale.X, 1) {
		t.Errorf("Scale.X = %v, want +Inf for a zero boundary", p.Scale.X)
	}
	if !p.Visible {
		t.Error("degenerate scale should not hide the element")
	}
}

// --- Point mapping ---

func TestProjectPointRoundTrip(t *testing.T) {
	tree := newFakeTree()
	pts := []Vec2{{0, 0}, {100, 50}, {800, 600}, {400, 300}}
	for _, pt := range pts {
		got := Unproject(tree, ProjectPoint(tree, pt))
		assertVec(t, "round trip", got, pt)
	}
	assertVec(t, "corner", ProjectPoint(tree, Vec2{100, 50}), Vec2{-300, 850})
}

// --- Against Hierarchy ---

func TestProjectHierarchyWidget(t *testing.T) {
	h := NewHierarchy("ui", 800, 600)
	menu, err := h.Create("menu", FullLayout())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Create("menu/panel", WindowLayout{Pos: Vec2{12.5, 25}, Width: 50, Height: 50}); err != nil {
		t.Fatal(err)
	}

	// Root children start hidden.
	if _, err := ProjectPlain(h, "menu/panel"); !errors.Is(err, ErrInvisible) {
		t.Fatalf("err = %v, want ErrInvisible while parent hidden", err)
	}

	menu.SetVisible(true)
	p, err := ProjectPlain(h, "menu/panel")
	if err != nil {
		t.Fatal(err)
	}
	// panel rect: (100, 150, 400, 300)
	assertVec(t, "Position", p.Position, Vec2{-300, 600 - 150 + 300})
	assertNear(t, "Depth", p.Depth, 102)
}
