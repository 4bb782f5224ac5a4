package punkui

import "testing"

// Points in the 1000x500 menu scene. The board covers (100, 50, 400, 400)
// and the logo its top half.
const (
	insideX, insideY   = 300, 350 // board only
	logoX, logoY       = 300, 100 // board and logo
	outsideX, outsideY = 50, 25
)

type mockStore struct {
	events []InteractionEvent
}

func (m *mockStore) EmitEvent(e InteractionEvent) {
	m.events = append(m.events, e)
}

func stepN(t *testing.T, s *Scene, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		mustStep(t, s)
	}
}

// --- Hit testing ---

func TestHitWidget(t *testing.T) {
	s := newMenuScene(t)
	s.processPointer(insideX, insideY, false, MouseButtonLeft)
	if !s.HitWidget("main_menu/board") {
		t.Error("pointer should be over the board")
	}
	if s.HitWidget("main_menu/board/logo") {
		t.Error("pointer should not be over the logo")
	}
	if s.HitWidget("main_menu/missing") {
		t.Error("missing widget should not hit")
	}
}

func TestHitWidgetHidden(t *testing.T) {
	s := newMenuScene(t)
	s.processPointer(insideX, insideY, false, MouseButtonLeft)
	menu, _ := s.Hierarchy().Widget("main_menu")
	menu.SetVisible(false)
	if s.HitWidget("main_menu/board") {
		t.Error("hidden widget should not hit")
	}
}

func TestCursorPosition(t *testing.T) {
	s := newMenuScene(t)
	s.InjectMove(12, 34)
	mustStep(t, s)
	if got := s.CursorPosition(); got != (Vec2{12, 34}) {
		t.Errorf("CursorPosition = %v, want (12, 34)", got)
	}
}

// --- Click ---

func TestClickDetection(t *testing.T) {
	s := newMenuScene(t)
	clicks := 0
	var ctx PointerContext
	s.OnClick("main_menu/board", func(c PointerContext) {
		clicks++
		ctx = c
	})

	s.InjectClick(insideX, insideY)
	stepN(t, s, 2)

	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if ctx.Path != "main_menu/board" || ctx.X != insideX || ctx.Y != insideY || ctx.Button != MouseButtonLeft {
		t.Errorf("context = %+v", ctx)
	}
}

func TestClickNotFiredWhenReleasedOutside(t *testing.T) {
	s := newMenuScene(t)
	clicks, ups := 0, 0
	s.OnClick("main_menu/board", func(PointerContext) { clicks++ })
	s.OnPointerUp("main_menu/board", func(PointerContext) { ups++ })

	s.InjectPress(insideX, insideY)
	s.InjectRelease(outsideX, outsideY)
	stepN(t, s, 2)

	if clicks != 0 || ups != 0 {
		t.Errorf("clicks = %d, ups = %d, want 0, 0", clicks, ups)
	}
}

func TestClickNotFiredWhenPressedOutside(t *testing.T) {
	s := newMenuScene(t)
	clicks, ups := 0, 0
	s.OnClick("main_menu/board", func(PointerContext) { clicks++ })
	s.OnPointerUp("main_menu/board", func(PointerContext) { ups++ })

	s.InjectPress(outsideX, outsideY)
	s.InjectRelease(insideX, insideY)
	stepN(t, s, 2)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
	if ups != 1 {
		t.Errorf("ups = %d, want 1", ups)
	}
}

func TestPointerDownUpOrder(t *testing.T) {
	s := newMenuScene(t)
	var got []string
	s.OnPointerDown("main_menu/board", func(PointerContext) { got = append(got, "down") })
	s.OnPointerUp("main_menu/board", func(PointerContext) { got = append(got, "up") })
	s.OnClick("main_menu/board", func(PointerContext) { got = append(got, "click") })

	s.InjectClick(insideX, insideY)
	stepN(t, s, 2)

	want := []string{"down", "up", "click"}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClickOnOverlappingWidgets(t *testing.T) {
	s := newMenuScene(t)
	var got []string
	s.OnClick("main_menu/board", func(c PointerContext) { got = append(got, c.Path) })
	s.OnClick("main_menu/board/logo", func(c PointerContext) { got = append(got, c.Path) })

	s.InjectClick(logoX, logoY)
	stepN(t, s, 2)

	if len(got) != 2 || got[0] != "main_menu/board" || got[1] != "main_menu/board/logo" {
		t.Errorf("clicks = %v, want board then logo", got)
	}
}

// --- Hover ---

func TestEnterLeave(t *testing.T) {
	s := newMenuScene(t)
	enters, leaves := 0, 0
	s.OnPointerEnter("main_menu/board", func(PointerContext) { enters++ })
	s.OnPointerLeave("main_menu/board", func(PointerContext) { leaves++ })

	s.InjectMove(insideX, insideY)
	s.InjectMove(insideX+10, insideY)
	s.InjectMove(outsideX, outsideY)
	stepN(t, s, 3)

	if enters != 1 || leaves != 1 {
		t.Errorf("enters = %d, leaves = %d, want 1, 1", enters, leaves)
	}
}

func TestHoverFiresEveryFrame(t *testing.T) {
	s := newMenuScene(t)
	hovers := 0
	s.OnHover("main_menu/board", func(PointerContext) { hovers++ })

	s.InjectMove(insideX, insideY)
	stepN(t, s, 4)

	if hovers != 4 {
		t.Errorf("hovers = %d, want 4", hovers)
	}

	s.InjectMove(outsideX, outsideY)
	stepN(t, s, 2)
	if hovers != 4 {
		t.Errorf("hovers after leaving = %d, want 4", hovers)
	}
}

func TestHoverSetsSliderData(t *testing.T) {
	s := newMenuScene(t)
	board, _ := s.Hierarchy().Widget("main_menu/board")
	s.OnHover("main_menu/board", func(PointerContext) {
		board.SetData(KeyColorHighlight, 1)
	})
	s.AddEffect(&Slider{Path: "main_menu/board", Key: KeyColorHighlight, Duration: 0.5})

	s.InjectMove(insideX, insideY)
	mustStep(t, s)
	// raised by the hover, then decayed by one frame
	assertNear(t, "slot while hovered", board.Data(KeyColorHighlight), 1-frame/0.5)

	s.InjectMove(outsideX, outsideY)
	stepN(t, s, 60)
	assertNear(t, "slot after leaving", board.Data(KeyColorHighlight), 0)
}

// --- Handler management ---

func TestCallbackHandleRemove(t *testing.T) {
	s := newMenuScene(t)
	clicks := 0
	h := s.OnClick("main_menu/board", func(PointerContext) { clicks++ })
	h.Remove()

	s.InjectClick(insideX, insideY)
	stepN(t, s, 2)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 after Remove", clicks)
	}
	CallbackHandle{}.Remove()
}

func TestHandlerRemovingItself(t *testing.T) {
	s := newMenuScene(t)
	calls := 0
	var h CallbackHandle
	h = s.OnHover("main_menu/board", func(PointerContext) {
		calls++
		h.Remove()
	})
	s.OnHover("main_menu/board", func(PointerContext) { calls++ })

	s.InjectMove(insideX, insideY)
	stepN(t, s, 2)

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestClearHandlers(t *testing.T) {
	s := newMenuScene(t)
	var got []string
	s.OnClick("main_menu/board", func(c PointerContext) { got = append(got, c.Path) })
	s.OnClick("main_menu/board/logo", func(c PointerContext) { got = append(got, c.Path) })
	s.OnClick("main_menu", func(c PointerContext) { got = append(got, c.Path) })

	s.ClearHandlers("main_menu/board")
	s.InjectClick(logoX, logoY)
	stepN(t, s, 2)

	if len(got) != 1 || got[0] != "main_menu" {
		t.Errorf("clicks = %v, want [main_menu]", got)
	}
}

// --- Entity store bridge ---

func TestEntityStoreReceivesEvents(t *testing.T) {
	s := newMenuScene(t)
	store := &mockStore{}
	s.SetEntityStore(store)
	s.OnClick("main_menu/board", func(PointerContext) {})
	s.OnHover("main_menu/board", func(PointerContext) {})

	s.InjectClick(insideX, insideY)
	stepN(t, s, 2)

	want := []EventType{EventPointerEnter, EventPointerDown, EventPointerUp, EventClick}
	if len(store.events) != len(want) {
		t.Fatalf("events = %+v, want %d events", store.events, len(want))
	}
	for i, typ := range want {
		e := store.events[i]
		if e.Type != typ || e.Path != "main_menu/board" {
			t.Errorf("event %d = %+v, want type %d", i, e, typ)
		}
	}
	if store.events[3].X != insideX || store.events[3].Y != insideY {
		t.Errorf("click position = (%v, %v)", store.events[3].X, store.events[3].Y)
	}
}

func TestNoStoreNoPanic(t *testing.T) {
	s := newMenuScene(t)
	s.OnClick("main_menu/board", func(PointerContext) {})
	s.InjectClick(insideX, insideY)
	stepN(t, s, 2)
}

// --- Cursor icon ---

func TestCursorIconFollowsPointer(t *testing.T) {
	s := newMenuScene(t)
	c := NewCursor(nil)
	s.SetCursor(c)
	s.OnClick("main_menu/board", func(PointerContext) {})

	s.InjectMove(outsideX, outsideY)
	mustStep(t, s)
	if c.Icon() != CursorDefault {
		t.Errorf("icon outside = %d, want CursorDefault", c.Icon())
	}

	s.InjectMove(insideX, insideY)
	mustStep(t, s)
	if c.Icon() != CursorPointer {
		t.Errorf("icon over clickable = %d, want CursorPointer", c.Icon())
	}

	s.InjectPress(insideX, insideY)
	mustStep(t, s)
	if c.Icon() != CursorGrab {
		t.Errorf("icon while pressed = %d, want CursorGrab", c.Icon())
	}
}

// --- Benchmarks ---

func BenchmarkProcessPointer_20Handlers(b *testing.B) {
	h := NewHierarchy("ui", 1000, 500)
	menu, _ := h.Create("main_menu", FullLayout())
	menu.SetVisible(true)
	s := NewScene(h)
	for i := 0; i < 20; i++ {
		path := menu.End("button_" + string(rune('a'+i)))
		if _, err := h.Create(path, WindowLayout{Pos: Vec2{0, float64(i) * 5}, Width: 100, Height: 5}); err != nil {
			b.Fatal(err)
		}
		s.OnHover(path, func(PointerContext) {})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s.processPointer(500, 120, false, MouseButtonLeft)
	}
}
