package punkui

import "testing"

func TestCursorDefaults(t *testing.T) {
	c := NewCursor(nil)
	if !c.Visible || c.Scale != 1 || c.Color != ColorWhite {
		t.Errorf("cursor = %+v", c)
	}
	if c.Icon() != CursorDefault {
		t.Errorf("Icon = %d, want CursorDefault", c.Icon())
	}
	if _, ok := c.cell(); ok {
		t.Error("cursor without cells should have no cell")
	}
}

func TestCursorDrawMatrixHotspot(t *testing.T) {
	c := NewCursor(nil).SetIndex(CursorDefault, 0, Vec2{3, 4})
	c.Scale = 2

	m := c.drawMatrix(Vec2{100, 50})
	x, y := transformPoint(m, 0, 0)
	assertNear(t, "x", x, 94)
	assertNear(t, "y", y, 42)
	// the hotspot pixel lands on the pointer
	x, y = transformPoint(m, 3, 4)
	assertNear(t, "hotspot x", x, 100)
	assertNear(t, "hotspot y", y, 50)
}

func TestCursorCellFallsBackToDefault(t *testing.T) {
	c := NewCursor(nil).
		SetIndex(CursorDefault, 0, Vec2{}).
		SetIndex(CursorGrab, 2, Vec2{8, 8})

	c.icon = CursorPointer
	cc, ok := c.cell()
	if !ok || cc.index != 0 {
		t.Errorf("cell = %+v, %v; want default cell", cc, ok)
	}

	c.icon = CursorGrab
	cc, ok = c.cell()
	if !ok || cc.index != 2 {
		t.Errorf("cell = %+v, %v; want grab cell", cc, ok)
	}
}

func TestCursorDrawWithoutAtlas(t *testing.T) {
	c := NewCursor(nil).SetIndex(CursorDefault, 0, Vec2{})
	c.draw(nil, Vec2{10, 10})
}

func TestSceneCursor(t *testing.T) {
	s := newRenderScene()
	if s.Cursor() != nil {
		t.Error("scene should start without a cursor")
	}
	c := NewCursor(nil)
	s.SetCursor(c)
	if s.Cursor() != c {
		t.Error("Cursor should return the installed cursor")
	}
	s.SetCursor(nil)
	if s.Cursor() != nil {
		t.Error("SetCursor(nil) should remove the cursor")
	}
}
