package cli

import (
	"strings"
	"testing"

	"github.com/phanxgames/punkui"
	"github.com/phanxgames/punkui/internal/routes"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name string
		want routes.Route
	}{
		{"intro", routes.Intro},
		{"main_menu", routes.MainMenu},
		{"settings", routes.Settings},
	}
	for _, tt := range tests {
		got, err := parseRoute(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("parseRoute(%q) = %v, %v", tt.name, got, err)
		}
	}
	if _, err := parseRoute("credits"); err == nil {
		t.Error("unknown route should fail")
	}
}

func TestInspectMainMenu(t *testing.T) {
	c, _ := newTestCLI(t)
	out, err := execute(t, c, "inspect")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"main_menu/board", "quit_game", "Position"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectSettingsRoute(t *testing.T) {
	c, _ := newTestCLI(t)
	out, err := execute(t, c, "inspect", "--route", "settings", "--width", "800", "--height", "600")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "settings/panel/back") {
		t.Errorf("output missing the back button:\n%s", out)
	}
	if strings.Contains(out, "main_menu") {
		t.Errorf("main menu should not be built:\n%s", out)
	}
}

func TestInspectRejectsBadInput(t *testing.T) {
	c, _ := newTestCLI(t)
	if _, err := execute(t, c, "inspect", "--route", "credits"); err == nil {
		t.Error("unknown route should fail")
	}
	if _, err := execute(t, c, "inspect", "--width", "0"); err == nil {
		t.Error("zero width should fail")
	}
}

func TestLayoutRowsSkipHidden(t *testing.T) {
	h := punkui.NewHierarchy("ui", 1000, 500)
	menu, _ := h.Create("main_menu", punkui.FullLayout())
	menu.SetVisible(true)
	if _, err := h.Create("main_menu/board", punkui.RelativeLayout{P1: punkui.Vec2{X: 10, Y: 10}, P2: punkui.Vec2{X: 50, Y: 90}}); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Create("settings", punkui.FullLayout()); err != nil {
		t.Fatal(err)
	}

	rows := layoutRows(h, false)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 visible widgets", len(rows))
	}
	board := rows[1]
	if board.path != "main_menu/board" {
		t.Fatalf("row 1 = %q", board.path)
	}
	if board.rect != (punkui.Rect{X: 100, Y: 50, Width: 400, Height: 400}) {
		t.Errorf("rect = %+v", board.rect)
	}
	if board.position != (punkui.Vec2{X: -400, Y: 700}) {
		t.Errorf("position = %+v, want (-400, 700)", board.position)
	}

	if got := len(layoutRows(h, true)); got != 3 {
		t.Errorf("rows with hidden = %d, want 3", got)
	}
}
