package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/punkui/config"
)

func TestFileAssetsPath(t *testing.T) {
	var buf bytes.Buffer
	a, err := newFileAssets(config.Assets{
		Images: map[string]string{"board.png": "art/board_v2.png"},
	}, newLogger(&buf, LogInfo))
	if err != nil {
		t.Fatal(err)
	}

	if got := a.path("board.png"); got != "art/board_v2.png" {
		t.Errorf("mapped path = %q", got)
	}
	if got := a.path("logo.png"); got != filepath.Join(defaultImageDir, "logo.png") {
		t.Errorf("default path = %q", got)
	}
}

func TestFileAssetsDefaultFont(t *testing.T) {
	var buf bytes.Buffer
	a, err := newFileAssets(config.Assets{}, newLogger(&buf, LogInfo))
	if err != nil {
		t.Fatal(err)
	}
	if a.Font() == nil || a.Font().Size() != defaultFontSize {
		t.Errorf("font = %v, want the built-in face at %d", a.Font(), defaultFontSize)
	}
}

func TestFileAssetsMissingImage(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()
	a, err := newFileAssets(config.Assets{}, newLogger(&buf, LogInfo))
	if err != nil {
		t.Fatal(err)
	}
	a.dir = dir

	if img := a.Image("board.png"); img != nil {
		t.Error("missing image should be nil")
	}
	if img := a.Image("board.png"); img != nil {
		t.Error("cached miss should stay nil")
	}
	if n := strings.Count(buf.String(), "image unavailable"); n != 1 {
		t.Errorf("warnings = %d, want 1:\n%s", n, buf.String())
	}
}

func TestLoadFontErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadFont(filepath.Join(dir, "missing.ttf")); err == nil {
		t.Error("missing font should fail")
	}
	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFont(bad); err == nil {
		t.Error("invalid font should fail")
	}
}

func TestLoadCursorMissing(t *testing.T) {
	if _, err := loadCursor(filepath.Join(t.TempDir(), "cursor.png")); err == nil {
		t.Error("missing cursor image should fail")
	}
}
