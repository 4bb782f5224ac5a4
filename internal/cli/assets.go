package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/punkui"
	"github.com/phanxgames/punkui/config"
)

const (
	// defaultImageDir holds images not listed in the settings file.
	defaultImageDir = "assets/images"
	// defaultFontSize is the base size labels are scaled from.
	defaultFontSize = 64
)

// fileAssets loads menu images from disk on first use.
type fileAssets struct {
	paths  map[string]string
	dir    string
	font   *punkui.TTFFont
	images map[string]*ebiten.Image
	logger *log.Logger
}

// newFileAssets resolves the font and image locations from the settings.
// A missing font file is an error; no font selects the built-in face.
func newFileAssets(a config.Assets, logger *log.Logger) (*fileAssets, error) {
	font, err := loadFont(a.Font)
	if err != nil {
		return nil, err
	}
	return &fileAssets{
		paths:  a.Images,
		dir:    defaultImageDir,
		font:   font,
		images: make(map[string]*ebiten.Image),
		logger: logger,
	}, nil
}

func loadFont(path string) (*punkui.TTFFont, error) {
	if path == "" {
		return punkui.DefaultFont(defaultFontSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	f, err := punkui.LoadTTFFont(data, defaultFontSize)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return f, nil
}

// path returns the file for an asset name.
func (a *fileAssets) path(name string) string {
	if p, ok := a.paths[name]; ok {
		return p
	}
	return filepath.Join(a.dir, name)
}

// Image returns the named image, or nil when it cannot be loaded. Misses are
// cached so each one is reported once.
func (a *fileAssets) Image(name string) *ebiten.Image {
	if img, ok := a.images[name]; ok {
		return img
	}
	p := a.path(name)
	img, _, err := ebitenutil.NewImageFromFile(p)
	if err != nil {
		a.logger.Warn("image unavailable", "name", name, "path", p, "err", err)
		img = nil
	}
	a.images[name] = img
	return img
}

// Font returns the menu font.
func (a *fileAssets) Font() *punkui.TTFFont {
	return a.font
}

// loadCursor builds a cursor from a horizontal strip of square cells: the
// default arrow, the pointing hand, then the grabbing hand.
func loadCursor(path string) (*punkui.Cursor, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load cursor: %w", err)
	}
	b := img.Bounds()
	size := b.Dy()
	if size == 0 || b.Dx() < size {
		return nil, fmt.Errorf("load cursor %s: want a strip of square cells, got %dx%d", path, b.Dx(), b.Dy())
	}
	atlas := punkui.NewGridAtlas(img, size, size, b.Dx()/size, 1)
	c := punkui.NewCursor(atlas)
	c.SetIndex(punkui.CursorDefault, 0, punkui.Vec2{}).
		SetIndex(punkui.CursorPointer, 1, punkui.Vec2{X: float64(size) / 3}).
		SetIndex(punkui.CursorGrab, 2, punkui.Vec2{X: float64(size) / 3})
	return c, nil
}
