package punkui

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds the window settings for Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	ShowFPS    bool
}

// Run opens the window and runs the scene until the window closes, ctx is
// done or the scene requests an exit. A requested exit returns nil.
func Run(ctx context.Context, s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if s.cursor != nil && s.cursor.Atlas != nil {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	if cfg.ShowFPS {
		s.root.AddChild(NewFPSWidget(s))
	}

	s.liveInput = true
	s.ctx = ctx
	s.tree.SetExtents(float64(cfg.Width), float64(cfg.Height))
	logger.Debug("run", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)

	err := ebiten.RunGame(s)
	if errors.Is(err, ErrExit) {
		return nil
	}
	return err
}
