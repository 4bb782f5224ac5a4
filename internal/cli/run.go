package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/punkui"
	"github.com/phanxgames/punkui/audio"
	"github.com/phanxgames/punkui/config"
	"github.com/phanxgames/punkui/internal/routes"
)

const defaultConfigPath = "punkui.toml"

// runOptions are the run command flags. Flags left unset keep the values
// from the settings file.
type runOptions struct {
	configPath string
	width      int
	height     int
	fullscreen bool
	skipIntro  bool
	debug      bool
	script     string
	mute       bool
}

// runCommand creates the run command that opens the game menu.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the game menu",
		Long: `Open the game menu in a window.

Settings are read from a TOML file (punkui.toml by default); a missing file
selects the built-in defaults. Flags override the file.

In debug mode F3 toggles debug logging and F12 saves a screenshot. A JSON
test script drives the pointer and takes screenshots without user input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runGame(cmd.Context(), cfg, opts.skipIntro)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "settings file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "window height")
	cmd.Flags().BoolVar(&opts.fullscreen, "fullscreen", false, "start fullscreen")
	cmd.Flags().BoolVar(&opts.skipIntro, "skip-intro", false, "start at the main menu")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug mode")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON test script to play")
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "mute audio")

	return cmd
}

// apply copies the flags the user set onto cfg.
func (o runOptions) apply(cmd *cobra.Command, cfg *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = o.height
	}
	if flags.Changed("fullscreen") {
		cfg.Window.Fullscreen = o.fullscreen
	}
	if flags.Changed("debug") {
		cfg.Debug.Enabled = o.debug
	}
	if flags.Changed("script") {
		cfg.Debug.TestScript = o.script
	}
	if flags.Changed("mute") {
		cfg.Audio.Muted = o.mute
	}
}

// runGame builds the scene from cfg and runs it until the window closes.
func (c *CLI) runGame(ctx context.Context, cfg config.Settings, skipIntro bool) error {
	logger := c.Logger

	h := punkui.NewHierarchy("ui", float64(cfg.Window.Width), float64(cfg.Window.Height))
	scene := punkui.NewScene(h)
	scene.ClearColor = punkui.Color{A: 1}
	scene.ScreenshotDir = cfg.Debug.ScreenshotDir
	scene.SetDebugMode(cfg.Debug.Enabled)

	player, err := newPlayer(cfg.Audio)
	if err != nil {
		return err
	}
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	defer player.Close()

	assets, err := newFileAssets(cfg.Assets, logger)
	if err != nil {
		return err
	}
	if cfg.Assets.Cursor != "" {
		cur, err := loadCursor(cfg.Assets.Cursor)
		if err != nil {
			return err
		}
		scene.SetCursor(cur)
	}

	router := routes.New(scene, player, assets)
	if cfg.Assets.Layout != "" {
		data, err := os.ReadFile(cfg.Assets.Layout)
		if err != nil {
			return fmt.Errorf("load layout: %w", err)
		}
		if err := router.SetOverlay(data); err != nil {
			return fmt.Errorf("%s: %w", cfg.Assets.Layout, err)
		}
	}
	first := routes.Intro
	if skipIntro {
		first = routes.MainMenu
	}
	if err := router.Start(first); err != nil {
		return err
	}

	if cfg.Debug.TestScript != "" {
		data, err := os.ReadFile(cfg.Debug.TestScript)
		if err != nil {
			return fmt.Errorf("load test script: %w", err)
		}
		runner, err := punkui.LoadTestScript(data)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.Debug.TestScript, err)
		}
		scene.SetTestRunner(runner)
	}

	logger.Info("starting", "route", first, "width", cfg.Window.Width, "height", cfg.Window.Height)
	return punkui.Run(ctx, scene, punkui.RunConfig{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		ShowFPS:    cfg.Debug.ShowFPS,
	})
}

// newPlayer loads the configured tracks and fills the rest with the built-in
// ones.
func newPlayer(a config.Audio) (*audio.Player, error) {
	p := audio.NewPlayer()
	for name, path := range map[string]string{audio.TrackDrone: a.Music, audio.TrackSting: a.Sting} {
		if path == "" {
			continue
		}
		if err := loadTrack(p, name, path); err != nil {
			return nil, err
		}
	}
	p.AddBuiltins()
	p.SetVolume(a.Volume)
	p.SetMuted(a.Muted)
	return p, nil
}

func loadTrack(p *audio.Player, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load track %s: %w", name, err)
	}
	defer f.Close()
	if err := p.Load(name, f); err != nil {
		return fmt.Errorf("load track %s from %s: %w", name, path, err)
	}
	return nil
}
