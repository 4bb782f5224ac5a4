// Package config loads the game settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalid reports settings that fail validation.
var ErrInvalid = errors.New("config: invalid settings")

// Settings is the TOML settings file.
//
//	[window]
//	title = "Bevypunk"
//	width = 1280
//	height = 720
//
//	[audio]
//	volume = 0.8
type Settings struct {
	Window Window `toml:"window"`
	Audio  Audio  `toml:"audio"`
	Debug  Debug  `toml:"debug"`
	Assets Assets `toml:"assets"`
}

// Window holds the window settings.
type Window struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

// Audio holds the audio settings. Empty track paths select the built-in
// synthesized tracks.
type Audio struct {
	Music  string  `toml:"music"`
	Sting  string  `toml:"sting"`
	Volume float64 `toml:"volume"`
	Muted  bool    `toml:"muted"`
}

// Debug holds developer settings.
type Debug struct {
	Enabled       bool   `toml:"enabled"`
	ShowFPS       bool   `toml:"show_fps"`
	ScreenshotDir string `toml:"screenshot_dir"`
	TestScript    string `toml:"test_script"`
}

// Assets points at files the menu loads at startup. Images are keyed by the
// asset names used in layout documents.
type Assets struct {
	Layout string            `toml:"layout"`
	Font   string            `toml:"font"`
	Cursor string            `toml:"cursor"`
	Images map[string]string `toml:"images"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Window: Window{Title: "Bevypunk", Width: 1280, Height: 720},
		Audio:  Audio{Volume: 1},
		Debug:  Debug{ScreenshotDir: "screenshots"},
	}
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Settings{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, keys[0].String())
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads the settings file at path. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks ranges.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalid, s.Audio.Volume)
	}
	return nil
}
