// Package routes builds the game menus on a punkui scene and switches
// between them.
package routes

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/punkui"
)

// Route identifies a screen.
type Route int

const (
	Intro Route = iota
	MainMenu
	Settings
)

func (r Route) String() string {
	switch r {
	case Intro:
		return "intro"
	case MainMenu:
		return "main_menu"
	case Settings:
		return "settings"
	default:
		return fmt.Sprintf("Route(%d)", int(r))
	}
}

// Music plays named tracks. *audio.Player implements it.
type Music interface {
	Loop(name string) error
	Once(name string, volume float64) error
	StopMusic()
}

// Assets resolves named assets. A nil image leaves its node offscreen; a nil
// font leaves labels undrawn.
type Assets interface {
	Image(name string) *ebiten.Image
	Font() *punkui.TTFFont
}

// Router owns the menu routes of a scene. Route changes requested from
// callbacks are applied at the start of the next update.
type Router struct {
	scene  *punkui.Scene
	music  Music
	assets Assets
	log    *log.Logger

	current    Route
	pending    Route
	hasPending bool

	built   map[Route]bool
	overlay []byte
}

// New creates a router for s. It installs itself as the scene update
// function.
func New(s *punkui.Scene, music Music, assets Assets) *Router {
	r := &Router{
		scene:  s,
		music:  music,
		assets: assets,
		log:    punkui.Logger().WithPrefix("routes"),
		built:  make(map[Route]bool),
	}
	s.SetUpdateFunc(r.update)
	return r
}

// Start enters the first route.
func (r *Router) Start(to Route) error {
	if err := r.enter(to); err != nil {
		return err
	}
	r.current = to
	return nil
}

// Current returns the active route.
func (r *Router) Current() Route {
	return r.current
}

// Request schedules a switch to route to.
func (r *Router) Request(to Route) {
	r.pending = to
	r.hasPending = true
}

func (r *Router) update() error {
	if !r.hasPending {
		return nil
	}
	to := r.pending
	r.hasPending = false
	if to == r.current {
		return nil
	}
	return r.switchTo(to)
}

func (r *Router) switchTo(to Route) error {
	r.log.Debug("switch", "from", r.current, "to", to)
	r.leave(r.current)
	if err := r.enter(to); err != nil {
		return err
	}
	r.current = to
	return nil
}

func (r *Router) enter(to Route) error {
	var err error
	switch to {
	case Intro:
		err = r.enterIntro()
	case MainMenu:
		err = r.enterMainMenu()
	case Settings:
		err = r.enterSettings()
	default:
		err = fmt.Errorf("unknown route %d", int(to))
	}
	if err != nil {
		return fmt.Errorf("routes: enter %s: %w", to, err)
	}
	return nil
}

func (r *Router) leave(from Route) {
	switch from {
	case Intro:
		r.leaveIntro()
	case MainMenu, Settings:
		r.setVisible(from.String(), false)
	}
}

func (r *Router) setVisible(path string, v bool) {
	w, err := r.scene.Hierarchy().Widget(path)
	if err != nil {
		r.log.Warn("visibility", "path", path, "err", err)
		return
	}
	w.SetVisible(v)
}

// SetOverlay sets a layout document built under main_menu after the menu
// itself. It must be set before the main menu is first entered.
func (r *Router) SetOverlay(data []byte) error {
	if _, err := punkui.LoadLayoutDocument(data); err != nil {
		return fmt.Errorf("routes: overlay: %w", err)
	}
	r.overlay = data
	return nil
}

// buildDocument creates the widgets of a YAML layout under parent ("" for
// the root) and binds its images and texts.
func (r *Router) buildDocument(data []byte, parent string) error {
	doc, err := punkui.LoadLayoutDocument(data)
	if err != nil {
		return err
	}
	res, err := doc.Build(r.scene.Hierarchy(), parent)
	if err != nil {
		return err
	}
	for _, img := range res.Images {
		r.scene.BindImage(punkui.NewSprite(img.Asset, r.assets.Image(img.Asset)), img.Path)
	}
	for _, t := range res.Texts {
		label := &punkui.Label{Text: t.Content, Font: r.font(t.Size), Anchor: t.Anchor}
		n := punkui.NewText(t.Path, label)
		n.Color = buttonIdle
		r.scene.Bind(n, t.Path, t.Rule)
	}
	return nil
}

// font returns the asset font, resized when size is set.
func (r *Router) font(size float64) *punkui.TTFFont {
	f := r.assets.Font()
	if f == nil || size <= 0 || size == f.Size() {
		return f
	}
	return f.WithSize(size)
}
