package routes

import (
	_ "embed"
	"fmt"

	"github.com/phanxgames/punkui"
	"github.com/phanxgames/punkui/audio"
)

//go:embed main_menu.yaml
var mainMenuLayout []byte

const buttonsPath = "main_menu/board/buttons"

// MenuButtons lists the main menu buttons top to bottom.
var MenuButtons = []string{
	"continue",
	"new_game",
	"load_game",
	"settings",
	"additional_content",
	"credits",
	"quit_game",
}

var buttonGrid = punkui.Grid{CellWidth: 96, CellHeight: 11, GapX: 2, GapY: 2, Padding: true}

func (r *Router) enterMainMenu() error {
	if !r.built[MainMenu] {
		if err := r.buildMainMenu(); err != nil {
			return err
		}
		r.built[MainMenu] = true
	}
	r.setVisible("main_menu", true)
	if err := r.music.Loop(audio.TrackDrone); err != nil {
		r.log.Warn("menu music", "err", err)
	}
	return nil
}

func (r *Router) buildMainMenu() error {
	if err := r.buildDocument(mainMenuLayout, ""); err != nil {
		return err
	}
	if r.overlay != nil {
		if err := r.buildDocument(r.overlay, "main_menu"); err != nil {
			return fmt.Errorf("overlay: %w", err)
		}
	}
	r.scene.AddEffect(&punkui.SmoothWiggle{
		Path:      "main_menu/background",
		Speed:     punkui.Vec2{X: 1, Y: 2},
		Amplitude: punkui.Vec2{X: 2.6, Y: 2},
	})

	_, cells, err := buttonGrid.CreateGrid(r.scene.Hierarchy(), buttonsPath, [][]string{MenuButtons})
	if err != nil {
		return err
	}
	for _, cell := range cells[0] {
		if err := r.button(cell.Path(), buttonText(cell.Name())); err != nil {
			return err
		}
		name := cell.Name()
		r.scene.OnClick(cell.Path(), func(punkui.PointerContext) { r.menuAction(name) })
	}
	return nil
}

func (r *Router) menuAction(name string) {
	switch name {
	case "settings":
		r.Request(Settings)
	case "quit_game":
		r.scene.RequestExit()
	default:
		r.log.Info("menu action unavailable", "button", name)
	}
}
