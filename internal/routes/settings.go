package routes

import (
	_ "embed"

	"github.com/phanxgames/punkui"
)

//go:embed settings.yaml
var settingsLayout []byte

const backPath = "settings/panel/back"

func (r *Router) enterSettings() error {
	if !r.built[Settings] {
		if err := r.buildDocument(settingsLayout, ""); err != nil {
			return err
		}
		if err := r.button(backPath, "BACK"); err != nil {
			return err
		}
		r.scene.OnClick(backPath, func(punkui.PointerContext) { r.Request(MainMenu) })
		r.built[Settings] = true
	}
	r.setVisible("settings", true)
	return nil
}
