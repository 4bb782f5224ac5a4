package routes

import (
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/punkui"
	"github.com/phanxgames/punkui/audio"
)

const (
	introFadeIn      = 1.0
	introHold        = 1.5
	introFadeOut     = 0.8
	introStingVolume = 0.5
)

// IntroDuration is the time in seconds the intro runs when not skipped.
const IntroDuration = introFadeIn + introHold + introFadeOut

func (r *Router) enterIntro() error {
	w, err := r.scene.Hierarchy().Create("intro", punkui.FullLayout())
	if err != nil {
		return err
	}
	w.SetVisible(true)
	if c := r.scene.Cursor(); c != nil {
		c.Visible = false
	}

	title := punkui.NewText("intro/title", &punkui.Label{
		Text:   "BEVYPUNK",
		Font:   r.assets.Font(),
		Anchor: punkui.Vec2{X: 0.5, Y: 0.5},
	})
	title.Color = punkui.ColorPunkYellow
	title.Alpha = 0
	r.scene.Bind(title, "intro", punkui.DefaultRule().At(50, 50).WithHeight(12))

	// fade in, hold, fade out, then the main menu
	var hold float64
	fadeIn := punkui.TweenAlpha(title, 1, introFadeIn, ease.OutQuad)
	fadeIn.OnDone = func() {
		wait := punkui.TweenValue(&hold, 1, introHold, ease.Linear)
		wait.OnDone = func() {
			fadeOut := punkui.TweenAlpha(title, 0, introFadeOut, ease.InQuad)
			fadeOut.OnDone = func() { r.Request(MainMenu) }
			r.scene.AddTween(fadeOut)
		}
		r.scene.AddTween(wait)
	}
	r.scene.AddTween(fadeIn)

	r.scene.OnClick("intro", func(punkui.PointerContext) { r.Request(MainMenu) })

	if err := r.music.Once(audio.TrackSting, introStingVolume); err != nil {
		r.log.Warn("intro sting", "err", err)
	}
	return nil
}

func (r *Router) leaveIntro() {
	r.scene.UnbindPrefix("intro")
	r.scene.ClearHandlers("intro")
	if err := r.scene.Hierarchy().Remove("intro"); err != nil {
		r.log.Warn("remove intro", "err", err)
	}
	if c := r.scene.Cursor(); c != nil {
		c.Visible = true
	}
}
