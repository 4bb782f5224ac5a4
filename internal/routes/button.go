package routes

import (
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/punkui"
)

var (
	buttonIdle      = punkui.Color{R: 0.84, G: 0.78, B: 0.68, A: 1}
	highlightHidden = punkui.Color{R: 1, G: 1, B: 1, A: 0}
)

const (
	highlightFade = 0.2
	slideBack     = 0.3
)

// buttonText turns a widget name into its label, "new_game" -> "NEW GAME".
func buttonText(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "_", " "))
}

// button decorates the widget at path as a menu button: a left aligned label,
// a highlight image, and a hover that tints the label and slides the widget.
func (r *Router) button(path, text string) error {
	w, err := r.scene.Hierarchy().Widget(path)
	if err != nil {
		return err
	}

	label := punkui.NewText(path+"/text", &punkui.Label{
		Text:   text,
		Font:   r.assets.Font(),
		Anchor: punkui.Vec2{Y: 0.5},
	})
	label.Color = buttonIdle
	r.scene.Bind(label, path, punkui.DefaultRule().At(5, 50).Scaled(35).WithHeight(90).WithDepth(1))

	highlight := punkui.NewSprite(path+"/highlight", r.assets.Image("button_highlight.png"))
	highlight.Color = highlightHidden
	r.scene.BindImage(highlight, path)

	r.scene.AddEffect(&punkui.Slider{Path: path, Key: punkui.KeyColorHighlight, Duration: highlightFade})
	r.scene.AddEffect(&punkui.Slider{Path: path, Key: punkui.KeyAnimateWidget, Duration: slideBack})
	r.scene.AddEffect(&punkui.ColorHighlight{
		Node: label, Path: path, Key: punkui.KeyColorHighlight,
		From: buttonIdle, To: punkui.ColorPunkYellow, Ease: ease.OutQuad,
	})
	r.scene.AddEffect(&punkui.ColorHighlight{
		Node: highlight, Path: path, Key: punkui.KeyColorHighlight,
		From: highlightHidden, To: punkui.ColorWhite, Ease: ease.OutQuad,
	})
	r.scene.AddEffect(&punkui.AnimateWidget{
		Path: path, Key: punkui.KeyAnimateWidget,
		To: punkui.Vec2{X: 5}, Ease: ease.OutCubic,
	})

	r.scene.OnHover(path, func(punkui.PointerContext) {
		w.SetData(punkui.KeyColorHighlight, 1)
		w.SetData(punkui.KeyAnimateWidget, 1)
	})
	return nil
}
