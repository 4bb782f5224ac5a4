package punkui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel backs solid color sprites. Created on first draw so that
// headless tests never allocate GPU images.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// submitCommands draws the sorted commands onto target in order.
func (s *Scene) submitCommands(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.node.Type {
		case NodeTypeSprite:
			submitSprite(target, cmd, &op)
		case NodeTypeText:
			drawLabel(target, cmd.node.Label, cmd.transform, cmd.color)
		}
	}
}

// submitSprite draws a single sprite command using DrawImage. Sprites without
// an image are drawn as a stretched white pixel tinted by the node color.
func submitSprite(target *ebiten.Image, cmd *drawCommand, op *ebiten.DrawImageOptions) {
	img := cmd.node.Image
	op.GeoM.Reset()
	if img == nil {
		img = ensureWhitePixel()
		size := cmd.node.nativeSize
		op.GeoM.Scale(size.X, size.Y)
	}
	op.GeoM.Concat(geoM(cmd.transform))

	// Premultiplied color scale.
	op.ColorScale.Reset()
	c := cmd.color
	a := float32(c.A)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)

	target.DrawImage(img, op)
}

// geoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// clearColor converts the scene clear color for ebiten.Image.Fill.
func (s *Scene) clearColor() (color.Color, bool) {
	if s.ClearColor.A == 0 {
		return nil, false
	}
	return s.ClearColor.toRGBA(), true
}
