package punkui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a node pinned to the top-left corner of the window
// that displays the current FPS and TPS. The text is refreshed every ~0.5
// seconds with ebitenutil.DebugPrint.
func NewFPSWidget(s *Scene) *Node {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	node := NewSprite("fps_widget", img)
	node.Z = math.MaxFloat32 // draw on top

	lastUpdate := 0.5
	node.OnUpdate = func(dt float64) {
		corner := ProjectPoint(s.tree, Vec2{})
		node.SetPosition(corner.X, corner.Y)

		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return node
}
