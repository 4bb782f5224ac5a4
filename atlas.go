package punkui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridAtlas slices a sprite strip into equally sized cells, numbered row by
// row from the top-left.
type GridAtlas struct {
	Image         *ebiten.Image
	CellW, CellH  int
	Columns, Rows int
}

// NewGridAtlas creates an atlas of columns x rows cells of the given size.
func NewGridAtlas(img *ebiten.Image, cellW, cellH, columns, rows int) *GridAtlas {
	return &GridAtlas{Image: img, CellW: cellW, CellH: cellH, Columns: columns, Rows: rows}
}

// Len returns the number of cells.
func (a *GridAtlas) Len() int {
	return a.Columns * a.Rows
}

// Cell returns the pixel rectangle of cell index, and false when index is
// out of range.
func (a *GridAtlas) Cell(index int) (image.Rectangle, bool) {
	if a.Columns <= 0 || index < 0 || index >= a.Len() {
		return image.Rectangle{}, false
	}
	col := index % a.Columns
	row := index / a.Columns
	x, y := col*a.CellW, row*a.CellH
	return image.Rect(x, y, x+a.CellW, y+a.CellH), true
}

// SubImage returns the image of cell index. Unknown cells and atlases
// without an image return a 1x1 magenta placeholder.
func (a *GridAtlas) SubImage(index int) *ebiten.Image {
	r, ok := a.Cell(index)
	if !ok || a.Image == nil {
		if globalDebug {
			logger.Warn("atlas cell not found, using magenta placeholder", "index", index)
		}
		return ensureMagentaImage()
	}
	return a.Image.SubImage(r).(*ebiten.Image)
}

// magenta placeholder singleton (no sync.Once, punkui is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}
