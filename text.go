package punkui

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("punkui: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.GoTextFaceSource
	defaultSourceErr  error
)

// DefaultFont returns the bundled Go Regular face at the given size.
func DefaultFont(size float64) (*TTFFont, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if defaultSourceErr != nil {
		return nil, fmt.Errorf("punkui: default font: %w", defaultSourceErr)
	}
	return newTTFFont(defaultSource, size), nil
}

// WithSize returns the same face at another size.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	return newTTFFont(f.source, size)
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- Label ---

// Label is the text content of a text node.
//
// Anchor is the point of the measured text block, in fractions of its size,
// that is placed at the node position: {0, 0} is the top-left corner and
// {0, 0.5} the center of the left edge.
type Label struct {
	Text   string
	Font   *TTFFont
	Anchor Vec2
}

// Measure returns the size of the laid out text, or zero without a font.
func (l *Label) Measure() (w, h float64) {
	if l.Font == nil || l.Text == "" {
		return 0, 0
	}
	return l.Font.MeasureString(l.Text)
}

// anchorPixels returns the anchor in text pixels.
func (l *Label) anchorPixels() (float64, float64) {
	w, h := l.Measure()
	return l.Anchor.X * w, l.Anchor.Y * h
}

// drawLabel draws a label with the given full screen matrix and color.
func drawLabel(target *ebiten.Image, l *Label, m [6]float64, c Color) {
	if l.Font == nil || l.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(m)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.LineSpacing = l.Font.lh
	text.Draw(target, l.Text, l.Font.face, op)
}
