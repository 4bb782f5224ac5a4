package punkui

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLayout reports a layout document that cannot be built.
var ErrInvalidLayout = errors.New("punkui: invalid layout document")

// LayoutDocument is a YAML description of a widget tree and the visual
// elements attached to it.
//
//	name: main_menu
//	widgets:
//	  - name: main_menu
//	    visible: true
//	    children:
//	      - name: board
//	        solid: {width: 807, height: 1432, anchor_x: -0.8}
//	        image: board.png
//
// An empty name creates a nameless widget.
type LayoutDocument struct {
	Name    string       `yaml:"name"`
	Widgets []WidgetSpec `yaml:"widgets"`
}

// WidgetSpec describes one widget. At most one of Relative, Window and Solid
// may be set; none means the widget covers its parent.
type WidgetSpec struct {
	Name     string        `yaml:"name"`
	Relative *RelativeSpec `yaml:"relative,omitempty"`
	Window   *WindowSpec   `yaml:"window,omitempty"`
	Solid    *SolidSpec    `yaml:"solid,omitempty"`
	Depth    *float64      `yaml:"depth,omitempty"`
	Visible  *bool         `yaml:"visible,omitempty"`
	Image    string        `yaml:"image,omitempty"`
	Text     *TextSpec     `yaml:"text,omitempty"`
	Children []WidgetSpec  `yaml:"children,omitempty"`
}

// RelativeSpec is the YAML form of RelativeLayout.
type RelativeSpec struct {
	P1 [2]float64 `yaml:"p1"`
	P2 [2]float64 `yaml:"p2"`
}

// WindowSpec is the YAML form of WindowLayout.
type WindowSpec struct {
	Pos    [2]float64 `yaml:"pos"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

// SolidSpec is the YAML form of SolidLayout. Scaling is "fit" (default) or
// "fill".
type SolidSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	AnchorX float64 `yaml:"anchor_x"`
	AnchorY float64 `yaml:"anchor_y"`
	Scaling string  `yaml:"scaling"`
}

// TextSpec describes a text element and its scaling rule.
type TextSpec struct {
	Content string     `yaml:"content"`
	Size    float64    `yaml:"size"`
	At      [2]float64 `yaml:"at"`
	Anchor  [2]float64 `yaml:"anchor"`
	Scale   float64    `yaml:"scale"`
	Width   *float64   `yaml:"width,omitempty"`
	Height  *float64   `yaml:"height,omitempty"`
	Depth   float64    `yaml:"depth"`
}

// ImageElement is an image to stretch over the widget at Path.
type ImageElement struct {
	Path  string
	Asset string
}

// TextElement is a text to project onto the widget at Path with Rule.
type TextElement struct {
	Path    string
	Content string
	Size    float64
	Anchor  Vec2
	Rule    ElementRule
}

// BuildResult lists the elements a built document declares, in document
// order. Paths address nameless widgets exactly.
type BuildResult struct {
	Images []ImageElement
	Texts  []TextElement
}

// LoadLayoutDocument parses a YAML layout document.
func LoadLayoutDocument(data []byte) (*LayoutDocument, error) {
	var doc LayoutDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if len(doc.Widgets) == 0 {
		return nil, fmt.Errorf("parse layout: %w: no widgets", ErrInvalidLayout)
	}
	return &doc, nil
}

// Build creates the document's widgets under parentPath ("" for the root).
func (d *LayoutDocument) Build(h *Hierarchy, parentPath string) (*BuildResult, error) {
	res := &BuildResult{}
	for i := range d.Widgets {
		if err := d.Widgets[i].build(h, parentPath, res); err != nil {
			return nil, fmt.Errorf("layout %q: %w", d.Name, err)
		}
	}
	return res, nil
}

func (spec *WidgetSpec) build(h *Hierarchy, parentPath string, res *BuildResult) error {
	layout, err := spec.layout()
	if err != nil {
		return fmt.Errorf("widget %q: %w", joinPath(parentPath, spec.Name), err)
	}
	w, err := h.Create(joinPath(parentPath, spec.Name), layout)
	if err != nil {
		return err
	}
	if spec.Depth != nil {
		w.SetDepth(*spec.Depth)
	}
	if spec.Visible != nil {
		w.SetVisible(*spec.Visible)
	}

	path := w.FullPath()
	if spec.Image != "" {
		res.Images = append(res.Images, ImageElement{Path: path, Asset: spec.Image})
	}
	if t := spec.Text; t != nil {
		rule := DefaultRule().At(t.At[0], t.At[1]).WithDepth(t.Depth)
		if t.Scale != 0 {
			rule = rule.Scaled(t.Scale)
		}
		rule.Width = t.Width
		rule.Height = t.Height
		res.Texts = append(res.Texts, TextElement{
			Path:    path,
			Content: t.Content,
			Size:    t.Size,
			Anchor:  Vec2{t.Anchor[0], t.Anchor[1]},
			Rule:    rule,
		})
	}
	for i := range spec.Children {
		if err := spec.Children[i].build(h, path, res); err != nil {
			return err
		}
	}
	return nil
}

func (spec *WidgetSpec) layout() (Layout, error) {
	set := 0
	var l Layout = FullLayout()
	if r := spec.Relative; r != nil {
		set++
		l = RelativeLayout{P1: Vec2{r.P1[0], r.P1[1]}, P2: Vec2{r.P2[0], r.P2[1]}}
	}
	if w := spec.Window; w != nil {
		set++
		l = WindowLayout{Pos: Vec2{w.Pos[0], w.Pos[1]}, Width: w.Width, Height: w.Height}
	}
	if s := spec.Solid; s != nil {
		set++
		var scaling SolidScaling
		switch s.Scaling {
		case "", "fit":
			scaling = SolidFit
		case "fill":
			scaling = SolidFill
		default:
			return nil, fmt.Errorf("%w: unknown scaling %q", ErrInvalidLayout, s.Scaling)
		}
		l = SolidLayout{Width: s.Width, Height: s.Height, AnchorX: s.AnchorX, AnchorY: s.AnchorY, Scaling: scaling}
	}
	if set > 1 {
		return nil, fmt.Errorf("%w: more than one layout kind", ErrInvalidLayout)
	}
	return l, nil
}
