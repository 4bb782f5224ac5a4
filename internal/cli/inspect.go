package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/punkui"
	"github.com/phanxgames/punkui/internal/routes"
)

var (
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
	colorRed  = lipgloss.Color("203")
)

// silentMusic discards playback requests.
type silentMusic struct{}

func (silentMusic) Loop(string) error          { return nil }
func (silentMusic) Once(string, float64) error { return nil }
func (silentMusic) StopMusic()                 {}

// headlessAssets has no images; texts measure with the built-in font.
type headlessAssets struct {
	font *punkui.TTFFont
}

func (headlessAssets) Image(string) *ebiten.Image { return nil }

func (a headlessAssets) Font() *punkui.TTFFont { return a.font }

// inspectCommand creates the inspect command that prints a route's layout.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		width, height int
		route         string
		all           bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the resolved layout of a menu route",
		Long: `Print the resolved layout of a menu route without opening a window.

Each row lists a widget path, its rectangle in window pixels (Y down), its
depth and the projected position of its top-left corner in the centered,
Y-up space the scene draws in. Hidden widgets are skipped unless --all is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRoute(route)
			if err != nil {
				return err
			}
			return c.runInspect(cmd.OutOrStdout(), r, width, height, all)
		},
	}

	cmd.Flags().IntVar(&width, "width", 1280, "window width")
	cmd.Flags().IntVar(&height, "height", 720, "window height")
	cmd.Flags().StringVarP(&route, "route", "r", routes.MainMenu.String(), "route: main_menu, settings, intro")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include hidden widgets")

	return cmd
}

func parseRoute(name string) (routes.Route, error) {
	for _, r := range []routes.Route{routes.Intro, routes.MainMenu, routes.Settings} {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown route %q", name)
}

// runInspect builds the route headless, runs one update and writes the
// widget table to w.
func (c *CLI) runInspect(w io.Writer, r routes.Route, width, height int, all bool) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	font, err := punkui.DefaultFont(defaultFontSize)
	if err != nil {
		return err
	}

	h := punkui.NewHierarchy("ui", float64(width), float64(height))
	scene := punkui.NewScene(h)
	router := routes.New(scene, silentMusic{}, headlessAssets{font: font})
	if err := router.Start(r); err != nil {
		return err
	}
	if err := scene.Update(); err != nil {
		return err
	}
	c.Logger.Debug("inspect", "route", r, "width", width, "height", height)

	rows := layoutRows(h, all)
	fmt.Fprintln(w, renderLayoutTable(rows))
	fmt.Fprintf(w, "%d widgets\n", len(rows))
	return nil
}

// layoutRow is one widget in the inspect table.
type layoutRow struct {
	path     string
	rect     punkui.Rect
	depth    float64
	visible  bool
	position punkui.Vec2
}

func layoutRows(h *punkui.Hierarchy, all bool) []layoutRow {
	var rows []layoutRow
	h.Walk(func(w *punkui.Widget) bool {
		if w == h.Root() {
			return true
		}
		if !w.Visible() && !all {
			return false
		}
		p := punkui.ResolvePlain(h, w.FullPath())
		rows = append(rows, layoutRow{
			path:     w.FullPath(),
			rect:     w.Rect(),
			depth:    w.Depth(),
			visible:  w.Visible(),
			position: p.Position,
		})
		return true
	})
	return rows
}

func renderLayoutTable(rows []layoutRow) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			r.path,
			fmt.Sprintf("%.1f, %.1f  %.1f x %.1f", r.rect.X, r.rect.Y, r.rect.Width, r.rect.Height),
			fmt.Sprintf("%g", r.depth),
			fmt.Sprintf("%t", r.visible),
			fmt.Sprintf("%.1f, %.1f", r.position.X, r.position.Y),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Widget", "Rect", "Depth", "Visible", "Position").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if row < len(rows) && !rows[row].visible {
				return cellStyle.Foreground(colorRed)
			}
			return cellStyle
		})
	return t.Render()
}
