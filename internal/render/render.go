// Package render turns a chart layout into SVG markup or a PNG raster.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/huangsam/radar/schema"
)

// errEmptyLayout is returned when a layout has nothing to draw.
var errEmptyLayout = errors.New("layout has no axes to render")

// Style holds the colors and strokes used to draw a chart.
type Style struct {
	Background  color.NRGBA // Fully transparent means no background
	Grid        color.NRGBA
	Axis        color.NRGBA
	Fill        color.NRGBA
	Stroke      color.NRGBA
	Marker      color.NRGBA
	Text        color.NRGBA
	Center      color.NRGBA
	GridWidth   float64
	StrokeWidth float64
	FontSize    float64
	FontFamily  string
}

// DefaultStyle returns the palette of the photo score view.
func DefaultStyle() Style {
	return Style{
		Grid:        color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		Axis:        color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		Fill:        color.NRGBA{R: 59, G: 130, B: 246, A: 128},
		Stroke:      color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
		Marker:      color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
		Text:        color.NRGBA{R: 0x4b, G: 0x55, B: 0x63, A: 0xff},
		Center:      color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
		GridWidth:   1,
		StrokeWidth: 2,
		FontSize:    12,
		FontFamily:  "sans-serif",
	}
}

// cssColor formats a color for SVG attributes.
func cssColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	alpha := strconv.FormatFloat(float64(c.A)/255, 'f', 2, 64)
	alpha = strings.TrimRight(strings.TrimRight(alpha, "0"), ".")
	if alpha == "" {
		alpha = "0"
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, alpha)
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// pointList formats points as an SVG points attribute.
func pointList(points []schema.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func checkLayout(layout schema.ChartLayout) error {
	if len(layout.Categories) == 0 {
		return errEmptyLayout
	}
	if layout.Options.Width <= 0 || layout.Options.Height <= 0 {
		return fmt.Errorf("canvas size must be positive (received %dx%d)", layout.Options.Width, layout.Options.Height)
	}
	if layout.Options.Width > schema.MaxCanvasSize || layout.Options.Height > schema.MaxCanvasSize {
		return fmt.Errorf("canvas size must be at most %dx%d (received %dx%d)",
			schema.MaxCanvasSize, schema.MaxCanvasSize, layout.Options.Width, layout.Options.Height)
	}
	return nil
}
