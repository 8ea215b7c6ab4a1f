package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/huangsam/radar/core/algo"
	"github.com/huangsam/radar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLayout(t *testing.T) schema.ChartLayout {
	t.Helper()
	categories := []string{"Composition", "Noise", "Exposure", "Dynamic Range", "Sharpness", "White Balance"}
	scores := schema.ScoreSet{
		"Composition": 80, "Noise": 65.5, "Exposure": 70,
		"Dynamic Range": 55, "Sharpness": 90, "White Balance": 40,
	}
	breaks := map[string][]string{"Dynamic Range": {"Dynamic", "Range"}}
	layout, err := algo.Build(schema.DefaultChartOptions(), categories, scores, breaks)
	require.NoError(t, err)
	layout.Title = "Tom & Jerry <draft>"
	return layout
}

func TestCSSColor(t *testing.T) {
	assert.Equal(t, "#3b82f6", cssColor(color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}))
	assert.Equal(t, "rgba(59,130,246,0.5)", cssColor(DefaultStyle().Fill))
	assert.Equal(t, "rgba(0,0,0,0)", cssColor(color.NRGBA{}))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "150", num(150))
	assert.Equal(t, "63.4", num(63.40))
	assert.Equal(t, "13.4", num(13.397))
	assert.Equal(t, "0", num(-0.001))
}

func TestSVG(t *testing.T) {
	layout := sampleLayout(t)

	out, err := SVG(layout, DefaultStyle())
	require.NoError(t, err)
	svg := string(out)

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="300" height="300" viewBox="0 0 300 300">`))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Equal(t, len(layout.Options.GridLevels), strings.Count(svg, `class="grid"`), "one polygon per grid level")
	assert.Equal(t, 6, strings.Count(svg, `class="axis"`))
	assert.Equal(t, 1, strings.Count(svg, `class="data"`))
	assert.Equal(t, 6, strings.Count(svg, `class="marker"`))
	assert.Equal(t, 6, strings.Count(svg, `class="label"`))
	assert.Equal(t, 1, strings.Count(svg, `class="center"`))

	assert.Contains(t, svg, "<title>Tom &amp; Jerry &lt;draft&gt;</title>")
	assert.Contains(t, svg, `fill="rgba(59,130,246,0.5)" stroke="#3b82f6" stroke-width="2"`)
	assert.Contains(t, svg, `<circle class="marker" cx="150" cy="70" r="4" fill="#3b82f6"/>`)
	assert.Contains(t, svg, `<circle class="center" cx="150" cy="150" r="2" fill="#6b7280"/>`)

	// Top label: title and score anchored in the middle
	assert.Contains(t, svg, `<text x="150" y="30" dx="0" dy="-5" text-anchor="middle"`)
	assert.Contains(t, svg, `>(80)</text>`)
	assert.Contains(t, svg, `>(65.5)</text>`)

	// Two-line label stacks by the line pitch and pushes the score down
	assert.Contains(t, svg, `<text x="150" y="270" dx="0" dy="-3" text-anchor="middle"`)
	assert.Contains(t, svg, `<text x="150" y="282" dx="0" dy="-3" text-anchor="middle"`)
	assert.Contains(t, svg, `<text x="150" y="270" dx="0" dy="22" text-anchor="middle"`)
}

func TestSVGBackground(t *testing.T) {
	style := DefaultStyle()
	style.Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	out, err := SVG(sampleLayout(t), style)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<rect width="100%" height="100%" fill="#ffffff"/>`)
}

func TestSVGEmptyLayout(t *testing.T) {
	_, err := SVG(schema.ChartLayout{}, DefaultStyle())
	assert.ErrorIs(t, err, errEmptyLayout)
}

func TestPNG(t *testing.T) {
	layout := sampleLayout(t)

	var buf bytes.Buffer
	require.NoError(t, PNG(layout, DefaultStyle(), &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	// Corner stays transparent, the data polygon is painted
	_, _, _, cornerAlpha := img.At(0, 0).RGBA()
	assert.Zero(t, cornerAlpha)
	_, _, _, insideAlpha := img.At(150, 130).RGBA()
	assert.NotZero(t, insideAlpha)
}

func TestPNGBackground(t *testing.T) {
	style := DefaultStyle()
	style.Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	var buf bytes.Buffer
	require.NoError(t, PNG(sampleLayout(t), style, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, a := img.At(2, 2).RGBA()
	for _, channel := range []uint32{r, g, b, a} {
		assert.Greater(t, channel, uint32(0xf000))
	}
}

func TestPNGInvalidCanvas(t *testing.T) {
	layout := sampleLayout(t)
	layout.Options.Width = 0

	err := PNG(layout, DefaultStyle(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "canvas size must be positive")
}

func TestPNGOversizedCanvas(t *testing.T) {
	layout := sampleLayout(t)
	layout.Options.Width = 20000

	var buf bytes.Buffer
	err := PNG(layout, DefaultStyle(), &buf)
	assert.ErrorContains(t, err, "canvas size must be at most 4096x4096")
	assert.Zero(t, buf.Len())
}
