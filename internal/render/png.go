package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/huangsam/radar/schema"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// supersample is the factor the chart is drawn at before downsampling.
const supersample = 4

// circleSegments approximates circles with a regular polygon.
const circleSegments = 48

var boldFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// canvas draws chart primitives onto a supersampled image.
type canvas struct {
	img   *image.RGBA
	scale float64
	face  font.Face
}

func (c *canvas) pt(p schema.Point) (float32, float32) {
	return float32(p.X * c.scale), float32(p.Y * c.scale)
}

// fillPath fills a closed path given in chart coordinates.
func (c *canvas) fillPath(points []schema.Point, col color.Color) {
	if len(points) < 3 {
		return
	}
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(c.pt(points[0]))
	for _, p := range points[1:] {
		z.LineTo(c.pt(p))
	}
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// strokeLine draws a segment of the given width as a filled quad with round caps.
func (c *canvas) strokeLine(a, b schema.Point, width float64, col color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	c.fillPath([]schema.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, col)
	c.fillCircle(a, width/2, col)
	c.fillCircle(b, width/2, col)
}

// strokeRing outlines a closed polygon.
func (c *canvas) strokeRing(points []schema.Point, width float64, col color.Color) {
	for i := range points {
		c.strokeLine(points[i], points[(i+1)%len(points)], width, col)
	}
}

func (c *canvas) fillCircle(center schema.Point, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	points := make([]schema.Point, circleSegments)
	for i := range circleSegments {
		a := 2 * math.Pi * float64(i) / circleSegments
		points[i] = schema.Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	c.fillPath(points, col)
}

// drawText draws text with its baseline at (x, y), aligned like SVG text-anchor.
func (c *canvas) drawText(x, y float64, anchor schema.TextAnchor, text string, col color.Color) {
	width := float64(font.MeasureString(c.face, text)) / 64
	px := x * c.scale
	switch anchor {
	case schema.AnchorMiddle:
		px -= width / 2
	case schema.AnchorEnd:
		px -= width
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(px * 64), Y: fixed.Int26_6(y * c.scale * 64)},
	}
	d.DrawString(text)
}

// PNG rasterizes the layout and writes it as a PNG image.
// The chart is drawn at 4x size and downsampled for anti-aliasing.
func PNG(layout schema.ChartLayout, style Style, w io.Writer) error {
	if err := checkLayout(layout); err != nil {
		return err
	}

	fnt, err := boldFont()
	if err != nil {
		return fmt.Errorf("failed to parse label font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    style.FontSize * supersample,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return fmt.Errorf("failed to create label font face: %w", err)
	}
	defer func() { _ = face.Close() }()

	opts := layout.Options
	large := image.NewRGBA(image.Rect(0, 0, opts.Width*supersample, opts.Height*supersample))
	if style.Background.A > 0 {
		draw.Draw(large, large.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	}
	c := &canvas{img: large, scale: supersample, face: face}

	for _, ring := range layout.Grid {
		c.strokeRing(ring.Points, style.GridWidth, style.Grid)
	}
	for _, axis := range layout.Axes {
		c.strokeLine(axis.Start, axis.End, style.GridWidth, style.Axis)
	}
	c.fillPath(layout.Polygon, style.Fill)
	c.strokeRing(layout.Polygon, style.StrokeWidth, style.Stroke)
	for _, m := range layout.Markers {
		c.fillCircle(m.Point, opts.MarkerRadius, style.Marker)
	}
	for _, label := range layout.Labels {
		for k, line := range label.Lines {
			y := label.Point.Y + float64(k)*label.LinePitch + label.Title.DY
			c.drawText(label.Point.X+label.Title.DX, y, label.Title.Anchor, line, style.Text)
		}
		c.drawText(label.Point.X+label.Score.DX, label.Point.Y+label.Score.DY, label.Score.Anchor, label.ScoreText, style.Text)
	}
	c.fillCircle(opts.Center, opts.CenterRadius, style.Center)

	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)

	return png.Encode(w, final)
}
