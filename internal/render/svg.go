package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/huangsam/radar/schema"
)

// SVG renders the layout as a standalone SVG document.
// Elements are drawn back to front: grid, axes, data polygon, markers, labels, center dot.
func SVG(layout schema.ChartLayout, style Style) ([]byte, error) {
	if err := checkLayout(layout); err != nil {
		return nil, err
	}

	opts := layout.Options
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	if layout.Title != "" {
		buf.WriteString("  <title>")
		if err := xml.EscapeText(&buf, []byte(layout.Title)); err != nil {
			return nil, err
		}
		buf.WriteString("</title>\n")
	}
	if style.Background.A > 0 {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", cssColor(style.Background))
	}

	for _, ring := range layout.Grid {
		fmt.Fprintf(&buf, `  <polygon class="grid" points="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
			pointList(ring.Points), cssColor(style.Grid), num(style.GridWidth))
	}

	for _, axis := range layout.Axes {
		fmt.Fprintf(&buf, `  <line class="axis" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			num(axis.Start.X), num(axis.Start.Y), num(axis.End.X), num(axis.End.Y), cssColor(style.Axis), num(style.GridWidth))
	}

	fmt.Fprintf(&buf, `  <polygon class="data" points="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		pointList(layout.Polygon), cssColor(style.Fill), cssColor(style.Stroke), num(style.StrokeWidth))

	for _, m := range layout.Markers {
		fmt.Fprintf(&buf, `  <circle class="marker" cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(m.Point.X), num(m.Point.Y), num(opts.MarkerRadius), cssColor(style.Marker))
	}

	for _, label := range layout.Labels {
		if err := writeLabel(&buf, label, style); err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(&buf, `  <circle class="center" cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
		num(opts.Center.X), num(opts.Center.Y), num(opts.CenterRadius), cssColor(style.Center))
	buf.WriteString("</svg>\n")

	return buf.Bytes(), nil
}

// writeLabel writes the stacked title lines and the score text of one axis.
func writeLabel(buf *bytes.Buffer, label schema.LabelPlacement, style Style) error {
	fmt.Fprintf(buf, `  <g class="label" data-category="%s">`+"\n", attr(label.Category))
	for k, line := range label.Lines {
		y := label.Point.Y + float64(k)*label.LinePitch
		if err := writeText(buf, label.Point.X, y, label.Title, line, style); err != nil {
			return err
		}
	}
	if err := writeText(buf, label.Point.X, label.Point.Y, label.Score, label.ScoreText, style); err != nil {
		return err
	}
	buf.WriteString("  </g>\n")
	return nil
}

func writeText(buf *bytes.Buffer, x, y float64, ts schema.TextStyle, text string, style Style) error {
	fmt.Fprintf(buf, `    <text x="%s" y="%s" dx="%s" dy="%s" text-anchor="%s" font-family="%s" font-size="%s" font-weight="bold" fill="%s">`,
		num(x), num(y), num(ts.DX), num(ts.DY), ts.Anchor, attr(style.FontFamily), num(style.FontSize), cssColor(style.Text))
	if err := xml.EscapeText(buf, []byte(text)); err != nil {
		return err
	}
	buf.WriteString("</text>\n")
	return nil
}

// attr escapes a string for use inside a double-quoted attribute.
func attr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
