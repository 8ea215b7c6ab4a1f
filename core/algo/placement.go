package algo

import (
	"math"
	"strings"

	"github.com/huangsam/radar/schema"
)

// Placement is the text policy for the title and score of one axis label.
type Placement struct {
	Title schema.TextStyle
	Score schema.TextStyle
}

// placementEpsilon treats an axis as vertical when |cos(angle)| is below it.
const placementEpsilon = 1e-6

// sixAxisPlacements is tuned by hand for the hexagon layout:
// top, upper-right, lower-right, bottom, lower-left, upper-left.
var sixAxisPlacements = [6]Placement{
	{Title: style(schema.AnchorMiddle, 0, -5), Score: style(schema.AnchorMiddle, 0, 12)},
	{Title: style(schema.AnchorStart, 5, 0), Score: style(schema.AnchorStart, 5, 15)},
	{Title: style(schema.AnchorStart, 8, 0), Score: style(schema.AnchorStart, 5, 15)},
	{Title: style(schema.AnchorMiddle, 0, -3), Score: style(schema.AnchorMiddle, 0, 10)},
	{Title: style(schema.AnchorEnd, -5, 0), Score: style(schema.AnchorEnd, -5, 15)},
	{Title: style(schema.AnchorEnd, 16, 0), Score: style(schema.AnchorEnd, -2, 15)},
}

func style(anchor schema.TextAnchor, dx, dy float64) schema.TextStyle {
	return schema.TextStyle{Anchor: anchor, DX: dx, DY: dy}
}

// PlacementFor returns the label policy of axis i out of n.
// Six-axis charts use the hand-tuned table; any other size derives the policy
// from which side of the chart the axis points to.
func PlacementFor(i, n int) Placement {
	if n == len(sixAxisPlacements) {
		return sixAxisPlacements[i]
	}

	angle := AxisAngle(i, n)
	cos, sin := math.Cos(angle), math.Sin(angle)
	switch {
	case cos > placementEpsilon:
		return Placement{Title: style(schema.AnchorStart, 5, 0), Score: style(schema.AnchorStart, 5, 15)}
	case cos < -placementEpsilon:
		return Placement{Title: style(schema.AnchorEnd, -5, 0), Score: style(schema.AnchorEnd, -5, 15)}
	case sin < 0:
		return Placement{Title: style(schema.AnchorMiddle, 0, -5), Score: style(schema.AnchorMiddle, 0, 12)}
	default:
		return Placement{Title: style(schema.AnchorMiddle, 0, -3), Score: style(schema.AnchorMiddle, 0, 10)}
	}
}

// LabelAnchor returns the label anchor of axis i out of n, placed labelGap
// beyond the outer ring, with the axis' text policy applied.
func LabelAnchor(opts schema.ChartOptions, i, n int) schema.LabelPlacement {
	angle := AxisAngle(i, n)
	p := PlacementFor(i, n)
	return schema.LabelPlacement{
		Index:     i,
		Point:     polarToPoint(opts.Center, opts.MaxRadius+opts.LabelGap, angle),
		AngleDeg:  angle * 180 / math.Pi,
		LinePitch: opts.LinePitch,
		Title:     p.Title,
		Score:     p.Score,
	}
}

// LabelLines splits a category name into stacked label lines. An explicit
// entry in lineBreaks wins; otherwise the name is split on the manual break marker.
func LabelLines(name string, lineBreaks map[string][]string) []string {
	if lines, ok := lineBreaks[name]; ok && len(lines) > 0 {
		out := make([]string, len(lines))
		copy(out, lines)
		return out
	}
	return strings.Split(name, schema.LineBreakMarker)
}

// Labels builds the label placements of every category. The score text is
// pushed below the last title line.
func Labels(opts schema.ChartOptions, scores schema.ScoreSet, categories []string, lineBreaks map[string][]string) []schema.LabelPlacement {
	n := len(categories)
	labels := make([]schema.LabelPlacement, n)
	for i, name := range categories {
		l := LabelAnchor(opts, i, n)
		l.Category = name
		l.Lines = LabelLines(name, lineBreaks)
		l.Score.DY += float64(len(l.Lines)-1) * opts.LinePitch
		l.ScoreText = schema.ScoreLabelText(scores[name])
		labels[i] = l
	}
	return labels
}
