// Package algo computes radar chart geometry: grid rings, axis lines,
// the data polygon, point markers and label placements.
//
// Every function is pure. Functions that take a score or axis index assume
// the inputs already passed Validate; they do not clamp.
package algo

import (
	"math"

	"github.com/huangsam/radar/schema"
)

// MinAxes is the smallest axis count that forms a polygon.
const MinAxes = 3

// AxisAngle returns the angle in radians of axis i out of n.
// Axis 0 points up; the rest follow clockwise on screen.
func AxisAngle(i, n int) float64 {
	return 2*math.Pi*float64(i)/float64(n) - math.Pi/2
}

// polarToPoint converts a radius and angle around the chart center to a point.
func polarToPoint(center schema.Point, radius, angle float64) schema.Point {
	return schema.Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// ScoreRadius maps a score in [0, 100] linearly onto [0, maxRadius].
func ScoreRadius(score, maxRadius float64) float64 {
	return score / 100 * maxRadius
}

// AxisPoint returns the point on axis i of n at the distance proportional to score.
//
// Preconditions: score in [0, 100], 0 <= i < n, n >= MinAxes.
func AxisPoint(opts schema.ChartOptions, score float64, i, n int) schema.Point {
	return polarToPoint(opts.Center, ScoreRadius(score, opts.MaxRadius), AxisAngle(i, n))
}

// GridRings returns one closed ring per configured grid level.
func GridRings(opts schema.ChartOptions, n int) []schema.Ring {
	rings := make([]schema.Ring, len(opts.GridLevels))
	for r, level := range opts.GridLevels {
		points := make([]schema.Point, n)
		for i := range n {
			points[i] = AxisPoint(opts, level, i, n)
		}
		rings[r] = schema.Ring{Level: level, Points: points}
	}
	return rings
}

// AxisLines returns the spokes from the center to the full-score point of each category.
func AxisLines(opts schema.ChartOptions, categories []string) []schema.AxisLine {
	n := len(categories)
	lines := make([]schema.AxisLine, n)
	for i, name := range categories {
		lines[i] = schema.AxisLine{
			Index:    i,
			Category: name,
			Angle:    AxisAngle(i, n),
			Start:    opts.Center,
			End:      AxisPoint(opts, 100, i, n),
		}
	}
	return lines
}

// DataPolygon maps each category, in order, to its scored point.
func DataPolygon(opts schema.ChartOptions, scores schema.ScoreSet, categories []string) []schema.Point {
	n := len(categories)
	points := make([]schema.Point, n)
	for i, name := range categories {
		points[i] = AxisPoint(opts, scores[name], i, n)
	}
	return points
}

// Markers returns the plotted data points together with their categories and scores.
func Markers(opts schema.ChartOptions, scores schema.ScoreSet, categories []string) []schema.Marker {
	n := len(categories)
	markers := make([]schema.Marker, n)
	for i, name := range categories {
		markers[i] = schema.Marker{
			Index:    i,
			Category: name,
			Score:    scores[name],
			Point:    AxisPoint(opts, scores[name], i, n),
		}
	}
	return markers
}
