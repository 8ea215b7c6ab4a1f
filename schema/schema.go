// Package schema has configs, models and constants for all parts of radar.
package schema

// Point is a 2-D coordinate in the chart's local coordinate space.
// Y grows downward, matching SVG and raster image conventions.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextStyle positions a piece of label text relative to its anchor point.
type TextStyle struct {
	Anchor TextAnchor `json:"anchor"`
	DX     float64    `json:"dx"`
	DY     float64    `json:"dy"`
}

// LabelPlacement holds everything needed to draw the title and score text of one axis.
type LabelPlacement struct {
	Index     int       `json:"index"`
	Category  string    `json:"category"`
	Point     Point     `json:"point"`      // Anchor at maxRadius + labelGap along the axis
	AngleDeg  float64   `json:"angle_deg"`  // Axis angle in degrees
	Lines     []string  `json:"lines"`      // Title lines, stacked downward by LinePitch
	LinePitch float64   `json:"line_pitch"` // Vertical distance between title lines
	Title     TextStyle `json:"title"`
	Score     TextStyle `json:"score"`
	ScoreText string    `json:"score_text"`
}

// Ring is one closed background grid polygon. The last point connects back to the first.
type Ring struct {
	Level  float64 `json:"level"`
	Points []Point `json:"points"`
}

// AxisLine runs from the chart center to the full-score point of an axis.
type AxisLine struct {
	Index    int     `json:"index"`
	Category string  `json:"category"`
	Angle    float64 `json:"angle"` // Radians
	Start    Point   `json:"start"`
	End      Point   `json:"end"`
}

// Marker is a plotted data point for a single category.
type Marker struct {
	Index    int     `json:"index"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Point    Point   `json:"point"`
}

// ChartLayout is the full renderable geometry of one radar chart.
type ChartLayout struct {
	Title      string           `json:"title,omitempty"`
	Options    ChartOptions     `json:"options"`
	Categories []string         `json:"categories"`
	Grid       []Ring           `json:"grid"`
	Axes       []AxisLine       `json:"axes"`
	Polygon    []Point          `json:"polygon"`
	Markers    []Marker         `json:"markers"`
	Labels     []LabelPlacement `json:"labels"`
}
