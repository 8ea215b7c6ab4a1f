package schema

// Default chart geometry, matching the score-detail view the engine was built for.
const (
	DefaultCenterX      = 150.0
	DefaultCenterY      = 150.0
	DefaultMaxRadius    = 100.0
	DefaultLabelGap     = 20.0
	DefaultLinePitch    = 12.0
	DefaultCanvasSize   = 300
	MaxCanvasSize       = 4096 // Largest width or height a chart may be rendered at
	DefaultMarkerRadius = 4.0
	DefaultCenterRadius = 2.0
)

// DefaultGridLevels are the reference ring levels, as percentages of the max radius.
var DefaultGridLevels = []float64{20, 40, 60, 80, 100}

// ChartOptions holds the layout constants supplied by the caller for each chart.
type ChartOptions struct {
	Center       Point     `json:"center"`
	MaxRadius    float64   `json:"max_radius"`
	LabelGap     float64   `json:"label_gap"`
	GridLevels   []float64 `json:"grid_levels"`
	LinePitch    float64   `json:"line_pitch"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	MarkerRadius float64   `json:"marker_radius"`
	CenterRadius float64   `json:"center_radius"`
}

// DefaultChartOptions returns the 300x300 layout used by the original score view.
func DefaultChartOptions() ChartOptions {
	levels := make([]float64, len(DefaultGridLevels))
	copy(levels, DefaultGridLevels)
	return ChartOptions{
		Center:       Point{X: DefaultCenterX, Y: DefaultCenterY},
		MaxRadius:    DefaultMaxRadius,
		LabelGap:     DefaultLabelGap,
		GridLevels:   levels,
		LinePitch:    DefaultLinePitch,
		Width:        DefaultCanvasSize,
		Height:       DefaultCanvasSize,
		MarkerRadius: DefaultMarkerRadius,
		CenterRadius: DefaultCenterRadius,
	}
}
