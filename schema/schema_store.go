package schema

import "time"

// ChartRecord is everything the history store keeps about one rendered chart.
type ChartRecord struct {
	CreatedAt    time.Time
	Preset       string
	Title        string
	ConfigParams map[string]any
	Layout       ChartLayout
}

// ChartRunRecord represents a row from the radar_chart_runs table.
type ChartRunRecord struct {
	RunID        int64
	RunUUID      string
	CreatedAt    time.Time
	Preset       string
	Title        *string
	AxisCount    int32
	MeanScore    float64
	ConfigParams *string
}

// ChartScoreRecord represents a row from the radar_chart_scores table.
type ChartScoreRecord struct {
	RunID     int64
	AxisIndex int32
	Category  string
	Score     float64
	X         float64
	Y         float64
}
