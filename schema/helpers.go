package schema

import (
	"math"
	"strconv"
)

// FormatScore renders a score the way chart labels show it: integers without decimals,
// everything else with up to two decimal places.
func FormatScore(score float64) string {
	if score == math.Trunc(score) {
		return strconv.FormatFloat(score, 'f', 0, 64)
	}
	return strconv.FormatFloat(math.Round(score*100)/100, 'f', -1, 64)
}

// ScoreLabelText wraps a formatted score in parentheses for the chart label.
func ScoreLabelText(score float64) string {
	return "(" + FormatScore(score) + ")"
}

// MeanScore returns the average plotted score, or 0 for a layout without markers.
func (l ChartLayout) MeanScore() float64 {
	if len(l.Markers) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range l.Markers {
		sum += m.Score
	}
	return sum / float64(len(l.Markers))
}

// Grade label constants.
const (
	ExcellentValue = "Excellent" // Excellent value
	GoodValue      = "Good"      // Good value
	FairValue      = "Fair"      // Fair value
	PoorValue      = "Poor"      // Poor value
)

// GetPlainLabel returns a plain text grade for a score. This is the core
// logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return ExcellentValue
	case score >= 60:
		return GoodValue
	case score >= 40:
		return FairValue
	default:
		return PoorValue
	}
}
