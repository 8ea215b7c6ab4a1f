package algo

import (
	"fmt"
	"math"

	"github.com/huangsam/radar/schema"
)

// Validate checks every precondition of a layout call and returns the first violation.
func Validate(opts schema.ChartOptions, categories []string, scores schema.ScoreSet) error {
	if err := ValidateOptions(opts); err != nil {
		return err
	}
	if len(categories) < MinAxes {
		return newLayoutError(fmt.Sprintf("%d categories", len(categories)), ErrInsufficientAxes)
	}

	seen := make(map[string]struct{}, len(categories))
	for _, name := range categories {
		if _, dup := seen[name]; dup {
			return newLayoutError(name, ErrDuplicateCategory)
		}
		seen[name] = struct{}{}

		score, ok := scores[name]
		if !ok {
			return newLayoutError(name, ErrMissingCategory)
		}
		if err := ValidateScore(score); err != nil {
			return newLayoutError(name, err)
		}
	}
	return nil
}

// ValidateScore rejects scores outside [0, 100] as well as NaN and infinities.
func ValidateScore(score float64) error {
	if math.IsNaN(score) || score < 0 || score > 100 {
		return ErrInvalidScore
	}
	return nil
}

// ValidateOptions checks the geometry constants of a chart.
func ValidateOptions(opts schema.ChartOptions) error {
	switch {
	case !finite(opts.Center.X) || !finite(opts.Center.Y):
		return newLayoutError("center", ErrInvalidGeometry)
	case !(opts.MaxRadius > 0) || !finite(opts.MaxRadius):
		return newLayoutError("max_radius", ErrInvalidGeometry)
	case opts.LabelGap < 0 || !finite(opts.LabelGap):
		return newLayoutError("label_gap", ErrInvalidGeometry)
	case opts.LinePitch < 0 || !finite(opts.LinePitch):
		return newLayoutError("line_pitch", ErrInvalidGeometry)
	}
	for _, level := range opts.GridLevels {
		if !(level > 0) || level > 100 {
			return newLayoutError(fmt.Sprintf("grid level %v", level), ErrInvalidGeometry)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
