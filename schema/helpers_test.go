package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "100"},
		{0, "0"},
		{75, "75"},
		{72.5, "72.5"},
		{33.333333, "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScore(tt.score))
		})
	}
}

func TestScoreLabelText(t *testing.T) {
	assert.Equal(t, "(85)", ScoreLabelText(85))
	assert.Equal(t, "(42.5)", ScoreLabelText(42.5))
}

func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, "Excellent", GetPlainLabel(80))
	assert.Equal(t, "Good", GetPlainLabel(79.9))
	assert.Equal(t, "Fair", GetPlainLabel(40))
	assert.Equal(t, "Poor", GetPlainLabel(0))
}

func TestMeanScore(t *testing.T) {
	assert.Equal(t, 0.0, ChartLayout{}.MeanScore())

	l := ChartLayout{Markers: []Marker{{Score: 100}, {Score: 50}, {Score: 0}}}
	assert.InDelta(t, 50.0, l.MeanScore(), 1e-9)
}

func TestBuiltinPresets(t *testing.T) {
	presets := BuiltinPresets()
	assert.Equal(t, []string{PresetV1, PresetV2}, SortedPresetNames(presets))

	v1 := presets[PresetV1]
	assert.Equal(t, []string{"composition", "noise", "exposure", "dynamic_range", "sharpness", "white_balance"}, v1.Keys())
	assert.Equal(t, []string{"Dynamic", "Range"}, v1.LineBreaks()["dynamic_range"])

	v2 := presets[PresetV2]
	assert.Len(t, v2.Categories, 6)
	assert.Equal(t, "aesthetics", v2.Categories[3].Key)

	// Fresh copies: mutating one result must not leak into the next call.
	v2.Categories[0].Key = "mutated"
	assert.Equal(t, "composition", BuiltinPresets()[PresetV2].Categories[0].Key)
}

func TestPresetForVersion(t *testing.T) {
	assert.Equal(t, PresetV1, PresetForVersion(1))
	assert.Equal(t, PresetV2, PresetForVersion(2))
	assert.Equal(t, "", PresetForVersion(7))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "noise", Category{Key: "noise"}.Label())
	assert.Equal(t, "Noise", Category{Key: "noise", Display: "Noise"}.Label())
}

func TestDefaultChartOptions(t *testing.T) {
	opts := DefaultChartOptions()
	assert.Equal(t, Point{X: 150, Y: 150}, opts.Center)
	assert.Equal(t, 100.0, opts.MaxRadius)
	assert.Equal(t, []float64{20, 40, 60, 80, 100}, opts.GridLevels)

	opts.GridLevels[0] = 1
	assert.Equal(t, 20.0, DefaultGridLevels[0], "defaults must be copied, not shared")
}
