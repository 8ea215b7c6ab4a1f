package core

import (
	"fmt"

	"github.com/huangsam/radar/core/algo"
	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
)

// BuildChart resolves the score input against the config and computes the layout.
func BuildChart(cfg *contract.Config, input schema.ScoreInput) (schema.ChartResult, error) {
	chart, err := ResolveChart(cfg, input)
	if err != nil {
		return schema.ChartResult{}, err
	}
	if len(chart.Ignored) > 0 {
		contract.LogWarn("ignoring score keys", fmt.Errorf("unmatched or shadowed by another key: %v", chart.Ignored))
	}

	layout, err := algo.Build(cfg.Options, chart.Categories, chart.Scores, chart.LineBreaks)
	if err != nil {
		return schema.ChartResult{}, fmt.Errorf("failed to build %s chart: %w", chart.Preset, err)
	}
	layout.Title = chart.Title

	return schema.ChartResult{
		Preset:  chart.Preset,
		Ignored: chart.Ignored,
		Layout:  layout,
	}, nil
}
