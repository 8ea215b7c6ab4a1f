// Package core has core logic for resolving scores, building and rendering charts.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/radar/core/algo"
	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/internal/outwriter"
	"github.com/huangsam/radar/schema"
)

// ExecutorFunc defines the function signature for executing chart commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteLayout computes the chart layout and prints it in the configured data format.
// It serves as the main entry point for the 'layout' command.
func ExecuteLayout(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	result, err := GetLayoutResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	rows := result.Layout.Markers
	if cfg.Rank {
		rows = algo.RankMarkers(rows, 0)
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteLayout(result, rows, cfg, duration)
}

// ExecuteRender computes the chart layout and writes it as an SVG or PNG image.
// It serves as the main entry point for the 'render' command.
func ExecuteRender(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	_, data, err := GetRenderResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteArtifact(data, cfg)
}

// ExecutePresets prints the available category sets.
func ExecutePresets(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	presets := cfg.Presets
	if presets == nil {
		presets = schema.BuiltinPresets()
	}
	return outwriter.NewOutWriter().WritePresets(presets, cfg)
}

// GetLayoutResults loads the scores, builds the chart and records it in history.
func GetLayoutResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.ChartResult, error) {
	if !shouldSuppressHeader(ctx) {
		logChartHeader(cfg)
	}

	input, err := LoadScoreInput(cfg.ScorePath)
	if err != nil {
		return schema.ChartResult{}, err
	}
	return GetChartResults(ctx, cfg, mgr, input)
}

// GetChartResults builds the chart from already decoded scores and records it in history.
func GetChartResults(_ context.Context, cfg *contract.Config, mgr contract.CacheManager, input schema.ScoreInput) (schema.ChartResult, error) {
	result, err := BuildChart(cfg, input)
	if err != nil {
		return schema.ChartResult{}, err
	}
	result.RunUUID = recordChart(mgr, cfg, result)
	return result, nil
}

// GetRenderResults builds the chart and renders it in the configured image format,
// going through the render cache when one is configured.
func GetRenderResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.ChartResult, []byte, error) {
	if !cfg.Output.IsArtifact() {
		return schema.ChartResult{}, nil, fmt.Errorf("render supports svg and png output (received %s)", cfg.Output)
	}
	result, err := GetLayoutResults(ctx, cfg, mgr)
	if err != nil {
		return schema.ChartResult{}, nil, err
	}
	data, err := RenderLayout(mgr, result.Layout, cfg.Output)
	if err != nil {
		return schema.ChartResult{}, nil, err
	}
	return result, data, nil
}

// RenderLayout draws a layout as SVG or PNG bytes.
func RenderLayout(mgr contract.CacheManager, layout schema.ChartLayout, format schema.OutputMode) ([]byte, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetRenderStore()
	}
	data, err := cachedRender(store, layout, format)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return data, nil
}

// logChartHeader prints a one-line header for each chart. It stays silent
// when chart data goes to stdout in a machine-readable format.
func logChartHeader(cfg *contract.Config) {
	if cfg.Output != schema.TextOut && cfg.OutputFile == "" {
		return
	}
	source := cfg.ScorePath
	switch source {
	case "":
		source = "flags"
	case contract.StdinPath:
		source = "stdin"
	}
	preset := cfg.Preset
	if preset == "" {
		preset = "auto"
	}
	if cfg.UseEmojis {
		fmt.Printf("🕸️  Scores: %s (Preset: %s)\n", source, preset)
	} else {
		fmt.Printf("Scores: %s (Preset: %s)\n", source, preset)
	}
}
