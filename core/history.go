package core

import (
	"time"

	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
)

// recordChart stores the chart in the history store when one is configured
// and returns the run UUID. Failures are logged and never fail the command.
func recordChart(mgr contract.CacheManager, cfg *contract.Config, result schema.ChartResult) string {
	if mgr == nil {
		return ""
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return ""
	}

	configParams := map[string]any{
		"output":      string(cfg.Output),
		"score_path":  cfg.ScorePath,
		"categories":  result.Layout.Categories,
		"max_radius":  result.Layout.Options.MaxRadius,
		"label_gap":   result.Layout.Options.LabelGap,
		"grid_levels": result.Layout.Options.GridLevels,
	}
	record := schema.ChartRecord{
		CreatedAt:    time.Now().UTC(),
		Preset:       result.Preset,
		Title:        result.Layout.Title,
		ConfigParams: configParams,
		Layout:       result.Layout,
	}

	_, runUUID, err := store.RecordChart(record)
	if err != nil {
		contract.LogWarn("Chart history recording failed", err)
		return ""
	}
	return runUUID
}
