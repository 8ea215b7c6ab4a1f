package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/radar/core"
	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// chartRequest applies the tool arguments to a copy of the base config and decodes the scores.
func (h *toolHandler) chartRequest(request mcp.CallToolRequest) (*contract.Config, schema.ScoreInput, error) {
	cfg := h.baseCfg.Clone()
	cfg.ScorePath = ""
	cfg.Scores = nil

	scores := request.GetString("scores", "")
	if strings.TrimSpace(scores) == "" {
		return nil, schema.ScoreInput{}, fmt.Errorf("scores is required")
	}
	input, err := core.DecodeScoreInput(strings.NewReader(scores))
	if err != nil {
		return nil, schema.ScoreInput{}, err
	}

	if p := request.GetString("preset", ""); p != "" {
		cfg.Preset = strings.ToLower(strings.TrimSpace(p))
	}
	if c := request.GetString("categories", ""); c != "" {
		cfg.Categories = contract.SplitList(c)
	}
	if title := request.GetString("title", ""); title != "" {
		cfg.Title = title
	}
	return cfg, input, nil
}

func (h *toolHandler) handleComputeLayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, input, err := h.chartRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart parameters: %v", err)), nil
	}

	result, err := core.GetChartResults(core.WithSuppressHeader(ctx), cfg, h.mgr, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("layout failed: %v", err)), nil
	}

	enriched := struct {
		Preset  string   `json:"preset"`
		RunUUID string   `json:"run_uuid,omitempty"`
		Ignored []string `json:"ignored_keys,omitempty"`
		schema.EnrichedLayout
	}{
		Preset:         result.Preset,
		RunUUID:        result.RunUUID,
		Ignored:        result.Ignored,
		EnrichedLayout: schema.EnrichLayout(result.Layout),
	}
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderSVG(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, input, err := h.chartRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart parameters: %v", err)), nil
	}

	result, err := core.GetChartResults(core.WithSuppressHeader(ctx), cfg, h.mgr, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("layout failed: %v", err)), nil
	}

	svg, err := core.RenderLayout(h.mgr, result.Layout, schema.SVGOut)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(svg)), nil
}

func (h *toolHandler) handleListPresets(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	presets := h.baseCfg.Presets
	if presets == nil {
		presets = schema.BuiltinPresets()
	}

	names := schema.SortedPresetNames(presets)
	sets := make([]schema.CategorySet, len(names))
	for i, name := range names {
		sets[i] = presets[name]
	}
	jsonData, _ := json.MarshalIndent(sets, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
