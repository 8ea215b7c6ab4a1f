package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/radar/internal/contract"
	mcp_internal "github.com/huangsam/radar/internal/mcp"
	"github.com/huangsam/radar/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const v1Scores = `{"version": 1, "scores": {"구도": 80, "노이즈": 65, "노출": 70, "다이나믹 레인지": 55, "선명도": 90, "화이트밸런스": 75}}`

func baseConfig() *contract.Config {
	return &contract.Config{
		Options:   schema.DefaultChartOptions(),
		Presets:   schema.BuiltinPresets(),
		Precision: 2,
		Output:    schema.TextOut,
	}
}

func callTool(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	// No stores: the handlers must work without caching or history
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseConfig(), mgr)

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestComputeRadarLayout(t *testing.T) {
	res := callTool(t, "compute_radar_layout", map[string]any{"scores": v1Scores, "title": "IMG_0042"})
	require.False(t, res.IsError, resultText(t, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
	assert.Equal(t, "v1", decoded["preset"])
	assert.Equal(t, "IMG_0042", decoded["title"])
	assert.Len(t, decoded["markers"], 6)
	assert.Len(t, decoded["labels"], 6)
	assert.InDelta(t, 72.5, decoded["mean_score"], 1e-9)
}

func TestComputeRadarLayoutCustomCategories(t *testing.T) {
	res := callTool(t, "compute_radar_layout", map[string]any{
		"scores":     `{"speed": 40, "power": 60, "range": 80, "extra": 1}`,
		"categories": "speed, power, range",
	})
	require.False(t, res.IsError, resultText(t, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
	assert.Equal(t, "custom", decoded["preset"])
	assert.Equal(t, []any{"speed", "power", "range"}, decoded["categories"])
	assert.Equal(t, []any{"extra"}, decoded["ignored_keys"])
}

func TestRenderRadarSVG(t *testing.T) {
	res := callTool(t, "render_radar_svg", map[string]any{"scores": v1Scores, "preset": "V1"})
	require.False(t, res.IsError, resultText(t, res))

	svg := resultText(t, res)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, `class="data"`)
	assert.Contains(t, svg, "(90)")
}

func TestListPresets(t *testing.T) {
	res := callTool(t, "list_presets", nil)
	require.False(t, res.IsError)

	var sets []schema.CategorySet
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &sets))
	require.Len(t, sets, 2)
	assert.Equal(t, "v1", sets[0].Name)
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		expected string
	}{
		{
			name:     "missing scores",
			tool:     "compute_radar_layout",
			args:     map[string]any{},
			expected: "scores is required",
		},
		{
			name:     "malformed scores",
			tool:     "compute_radar_layout",
			args:     map[string]any{"scores": `{"composition": "high"}`},
			expected: "invalid chart parameters",
		},
		{
			name:     "score out of range",
			tool:     "compute_radar_layout",
			args:     map[string]any{"scores": `{"composition": 101, "subject": 1, "exposure": 1, "aesthetics": 1, "sharpness": 1, "color": 1}`},
			expected: "score must be within",
		},
		{
			name:     "missing category",
			tool:     "render_radar_svg",
			args:     map[string]any{"scores": `{"composition": 50}`},
			expected: "no entry for category",
		},
		{
			name:     "unknown preset",
			tool:     "render_radar_svg",
			args:     map[string]any{"scores": v1Scores, "preset": "portrait"},
			expected: "unknown preset",
		},
		{
			name:     "too few axes",
			tool:     "compute_radar_layout",
			args:     map[string]any{"scores": `{"a": 1, "b": 2}`, "categories": "a,b"},
			expected: "layout failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, tt.tool, tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), tt.expected)
		})
	}
}
