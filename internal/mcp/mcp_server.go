// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/radar/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Radar MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Radar Chart Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: compute_radar_layout ---
	s.AddTool(mcp.NewTool("compute_radar_layout",
		mcp.WithDescription("Compute the geometry of a radar chart: grid rings, axes, data polygon, markers and label placement."),
		mcp.WithString("scores", mcp.Description(`Scores as JSON, either {"name": score} or {"version": 1, "preset": "v1", "title": "...", "scores": {...}}. Scores range from 0 to 100.`), mcp.Required()),
		mcp.WithString("preset", mcp.Description("Category set to use (e.g. v1, v2). Defaults to the preset named by the scores, then v2.")),
		mcp.WithString("categories", mcp.Description("Comma-separated category order, overriding the preset.")),
		mcp.WithString("title", mcp.Description("Chart title.")),
	), h.handleComputeLayout)

	// --- 2. Tool: render_radar_svg ---
	s.AddTool(mcp.NewTool("render_radar_svg",
		mcp.WithDescription("Render a radar chart as an SVG document."),
		mcp.WithString("scores", mcp.Description("Scores as JSON, same shape as compute_radar_layout."), mcp.Required()),
		mcp.WithString("preset", mcp.Description("Category set to use (e.g. v1, v2).")),
		mcp.WithString("categories", mcp.Description("Comma-separated category order, overriding the preset.")),
		mcp.WithString("title", mcp.Description("Chart title.")),
	), h.handleRenderSVG)

	// --- 3. Tool: list_presets ---
	s.AddTool(mcp.NewTool("list_presets",
		mcp.WithDescription("List the available category sets with their categories and aliases."),
	), h.handleListPresets)

	return s
}

// StartMCPServer starts the Radar MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
