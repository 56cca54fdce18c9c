// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the PaperForest MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"PaperForest Reading Log Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: log_reading ---
	s.AddTool(mcp.NewTool("log_reading",
		mcp.WithDescription("Record a paper you read, with a summary of at least the configured minimum word count."),
		mcp.WithString("title", mcp.Description("Paper title."), mcp.Required()),
		mcp.WithString("summary", mcp.Description("Summary text of the paper."), mcp.Required()),
		mcp.WithString("paper_id", mcp.Description("Optional external identifier (DOI, arXiv ID, etc.).")),
		mcp.WithString("date", mcp.Description("Day to log the reading on (YYYY-MM-DD). Defaults to today.")),
	), h.handleLogReading)

	// --- 2. Tool: reading_stats ---
	s.AddTool(mcp.NewTool("reading_stats",
		mcp.WithDescription("Return total logs, active days and the current/longest reading streaks."),
	), h.handleReadingStats)

	// --- 3. Tool: render_forest ---
	s.AddTool(mcp.NewTool("render_forest",
		mcp.WithDescription("Render the calendar-grid forest view of recent reading activity."),
		mcp.WithNumber("weeks", mcp.Description("Number of weeks to include. Defaults to the configured window.")),
	), h.handleRenderForest)

	// --- 4. Tool: list_readings ---
	s.AddTool(mcp.NewTool("list_readings",
		mcp.WithDescription("List the most recent reading entries."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of entries returned.")),
	), h.handleListReadings)

	return s
}

// StartMCPServer starts the PaperForest MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
