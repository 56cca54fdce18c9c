package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IsaacParker30/paper-read/core"
	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/internal/outwriter"
	"github.com/IsaacParker30/paper-read/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleLogReading(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Title = request.GetString("title", "")
	cfg.Summary = request.GetString("summary", "")
	cfg.PaperID = request.GetString("paper_id", "")

	if dateStr := request.GetString("date", ""); dateStr != "" {
		day, err := schema.ParseDay(dateStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD: %v", dateStr, err)), nil
		}
		if day.After(cfg.Today) {
			return mcp.NewToolResultError(fmt.Sprintf("date %s is in the future", dateStr)), nil
		}
		cfg.LoggedOn = day
	}

	entry, err := core.RecordReading(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("log failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(entry, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleReadingStats(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	result, err := core.GetStatsResult(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stats failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderForest(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if w := request.GetInt("weeks", 0); w > 0 {
		if w > contract.MaxWeeks {
			return mcp.NewToolResultError(fmt.Sprintf("weeks cannot exceed %d", contract.MaxWeeks)), nil
		}
		cfg.Weeks = w
	}

	grid, err := core.GetForestGrid(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("forest rendering failed: %v", err)), nil
	}

	return mcp.NewToolResultText(strings.Join(outwriter.ForestLines(grid), "\n")), nil
}

func (h *toolHandler) handleListReadings(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	entries, err := h.mgr.GetLogStore().RecentEntries(cfg.ResultLimit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
