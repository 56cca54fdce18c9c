package mcp_test

import (
	"context"
	"testing"
	"time"

	"github.com/IsaacParker30/paper-read/internal/contract"
	mcp_internal "github.com/IsaacParker30/paper-read/internal/mcp"
	"github.com/IsaacParker30/paper-read/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		Today:       schema.DayOf(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)),
		Weeks:       contract.DefaultWeeks,
		ResultLimit: contract.DefaultResultLimit,
		MinWords:    contract.DefaultMinWords,
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("log_reading invalid date", func(t *testing.T) {
		tool := s.GetTool("log_reading")
		require.NotNil(t, tool, "Tool log_reading should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "log_reading",
				Arguments: map[string]any{
					"title":   "Attention Is All You Need",
					"summary": "A summary.",
					"date":    "June 15", // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "expected YYYY-MM-DD")
	})

	t.Run("log_reading future date", func(t *testing.T) {
		tool := s.GetTool("log_reading")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "log_reading",
				Arguments: map[string]any{
					"title":   "Attention Is All You Need",
					"summary": "A summary.",
					"date":    "2024-06-16", // Past the configured reference day
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "in the future")
	})

	t.Run("render_forest weeks over limit", func(t *testing.T) {
		tool := s.GetTool("render_forest")
		require.NotNil(t, tool, "Tool render_forest should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "render_forest",
				Arguments: map[string]any{
					"weeks": 10000.0, // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "weeks cannot exceed")
	})
}
