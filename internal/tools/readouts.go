package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetDisplayTool returns the current display without pressing a key
type GetDisplayTool struct {
	calculator Calculator
}

// NewGetDisplayTool creates a new get display tool
func NewGetDisplayTool(calculator Calculator) *GetDisplayTool {
	return &GetDisplayTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *GetDisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetDisplay,
		mcp.WithDescription("Get the formatted display, the pending calculation and the memory indicator"),
	)
}

// Handle processes the tool request
func (t *GetDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(results.NewDisplayToolResult(t.calculator.State()))
}

// GetHistoryTool lists recent calculations
type GetHistoryTool struct {
	calculator Calculator
}

// NewGetHistoryTool creates a new get history tool
func NewGetHistoryTool(calculator Calculator) *GetHistoryTool {
	return &GetHistoryTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *GetHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetHistory,
		mcp.WithDescription("List the most recent calculations, newest first"),
	)
}

// Handle processes the tool request
func (t *GetHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(results.NewHistoryToolResult(t.calculator.State().History()))
}
