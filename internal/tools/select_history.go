package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// SelectHistoryTool loads a history result into the display
type SelectHistoryTool struct {
	calculator Calculator
}

// NewSelectHistoryTool creates a new select history tool
func NewSelectHistoryTool(calculator Calculator) *SelectHistoryTool {
	return &SelectHistoryTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *SelectHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSelectHistory,
		mcp.WithDescription("Load the result of a history entry into the display"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("History entry id, as returned by get_history")),
	)
}

// Handle processes the tool request
func (t *SelectHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := mcp.ParseFloat64(req, "id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	state, err := t.calculator.SelectHistory(int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to select history entry: %v", err)), nil
	}
	return jsonResult(results.NewDisplayToolResult(state))
}
