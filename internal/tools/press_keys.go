package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/keys"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool presses a sequence of keys
type PressKeysTool struct {
	calculator Calculator
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(calculator Calculator) *PressKeysTool {
	return &PressKeysTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a whitespace-separated sequence of keys, e.g. \"12.5 × 4 =\". "+
			"Keys: digits and '.', + - * / (or − × ÷), %of (percent operator), % (divide by 100), =, C, AC, +/-, MS, MR, M+, MC. "+
			"Keys are applied in order and stop at the first rejected key."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Key sequence to press")),
	)
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := mcp.ParseString(req, "keys", "")
	if input == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	events, err := keys.Parse(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse keys: %v", err)), nil
	}
	return displayResult(t.calculator, events...)
}
