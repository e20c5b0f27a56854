package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calc"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressDigitTool handles digit key presses
type PressDigitTool struct {
	calculator Calculator
}

// NewPressDigitTool creates a new press digit tool
func NewPressDigitTool(calculator Calculator) *PressDigitTool {
	return &PressDigitTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *PressDigitTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressDigit,
		mcp.WithDescription("Press a digit key. Starts a new number right after an operator or equals, otherwise appends to the display."),
		mcp.WithNumber("digit", mcp.Required(), mcp.Description("Digit to press (0-9)")),
	)
}

// Handle processes the tool request
func (t *PressDigitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	digit := mcp.ParseFloat64(req, "digit", -1)
	if digit != float64(int(digit)) || digit < 0 || digit > 9 {
		return mcp.NewToolResultError("digit parameter must be an integer from 0 to 9"), nil
	}
	return displayResult(t.calculator, calc.Digit(int(digit)))
}
