package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calc"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressOperatorTool handles operator key presses
type PressOperatorTool struct {
	calculator Calculator
}

// NewPressOperatorTool creates a new press operator tool
func NewPressOperatorTool(calculator Calculator) *PressOperatorTool {
	return &PressOperatorTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *PressOperatorTool) GetTool() mcp.Tool {
	names := make([]string, len(calc.Operators))
	for i, op := range calc.Operators {
		names[i] = op.String()
	}

	return mcp.NewTool(ToolPressOperator,
		mcp.WithDescription("Press an operator key. Applies any pending operator first, then waits for the next operand. "+
			"The percent operator computes operand × display / 100."),
		mcp.WithString("operator", mcp.Required(), mcp.Enum(names...), mcp.Description("Operator to press")),
	)
}

// Handle processes the tool request
func (t *PressOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := mcp.ParseString(req, "operator", "")
	if name == "" {
		return mcp.NewToolResultError("operator parameter is required"), nil
	}

	op, err := calc.ParseOperator(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return displayResult(t.calculator, calc.Press(op))
}
