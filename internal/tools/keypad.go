package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calc"

	"github.com/mark3labs/mcp-go/mcp"
)

// KeyTool presses a key that takes no arguments
type KeyTool struct {
	calculator  Calculator
	name        string
	description string
	event       calc.Event
}

// NewKeyTools creates the tools for every argument-less key
func NewKeyTools(calculator Calculator) []*KeyTool {
	keys := []struct {
		name        string
		description string
		event       calc.Event
	}{
		{ToolPressDecimal, "Press the decimal point key. Ignored when the display already has a decimal point.", calc.Decimal()},
		{ToolPressEquals, "Press equals to apply the pending operator to the stored operand and the display", calc.Equals()},
		{ToolClearEntry, "Reset the display to 0, keeping the pending calculation (C)", calc.ClearEntry()},
		{ToolClearAll, "Reset the display and discard the pending calculation; memory and history are kept (AC)", calc.ClearAll()},
		{ToolToggleSign, "Negate the displayed number (+/-)", calc.ToggleSign()},
		{ToolPercent, "Divide the displayed number by 100 (%)", calc.Percent()},
		{ToolMemoryStore, "Store the displayed number in memory (MS)", calc.MemoryStore()},
		{ToolMemoryRecall, "Show the number held in memory (MR)", calc.MemoryRecall()},
		{ToolMemoryAdd, "Add the displayed number to memory (M+)", calc.MemoryAdd()},
		{ToolMemoryClear, "Reset memory to 0 (MC)", calc.MemoryClear()},
	}

	tools := make([]*KeyTool, 0, len(keys))
	for _, k := range keys {
		tools = append(tools, &KeyTool{
			calculator:  calculator,
			name:        k.name,
			description: k.description,
			event:       k.event,
		})
	}
	return tools
}

// GetTool returns the MCP tool definition
func (t *KeyTool) GetTool() mcp.Tool {
	return mcp.NewTool(t.name, mcp.WithDescription(t.description))
}

// Handle processes the tool request
func (t *KeyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return displayResult(t.calculator, t.event)
}
