package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/settings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolPressDigit    = "press_digit"
	ToolPressDecimal  = "press_decimal"
	ToolPressOperator = "press_operator"
	ToolPressEquals   = "press_equals"
	ToolClearEntry    = "clear_entry"
	ToolClearAll      = "clear_all"
	ToolToggleSign    = "toggle_sign"
	ToolPercent       = "percent"
	ToolMemoryStore   = "memory_store"
	ToolMemoryRecall  = "memory_recall"
	ToolMemoryAdd     = "memory_add"
	ToolMemoryClear   = "memory_clear"
	ToolSelectHistory = "select_history"
	ToolPressKeys     = "press_keys"
	ToolGetDisplay    = "get_display"
	ToolGetHistory    = "get_history"
	ToolGetSettings   = "get_settings"
	ToolSetTheme      = "set_theme"
	ToolSelectTab     = "select_tab"
)

// Calculator is the session a tool operates on
type Calculator interface {
	Dispatch(events ...calc.Event) (calc.State, error)
	SelectHistory(id int64) (calc.State, error)
	State() calc.State
	Settings() settings.Settings
	SetTheme(theme settings.Theme) (settings.Settings, error)
	SelectTab(tab settings.Tab) settings.Settings
}

// Tool is an MCP tool definition with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool bound to the given session
func All(calculator Calculator) []Tool {
	tools := []Tool{
		NewPressDigitTool(calculator),
		NewPressOperatorTool(calculator),
		NewSelectHistoryTool(calculator),
		NewPressKeysTool(calculator),
		NewGetDisplayTool(calculator),
		NewGetHistoryTool(calculator),
		NewGetSettingsTool(calculator),
		NewSetThemeTool(calculator),
		NewSelectTabTool(calculator),
	}
	for _, key := range NewKeyTools(calculator) {
		tools = append(tools, key)
	}
	return tools
}

// jsonResult marshals a tool result into a text result
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// displayResult applies events and returns the resulting display
func displayResult(calculator Calculator, events ...calc.Event) (*mcp.CallToolResult, error) {
	state, err := calculator.Dispatch(events...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to apply key: %v", err)), nil
	}
	return jsonResult(results.NewDisplayToolResult(state))
}
