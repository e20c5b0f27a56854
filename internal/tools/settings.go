package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/settings"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetSettingsTool returns the UI settings
type GetSettingsTool struct {
	calculator Calculator
}

// NewGetSettingsTool creates a new get settings tool
func NewGetSettingsTool(calculator Calculator) *GetSettingsTool {
	return &GetSettingsTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *GetSettingsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetSettings,
		mcp.WithDescription("Get the theme and the active tab"),
	)
}

// Handle processes the tool request
func (t *GetSettingsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(results.NewSettingsToolResult(t.calculator.Settings()))
}

// SetThemeTool switches between light and dark mode
type SetThemeTool struct {
	calculator Calculator
}

// NewSetThemeTool creates a new set theme tool
func NewSetThemeTool(calculator Calculator) *SetThemeTool {
	return &SetThemeTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *SetThemeTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSetTheme,
		mcp.WithDescription("Set the theme. The choice is persisted to the settings file."),
		mcp.WithString("theme", mcp.Required(),
			mcp.Enum(string(settings.ThemeLight), string(settings.ThemeDark)),
			mcp.Description("Theme to use")),
	)
}

// Handle processes the tool request
func (t *SetThemeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	theme, err := settings.ParseTheme(mcp.ParseString(req, "theme", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated, err := t.calculator.SetTheme(theme)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to set theme: %v", err)), nil
	}
	return jsonResult(results.NewSettingsToolResult(updated))
}

// SelectTabTool switches the active tab
type SelectTabTool struct {
	calculator Calculator
}

// NewSelectTabTool creates a new select tab tool
func NewSelectTabTool(calculator Calculator) *SelectTabTool {
	return &SelectTabTool{calculator: calculator}
}

// GetTool returns the MCP tool definition
func (t *SelectTabTool) GetTool() mcp.Tool {
	names := make([]string, len(settings.Tabs))
	for i, tab := range settings.Tabs {
		names[i] = string(tab)
	}

	return mcp.NewTool(ToolSelectTab,
		mcp.WithDescription("Switch the active tab. Only the calculator tab has content; the others are placeholders."),
		mcp.WithString("tab", mcp.Required(), mcp.Enum(names...), mcp.Description("Tab to show")),
	)
}

// Handle processes the tool request
func (t *SelectTabTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tab, err := settings.ParseTab(mcp.ParseString(req, "tab", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(results.NewSettingsToolResult(t.calculator.SelectTab(tab)))
}
