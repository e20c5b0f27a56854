package results

import "github.com/averycrespi/calc-mcp/internal/settings"

// SettingsToolResult represents the UI settings of the session
type SettingsToolResult struct {
	Theme settings.Theme `json:"theme"`
	Tab   settings.Tab   `json:"tab"`
	Tabs  []settings.Tab `json:"tabs"`
	// Placeholder is set when the active tab has no content yet
	Placeholder bool `json:"placeholder"`
}

// NewSettingsToolResult creates a settings result
func NewSettingsToolResult(s settings.Settings) SettingsToolResult {
	return SettingsToolResult{
		Theme:       s.Theme,
		Tab:         s.Tab,
		Tabs:        settings.Tabs,
		Placeholder: s.Tab != settings.TabCalculator,
	}
}
