package types

// Config represents the configuration for the calc-mcp server
type Config struct {
	LogLevel     string `json:"log_level,omitempty"`
	SettingsPath string `json:"settings_path,omitempty"`
	HistoryLimit int    `json:"history_limit,omitempty"`
	Guarded      bool   `json:"guarded,omitempty"`
}
