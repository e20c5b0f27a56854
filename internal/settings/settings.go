// Package settings holds the UI settings of a calculator session. Only the
// theme is persisted; the active tab lives for the session.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/averycrespi/calc-mcp/pkg/project"
	"gopkg.in/yaml.v3"
)

// Theme is the page color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the named theme
func ParseTheme(name string) (Theme, error) {
	switch Theme(name) {
	case ThemeLight, ThemeDark:
		return Theme(name), nil
	default:
		return "", fmt.Errorf("unknown theme %q, expected %q or %q", name, ThemeLight, ThemeDark)
	}
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Tab is a page of the calculator shell
type Tab string

const (
	TabCalculator Tab = "calculator"
	TabHistory    Tab = "history"
	TabSettings   Tab = "settings"
)

// Tabs lists the tabs in navigation order
var Tabs = []Tab{TabCalculator, TabHistory, TabSettings}

// ParseTab returns the named tab
func ParseTab(name string) (Tab, error) {
	for _, tab := range Tabs {
		if string(tab) == name {
			return tab, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", name)
}

// Settings is the UI configuration passed to a session
type Settings struct {
	Theme Theme `json:"theme"`
	Tab   Tab   `json:"tab"`
}

// Default returns the settings of a fresh session
func Default() Settings {
	return Settings{Theme: ThemeLight, Tab: TabCalculator}
}

// DefaultPath returns the settings file location under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, project.Name, "settings.yaml"), nil
}

// settingsFile is the on-disk representation
type settingsFile struct {
	DarkMode bool `yaml:"dark_mode"`
}

// Store persists the theme preference. A Store with an empty path keeps
// nothing on disk.
type Store struct {
	path string
}

// NewStore creates a new settings store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted theme. A missing file yields the light theme.
func (s *Store) Load() (Theme, error) {
	if s.path == "" {
		return ThemeLight, nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("load settings %q: %w", s.path, err)
	}

	return s.decode(data)
}

func (s *Store) decode(data []byte) (Theme, error) {
	var f settingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("parse settings %q: %w", s.path, err)
	}

	if f.DarkMode {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}

// Save writes the theme preference
func (s *Store) Save(theme Theme) error {
	if s.path == "" {
		return nil
	}

	data, err := yaml.Marshal(settingsFile{DarkMode: theme == ThemeDark})
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	// write a sibling file and rename it so watchers never see a truncated file
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("save settings %q: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save settings %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save settings %q: %w", s.path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("save settings %q: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save settings %q: %w", s.path, err)
	}
	return nil
}
