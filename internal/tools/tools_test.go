package tools

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/settings"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, guarded bool) *session.Session {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	return session.New(calc.NewMachine(calc.Options{Guarded: guarded}), store, settings.Default())
}

func newRequest(arguments map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}

func call(t *testing.T, tool Tool, arguments map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := tool.Handle(context.Background(), newRequest(arguments))
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func decode[T any](t *testing.T, result *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, result.IsError, resultText(t, result))
	var v T
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &v))
	return v
}

func keyTool(t *testing.T, calculator Calculator, name string) *KeyTool {
	t.Helper()
	for _, tool := range NewKeyTools(calculator) {
		if tool.GetTool().Name == name {
			return tool
		}
	}
	t.Fatalf("no key tool named %s", name)
	return nil
}

func TestAll_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range All(newTestSession(t, false)) {
		name := tool.GetTool().Name
		assert.False(t, seen[name], "duplicate tool %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 19)
}

func TestPressDigitTool(t *testing.T) {
	tests := []struct {
		name        string
		arguments   map[string]any
		expectError bool
	}{
		{name: "Valid digit", arguments: map[string]any{"digit": float64(7)}},
		{name: "Zero", arguments: map[string]any{"digit": float64(0)}},
		{name: "Missing digit", arguments: map[string]any{}, expectError: true},
		{name: "Out of range", arguments: map[string]any{"digit": float64(10)}, expectError: true},
		{name: "Fractional", arguments: map[string]any{"digit": float64(2.5)}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, NewPressDigitTool(newTestSession(t, false)), tt.arguments)
			assert.Equal(t, tt.expectError, result.IsError)
		})
	}
}

func TestCalculationThroughTools(t *testing.T) {
	s := newTestSession(t, false)
	digit := NewPressDigitTool(s)
	operator := NewPressOperatorTool(s)

	call(t, digit, map[string]any{"digit": float64(7)})
	display := decode[results.DisplayToolResult](t, call(t, operator, map[string]any{"operator": "add"}))
	assert.Equal(t, "7 +", display.Pending)
	assert.True(t, display.Waiting)

	call(t, digit, map[string]any{"digit": float64(3)})
	display = decode[results.DisplayToolResult](t, call(t, keyTool(t, s, ToolPressEquals), nil))
	assert.Equal(t, "10", display.Display)
	assert.Empty(t, display.Pending)

	history := decode[results.HistoryToolResult](t, call(t, NewGetHistoryTool(s), nil))
	require.Equal(t, 1, history.Count)
	assert.Equal(t, "7 + 3 = 10", history.Entries[0].Text)
	assert.Equal(t, "10", history.Entries[0].Result)
}

func TestPressOperatorTool_Invalid(t *testing.T) {
	tool := NewPressOperatorTool(newTestSession(t, false))

	result := call(t, tool, map[string]any{})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "operator parameter is required")

	result = call(t, tool, map[string]any{"operator": "power"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown operator")
}

func TestPressKeysTool(t *testing.T) {
	tests := []struct {
		name        string
		guarded     bool
		keys        string
		expected    string
		expectError string
	}{
		{name: "Grouped display", keys: "1234567 . 89", expected: "1,234,567.89"},
		{name: "Chained calculation", keys: "2 + 3 × 4 =", expected: "20"},
		{name: "Unguarded division by zero", keys: "6 / 0 =", expected: "Infinity"},
		{name: "Guarded division by zero", guarded: true, keys: "6 / 0 =", expectError: "division by zero"},
		{name: "Unknown key", keys: "2 ^ 3", expectError: "unknown key"},
		{name: "Missing keys", keys: "", expectError: "keys parameter is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewPressKeysTool(newTestSession(t, tt.guarded))
			result := call(t, tool, map[string]any{"keys": tt.keys})

			if tt.expectError != "" {
				assert.True(t, result.IsError)
				assert.Contains(t, resultText(t, result), tt.expectError)
				return
			}
			display := decode[results.DisplayToolResult](t, result)
			assert.Equal(t, tt.expected, display.Display)
		})
	}
}

func TestKeyTools_Memory(t *testing.T) {
	s := newTestSession(t, false)
	call(t, NewPressKeysTool(s), map[string]any{"keys": "5"})

	display := decode[results.DisplayToolResult](t, call(t, keyTool(t, s, ToolMemoryStore), nil))
	assert.True(t, display.MemoryActive)

	call(t, keyTool(t, s, ToolClearAll), nil)
	display = decode[results.DisplayToolResult](t, call(t, keyTool(t, s, ToolMemoryRecall), nil))
	assert.Equal(t, "5", display.Display)

	call(t, keyTool(t, s, ToolMemoryAdd), nil)
	call(t, keyTool(t, s, ToolMemoryRecall), nil)
	assert.Equal(t, "10", s.State().Display)

	display = decode[results.DisplayToolResult](t, call(t, keyTool(t, s, ToolMemoryClear), nil))
	assert.False(t, display.MemoryActive)
}

func TestKeyTools_Editing(t *testing.T) {
	s := newTestSession(t, false)
	call(t, NewPressKeysTool(s), map[string]any{"keys": "3"})

	call(t, keyTool(t, s, ToolPressDecimal), nil)
	display := decode[results.DisplayToolResult](t, call(t, keyTool(t, s, ToolPressDecimal), nil))
	assert.Equal(t, "3.", display.Raw)

	display = decode[results.DisplayToolResult](t, call(t, keyTool(t, s, ToolToggleSign), nil))
	assert.Equal(t, "-3", display.Display)

	display = decode[results.DisplayToolResult](t, call(t, keyTool(t, s, ToolPercent), nil))
	assert.Equal(t, "-0.03", display.Display)

	display = decode[results.DisplayToolResult](t, call(t, keyTool(t, s, ToolClearEntry), nil))
	assert.Equal(t, "0", display.Display)
}

func TestSelectHistoryTool(t *testing.T) {
	s := newTestSession(t, false)
	call(t, NewPressKeysTool(s), map[string]any{"keys": "9 × 9 = AC"})
	id := s.State().History()[0].ID

	tool := NewSelectHistoryTool(s)
	display := decode[results.DisplayToolResult](t, call(t, tool, map[string]any{"id": float64(id)}))
	assert.Equal(t, "81", display.Display)

	result := call(t, tool, map[string]any{"id": float64(1)})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "history entry not found")

	result = call(t, tool, map[string]any{})
	assert.True(t, result.IsError)
}

func TestGetDisplayTool(t *testing.T) {
	s := newTestSession(t, false)
	call(t, NewPressKeysTool(s), map[string]any{"keys": "1500 -"})

	display := decode[results.DisplayToolResult](t, call(t, NewGetDisplayTool(s), nil))
	assert.Equal(t, results.DisplayToolResult{
		Display: "1,500",
		Raw:     "1500",
		Pending: "1500 −",
		Waiting: true,
		Message: "Display: 1,500. Pending: 1500 −.",
	}, display)
}

func TestGetHistoryTool_Empty(t *testing.T) {
	history := decode[results.HistoryToolResult](t, call(t, NewGetHistoryTool(newTestSession(t, false)), nil))
	assert.Equal(t, 0, history.Count)
	assert.Equal(t, "No calculation history yet.", history.Message)
}

func TestSettingsTools(t *testing.T) {
	s := newTestSession(t, false)

	current := decode[results.SettingsToolResult](t, call(t, NewGetSettingsTool(s), nil))
	assert.Equal(t, settings.ThemeLight, current.Theme)
	assert.Equal(t, settings.TabCalculator, current.Tab)

	current = decode[results.SettingsToolResult](t, call(t, NewSetThemeTool(s), map[string]any{"theme": "dark"}))
	assert.Equal(t, settings.ThemeDark, current.Theme)

	current = decode[results.SettingsToolResult](t, call(t, NewSelectTabTool(s), map[string]any{"tab": "history"}))
	assert.Equal(t, settings.TabHistory, current.Tab)
	assert.True(t, current.Placeholder)

	result := call(t, NewSetThemeTool(s), map[string]any{"theme": "blue"})
	assert.True(t, result.IsError)

	result = call(t, NewSelectTabTool(s), map[string]any{"tab": "graphs"})
	assert.True(t, result.IsError)
}
