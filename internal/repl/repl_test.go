package repl

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runREPL(t *testing.T, s *session.Session, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(s, strings.NewReader(input), &out).Run(context.Background()))
	return out.String()
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	return session.New(calc.NewMachine(calc.Options{}), store, settings.Default())
}

func TestREPL_Calculation(t *testing.T) {
	s := newTestSession(t)
	out := runREPL(t, s, "1234 +\n1 =\n")

	assert.Contains(t, out, "1234 + | 1,234\n")
	assert.Contains(t, out, "> 1,235\n")
	assert.Equal(t, "1235", s.State().Display)
}

func TestREPL_MemoryIndicator(t *testing.T) {
	out := runREPL(t, newTestSession(t), "5 MS AC\n")
	assert.Contains(t, out, "M | 0\n")
}

func TestREPL_Errors(t *testing.T) {
	out := runREPL(t, newTestSession(t), "2 ^ 3\n:bogus\n:use 1\n:use x\n")

	assert.Contains(t, out, `error: unknown key: "^"`)
	assert.Contains(t, out, `error: unknown command "bogus"`)
	assert.Contains(t, out, "error: history entry not found")
	assert.Contains(t, out, `error: invalid history number "x"`)
}

func TestREPL_History(t *testing.T) {
	s := newTestSession(t)
	out := runREPL(t, s, ":history\n7 + 3 =\n2 × 4 =\n:history\nAC\n:use 2\n")

	assert.Contains(t, out, "No calculation history yet\n")
	assert.Contains(t, out, "1. 2 × 4 = 8\n2. 7 + 3 = 10\n")
	assert.Equal(t, "10", s.State().Display)
}

func TestREPL_Settings(t *testing.T) {
	s := newTestSession(t)
	out := runREPL(t, s, ":settings\n:theme toggle\n:tab history\n:theme light\n:theme blue\n")

	assert.Contains(t, out, "theme: light, tab: calculator\n")
	assert.Contains(t, out, "theme: dark, tab: calculator\n")
	assert.Contains(t, out, "theme: dark, tab: history\n(coming soon)\n")
	assert.Contains(t, out, `error: unknown theme "blue"`)
	assert.Equal(t, settings.Settings{Theme: settings.ThemeLight, Tab: settings.TabHistory}, s.Settings())
}

func TestREPL_Quit(t *testing.T) {
	s := newTestSession(t)
	runREPL(t, s, "1\n:quit\n2\n")
	assert.Equal(t, "1", s.State().Display)
}

func TestREPL_Help(t *testing.T) {
	out := runREPL(t, newTestSession(t), ":help\n")
	assert.Contains(t, out, ":history")
	assert.Contains(t, out, "%of")
	assert.NotContains(t, out, "%!")
}

func TestREPL_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(newTestSession(t), strings.NewReader("1\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
