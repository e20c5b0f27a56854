package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/settings"
)

// ErrEntryNotFound is returned when a history entry id is not in the history
var ErrEntryNotFound = errors.New("history entry not found")

// Session owns the calculator state and UI settings of one user. It
// serializes events from concurrent callers so that each event is applied
// to the state left by the previous one.
type Session struct {
	machine *calc.Machine
	store   *settings.Store

	mu       sync.RWMutex
	state    calc.State
	settings settings.Settings
}

// New creates a new session starting from a fresh calculator state
func New(machine *calc.Machine, store *settings.Store, initial settings.Settings) *Session {
	if store == nil {
		store = settings.NewStore("")
	}

	return &Session{
		machine:  machine,
		store:    store,
		state:    calc.NewState(),
		settings: initial,
	}
}

// Dispatch applies events in order. When an event fails, the state left by
// the events before it is kept and the error is returned.
func (s *Session) Dispatch(events ...calc.Event) (calc.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(events...)
}

// apply runs events against the current state. The caller holds the write lock.
func (s *Session) apply(events ...calc.Event) (calc.State, error) {
	for _, ev := range events {
		next, err := s.machine.Next(s.state, ev)
		if err != nil {
			slog.Warn("Rejected calculator event", "event", ev.String(), "display", s.state.Display, "error", err)
			return s.state, fmt.Errorf("%s: %w", ev, err)
		}
		s.state = next
		slog.Debug("Applied calculator event",
			"event", ev.String(),
			"display", next.Display,
			"pending", next.Pending())
	}

	return s.state, nil
}

// SelectHistory loads the result of the history entry with the given id into the display
func (s *Session) SelectHistory(id int64) (calc.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.state.HistoryEntry(id)
	if !ok {
		return s.state, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	return s.apply(calc.SelectHistory(entry))
}

// SelectHistoryIndex loads the result of the n-th newest history entry (0-based)
func (s *Session) SelectHistoryIndex(n int) (calc.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.state.History()
	if n < 0 || n >= len(history) {
		return s.state, fmt.Errorf("%w: index %d of %d", ErrEntryNotFound, n, len(history))
	}
	return s.apply(calc.SelectHistory(history[n]))
}

// State returns the current calculator state
func (s *Session) State() calc.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Guarded reports whether invalid arithmetic is rejected
func (s *Session) Guarded() bool {
	return s.machine.Guarded()
}

// Settings returns the current UI settings
func (s *Session) Settings() settings.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// SetTheme changes and persists the theme
func (s *Session) SetTheme(theme settings.Theme) (settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(theme); err != nil {
		return s.settings, fmt.Errorf("failed to persist theme: %w", err)
	}
	s.settings.Theme = theme

	slog.Info("Theme changed", "theme", theme)
	return s.settings, nil
}

// ApplyTheme changes the theme without persisting it, for changes that
// originate from the settings file itself
func (s *Session) ApplyTheme(theme settings.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.Theme != theme {
		slog.Info("Theme reloaded", "theme", theme)
	}
	s.settings.Theme = theme
}

// SelectTab switches the active tab
func (s *Session) SelectTab(tab settings.Tab) settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Tab = tab
	return s.settings
}
