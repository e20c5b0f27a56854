// Package calc implements the calculator engine: an immutable State record
// and a Machine that computes the next State for each input Event.
package calc

// State is one step of a calculator session. A State is never modified by
// Machine.Next; every transition returns a fresh value.
type State struct {
	// Display is the unformatted decimal string currently shown
	Display string
	// Operand is the stored first operand, valid when HasOperand is set
	Operand    float64
	HasOperand bool
	// Operator is the pending operator, OpNone when absent
	Operator Operator
	// Waiting means the next digit starts a new number
	Waiting bool
	Memory  float64

	history []HistoryEntry
}

// NewState returns the state of a fresh session
func NewState() State {
	return State{Display: "0"}
}

// FormattedDisplay returns the display with thousands separators
func (s State) FormattedDisplay() string {
	return FormatDisplay(s.Display)
}

// Pending returns the "<operand> <symbol>" readout, or "" when no operand is stored
func (s State) Pending() string {
	if !s.HasOperand {
		return ""
	}
	return FormatNumber(s.Operand) + " " + s.Operator.Symbol()
}

// MemoryActive reports whether the memory register holds a non-zero value
func (s State) MemoryActive() bool {
	return s.Memory != 0
}

// History returns a copy of the history, newest first
func (s State) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryEntry looks up a history entry by id
func (s State) HistoryEntry(id int64) (HistoryEntry, bool) {
	for _, e := range s.history {
		if e.ID == id {
			return e, true
		}
	}
	return HistoryEntry{}, false
}
