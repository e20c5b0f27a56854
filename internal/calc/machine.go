package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Options configures a Machine
type Options struct {
	// Guarded turns division by zero and non-numeric operands into errors
	// instead of letting Infinity and NaN reach the display.
	Guarded bool
	// HistoryLimit caps the history length. Values outside 1..10 mean 10.
	HistoryLimit int
	// Clock supplies history entry timestamps. Defaults to time.Now.
	Clock func() time.Time
}

// Machine computes calculator state transitions. It holds no session state
// and is safe for concurrent use.
type Machine struct {
	guarded bool
	limit   int
	clock   func() time.Time
}

// NewMachine creates a new Machine
func NewMachine(opts Options) *Machine {
	limit := opts.HistoryLimit
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Machine{
		guarded: opts.Guarded,
		limit:   limit,
		clock:   clock,
	}
}

// Guarded reports whether the machine rejects invalid arithmetic
func (m *Machine) Guarded() bool {
	return m.guarded
}

// Next returns the state that follows s after ev. On error the returned
// state is s unchanged.
func (m *Machine) Next(s State, ev Event) (State, error) {
	switch ev.Kind {
	case KindDigit:
		return m.digit(s, ev.Digit)
	case KindDecimal:
		return m.decimal(s), nil
	case KindOperator:
		return m.operator(s, ev.Operator)
	case KindEquals:
		return m.equals(s)
	case KindClearEntry:
		s.Display = "0"
		return s, nil
	case KindClearAll:
		s.Display = "0"
		s.Operand, s.HasOperand = 0, false
		s.Operator = OpNone
		s.Waiting = false
		return s, nil
	case KindToggleSign:
		return m.unary(s, func(v float64) float64 { return -v })
	case KindPercent:
		return m.unary(s, func(v float64) float64 { return v / 100 })
	case KindMemoryStore:
		v, err := m.operand(s)
		if err != nil {
			return s, err
		}
		s.Memory = v
		return s, nil
	case KindMemoryRecall:
		s.Display = FormatNumber(s.Memory)
		s.Waiting = false
		return s, nil
	case KindMemoryAdd:
		v, err := m.operand(s)
		if err != nil {
			return s, err
		}
		s.Memory += v
		return s, nil
	case KindMemoryClear:
		s.Memory = 0
		return s, nil
	case KindHistorySelect:
		if result := ev.Entry.Result(); result != "" {
			s.Display = result
		}
		return s, nil
	default:
		return s, fmt.Errorf("%w: %d", ErrUnknownEvent, ev.Kind)
	}
}

// Run applies events in order, stopping at the first error
func (m *Machine) Run(s State, events ...Event) (State, error) {
	for _, ev := range events {
		next, err := m.Next(s, ev)
		if err != nil {
			return s, fmt.Errorf("%s: %w", ev, err)
		}
		s = next
	}
	return s, nil
}

func (m *Machine) digit(s State, d int) (State, error) {
	if d < 0 || d > 9 {
		return s, fmt.Errorf("%w: %d", ErrInvalidDigit, d)
	}

	digit := strconv.Itoa(d)
	switch {
	case s.Waiting:
		s.Display = digit
		s.Waiting = false
	case s.Display == "0":
		s.Display = digit
	default:
		s.Display += digit
	}
	return s, nil
}

func (m *Machine) decimal(s State) State {
	switch {
	case s.Waiting:
		s.Display = "0."
		s.Waiting = false
	case !strings.Contains(s.Display, "."):
		s.Display += "."
	}
	return s
}

func (m *Machine) operator(s State, op Operator) (State, error) {
	if !op.IsValid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}

	input, err := m.operand(s)
	if err != nil {
		return s, err
	}

	next := s
	if !s.HasOperand {
		next.Operand, next.HasOperand = input, true
	} else if s.Operator != OpNone {
		result, err := m.evaluate(s.Operator, s.Operand, input)
		if err != nil {
			return s, err
		}
		next.Display = FormatNumber(result)
		next.Operand = result
		next.history = m.record(s, s.Operator, s.Operand, input, result)
	}

	next.Operator = op
	next.Waiting = true
	return next, nil
}

func (m *Machine) equals(s State) (State, error) {
	if !s.HasOperand || s.Operator == OpNone {
		return s, nil
	}

	input, err := m.operand(s)
	if err != nil {
		return s, err
	}

	result, err := m.evaluate(s.Operator, s.Operand, input)
	if err != nil {
		return s, err
	}

	next := s
	next.history = m.record(s, s.Operator, s.Operand, input, result)
	next.Display = FormatNumber(result)
	next.Operand, next.HasOperand = 0, false
	next.Operator = OpNone
	next.Waiting = true
	return next, nil
}

func (m *Machine) unary(s State, fn func(float64) float64) (State, error) {
	v, err := m.operand(s)
	if err != nil {
		return s, err
	}
	s.Display = FormatNumber(fn(v))
	return s, nil
}

// operand parses the display
func (m *Machine) operand(s State) (float64, error) {
	v := ParseNumber(s.Display)
	if m.guarded && math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s.Display)
	}
	return v, nil
}

func (m *Machine) evaluate(op Operator, a, b float64) (float64, error) {
	if m.guarded && op == OpDivide && b == 0 {
		return 0, fmt.Errorf("%w: %s ÷ 0", ErrDivisionByZero, FormatNumber(a))
	}
	return op.Apply(a, b), nil
}

func (m *Machine) record(s State, op Operator, a, b, result float64) []HistoryEntry {
	return pushHistory(s.history, historyText(op, a, b, result), m.clock(), m.limit)
}
