// Package keys translates keypad tokens into calculator events.
//
// A key string is a whitespace-separated list of tokens. Numeric tokens such
// as "12.5" expand to one event per character; every other token names a
// single key:
//
//	+  -  *  /      add, subtract, multiply, divide (also − × x ÷)
//	%of             binary percent operator
//	%               unary percent
//	=               equals
//	C  AC           clear entry, clear all
//	+/-  ±          toggle sign
//	MS MR M+ MC     memory store, recall, add, clear
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// ErrUnknownKey is returned for tokens that do not name a key
var ErrUnknownKey = errors.New("unknown key")

var namedKeys = map[string]calc.Event{
	"+":   calc.Press(calc.OpAdd),
	"-":   calc.Press(calc.OpSubtract),
	"−":   calc.Press(calc.OpSubtract),
	"*":   calc.Press(calc.OpMultiply),
	"x":   calc.Press(calc.OpMultiply),
	"×":   calc.Press(calc.OpMultiply),
	"/":   calc.Press(calc.OpDivide),
	"÷":   calc.Press(calc.OpDivide),
	"%of": calc.Press(calc.OpPercent),
	"%":   calc.Percent(),
	"=":   calc.Equals(),
	"c":   calc.ClearEntry(),
	"ac":  calc.ClearAll(),
	"+/-": calc.ToggleSign(),
	"±":   calc.ToggleSign(),
	"ms":  calc.MemoryStore(),
	"mr":  calc.MemoryRecall(),
	"m+":  calc.MemoryAdd(),
	"mc":  calc.MemoryClear(),
}

// Parse converts a key string into events
func Parse(input string) ([]calc.Event, error) {
	var events []calc.Event
	for _, token := range strings.Fields(input) {
		tokenEvents, err := ParseToken(token)
		if err != nil {
			return nil, err
		}
		events = append(events, tokenEvents...)
	}
	return events, nil
}

// ParseToken converts a single token into events
func ParseToken(token string) ([]calc.Event, error) {
	if ev, ok := namedKeys[strings.ToLower(token)]; ok {
		return []calc.Event{ev}, nil
	}

	if !isNumeric(token) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, token)
	}

	events := make([]calc.Event, 0, len(token))
	for _, r := range token {
		if r == '.' {
			events = append(events, calc.Decimal())
		} else {
			events = append(events, calc.Digit(int(r-'0')))
		}
	}
	return events, nil
}

func isNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
