package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Zero", input: "0", expected: "0"},
		{name: "Three digits", input: "123", expected: "123"},
		{name: "Four digits", input: "1234", expected: "1,234"},
		{name: "Six digits", input: "100000", expected: "100,000"},
		{name: "Seven digits", input: "1234567", expected: "1,234,567"},
		{name: "Negative", input: "-1234.5678", expected: "-1,234.5678"},
		{name: "Negative three digits", input: "-100", expected: "-100"},
		{name: "Fraction is not grouped", input: "1000000.000001", expected: "1,000,000.000001"},
		{name: "Trailing point", input: "1234.", expected: "1,234."},
		{name: "Zero point", input: "0.", expected: "0."},
		{name: "Infinity", input: "Infinity", expected: "Infinity"},
		{name: "NaN", input: "NaN", expected: "NaN"},
		{name: "Exponent", input: "1e+21", expected: "1e+21"},
		{name: "Exponent with fraction", input: "1.5e-7", expected: "1.5e-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDisplay(tt.input))
		})
	}
}

func TestState_FormattedDisplay(t *testing.T) {
	s := State{Display: "9876543.21"}
	assert.Equal(t, "9,876,543.21", s.FormattedDisplay())
}
