package calc

import "fmt"

// Operator is a binary operator waiting for its second operand
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "add"
	OpSubtract Operator = "subtract"
	OpMultiply Operator = "multiply"
	OpDivide   Operator = "divide"
	OpPercent  Operator = "percent"
)

// Operators lists every valid operator in keypad order
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPercent}

var operatorSymbols = map[Operator]string{
	OpAdd:      "+",
	OpSubtract: "−",
	OpMultiply: "×",
	OpDivide:   "÷",
	OpPercent:  "%",
}

// ParseOperator returns the Operator with the given name
func ParseOperator(name string) (Operator, error) {
	op := Operator(name)
	if !op.IsValid() {
		return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
	return op, nil
}

// IsValid reports whether the operator is one of the known binary operators
func (o Operator) IsValid() bool {
	_, ok := operatorSymbols[o]
	return ok
}

// Symbol returns the symbol used in history text and the pending readout
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

// String returns the operator name
func (o Operator) String() string {
	return string(o)
}

// Apply evaluates a <op> b. Binary percent yields b percent of a.
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	case OpPercent:
		return (a * b) / 100
	default:
		return b
	}
}
