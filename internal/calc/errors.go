package calc

import "errors"

var (
	// ErrDivisionByZero is returned in guarded mode when a divide is applied to a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidNumber is returned in guarded mode when the display does not hold a number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidDigit is returned for digit events outside 0-9.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrUnknownOperator is returned for operator events without a valid operator.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrUnknownEvent is returned for events with an unrecognized kind.
	ErrUnknownEvent = errors.New("unknown event")
)
