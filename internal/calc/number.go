package calc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the longest leading number in a display string
var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseNumber reads the longest numeric prefix of s. It returns NaN when s
// does not start with a number.
func ParseNumber(s string) float64 {
	match := numericPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return math.NaN()
	}

	// ParseFloat rejects a bare trailing point
	match = strings.TrimSuffix(match, ".")

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// FormatNumber renders f the way the calculator display shows numbers:
// shortest round-trip digits, exponent form outside [1e-6, 1e21), and
// Infinity, -Infinity or NaN for non-finite values.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers negative zero
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent rewrites "1.5e-07" as "1.5e-7"
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
