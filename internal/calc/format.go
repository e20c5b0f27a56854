package calc

import "strings"

// FormatDisplay groups the integer portion of value with commas every three
// digits from the right. The fractional portion is kept verbatim.
func FormatDisplay(value string) string {
	integer, fraction, hasPoint := strings.Cut(value, ".")

	grouped := groupThousands(integer)
	if !hasPoint {
		return grouped
	}
	return grouped + "." + fraction
}

func groupThousands(integer string) string {
	sign := ""
	digits := integer
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if digits == "" || !isDigits(digits) {
		return integer
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
