package simulator

import (
	"math"
	"strings"

	"github.com/iwvelando/credit-simulator/pkg/mathutil"
)

// ParseInput converts raw form text into an integer the way a number input
// field does: leading whitespace is skipped, an optional sign and the leading
// run of digits are read, and anything after them is ignored. Text without
// leading digits yields 0. Values beyond the int range saturate.
func ParseInput(raw string) int {
	s := strings.TrimLeft(raw, " \t\r\n")
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	value := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		digit := int(c - '0')
		if value > (math.MaxInt-digit)/10 {
			value = math.MaxInt
			break
		}
		value = value*10 + digit
	}

	if negative {
		return -value
	}
	return value
}

// Normalize truncates a numeric input toward zero and clamps it into
// [min, max]. NaN and infinities count as 0 before clamping.
func Normalize(value float64, min, max int) int {
	return mathutil.Clamp(mathutil.Truncate(value), min, max)
}

// NormalizeRaw parses raw text and clamps it into [min, max].
func NormalizeRaw(raw string, min, max int) int {
	return mathutil.Clamp(ParseInput(raw), min, max)
}
