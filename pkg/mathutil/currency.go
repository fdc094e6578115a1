// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
)

// Round rounds a value to the nearest whole currency unit. Halves round away
// from zero (2.5 -> 3, -2.5 -> -3); every rounded quantity in the simulator
// goes through here.
func Round(val float64) float64 {
	return math.Round(val)
}

// Truncate drops the fractional part of a value. NaN and infinities become 0;
// values outside the int range saturate at math.MinInt or math.MaxInt.
func Truncate(val float64) int {
	switch {
	case math.IsNaN(val) || math.IsInf(val, 0):
		return 0
	case val >= math.MaxInt:
		return math.MaxInt
	case val <= math.MinInt:
		return math.MinInt
	}
	return int(math.Trunc(val))
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Finite replaces NaN and infinities with 0.
func Finite(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}
