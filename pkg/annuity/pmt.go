// Package annuity implements the standard annuity payment (PMT) formula.
package annuity

import "math"

// Timing indicates when within a period a payment is made.
type Timing int

const (
	// EndOfPeriod pays at the end of each period (ordinary annuity).
	EndOfPeriod Timing = iota
	// StartOfPeriod pays at the start of each period (annuity due).
	StartOfPeriod
)

// PMT returns the fixed periodic payment that amortizes pv (plus an optional
// future value fv) over nper periods at the periodic rate. Money paid out is
// negative, so a loan expressed as a negative pv yields a positive payment.
//
// A non-positive nper yields 0.
func PMT(rate float64, nper int, pv, fv float64, timing Timing) float64 {
	if nper <= 0 {
		return 0
	}

	n := float64(nper)
	if rate == 0 {
		return -(pv + fv) / n
	}

	growth := math.Pow(1+rate, n)
	payment := rate / (growth - 1) * -(pv*growth + fv)
	if timing == StartOfPeriod {
		payment /= 1 + rate
	}
	return payment
}

// Payment is PMT with no future value and end-of-period payments.
func Payment(rate float64, nper int, pv float64) float64 {
	return PMT(rate, nper, pv, 0, EndOfPeriod)
}
