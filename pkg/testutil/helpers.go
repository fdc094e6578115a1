// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/credit-simulator/pkg/amortization"
)

// FindRow finds the amortization row for the given period.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(schedule []amortization.Row, period int) *amortization.Row {
	for i := range schedule {
		if schedule[i].Period == period {
			return &schedule[i]
		}
	}
	return nil
}

// LastRow returns the final row of a schedule, nil when it is empty.
func LastRow(schedule []amortization.Row) *amortization.Row {
	if len(schedule) == 0 {
		return nil
	}
	return &schedule[len(schedule)-1]
}

// FirstNegativeBalance returns the first period whose remaining balance
// dropped below zero, or -1 when the balance never goes negative.
func FirstNegativeBalance(schedule []amortization.Row) int {
	for _, row := range schedule {
		if row.RemainingBalance < 0 {
			return row.Period
		}
	}
	return -1
}
