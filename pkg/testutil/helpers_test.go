package testutil

import (
	"testing"

	"github.com/iwvelando/credit-simulator/pkg/amortization"
)

func sampleSchedule() []amortization.Row {
	return []amortization.Row{
		{Period: 0, RemainingBalance: 1000},
		{Period: 1, Installment: 600, RemainingBalance: 450},
		{Period: 2, Installment: 600, RemainingBalance: -140},
		{Period: 3, Installment: 600, RemainingBalance: -740},
	}
}

func TestFindRow(t *testing.T) {
	schedule := sampleSchedule()

	tests := []struct {
		name            string
		period          int
		expectFound     bool
		expectedBalance float64
	}{
		{
			name:            "Find seed row",
			period:          0,
			expectFound:     true,
			expectedBalance: 1000,
		},
		{
			name:            "Find middle row",
			period:          2,
			expectFound:     true,
			expectedBalance: -140,
		},
		{
			name:        "Search for period past the term",
			period:      4,
			expectFound: false,
		},
		{
			name:        "Search for negative period",
			period:      -1,
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindRow(schedule, tt.period)

			if tt.expectFound {
				if result == nil {
					t.Fatalf("Expected to find period %d, but got nil", tt.period)
				}
				if result.Period != tt.period {
					t.Errorf("Expected period %d, got %d", tt.period, result.Period)
				}
				if result.RemainingBalance != tt.expectedBalance {
					t.Errorf("Expected balance %f, got %f", tt.expectedBalance, result.RemainingBalance)
				}
			} else if result != nil {
				t.Errorf("Expected nil for period %d, but found row %+v", tt.period, *result)
			}
		})
	}
}

func TestFindRowReturnsPointerIntoSchedule(t *testing.T) {
	schedule := sampleSchedule()

	row := FindRow(schedule, 1)
	if row == nil {
		t.Fatal("Expected to find period 1")
	}
	row.Interest = 42

	if schedule[1].Interest != 42 {
		t.Errorf("Expected modification through pointer to reach the schedule, got %f", schedule[1].Interest)
	}
}

func TestFindRowEmpty(t *testing.T) {
	if FindRow(nil, 0) != nil {
		t.Error("Expected nil for nil schedule")
	}
	if FindRow([]amortization.Row{}, 0) != nil {
		t.Error("Expected nil for empty schedule")
	}
}

func TestLastRow(t *testing.T) {
	if LastRow(nil) != nil {
		t.Error("Expected nil for nil schedule")
	}

	last := LastRow(sampleSchedule())
	if last == nil {
		t.Fatal("Expected a last row")
	}
	if last.Period != 3 {
		t.Errorf("Expected period 3, got %d", last.Period)
	}
}

func TestFirstNegativeBalance(t *testing.T) {
	if got := FirstNegativeBalance(sampleSchedule()); got != 2 {
		t.Errorf("Expected period 2, got %d", got)
	}

	positive := []amortization.Row{
		{Period: 0, RemainingBalance: 10},
		{Period: 1, RemainingBalance: 5},
	}
	if got := FirstNegativeBalance(positive); got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
}
