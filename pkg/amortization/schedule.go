// Package amortization generates month-by-month loan amortization schedules.
package amortization

import (
	"github.com/iwvelando/credit-simulator/pkg/constants"
	"github.com/iwvelando/credit-simulator/pkg/mathutil"
	"go.uber.org/zap"
)

// Row holds the flows for a single period of a schedule.
type Row struct {
	Period           int     `json:"period"`
	Installment      float64 `json:"installment"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	Insurance        float64 `json:"insurance"`
	Contribution     float64 `json:"contribution"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// Totals aggregates the flows of a schedule.
type Totals struct {
	Installments float64 `json:"installments"`
	Interest     float64 `json:"interest"`
	Principal    float64 `json:"principal"`
	Insurance    float64 `json:"insurance"`
}

// Generator produces amortization schedules for a fixed life insurance rate.
type Generator struct {
	logger                  *zap.Logger
	insuranceRatePerMillion float64
}

// NewGenerator creates a new generator instance
func NewGenerator(logger *zap.Logger, insuranceRatePerMillion float64) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger, insuranceRatePerMillion: insuranceRatePerMillion}
}

// GenerateSchedule returns termMonths+1 rows. Row 0 carries no flows and the
// full starting balance. Insurance is charged on the original totalAmount in
// every period, and the contribution column is always zero.
//
// Each period rounds interest, principal and balance independently, so the
// final balance generally drifts away from zero. That drift is left in place.
func (g *Generator) GenerateSchedule(totalAmount, installment, monthlyRate float64, termMonths int) []Row {
	if termMonths < 0 {
		termMonths = 0
	}

	insurance := g.insuranceRatePerMillion * totalAmount / constants.PerMillion
	const contribution = 0.0

	schedule := make([]Row, 0, termMonths+1)
	schedule = append(schedule, Row{RemainingBalance: totalAmount})

	balance := totalAmount
	for period := 1; period <= termMonths; period++ {
		interest := 0.0
		if balance > constants.BalanceResidueThreshold {
			interest = mathutil.Round(balance * monthlyRate)
		}
		principal := mathutil.Round(installment - interest - insurance - contribution)
		balance = mathutil.Round(balance - principal)

		schedule = append(schedule, Row{
			Period:           period,
			Installment:      installment,
			Interest:         interest,
			Principal:        principal,
			Insurance:        insurance,
			Contribution:     contribution,
			RemainingBalance: balance,
		})
	}

	g.logger.Debug("generated amortization schedule",
		zap.String("op", "amortization.GenerateSchedule"),
		zap.Float64("totalAmount", totalAmount),
		zap.Float64("installment", installment),
		zap.Float64("monthlyRate", monthlyRate),
		zap.Int("termMonths", termMonths),
		zap.Float64("finalBalance", balance),
	)

	return schedule
}

// Sum totals every row of a schedule; the seed row contributes nothing.
func Sum(schedule []Row) Totals {
	var totals Totals
	for _, row := range schedule {
		totals.Installments += row.Installment
		totals.Interest += row.Interest
		totals.Principal += row.Principal
		totals.Insurance += row.Insurance
	}
	return totals
}
