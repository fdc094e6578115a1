// Package simulator holds the state of a loan simulation and derives the
// installment or disbursable amount from it.
package simulator

import (
	"github.com/iwvelando/credit-simulator/pkg/amortization"
	"go.uber.org/zap"
)

// Simulator owns one simulation session. Every mutation clamps its input and
// recomputes all results from scratch. A Simulator is not safe for concurrent
// use; each session gets its own.
type Simulator struct {
	logger    *zap.Logger
	params    Parameters
	inputs    Inputs
	results   Results
	generator *amortization.Generator
}

// New creates a simulator in the given mode with default inputs and the
// longest term.
func New(logger *zap.Logger, params Parameters, mode Mode) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Simulator{
		logger:    logger,
		params:    params,
		generator: amortization.NewGenerator(logger, params.LifeInsuranceRatePerMillion),
	}
	b := params.Bounds
	s.inputs = Inputs{
		Mode:            mode,
		DisbursedAmount: Normalize(float64(params.DefaultDisbursement), b.AmountMin, b.AmountMax),
		Installment:     Normalize(float64(params.DefaultInstallment), b.InstallmentMin, b.InstallmentMax),
		TermMonths:      b.TermMax,
	}
	s.Recompute()
	return s
}

// Parameters returns the deployment parameters.
func (s *Simulator) Parameters() Parameters {
	return s.params
}

// Inputs returns the current inputs.
func (s *Simulator) Inputs() Inputs {
	return s.inputs
}

// Results returns the results of the last recomputation.
func (s *Simulator) Results() Results {
	return s.results
}

// SetMode switches to mode. The raw input that becomes inactive is restored
// to its default and the term is reset to its maximum, even when mode is
// already the current one.
func (s *Simulator) SetMode(mode Mode) {
	b := s.params.Bounds
	switch mode {
	case InstallmentToAmount:
		s.inputs.DisbursedAmount = Normalize(float64(s.params.DefaultDisbursement), b.AmountMin, b.AmountMax)
	default:
		s.inputs.Installment = Normalize(float64(s.params.DefaultInstallment), b.InstallmentMin, b.InstallmentMax)
	}
	s.inputs.TermMonths = b.TermMax
	s.inputs.Mode = mode

	s.logger.Debug("simulation mode changed",
		zap.String("op", "simulator.SetMode"),
		zap.Stringer("mode", mode),
	)
	s.Recompute()
}

// ToggleMode switches to the other mode.
func (s *Simulator) ToggleMode() {
	s.SetMode(s.inputs.Mode.Toggle())
}

// UpdateAmount sets the disbursed amount from raw form text.
func (s *Simulator) UpdateAmount(raw string) int {
	b := s.params.Bounds
	s.inputs.DisbursedAmount = NormalizeRaw(raw, b.AmountMin, b.AmountMax)
	s.Recompute()
	return s.inputs.DisbursedAmount
}

// UpdateInstallment sets the installment from raw form text.
func (s *Simulator) UpdateInstallment(raw string) int {
	b := s.params.Bounds
	s.inputs.Installment = NormalizeRaw(raw, b.InstallmentMin, b.InstallmentMax)
	s.Recompute()
	return s.inputs.Installment
}

// UpdateTerm sets the term in months from raw form text.
func (s *Simulator) UpdateTerm(raw string) int {
	b := s.params.Bounds
	s.inputs.TermMonths = NormalizeRaw(raw, b.TermMin, b.TermMax)
	s.Recompute()
	return s.inputs.TermMonths
}

// SetAmount sets the disbursed amount from a number.
func (s *Simulator) SetAmount(value float64) int {
	b := s.params.Bounds
	s.inputs.DisbursedAmount = Normalize(value, b.AmountMin, b.AmountMax)
	s.Recompute()
	return s.inputs.DisbursedAmount
}

// SetInstallment sets the installment from a number.
func (s *Simulator) SetInstallment(value float64) int {
	b := s.params.Bounds
	s.inputs.Installment = Normalize(value, b.InstallmentMin, b.InstallmentMax)
	s.Recompute()
	return s.inputs.Installment
}

// SetTerm sets the term in months from a number.
func (s *Simulator) SetTerm(value float64) int {
	b := s.params.Bounds
	s.inputs.TermMonths = Normalize(value, b.TermMin, b.TermMax)
	s.Recompute()
	return s.inputs.TermMonths
}

// Recompute rebuilds every derived result from the current inputs.
func (s *Simulator) Recompute() {
	s.results = Derive(s.params, s.inputs)

	s.logger.Debug("simulation recomputed",
		zap.String("op", "simulator.Recompute"),
		zap.Stringer("mode", s.inputs.Mode),
		zap.Int("disbursedAmount", s.inputs.DisbursedAmount),
		zap.Int("installment", s.inputs.Installment),
		zap.Int("termMonths", s.inputs.TermMonths),
		zap.Float64("computedInstallment", s.results.ComputedInstallment),
		zap.Float64("disbursableAmount", s.results.DisbursableAmount),
	)
}

// Schedule returns the amortization schedule of the current simulation. Only
// InstallmentToAmount has a schedule; the other mode returns nil.
func (s *Simulator) Schedule() []amortization.Row {
	if s.inputs.Mode != InstallmentToAmount {
		return nil
	}
	return s.generator.GenerateSchedule(
		s.results.TotalFinancedAmountFromInstallment,
		float64(s.inputs.Installment),
		s.results.MonthlyRate,
		s.inputs.TermMonths,
	)
}

// Snapshot is an immutable view of a simulation for rendering.
type Snapshot struct {
	Parameters Parameters         `json:"parameters"`
	Inputs     Inputs             `json:"inputs"`
	Results    Results            `json:"results"`
	Schedule   []amortization.Row `json:"schedule,omitempty"`
}

// Snapshot captures the current state, including the schedule when asked.
func (s *Simulator) Snapshot(withSchedule bool) Snapshot {
	snap := Snapshot{
		Parameters: s.params,
		Inputs:     s.inputs,
		Results:    s.results,
	}
	if withSchedule {
		snap.Schedule = s.Schedule()
	}
	return snap
}
