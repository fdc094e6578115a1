// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/iwvelando/credit-simulator/internal/simulator"
)

// ToSimulatorParameters converts the configured loan terms into simulator
// parameters.
func (p LoanParameters) ToSimulatorParameters() simulator.Parameters {
	return simulator.Parameters{
		MonthlyRatePercent:          p.MonthlyRatePercent,
		LifeInsuranceRatePerMillion: p.LifeInsuranceRatePerMillion,
		AffiliationFee:              p.AffiliationFee,
		MonthlyContribution:         p.MonthlyContribution,
		SuretyFeePercent:            p.UpfrontCosts.SuretyFeePercent,
		BrokerageFeePercent:         p.UpfrontCosts.BrokerageFeePercent,
		AdvanceInterestPercent:      p.UpfrontCosts.AdvanceInterestPercent,
		TransactionTaxPercent:       p.UpfrontCosts.TransactionTaxPercent,
		Bounds: simulator.Bounds{
			AmountMin:      p.Bounds.Amount.Min,
			AmountMax:      p.Bounds.Amount.Max,
			InstallmentMin: p.Bounds.Installment.Min,
			InstallmentMax: p.Bounds.Installment.Max,
			TermMin:        p.Bounds.Term.Min,
			TermMax:        p.Bounds.Term.Max,
		},
		DefaultDisbursement: p.Defaults.Disbursement,
		DefaultInstallment:  p.Defaults.Installment,
	}
}

// Mode returns the configured initial simulation mode. An unknown value falls
// back to AmountToInstallment; Validate reports it.
func (d DisplayConfig) Mode() simulator.Mode {
	mode, err := simulator.ParseMode(d.SimulationType)
	if err != nil {
		return simulator.AmountToInstallment
	}
	return mode
}
