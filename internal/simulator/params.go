package simulator

import (
	"github.com/iwvelando/credit-simulator/pkg/constants"
	"github.com/shopspring/decimal"
)

// Bounds holds the inclusive ranges each raw input is clamped into.
type Bounds struct {
	AmountMin      int `json:"amountMin"`
	AmountMax      int `json:"amountMax"`
	InstallmentMin int `json:"installmentMin"`
	InstallmentMax int `json:"installmentMax"`
	TermMin        int `json:"termMin"`
	TermMax        int `json:"termMax"`
}

// Parameters are the fixed loan terms of a deployment.
type Parameters struct {
	MonthlyRatePercent          float64 `json:"monthlyRatePercent"`
	LifeInsuranceRatePerMillion float64 `json:"lifeInsuranceRatePerMillion"`
	AffiliationFee              float64 `json:"affiliationFee"`
	MonthlyContribution         float64 `json:"monthlyContribution"`

	SuretyFeePercent       float64 `json:"suretyFeePercent"`
	BrokerageFeePercent    float64 `json:"brokerageFeePercent"`
	AdvanceInterestPercent float64 `json:"advanceInterestPercent"`
	TransactionTaxPercent  float64 `json:"transactionTaxPercent"`

	Bounds Bounds `json:"bounds"`

	// DefaultDisbursement and DefaultInstallment are restored on a mode switch.
	DefaultDisbursement int `json:"defaultDisbursement"`
	DefaultInstallment  int `json:"defaultInstallment"`
}

// DefaultParameters returns the stock deployment.
func DefaultParameters() Parameters {
	return Parameters{
		MonthlyRatePercent:          constants.DefaultMonthlyRatePercent,
		LifeInsuranceRatePerMillion: constants.DefaultLifeInsuranceRatePerMillion,
		AffiliationFee:              constants.DefaultAffiliationFee,
		MonthlyContribution:         constants.DefaultMonthlyContribution,
		SuretyFeePercent:            constants.DefaultSuretyFeePercent,
		BrokerageFeePercent:         constants.DefaultBrokerageFeePercent,
		AdvanceInterestPercent:      constants.DefaultAdvanceInterestPercent,
		TransactionTaxPercent:       constants.DefaultTransactionTaxPercent,
		Bounds: Bounds{
			AmountMin:      constants.DefaultAmountMin,
			AmountMax:      constants.DefaultAmountMax,
			InstallmentMin: constants.DefaultInstallmentMin,
			InstallmentMax: constants.DefaultInstallmentMax,
			TermMin:        constants.DefaultTermMin,
			TermMax:        constants.DefaultTermMax,
		},
		DefaultDisbursement: constants.DefaultDisbursement,
		DefaultInstallment:  constants.DefaultInstallment,
	}
}

// TotalUpfrontCostPercent sums the four upfront percentages. The sum is taken
// in decimal so that, for example, 10 + 3.6 + 2.6 + 0.4 is exactly 16.6.
func (p Parameters) TotalUpfrontCostPercent() float64 {
	return decimal.NewFromFloat(p.SuretyFeePercent).
		Add(decimal.NewFromFloat(p.BrokerageFeePercent)).
		Add(decimal.NewFromFloat(p.AdvanceInterestPercent)).
		Add(decimal.NewFromFloat(p.TransactionTaxPercent)).
		InexactFloat64()
}

// MonthlyRate is the monthly rate as a fraction.
func (p Parameters) MonthlyRate() float64 {
	return p.MonthlyRatePercent / constants.PercentageMultiplier
}

// UpfrontCostsExhaustive reports whether upfront costs consume the whole
// financed amount, leaving nothing to disburse.
func (p Parameters) UpfrontCostsExhaustive() bool {
	return p.TotalUpfrontCostPercent() >= constants.PercentageMultiplier
}
