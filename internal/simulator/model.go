package simulator

import (
	"github.com/iwvelando/credit-simulator/pkg/annuity"
	"github.com/iwvelando/credit-simulator/pkg/constants"
	"github.com/iwvelando/credit-simulator/pkg/mathutil"
)

// Inputs is the mutable state of a simulation.
type Inputs struct {
	Mode            Mode `json:"mode"`
	DisbursedAmount int  `json:"disbursedAmount"`
	Installment     int  `json:"installment"`
	TermMonths      int  `json:"termMonths"`
}

// Results holds every quantity derived from Parameters and Inputs. Fields that
// do not belong to the active mode are zero.
type Results struct {
	Mode                    Mode    `json:"mode"`
	MonthlyRate             float64 `json:"monthlyRate"`
	TotalUpfrontCostPercent float64 `json:"totalUpfrontCostPercent"`

	// AmountToInstallment
	TotalFinancedAmount float64 `json:"totalFinancedAmount"`
	ComputedInstallment float64 `json:"computedInstallment"`

	// InstallmentToAmount
	FactorPerMillion                   float64 `json:"factorPerMillion"`
	TotalFinancedAmountFromInstallment float64 `json:"totalFinancedAmountFromInstallment"`
	DisbursableAmount                  float64 `json:"disbursableAmount"`
}

// Derive computes Results for the given parameters and inputs. It never
// fails: every division that could be undefined is guarded and yields 0.
func Derive(params Parameters, in Inputs) Results {
	upfront := params.TotalUpfrontCostPercent()
	results := Results{
		Mode:                    in.Mode,
		MonthlyRate:             params.MonthlyRate(),
		TotalUpfrontCostPercent: upfront,
	}

	switch in.Mode {
	case InstallmentToAmount:
		results.FactorPerMillion = FactorPerMillion(params, in.TermMonths)
		if results.FactorPerMillion != 0 {
			results.TotalFinancedAmountFromInstallment = mathutil.Round(
				float64(in.Installment) / results.FactorPerMillion * constants.PerMillion)
		}
		if !params.UpfrontCostsExhaustive() {
			results.DisbursableAmount = mathutil.Round(
				results.TotalFinancedAmountFromInstallment*(constants.PercentageMultiplier-upfront)/constants.PercentageMultiplier -
					params.AffiliationFee)
		}
	default:
		results.TotalFinancedAmount = TotalFinancedAmount(params, float64(in.DisbursedAmount))
		base := annuity.Payment(results.MonthlyRate, in.TermMonths, -results.TotalFinancedAmount)
		insurance := params.LifeInsuranceRatePerMillion * results.TotalFinancedAmount / constants.PerMillion
		results.ComputedInstallment = mathutil.Round(mathutil.Finite(base + insurance + params.MonthlyContribution))
	}

	return results
}

// TotalFinancedAmount is the gross amount that must be financed so that the
// disbursed amount remains after upfront costs, plus the affiliation fee.
func TotalFinancedAmount(params Parameters, disbursed float64) float64 {
	if params.UpfrontCostsExhaustive() {
		return 0
	}
	return disbursed/(1-params.TotalUpfrontCostPercent()/constants.PercentageMultiplier) + params.AffiliationFee
}

// FactorPerMillion is the rounded installment per million financed,
// insurance included. A zero monthly rate has no valid inversion and yields 0.
func FactorPerMillion(params Parameters, termMonths int) float64 {
	rate := params.MonthlyRate()
	if rate == 0 {
		return 0
	}
	return mathutil.Round(mathutil.Finite(
		annuity.Payment(rate, termMonths, -constants.PerMillion) + params.LifeInsuranceRatePerMillion))
}
