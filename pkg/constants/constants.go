// Package constants provides shared constants for the credit-simulator application.
package constants

// Financial constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// PerMillion is the base unit for insurance rates and the installment factor
	PerMillion = 1000000.0

	// BalanceResidueThreshold is the remaining balance at or below which no
	// further interest accrues in an amortization schedule.
	BalanceResidueThreshold = 0.9
)

// Default loan parameters for a deployment.
const (
	DefaultMonthlyRatePercent          = 1.66
	DefaultLifeInsuranceRatePerMillion = 1500.0
	DefaultAffiliationFee              = 200000.0
	DefaultMonthlyContribution         = 20000.0

	DefaultSuretyFeePercent       = 10.0
	DefaultBrokerageFeePercent    = 3.6
	DefaultAdvanceInterestPercent = 2.6
	DefaultTransactionTaxPercent  = 0.4
)

// Default input bounds and starting values.
const (
	DefaultAmountMin = 1000000
	DefaultAmountMax = 100000000

	DefaultInstallmentMin = 100000
	DefaultInstallmentMax = 5000000

	DefaultTermMin = 12
	DefaultTermMax = 144

	// DefaultDisbursement is the disbursed amount restored on a mode switch
	DefaultDisbursement = 10000000

	// DefaultInstallment is the installment restored on a mode switch
	DefaultInstallment = 500000
)

// Simulation type identifiers as accepted by the embedding page.
const (
	SimulationTypeAmountToInstallment = "monto-a-cuota"
	SimulationTypeInstallmentToAmount = "cuota-a-monto"
)

// DefaultLocale is the locale used for currency formatting.
const DefaultLocale = "es-CO"

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum JSON request body (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown
	DefaultShutdownTimeoutSeconds = 30
)
