// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/credit-simulator/pkg/constants"
	"github.com/iwvelando/credit-simulator/pkg/validation"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes environment variable overrides, e.g.
// CREDIT_SIMULATOR_PARAMETERS_MONTHLYRATEPERCENT.
const EnvPrefix = "CREDIT_SIMULATOR"

// MaxRecommendedTerm is the longest term the simulator is tuned for.
const MaxRecommendedTerm = 180

// Configuration holds all configuration for credit-simulator.
type Configuration struct {
	Parameters LoanParameters `yaml:"parameters"`
	Display    DisplayConfig  `yaml:"display"`
	Logging    LoggingConfig  `yaml:"logging,omitempty"`
	Output     OutputConfig   `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoanParameters holds the fixed loan terms of the deployment.
type LoanParameters struct {
	MonthlyRatePercent          float64      `mapstructure:"monthlyRatePercent" yaml:"monthlyRatePercent"`
	LifeInsuranceRatePerMillion float64      `mapstructure:"lifeInsuranceRatePerMillion" yaml:"lifeInsuranceRatePerMillion"`
	AffiliationFee              float64      `mapstructure:"affiliationFee" yaml:"affiliationFee"`
	MonthlyContribution         float64      `mapstructure:"monthlyContribution" yaml:"monthlyContribution"`
	UpfrontCosts                UpfrontCosts `mapstructure:"upfrontCosts" yaml:"upfrontCosts"`
	Bounds                      BoundsConfig `mapstructure:"bounds" yaml:"bounds"`
	Defaults                    Defaults     `mapstructure:"defaults" yaml:"defaults"`
}

// UpfrontCosts are the percentages deducted from the financed total at
// disbursement.
type UpfrontCosts struct {
	SuretyFeePercent       float64 `mapstructure:"suretyFeePercent" yaml:"suretyFeePercent"`
	BrokerageFeePercent    float64 `mapstructure:"brokerageFeePercent" yaml:"brokerageFeePercent"`
	AdvanceInterestPercent float64 `mapstructure:"advanceInterestPercent" yaml:"advanceInterestPercent"`
	TransactionTaxPercent  float64 `mapstructure:"transactionTaxPercent" yaml:"transactionTaxPercent"`
}

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// BoundsConfig holds the ranges of the three raw inputs.
type BoundsConfig struct {
	Amount      Range `yaml:"amount"`
	Installment Range `yaml:"installment"`
	Term        Range `yaml:"term"`
}

// Defaults are the raw input values restored on a mode switch.
type Defaults struct {
	Disbursement int `yaml:"disbursement"`
	Installment  int `yaml:"installment"`
}

// DisplayConfig mirrors the options of the embedding page.
type DisplayConfig struct {
	ShowDetails    bool   `mapstructure:"mostrar_detalles" yaml:"mostrar_detalles"`
	SimulationType string `mapstructure:"tipo_simulacion" yaml:"tipo_simulacion"`
	Locale         string `yaml:"locale"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("parameters.monthlyRatePercent", constants.DefaultMonthlyRatePercent)
	v.SetDefault("parameters.lifeInsuranceRatePerMillion", constants.DefaultLifeInsuranceRatePerMillion)
	v.SetDefault("parameters.affiliationFee", constants.DefaultAffiliationFee)
	v.SetDefault("parameters.monthlyContribution", constants.DefaultMonthlyContribution)

	v.SetDefault("parameters.upfrontCosts.suretyFeePercent", constants.DefaultSuretyFeePercent)
	v.SetDefault("parameters.upfrontCosts.brokerageFeePercent", constants.DefaultBrokerageFeePercent)
	v.SetDefault("parameters.upfrontCosts.advanceInterestPercent", constants.DefaultAdvanceInterestPercent)
	v.SetDefault("parameters.upfrontCosts.transactionTaxPercent", constants.DefaultTransactionTaxPercent)

	v.SetDefault("parameters.bounds.amount.min", constants.DefaultAmountMin)
	v.SetDefault("parameters.bounds.amount.max", constants.DefaultAmountMax)
	v.SetDefault("parameters.bounds.installment.min", constants.DefaultInstallmentMin)
	v.SetDefault("parameters.bounds.installment.max", constants.DefaultInstallmentMax)
	v.SetDefault("parameters.bounds.term.min", constants.DefaultTermMin)
	v.SetDefault("parameters.bounds.term.max", constants.DefaultTermMax)

	v.SetDefault("parameters.defaults.disbursement", constants.DefaultDisbursement)
	v.SetDefault("parameters.defaults.installment", constants.DefaultInstallment)

	v.SetDefault("display.mostrar_detalles", true)
	v.SetDefault("display.tipo_simulacion", constants.SimulationTypeAmountToInstallment)
	v.SetDefault("display.locale", constants.DefaultLocale)

	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yml")
	return v
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		// Defaults are static; decoding them cannot fail.
		panic(fmt.Sprintf("failed to decode default configuration: %v", err))
	}
	return conf
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Missing keys keep their defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// Validate reports configuration errors that make a simulation meaningless.
func (c *Configuration) Validate() error {
	b := c.Parameters.Bounds
	ranges := []struct {
		name string
		r    Range
	}{
		{"amount", b.Amount},
		{"installment", b.Installment},
		{"term", b.Term},
	}
	for _, entry := range ranges {
		if entry.r.Min > entry.r.Max {
			return fmt.Errorf("invalid %s bounds: min %d exceeds max %d", entry.name, entry.r.Min, entry.r.Max)
		}
		if entry.r.Min < 0 {
			return fmt.Errorf("invalid %s bounds: min %d is negative", entry.name, entry.r.Min)
		}
	}
	if b.Term.Min < 1 {
		return fmt.Errorf("invalid term bounds: min %d must be at least one month", b.Term.Min)
	}

	if err := validation.ValidateSimulationType(c.Display.SimulationType); err != nil {
		return err
	}

	if c.Display.Locale != "" {
		if _, err := language.Parse(c.Display.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.Display.Locale, err)
		}
	}

	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			return err
		}
	}

	return nil
}

// Warnings reports settings that are accepted but degrade results.
func (c *Configuration) Warnings() []string {
	var warnings []string
	p := c.Parameters

	if sp := p.ToSimulatorParameters(); sp.UpfrontCostsExhaustive() {
		warnings = append(warnings, fmt.Sprintf(
			"upfront costs total %.2f%%, financed and disbursable amounts will be zero", sp.TotalUpfrontCostPercent()))
	}
	if p.MonthlyRatePercent == 0 {
		warnings = append(warnings, "monthly rate is zero, installment to amount simulation is disabled")
	}
	if p.Bounds.Term.Max > MaxRecommendedTerm {
		warnings = append(warnings, fmt.Sprintf(
			"maximum term %d exceeds the recommended %d months", p.Bounds.Term.Max, MaxRecommendedTerm))
	}
	d := p.Defaults
	if d.Disbursement < p.Bounds.Amount.Min || d.Disbursement > p.Bounds.Amount.Max {
		warnings = append(warnings, fmt.Sprintf("default disbursement %d is outside the amount bounds and will be clamped", d.Disbursement))
	}
	if d.Installment < p.Bounds.Installment.Min || d.Installment > p.Bounds.Installment.Max {
		warnings = append(warnings, fmt.Sprintf("default installment %d is outside the installment bounds and will be clamped", d.Installment))
	}

	return warnings
}
