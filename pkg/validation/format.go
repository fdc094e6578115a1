// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/credit-simulator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// NormalizeSimulationType trims and lowercases a tipo_simulacion value.
func NormalizeSimulationType(simulationType string) string {
	return strings.ToLower(strings.TrimSpace(simulationType))
}

// ValidateSimulationType checks a tipo_simulacion value after normalization.
// The empty string is accepted and means the default type.
func ValidateSimulationType(simulationType string) error {
	switch NormalizeSimulationType(simulationType) {
	case "", constants.SimulationTypeAmountToInstallment, constants.SimulationTypeInstallmentToAmount:
		return nil
	}
	return fmt.Errorf("expected simulation type of %s or %s, got %s",
		constants.SimulationTypeAmountToInstallment, constants.SimulationTypeInstallmentToAmount, simulationType)
}

// ValidateLogLevel checks a log level name. The empty string is accepted and
// means the default level.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ParseBool accepts the strconv.ParseBool spellings plus si, sí, yes and no,
// case-insensitively.
func ParseBool(value string) (bool, error) {
	trimmed := strings.TrimSpace(value)
	if parsed, err := strconv.ParseBool(trimmed); err == nil {
		return parsed, nil
	}
	switch strings.ToLower(trimmed) {
	case "si", "sí", "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q", value)
}
