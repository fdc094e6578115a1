package simulator

import (
	"fmt"

	"github.com/iwvelando/credit-simulator/pkg/constants"
	"github.com/iwvelando/credit-simulator/pkg/validation"
)

// Mode selects which raw input drives the simulation.
type Mode int

const (
	// AmountToInstallment derives the installment from a disbursed amount.
	AmountToInstallment Mode = iota
	// InstallmentToAmount derives the disbursable amount from an installment.
	InstallmentToAmount
)

// String returns the simulation type identifier used by the embedding page.
func (m Mode) String() string {
	switch m {
	case InstallmentToAmount:
		return constants.SimulationTypeInstallmentToAmount
	default:
		return constants.SimulationTypeAmountToInstallment
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == InstallmentToAmount {
		return AmountToInstallment
	}
	return InstallmentToAmount
}

// ParseMode converts a simulation type identifier into a Mode. The empty
// string selects AmountToInstallment.
func ParseMode(value string) (Mode, error) {
	switch validation.NormalizeSimulationType(value) {
	case "", constants.SimulationTypeAmountToInstallment:
		return AmountToInstallment, nil
	case constants.SimulationTypeInstallmentToAmount:
		return InstallmentToAmount, nil
	default:
		return AmountToInstallment, fmt.Errorf("unknown simulation type %q, expected %s or %s",
			value, constants.SimulationTypeAmountToInstallment, constants.SimulationTypeInstallmentToAmount)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
