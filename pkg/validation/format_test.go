package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{name: "Valid pretty format", format: "pretty", expectErr: false},
		{name: "Valid csv format", format: "csv", expectErr: false},
		{name: "Invalid format", format: "json", expectErr: true},
		{name: "Empty format", format: "", expectErr: true},
		{name: "Case sensitive - uppercase", format: "PRETTY", expectErr: true},
		{name: "Leading/trailing spaces", format: " pretty ", expectErr: true},
		{name: "Similar but incorrect format", format: "prettyprint", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateOutputFormat(%s) expected error but got none", tt.format)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
				}
			}
		})
	}
}

func TestValidateSimulationType(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expectErr bool
	}{
		{name: "Default", value: "", expectErr: false},
		{name: "Amount to installment", value: "monto-a-cuota", expectErr: false},
		{name: "Installment to amount", value: "cuota-a-monto", expectErr: false},
		{name: "Unknown", value: "monto", expectErr: true},
		{name: "Underscores", value: "monto_a_cuota", expectErr: true},
		{name: "Mixed case", value: "Cuota-A-Monto", expectErr: false},
		{name: "Surrounding spaces", value: "  monto-a-cuota ", expectErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSimulationType(tt.value)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateSimulationType(%q) error = %v, expectErr %v", tt.value, err, tt.expectErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.value) {
				t.Errorf("error %q should mention %q", err.Error(), tt.value)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "warning", "error"} {
		if err := ValidateLogLevel(level); err != nil {
			t.Errorf("ValidateLogLevel(%q) unexpected error = %v", level, err)
		}
	}
	for _, level := range []string{"trace", "INFO", "fatal"} {
		if err := ValidateLogLevel(level); err == nil {
			t.Errorf("ValidateLogLevel(%q) expected error but got none", level)
		}
	}
}

func TestNormalizeSimulationType(t *testing.T) {
	if got := NormalizeSimulationType("  Cuota-A-Monto "); got != "cuota-a-monto" {
		t.Errorf("NormalizeSimulationType() = %q, expected cuota-a-monto", got)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		value     string
		expected  bool
		expectErr bool
	}{
		{value: "true", expected: true},
		{value: "1", expected: true},
		{value: "T", expected: true},
		{value: "false", expected: false},
		{value: "0", expected: false},
		{value: "sí", expected: true},
		{value: "Si", expected: true},
		{value: " yes ", expected: true},
		{value: "NO", expected: false},
		{value: "", expectErr: true},
		{value: "maybe", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseBool(tt.value)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ParseBool(%q) expected error but got none", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBool(%q) unexpected error = %v", tt.value, err)
			}
			if got != tt.expected {
				t.Errorf("ParseBool(%q) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}
