// Package format renders currency and percentage values for display.
package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/iwvelando/credit-simulator/pkg/constants"
	"github.com/iwvelando/credit-simulator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats amounts with the digit grouping of a locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter creates a formatter for a BCP 47 locale such as "es-CO".
// The empty string selects constants.DefaultLocale.
func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		locale = constants.DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// MustFormatter is NewFormatter for locales known to be valid.
func MustFormatter(locale string) *Formatter {
	f, err := NewFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the formatter's locale.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Currency returns a whole-unit currency string with a dollar sign and
// thousands separators (e.g., "$12.190.408" for es-CO, "-$1,235" for en).
func (f *Formatter) Currency(amount float64) string {
	formatted := f.NumericCurrency(math.Abs(amount))
	if mathutil.Round(amount) < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a whole-unit amount with separators but without a
// currency symbol.
func (f *Formatter) NumericCurrency(amount float64) string {
	return f.printer.Sprintf("%d", int64(mathutil.Round(mathutil.Finite(amount))))
}

// Percent renders a percentage with its literal decimal value, e.g. "16.6%".
func Percent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "%"
}
