// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iwvelando/credit-simulator/pkg/amortization"
)

// PrettyFormat writes a human-readable rather than machine-readable rendering
// of a view.
func PrettyFormat(w io.Writer, view View) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "--- %s (%s) ---\n", view.Title, view.Mode)
	for _, input := range view.Inputs {
		fmt.Fprintf(tw, "%s\t%d\t[%d - %d]\n", input.Label, input.Value, input.Min, input.Max)
	}
	fmt.Fprintln(tw)
	for _, field := range view.Results {
		fmt.Fprintf(tw, "%s\t%s\n", field.Label, field.Value)
	}

	if len(view.CostBreakdown) > 0 {
		fmt.Fprintf(tw, "\n--- Costos ---\n")
		for _, field := range view.CostBreakdown {
			fmt.Fprintf(tw, "%s\t%s\n", field.Label, field.Value)
		}
	}

	if view.ShowSchedule {
		fmt.Fprintf(tw, "\n--- Tabla de amortización ---\n")
		fmt.Fprintln(tw, strings.Join(ScheduleHeader, "\t"))
		for _, row := range view.Schedule {
			fmt.Fprintln(tw, strings.Join(row.cells(), "\t"))
		}
		for _, field := range view.ScheduleTotal {
			fmt.Fprintf(tw, "Total %s\t%s\n", strings.ToLower(field.Label), field.Value)
		}
	}

	return tw.Flush()
}

// CsvFormat writes an amortization schedule in comma-separated value format.
func CsvFormat(w io.Writer, schedule []amortization.Row) error {
	cw := csv.NewWriter(w)
	header := []string{"period", "installment", "interest", "principal", "insurance", "contribution", "remaining_balance"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range schedule {
		record := []string{
			strconv.Itoa(row.Period),
			formatAmount(row.Installment),
			formatAmount(row.Interest),
			formatAmount(row.Principal),
			formatAmount(row.Insurance),
			formatAmount(row.Contribution),
			formatAmount(row.RemainingBalance),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
