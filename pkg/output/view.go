package output

import (
	"strconv"

	"github.com/iwvelando/credit-simulator/internal/simulator"
	"github.com/iwvelando/credit-simulator/pkg/amortization"
	"github.com/iwvelando/credit-simulator/pkg/format"
)

// Options control what a rendering includes.
type Options struct {
	// ShowDetails enables the cost breakdown and amortization sections.
	ShowDetails bool
	// Formatter formats currency; nil selects the default locale.
	Formatter *format.Formatter
}

// Field is a labelled, already formatted value.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Input describes a bounded numeric input of the widget.
type Input struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value int    `json:"value"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Step  int    `json:"step"`
}

// ScheduleRow is one formatted amortization row.
type ScheduleRow struct {
	Period           int    `json:"period"`
	Installment      string `json:"installment"`
	Interest         string `json:"interest"`
	Principal        string `json:"principal"`
	Insurance        string `json:"insurance"`
	Contribution     string `json:"contribution"`
	RemainingBalance string `json:"remainingBalance"`
}

// View is everything the presentation layer shows for one simulation.
type View struct {
	Mode          string        `json:"mode"`
	Title         string        `json:"title"`
	ToggleLabel   string        `json:"toggleLabel"`
	Inputs        []Input       `json:"inputs"`
	Results       []Field       `json:"results"`
	ShowDetails   bool          `json:"showDetails"`
	CostBreakdown []Field       `json:"costBreakdown,omitempty"`
	ShowSchedule  bool          `json:"showSchedule"`
	Schedule      []ScheduleRow `json:"schedule,omitempty"`
	ScheduleTotal []Field       `json:"scheduleTotal,omitempty"`
}

// BuildView lays out a snapshot. The schedule section only appears in
// InstallmentToAmount mode with details enabled, and only when the snapshot
// carries a schedule.
func BuildView(snap simulator.Snapshot, opts Options) View {
	f := opts.Formatter
	if f == nil {
		f = format.MustFormatter("")
	}
	p := snap.Parameters
	b := p.Bounds
	in := snap.Inputs
	res := snap.Results

	view := View{
		Mode:        in.Mode.String(),
		ShowDetails: opts.ShowDetails,
	}

	term := Input{Name: "plazo", Label: "Plazo (meses)", Value: in.TermMonths, Min: b.TermMin, Max: b.TermMax, Step: 1}

	switch in.Mode {
	case simulator.InstallmentToAmount:
		view.Title = "¿Cuánto me prestan?"
		view.ToggleLabel = "Calcular por monto"
		view.Inputs = []Input{
			{Name: "cuota", Label: "Cuota mensual", Value: in.Installment, Min: b.InstallmentMin, Max: b.InstallmentMax, Step: 10000},
			term,
		}
		view.Results = []Field{
			{Label: "Monto a desembolsar", Value: f.Currency(res.DisbursableAmount)},
			{Label: "Monto total financiado", Value: f.Currency(res.TotalFinancedAmountFromInstallment)},
		}
	default:
		view.Title = "¿Cuánto pago al mes?"
		view.ToggleLabel = "Calcular por cuota"
		view.Inputs = []Input{
			{Name: "monto", Label: "Monto a desembolsar", Value: in.DisbursedAmount, Min: b.AmountMin, Max: b.AmountMax, Step: 100000},
			term,
		}
		view.Results = []Field{
			{Label: "Cuota mensual", Value: f.Currency(res.ComputedInstallment)},
			{Label: "Monto total financiado", Value: f.Currency(res.TotalFinancedAmount)},
		}
	}

	if !opts.ShowDetails {
		return view
	}

	view.CostBreakdown = []Field{
		{Label: "Tasa mensual", Value: format.Percent(p.MonthlyRatePercent)},
		{Label: "Fianza", Value: format.Percent(p.SuretyFeePercent)},
		{Label: "Corretaje", Value: format.Percent(p.BrokerageFeePercent)},
		{Label: "Intereses anticipados", Value: format.Percent(p.AdvanceInterestPercent)},
		{Label: "Gravamen financiero", Value: format.Percent(p.TransactionTaxPercent)},
		{Label: "Total descuentos", Value: format.Percent(res.TotalUpfrontCostPercent)},
		{Label: "Cuota de afiliación", Value: f.Currency(p.AffiliationFee)},
		{Label: "Aporte mensual", Value: f.Currency(p.MonthlyContribution)},
		{Label: "Seguro de vida por millón", Value: f.Currency(p.LifeInsuranceRatePerMillion)},
	}

	if in.Mode == simulator.InstallmentToAmount && snap.Schedule != nil {
		view.ShowSchedule = true
		view.Schedule = formatSchedule(f, snap.Schedule)
		totals := amortization.Sum(snap.Schedule)
		view.ScheduleTotal = []Field{
			{Label: "Cuotas", Value: f.Currency(totals.Installments)},
			{Label: "Intereses", Value: f.Currency(totals.Interest)},
			{Label: "Capital", Value: f.Currency(totals.Principal)},
			{Label: "Seguro", Value: f.Currency(totals.Insurance)},
		}
	}

	return view
}

func formatSchedule(f *format.Formatter, schedule []amortization.Row) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(schedule))
	for _, row := range schedule {
		rows = append(rows, ScheduleRow{
			Period:           row.Period,
			Installment:      f.Currency(row.Installment),
			Interest:         f.Currency(row.Interest),
			Principal:        f.Currency(row.Principal),
			Insurance:        f.Currency(row.Insurance),
			Contribution:     f.Currency(row.Contribution),
			RemainingBalance: f.Currency(row.RemainingBalance),
		})
	}
	return rows
}

// ScheduleHeader is the column header of the amortization table.
var ScheduleHeader = []string{"Mes", "Cuota", "Interés", "Capital", "Seguro", "Aporte", "Saldo"}

func (r ScheduleRow) cells() []string {
	return []string{
		strconv.Itoa(r.Period), r.Installment, r.Interest, r.Principal,
		r.Insurance, r.Contribution, r.RemainingBalance,
	}
}
