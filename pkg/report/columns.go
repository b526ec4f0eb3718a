// Package report renders observation tables, file reports, and comparison charts.
package report

import (
	"fmt"

	"github.com/ja7ad/engineperf/pkg/performance"
)

// Column is one field of the observation table.
type Column struct {
	Header string
	Key    string // machine name used for CSV headers
	Format string // fmt verb for display
	value  func(performance.Row) float64
}

// Columns lists the observation-table fields in display order.
var Columns = []Column{
	{"SL No", "sl_no", "%.0f", func(r performance.Row) float64 { return float64(r.Step + 1) }},
	{"Load (lbs)", "load_lbs", "%.3f", func(r performance.Row) float64 { return r.LoadLbs }},
	{"Load (kg)", "load_kg", "%.3f", func(r performance.Row) float64 { return r.LoadKg }},
	{"Time for 10cc (s)", "time_10cc_s", "%.2f", func(r performance.Row) float64 { return r.Time10cc }},
	{"TFC (kg/h)", "tfc_kg_h", "%.4f", func(r performance.Row) float64 { return r.TFC }},
	{"SFC (kg/kWh)", "sfc_kg_kwh", "%.4f", func(r performance.Row) float64 { return r.SFC }},
	{"BP (kW)", "bp_kw", "%.3f", func(r performance.Row) float64 { return r.BP }},
	{"BMEP (kPa)", "bmep_kpa", "%.3f", func(r performance.Row) float64 { return r.BMEP }},
	{"IP (kW)", "ip_kw", "%.3f", func(r performance.Row) float64 { return r.IP }},
	{"IMEP (kPa)", "imep_kpa", "%.3f", func(r performance.Row) float64 { return r.IMEP }},
	{"BTE (%)", "bte_pct", "%.2f", func(r performance.Row) float64 { return r.BTE }},
	{"ITE (%)", "ite_pct", "%.2f", func(r performance.Row) float64 { return r.ITE }},
	{"ME (%)", "me_pct", "%.2f", func(r performance.Row) float64 { return r.ME }},
}

// Value returns the column's value for r.
func (c Column) Value(r performance.Row) float64 { return c.value(r) }

// Display formats the column's value for r.
func (c Column) Display(r performance.Row) string { return fmt.Sprintf(c.Format, c.value(r)) }

// Cells formats every column of r.
func Cells(r performance.Row) []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Display(r)
	}
	return out
}
