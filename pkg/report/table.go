package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ja7ad/engineperf/pkg/performance"
	"github.com/ja7ad/engineperf/pkg/util"
)

// MaxLoadLine is the summary line shown above the table.
func MaxLoadLine(p performance.LoadPlan) string {
	if !p.Supported {
		return "Max Load (kg): n/a (no load model for this method)"
	}
	return "Max Load (kg): " + performance.FormatMaxLoad(p.MaxLoadKg)
}

// WriteTable prints the observation table aligned in columns.
func WriteTable(w io.Writer, rows []performance.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	headers := make([]string, len(Columns))
	rules := make([]string, len(Columns))
	for i, c := range Columns {
		headers[i] = c.Header
		rules[i] = strings.Repeat("-", len(c.Header))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t")+"\t")
	fmt.Fprintln(tw, strings.Join(rules, "\t")+"\t")

	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(Cells(r), "\t")+"\t")
	}
	return tw.Flush()
}

// WriteLines prints one comma-separated line per row, no alignment.
func WriteLines(w io.Writer, rows []performance.Row) error {
	keys := make([]string, len(Columns))
	for i, c := range Columns {
		keys[i] = c.Key
	}
	if _, err := fmt.Fprintln(w, "# "+strings.Join(keys, ", ")); err != nil {
		return err
	}
	for _, r := range rows {
		vals := make([]string, len(Columns))
		for i, c := range Columns {
			vals[i] = util.FmtFloat(util.Round(c.Value(r), 6))
		}
		if _, err := fmt.Fprintln(w, strings.Join(vals, ", ")); err != nil {
			return err
		}
	}
	return nil
}
