package report

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"io"

	"github.com/ja7ad/engineperf/pkg/performance"
)

// WriteHTML writes a standalone page with the engine and fuel data, the table, and any
// rendered chart PNGs embedded inline.
func WriteHTML(w io.Writer, t performance.Table, charts []Chart, pngs [][]byte) error {
	type img struct {
		Title string
		Src   template.URL
	}
	type view struct {
		Table   performance.Table
		MaxLoad string
		Headers []string
		Cells   [][]string
		Charts  []img
	}

	data := view{Table: t, MaxLoad: MaxLoadLine(t.Plan)}
	for _, c := range Columns {
		data.Headers = append(data.Headers, c.Header)
	}
	for _, r := range t.Rows {
		data.Cells = append(data.Cells, Cells(r))
	}
	for i, b := range pngs {
		title := ""
		if i < len(charts) {
			title = charts[i].Title
		}
		data.Charts = append(data.Charts, img{
			Title: title,
			Src:   template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(b)),
		})
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Engine Performance Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
figure{margin:16px 0}
</style>

<h1>4-Stroke Engine Performance</h1>

<p class="small">{{.MaxLoad}} &nbsp;|&nbsp; Step load: {{printf "%.3f" .Table.Plan.StepLoadKg}} kg</p>

<h2>Engine</h2>
<ul>
<li>Bore: {{printf "%.4f" .Table.Engine.Bore}} m</li>
<li>Stroke: {{printf "%.4f" .Table.Engine.Stroke}} m</li>
<li>Cylinders: {{.Table.Engine.Cylinders}}</li>
<li>Rated BP: {{printf "%.3f" .Table.Engine.RatedPower}} kW at {{printf "%.0f" .Table.Engine.RatedRPM}} rpm</li>
<li>Load test: {{.Table.Engine.Method}}{{if .Table.Plan.Supported}}, drum radius {{printf "%.3f" .Table.Engine.DrumRadius}} m{{end}}</li>
</ul>

<h2>Fuel</h2>
<ul>
<li>Density: {{printf "%.3f" .Table.Fuel.Density}} g/cc</li>
<li>Calorific value: {{printf "%.0f" .Table.Fuel.CalorificValue}} kJ/kg</li>
</ul>

<h2>Observations</h2>
<table>
<thead>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Cells}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</tbody>
</table>

{{range .Charts}}
<figure>
<img src="{{.Src}}" alt="{{.Title}}">
<figcaption class="small">{{.Title}}</figcaption>
</figure>
{{end}}
</html>`))
