package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/engineperf/pkg/performance"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func labTable(t *testing.T) performance.Table {
	t.Helper()
	e := performance.EngineSpec{
		Bore: 0.1, Stroke: 0.12, Cylinders: 1, RatedPower: 5, RatedRPM: 1500,
		Method: performance.RopeBrakeDynamometer, DrumRadius: 0.4,
	}
	f := performance.FuelSpec{Density: 0.75, CalorificValue: 44000}
	plan, err := performance.ResolveMaxLoad(e, f)
	require.NoError(t, err)

	var ms []performance.Measurement
	for i, s := range []float64{100, 90, 80, 70, 60, 50} {
		ms = append(ms, performance.Measurement{Step: i, Seconds: s})
	}
	rows, err := performance.ComputeRows(e, f, plan.StepLoadKg, ms)
	require.NoError(t, err)
	return performance.Table{Engine: e, Fuel: f, Plan: plan, Rows: rows}
}

func TestMaxLoadLine(t *testing.T) {
	tbl := labTable(t)
	assert.Equal(t, "Max Load (kg): 5.97", MaxLoadLine(tbl.Plan))
	assert.Contains(t, MaxLoadLine(performance.LoadPlan{}), "n/a")
}

func TestCells(t *testing.T) {
	tbl := labTable(t)
	cells := Cells(tbl.Rows[3])
	require.Len(t, cells, len(Columns))
	assert.Equal(t, "4", cells[0], "SL No counts from 1")
	assert.Equal(t, "70.00", cells[3])
	assert.Equal(t, "3.000", cells[6])
	assert.Equal(t, "75.00", cells[len(cells)-1], "last column is ME")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, labTable(t).Rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "SL No")
	assert.Contains(t, lines[0], "ME (%)")
	assert.Contains(t, lines[7], "5.968")
	t.Log("\n" + buf.String())
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, labTable(t).Rows))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "# sl_no, load_lbs"))
	assert.True(t, strings.HasPrefix(lines[1], "1, 0, 0, 100, "))
}

func TestWriteCSV(t *testing.T) {
	tbl := labTable(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl.Rows))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 7)
	assert.Equal(t, "sl_no", recs[0][0])
	assert.Equal(t, "me_pct", recs[0][len(Columns)-1])

	tfc, err := strconv.ParseFloat(recs[4][4], 64)
	require.NoError(t, err)
	assert.InDelta(t, tbl.Rows[3].TFC, tfc, 1e-15)
}

func TestWriteJSON(t *testing.T) {
	tbl := labTable(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tbl))

	var doc struct {
		Engine struct {
			Method string `json:"method"`
		} `json:"engine"`
		Plan performance.LoadPlan `json:"plan"`
		Rows []performance.Row    `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Rope Brake Dynamometer", doc.Engine.Method)
	assert.InDelta(t, tbl.Plan.MaxLoadKg, doc.Plan.MaxLoadKg, 1e-12)
	require.Len(t, doc.Rows, 6)
	assert.InDelta(t, tbl.Rows[5].BTE, doc.Rows[5].BTE, 1e-9)
}

func TestBuildCharts(t *testing.T) {
	tbl := labTable(t)
	charts := BuildCharts(tbl.Rows)
	require.Len(t, charts, 2)

	names := func(c Chart) []string {
		var out []string
		for _, s := range c.Series {
			out = append(out, s.Name)
		}
		return out
	}
	assert.Equal(t, []string{"SFC", "TFC", "BMEP", "IMEP"}, names(charts[0]))
	assert.Equal(t, []string{"ME", "ITE", "BTE"}, names(charts[1]))

	for _, c := range charts {
		assert.Equal(t, "BP (kW)", c.XAxis)
		for _, s := range c.Series {
			require.Len(t, s.X, 6)
			require.Len(t, s.Y, 6)
			for i, r := range tbl.Rows {
				assert.Equal(t, r.BP, s.X[i])
			}
		}
	}

	// series carry the values named on them
	me := charts[1].Series[0]
	bte := charts[1].Series[2]
	for i, r := range tbl.Rows {
		assert.Equal(t, r.ME, me.Y[i])
		assert.Equal(t, r.BTE, bte.Y[i])
	}

	assert.Nil(t, BuildCharts(nil))
}

func TestRenderPNG(t *testing.T) {
	charts := BuildCharts(labTable(t).Rows)
	pngs, err := RenderAll(charts)
	require.NoError(t, err)
	require.Len(t, pngs, 2)
	for _, b := range pngs {
		assert.True(t, bytes.HasPrefix(b, pngMagic))
	}
}

func TestWriteCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	paths, err := WriteCharts(dir, BuildCharts(labTable(t).Rows))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(b, pngMagic), p)
	}
	assert.Equal(t, filepath.Join(dir, "bp_vs_me_ite_bte.png"), paths[1])
}

func TestWriteHTML(t *testing.T) {
	tbl := labTable(t)
	charts := BuildCharts(tbl.Rows)
	pngs, err := RenderAll(charts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, tbl, charts, pngs))
	out := buf.String()

	assert.Contains(t, out, "Max Load (kg): 5.97")
	assert.Contains(t, out, "Rope Brake Dynamometer")
	assert.Equal(t, 7, strings.Count(out, "<tr>"))
	assert.Equal(t, 2, strings.Count(out, `src="data:image/png;base64,`))
	assert.Contains(t, out, "BP vs ME, ITE, BTE")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "table.csv")
	require.NoError(t, WriteFile(path, func(w io.Writer) error {
		return WriteCSV(w, labTable(t).Rows)
	}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "sl_no,"))
}
