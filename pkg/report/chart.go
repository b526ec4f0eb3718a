package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ja7ad/engineperf/pkg/performance"
)

// Default chart size in pixels.
const (
	ChartWidth  = 900
	ChartHeight = 540
)

var seriesColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6", "#06B6D4",
}

// Series is one plotted line, X is brake power.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Chart is a renderer-independent chart definition.
type Chart struct {
	// Name is a file-friendly identifier.
	Name   string
	Title  string
	XAxis  string
	YAxis  string
	Series []Series
}

// BuildCharts returns the two comparison charts: BP against the consumption
// and pressure metrics, and BP against the efficiencies.
func BuildCharts(rows []performance.Row) []Chart {
	if len(rows) == 0 {
		return nil
	}
	bp := lo.Map(rows, func(r performance.Row, _ int) float64 { return r.BP })
	pick := func(name string, f func(performance.Row) float64) Series {
		return Series{
			Name: name,
			X:    bp,
			Y:    lo.Map(rows, func(r performance.Row, _ int) float64 { return f(r) }),
		}
	}

	return []Chart{
		{
			Name:  "bp_vs_sfc_tfc_bmep_imep",
			Title: "BP vs SFC, TFC, BMEP, IMEP",
			XAxis: "BP (kW)",
			YAxis: "Parameters",
			Series: []Series{
				pick("SFC", func(r performance.Row) float64 { return r.SFC }),
				pick("TFC", func(r performance.Row) float64 { return r.TFC }),
				pick("BMEP", func(r performance.Row) float64 { return r.BMEP }),
				pick("IMEP", func(r performance.Row) float64 { return r.IMEP }),
			},
		},
		{
			Name:  "bp_vs_me_ite_bte",
			Title: "BP vs ME, ITE, BTE",
			XAxis: "BP (kW)",
			YAxis: "Efficiency (%)",
			Series: []Series{
				pick("ME", func(r performance.Row) float64 { return r.ME }),
				pick("ITE", func(r performance.Row) float64 { return r.ITE }),
				pick("BTE", func(r performance.Row) float64 { return r.BTE }),
			},
		},
	}
}

// RenderPNG draws c as a PNG line chart with markers and a legend.
func RenderPNG(w io.Writer, c Chart, width, height int) error {
	series := make([]chart.Series, 0, len(c.Series))
	for i, s := range c.Series {
		col := seriesColor(i)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    4,
			},
		})
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: c.XAxis},
		YAxis:      chart.YAxis{Name: c.YAxis},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("report: render %s: %w", c.Name, err)
	}
	return nil
}

// RenderAll renders every chart to PNG bytes, in order.
func RenderAll(charts []Chart) ([][]byte, error) {
	out := make([][]byte, 0, len(charts))
	for _, c := range charts {
		var buf bytes.Buffer
		if err := RenderPNG(&buf, c, ChartWidth, ChartHeight); err != nil {
			return nil, err
		}
		out = append(out, buf.Bytes())
	}
	return out, nil
}

// WriteCharts renders the charts into dir as <name>.png and returns the paths.
func WriteCharts(dir string, charts []Chart) ([]string, error) {
	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(dir, c.Name+".png")
		err := WriteFile(path, func(w io.Writer) error {
			return RenderPNG(w, c, ChartWidth, ChartHeight)
		})
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func seriesColor(i int) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(seriesColors[i%len(seriesColors)], "#"))
}
