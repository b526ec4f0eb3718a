package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/ja7ad/engineperf/pkg/collector"
	"github.com/ja7ad/engineperf/pkg/config"
	"github.com/ja7ad/engineperf/pkg/performance"
	"github.com/ja7ad/engineperf/pkg/report"
	"github.com/ja7ad/engineperf/pkg/types"
)

type opts struct {
	configPath string
	watch      bool
	logLevel   string
	pretty     bool

	// engine
	bore       float64
	boreUnit   string
	stroke     float64
	strokeUnit string
	cylinders  int
	power      float64
	powerUnit  string
	rpm        float64
	method     string
	radius     float64

	// fuel
	density   float64
	calorific float64

	// timings
	timings    []float64
	timingsCSV string
	prompt     bool

	// outputs
	csvPath   string
	jsonPath  string
	htmlPath  string
	chartsDir string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "engineperf",
		Short: "Four-stroke engine load-test performance calculator",
		Long: `engineperf computes the performance of a four-stroke engine from a
dynamometer load test: brake and indicated power, fuel consumption, mean
effective pressures and efficiencies at six load steps.

The maximum load is resolved first and shown, then the time to burn 10 cc of
fuel is collected for every step (flags, a test sheet, a CSV file, or an
interactive prompt) and the observation table is printed. Reports and the two
comparison charts are written when requested.

Examples:
  engineperf --bore 0.1 --stroke 0.12 --cylinders 1 --power 5 --rpm 1500 \
    --radius 0.4 --density 0.75 --calorific 44000 --timings 100,90,80,70,60,50
  engineperf -c sheet.yaml --prompt --html out/report.html --charts out/
  engineperf -c sheet.yaml --watch`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(o.logLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), o, cmd.Flags().Changed, cmd.OutOrStdout())
		},
	}

	f := root.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML test sheet; flags given explicitly override it")
	f.BoolVar(&o.watch, "watch", false, "recompute whenever the test sheet changes (requires --config)")
	f.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.BoolVar(&o.pretty, "pretty", true, "print an aligned table instead of comma-separated lines")

	f.Float64Var(&o.bore, "bore", 0, "cylinder bore")
	f.StringVar(&o.boreUnit, "bore-unit", "m", "bore unit: m or in")
	f.Float64Var(&o.stroke, "stroke", 0, "piston stroke")
	f.StringVar(&o.strokeUnit, "stroke-unit", "m", "stroke unit: m or in")
	f.IntVar(&o.cylinders, "cylinders", 0, "number of cylinders")
	f.Float64Var(&o.power, "power", 0, "rated brake power")
	f.StringVar(&o.powerUnit, "power-unit", "kW", "rated power unit: kW or HP")
	f.Float64Var(&o.rpm, "rpm", 0, "rated speed (rev/min)")
	f.StringVar(&o.method, "method", "rope", "load-test method: rope (brake dynamometer) or electric (generator)")
	f.Float64Var(&o.radius, "radius", 0, "brake drum mean radius in m (rope brake only)")

	f.Float64Var(&o.density, "density", 0, "fuel density in g/cc")
	f.Float64Var(&o.calorific, "calorific", 0, "fuel calorific value in kJ/kg")

	f.Float64SliceVar(&o.timings, "timings", nil, "six comma-separated times (s) to burn 10 cc, no load first")
	f.StringVar(&o.timingsCSV, "timings-csv", "", "read the six timings from a CSV file")
	f.BoolVar(&o.prompt, "prompt", false, "ask for each timing interactively after the max load is shown")

	f.StringVar(&o.csvPath, "csv", "", "write the table to a CSV file")
	f.StringVar(&o.jsonPath, "json", "", "write the table to a JSON file")
	f.StringVar(&o.htmlPath, "html", "", "write an HTML report with embedded charts")
	f.StringVar(&o.chartsDir, "charts", "", "write the two comparison charts as PNG files into this directory")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      lvl,
			TimeFormat: time.TimeOnly,
		}),
	))
	return nil
}

func run(ctx context.Context, o opts, changed func(string) bool, out io.Writer) error {
	if o.watch && o.configPath == "" {
		return errors.New("--watch requires --config")
	}

	sheet, err := loadSheet(o, changed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, _console, time.Now().Format("2006-01-02 15:04:05"))

	if err := runOnce(ctx, o, sheet, out); err != nil {
		if !o.watch {
			return err
		}
		slog.Error("calculation failed", "err", err)
	}
	if !o.watch {
		return nil
	}

	return config.Watch(ctx, o.configPath, func(s *config.Sheet) {
		if err := applyFlags(s, o, changed); err != nil {
			slog.Error("apply flags", "err", err)
			return
		}
		fmt.Fprintf(out, "\n--- recalculated %s ---\n", time.Now().Format("15:04:05"))
		if err := runOnce(ctx, o, s, out); err != nil {
			slog.Error("calculation failed", "err", err)
		}
	})
}

func loadSheet(o opts, changed func(string) bool) (*config.Sheet, error) {
	var (
		sheet *config.Sheet
		err   error
	)
	if o.configPath != "" {
		sheet, err = config.Load(o.configPath)
	} else {
		sheet, err = config.Parse(nil)
	}
	if err != nil {
		return nil, err
	}
	if err := applyFlags(sheet, o, changed); err != nil {
		return nil, err
	}
	return sheet, nil
}

// applyFlags copies explicitly set flags over the sheet. Without a sheet every
// flag counts, defaults included.
func applyFlags(s *config.Sheet, o opts, changed func(string) bool) error {
	set := func(name string) bool { return o.configPath == "" || changed(name) }

	if set("bore") {
		s.Engine.Bore = o.bore
	}
	if set("bore-unit") {
		u, err := types.ParseLengthUnit(o.boreUnit)
		if err != nil {
			return fmt.Errorf("--bore-unit: %w", err)
		}
		s.Engine.BoreUnit = u
	}
	if set("stroke") {
		s.Engine.Stroke = o.stroke
	}
	if set("stroke-unit") {
		u, err := types.ParseLengthUnit(o.strokeUnit)
		if err != nil {
			return fmt.Errorf("--stroke-unit: %w", err)
		}
		s.Engine.StrokeUnit = u
	}
	if set("cylinders") {
		s.Engine.Cylinders = o.cylinders
	}
	if set("power") {
		s.Engine.RatedPower = o.power
	}
	if set("power-unit") {
		u, err := types.ParsePowerUnit(o.powerUnit)
		if err != nil {
			return fmt.Errorf("--power-unit: %w", err)
		}
		s.Engine.PowerUnit = u
	}
	if set("rpm") {
		s.Engine.RatedRPM = o.rpm
	}
	if set("method") {
		m, err := performance.ParseMethod(o.method)
		if err != nil {
			return fmt.Errorf("--method: %w", err)
		}
		s.Engine.Method = m
	}
	if set("radius") {
		s.Engine.DrumRadius = o.radius
	}
	if set("density") {
		s.Fuel.Density = o.density
	}
	if set("calorific") {
		s.Fuel.CalorificValue = o.calorific
	}

	// an explicit timing source replaces whatever the sheet had
	if changed("timings") {
		s.Timings, s.TimingsCSV = o.timings, ""
	}
	if changed("timings-csv") {
		s.Timings, s.TimingsCSV = nil, o.timingsCSV
	}

	if changed("csv") {
		s.Output.CSV = o.csvPath
	}
	if changed("json") {
		s.Output.JSON = o.jsonPath
	}
	if changed("html") {
		s.Output.HTML = o.htmlPath
	}
	if changed("charts") {
		s.Output.ChartsDir = o.chartsDir
	}
	return nil
}

func pickCollector(o opts, s *config.Sheet) (collector.Collector, error) {
	switch {
	case o.prompt:
		return &collector.Prompt{}, nil
	case s.TimingsCSV != "":
		return collector.CSVFile(s.TimingsCSV), nil
	case len(s.Timings) > 0:
		return collector.Static(s.Timings), nil
	default:
		return nil, errors.New("no timings: use --timings, --timings-csv, --prompt, or timings in the sheet")
	}
}

// announced shows the resolved max load before timings are collected.
type announced struct {
	next collector.Collector
	out  io.Writer
}

func (a announced) Collect(ctx context.Context, plan performance.LoadPlan) ([]performance.Measurement, error) {
	fmt.Fprintln(a.out, report.MaxLoadLine(plan))
	if !plan.Supported {
		slog.Warn("no load model for this method, loads are reported as 0")
	} else {
		slog.Debug("load plan", "max_kg", plan.MaxLoadKg, "step_kg", plan.StepLoadKg)
	}
	fmt.Fprintln(a.out)
	return a.next.Collect(ctx, plan)
}

func runOnce(ctx context.Context, o opts, s *config.Sheet, out io.Writer) error {
	col, err := pickCollector(o, s)
	if err != nil {
		return err
	}

	tbl, err := performance.Calculate(ctx, s.EngineSpec(), s.Units(), s.FuelSpec(), announced{next: col, out: out})
	if err != nil {
		return err
	}

	if o.pretty {
		err = report.WriteTable(out, tbl.Rows)
	} else {
		err = report.WriteLines(out, tbl.Rows)
	}
	if err != nil {
		return err
	}

	return writeOutputs(tbl, s.Output)
}

func writeOutputs(tbl performance.Table, oc config.OutputConfig) error {
	if oc.CSV != "" {
		if err := report.WriteFile(oc.CSV, func(w io.Writer) error { return report.WriteCSV(w, tbl.Rows) }); err != nil {
			return err
		}
		slog.Info("wrote csv", "path", oc.CSV)
	}
	if oc.JSON != "" {
		if err := report.WriteFile(oc.JSON, func(w io.Writer) error { return report.WriteJSON(w, tbl) }); err != nil {
			return err
		}
		slog.Info("wrote json", "path", oc.JSON)
	}
	if oc.HTML == "" && oc.ChartsDir == "" {
		return nil
	}

	charts := report.BuildCharts(tbl.Rows)
	if oc.ChartsDir != "" {
		paths, err := report.WriteCharts(oc.ChartsDir, charts)
		if err != nil {
			return err
		}
		slog.Info("wrote charts", "paths", paths)
	}
	if oc.HTML != "" {
		pngs, err := report.RenderAll(charts)
		if err != nil {
			return err
		}
		if err := report.WriteFile(oc.HTML, func(w io.Writer) error { return report.WriteHTML(w, tbl, charts, pngs) }); err != nil {
			return err
		}
		slog.Info("wrote html", "path", oc.HTML)
	}
	return nil
}

const _console = `engineperf - Four-Stroke Engine Performance

Load test as of %s:

`
