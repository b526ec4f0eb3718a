package performance

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/ja7ad/engineperf/pkg/types"
	"github.com/ja7ad/engineperf/pkg/util"
)

// 4500 comes from the metric-horsepower form of the rope brake equation,
// BP = 2πNWR / 4500 with W in kgf and R in meters.
const ropeBrakeFactor = 4500.0

// FrictionPowerKW is the fixed offset added to brake power to approximate
// indicated power. It is not a calibrated friction model.
const FrictionPowerKW = 1.0

// Normalize converts a raw spec to meters and kW. Apply it once; the returned
// spec no longer carries any unit information.
func Normalize(e EngineSpec, u Units) EngineSpec {
	e.Bore = u.Bore.ToMeters(e.Bore)
	e.Stroke = u.Stroke.ToMeters(e.Stroke)
	e.RatedPower = u.Power.ToKilowatts(e.RatedPower)
	return e
}

// ResolveMaxLoad returns the maximum dynamometer load and the load increment
// between steps:
//
//	w_max = 4500 * BP / (2π * N * R)
//	step  = w_max / 5
//
// ElectricGenerator has no load model; the plan comes back zeroed with
// Supported=false.
func ResolveMaxLoad(e EngineSpec, f FuelSpec) (LoadPlan, error) {
	if err := ValidateSpecs(e, f); err != nil {
		return LoadPlan{}, err
	}
	if e.Method == ElectricGenerator {
		return LoadPlan{}, nil
	}

	wmax := (ropeBrakeFactor * e.RatedPower) / (2 * math.Pi * e.RatedRPM * e.DrumRadius)
	if !util.Finite(wmax) {
		return LoadPlan{}, invalid("max load", "rated rpm %v and drum radius %v give a non-finite load", e.RatedRPM, e.DrumRadius)
	}
	return LoadPlan{
		MaxLoadKg:  wmax,
		StepLoadKg: wmax / types.StepsPerLoadRun,
		Supported:  true,
	}, nil
}

// FormatMaxLoad formats a max load for display, two decimals.
func FormatMaxLoad(kg float64) string {
	return fmt.Sprintf("%.2f", kg)
}

// ComputeRows produces the observation table, one row per step ordered 0..5.
// Nothing is computed if any input fails validation. Divisions with a zero
// divisor yield 0 for that metric.
//
// Brake power is interpolated linearly from zero to rated power across the
// steps and indicated power is BP + FrictionPowerKW. Both are approximations
// carried over from the lab procedure, not measurements.
func ComputeRows(e EngineSpec, f FuelSpec, stepLoadKg float64, ms []Measurement) ([]Row, error) {
	if err := ValidateSpecs(e, f); err != nil {
		return nil, err
	}
	if err := validateStepLoad(stepLoadKg); err != nil {
		return nil, err
	}
	if err := ValidateMeasurements(ms); err != nil {
		return nil, err
	}

	sorted := make([]Measurement, len(ms))
	copy(sorted, ms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Step < sorted[j].Step })

	area := math.Pi * (e.Bore / 2) * (e.Bore / 2)
	strokesPerMin := e.RatedRPM / 2 // four-stroke: one power stroke every two revolutions
	// swept volume per minute across all cylinders, m³/min
	swept := e.Stroke * area * strokesPerMin * float64(e.Cylinders)

	rows := make([]Row, 0, StepCount)
	for _, m := range sorted {
		i := m.Step
		loadKg := float64(i) * stepLoadKg

		tfc := util.SafeDiv(types.FuelSampleCC*f.Density*types.SecondsPerHour, m.Seconds*1000)
		bp := e.RatedPower * (float64(i) / types.StepsPerLoadRun)
		ip := bp + FrictionPowerKW
		heat := tfc * f.CalorificValue

		rows = append(rows, Row{
			Step:     i,
			LoadKg:   loadKg,
			LoadLbs:  types.Kilograms(loadKg).Pounds(),
			Time10cc: m.Seconds,
			TFC:      tfc,
			SFC:      util.SafeDiv(tfc, bp),
			BP:       bp,
			BMEP:     util.SafeDiv(bp*60, swept),
			IP:       ip,
			IMEP:     util.SafeDiv(ip*60, swept),
			BTE:      util.SafeDiv(bp*types.SecondsPerHour, heat) * 100,
			ITE:      util.SafeDiv(ip*types.SecondsPerHour, heat) * 100,
			ME:       util.SafeDiv(bp, ip) * 100,
		})
	}
	return rows, nil
}

// TimingSource supplies the six load-step timings once the load plan is known.
type TimingSource interface {
	Collect(ctx context.Context, plan LoadPlan) ([]Measurement, error)
}

// Calculate runs the whole pipeline: normalize, resolve the max load, collect
// timings for that plan, then compute rows.
func Calculate(ctx context.Context, raw EngineSpec, u Units, f FuelSpec, src TimingSource) (Table, error) {
	e := Normalize(raw, u)

	plan, err := ResolveMaxLoad(e, f)
	if err != nil {
		return Table{}, err
	}

	ms, err := src.Collect(ctx, plan)
	if err != nil {
		return Table{}, fmt.Errorf("collect timings: %w", err)
	}

	rows, err := ComputeRows(e, f, plan.StepLoadKg, ms)
	if err != nil {
		return Table{}, err
	}
	return Table{Engine: e, Fuel: f, Plan: plan, Rows: rows}, nil
}
