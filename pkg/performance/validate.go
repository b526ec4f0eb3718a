package performance

import (
	"github.com/ja7ad/engineperf/pkg/types"
	"github.com/ja7ad/engineperf/pkg/util"
)

// StepCount is the number of rows in an observation table, no-load included.
const StepCount = types.StepsPerLoadRun + 1

// ValidateSpecs checks engine and fuel inputs in a fixed order and returns the
// first failure.
func ValidateSpecs(e EngineSpec, f FuelSpec) error {
	checks := []struct {
		field string
		v     float64
	}{
		{"bore", e.Bore},
		{"stroke", e.Stroke},
		{"cylinders", float64(e.Cylinders)},
		{"rated brake power", e.RatedPower},
		{"rated rpm", e.RatedRPM},
		{"fuel density", f.Density},
		{"calorific value", f.CalorificValue},
	}
	for _, c := range checks {
		if !util.Positive(c.v) {
			return invalid(c.field, "must be a positive number, got %v", c.v)
		}
	}

	switch e.Method {
	case RopeBrakeDynamometer:
		if !util.Positive(e.DrumRadius) {
			return invalid("drum radius", "must be a positive number for %s, got %v", e.Method, e.DrumRadius)
		}
	case ElectricGenerator:
	default:
		return invalid("method", "unknown load-test method %d", int(e.Method))
	}
	return nil
}

// ValidateMeasurements checks that ms holds exactly one positive timing per
// step index.
func ValidateMeasurements(ms []Measurement) error {
	if len(ms) != StepCount {
		return invalid("timings", "want %d load steps, got %d", StepCount, len(ms))
	}
	var seen [StepCount]bool
	for i, m := range ms {
		if m.Step < 0 || m.Step >= StepCount {
			return invalid("timings", "entry %d has step index %d outside 0..%d", i, m.Step, StepCount-1)
		}
		if seen[m.Step] {
			return invalid("timings", "step %d supplied more than once", m.Step)
		}
		seen[m.Step] = true
		if !util.Positive(m.Seconds) {
			return invalid("timings", "step %d time must be a positive number of seconds, got %v", m.Step, m.Seconds)
		}
	}
	return nil
}

func validateStepLoad(kg float64) error {
	if !util.Finite(kg) || kg < 0 {
		return invalid("step load", "must be a finite non-negative mass, got %v", kg)
	}
	return nil
}
