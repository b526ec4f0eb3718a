package collector

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/ja7ad/engineperf/pkg/performance"
)

// Collector gathers the six load-step timings after the load plan is known.
type Collector = performance.TimingSource

var (
	_ Collector = Static(nil)
	_ Collector = (*CSV)(nil)
	_ Collector = (*Prompt)(nil)
)

// Static returns fixed timings, step i taking seconds[i].
type Static []float64

func (s Static) Collect(ctx context.Context, _ performance.LoadPlan) ([]performance.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkCount(len(s)); err != nil {
		return nil, err
	}
	return lo.Map(s, func(sec float64, i int) performance.Measurement {
		return performance.Measurement{Step: i, Seconds: sec}
	}), nil
}

func checkCount(n int) error {
	switch {
	case n < performance.StepCount:
		return fmt.Errorf("%w: got %d, want %d", ErrIncomplete, n, performance.StepCount)
	case n > performance.StepCount:
		return fmt.Errorf("%w: got %d, want %d", ErrExtra, n, performance.StepCount)
	}
	return nil
}
