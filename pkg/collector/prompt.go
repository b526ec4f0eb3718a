package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ja7ad/engineperf/pkg/performance"
	"github.com/ja7ad/engineperf/pkg/types"
)

// DefaultAttempts is how many times Prompt re-asks a step after a bad answer.
const DefaultAttempts = 3

// Prompt asks an operator for each timing on the terminal.
type Prompt struct {
	// Ask shows label and returns the answer. Nil uses a pterm text input.
	Ask func(label string) (string, error)
	// Attempts per step; 0 means DefaultAttempts.
	Attempts int
}

func (p *Prompt) Collect(ctx context.Context, plan performance.LoadPlan) ([]performance.Measurement, error) {
	ask := p.Ask
	if ask == nil {
		ask = ptermAsk
	}
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	out := make([]performance.Measurement, 0, performance.StepCount)
	for i := 0; i < performance.StepCount; i++ {
		sec, err := p.askStep(ctx, ask, attempts, stepLabel(plan, i))
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, performance.Measurement{Step: i, Seconds: sec})
	}
	return out, nil
}

func (p *Prompt) askStep(ctx context.Context, ask func(string) (string, error), attempts int, label string) (float64, error) {
	var lastErr error
	for n := 0; n < attempts; n++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		answer, err := ask(label)
		if err != nil {
			return 0, err
		}
		sec, err := parseSeconds(strings.TrimSpace(answer))
		if err == nil && sec > 0 {
			return sec, nil
		}
		if err == nil {
			err = fmt.Errorf("%w: %q must be greater than zero", ErrBadValue, answer)
		}
		lastErr = err
		pterm.Warning.Println(err)
	}
	return 0, lastErr
}

func stepLabel(plan performance.LoadPlan, i int) string {
	if !plan.Supported {
		return fmt.Sprintf("Step %d: time for 10 cc of fuel (s)", i)
	}
	return fmt.Sprintf("Step %d (load %s): time for 10 cc of fuel (s)", i, types.Kilograms(plan.LoadAt(i)).Humanized())
}

func ptermAsk(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(label)
}
