package collector

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ja7ad/engineperf/pkg/performance"
)

// CSV reads timings from a CSV source. Two shapes are accepted:
//
//	seconds          one value per line, step = line order
//	step,seconds     explicit step index
//
// A first record without any digit is treated as a header.
type CSV struct {
	// Open returns the source each time Collect runs.
	Open func() (io.ReadCloser, error)
}

// CSVFile reads timings from the file at path.
func CSVFile(path string) *CSV {
	return &CSV{Open: func() (io.ReadCloser, error) { return os.Open(path) }}
}

// CSVReader reads timings from r. Collect can only consume r once.
func CSVReader(r io.Reader) *CSV {
	return &CSV{Open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil }}
}

func (c *CSV) Collect(ctx context.Context, _ performance.LoadPlan) ([]performance.Measurement, error) {
	rc, err := c.Open()
	if err != nil {
		return nil, fmt.Errorf("collector: open csv: %w", err)
	}
	defer rc.Close()

	ms, err := ParseCSV(ctx, rc)
	if err != nil {
		return nil, err
	}
	if err := checkCount(len(ms)); err != nil {
		return nil, err
	}
	return ms, nil
}

// ParseCSV decodes every timing in r without checking the count.
func ParseCSV(ctx context.Context, r io.Reader) ([]performance.Measurement, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var (
		out   []performance.Measurement
		first = true
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collector: read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)

		rec = trimRecord(rec)
		if len(rec) == 0 {
			continue
		}
		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}

		m, err := parseRecord(rec, len(out))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// isHeader reports whether rec holds labels only, no digits at all.
func isHeader(rec []string) bool {
	for _, f := range rec {
		if strings.ContainsAny(f, "0123456789") {
			return false
		}
	}
	return true
}

func trimRecord(rec []string) []string {
	out := rec[:0]
	for _, f := range rec {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseRecord(rec []string, next int) (performance.Measurement, error) {
	if len(rec) == 1 {
		sec, err := parseSeconds(rec[0])
		if err != nil {
			return performance.Measurement{}, err
		}
		return performance.Measurement{Step: next, Seconds: sec}, nil
	}

	step, err := strconv.Atoi(rec[0])
	if err != nil {
		return performance.Measurement{}, fmt.Errorf("%w: step %q", ErrBadValue, rec[0])
	}
	sec, err := parseSeconds(rec[1])
	if err != nil {
		return performance.Measurement{}, err
	}
	return performance.Measurement{Step: step, Seconds: sec}, nil
}

func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, s)
	}
	return v, nil
}
