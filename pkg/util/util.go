package util

import (
	"math"
	"strconv"
)

// SafeDiv returns n/d, or 0 when d is zero. Overflow is not masked.
func SafeDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// Positive reports whether x is a finite number > 0. NaN fails.
func Positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Finite reports whether x is neither NaN nor ±Inf.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FmtFloat formats x with the shortest representation that round-trips.
func FmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Round rounds x to n decimal places.
func Round(x float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}
