package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.0, SafeDiv(6, 3))
	assert.Equal(t, 0.0, SafeDiv(6, 0))
	assert.Equal(t, 0.0, SafeDiv(0, 0))
	assert.Equal(t, 0.0, SafeDiv(math.Inf(1), 0))
	// a non-finite quotient from a non-zero divisor passes through
	assert.True(t, math.IsInf(SafeDiv(math.Inf(1), 2), 1))
	assert.True(t, math.IsInf(SafeDiv(math.MaxFloat64, 0.5), 1))
	// tiny but non-zero divisors are real divisions
	assert.InDelta(t, 1e12, SafeDiv(1, 1e-12), 1)
}

func TestPositive(t *testing.T) {
	assert.True(t, Positive(1e-9))
	assert.False(t, Positive(0))
	assert.False(t, Positive(-1))
	assert.False(t, Positive(math.NaN()))
	assert.False(t, Positive(math.Inf(1)))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(0))
	assert.True(t, Finite(-3.5))
	assert.False(t, Finite(math.NaN()))
	assert.False(t, Finite(math.Inf(-1)))
}

func TestFmtFloat(t *testing.T) {
	assert.Equal(t, "0.75", FmtFloat(0.75))
	assert.Equal(t, "100", FmtFloat(100))
	assert.Equal(t, "-2.5", FmtFloat(-2.5))
}

func TestRound(t *testing.T) {
	assert.InDelta(t, 5.97, Round(5.968310, 2), 1e-12)
	assert.InDelta(t, 0.386, Round(0.385714, 3), 1e-12)
	assert.Equal(t, 0.0, Round(0, 4))
}
