package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthUnit_ToMeters(t *testing.T) {
	assert.InDelta(t, 0.254, Inches.ToMeters(10), 1e-12)
	assert.Equal(t, 0.1, Meters.ToMeters(0.1))
	assert.Equal(t, 0.0, Inches.ToMeters(0))
}

func TestPowerUnit_ToKilowatts(t *testing.T) {
	assert.InDelta(t, 7.457, Horsepower.ToKilowatts(10), 1e-12)
	assert.Equal(t, 5.0, Kilowatts.ToKilowatts(5))
}

func TestParseLengthUnit(t *testing.T) {
	cases := []struct {
		in   string
		want LengthUnit
	}{
		{"", Meters},
		{"m", Meters},
		{"Meters", Meters},
		{"in", Inches},
		{" inches ", Inches},
		{"INCH", Inches},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d_%s", i, tc.in), func(t *testing.T) {
			got, err := ParseLengthUnit(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseLengthUnit("furlong")
	require.Error(t, err)
}

func TestParsePowerUnit(t *testing.T) {
	for in, want := range map[string]PowerUnit{
		"":           Kilowatts,
		"kW":         Kilowatts,
		"kilowatts":  Kilowatts,
		"HP":         Horsepower,
		"horsepower": Horsepower,
	} {
		got, err := ParsePowerUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePowerUnit("PS")
	require.Error(t, err)
}

func TestUnits_TextRoundTrip(t *testing.T) {
	var l LengthUnit
	require.NoError(t, l.UnmarshalText([]byte("inches")))
	assert.Equal(t, Inches, l)
	b, err := l.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "inches", string(b))

	var p PowerUnit
	require.NoError(t, p.UnmarshalText([]byte("hp")))
	assert.Equal(t, Horsepower, p)
	require.Error(t, p.UnmarshalText([]byte("watts")))
	assert.Equal(t, Horsepower, p, "failed decode leaves value untouched")
}

func TestKilograms(t *testing.T) {
	assert.InDelta(t, 22.0462, Kilograms(10).Pounds(), 1e-9)
	assert.Equal(t, "5.97 kg", Kilograms(5.968310).Humanized())
	assert.Equal(t, "0.00 kg", Kilograms(0).Humanized())
}
