package types

import (
	"fmt"
	"strings"
)

// Conversion factors used across the calculator.
const (
	MetersPerInch   = 0.0254
	KilowattsPerHP  = 0.7457
	PoundsPerKilo   = 2.20462
	FuelSampleCC    = 10.0 // reference fuel volume timed at every load step
	SecondsPerHour  = 3600.0
	StepsPerLoadRun = 5 // load increments above the no-load baseline
)

// LengthUnit is the unit a bore or stroke value was entered in.
type LengthUnit int

const (
	Meters LengthUnit = iota
	Inches
)

// ParseLengthUnit accepts the usual spellings, case-insensitive.
func ParseLengthUnit(s string) (LengthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m", "meter", "meters", "metre", "metres":
		return Meters, nil
	case "in", "inch", "inches":
		return Inches, nil
	default:
		return Meters, fmt.Errorf("types: unknown length unit %q", s)
	}
}

// ToMeters converts v from u to meters.
func (u LengthUnit) ToMeters(v float64) float64 {
	if u == Inches {
		return v * MetersPerInch
	}
	return v
}

func (u LengthUnit) String() string {
	if u == Inches {
		return "inches"
	}
	return "meters"
}

// UnmarshalText lets yaml and flag parsers decode unit names.
func (u *LengthUnit) UnmarshalText(b []byte) error {
	v, err := ParseLengthUnit(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u LengthUnit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// PowerUnit is the unit a rated brake power was entered in.
type PowerUnit int

const (
	Kilowatts PowerUnit = iota
	Horsepower
)

// ParsePowerUnit accepts the usual spellings, case-insensitive.
func ParsePowerUnit(s string) (PowerUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kw", "kilowatt", "kilowatts":
		return Kilowatts, nil
	case "hp", "horsepower":
		return Horsepower, nil
	default:
		return Kilowatts, fmt.Errorf("types: unknown power unit %q", s)
	}
}

// ToKilowatts converts v from u to kW.
func (u PowerUnit) ToKilowatts(v float64) float64 {
	if u == Horsepower {
		return v * KilowattsPerHP
	}
	return v
}

func (u PowerUnit) String() string {
	if u == Horsepower {
		return "HP"
	}
	return "kW"
}

func (u *PowerUnit) UnmarshalText(b []byte) error {
	v, err := ParsePowerUnit(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u PowerUnit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// Kilograms is a dynamometer load.
type Kilograms float64

// Pounds returns the load in lbs.
func (k Kilograms) Pounds() float64 { return float64(k) * PoundsPerKilo }

// Humanized returns the load with two decimals, e.g. "5.97 kg".
func (k Kilograms) Humanized() string { return fmt.Sprintf("%.2f kg", float64(k)) }
