package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ja7ad/engineperf/pkg/performance"
	"github.com/ja7ad/engineperf/pkg/types"
)

// ErrTimingSources is returned when a sheet lists timings and a timings file.
var ErrTimingSources = errors.New("config: set either timings or timings_csv, not both")

// Sheet is one engine load test.
type Sheet struct {
	Engine  EngineConfig `yaml:"engine"`
	Fuel    FuelConfig   `yaml:"fuel"`
	Timings []float64    `yaml:"timings"`
	// TimingsCSV is a timings file, relative paths resolve against the sheet.
	TimingsCSV string       `yaml:"timings_csv"`
	Output     OutputConfig `yaml:"output"`
}

// EngineConfig holds raw engine values in the units they were entered in.
type EngineConfig struct {
	Bore       float64            `yaml:"bore"`
	BoreUnit   types.LengthUnit   `yaml:"bore_unit"`
	Stroke     float64            `yaml:"stroke"`
	StrokeUnit types.LengthUnit   `yaml:"stroke_unit"`
	Cylinders  int                `yaml:"cylinders"`
	RatedPower float64            `yaml:"rated_power"`
	PowerUnit  types.PowerUnit    `yaml:"power_unit"`
	RatedRPM   float64            `yaml:"rated_rpm"`
	Method     performance.Method `yaml:"method"`
	DrumRadius float64            `yaml:"drum_radius"`
}

// FuelConfig holds fuel properties: density in g/cc, calorific value in kJ/kg.
type FuelConfig struct {
	Density        float64 `yaml:"density"`
	CalorificValue float64 `yaml:"calorific_value"`
}

// OutputConfig lists report destinations; empty paths are skipped.
type OutputConfig struct {
	CSV       string `yaml:"csv"`
	JSON      string `yaml:"json"`
	HTML      string `yaml:"html"`
	ChartsDir string `yaml:"charts_dir"`
}

// EngineSpec returns the raw (not yet normalized) engine spec.
func (s *Sheet) EngineSpec() performance.EngineSpec {
	e := s.Engine
	return performance.EngineSpec{
		Bore:       e.Bore,
		Stroke:     e.Stroke,
		Cylinders:  e.Cylinders,
		RatedPower: e.RatedPower,
		RatedRPM:   e.RatedRPM,
		Method:     e.Method,
		DrumRadius: e.DrumRadius,
	}
}

// Units returns the unit flags of the engine section.
func (s *Sheet) Units() performance.Units {
	return performance.Units{Bore: s.Engine.BoreUnit, Stroke: s.Engine.StrokeUnit, Power: s.Engine.PowerUnit}
}

// FuelSpec returns the fuel section.
func (s *Sheet) FuelSpec() performance.FuelSpec {
	return performance.FuelSpec{Density: s.Fuel.Density, CalorificValue: s.Fuel.CalorificValue}
}

// Load reads and parses the sheet at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if s.TimingsCSV != "" && !filepath.IsAbs(s.TimingsCSV) {
		s.TimingsCSV = filepath.Join(filepath.Dir(path), s.TimingsCSV)
	}
	return s, nil
}

// Parse decodes a sheet from YAML bytes.
func Parse(data []byte) (*Sheet, error) {
	s := defaults()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() *Sheet {
	return &Sheet{
		Engine: EngineConfig{
			BoreUnit:   types.Meters,
			StrokeUnit: types.Meters,
			PowerUnit:  types.Kilowatts,
			Method:     performance.RopeBrakeDynamometer,
		},
	}
}

func validate(s *Sheet) error {
	if len(s.Timings) > 0 && s.TimingsCSV != "" {
		return ErrTimingSources
	}
	switch s.Engine.Method {
	case performance.RopeBrakeDynamometer, performance.ElectricGenerator:
	default:
		return fmt.Errorf("config: engine.method: unknown method %d", int(s.Engine.Method))
	}
	return nil
}
