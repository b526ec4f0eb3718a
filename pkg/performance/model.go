package performance

import (
	"fmt"
	"strings"

	"github.com/ja7ad/engineperf/pkg/types"
)

// Method is the load-test device fitted to the engine.
type Method int

const (
	RopeBrakeDynamometer Method = iota
	ElectricGenerator
)

// ParseMethod accepts short names and the labels used on test sheets.
func ParseMethod(s string) (Method, error) {
	k := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s))
	switch k {
	case "", "rope", "ropebrake", "ropebrakedynamometer":
		return RopeBrakeDynamometer, nil
	case "electric", "generator", "electricgenerator":
		return ElectricGenerator, nil
	default:
		return RopeBrakeDynamometer, fmt.Errorf("performance: unknown load-test method %q", s)
	}
}

func (m Method) String() string {
	switch m {
	case RopeBrakeDynamometer:
		return "Rope Brake Dynamometer"
	case ElectricGenerator:
		return "Electric Generator"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// EngineSpec describes the engine under test. Once normalized, lengths are in
// meters and power in kW.
type EngineSpec struct {
	Bore       float64 `json:"bore_m"`
	Stroke     float64 `json:"stroke_m"`
	Cylinders  int     `json:"cylinders"`
	RatedPower float64 `json:"rated_bp_kw"`
	RatedRPM   float64 `json:"rated_rpm"`
	Method     Method  `json:"method"`
	// DrumRadius is the brake-drum mean radius; only read for RopeBrakeDynamometer.
	DrumRadius float64 `json:"drum_radius_m,omitempty"`
}

// FuelSpec holds fuel properties.
// Units:
//   - Density: kg/L (numerically equal to g/cc)
//   - CalorificValue: kJ/kg
type FuelSpec struct {
	Density        float64 `json:"density"`
	CalorificValue float64 `json:"calorific_value_kj_kg"`
}

// Units records what the raw EngineSpec values were entered in.
type Units struct {
	Bore   types.LengthUnit `json:"bore"`
	Stroke types.LengthUnit `json:"stroke"`
	Power  types.PowerUnit  `json:"power"`
}

// Measurement is the time taken to burn the 10 cc fuel sample at one load step.
type Measurement struct {
	Step    int     `json:"step"`
	Seconds float64 `json:"seconds"`
}

// LoadPlan is the result of resolving the maximum load, handed to the timing
// collector before any row is computed.
type LoadPlan struct {
	MaxLoadKg  float64 `json:"max_load_kg"`
	StepLoadKg float64 `json:"step_load_kg"`
	// Supported is false when the method has no load model; MaxLoadKg is then 0
	// and carries no physical meaning.
	Supported bool `json:"supported"`
}

// LoadAt returns the dynamometer load applied at step i.
func (p LoadPlan) LoadAt(i int) float64 { return float64(i) * p.StepLoadKg }

// Row is one line of the observation table.
// Units:
//   - LoadKg/LoadLbs: kg / lbs
//   - Time10cc: seconds
//   - TFC: kg/h
//   - SFC: kg/kWh
//   - BP/IP: kW
//   - BMEP/IMEP: kPa
//   - BTE/ITE/ME: percent
type Row struct {
	Step     int     `json:"step"`
	LoadKg   float64 `json:"load_kg"`
	LoadLbs  float64 `json:"load_lbs"`
	Time10cc float64 `json:"time_10cc_s"`
	TFC      float64 `json:"tfc_kg_h"`
	SFC      float64 `json:"sfc_kg_kwh"`
	BP       float64 `json:"bp_kw"`
	BMEP     float64 `json:"bmep_kpa"`
	IP       float64 `json:"ip_kw"`
	IMEP     float64 `json:"imep_kpa"`
	BTE      float64 `json:"bte_pct"`
	ITE      float64 `json:"ite_pct"`
	ME       float64 `json:"me_pct"`
}

// Table is a full calculation result.
type Table struct {
	Engine EngineSpec `json:"engine"`
	Fuel   FuelSpec   `json:"fuel"`
	Plan   LoadPlan   `json:"plan"`
	Rows   []Row      `json:"rows"`
}
