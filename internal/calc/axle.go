package calc

import "math"

// AxleInput describes an axle loaded by the vehicle gross weight, shared
// evenly across its wheels.
type AxleInput struct {
	GrossWeight   float64 `json:"grossWeight" yaml:"grossWeight"`     // kg, total load on the axle
	WheelCount    int     `json:"wheelCount" yaml:"wheelCount"`       // wheels on the axle
	Diameter      float64 `json:"diameter" yaml:"diameter"`           // mm, axle diameter d
	BearingOffset float64 `json:"bearingOffset" yaml:"bearingOffset"` // mm, axle centre to bearing centre ΔS
	Tensile       float64 `json:"tensile" yaml:"tensile"`             // kg/cm², tensile strength θb
	Yield         float64 `json:"yield" yaml:"yield"`                 // kg/cm², yield point θy
}

// AxleResult holds the axle bending judgment.
type AxleResult struct {
	WheelLoad      float64 `json:"wheelLoad"`      // kg, P = W/n
	SectionModulus float64 `json:"sectionModulus"` // cm³, Z = πd³/32
	Moment         float64 `json:"moment"`         // kg·cm, M = P·ΔS
	BendingStress  float64 `json:"bendingStress"`  // kg/cm², σb = M/Z
	BreakSafety    float64 `json:"breakSafety"`
	YieldSafety    float64 `json:"yieldSafety"`
	BreakOK        bool    `json:"breakOk"`
	YieldOK        bool    `json:"yieldOk"`
}

// OK reports whether both safety factors clear their minimums.
func (r *AxleResult) OK() bool { return r.BreakOK && r.YieldOK }

// AxleStrength judges the bending strength of the axle. The wheel load is
// taken at the bearing offset from the axle centre, on a solid round
// section.
func AxleStrength(in AxleInput) (*AxleResult, error) {
	if err := requirePositive(
		pv("grossWeight", in.GrossWeight),
		pv("diameter", in.Diameter),
		pv("bearingOffset", in.BearingOffset),
		pv("tensile", in.Tensile),
		pv("yield", in.Yield),
		pv("wheelCount", float64(in.WheelCount)),
	); err != nil {
		return nil, err
	}

	p := in.GrossWeight / float64(in.WheelCount)
	dCM := in.Diameter / 10.0
	offCM := in.BearingOffset / 10.0

	z := math.Pi * dCM * dCM * dCM / 32.0
	m := p * offCM
	sigma := m / z
	sfB, sfY, okB, okY := safetyFactors(in.Tensile, in.Yield, sigma)

	return &AxleResult{
		WheelLoad:      p,
		SectionModulus: z,
		Moment:         m,
		BendingStress:  sigma,
		BreakSafety:    sfB,
		YieldSafety:    sfY,
		BreakOK:        okB,
		YieldOK:        okY,
	}, nil
}
