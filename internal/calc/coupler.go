package calc

// kgPerCM2PerMPa converts N/mm² to kg/cm².
const kgPerCM2PerMPa = 10.197

// CouplerJudgment grades the coupler joint result.
type CouplerJudgment string

const (
	// CouplerPass means the yield safety factor clears 1.5.
	CouplerPass CouplerJudgment = "pass"
	// CouplerMarginal means the joint stays below yield but without the
	// 1.5 margin.
	CouplerMarginal CouplerJudgment = "marginal"
	// CouplerFail means the stress exceeds the yield point.
	CouplerFail CouplerJudgment = "fail"
)

// CouplerInput describes the coupling joint frame carrying the payload
// and equipment moments about the coupling centre.
type CouplerInput struct {
	Payload      float64 `json:"payload" yaml:"payload"`           // kg, maximum payload W
	Equipment    float64 `json:"equipment" yaml:"equipment"`       // kg, equipment mass W'
	PayloadArm   float64 `json:"payloadArm" yaml:"payloadArm"`     // mm, coupling centre to bed centre
	EquipmentArm float64 `json:"equipmentArm" yaml:"equipmentArm"` // mm, coupling centre to equipment
	Section      RectHollow `json:"section" yaml:"section"`        // mm
	Tensile      float64 `json:"tensile" yaml:"tensile"` // kg/cm²
	Yield        float64 `json:"yield" yaml:"yield"`     // kg/cm²
}

// CouplerResult holds the joint frame stress check.
type CouplerResult struct {
	Moment         float64         `json:"moment"`         // N·mm
	SectionModulus float64         `json:"sectionModulus"` // mm³, Z = I/(H/2)
	Stress         float64         `json:"stress"`         // N/mm² (MPa)
	StressKgCM2    float64         `json:"stressKgCm2"`    // kg/cm²
	YieldSafety    float64         `json:"yieldSafety"`
	TensileSafety  float64         `json:"tensileSafety"`
	Judgment       CouplerJudgment `json:"judgment"`
}

// OK reports whether the joint passes with full margin.
func (r *CouplerResult) OK() bool { return r.Judgment == CouplerPass }

// CouplerStrength judges the coupling joint frame. Unlike the other
// strength sheets this one works in SI and grades the yield margin in
// three bands.
func CouplerStrength(in CouplerInput) (*CouplerResult, error) {
	if err := requirePositive(
		pv("payload", in.Payload),
		pv("payloadArm", in.PayloadArm),
		pv("tensile", in.Tensile),
		pv("yield", in.Yield),
		pv("section.outerWidth", in.Section.OuterWidth),
		pv("section.outerHeight", in.Section.OuterHeight),
	); err != nil {
		return nil, err
	}

	m := in.Payload*9.8*in.PayloadArm + in.Equipment*9.8*in.EquipmentArm

	b, h := in.Section.OuterWidth, in.Section.OuterHeight
	ib, ih := in.Section.InnerWidth, in.Section.InnerHeight
	i := (b*h*h*h - ib*ih*ih*ih) / 12.0
	z := i / (h / 2.0)

	sigma := m / z
	sigmaKg := sigma * kgPerCM2PerMPa

	sfYield := in.Yield / sigmaKg
	sfTensile := in.Tensile / sigmaKg

	judgment := CouplerFail
	switch {
	case sfYield >= 1.5:
		judgment = CouplerPass
	case sfYield >= 1.0:
		judgment = CouplerMarginal
	}

	return &CouplerResult{
		Moment:         m,
		SectionModulus: z,
		Stress:         sigma,
		StressKgCM2:    sigmaKg,
		YieldSafety:    sfYield,
		TensileSafety:  sfTensile,
		Judgment:       judgment,
	}, nil
}
