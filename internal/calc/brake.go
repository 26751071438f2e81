package calc

import "fmt"

// MinBrakeSafety is the static safety-factor floor for the brake drum
// pressure-vessel check.
const MinBrakeSafety = 1.5

// BrakeDrumInput describes the drum as a thick-walled cylinder under
// internal pressure. Material strengths are in N/mm².
type BrakeDrumInput struct {
	InnerDiameter float64 `json:"innerDiameter" yaml:"innerDiameter"` // mm
	OuterDiameter float64 `json:"outerDiameter" yaml:"outerDiameter"` // mm
	Pressure      float64 `json:"pressure" yaml:"pressure"`           // MPa
	Width         float64 `json:"width" yaml:"width"`                 // mm
	Tensile       float64 `json:"tensile" yaml:"tensile"`
	Yield         float64 `json:"yield" yaml:"yield"`
	Shear         float64 `json:"shear" yaml:"shear"`
	Margin        float64 `json:"margin" yaml:"margin"` // stress multiplier, defaults to 1.0
}

// BrakeDrumResult holds the Lamé stresses and the three safety checks.
type BrakeDrumResult struct {
	DiameterRatio    float64 `json:"diameterRatio"`    // k = r_o/r_i
	HoopStressInner  float64 `json:"hoopStressInner"`  // N/mm²
	HoopStressOuter  float64 `json:"hoopStressOuter"`  // N/mm²
	EquivalentStress float64 `json:"equivalentStress"` // N/mm², margin applied
	TensileSafety    float64 `json:"tensileSafety"`
	YieldSafety      float64 `json:"yieldSafety"`
	ShearSafety      float64 `json:"shearSafety"`
	TensileOK        bool    `json:"tensileOk"`
	YieldOK          bool    `json:"yieldOk"`
	ShearOK          bool    `json:"shearOk"`
}

// OK reports whether all three safety factors clear the floor.
func (r *BrakeDrumResult) OK() bool { return r.TensileOK && r.YieldOK && r.ShearOK }

// BrakeDrumStrength applies the Lamé thick-cylinder solution to the drum
// and judges tensile, yield and shear margins.
func BrakeDrumStrength(in BrakeDrumInput) (*BrakeDrumResult, error) {
	if err := requirePositive(
		pv("innerDiameter", in.InnerDiameter),
		pv("outerDiameter", in.OuterDiameter),
		pv("pressure", in.Pressure),
		pv("width", in.Width),
		pv("tensile", in.Tensile),
		pv("yield", in.Yield),
		pv("shear", in.Shear),
	); err != nil {
		return nil, err
	}
	if in.OuterDiameter <= in.InnerDiameter {
		return nil, fmt.Errorf("outer diameter %g must exceed inner diameter %g", in.OuterDiameter, in.InnerDiameter)
	}
	margin := in.Margin
	if margin == 0 {
		margin = 1.0
	}

	// The sheet treats 1 MPa of drum pressure as 10 N/mm² of wall
	// loading.
	p := in.Pressure * 10.0
	k := in.OuterDiameter / in.InnerDiameter
	k2 := k * k

	hoopInner := p * (k2 + 1) / (k2 - 1)
	hoopOuter := p * 2 * k2 / (k2 - 1)

	// The inner tangential stress dominates; it stands in for the von
	// Mises equivalent.
	equivalent := hoopInner * margin

	res := &BrakeDrumResult{
		DiameterRatio:    k,
		HoopStressInner:  hoopInner,
		HoopStressOuter:  hoopOuter,
		EquivalentStress: equivalent,
		TensileSafety:    in.Tensile / equivalent,
		YieldSafety:      in.Yield / equivalent,
		ShearSafety:      in.Shear / (equivalent / 2.0),
	}
	res.TensileOK = res.TensileSafety >= MinBrakeSafety
	res.YieldOK = res.YieldSafety >= MinBrakeSafety
	res.ShearOK = res.ShearSafety >= MinBrakeSafety
	return res, nil
}
