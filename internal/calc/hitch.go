package calc

import (
	"fmt"
	"math"
)

// HitchShape selects the hitch member cross section.
type HitchShape string

const (
	// HitchRound is a solid round bar of the given diameter.
	HitchRound HitchShape = "round"
	// HitchSquare is a hollow square tube, side length with wall
	// thickness.
	HitchSquare HitchShape = "square"
)

// HitchInput describes the hitch member loaded vertically at the ball and
// horizontally by towing/braking forces.
type HitchInput struct {
	VerticalLoad    float64    `json:"verticalLoad" yaml:"verticalLoad"`       // kg, P
	HorizontalForce float64    `json:"horizontalForce" yaml:"horizontalForce"` // kg, H
	Length          float64    `json:"length" yaml:"length"`                   // mm, ball to mounting face
	Size            float64    `json:"size" yaml:"size"`                       // mm, diameter or outer side
	WallThickness   float64    `json:"wallThickness" yaml:"wallThickness"`     // mm, square tube only
	Shape           HitchShape `json:"shape" yaml:"shape"`
	Tensile         float64    `json:"tensile" yaml:"tensile"` // kg/cm²
	Yield           float64    `json:"yield" yaml:"yield"`     // kg/cm²
	Factor          float64    `json:"factor" yaml:"factor"`   // overload factor, defaults to 2.5
}

// HitchResult holds the combined-moment judgment of the hitch member.
type HitchResult struct {
	VerticalMoment   float64 `json:"verticalMoment"`   // kg·cm
	HorizontalMoment float64 `json:"horizontalMoment"` // kg·cm
	CombinedMoment   float64 `json:"combinedMoment"`   // kg·cm
	SectionModulus   float64 `json:"sectionModulus"`   // cm³
	BendingStress    float64 `json:"bendingStress"`    // kg/cm²
	Factor           float64 `json:"factor"`
	BreakSafety      float64 `json:"breakSafety"`
	YieldSafety      float64 `json:"yieldSafety"`
	BreakOK          bool    `json:"breakOk"`
	YieldOK          bool    `json:"yieldOk"`
}

// OK reports whether both safety factors clear their minimums.
func (r *HitchResult) OK() bool { return r.BreakOK && r.YieldOK }

// HitchStrength combines the vertical and horizontal bending moments on
// the hitch member and judges the resulting stress.
func HitchStrength(in HitchInput) (*HitchResult, error) {
	if err := requirePositive(
		pv("verticalLoad", in.VerticalLoad),
		pv("length", in.Length),
		pv("size", in.Size),
		pv("tensile", in.Tensile),
		pv("yield", in.Yield),
	); err != nil {
		return nil, err
	}
	factor := in.Factor
	if factor == 0 {
		factor = LoadFactor
	}

	lCM := in.Length / 10.0
	mV := in.VerticalLoad * lCM
	mH := in.HorizontalForce * lCM
	mC := math.Sqrt(mV*mV + mH*mH)

	var z float64
	switch in.Shape {
	case "", HitchRound:
		d := in.Size / 10.0
		z = math.Pi * d * d * d / 32.0
	case HitchSquare:
		if in.WallThickness <= 0 {
			return nil, fmt.Errorf("square hitch member needs a wall thickness")
		}
		a := in.Size / 10.0
		t := in.WallThickness / 10.0
		b := a - 2*t
		if b <= 0 {
			return nil, fmt.Errorf("wall thickness %g mm leaves no hollow in a %g mm tube", in.WallThickness, in.Size)
		}
		z = (math.Pow(a, 4) - math.Pow(b, 4)) / (6.0 * a)
	default:
		return nil, fmt.Errorf("unknown hitch shape %q", in.Shape)
	}

	sigma := mC / z
	sfBreak := in.Tensile / (factor * sigma)
	sfYield := in.Yield / (factor * sigma)

	return &HitchResult{
		VerticalMoment:   mV,
		HorizontalMoment: mH,
		CombinedMoment:   mC,
		SectionModulus:   z,
		BendingStress:    sigma,
		Factor:           factor,
		BreakSafety:      sfBreak,
		YieldSafety:      sfYield,
		BreakOK:          sfBreak > MinBreakSafety,
		YieldOK:          sfYield > MinYieldSafety,
	}, nil
}
