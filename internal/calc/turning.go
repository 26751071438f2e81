package calc

import (
	"fmt"
	"math"
)

// TurningInput carries the tractor and trailer geometry for the minimum
// turning radius sheet. All values are in metres.
type TurningInput struct {
	TractorWheelbase float64 `json:"tractorWheelbase" yaml:"tractorWheelbase"` // L1
	TrailerWheelbase float64 `json:"trailerWheelbase" yaml:"trailerWheelbase"` // L2
	FrontHalfTread   float64 `json:"frontHalfTread" yaml:"frontHalfTread"`     // I1 = Trf1/2
	RearHalfTread    float64 `json:"rearHalfTread" yaml:"rearHalfTread"`       // I2 = Trf2/2
	CouplerOffset    float64 `json:"couplerOffset" yaml:"couplerOffset"`       // S
}

// TurningResult holds the chained wheelbase and the coupled minimum
// turning radius, in metres.
type TurningResult struct {
	ChainedWheelbase float64 `json:"chainedWheelbase"` // Lc = √(L2²+I2²−S²)
	Radius           float64 `json:"radius"`           // R = √(L1²+(Lc+I1)²)
}

// TurningRadius computes the minimum turning radius of the coupled
// combination. The coupler offset must not exceed the trailer geometry,
// otherwise the chained-wheelbase radicand turns negative.
func TurningRadius(in TurningInput) (*TurningResult, error) {
	if err := requirePositive(
		pv("tractorWheelbase", in.TractorWheelbase),
		pv("trailerWheelbase", in.TrailerWheelbase),
		pv("frontHalfTread", in.FrontHalfTread),
		pv("rearHalfTread", in.RearHalfTread),
		pv("couplerOffset", in.CouplerOffset),
	); err != nil {
		return nil, err
	}

	radicand := in.TrailerWheelbase*in.TrailerWheelbase +
		in.RearHalfTread*in.RearHalfTread -
		in.CouplerOffset*in.CouplerOffset
	if radicand < 0 {
		return nil, fmt.Errorf("coupler offset %g m is too large for the trailer geometry", in.CouplerOffset)
	}

	lc := math.Sqrt(radicand)
	r := math.Sqrt(in.TractorWheelbase*in.TractorWheelbase +
		(lc+in.FrontHalfTread)*(lc+in.FrontHalfTread))

	return &TurningResult{ChainedWheelbase: lc, Radius: r}, nil
}
