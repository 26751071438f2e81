package calc

import "math"

// ChainInput describes a safety chain link and the trailer it retains.
// The tensile strength is in kg/mm², per the chain sheet.
type ChainInput struct {
	LinkLength   float64 `json:"linkLength" yaml:"linkLength"`     // mm, L
	LinkWidth    float64 `json:"linkWidth" yaml:"linkWidth"`       // mm, b
	WireDiameter float64 `json:"wireDiameter" yaml:"wireDiameter"` // mm, d
	GrossWeight  float64 `json:"grossWeight" yaml:"grossWeight"`   // kg, trailer gross weight W
	Tensile      float64 `json:"tensile" yaml:"tensile"`           // kg/mm², θb
}

// ChainResult holds the chain stress check. The chain passes when its
// strength covers twice the gross weight.
type ChainResult struct {
	WireArea       float64 `json:"wireArea"`       // mm², A = π(d/2)²
	FullStress     float64 `json:"fullStress"`     // kg/mm², W on one strand
	HalfStress     float64 `json:"halfStress"`     // kg/mm², W/2 per strand
	Safety         float64 `json:"safety"`         // θb / halfStress
	DoubledSafety  float64 `json:"doubledSafety"`  // θb / fullStress, i.e. at 2W
	OK             bool    `json:"ok"`
}

// ChainStrength checks the safety chain against the twice-gross-weight
// retention requirement.
func ChainStrength(in ChainInput) (*ChainResult, error) {
	if err := requirePositive(
		pv("wireDiameter", in.WireDiameter),
		pv("grossWeight", in.GrossWeight),
		pv("tensile", in.Tensile),
	); err != nil {
		return nil, err
	}

	r := in.WireDiameter / 2.0
	area := math.Pi * r * r

	full := in.GrossWeight / area
	half := in.GrossWeight / 2.0 / area

	res := &ChainResult{
		WireArea:      area,
		FullStress:    full,
		HalfStress:    half,
		Safety:        in.Tensile / half,
		DoubledSafety: in.Tensile / full,
	}
	res.OK = res.DoubledSafety >= 1.0
	return res, nil
}
