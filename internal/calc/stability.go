package calc

import "math"

// StabilityVehicle carries one vehicle's weight and track geometry for
// the stable inclination angle sheet. Treads and centre-of-gravity
// height are in metres.
type StabilityVehicle struct {
	Weight      float64 `json:"weight" yaml:"weight"`           // kg, W
	FrontWeight float64 `json:"frontWeight" yaml:"frontWeight"` // kg, Wf
	RearWeight  float64 `json:"rearWeight" yaml:"rearWeight"`   // kg, Wr
	FrontTread  float64 `json:"frontTread" yaml:"frontTread"`   // m, Tf
	RearTread   float64 `json:"rearTread" yaml:"rearTread"`     // m, Tr
	CGHeight    float64 `json:"cgHeight" yaml:"cgHeight"`       // m, H
}

// StabilityInput pairs the towing vehicle and the trailer.
type StabilityInput struct {
	Tow     StabilityVehicle `json:"tow" yaml:"tow"`
	Trailer StabilityVehicle `json:"trailer" yaml:"trailer"`
}

// StabilityResult holds the combined lateral half-track, centre of
// gravity height and the resulting stable inclination angle.
type StabilityResult struct {
	TowHalfTrack      float64 `json:"towHalfTrack"`      // m, B1
	TrailerHalfTrack  float64 `json:"trailerHalfTrack"`  // m, B2
	CombinedHalfTrack float64 `json:"combinedHalfTrack"` // m, B
	CombinedCGHeight  float64 `json:"combinedCgHeight"`  // m, H
	Angle             float64 `json:"angle"`             // degrees, θ1 = atan(B/H)
}

// StabilityAngle computes the maximum stable inclination angle of the
// coupled combination. Zero weights yield zero contributions rather than
// errors, matching the sheet's guarded divisions.
func StabilityAngle(in StabilityInput) StabilityResult {
	var res StabilityResult

	res.TowHalfTrack = halfTrack(in.Tow)
	res.TrailerHalfTrack = halfTrack(in.Trailer)

	total := in.Tow.Weight + in.Trailer.Weight
	if total != 0 {
		res.CombinedHalfTrack = (in.Tow.Weight*res.TowHalfTrack + in.Trailer.Weight*res.TrailerHalfTrack) / total
		res.CombinedCGHeight = (in.Tow.CGHeight*in.Tow.Weight + in.Trailer.CGHeight*in.Trailer.Weight) / total
	}
	if res.CombinedCGHeight != 0 {
		res.Angle = math.Atan(res.CombinedHalfTrack/res.CombinedCGHeight) * 180.0 / math.Pi
	}
	return res
}

func halfTrack(v StabilityVehicle) float64 {
	if v.Weight == 0 {
		return 0
	}
	return (v.FrontWeight*v.FrontTread + v.RearWeight*v.RearTread) / (2.0 * v.Weight)
}
