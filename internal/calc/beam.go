package calc

import (
	"fmt"
	"math"
	"sort"
)

// PointLoad is a concentrated load on the beam, position measured from
// the left support.
type PointLoad struct {
	Load     float64 `json:"load" yaml:"load"`         // kg, downward positive
	Position float64 `json:"position" yaml:"position"` // mm, 0 < x < L
}

// BeamInput models the chassis frame as a simply supported beam with
// point loads and a uniform load from the carried body.
type BeamInput struct {
	Length      float64     `json:"length" yaml:"length"`           // mm, support to support
	PointLoads  []PointLoad `json:"pointLoads" yaml:"pointLoads"`   //
	Distributed float64     `json:"distributed" yaml:"distributed"` // kg/m over the full length
	Section     Section     `json:"-" yaml:"-"`
	Tensile     float64     `json:"tensile" yaml:"tensile"` // kg/cm²
	Yield       float64     `json:"yield" yaml:"yield"`     // kg/cm²
}

// BeamSample is a shear or moment value at a position along the beam.
type BeamSample struct {
	Position float64 `json:"position"` // m from the left support
	Value    float64 `json:"value"`
}

// BeamResult carries the reactions, the shear and moment traversal and
// the strength judgment.
type BeamResult struct {
	LeftReaction    float64      `json:"leftReaction"`    // kg, RA
	RightReaction   float64      `json:"rightReaction"`   // kg, RB
	DistributedLoad float64      `json:"distributedLoad"` // kg, total from w·L
	PointLoadTotal  float64      `json:"pointLoadTotal"`  // kg
	Shear           []BeamSample `json:"shear"`           // kg at event points
	Moments         []BeamSample `json:"moments"`         // kg·cm at event points
	MaxMoment       float64      `json:"maxMoment"`       // kg·cm
	SectionModulus  float64      `json:"sectionModulus"`  // cm³
	BendingStress   float64      `json:"bendingStress"`   // kg/cm²
	BreakSafety     float64      `json:"breakSafety"`
	YieldSafety     float64      `json:"yieldSafety"`
	BreakOK         bool         `json:"breakOk"`
	YieldOK         bool         `json:"yieldOk"`
}

// OK reports whether both safety factors clear their minimums.
func (r *BeamResult) OK() bool { return r.BreakOK && r.YieldOK }

// BeamStrength resolves the support reactions, traverses shear and
// bending moment across the load event points and judges the worst
// moment against the section.
func BeamStrength(in BeamInput) (*BeamResult, error) {
	if in.Length <= 0 {
		return nil, fmt.Errorf("beam length must be positive, got %g", in.Length)
	}
	if in.Section == nil {
		return nil, fmt.Errorf("beam section is required")
	}
	if err := requirePositive(pv("tensile", in.Tensile), pv("yield", in.Yield)); err != nil {
		return nil, err
	}
	for i, p := range in.PointLoads {
		if p.Position <= 0 || p.Position >= in.Length {
			return nil, fmt.Errorf("point load %d at %g mm must sit strictly inside the span", i+1, p.Position)
		}
	}

	lM := in.Length / 1000.0
	w := in.Distributed

	distTotal := w * lM
	var pointTotal float64
	for _, p := range in.PointLoads {
		pointTotal += p.Load
	}

	// Moment balance around the left support.
	var momentSum float64
	for _, p := range in.PointLoads {
		momentSum += p.Load * p.Position / 1000.0
	}
	rb := (momentSum + distTotal*lM/2.0) / lM
	ra := pointTotal + distTotal - rb

	// Event points: supports plus every load position, deduplicated.
	events := []float64{0, lM}
	for _, p := range in.PointLoads {
		events = append(events, p.Position/1000.0)
	}
	sort.Float64s(events)
	events = dedupe(events)

	shear := make([]BeamSample, 0, len(events))
	moments := make([]BeamSample, 0, len(events))
	moments = append(moments, BeamSample{Position: 0, Value: 0})

	v := ra
	var m float64    // kg·m during traversal
	var peak float64 // kg·m, tracks interior shear zero crossings too
	prev := 0.0
	for _, x := range events[1:] {
		dx := x - prev
		// The shear is linear under the distributed load, so the moment
		// follows a parabola across the segment. Its apex sits where the
		// shear crosses zero, which need not be an event point.
		if w > 0 && v > 0 && v-w*dx < 0 {
			if apex := m + v*v/(2.0*w); math.Abs(apex) > math.Abs(peak) {
				peak = apex
			}
		}
		m += v*dx - w*dx*dx/2.0
		if math.Abs(m) > math.Abs(peak) {
			peak = m
		}
		moments = append(moments, BeamSample{Position: x, Value: m * 100.0})
		v -= w * dx
		for _, p := range in.PointLoads {
			if math.Abs(x-p.Position/1000.0) < 1e-9 {
				v -= p.Load
			}
		}
		shear = append(shear, BeamSample{Position: x, Value: v})
		prev = x
	}

	maxM := math.Abs(peak) * 100.0

	zMM3, err := in.Section.Modulus()
	if err != nil {
		return nil, err
	}
	zCM3 := zMM3 / 1000.0
	sigma := maxM / zCM3
	sfB, sfY, okB, okY := safetyFactors(in.Tensile, in.Yield, sigma)

	return &BeamResult{
		LeftReaction:    ra,
		RightReaction:   rb,
		DistributedLoad: distTotal,
		PointLoadTotal:  pointTotal,
		Shear:           shear,
		Moments:         moments,
		MaxMoment:       maxM,
		SectionModulus:  zCM3,
		BendingStress:   sigma,
		BreakSafety:     sfB,
		YieldSafety:     sfY,
		BreakOK:         okB,
		YieldOK:         okY,
	}, nil
}

func dedupe(sorted []float64) []float64 {
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if math.Abs(v-out[len(out)-1]) > 1e-9 {
			out = append(out, v)
		}
	}
	return out
}
