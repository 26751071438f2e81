package calc

import (
	"fmt"
	"math"
)

// FrameLoadPoints and FrameSpans fix the shape of the classic frame
// strength table: six load points separated by five spans.
const (
	FrameLoadPoints = 6
	FrameSpans      = 5
)

// FrameInput is the six-point load table judgment over a longitudinal
// frame member.
type FrameInput struct {
	Loads     []float64 `json:"loads" yaml:"loads"`         // kg, 6 entries
	Spans     []float64 `json:"spans" yaml:"spans"`         // mm, 5 entries between adjacent load points
	Section   Section   `json:"-" yaml:"-"`                 // cross section
	Tensile   float64   `json:"tensile" yaml:"tensile"`     // kg/cm²
	Yield     float64   `json:"yield" yaml:"yield"`         // kg/cm²
}

// FrameResult carries the shear/moment traversal and the strength
// judgment shared by all frame models.
type FrameResult struct {
	Shear          []float64 `json:"shear"`          // kg, at each span start
	Moments        []float64 `json:"moments"`        // kg·cm, at each span end
	MaxMoment      float64   `json:"maxMoment"`      // kg·cm
	SectionModulus float64   `json:"sectionModulus"` // cm³
	BendingStress  float64   `json:"bendingStress"`  // kg/cm²
	BreakSafety    float64   `json:"breakSafety"`
	YieldSafety    float64   `json:"yieldSafety"`
	BreakOK        bool      `json:"breakOk"`
	YieldOK        bool      `json:"yieldOk"`
	SectionKind    string    `json:"sectionKind"`
}

// OK reports whether both safety factors clear their minimums.
func (r *FrameResult) OK() bool { return r.BreakOK && r.YieldOK }

// FrameStrength walks the load table accumulating shear, takes the
// segment moments M_i = V_i·d_i and judges the worst one against the
// section.
func FrameStrength(in FrameInput) (*FrameResult, error) {
	if len(in.Loads) != FrameLoadPoints || len(in.Spans) != FrameSpans {
		return nil, fmt.Errorf("frame table needs %d loads and %d spans, got %d and %d",
			FrameLoadPoints, FrameSpans, len(in.Loads), len(in.Spans))
	}
	if err := requirePositive(pv("tensile", in.Tensile), pv("yield", in.Yield)); err != nil {
		return nil, err
	}
	for i, w := range in.Loads {
		if w <= 0 {
			return nil, fmt.Errorf("load %d must be positive, got %g", i+1, w)
		}
	}
	for i, d := range in.Spans {
		if d <= 0 {
			return nil, fmt.Errorf("span %d must be positive, got %g", i+1, d)
		}
	}
	if in.Section == nil {
		return nil, fmt.Errorf("frame section is required")
	}

	shear := make([]float64, 0, FrameLoadPoints)
	var v float64
	for _, w := range in.Loads {
		v += w
		shear = append(shear, v)
	}

	moments := make([]float64, 0, FrameSpans)
	for i, d := range in.Spans {
		moments = append(moments, shear[i]*d/10.0)
	}

	return judgeFrame(in.Section, in.Tensile, in.Yield, shear, moments, maxAbs(moments))
}

// judgeFrame resolves the section modulus and applies the shared stress
// and safety-factor judgment. maxMoment is in kg·cm.
func judgeFrame(sec Section, tensile, yield float64, shear, moments []float64, maxMoment float64) (*FrameResult, error) {
	zMM3, err := sec.Modulus()
	if err != nil {
		return nil, err
	}
	zCM3 := zMM3 / 1000.0
	sigma := maxMoment / zCM3
	sfB, sfY, okB, okY := safetyFactors(tensile, yield, sigma)
	return &FrameResult{
		Shear:          shear,
		Moments:        moments,
		MaxMoment:      maxMoment,
		SectionModulus: zCM3,
		BendingStress:  sigma,
		BreakSafety:    sfB,
		YieldSafety:    sfY,
		BreakOK:        okB,
		YieldOK:        okY,
		SectionKind:    sec.Kind(),
	}, nil
}

func maxAbs(values []float64) float64 {
	var m float64
	for _, v := range values {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
