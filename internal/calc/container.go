package calc

import "fmt"

// ContainerSupport selects where the chassis rails are supported in the
// four-point container model.
type ContainerSupport string

const (
	// SupportEnds supports each rail at its extremities.
	SupportEnds ContainerSupport = "ends"
	// SupportAxles supports each rail at the axle positions, with the
	// container corner loads between the supports.
	SupportAxles ContainerSupport = "axles"
	// SupportInside places the supports between the corner loads.
	SupportInside ContainerSupport = "inside"
)

// ContainerFrameInput models a container carried on two longitudinal
// rails, four corner castings, half the weight per rail and a quarter per
// casting.
type ContainerFrameInput struct {
	ContainerWeight float64          `json:"containerWeight" yaml:"containerWeight"` // kg
	SpanLength      float64          `json:"spanLength" yaml:"spanLength"`           // mm, rail length L
	FrontOffset     float64          `json:"frontOffset" yaml:"frontOffset"`         // mm, front casting from rail front
	RearOffset      float64          `json:"rearOffset" yaml:"rearOffset"`           // mm, rear casting from rail rear
	Support         ContainerSupport `json:"support" yaml:"support"`
	FrontSupport    float64          `json:"frontSupport" yaml:"frontSupport"` // mm, X1; ignored for SupportEnds
	RearSupport     float64          `json:"rearSupport" yaml:"rearSupport"`   // mm, X2; ignored for SupportEnds
	Section         Section          `json:"-" yaml:"-"`
	Tensile         float64          `json:"tensile" yaml:"tensile"` // kg/cm²
	Yield           float64          `json:"yield" yaml:"yield"`     // kg/cm²
}

// ContainerFrameResult extends the frame judgment with the rail load and
// reaction breakdown.
type ContainerFrameResult struct {
	FrameResult
	Support       ContainerSupport `json:"support"`
	CornerLoad    float64          `json:"cornerLoad"`    // kg, P1 = P2 per rail
	FrontReaction float64          `json:"frontReaction"` // kg, R1
	RearReaction  float64          `json:"rearReaction"`  // kg, R2
	Segments      []float64        `json:"segments"`      // mm, traversal segment lengths
}

// ContainerFrameStrength judges one rail of a four-point supported
// container chassis for the selected support placement.
func ContainerFrameStrength(in ContainerFrameInput) (*ContainerFrameResult, error) {
	if err := requirePositive(
		pv("containerWeight", in.ContainerWeight),
		pv("spanLength", in.SpanLength),
		pv("frontOffset", in.FrontOffset),
		pv("rearOffset", in.RearOffset),
		pv("tensile", in.Tensile),
		pv("yield", in.Yield),
	); err != nil {
		return nil, err
	}
	if in.Section == nil {
		return nil, fmt.Errorf("rail section is required")
	}

	// Per-rail corner loads.
	perRail := in.ContainerWeight / 2.0
	p := perRail / 2.0

	var (
		shear    []float64
		segments []float64
		r1, r2   float64
		allPeaks bool
		err      error
	)

	l := in.SpanLength
	xFront := in.FrontOffset
	xRear := l - in.RearOffset

	switch in.Support {
	case "", SupportEnds:
		in.Support = SupportEnds
		if in.FrontOffset+in.RearOffset >= l {
			return nil, fmt.Errorf("offsets %g+%g must leave room inside span %g", in.FrontOffset, in.RearOffset, l)
		}
		r2 = (p*(l-xFront) + p*in.RearOffset) / l
		r1 = 2*p - r2
		shear = []float64{r1, r1 - p, r1 - p - p}
		segments = []float64{xFront, xRear - xFront, in.RearOffset}

	case SupportAxles:
		if err = validateSupports(in.FrontSupport, in.RearSupport, l); err != nil {
			return nil, err
		}
		if xFront < in.FrontSupport || xRear > in.RearSupport {
			return nil, fmt.Errorf("corner loads at %g and %g fall outside supports %g..%g",
				xFront, xRear, in.FrontSupport, in.RearSupport)
		}
		xA, xB := in.FrontSupport, in.RearSupport
		r2 = (p*(xB-xFront) + p*(xB-xRear)) / (xB - xA)
		r1 = 2*p - r2
		shear = []float64{r1, r1 + p, r1 + p + p}
		segments = []float64{xFront - xA, xRear - xFront, xB - xRear}

	case SupportInside:
		if !(xFront < in.FrontSupport && in.FrontSupport < in.RearSupport && in.RearSupport < xRear) {
			return nil, fmt.Errorf("supports must satisfy %g < X1 < X2 < %g", xFront, xRear)
		}
		r2 = (p*(in.FrontSupport-xFront) + p*(xRear-in.FrontSupport)) / (in.RearSupport - in.FrontSupport)
		r1 = 2*p - r2
		shear = []float64{p, p + r1, p + r1 + r2}
		segments = []float64{in.FrontSupport - xFront, in.RearSupport - in.FrontSupport, xRear - in.RearSupport}
		allPeaks = true

	default:
		return nil, fmt.Errorf("unknown container support placement %q", in.Support)
	}

	moments := make([]float64, len(segments))
	var m float64
	for i := range segments {
		m += shear[i] * segments[i] / 10.0
		moments[i] = m
	}
	// The moment returns to zero at the last support; the peak sits at an
	// interior segment boundary except in the inside-support layout,
	// where the overhanging ends make every boundary a candidate.
	peak := maxAbs(moments[:2])
	if allPeaks {
		peak = maxAbs(moments)
	}

	base, err := judgeFrame(in.Section, in.Tensile, in.Yield, shear, moments, peak)
	if err != nil {
		return nil, err
	}
	return &ContainerFrameResult{
		FrameResult:   *base,
		Support:       in.Support,
		CornerLoad:    p,
		FrontReaction: r1,
		RearReaction:  r2,
		Segments:      segments,
	}, nil
}

func validateSupports(x1, x2, span float64) error {
	if err := requirePositive(pv("frontSupport", x1), pv("rearSupport", x2)); err != nil {
		return err
	}
	if x1 >= x2 {
		return fmt.Errorf("front support %g must be ahead of rear support %g", x1, x2)
	}
	if x2 >= span {
		return fmt.Errorf("rear support %g exceeds span %g", x2, span)
	}
	return nil
}
