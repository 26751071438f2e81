package project

import (
	"fmt"

	"tcr/internal/calc"
)

// Issue is one validation finding, attributed to a project section.
type Issue struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

func (i Issue) String() string { return fmt.Sprintf("%s: %s", i.Section, i.Message) }

// Validate dry-runs every present judgment section and collects the
// failures. A bad section never hides the others.
func (p *Project) Validate() []Issue {
	var issues []Issue
	add := func(section string, err error) {
		if err != nil {
			issues = append(issues, Issue{Section: section, Message: err.Error()})
		}
	}

	if p.Vehicle.Name == "" {
		add("vehicle", fmt.Errorf("vehicle name is required"))
	}

	if s := p.Axle; s != nil {
		in, err := s.Input()
		if err == nil {
			_, err = calc.AxleStrength(in)
		}
		add("axle", err)
	}
	if s := p.Hitch; s != nil {
		in, err := s.Input()
		if err == nil {
			_, err = calc.HitchStrength(in)
		}
		add("hitch", err)
	}
	if s := p.Coupler; s != nil {
		in, err := s.Input()
		if err == nil {
			_, err = calc.CouplerStrength(in)
		}
		add("coupler", err)
	}
	if s := p.Frame; s != nil {
		in, err := s.Input()
		if err == nil {
			_, err = calc.FrameStrength(in)
		}
		add("frame", err)
	}
	if s := p.Container; s != nil {
		in, err := s.Input()
		if err == nil {
			_, err = calc.ContainerFrameStrength(in)
		}
		add("container", err)
	}
	if s := p.Beam; s != nil {
		in, err := s.Input()
		if err == nil {
			_, err = calc.BeamStrength(in)
		}
		add("beam", err)
	}
	if s := p.Turning; s != nil {
		_, err := calc.TurningRadius(s.Input())
		add("turning", err)
	}
	if s := p.Coupling; s != nil {
		_, err := calc.CouplingReview(s.Input())
		add("coupling", err)
	}
	if s := p.Brake; s != nil {
		in, err := s.Input()
		if err == nil {
			_, err = calc.BrakeDrumStrength(in)
		}
		add("brake", err)
	}
	if s := p.Chain; s != nil {
		in, err := s.Input()
		if err == nil {
			_, err = calc.ChainStrength(in)
		}
		add("chain", err)
	}
	if s := p.LeafSpring; s != nil {
		_, err := calc.LeafSpringDistribution(s.Input())
		add("leafspring", err)
	}
	if s := p.Weight; s != nil {
		_, err := calc.WeightMetrics(s.Input())
		add("weight", err)
	}
	if s := p.WeightSheet; s != nil {
		_, err := calc.WeightSheet(s.Input())
		add("weightsheet", err)
	}
	if s := p.TireSheet; s != nil {
		if len(s.Entries) == 0 {
			add("tiresheet", fmt.Errorf("no tire entries"))
		}
		for _, e := range s.Entries {
			if _, err := calc.TireLoad(e, s.LoadRateLimit, s.PressureLimit); err != nil {
				add("tiresheet", fmt.Errorf("entry %q: %w", e.Label, err))
			}
		}
	}
	// Stability has no error path; zero inputs yield a zero angle.

	return issues
}
