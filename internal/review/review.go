// Package review runs every judgment sheet prepared in a project and
// assembles the sheets, the per-sheet outcomes and the overall verdict.
package review

import (
	"fmt"

	"tcr/internal/calc"
	"tcr/internal/project"
	"tcr/internal/report"
)

// Results is the outcome of a full project review.
type Results struct {
	Sheets   []*report.Sheet      `json:"-"`
	Statuses []report.SheetStatus `json:"statuses"`
	Overall  bool                 `json:"overall"`
}

// Status returns the outcome for a named sheet, if it was reviewed.
func (r *Results) Status(name string) (report.SheetStatus, bool) {
	for _, st := range r.Statuses {
		if st.Name == name {
			return st, true
		}
	}
	return report.SheetStatus{}, false
}

// RunSheet evaluates a single named sheet, ignoring every other
// section of the project.
func RunSheet(p *project.Project, kind string) (*report.Sheet, error) {
	pruned := prune(p, kind)
	if len(pruned.SheetNames()) == 0 {
		return nil, fmt.Errorf("project has no %s section", kind)
	}
	res, err := Run(pruned)
	if err != nil {
		return nil, err
	}
	return res.Sheets[0], nil
}

// prune copies the project keeping only the named judgment section.
func prune(p *project.Project, kind string) *project.Project {
	out := &project.Project{
		Vehicle:    p.Vehicle,
		TowVehicle: p.TowVehicle,
		Dimensions: p.Dimensions,
	}
	switch kind {
	case "axle":
		out.Axle = p.Axle
	case "hitch":
		out.Hitch = p.Hitch
	case "coupler":
		out.Coupler = p.Coupler
	case "frame":
		out.Frame = p.Frame
	case "container":
		out.Container = p.Container
	case "beam":
		out.Beam = p.Beam
	case "stability":
		out.Stability = p.Stability
	case "turning":
		out.Turning = p.Turning
	case "coupling":
		out.Coupling = p.Coupling
	case "brake":
		out.Brake = p.Brake
	case "chain":
		out.Chain = p.Chain
	case "leafspring":
		out.LeafSpring = p.LeafSpring
	case "weight":
		out.Weight = p.Weight
	case "weightsheet":
		out.WeightSheet = p.WeightSheet
	case "tiresheet":
		out.TireSheet = p.TireSheet
	}
	return out
}

// Run evaluates every section present in the project in sheet order.
// The first calculation error aborts the review; a failing judgment
// does not.
func Run(p *project.Project) (*Results, error) {
	res := &Results{Overall: true}

	add := func(s *report.Sheet) {
		res.Sheets = append(res.Sheets, s)
		st := report.SheetStatus{
			Name:  s.Kind,
			Title: s.Title,
			OK:    s.OK(),
		}
		if len(s.Judgments) > 0 {
			st.Detail = s.Judgments[0].Detail
		}
		if !st.OK {
			res.Overall = false
		}
		res.Statuses = append(res.Statuses, st)
	}

	if sec := p.Axle; sec != nil {
		in, err := sec.Input()
		if err != nil {
			return nil, fmt.Errorf("axle: %w", err)
		}
		out, err := calc.AxleStrength(in)
		if err != nil {
			return nil, fmt.Errorf("axle: %w", err)
		}
		add(report.AxleSheet(p.Vehicle, in, out))
	}

	if sec := p.Hitch; sec != nil {
		in, err := sec.Input()
		if err != nil {
			return nil, fmt.Errorf("hitch: %w", err)
		}
		out, err := calc.HitchStrength(in)
		if err != nil {
			return nil, fmt.Errorf("hitch: %w", err)
		}
		add(report.HitchSheet(p.Vehicle, in, out))
	}

	if sec := p.Coupler; sec != nil {
		in, err := sec.Input()
		if err != nil {
			return nil, fmt.Errorf("coupler: %w", err)
		}
		out, err := calc.CouplerStrength(in)
		if err != nil {
			return nil, fmt.Errorf("coupler: %w", err)
		}
		add(report.CouplerSheet(p.Vehicle, in, out))
	}

	if sec := p.Frame; sec != nil {
		in, err := sec.Input()
		if err != nil {
			return nil, fmt.Errorf("frame: %w", err)
		}
		out, err := calc.FrameStrength(in)
		if err != nil {
			return nil, fmt.Errorf("frame: %w", err)
		}
		add(report.FrameSheet(p.Vehicle, in, out))
	}

	if sec := p.Container; sec != nil {
		in, err := sec.Input()
		if err != nil {
			return nil, fmt.Errorf("container: %w", err)
		}
		out, err := calc.ContainerFrameStrength(in)
		if err != nil {
			return nil, fmt.Errorf("container: %w", err)
		}
		add(report.ContainerSheet(p.Vehicle, in, out))
	}

	if sec := p.Beam; sec != nil {
		in, err := sec.Input()
		if err != nil {
			return nil, fmt.Errorf("beam: %w", err)
		}
		out, err := calc.BeamStrength(in)
		if err != nil {
			return nil, fmt.Errorf("beam: %w", err)
		}
		add(report.BeamSheet(p.Vehicle, in, out))
	}

	if sec := p.Stability; sec != nil {
		in := sec.Input()
		add(report.StabilitySheet(p.Vehicle, in, calc.StabilityAngle(in)))
	}

	if sec := p.Turning; sec != nil {
		in := sec.Input()
		out, err := calc.TurningRadius(in)
		if err != nil {
			return nil, fmt.Errorf("turning: %w", err)
		}
		add(report.TurningSheet(p.Vehicle, in, out))
	}

	if sec := p.Coupling; sec != nil {
		in := sec.Input()
		out, err := calc.CouplingReview(in)
		if err != nil {
			return nil, fmt.Errorf("coupling: %w", err)
		}
		add(report.CouplingSheet(p.Vehicle, in, out))
	}

	if sec := p.Brake; sec != nil {
		in, err := sec.Input()
		if err != nil {
			return nil, fmt.Errorf("brake: %w", err)
		}
		out, err := calc.BrakeDrumStrength(in)
		if err != nil {
			return nil, fmt.Errorf("brake: %w", err)
		}
		add(report.BrakeSheet(p.Vehicle, in, out))
	}

	if sec := p.Chain; sec != nil {
		in, err := sec.Input()
		if err != nil {
			return nil, fmt.Errorf("chain: %w", err)
		}
		out, err := calc.ChainStrength(in)
		if err != nil {
			return nil, fmt.Errorf("chain: %w", err)
		}
		add(report.ChainSheet(p.Vehicle, in, out))
	}

	if sec := p.LeafSpring; sec != nil {
		in := sec.Input()
		out, err := calc.LeafSpringDistribution(in)
		if err != nil {
			return nil, fmt.Errorf("leafspring: %w", err)
		}
		add(report.LeafSpringSheet(p.Vehicle, in, out))
	}

	if sec := p.Weight; sec != nil {
		in := sec.Input()
		out, err := calc.WeightMetrics(in)
		if err != nil {
			return nil, fmt.Errorf("weight: %w", err)
		}
		add(report.WeightMetricsSheet(p.Vehicle, in, out))
	}

	if sec := p.WeightSheet; sec != nil {
		in := sec.Input()
		out, err := calc.WeightSheet(in)
		if err != nil {
			return nil, fmt.Errorf("weightsheet: %w", err)
		}
		add(report.WeightDistributionSheet(p.Vehicle, in, out))
	}

	if sec := p.TireSheet; sec != nil {
		results := make([]*calc.TireLoadResult, 0, len(sec.Entries))
		for _, e := range sec.Entries {
			out, err := calc.TireLoad(e, sec.LoadRateLimit, sec.PressureLimit)
			if err != nil {
				return nil, fmt.Errorf("tiresheet %s: %w", e.Label, err)
			}
			results = append(results, out)
		}
		add(report.TireLoadSheet(p.Vehicle, sec.Entries, results, sec.LoadRateLimit, sec.PressureLimit))
	}

	if len(res.Sheets) == 0 {
		return nil, fmt.Errorf("project has no judgment sections")
	}
	return res, nil
}
