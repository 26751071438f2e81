package project

import (
	"fmt"

	"tcr/internal/calc"
	"tcr/internal/materials"
)

// SectionSpec names a frame cross section in a project file. Exactly one
// of the geometry blocks must be present.
type SectionSpec struct {
	RectHollow *calc.RectHollow `yaml:"rectHollow,omitempty" json:"rectHollow,omitempty"`
	HBeam      *calc.HBeam      `yaml:"hbeam,omitempty" json:"hbeam,omitempty"`
}

// Resolve returns the concrete section.
func (s SectionSpec) Resolve() (calc.Section, error) {
	switch {
	case s.RectHollow != nil && s.HBeam != nil:
		return nil, fmt.Errorf("section specifies both rectHollow and hbeam")
	case s.RectHollow != nil:
		return *s.RectHollow, nil
	case s.HBeam != nil:
		return *s.HBeam, nil
	default:
		return nil, fmt.Errorf("section needs rectHollow or hbeam geometry")
	}
}

// applyGrade fills zero kg/cm² strengths from a named material grade.
func applyGrade(name string, tensile, yield *float64) error {
	if name == "" {
		return nil
	}
	m, err := materials.Lookup(name)
	if err != nil {
		return err
	}
	if *tensile == 0 {
		*tensile = m.TensileKgCM2
	}
	if *yield == 0 {
		*yield = m.YieldKgCM2
	}
	return nil
}

// applyGradeMPa fills zero N/mm² strengths from a named material grade.
func applyGradeMPa(name string, tensile, yield, shear *float64) error {
	if name == "" {
		return nil
	}
	m, err := materials.Lookup(name)
	if err != nil {
		return err
	}
	if *tensile == 0 {
		*tensile = m.TensileMPa
	}
	if *yield == 0 {
		*yield = m.YieldMPa
	}
	if shear != nil && *shear == 0 {
		*shear = m.ShearMPa
	}
	return nil
}

// AxleSection is the axle strength sheet inputs. Material fills tensile
// and yield when they are zero; explicit numbers win.
type AxleSection struct {
	calc.AxleInput `yaml:",inline" json:",inline"`
	Material       string `yaml:"material,omitempty" json:"material,omitempty"`
}

// Input resolves the material grade into calculator inputs.
func (s *AxleSection) Input() (calc.AxleInput, error) {
	in := s.AxleInput
	if err := applyGrade(s.Material, &in.Tensile, &in.Yield); err != nil {
		return in, err
	}
	return in, nil
}

// HitchSection is the hitch member sheet inputs.
type HitchSection struct {
	calc.HitchInput `yaml:",inline" json:",inline"`
	Material        string `yaml:"material,omitempty" json:"material,omitempty"`
}

func (s *HitchSection) Input() (calc.HitchInput, error) {
	in := s.HitchInput
	if err := applyGrade(s.Material, &in.Tensile, &in.Yield); err != nil {
		return in, err
	}
	return in, nil
}

// CouplerSection is the coupling joint frame sheet inputs.
type CouplerSection struct {
	calc.CouplerInput `yaml:",inline" json:",inline"`
	Material          string `yaml:"material,omitempty" json:"material,omitempty"`
}

func (s *CouplerSection) Input() (calc.CouplerInput, error) {
	in := s.CouplerInput
	if err := applyGrade(s.Material, &in.Tensile, &in.Yield); err != nil {
		return in, err
	}
	return in, nil
}

// FrameSection is the 6-point frame strength sheet inputs.
type FrameSection struct {
	Loads    []float64   `yaml:"loads" json:"loads"`
	Spans    []float64   `yaml:"spans" json:"spans"`
	Section  SectionSpec `yaml:"section" json:"section"`
	Material string      `yaml:"material,omitempty" json:"material,omitempty"`
	Tensile  float64     `yaml:"tensile,omitempty" json:"tensile,omitempty"`
	Yield    float64     `yaml:"yield,omitempty" json:"yield,omitempty"`
}

func (s *FrameSection) Input() (calc.FrameInput, error) {
	sec, err := s.Section.Resolve()
	if err != nil {
		return calc.FrameInput{}, err
	}
	in := calc.FrameInput{
		Loads:   s.Loads,
		Spans:   s.Spans,
		Section: sec,
		Tensile: s.Tensile,
		Yield:   s.Yield,
	}
	if err := applyGrade(s.Material, &in.Tensile, &in.Yield); err != nil {
		return in, err
	}
	return in, nil
}

// ContainerSection is the container 4-point frame sheet inputs.
type ContainerSection struct {
	ContainerWeight float64               `yaml:"containerWeight" json:"containerWeight"`
	SpanLength      float64               `yaml:"spanLength" json:"spanLength"`
	FrontOffset     float64               `yaml:"frontOffset" json:"frontOffset"`
	RearOffset      float64               `yaml:"rearOffset" json:"rearOffset"`
	Support         calc.ContainerSupport `yaml:"support" json:"support"`
	FrontSupport    float64               `yaml:"frontSupport,omitempty" json:"frontSupport,omitempty"`
	RearSupport     float64               `yaml:"rearSupport,omitempty" json:"rearSupport,omitempty"`
	Section         SectionSpec           `yaml:"section" json:"section"`
	Material        string                `yaml:"material,omitempty" json:"material,omitempty"`
	Tensile         float64               `yaml:"tensile,omitempty" json:"tensile,omitempty"`
	Yield           float64               `yaml:"yield,omitempty" json:"yield,omitempty"`
}

func (s *ContainerSection) Input() (calc.ContainerFrameInput, error) {
	sec, err := s.Section.Resolve()
	if err != nil {
		return calc.ContainerFrameInput{}, err
	}
	in := calc.ContainerFrameInput{
		ContainerWeight: s.ContainerWeight,
		SpanLength:      s.SpanLength,
		FrontOffset:     s.FrontOffset,
		RearOffset:      s.RearOffset,
		Support:         s.Support,
		FrontSupport:    s.FrontSupport,
		RearSupport:     s.RearSupport,
		Section:         sec,
		Tensile:         s.Tensile,
		Yield:           s.Yield,
	}
	if err := applyGrade(s.Material, &in.Tensile, &in.Yield); err != nil {
		return in, err
	}
	return in, nil
}

// BeamSection is the chassis beam sheet inputs.
type BeamSection struct {
	Length      float64          `yaml:"length" json:"length"`
	PointLoads  []calc.PointLoad `yaml:"pointLoads,omitempty" json:"pointLoads,omitempty"`
	Distributed float64          `yaml:"distributed,omitempty" json:"distributed,omitempty"`
	Section     SectionSpec      `yaml:"section" json:"section"`
	Material    string           `yaml:"material,omitempty" json:"material,omitempty"`
	Tensile     float64          `yaml:"tensile,omitempty" json:"tensile,omitempty"`
	Yield       float64          `yaml:"yield,omitempty" json:"yield,omitempty"`
}

func (s *BeamSection) Input() (calc.BeamInput, error) {
	sec, err := s.Section.Resolve()
	if err != nil {
		return calc.BeamInput{}, err
	}
	in := calc.BeamInput{
		Length:      s.Length,
		PointLoads:  s.PointLoads,
		Distributed: s.Distributed,
		Section:     sec,
		Tensile:     s.Tensile,
		Yield:       s.Yield,
	}
	if err := applyGrade(s.Material, &in.Tensile, &in.Yield); err != nil {
		return in, err
	}
	return in, nil
}

// StabilitySection is the stable inclination angle sheet inputs.
type StabilitySection struct {
	calc.StabilityInput `yaml:",inline" json:",inline"`
}

func (s *StabilitySection) Input() calc.StabilityInput { return s.StabilityInput }

// TurningSection is the minimum turning radius sheet inputs.
type TurningSection struct {
	calc.TurningInput `yaml:",inline" json:",inline"`
}

func (s *TurningSection) Input() calc.TurningInput { return s.TurningInput }

// CouplingSection is the coupling specification review inputs.
type CouplingSection struct {
	calc.CouplingInput `yaml:",inline" json:",inline"`
}

func (s *CouplingSection) Input() calc.CouplingInput { return s.CouplingInput }

// BrakeSection is the brake drum sheet inputs; the material grade fills
// N/mm² strengths.
type BrakeSection struct {
	calc.BrakeDrumInput `yaml:",inline" json:",inline"`
	Material            string `yaml:"material,omitempty" json:"material,omitempty"`
}

func (s *BrakeSection) Input() (calc.BrakeDrumInput, error) {
	in := s.BrakeDrumInput
	if err := applyGradeMPa(s.Material, &in.Tensile, &in.Yield, &in.Shear); err != nil {
		return in, err
	}
	return in, nil
}

// ChainSection is the safety chain sheet inputs. A material grade fills
// the tensile strength in kg/mm² from its N/mm² value.
type ChainSection struct {
	calc.ChainInput `yaml:",inline" json:",inline"`
	Material        string `yaml:"material,omitempty" json:"material,omitempty"`
}

func (s *ChainSection) Input() (calc.ChainInput, error) {
	in := s.ChainInput
	if s.Material != "" && in.Tensile == 0 {
		m, err := materials.Lookup(s.Material)
		if err != nil {
			return in, err
		}
		in.Tensile = m.TensileMPa / 9.8
	}
	return in, nil
}

// LeafSpringSection is the leaf-spring distribution sheet inputs.
type LeafSpringSection struct {
	calc.LeafSpringInput `yaml:",inline" json:",inline"`
}

func (s *LeafSpringSection) Input() calc.LeafSpringInput { return s.LeafSpringInput }

// WeightSection is the weight distribution sheet inputs.
type WeightSection struct {
	calc.WeightInput `yaml:",inline" json:",inline"`
}

func (s *WeightSection) Input() calc.WeightInput { return s.WeightInput }

// WeightSheetSection is the semi-trailer weight sheet inputs. Components
// may be given structured or as TSV/CSV text rows.
type WeightSheetSection struct {
	calc.WeightSheetInput `yaml:",inline" json:",inline"`
	ComponentsText        string `yaml:"componentsText,omitempty" json:"componentsText,omitempty"`
}

func (s *WeightSheetSection) Input() calc.WeightSheetInput {
	in := s.WeightSheetInput
	if len(in.Components) == 0 && s.ComponentsText != "" {
		in.Components = calc.ParseComponents(s.ComponentsText)
	}
	return in
}

// TireSheetSection is the tire load rate & contact pressure sheet.
type TireSheetSection struct {
	Entries       []calc.TireLoadInput `yaml:"entries" json:"entries"`
	LoadRateLimit float64              `yaml:"loadRateLimit,omitempty" json:"loadRateLimit,omitempty"`
	PressureLimit float64              `yaml:"pressureLimit,omitempty" json:"pressureLimit,omitempty"`
}
