package report

import (
	"fmt"
	"strconv"
	"strings"

	"tcr/internal/calc"
	"tcr/internal/project"
)

// num formats a sheet value: two decimals, trailing zeros trimmed.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// sf formats a safety factor with the margin it is judged against.
func sf(value, min float64) string {
	return fmt.Sprintf("%s ≥ %s", num(value), num(min))
}

func identityRows(v project.Vehicle) []Row {
	rows := []Row{
		{Label: "Vehicle name", Value: v.Name},
		{Label: "Model", Value: v.Model},
	}
	if v.Registration != "" {
		rows = append(rows, Row{Label: "Registration number", Value: v.Registration})
	}
	if v.SerialNumber != "" {
		rows = append(rows, Row{Label: "Serial number", Value: v.SerialNumber})
	}
	if v.BodyShape != "" {
		rows = append(rows, Row{Label: "Body shape", Value: v.BodyShape})
	}
	return rows
}

func strengthJudgments(breakSF, yieldSF float64, breakOK, yieldOK bool) []Judgment {
	return []Judgment{
		{
			Label:  "Breaking strength",
			OK:     breakOK,
			Detail: "SF " + sf(breakSF, calc.MinBreakSafety),
		},
		{
			Label:  "Yield strength",
			OK:     yieldOK,
			Detail: "SF " + sf(yieldSF, calc.MinYieldSafety),
		},
	}
}

// AxleSheet builds the axle strength sheet.
func AxleSheet(v project.Vehicle, in calc.AxleInput, res *calc.AxleResult) *Sheet {
	return &Sheet{
		Kind:     "axle",
		Title:    "Axle Strength Calculation",
		Identity: identityRows(v),
		Spec: []Row{
			{Label: "Gross weight W", Value: num(in.GrossWeight), Unit: "kg"},
			{Label: "Number of wheels n", Value: strconv.Itoa(in.WheelCount), Unit: ""},
			{Label: "Axle diameter d", Value: num(in.Diameter), Unit: "mm"},
			{Label: "Bearing offset ΔS", Value: num(in.BearingOffset), Unit: "mm"},
			{Label: "Tensile strength θb", Value: num(in.Tensile), Unit: "kg/cm²"},
			{Label: "Yield point θy", Value: num(in.Yield), Unit: "kg/cm²"},
		},
		Judgments: strengthJudgments(res.BreakSafety, res.YieldSafety, res.BreakOK, res.YieldOK),
		Formulas: []string{
			fmt.Sprintf("P = W/n = %s/%d = %s kg", num(in.GrossWeight), in.WheelCount, num(res.WheelLoad)),
			fmt.Sprintf("Z = πd³/32 = %s cm³", num(res.SectionModulus)),
			fmt.Sprintf("M = P·ΔS = %s kg·cm", num(res.Moment)),
			fmt.Sprintf("σb = M/Z = %s kg/cm²", num(res.BendingStress)),
			fmt.Sprintf("SF(break) = θb/(%s·σb) = %s", num(calc.LoadFactor), num(res.BreakSafety)),
			fmt.Sprintf("SF(yield) = θy/(%s·σb) = %s", num(calc.LoadFactor), num(res.YieldSafety)),
		},
	}
}

// HitchSheet builds the hitch member strength sheet.
func HitchSheet(v project.Vehicle, in calc.HitchInput, res *calc.HitchResult) *Sheet {
	shape := "round bar"
	sizeLabel := "Diameter d"
	if in.Shape == calc.HitchSquare {
		shape = "square tube"
		sizeLabel = "Outer side a"
	}
	spec := []Row{
		{Label: "Vertical load P", Value: num(in.VerticalLoad), Unit: "kg"},
		{Label: "Horizontal force H", Value: num(in.HorizontalForce), Unit: "kg"},
		{Label: "Member length L", Value: num(in.Length), Unit: "mm"},
		{Label: "Cross section", Value: shape, Unit: ""},
		{Label: sizeLabel, Value: num(in.Size), Unit: "mm"},
	}
	if in.Shape == calc.HitchSquare {
		spec = append(spec, Row{Label: "Wall thickness t", Value: num(in.WallThickness), Unit: "mm"})
	}
	spec = append(spec,
		Row{Label: "Tensile strength θb", Value: num(in.Tensile), Unit: "kg/cm²"},
		Row{Label: "Yield point θy", Value: num(in.Yield), Unit: "kg/cm²"},
	)

	return &Sheet{
		Kind:      "hitch",
		Title:     "Hitch Member Strength Calculation",
		Identity:  identityRows(v),
		Spec:      spec,
		Judgments: strengthJudgments(res.BreakSafety, res.YieldSafety, res.BreakOK, res.YieldOK),
		Formulas: []string{
			fmt.Sprintf("Mv = P·L = %s kg·cm", num(res.VerticalMoment)),
			fmt.Sprintf("Mh = H·L = %s kg·cm", num(res.HorizontalMoment)),
			fmt.Sprintf("M = √(Mv²+Mh²) = %s kg·cm", num(res.CombinedMoment)),
			fmt.Sprintf("Z = %s cm³", num(res.SectionModulus)),
			fmt.Sprintf("σb = M/Z = %s kg/cm²", num(res.BendingStress)),
			fmt.Sprintf("SF(break) = %s, SF(yield) = %s at factor %s",
				num(res.BreakSafety), num(res.YieldSafety), num(res.Factor)),
		},
	}
}

// CouplerSheet builds the coupling joint frame sheet with its
// three-band judgment.
func CouplerSheet(v project.Vehicle, in calc.CouplerInput, res *calc.CouplerResult) *Sheet {
	label := map[calc.CouplerJudgment]string{
		calc.CouplerPass:     "Joint frame strength (full margin)",
		calc.CouplerMarginal: "Joint frame strength (below 1.5 margin)",
		calc.CouplerFail:     "Joint frame strength (exceeds yield)",
	}[res.Judgment]

	return &Sheet{
		Kind:     "coupler",
		Title:    "Coupling Joint Frame Strength Calculation",
		Identity: identityRows(v),
		Spec: []Row{
			{Label: "Maximum payload W", Value: num(in.Payload), Unit: "kg"},
			{Label: "Equipment weight W'", Value: num(in.Equipment), Unit: "kg"},
			{Label: "Payload arm L", Value: num(in.PayloadArm), Unit: "mm"},
			{Label: "Equipment arm L'", Value: num(in.EquipmentArm), Unit: "mm"},
			{Label: "Section B×H (outer)", Value: num(in.Section.OuterWidth) + " × " + num(in.Section.OuterHeight), Unit: "mm"},
			{Label: "Section b×h (inner)", Value: num(in.Section.InnerWidth) + " × " + num(in.Section.InnerHeight), Unit: "mm"},
			{Label: "Yield point θy", Value: num(in.Yield), Unit: "kg/cm²"},
		},
		Judgments: []Judgment{{
			Label:  label,
			OK:     res.Judgment != calc.CouplerFail,
			Detail: "yield SF " + num(res.YieldSafety),
		}},
		Formulas: []string{
			fmt.Sprintf("M = 9.8(W·L + W'·L') = %s N·mm", num(res.Moment)),
			fmt.Sprintf("Z = I/(H/2) = %s mm³", num(res.SectionModulus)),
			fmt.Sprintf("σ = M/Z = %s N/mm² = %s kg/cm²", num(res.Stress), num(res.StressKgCM2)),
			fmt.Sprintf("SF(yield) = θy/σ = %s", num(res.YieldSafety)),
			fmt.Sprintf("SF(tensile) = θb/σ = %s", num(res.TensileSafety)),
		},
	}
}

func frameTableRows(shear, moments []float64) []Row {
	var rows []Row
	for i, v := range shear {
		rows = append(rows, Row{Label: fmt.Sprintf("Shear V%d", i+1), Value: num(v), Unit: "kg"})
	}
	for i, m := range moments {
		rows = append(rows, Row{Label: fmt.Sprintf("Moment M%d", i+1), Value: num(m), Unit: "kg·cm"})
	}
	return rows
}

// FrameSheet builds the 6-point frame strength sheet.
func FrameSheet(v project.Vehicle, in calc.FrameInput, res *calc.FrameResult) *Sheet {
	spec := []Row{}
	for i, w := range in.Loads {
		spec = append(spec, Row{Label: fmt.Sprintf("Load W%d", i+1), Value: num(w), Unit: "kg"})
	}
	for i, d := range in.Spans {
		spec = append(spec, Row{Label: fmt.Sprintf("Span d%d", i+1), Value: num(d), Unit: "mm"})
	}
	spec = append(spec, frameTableRows(res.Shear, res.Moments)...)

	return &Sheet{
		Kind:      "frame",
		Title:     "Frame Strength Calculation",
		Subtitle:  "Six point load table",
		Identity:  identityRows(v),
		Spec:      spec,
		Judgments: strengthJudgments(res.BreakSafety, res.YieldSafety, res.BreakOK, res.YieldOK),
		Formulas: []string{
			fmt.Sprintf("Mmax = %s kg·cm", num(res.MaxMoment)),
			fmt.Sprintf("Z (%s) = %s cm³", res.SectionKind, num(res.SectionModulus)),
			fmt.Sprintf("σb = Mmax/Z = %s kg/cm²", num(res.BendingStress)),
			fmt.Sprintf("SF(break) = %s, SF(yield) = %s", num(res.BreakSafety), num(res.YieldSafety)),
		},
	}
}

// ContainerSheet builds the container chassis frame sheet.
func ContainerSheet(v project.Vehicle, in calc.ContainerFrameInput, res *calc.ContainerFrameResult) *Sheet {
	support := map[calc.ContainerSupport]string{
		calc.SupportEnds:   "rail end supports",
		calc.SupportAxles:  "axle supports",
		calc.SupportInside: "supports inside load points",
	}[res.Support]

	spec := []Row{
		{Label: "Container weight", Value: num(in.ContainerWeight), Unit: "kg"},
		{Label: "Rail length L", Value: num(in.SpanLength), Unit: "mm"},
		{Label: "Support placement", Value: support, Unit: ""},
		{Label: "Corner load P", Value: num(res.CornerLoad), Unit: "kg"},
		{Label: "Reaction R1", Value: num(res.FrontReaction), Unit: "kg"},
		{Label: "Reaction R2", Value: num(res.RearReaction), Unit: "kg"},
	}
	spec = append(spec, frameTableRows(res.Shear, res.Moments)...)

	return &Sheet{
		Kind:      "container",
		Title:     "Frame Strength Calculation",
		Subtitle:  "Container four point support",
		Identity:  identityRows(v),
		Spec:      spec,
		Judgments: strengthJudgments(res.BreakSafety, res.YieldSafety, res.BreakOK, res.YieldOK),
		Formulas: []string{
			fmt.Sprintf("P = W/4 per rail = %s kg", num(res.CornerLoad)),
			fmt.Sprintf("Mmax = %s kg·cm", num(res.MaxMoment)),
			fmt.Sprintf("σb = Mmax/Z = %s kg/cm²", num(res.BendingStress)),
			fmt.Sprintf("SF(break) = %s, SF(yield) = %s", num(res.BreakSafety), num(res.YieldSafety)),
		},
	}
}

// BeamSheet builds the chassis simple-beam sheet.
func BeamSheet(v project.Vehicle, in calc.BeamInput, res *calc.BeamResult) *Sheet {
	spec := []Row{
		{Label: "Span L", Value: num(in.Length), Unit: "mm"},
		{Label: "Distributed load w", Value: num(in.Distributed), Unit: "kg/m"},
	}
	for i, p := range in.PointLoads {
		spec = append(spec, Row{
			Label: fmt.Sprintf("Point load P%d at %s mm", i+1, num(p.Position)),
			Value: num(p.Load),
			Unit:  "kg",
		})
	}
	spec = append(spec,
		Row{Label: "Reaction RA", Value: num(res.LeftReaction), Unit: "kg"},
		Row{Label: "Reaction RB", Value: num(res.RightReaction), Unit: "kg"},
	)

	return &Sheet{
		Kind:      "beam",
		Title:     "Chassis Frame Strength Calculation",
		Subtitle:  "Simply supported beam",
		Identity:  identityRows(v),
		Spec:      spec,
		Judgments: strengthJudgments(res.BreakSafety, res.YieldSafety, res.BreakOK, res.YieldOK),
		Formulas: []string{
			fmt.Sprintf("RA = %s kg, RB = %s kg", num(res.LeftReaction), num(res.RightReaction)),
			fmt.Sprintf("Mmax = %s kg·cm", num(res.MaxMoment)),
			fmt.Sprintf("σb = Mmax/Z = %s kg/cm²", num(res.BendingStress)),
			fmt.Sprintf("SF(break) = %s, SF(yield) = %s", num(res.BreakSafety), num(res.YieldSafety)),
		},
	}
}

// BrakeSheet builds the brake drum strength sheet.
func BrakeSheet(v project.Vehicle, in calc.BrakeDrumInput, res *calc.BrakeDrumResult) *Sheet {
	return &Sheet{
		Kind:     "brake",
		Title:    "Brake Drum Strength Calculation",
		Identity: identityRows(v),
		Spec: []Row{
			{Label: "Inner diameter", Value: num(in.InnerDiameter), Unit: "mm"},
			{Label: "Outer diameter", Value: num(in.OuterDiameter), Unit: "mm"},
			{Label: "Drum width", Value: num(in.Width), Unit: "mm"},
			{Label: "Working pressure", Value: num(in.Pressure), Unit: "MPa"},
			{Label: "Tensile strength", Value: num(in.Tensile), Unit: "N/mm²"},
			{Label: "Yield point", Value: num(in.Yield), Unit: "N/mm²"},
			{Label: "Shear strength", Value: num(in.Shear), Unit: "N/mm²"},
		},
		Judgments: []Judgment{
			{Label: "Tensile", OK: res.TensileOK, Detail: "SF " + sf(res.TensileSafety, calc.MinBrakeSafety)},
			{Label: "Yield", OK: res.YieldOK, Detail: "SF " + sf(res.YieldSafety, calc.MinBrakeSafety)},
			{Label: "Shear", OK: res.ShearOK, Detail: "SF " + sf(res.ShearSafety, calc.MinBrakeSafety)},
		},
		Formulas: []string{
			fmt.Sprintf("k = ro/ri = %s", num(res.DiameterRatio)),
			fmt.Sprintf("σt(inner) = p(k²+1)/(k²-1) = %s N/mm²", num(res.HoopStressInner)),
			fmt.Sprintf("σt(outer) = 2pk²/(k²-1) = %s N/mm²", num(res.HoopStressOuter)),
			fmt.Sprintf("σeq = %s N/mm²", num(res.EquivalentStress)),
		},
	}
}

// ChainSheet builds the safety chain sheet.
func ChainSheet(v project.Vehicle, in calc.ChainInput, res *calc.ChainResult) *Sheet {
	return &Sheet{
		Kind:     "chain",
		Title:    "Safety Chain Strength Calculation",
		Identity: identityRows(v),
		Spec: []Row{
			{Label: "Link length L", Value: num(in.LinkLength), Unit: "mm"},
			{Label: "Link width b", Value: num(in.LinkWidth), Unit: "mm"},
			{Label: "Wire diameter d", Value: num(in.WireDiameter), Unit: "mm"},
			{Label: "Trailer gross weight W", Value: num(in.GrossWeight), Unit: "kg"},
			{Label: "Tensile strength θb", Value: num(in.Tensile), Unit: "kg/mm²"},
		},
		Judgments: []Judgment{{
			Label:  "Retains twice the gross weight",
			OK:     res.OK,
			Detail: "SF at 2W " + sf(res.DoubledSafety, 1.0),
		}},
		Formulas: []string{
			fmt.Sprintf("A = π(d/2)² = %s mm²", num(res.WireArea)),
			fmt.Sprintf("σ(W) = %s kg/mm², σ(W/2) = %s kg/mm²", num(res.FullStress), num(res.HalfStress)),
			fmt.Sprintf("SF = θb/σ(W/2) = %s", num(res.Safety)),
			fmt.Sprintf("SF at 2W = θb/σ(W) = %s", num(res.DoubledSafety)),
		},
	}
}
