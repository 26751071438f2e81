package report

import (
	"fmt"
	"strconv"

	"tcr/internal/calc"
	"tcr/internal/project"
)

// StabilitySheet builds the lateral stability sheet.
func StabilitySheet(v project.Vehicle, in calc.StabilityInput, res calc.StabilityResult) *Sheet {
	vehicleRows := func(prefix string, sv calc.StabilityVehicle) []Row {
		return []Row{
			{Label: prefix + " weight", Value: num(sv.Weight), Unit: "kg"},
			{Label: prefix + " front/rear axle", Value: num(sv.FrontWeight) + " / " + num(sv.RearWeight), Unit: "kg"},
			{Label: prefix + " front/rear tread", Value: num(sv.FrontTread) + " / " + num(sv.RearTread), Unit: "m"},
			{Label: prefix + " CG height", Value: num(sv.CGHeight), Unit: "m"},
		}
	}
	spec := append(vehicleRows("Tow", in.Tow), vehicleRows("Trailer", in.Trailer)...)

	return &Sheet{
		Kind:     "stability",
		Title:    "Lateral Stability Calculation",
		Identity: identityRows(v),
		Spec:     spec,
		Judgments: []Judgment{{
			Label:  "Stable inclination angle",
			OK:     true,
			Detail: "θ1 = " + num(res.Angle) + "°",
		}},
		Formulas: []string{
			fmt.Sprintf("B1 = %s m, B2 = %s m", num(res.TowHalfTrack), num(res.TrailerHalfTrack)),
			fmt.Sprintf("B = ΣWiBi/ΣWi = %s m", num(res.CombinedHalfTrack)),
			fmt.Sprintf("H = ΣWiHi/ΣWi = %s m", num(res.CombinedCGHeight)),
			fmt.Sprintf("θ1 = atan(B/H) = %s°", num(res.Angle)),
		},
	}
}

// TurningSheet builds the minimum turning radius sheet. The radius is
// informational, so its judgment line always passes.
func TurningSheet(v project.Vehicle, in calc.TurningInput, res *calc.TurningResult) *Sheet {
	return &Sheet{
		Kind:     "turning",
		Title:    "Minimum Turning Radius Calculation",
		Identity: identityRows(v),
		Spec: []Row{
			{Label: "Tractor wheelbase L1", Value: num(in.TractorWheelbase), Unit: "m"},
			{Label: "Trailer wheelbase L2", Value: num(in.TrailerWheelbase), Unit: "m"},
			{Label: "Front half tread I1", Value: num(in.FrontHalfTread), Unit: "m"},
			{Label: "Rear half tread I2", Value: num(in.RearHalfTread), Unit: "m"},
			{Label: "Coupler offset S", Value: num(in.CouplerOffset), Unit: "m"},
		},
		Judgments: []Judgment{{
			Label:  "Minimum turning radius",
			OK:     true,
			Detail: "R = " + num(res.Radius) + " m",
		}},
		Formulas: []string{
			fmt.Sprintf("Lc = √(L2²+I2²−S²) = %s m", num(res.ChainedWheelbase)),
			fmt.Sprintf("R = √(L1²+(Lc+I1)²) = %s m", num(res.Radius)),
		},
	}
}

// CouplingSheet builds the coupling specification review sheet with its
// four checks.
func CouplingSheet(v project.Vehicle, in calc.CouplingInput, res *calc.CouplingResult) *Sheet {
	return &Sheet{
		Kind:     "coupling",
		Title:    "Coupling Specification Review",
		Identity: identityRows(v),
		Spec: []Row{
			{Label: "Tow vehicle weight W", Value: num(in.TowWeight), Unit: "kg"},
			{Label: "Trailer weight W'", Value: num(in.TrailerWeight), Unit: "kg"},
			{Label: "Gross combination GCW", Value: num(res.GrossCombination), Unit: "kg"},
			{Label: "Service brake force Fm", Value: num(in.ServiceBrakeForce), Unit: "kg"},
			{Label: "Trailer brake force Fm'", Value: num(in.InertiaBrakeForce), Unit: "kg"},
			{Label: "Parking brake force Fs", Value: num(in.ParkingBrakeForce), Unit: "kg"},
			{Label: "Trailer parking force Fs'", Value: num(in.TrailerParkingForce), Unit: "kg"},
			{Label: "Max power", Value: num(in.MaxPower), Unit: "PS"},
			{Label: "Drive axle load WD", Value: num(in.DriveAxleLoad), Unit: "kg"},
		},
		Judgments: []Judgment{
			{
				Label:  "Stopping distance at 50 km/h",
				OK:     res.StopOK,
				Detail: fmt.Sprintf("%s m ≤ %s m", num(res.StopDistance), num(res.StopLimit)),
			},
			{
				Label:  "Parking brake holds combination",
				OK:     res.ParkingOK,
				Detail: fmt.Sprintf("Fs %s ≥ 0.2·GCW %s", num(in.ParkingBrakeForce), num(res.ParkingRequired)),
			},
			{
				Label:  "Trailer parking brake holds trailer",
				OK:     res.TrailerParkingOK,
				Detail: fmt.Sprintf("Fs' %s ≥ 0.2·W' %s", num(in.TrailerParkingForce), num(res.TrailerParkingRequired)),
			},
			{
				Label:  "Running performance envelopes",
				OK:     res.RunningOK,
				Detail: fmt.Sprintf("GCW %s ≤ min(%s, %s)", num(res.GrossCombination), num(res.PowerEnvelope), num(res.DriveAxleEnvelope)),
			},
		},
		Formulas: []string{
			fmt.Sprintf("S = 1.05·GCW·v/(Fm+Fm') = %s m", num(res.StopDistance)),
			fmt.Sprintf("121·PS − 1900 = %s kg", num(res.PowerEnvelope)),
			fmt.Sprintf("4·WD = %s kg", num(res.DriveAxleEnvelope)),
		},
	}
}

// LeafSpringSheet builds the leaf spring load distribution sheet.
func LeafSpringSheet(v project.Vehicle, in calc.LeafSpringInput, res *calc.LeafSpringResult) *Sheet {
	spec := []Row{
		{Label: "Front axle centre", Value: num(res.FrontAxleCentre), Unit: "mm"},
		{Label: "Rear axle centre", Value: num(res.RearAxleCentre), Unit: "mm"},
		{Label: "Payload centre", Value: num(res.PayloadCentre), Unit: "mm"},
	}
	for i, l := range res.Loads {
		spec = append(spec, Row{
			Label: fmt.Sprintf("Load %d (%s) at %s mm", i+1, l.Name, num(l.Position)),
			Value: num(l.Load),
			Unit:  "kg",
		})
	}
	spec = append(spec,
		Row{Label: "Front spring reaction", Value: num(res.FrontReaction), Unit: "kg"},
		Row{Label: "Rear spring reaction", Value: num(res.RearReaction), Unit: "kg"},
	)

	return &Sheet{
		Kind:     "leafspring",
		Title:    "Leaf Spring Load Distribution",
		Identity: identityRows(v),
		Spec:     spec,
		Judgments: []Judgment{{
			Label:  "Reactions balance the applied loads",
			OK:     true,
			Detail: "ΣW = " + num(res.Total) + " kg",
		}},
		Formulas: []string{
			"Rr = ΣWi(xi−xf)/(xr−xf), Rf = ΣWi − Rr",
			fmt.Sprintf("Rf = %s kg, Rr = %s kg", num(res.FrontReaction), num(res.RearReaction)),
		},
	}
}

// WeightMetricsSheet builds the axle weight and tire strength sheet.
func WeightMetricsSheet(v project.Vehicle, in calc.WeightInput, res *calc.WeightResult) *Sheet {
	return &Sheet{
		Kind:     "weight",
		Title:    "Axle Weight and Tire Strength",
		Identity: identityRows(v),
		Spec: []Row{
			{Label: "Curb weight", Value: num(in.CurbWeight), Unit: "kg"},
			{Label: "Max payload", Value: num(in.MaxPayload), Unit: "kg"},
			{Label: "Total weight", Value: num(res.TotalWeight), Unit: "kg"},
			{Label: "Front axle load", Value: num(in.FrontAxleLoad), Unit: "kg"},
			{Label: "Rear axle load", Value: num(in.RearAxleLoad), Unit: "kg"},
			{Label: "Tires per axle", Value: strconv.Itoa(in.TireCount), Unit: ""},
			{Label: "Rated load per tire", Value: num(in.LoadPerTire), Unit: "kg"},
			{Label: "Front tire", Value: in.FrontTireSize, Unit: ""},
			{Label: "Rear tire", Value: in.RearTireSize, Unit: ""},
			{Label: "Contact width front/rear", Value: num(res.FrontContactWidthUsed) + " / " + num(res.RearContactWidthUsed), Unit: "cm"},
		},
		Judgments: []Judgment{
			{
				Label:  "Front tire strength ratio",
				OK:     res.FrontStrengthRatio <= 1.0,
				Detail: num(res.FrontStrengthRatio) + " ≤ 1",
			},
			{
				Label:  "Rear tire strength ratio",
				OK:     res.RearStrengthRatio <= 1.0,
				Detail: num(res.RearStrengthRatio) + " ≤ 1",
			},
		},
		Formulas: []string{
			fmt.Sprintf("ratio = Waxle/(n·rated), front %s, rear %s",
				num(res.FrontStrengthRatio), num(res.RearStrengthRatio)),
			fmt.Sprintf("pressure = Waxle/(n·width), front %s, rear %s kg/cm",
				num(res.FrontContactPressure), num(res.RearContactPressure)),
		},
	}
}

// WeightDistributionSheet builds the semi-trailer weight calculation
// sheet from the component table.
func WeightDistributionSheet(v project.Vehicle, in calc.WeightSheetInput, res *calc.WeightSheetResult) *Sheet {
	spec := []Row{
		{Label: "Wheelbase", Value: num(in.Wheelbase), Unit: "mm"},
		{Label: "Max payload", Value: num(in.MaxPayload), Unit: "kg"},
	}
	for _, c := range in.Components {
		label := c.Name
		if c.No != "" {
			label = c.No + " " + c.Name
		}
		spec = append(spec, Row{
			Label: fmt.Sprintf("%s (L %s, H %s)", label, num(c.Arm), num(c.Height)),
			Value: num(c.Weight),
			Unit:  "kg",
		})
	}
	spec = append(spec,
		Row{Label: "Tare weight ΣWi", Value: num(res.TareWeight), Unit: "kg"},
		Row{Label: "Empty front/rear axle", Value: num(res.EmptyFrontAxle) + " / " + num(res.EmptyRearAxle), Unit: "kg"},
		Row{Label: "CG arm / height", Value: num(res.CGArm) + " / " + num(res.CGHeight), Unit: "mm"},
		Row{Label: "Bed offset O.S.", Value: num(res.BedOffset), Unit: "mm"},
		Row{Label: "Loaded front/rear axle", Value: num(res.LoadedFrontAxle) + " / " + num(res.LoadedRearAxle), Unit: "kg"},
	)

	return &Sheet{
		Kind:     "weightsheet",
		Title:    "Weight Calculation Sheet",
		Identity: identityRows(v),
		Spec:     spec,
		Judgments: []Judgment{{
			Label:  "Gross weight",
			OK:     true,
			Detail: num(res.GrossWeight) + " kg",
		}},
		Formulas: []string{
			fmt.Sprintf("Wr = ΣWiLi/Lw = %s kg, Wf = ΣWi − Wr = %s kg",
				num(res.EmptyRearAxle), num(res.EmptyFrontAxle)),
			fmt.Sprintf("O.S. = a/2 + b − c − d = %s mm", num(res.BedOffset)),
			fmt.Sprintf("loaded Wr = Wr + P(Lw−O.S.)/Lw = %s kg", num(res.LoadedRearAxle)),
		},
	}
}

// TireLoadSheet builds the tire load rate sheet from per-axle entries.
func TireLoadSheet(v project.Vehicle, entries []calc.TireLoadInput, results []*calc.TireLoadResult, loadRateLimit, pressureLimit float64) *Sheet {
	if loadRateLimit <= 0 {
		loadRateLimit = calc.DefaultLoadRateLimit
	}
	if pressureLimit <= 0 {
		pressureLimit = calc.DefaultContactPressureLimit
	}

	s := &Sheet{
		Kind:     "tiresheet",
		Title:    "Tire Load Calculation Sheet",
		Identity: identityRows(v),
		Spec: []Row{
			{Label: "Load rate limit", Value: num(loadRateLimit), Unit: "%"},
			{Label: "Contact pressure limit", Value: num(pressureLimit), Unit: "kg/cm"},
		},
	}
	for i, in := range entries {
		if i >= len(results) {
			break
		}
		r := results[i]
		s.Spec = append(s.Spec,
			Row{Label: in.Label + " tire", Value: in.TireSize, Unit: ""},
			Row{Label: in.Label + " axle load", Value: num(in.AxleLoad), Unit: "kg"},
		)
		s.Judgments = append(s.Judgments,
			Judgment{
				Label:  in.Label + " load rate",
				OK:     r.LoadRateOK,
				Detail: fmt.Sprintf("%s %% ≤ %s %%", num(r.LoadRate), num(loadRateLimit)),
			},
			Judgment{
				Label:  in.Label + " contact pressure",
				OK:     r.PressureOK,
				Detail: fmt.Sprintf("%s ≤ %s kg/cm", num(r.ContactPressure), num(pressureLimit)),
			},
		)
	}
	s.Formulas = []string{
		"rate = Wr/(n·recommended)·100",
		"pressure = Wr/(n·width)",
	}
	return s
}
