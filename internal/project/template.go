package project

import "tcr/internal/calc"

// Template returns a starter project with every judgment section filled
// with plausible light-trailer values, for `tcr project init`.
func Template() *Project {
	return &Project{
		Vehicle: Vehicle{
			Name:      "sample trailer",
			Model:     "T-01",
			BodyShape: "flat bed",
		},
		TowVehicle: TowVehicle{
			Name:          "sample tractor",
			GrossWeight:   1500,
			CurbWeight:    1000,
			MaxPower:      60,
			Wheelbase:     2500,
			DriveAxleLoad: 800,
		},
		Dimensions: Dimensions{
			Length:    3300,
			Width:     1450,
			Height:    1200,
			Wheelbase: 2200,
		},
		Axle: &AxleSection{
			AxleInput: calc.AxleInput{
				GrossWeight:   650,
				WheelCount:    2,
				Diameter:      40,
				BearingOffset: 100,
			},
			Material: "S45C",
		},
		Hitch: &HitchSection{
			HitchInput: calc.HitchInput{
				VerticalLoad:    50,
				HorizontalForce: 125,
				Length:          400,
				Size:            60,
				WallThickness:   4,
				Shape:           calc.HitchSquare,
			},
			Material: "STKR400",
		},
		Frame: &FrameSection{
			Loads: []float64{50, 50, 80, 80, 50, 50},
			Spans: []float64{400, 500, 500, 500, 400},
			Section: SectionSpec{
				RectHollow: &calc.RectHollow{
					OuterWidth: 60, OuterHeight: 100,
					InnerWidth: 52, InnerHeight: 92,
				},
			},
			Material: "STKR400",
		},
		Stability: &StabilitySection{
			StabilityInput: calc.StabilityInput{
				Tow: calc.StabilityVehicle{
					Weight: 1500, FrontWeight: 750, RearWeight: 750,
					FrontTread: 1.5, RearTread: 1.5, CGHeight: 0.7,
				},
				Trailer: calc.StabilityVehicle{
					Weight: 650, FrontWeight: 325, RearWeight: 325,
					FrontTread: 1.3, RearTread: 1.3, CGHeight: 0.6,
				},
			},
		},
		Turning: &TurningSection{
			TurningInput: calc.TurningInput{
				TractorWheelbase: 2.5,
				TrailerWheelbase: 2.2,
				FrontHalfTread:   0.7,
				RearHalfTread:    0.65,
				CouplerOffset:    0.9,
			},
		},
		Coupling: &CouplingSection{
			CouplingInput: calc.CouplingInput{
				TowWeight:           1500,
				TrailerWeight:       650,
				ServiceBrakeForce:   2000,
				InertiaBrakeForce:   400,
				ParkingBrakeForce:   500,
				TrailerParkingForce: 150,
				DriveAxleLoad:       800,
				MaxPower:            60,
			},
		},
		Chain: &ChainSection{
			ChainInput: calc.ChainInput{
				LinkLength:   40,
				LinkWidth:    24,
				WireDiameter: 8,
				GrossWeight:  650,
				Tensile:      45,
			},
		},
		Weight: &WeightSection{
			WeightInput: calc.WeightInput{
				CurbWeight:    300,
				MaxPayload:    350,
				FrontAxleLoad: 50,
				RearAxleLoad:  600,
				TireCount:     4,
				LoadPerTire:   400,
				FrontTireSize: "145R12",
				RearTireSize:  "145R12",
			},
		},
	}
}
