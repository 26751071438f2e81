package calc

import "testing"

func TestContainerFrameStrength_Ends(t *testing.T) {
	res, err := ContainerFrameStrength(ContainerFrameInput{
		ContainerWeight: 2000,
		SpanLength:      6000,
		FrontOffset:     500,
		RearOffset:      500,
		Support:         SupportEnds,
		Section:         testRail,
		Tensile:         4100,
		Yield:           2400,
	})
	if err != nil {
		t.Fatalf("ContainerFrameStrength failed: %v", err)
	}

	near(t, "corner load", res.CornerLoad, 500, 0.001)
	near(t, "front reaction", res.FrontReaction, 500, 0.001)
	near(t, "rear reaction", res.RearReaction, 500, 0.001)

	wantShear := []float64{500, 0, -500}
	for i, v := range wantShear {
		near(t, "shear", res.Shear[i], v, 0.001)
	}
	wantMoments := []float64{25000, 25000, 0}
	for i, v := range wantMoments {
		near(t, "moment", res.Moments[i], v, 0.001)
	}
	near(t, "max moment", res.MaxMoment, 25000, 0.001)
	if res.Support != SupportEnds {
		t.Errorf("support = %q", res.Support)
	}
}

func TestContainerFrameStrength_EmptySupportDefaultsToEnds(t *testing.T) {
	res, err := ContainerFrameStrength(ContainerFrameInput{
		ContainerWeight: 2000,
		SpanLength:      6000,
		FrontOffset:     500,
		RearOffset:      500,
		Section:         testRail,
		Tensile:         4100,
		Yield:           2400,
	})
	if err != nil {
		t.Fatalf("ContainerFrameStrength failed: %v", err)
	}
	if res.Support != SupportEnds {
		t.Errorf("support = %q, want %q", res.Support, SupportEnds)
	}
}

func TestContainerFrameStrength_Axles(t *testing.T) {
	res, err := ContainerFrameStrength(ContainerFrameInput{
		ContainerWeight: 2000,
		SpanLength:      6000,
		FrontOffset:     1500,
		RearOffset:      1500,
		Support:         SupportAxles,
		FrontSupport:    1000,
		RearSupport:     5000,
		Section:         testRail,
		Tensile:         4100,
		Yield:           2400,
	})
	if err != nil {
		t.Fatalf("ContainerFrameStrength failed: %v", err)
	}

	near(t, "front reaction", res.FrontReaction, 500, 0.001)
	near(t, "rear reaction", res.RearReaction, 500, 0.001)
	wantShear := []float64{500, 1000, 1500}
	for i, v := range wantShear {
		near(t, "shear", res.Shear[i], v, 0.001)
	}
	wantSegments := []float64{500, 3000, 500}
	for i, v := range wantSegments {
		near(t, "segment", res.Segments[i], v, 0.001)
	}
	near(t, "max moment", res.MaxMoment, 325000, 0.001)
}

func TestContainerFrameStrength_Inside(t *testing.T) {
	res, err := ContainerFrameStrength(ContainerFrameInput{
		ContainerWeight: 2000,
		SpanLength:      6000,
		FrontOffset:     500,
		RearOffset:      500,
		Support:         SupportInside,
		FrontSupport:    2000,
		RearSupport:     4000,
		Section:         testRail,
		Tensile:         4100,
		Yield:           2400,
	})
	if err != nil {
		t.Fatalf("ContainerFrameStrength failed: %v", err)
	}

	near(t, "front reaction", res.FrontReaction, -625, 0.001)
	near(t, "rear reaction", res.RearReaction, 1625, 0.001)
	wantShear := []float64{500, -125, 1500}
	for i, v := range wantShear {
		near(t, "shear", res.Shear[i], v, 0.001)
	}
	wantMoments := []float64{75000, 50000, 275000}
	for i, v := range wantMoments {
		near(t, "moment", res.Moments[i], v, 0.001)
	}
	// The overhanging ends make the last boundary the peak here.
	near(t, "max moment", res.MaxMoment, 275000, 0.001)
}

func TestContainerFrameStrength_Invalid(t *testing.T) {
	valid := ContainerFrameInput{
		ContainerWeight: 2000,
		SpanLength:      6000,
		FrontOffset:     500,
		RearOffset:      500,
		Support:         SupportEnds,
		Section:         testRail,
		Tensile:         4100,
		Yield:           2400,
	}

	tests := []struct {
		name   string
		mutate func(*ContainerFrameInput)
	}{
		{"unknown support", func(in *ContainerFrameInput) { in.Support = "corners" }},
		{"offsets exceed span", func(in *ContainerFrameInput) { in.FrontOffset, in.RearOffset = 3000, 3000 }},
		{"nil section", func(in *ContainerFrameInput) { in.Section = nil }},
		{"zero weight", func(in *ContainerFrameInput) { in.ContainerWeight = 0 }},
		{"axles without supports", func(in *ContainerFrameInput) { in.Support = SupportAxles }},
		{"axles supports reversed", func(in *ContainerFrameInput) {
			in.Support = SupportAxles
			in.FrontSupport, in.RearSupport = 5000, 1000
		}},
		{"axles load outside supports", func(in *ContainerFrameInput) {
			in.Support = SupportAxles
			in.FrontSupport, in.RearSupport = 1000, 5000
		}},
		{"inside supports out of order", func(in *ContainerFrameInput) {
			in.Support = SupportInside
			in.FrontSupport, in.RearSupport = 4000, 2000
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if _, err := ContainerFrameStrength(in); err == nil {
				t.Error("expected error")
			}
		})
	}
}
