package calc

import "testing"

var testRail = RectHollow{OuterWidth: 60, OuterHeight: 100, InnerWidth: 52, InnerHeight: 92}

func TestFrameStrength(t *testing.T) {
	res, err := FrameStrength(FrameInput{
		Loads:   []float64{100, 100, 100, 100, 100, 100},
		Spans:   []float64{500, 500, 500, 500, 500},
		Section: testRail,
		Tensile: 4100,
		Yield:   2400,
	})
	if err != nil {
		t.Fatalf("FrameStrength failed: %v", err)
	}

	wantShear := []float64{100, 200, 300, 400, 500, 600}
	for i, v := range wantShear {
		near(t, "shear", res.Shear[i], v, 0.001)
	}
	wantMoments := []float64{5000, 10000, 15000, 20000, 25000}
	for i, v := range wantMoments {
		near(t, "moment", res.Moments[i], v, 0.001)
	}
	near(t, "max moment", res.MaxMoment, 25000, 0.001)
	near(t, "section modulus", res.SectionModulus, 32.5137, 0.001)
	near(t, "bending stress", res.BendingStress, 768.9, 0.1)

	if !res.BreakOK {
		t.Error("expected break check to pass")
	}
	if res.YieldOK {
		t.Error("expected yield check to fail at this load")
	}
	if res.OK() {
		t.Error("expected overall failure")
	}
	if res.SectionKind != "rect_hollow" {
		t.Errorf("section kind = %q", res.SectionKind)
	}
}

func TestFrameStrength_LighterLoadPasses(t *testing.T) {
	res, err := FrameStrength(FrameInput{
		Loads:   []float64{50, 50, 50, 50, 50, 50},
		Spans:   []float64{500, 500, 500, 500, 500},
		Section: testRail,
		Tensile: 4100,
		Yield:   2400,
	})
	if err != nil {
		t.Fatalf("FrameStrength failed: %v", err)
	}
	if !res.OK() {
		t.Errorf("expected pass, got break=%v yield=%v", res.BreakOK, res.YieldOK)
	}
}

func TestFrameStrength_Invalid(t *testing.T) {
	valid := FrameInput{
		Loads:   []float64{100, 100, 100, 100, 100, 100},
		Spans:   []float64{500, 500, 500, 500, 500},
		Section: testRail,
		Tensile: 4100,
		Yield:   2400,
	}

	tests := []struct {
		name   string
		mutate func(*FrameInput)
	}{
		{"short load table", func(in *FrameInput) { in.Loads = in.Loads[:5] }},
		{"short span table", func(in *FrameInput) { in.Spans = in.Spans[:4] }},
		{"zero load", func(in *FrameInput) { in.Loads = []float64{100, 0, 100, 100, 100, 100} }},
		{"negative span", func(in *FrameInput) { in.Spans = []float64{500, -500, 500, 500, 500} }},
		{"nil section", func(in *FrameInput) { in.Section = nil }},
		{"zero tensile", func(in *FrameInput) { in.Tensile = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if _, err := FrameStrength(in); err == nil {
				t.Error("expected error")
			}
		})
	}
}
