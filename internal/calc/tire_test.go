package calc

import "testing"

func TestTireLoad(t *testing.T) {
	res, err := TireLoad(TireLoadInput{
		Label:           "rear",
		TireCount:       4,
		AxleLoad:        4000,
		RecommendedLoad: 1200,
		ContactWidth:    20,
	}, 0, 0)
	if err != nil {
		t.Fatalf("TireLoad failed: %v", err)
	}

	near(t, "load rate", res.LoadRate, 83.333, 0.001)
	near(t, "contact pressure", res.ContactPressure, 50, 0.001)
	if !res.OK() {
		t.Errorf("expected pass, got rate=%v pressure=%v", res.LoadRateOK, res.PressureOK)
	}
	if res.Label != "rear" {
		t.Errorf("label = %q", res.Label)
	}
}

func TestTireLoad_OverLimit(t *testing.T) {
	res, err := TireLoad(TireLoadInput{
		TireCount:       4,
		AxleLoad:        12000,
		RecommendedLoad: 1200,
		ContactWidth:    20,
	}, 0, 0)
	if err != nil {
		t.Fatalf("TireLoad failed: %v", err)
	}
	near(t, "load rate", res.LoadRate, 250, 0.001)
	near(t, "contact pressure", res.ContactPressure, 150, 0.001)
	if res.LoadRateOK {
		t.Error("expected load rate over the 100 % limit")
	}
	if !res.PressureOK {
		t.Error("expected contact pressure within the 200 kg/cm limit")
	}
	if res.OK() {
		t.Error("expected overall failure")
	}
}

func TestTireLoad_CustomLimits(t *testing.T) {
	res, err := TireLoad(TireLoadInput{
		TireCount:       4,
		AxleLoad:        12000,
		RecommendedLoad: 1200,
		ContactWidth:    20,
	}, 300, 100)
	if err != nil {
		t.Fatalf("TireLoad failed: %v", err)
	}
	if !res.LoadRateOK {
		t.Error("expected load rate within the raised limit")
	}
	if res.PressureOK {
		t.Error("expected contact pressure over the lowered limit")
	}
}

func TestTireLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   TireLoadInput
	}{
		{"zero tires", TireLoadInput{AxleLoad: 4000, RecommendedLoad: 1200, ContactWidth: 20}},
		{"zero axle load", TireLoadInput{TireCount: 4, RecommendedLoad: 1200, ContactWidth: 20}},
		{"zero width", TireLoadInput{TireCount: 4, AxleLoad: 4000, RecommendedLoad: 1200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TireLoad(tt.in, 0, 0); err == nil {
				t.Error("expected error")
			}
		})
	}
}
