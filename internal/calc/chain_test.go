package calc

import "testing"

func TestChainStrength(t *testing.T) {
	res, err := ChainStrength(ChainInput{
		LinkLength:   40,
		LinkWidth:    24,
		WireDiameter: 8,
		GrossWeight:  800,
		Tensile:      45,
	})
	if err != nil {
		t.Fatalf("ChainStrength failed: %v", err)
	}

	near(t, "wire area", res.WireArea, 50.265, 0.001)
	near(t, "full stress", res.FullStress, 15.916, 0.001)
	near(t, "half stress", res.HalfStress, 7.958, 0.001)
	near(t, "safety", res.Safety, 5.655, 0.001)
	near(t, "doubled safety", res.DoubledSafety, 2.827, 0.001)
	if !res.OK {
		t.Error("expected chain to pass")
	}
}

func TestChainStrength_TooWeak(t *testing.T) {
	res, err := ChainStrength(ChainInput{
		WireDiameter: 4,
		GrossWeight:  800,
		Tensile:      10,
	})
	if err != nil {
		t.Fatalf("ChainStrength failed: %v", err)
	}
	if res.DoubledSafety >= 1.0 {
		t.Errorf("doubled safety = %g, expected below 1", res.DoubledSafety)
	}
	if res.OK {
		t.Error("expected chain to fail")
	}
}

func TestChainStrength_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   ChainInput
	}{
		{"zero diameter", ChainInput{GrossWeight: 800, Tensile: 45}},
		{"zero weight", ChainInput{WireDiameter: 8, Tensile: 45}},
		{"zero tensile", ChainInput{WireDiameter: 8, GrossWeight: 800}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ChainStrength(tt.in); err == nil {
				t.Error("expected error")
			}
		})
	}
}
