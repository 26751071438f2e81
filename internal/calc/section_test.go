package calc

import "testing"

func TestRectHollowModulus(t *testing.T) {
	s := RectHollow{OuterWidth: 60, OuterHeight: 100, InnerWidth: 52, InnerHeight: 92}
	z, err := s.Modulus()
	if err != nil {
		t.Fatalf("Modulus failed: %v", err)
	}
	near(t, "modulus", z, 32513.7, 0.1)
	if s.Kind() != "rect_hollow" {
		t.Errorf("kind = %q", s.Kind())
	}
}

func TestRectHollowModulus_Invalid(t *testing.T) {
	tests := []struct {
		name string
		s    RectHollow
	}{
		{"inner wider than outer", RectHollow{OuterWidth: 60, OuterHeight: 100, InnerWidth: 60, InnerHeight: 92}},
		{"inner taller than outer", RectHollow{OuterWidth: 60, OuterHeight: 100, InnerWidth: 52, InnerHeight: 100}},
		{"zero dimension", RectHollow{OuterWidth: 60, OuterHeight: 100, InnerWidth: 52}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.s.Modulus(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHBeamModulus(t *testing.T) {
	s := HBeam{FlangeWidth: 125, Height: 250, WebThickness: 6, FlangeThickness: 9}
	z, err := s.Modulus()
	if err != nil {
		t.Fatalf("Modulus failed: %v", err)
	}
	near(t, "modulus", z, 311434.7, 1)
	if s.Kind() != "hbeam" {
		t.Errorf("kind = %q", s.Kind())
	}
}

func TestHBeamModulus_Invalid(t *testing.T) {
	tests := []struct {
		name string
		s    HBeam
	}{
		{"flanges swallow height", HBeam{FlangeWidth: 125, Height: 18, WebThickness: 6, FlangeThickness: 9}},
		{"web wider than flange", HBeam{FlangeWidth: 6, Height: 250, WebThickness: 6, FlangeThickness: 9}},
		{"zero dimension", HBeam{FlangeWidth: 125, Height: 250, FlangeThickness: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.s.Modulus(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
