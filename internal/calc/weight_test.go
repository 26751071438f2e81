package calc

import (
	"strings"
	"testing"
)

func TestTireSectionWidth(t *testing.T) {
	tests := []struct {
		size string
		want float64
	}{
		{"225/80R17", 22.5},
		{"195/70R15", 19.5},
		{" 195/70r15 ", 19.5},
		{"11R22.5", 27.94},
		{"145R12", 14.5},
		{"8.25R16", 20.955},
		{"7.50-16", 19.05},
		{"6.00-12", 15.24},
	}
	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			got, err := TireSectionWidth(tt.size)
			if err != nil {
				t.Fatalf("TireSectionWidth(%q) failed: %v", tt.size, err)
			}
			near(t, "width", got, tt.want, 0.001)
		})
	}
}

func TestTireSectionWidth_Invalid(t *testing.T) {
	for _, size := range []string{"", "   ", "wide", "225/80", "R22.5"} {
		if _, err := TireSectionWidth(size); err == nil {
			t.Errorf("TireSectionWidth(%q) expected error", size)
		}
	}
}

func TestWeightMetrics_ExplicitWidth(t *testing.T) {
	res, err := WeightMetrics(WeightInput{
		CurbWeight:    500,
		MaxPayload:    1000,
		FrontAxleLoad: 600,
		RearAxleLoad:  900,
		TireCount:     4,
		LoadPerTire:   800,
		ContactWidth:  20,
	})
	if err != nil {
		t.Fatalf("WeightMetrics failed: %v", err)
	}

	near(t, "total weight", res.TotalWeight, 1500, 0.001)
	near(t, "front strength ratio", res.FrontStrengthRatio, 0.375, 0.0001)
	near(t, "rear strength ratio", res.RearStrengthRatio, 0.5625, 0.0001)
	near(t, "front contact pressure", res.FrontContactPressure, 1500, 0.001)
	near(t, "rear contact pressure", res.RearContactPressure, 2250, 0.001)
	near(t, "front width used", res.FrontContactWidthUsed, 20, 0.001)
}

func TestWeightMetrics_DerivedWidths(t *testing.T) {
	res, err := WeightMetrics(WeightInput{
		CurbWeight:    500,
		MaxPayload:    1000,
		FrontAxleLoad: 600,
		RearAxleLoad:  900,
		TireCount:     4,
		LoadPerTire:   800,
		FrontTireSize: "225/80R17",
		RearTireSize:  "11R22.5",
	})
	if err != nil {
		t.Fatalf("WeightMetrics failed: %v", err)
	}
	near(t, "front width used", res.FrontContactWidthUsed, 22.5, 0.001)
	near(t, "rear width used", res.RearContactWidthUsed, 27.94, 0.001)
}

func TestWeightMetrics_Invalid(t *testing.T) {
	if _, err := WeightMetrics(WeightInput{LoadPerTire: 800}); err == nil {
		t.Error("expected error for zero tire count")
	}

	_, err := WeightMetrics(WeightInput{
		TireCount:     4,
		LoadPerTire:   800,
		FrontTireSize: "wide",
		RearTireSize:  "11R22.5",
	})
	if err == nil {
		t.Fatal("expected error for bad front tire size")
	}
	if !strings.Contains(err.Error(), "front tire") {
		t.Errorf("error %q should name the front tire", err)
	}
}
