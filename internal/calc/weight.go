package calc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tire size notations understood by TireSectionWidth.
var (
	metricTire   = regexp.MustCompile(`^(\d{3})/(\d{2,3})R\d{2}$`)
	inchRTire    = regexp.MustCompile(`^(\d+(?:\.\d+)?)R\d+(?:\.\d+)?$`)
	inchDashTire = regexp.MustCompile(`^(\d+(?:\.\d+)?)-\d+(?:\.\d+)?$`)
)

// TireSectionWidth derives an approximate contact width in cm from a
// tire size string. Metric sizes like 225/80R17 read the section width
// in mm; inch sizes like 11R22.5 or 7.50-16 convert inches to cm.
func TireSectionWidth(size string) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(size))
	if s == "" {
		return 0, fmt.Errorf("empty tire size")
	}
	if m := metricTire.FindStringSubmatch(s); m != nil {
		mm, _ := strconv.Atoi(m[1])
		return float64(mm) / 10.0, nil
	}
	if m := inchRTire.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		// Bare metric widths like 145R12 share the R notation with inch
		// sizes like 11R22.5; no tire is 40 inches wide.
		if v >= 40 {
			return v / 10.0, nil
		}
		return v * 2.54, nil
	}
	if m := inchDashTire.FindStringSubmatch(s); m != nil {
		in, _ := strconv.ParseFloat(m[1], 64)
		return in * 2.54, nil
	}
	return 0, fmt.Errorf("unrecognized tire size %q (expected forms like 225/80R17, 11R22.5 or 7.50-16)", size)
}

// WeightInput carries the weight distribution sheet inputs. The contact
// width may be zero, in which case it is derived from the tire sizes.
type WeightInput struct {
	CurbWeight    float64 `json:"curbWeight" yaml:"curbWeight"`       // kg
	MaxPayload    float64 `json:"maxPayload" yaml:"maxPayload"`       // kg
	FrontAxleLoad float64 `json:"frontAxleLoad" yaml:"frontAxleLoad"` // kg
	RearAxleLoad  float64 `json:"rearAxleLoad" yaml:"rearAxleLoad"`   // kg
	TireCount     int     `json:"tireCount" yaml:"tireCount"`
	LoadPerTire   float64 `json:"loadPerTire" yaml:"loadPerTire"`       // kg, rated
	ContactWidth  float64 `json:"contactWidth" yaml:"contactWidth"`     // cm, optional
	FrontTireSize string  `json:"frontTireSize" yaml:"frontTireSize"`
	RearTireSize  string  `json:"rearTireSize" yaml:"rearTireSize"`
}

// WeightResult holds the derived weight metrics.
type WeightResult struct {
	TotalWeight           float64 `json:"totalWeight"`           // kg
	FrontStrengthRatio    float64 `json:"frontStrengthRatio"`    //
	RearStrengthRatio     float64 `json:"rearStrengthRatio"`     //
	FrontContactPressure  float64 `json:"frontContactPressure"`  // kg per m of width
	RearContactPressure   float64 `json:"rearContactPressure"`   //
	FrontContactWidthUsed float64 `json:"frontContactWidthUsed"` // cm
	RearContactWidthUsed  float64 `json:"rearContactWidthUsed"`  // cm
}

// WeightMetrics computes the weight totals, the per-axle tire strength
// ratios and the contact pressures. When no explicit contact width is
// given, each axle's width comes from its tire size.
func WeightMetrics(in WeightInput) (*WeightResult, error) {
	if in.TireCount <= 0 || in.LoadPerTire <= 0 {
		return nil, fmt.Errorf("tire count and rated load per tire must be positive")
	}

	frontWidth, rearWidth := in.ContactWidth, in.ContactWidth
	if in.ContactWidth <= 0 {
		var err error
		if frontWidth, err = TireSectionWidth(in.FrontTireSize); err != nil {
			return nil, fmt.Errorf("front tire: %w", err)
		}
		if rearWidth, err = TireSectionWidth(in.RearTireSize); err != nil {
			return nil, fmt.Errorf("rear tire: %w", err)
		}
	}

	perAxleTires := float64(in.TireCount) / 2.0

	return &WeightResult{
		TotalWeight:           in.CurbWeight + in.MaxPayload,
		FrontStrengthRatio:    in.FrontAxleLoad / (perAxleTires * in.LoadPerTire),
		RearStrengthRatio:     in.RearAxleLoad / (perAxleTires * in.LoadPerTire),
		FrontContactPressure:  in.FrontAxleLoad / ((frontWidth / 100.0) * perAxleTires),
		RearContactPressure:   in.RearAxleLoad / ((rearWidth / 100.0) * perAxleTires),
		FrontContactWidthUsed: frontWidth,
		RearContactWidthUsed:  rearWidth,
	}, nil
}
