package calc

import (
	"fmt"
	"math"
)

// Section computes the bending section modulus of a frame cross section.
// Dimensions are in mm, the modulus in mm³.
type Section interface {
	Modulus() (float64, error)
	Kind() string
}

// RectHollow is a hollow rectangular section: outer B×H with an inner
// cutout b×h.
type RectHollow struct {
	OuterWidth  float64 `json:"outerWidth" yaml:"outerWidth"`   // B, mm
	OuterHeight float64 `json:"outerHeight" yaml:"outerHeight"` // H, mm
	InnerWidth  float64 `json:"innerWidth" yaml:"innerWidth"`   // b, mm
	InnerHeight float64 `json:"innerHeight" yaml:"innerHeight"` // h, mm
}

// Kind identifies the section in results and reports.
func (s RectHollow) Kind() string { return "rect_hollow" }

// Modulus returns Z = (BH³ − bh³)/(6H).
func (s RectHollow) Modulus() (float64, error) {
	if err := requirePositive(
		pv("outerWidth", s.OuterWidth),
		pv("outerHeight", s.OuterHeight),
		pv("innerWidth", s.InnerWidth),
		pv("innerHeight", s.InnerHeight),
	); err != nil {
		return 0, err
	}
	if s.InnerWidth >= s.OuterWidth || s.InnerHeight >= s.OuterHeight {
		return 0, fmt.Errorf("inner section %gx%g must fit inside outer %gx%g",
			s.InnerWidth, s.InnerHeight, s.OuterWidth, s.OuterHeight)
	}
	b, h := s.OuterWidth, s.OuterHeight
	ib, ih := s.InnerWidth, s.InnerHeight
	return (b*math.Pow(h, 3) - ib*math.Pow(ih, 3)) / (6.0 * h), nil
}

// HBeam is an I/H rolled section.
type HBeam struct {
	FlangeWidth     float64 `json:"flangeWidth" yaml:"flangeWidth"`         // B, mm
	Height          float64 `json:"height" yaml:"height"`                   // H, mm
	WebThickness    float64 `json:"webThickness" yaml:"webThickness"`       // tw, mm
	FlangeThickness float64 `json:"flangeThickness" yaml:"flangeThickness"` // tf, mm
}

// Kind identifies the section in results and reports.
func (s HBeam) Kind() string { return "hbeam" }

// Modulus returns Z = 2I/H with I = (BH³ − (B−tw)(H−2tf)³)/12.
func (s HBeam) Modulus() (float64, error) {
	if err := requirePositive(
		pv("flangeWidth", s.FlangeWidth),
		pv("height", s.Height),
		pv("webThickness", s.WebThickness),
		pv("flangeThickness", s.FlangeThickness),
	); err != nil {
		return 0, err
	}
	if 2*s.FlangeThickness >= s.Height {
		return 0, fmt.Errorf("flange thickness %g too large for height %g", s.FlangeThickness, s.Height)
	}
	if s.WebThickness >= s.FlangeWidth {
		return 0, fmt.Errorf("web thickness %g must be below flange width %g", s.WebThickness, s.FlangeWidth)
	}
	i := (s.FlangeWidth*math.Pow(s.Height, 3) -
		(s.FlangeWidth-s.WebThickness)*math.Pow(s.Height-2*s.FlangeThickness, 3)) / 12.0
	return 2.0 * i / s.Height, nil
}
