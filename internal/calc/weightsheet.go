package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Component is one row of the semi-trailer weight table: a part with its
// weight, longitudinal arm from the hitch coupler and centre-of-gravity
// height.
type Component struct {
	No     string  `json:"no" yaml:"no"`
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"` // kg, Wi
	Arm    float64 `json:"arm" yaml:"arm"`       // mm, Li (negative ahead of the coupler)
	Height float64 `json:"height" yaml:"height"` // mm, Hi
}

// LongitudinalMoment returns Wi·Li in kg·mm.
func (c Component) LongitudinalMoment() float64 { return c.Weight * c.Arm }

// HeightMoment returns Wi·Hi in kg·mm.
func (c Component) HeightMoment() float64 { return c.Weight * c.Height }

// WeightSheetInput is the semi-trailer weight calculation sheet.
type WeightSheetInput struct {
	Wheelbase  float64     `json:"wheelbase" yaml:"wheelbase"`   // mm
	MaxPayload float64     `json:"maxPayload" yaml:"maxPayload"` // kg
	Components []Component `json:"components" yaml:"components"`

	// Bed offset terms: O.S. = a/2 + b − c − d.
	BedOffsetA float64 `json:"bedOffsetA" yaml:"bedOffsetA"` // mm
	BedOffsetB float64 `json:"bedOffsetB" yaml:"bedOffsetB"` // mm
	BedOffsetC float64 `json:"bedOffsetC" yaml:"bedOffsetC"` // mm
	BedOffsetD float64 `json:"bedOffsetD" yaml:"bedOffsetD"` // mm
}

// WeightSheetResult holds the empty-vehicle distribution, centre of
// gravity, bed offset and the loaded distribution.
type WeightSheetResult struct {
	TareWeight       float64 `json:"tareWeight"`       // kg, ΣWi
	SumArmMoment     float64 `json:"sumArmMoment"`     // kg·mm, ΣWiLi
	SumHeightMoment  float64 `json:"sumHeightMoment"`  // kg·mm, ΣWiHi
	EmptyRearAxle    float64 `json:"emptyRearAxle"`    // kg, ΣWiLi / wheelbase
	EmptyFrontAxle   float64 `json:"emptyFrontAxle"`   // kg, ΣWi − rear
	CGArm            float64 `json:"cgArm"`            // mm
	CGHeight         float64 `json:"cgHeight"`         // mm
	BedOffset        float64 `json:"bedOffset"`        // mm, O.S.
	PayloadArm       float64 `json:"payloadArm"`       // mm, wheelbase − O.S.
	LoadedRearAxle   float64 `json:"loadedRearAxle"`   // kg
	LoadedFrontAxle  float64 `json:"loadedFrontAxle"`  // kg
	GrossWeight      float64 `json:"grossWeight"`      // kg
}

// WeightSheet totals the component table, splits the tare weight over
// the axles and distributes the payload acting at the offset bed centre.
func WeightSheet(in WeightSheetInput) (*WeightSheetResult, error) {
	if in.Wheelbase <= 0 {
		return nil, fmt.Errorf("wheelbase must be positive, got %g", in.Wheelbase)
	}
	if len(in.Components) == 0 {
		return nil, fmt.Errorf("component table is empty")
	}

	var res WeightSheetResult
	for _, c := range in.Components {
		res.TareWeight += c.Weight
		res.SumArmMoment += c.LongitudinalMoment()
		res.SumHeightMoment += c.HeightMoment()
	}
	if res.TareWeight <= 0 {
		return nil, fmt.Errorf("component weights sum to %g kg", res.TareWeight)
	}

	res.EmptyRearAxle = res.SumArmMoment / in.Wheelbase
	res.EmptyFrontAxle = res.TareWeight - res.EmptyRearAxle
	res.CGArm = res.SumArmMoment / res.TareWeight
	res.CGHeight = res.SumHeightMoment / res.TareWeight

	res.BedOffset = in.BedOffsetA/2.0 + in.BedOffsetB - in.BedOffsetC - in.BedOffsetD
	res.PayloadArm = in.Wheelbase - res.BedOffset

	// Payload at the offset bed centre, lever rule over the wheelbase.
	res.LoadedRearAxle = res.EmptyRearAxle + in.MaxPayload*res.PayloadArm/in.Wheelbase
	res.LoadedFrontAxle = res.EmptyFrontAxle + in.MaxPayload*(1.0-res.PayloadArm/in.Wheelbase)
	res.GrossWeight = res.TareWeight + in.MaxPayload

	return &res, nil
}

// ParseComponents reads a component table from tab- or comma-separated
// text: No, name, Wi, Li, Hi per line. Blank lines, comment lines and a
// leading header row are skipped; malformed rows are dropped.
func ParseComponents(text string) []Component {
	var rows []Component
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sep := ","
		if strings.Contains(line, "\t") {
			sep = "\t"
		}
		parts := strings.Split(line, sep)
		if len(parts) < 5 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if strings.EqualFold(parts[0], "no") {
			continue
		}
		w, err1 := strconv.ParseFloat(parts[2], 64)
		l, err2 := strconv.ParseFloat(parts[3], 64)
		h, err3 := strconv.ParseFloat(parts[4], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		rows = append(rows, Component{No: parts[0], Name: parts[1], Weight: w, Arm: l, Height: h})
	}
	return rows
}
