package calc

import "fmt"

// LeafSpringInput describes a two-axle leaf-sprung trailer. Positions are
// measured from the coupling centre in mm.
type LeafSpringInput struct {
	FrontSpringFront float64 `json:"frontSpringFront" yaml:"frontSpringFront"` // front spring, front eye
	FrontSpringRear  float64 `json:"frontSpringRear" yaml:"frontSpringRear"`   // front spring, rear eye
	RearSpringFront  float64 `json:"rearSpringFront" yaml:"rearSpringFront"`   // rear spring, front eye
	RearSpringRear   float64 `json:"rearSpringRear" yaml:"rearSpringRear"`     // rear spring, rear eye
	BedStart         float64 `json:"bedStart" yaml:"bedStart"`                 // mm
	BedLength        float64 `json:"bedLength" yaml:"bedLength"`               // mm
	TareFront        float64 `json:"tareFront" yaml:"tareFront"`               // kg, acts at front axle centre
	TareRear         float64 `json:"tareRear" yaml:"tareRear"`                 // kg, acts at rear axle centre
	Payload          float64 `json:"payload" yaml:"payload"`                   // kg, acts at bed centre
	Equipment        float64 `json:"equipment" yaml:"equipment"`               // kg
	EquipmentPos     float64 `json:"equipmentPos" yaml:"equipmentPos"`         // mm
}

// LeafSpringLoad is one of the point loads resolved onto the two
// supports.
type LeafSpringLoad struct {
	Name     string  `json:"name"`
	Load     float64 `json:"load"`     // kg
	Position float64 `json:"position"` // mm from coupling centre
}

// LeafSpringResult holds the axle centres and the reaction split.
type LeafSpringResult struct {
	FrontAxleCentre float64          `json:"frontAxleCentre"` // mm, spring eye midpoint
	RearAxleCentre  float64          `json:"rearAxleCentre"`  // mm
	PayloadCentre   float64          `json:"payloadCentre"`   // mm, bed midpoint
	Loads           []LeafSpringLoad `json:"loads"`
	FrontReaction   float64          `json:"frontReaction"` // kg
	RearReaction    float64          `json:"rearReaction"`  // kg
	Total           float64          `json:"total"`         // kg
}

// LeafSpringDistribution resolves the tare, payload and equipment point
// loads onto the two spring centres by the lever rule.
func LeafSpringDistribution(in LeafSpringInput) (*LeafSpringResult, error) {
	front := (in.FrontSpringFront + in.FrontSpringRear) / 2.0
	rear := (in.RearSpringFront + in.RearSpringRear) / 2.0
	if rear <= front {
		return nil, fmt.Errorf("rear axle centre %g mm must sit behind front axle centre %g mm", rear, front)
	}

	payloadPos := in.BedStart + in.BedLength/2.0
	loads := []LeafSpringLoad{
		{Name: "tareFront", Load: in.TareFront, Position: front},
		{Name: "tareRear", Load: in.TareRear, Position: rear},
		{Name: "payload", Load: in.Payload, Position: payloadPos},
		{Name: "equipment", Load: in.Equipment, Position: in.EquipmentPos},
	}

	span := rear - front
	var rf, rr, total float64
	for _, l := range loads {
		rf += l.Load * (rear - l.Position) / span
		rr += l.Load * (l.Position - front) / span
		total += l.Load
	}

	return &LeafSpringResult{
		FrontAxleCentre: front,
		RearAxleCentre:  rear,
		PayloadCentre:   payloadPos,
		Loads:           loads,
		FrontReaction:   rf,
		RearReaction:    rr,
		Total:           total,
	}, nil
}
