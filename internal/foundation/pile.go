package foundation

import (
	"fmt"
	"math"
)

// Pile group geometry rules, in multiples of the pile diameter.
const (
	pileSpacingFactor = 3.0
	pileEdgeFactor    = 1.0
)

// Pile cap depths by group size, metres.
const (
	capDepthSingle = 0.6
	capDepthGroup  = 0.9
)

// PileDesigner designs bored-pile groups for one pile configuration.
type PileDesigner struct {
	Capacity float64 // safe load per pile, kN
	Diameter float64 // m
	Depth    float64 // pile length, m
}

// PileGroup is a designed pile foundation for one column.
type PileGroup struct {
	Count   int
	Spacing float64 // c/c, m

	CapSide  float64 // square cap plan side, m
	CapDepth float64 // m

	// BoringLength is the total drilled length across the group, m.
	// The BOQ prices boring and concreting per metre per pile.
	BoringLength float64
}

// Design sizes a pile group for a factored axial load in kN.
func (d *PileDesigner) Design(load float64) (*PileGroup, error) {
	if d.Capacity <= 0 || d.Diameter <= 0 || d.Depth <= 0 {
		return nil, fmt.Errorf("%w: capacity=%v diameter=%v depth=%v",
			ErrInvalidParameter, d.Capacity, d.Diameter, d.Depth)
	}
	if load <= 0 {
		return nil, fmt.Errorf("%w: load=%v", ErrInvalidParameter, load)
	}

	count := int(math.Ceil(load / d.Capacity))
	if count < 1 {
		count = 1
	}

	spacing := pileSpacingFactor * d.Diameter
	edge := pileEdgeFactor * d.Diameter

	var capSide, capDepth float64
	if count == 1 {
		capSide = spacing
		capDepth = capDepthSingle
	} else {
		// Approximate the group as a square arrangement.
		rows := math.Ceil(math.Sqrt(float64(count)))
		capSide = (rows-1)*spacing + 2*edge
		capDepth = capDepthGroup
	}

	return &PileGroup{
		Count:        count,
		Spacing:      spacing,
		CapSide:      capSide,
		CapDepth:     capDepth,
		BoringLength: float64(count) * d.Depth,
	}, nil
}
