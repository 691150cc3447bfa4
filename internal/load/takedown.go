// Package load converts the tributary floor and wall area of each grid
// node into unfactored and factored axial column loads.
package load

import (
	"errors"
	"fmt"

	"github.com/civildesignlab/gorcplan/internal/grid"
	"github.com/civildesignlab/gorcplan/internal/is456"
)

// ErrInvalidParameter reports a non-positive span, thickness, height,
// density, floor count, or load factor.
var ErrInvalidParameter = errors.New("invalid load parameter")

// Params holds the takedown inputs. Lengths are in metres, densities in
// kN/m³, area loads in kN/m².
type Params struct {
	Floors        int
	SlabThickness float64
	WallHeight    float64
	WallThickness float64

	ConcreteDensity float64
	BrickDensity    float64
	FloorFinish     float64
	LiveLoad        float64
	LoadFactor      float64

	// SpanToMetres converts the grid's spacing values into metres
	// (1 for metre grids, 0.001 for millimetre grids).
	SpanToMetres float64

	// EdgeAware reduces the tributary area of boundary nodes: 0.5× for
	// edge nodes and 0.25× for corners. When false (the default) every
	// node is charged the full bay area, which over-counts boundary
	// columns on the safe side. Both behaviors exist in practice; the
	// switch makes the choice explicit.
	EdgeAware bool
}

// DefaultParams returns the residential duplex defaults: 150 mm slab,
// 3 m floor height, 230 mm brick walls, IS 456 densities and factors.
func DefaultParams() Params {
	return Params{
		Floors:          2,
		SlabThickness:   0.150,
		WallHeight:      3.0,
		WallThickness:   0.230,
		ConcreteDensity: is456.GammaConcrete,
		BrickDensity:    is456.GammaBrick,
		FloorFinish:     is456.FloorFinishLoad,
		LiveLoad:        is456.LiveLoadResidential,
		LoadFactor:      is456.LoadFactor,
		SpanToMetres:    1,
	}
}

// Validate checks every physical parameter for positivity.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"floors", float64(p.Floors)},
		{"slab thickness", p.SlabThickness},
		{"wall height", p.WallHeight},
		{"wall thickness", p.WallThickness},
		{"concrete density", p.ConcreteDensity},
		{"brick density", p.BrickDensity},
		{"load factor", p.LoadFactor},
		{"span scale", p.SpanToMetres},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidParameter, c.name, c.value)
		}
	}
	if p.FloorFinish < 0 || p.LiveLoad < 0 {
		return fmt.Errorf("%w: negative area load", ErrInvalidParameter)
	}
	return nil
}

// Record is the per-node load takedown result. Loads in kN, area in m².
type Record struct {
	NodeID        string
	Class         grid.NodeClass
	TributaryArea float64
	Unfactored    float64
	Factored      float64
}

// Takedown computes the axial load record for every node of the grid.
// Records are returned in the grid's node order.
func Takedown(g *grid.Grid, p Params) ([]Record, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if g == nil || len(g.Nodes) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidParameter)
	}

	sx := g.SpacingX * p.SpanToMetres
	sy := g.SpacingY * p.SpanToMetres
	if sx <= 0 || sy <= 0 {
		return nil, fmt.Errorf("%w: grid spacing %v x %v", ErrInvalidParameter, sx, sy)
	}

	// Slab load per m²: self weight + finishes + live load.
	unitSlab := p.SlabThickness*p.ConcreteDensity + p.FloorFinish + p.LiveLoad
	// Wall line load per running metre.
	wallPerM := p.WallThickness * p.WallHeight * p.BrickDensity
	bayArea := sx * sy

	records := make([]Record, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		factor := 1.0
		if p.EdgeAware {
			switch n.Class {
			case grid.Edge:
				factor = 0.5
			case grid.Corner:
				factor = 0.25
			}
		}
		trib := bayArea * factor
		perFloor := unitSlab*trib + wallPerM*(sx+sy)*factor
		unfactored := perFloor * float64(p.Floors)

		records = append(records, Record{
			NodeID:        n.ID,
			Class:         n.Class,
			TributaryArea: trib,
			Unfactored:    unfactored,
			Factored:      unfactored * p.LoadFactor,
		})
	}
	return records, nil
}
