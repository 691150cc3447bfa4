// Package foundation sizes column foundations for factored axial loads:
// isolated pad footings governed by soil bearing capacity, or bored pile
// groups governed by per-pile capacity. The foundation type is a global
// configuration choice for a run, never a per-column one.
package foundation

import (
	"errors"
	"fmt"
	"math"

	"github.com/civildesignlab/gorcplan/internal/is456"
)

// ErrInvalidParameter reports a non-positive design input.
var ErrInvalidParameter = errors.New("invalid foundation parameter")

// ErrOverStressed reports a load no reasonable pad footing can carry
// under the simplified method.
var ErrOverStressed = errors.New("footing over-stressed")

// MaxFootingSide is the sizing ceiling for an isolated pad, in metres.
// A pad wider than this is not a credible solution for the simplified
// method; the load belongs on piles or a raft.
const MaxFootingSide = 5.0

// Pad-footing rounding and limits (mm unless noted).
const (
	depthIncrement  = 50.0
	minEffDepth     = 250.0
	effectiveCover  = 50.0
	sideIncrement   = 0.1 // m
	selfWeightAllow = 1.10
	footingBarDia   = 12.0
	// Minimum tension steel ratio for footing slabs (Cl 26.5.2.1).
	minSlabSteelRatio = 0.0012
)

// PadDesigner designs square isolated footings for one soil and material
// configuration.
type PadDesigner struct {
	SBC float64 // soil bearing capacity, kN/m²
	Fck float64 // concrete grade, N/mm²
	Fy  float64 // steel grade, N/mm²
}

// Footing is a designed square pad.
type Footing struct {
	Side       float64 // plan side, m
	GrossDepth float64 // overall depth, mm
	EffDepth   float64 // effective depth, mm

	NetPressure float64 // kN/m²
	Moment      float64 // cantilever moment at column face, kN·m

	AstRequired float64 // mm²
	AstProvided float64 // mm²
	BarCount    int     // 12 mm bars per direction
	BarSpacing  float64 // c/c, mm
}

// Design sizes a square pad for a factored axial load. load in kN,
// colDim (column side at the footing face) in m.
func (d *PadDesigner) Design(load, colDim float64) (*Footing, error) {
	if d.SBC <= 0 || d.Fck <= 0 || d.Fy <= 0 {
		return nil, fmt.Errorf("%w: sbc=%v fck=%v fy=%v", ErrInvalidParameter, d.SBC, d.Fck, d.Fy)
	}
	if load <= 0 || colDim <= 0 {
		return nil, fmt.Errorf("%w: load=%v column=%v", ErrInvalidParameter, load, colDim)
	}

	// Plan area from the service load plus a self-weight allowance.
	service := load / is456.LoadFactor
	areaReq := service * selfWeightAllow / d.SBC
	side := math.Ceil(math.Sqrt(areaReq)/sideIncrement) * sideIncrement
	if side < colDim {
		side = math.Ceil(colDim/sideIncrement) * sideIncrement
	}
	if side > MaxFootingSide {
		return nil, fmt.Errorf("%w: required side %.1f m exceeds %.1f m ceiling", ErrOverStressed, side, MaxFootingSide)
	}

	// Net upward pressure under the factored load.
	wu := load / (side * side)

	// Cantilever moment at the column face, per strip of full width.
	projection := (side - colDim) / 2
	mu := wu * side * projection * projection / 2 // kN·m

	// Effective depth from the limiting-moment equation.
	k := is456.MuLimCoefficient(d.Fy)
	dReq := math.Sqrt(mu * 1e6 / (k * d.Fck * side * 1000))
	dEff := math.Ceil(dReq/depthIncrement) * depthIncrement
	if dEff < minEffDepth {
		dEff = minEffDepth
	}
	gross := dEff + effectiveCover

	ast, ok := is456.AstRequired(mu*1e6, d.Fck, d.Fy, side*1000, dEff)
	if !ok {
		return nil, fmt.Errorf("%w: flexure unsolvable at depth %.0f mm", ErrOverStressed, dEff)
	}
	astMin := minSlabSteelRatio * side * 1000 * gross
	provided := math.Max(ast, astMin)

	barArea := is456.BarArea(footingBarDia)
	bars := int(math.Ceil(provided / barArea))
	if bars < 2 {
		bars = 2
	}
	spacing := side * 1000 / float64(bars)

	return &Footing{
		Side:        side,
		GrossDepth:  gross,
		EffDepth:    dEff,
		NetPressure: wu,
		Moment:      mu,
		AstRequired: ast,
		AstProvided: float64(bars) * barArea,
		BarCount:    bars,
		BarSpacing:  spacing,
	}, nil
}
