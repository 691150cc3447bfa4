// Package beam sizes simply supported rectangular beams for flexure and
// checks nominal shear per IS 456:2000. Sections that would need
// compression steel are rejected rather than designed doubly reinforced.
package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/civildesignlab/gorcplan/internal/is456"
)

// ErrInvalidParameter reports a non-positive design input.
var ErrInvalidParameter = errors.New("invalid beam parameter")

// ErrExcessiveReinforcement reports a required steel area above the 4%
// maximum. The section must be deepened or designed doubly reinforced,
// which is outside this tool.
var ErrExcessiveReinforcement = errors.New("excessive beam reinforcement")

// ErrShearFailure reports a nominal shear stress above τc,max. Stirrups
// cannot recover such a section; it must be resized.
var ErrShearFailure = errors.New("beam shear failure")

// Sizing rules, mm.
const (
	depthIncrement = 50.0
	effectiveCover = 50.0
	minGrossDepth  = 300.0
	barDia         = 16.0
)

// Designer designs beams for one material configuration.
type Designer struct {
	Fck float64 // N/mm²
	Fy  float64 // N/mm²
}

// Result is a designed beam.
type Result struct {
	Span     float64 // m
	LineLoad float64 // factored, kN/m

	Moment float64 // kN·m at midspan
	Shear  float64 // kN at support

	Width      float64 // mm
	GrossDepth float64 // mm
	EffDepth   float64 // mm

	AstRequired float64 // mm² (after minimum clamp)
	AstMin      float64
	AstMax      float64
	AstProvided float64
	BarDia      float64
	BarCount    int

	ShearStress float64 // N/mm²
	TauCMax     float64 // N/mm²
	ShearOK     bool
}

// Design sizes a simply supported beam. span in m, lineLoad is the
// factored load in kN/m, width in mm.
func (d *Designer) Design(span, lineLoad, width float64) (*Result, error) {
	if d.Fck <= 0 || d.Fy <= 0 {
		return nil, fmt.Errorf("%w: fck=%v fy=%v", ErrInvalidParameter, d.Fck, d.Fy)
	}
	if span <= 0 || lineLoad <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: span=%v load=%v width=%v",
			ErrInvalidParameter, span, lineLoad, width)
	}

	mu := lineLoad * span * span / 8 // kN·m
	vu := lineLoad * span / 2        // kN
	muNmm := mu * 1e6

	// Depth from the limiting singly-reinforced moment.
	k := is456.MuLimCoefficient(d.Fy)
	dReq := math.Sqrt(muNmm / (k * d.Fck * width))
	dEff := math.Ceil(dReq/depthIncrement) * depthIncrement
	gross := dEff + effectiveCover
	if gross < minGrossDepth {
		gross = minGrossDepth
		dEff = gross - effectiveCover
	}

	ast, ok := is456.AstRequired(muNmm, d.Fck, d.Fy, width, dEff)
	if !ok {
		return nil, fmt.Errorf("%w: flexure unsolvable at depth %.0f mm", ErrExcessiveReinforcement, dEff)
	}
	astMin := is456.BeamAstMin(width, dEff, d.Fy)
	astMax := is456.MaxBeamSteelRatio * width * gross
	ast = math.Max(ast, astMin)
	if ast > astMax {
		return nil, fmt.Errorf("%w: required %.0f mm² > maximum %.0f mm²",
			ErrExcessiveReinforcement, ast, astMax)
	}

	tauV := vu * 1000 / (width * dEff)
	tauMax := is456.TauCMax(d.Fck)
	if tauV > tauMax {
		return nil, fmt.Errorf("%w: τv = %.2f > τc,max = %.2f N/mm²",
			ErrShearFailure, tauV, tauMax)
	}

	area := is456.BarArea(barDia)
	bars := int(math.Ceil(ast / area))
	if bars < 2 {
		bars = 2
	}

	return &Result{
		Span:        span,
		LineLoad:    lineLoad,
		Moment:      mu,
		Shear:       vu,
		Width:       width,
		GrossDepth:  gross,
		EffDepth:    dEff,
		AstRequired: ast,
		AstMin:      astMin,
		AstMax:      astMax,
		AstProvided: float64(bars) * area,
		BarDia:      barDia,
		BarCount:    bars,
		ShearStress: tauV,
		TauCMax:     tauMax,
		ShearOK:     true,
	}, nil
}
