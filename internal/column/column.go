// Package column sizes longitudinal reinforcement for short, axially
// loaded rectangular columns per IS 456:2000 Cl 39.3. Long columns and
// columns whose minimum eccentricity exceeds the simplified-formula
// limit are reported, not designed: they need buckling analysis or
// interaction-curve design outside this tool.
package column

import (
	"errors"
	"fmt"
	"math"

	"github.com/civildesignlab/gorcplan/internal/is456"
)

// ErrInvalidParameter reports a non-positive design input.
var ErrInvalidParameter = errors.New("invalid column parameter")

// ErrLongColumn reports a slenderness ratio above the short-column limit.
// The axial formula does not apply; the caller must run a P-Delta or
// moment-magnification analysis externally.
var ErrLongColumn = errors.New("long column unsupported")

// ErrExcessiveReinforcement reports a required steel area above the 4%
// code maximum. The caller must upsize the section.
var ErrExcessiveReinforcement = errors.New("excessive column reinforcement")

// Status classifies the design outcome.
type Status int

const (
	// AxiallyLoadedShort means the Cl 39.3 formula applied and steel was
	// sized.
	AxiallyLoadedShort Status = iota
	// NeedsBiaxialDesign means the minimum eccentricity exceeds 5% of
	// the section dimension; the column requires SP 16 interaction-curve
	// design and no steel is computed here.
	NeedsBiaxialDesign
)

func (s Status) String() string {
	if s == NeedsBiaxialDesign {
		return "needs biaxial bending design"
	}
	return "axially loaded short column"
}

// Section is a rectangular column section in mm.
type Section struct {
	Width float64 // b
	Depth float64 // D
}

// Designer designs columns for one material configuration.
type Designer struct {
	Fck float64 // N/mm²
	Fy  float64 // N/mm²
}

// Column bar diameter used for suggestions, mm.
const barDia = 16.0

// Result is a designed column.
type Result struct {
	Section Section
	Status  Status

	Slenderness     float64
	MinEccentricity float64 // mm

	AscRequired  float64 // mm² (after the 0.8% minimum clamp)
	AscProvided  float64 // mm²
	SteelPercent float64
	BarDia       float64
	BarCount     int // even, >= 4
}

// Design sizes the longitudinal steel for a factored axial load.
// pu in kN, effLength (effective length) in m, section in mm.
func (d *Designer) Design(pu, effLength float64, sec Section) (*Result, error) {
	if d.Fck <= 0 || d.Fy <= 0 {
		return nil, fmt.Errorf("%w: fck=%v fy=%v", ErrInvalidParameter, d.Fck, d.Fy)
	}
	if pu <= 0 || effLength <= 0 || sec.Width <= 0 || sec.Depth <= 0 {
		return nil, fmt.Errorf("%w: pu=%v L=%v section=%vx%v",
			ErrInvalidParameter, pu, effLength, sec.Width, sec.Depth)
	}

	lmm := effLength * 1000
	least := math.Min(sec.Width, sec.Depth)
	slenderness := lmm / least
	if slenderness > is456.ShortColumnSlenderness {
		return nil, fmt.Errorf("%w: slenderness %.1f > %.0f",
			ErrLongColumn, slenderness, is456.ShortColumnSlenderness)
	}

	res := &Result{
		Section:         sec,
		Slenderness:     slenderness,
		MinEccentricity: is456.MinEccentricity(lmm, sec.Depth),
	}

	// Cl 39.3 only holds while e_min stays within 5% of the lateral
	// dimension; beyond that the column is flagged for interaction-curve
	// design and no axial sizing is attempted.
	if res.MinEccentricity > 0.05*sec.Depth {
		res.Status = NeedsBiaxialDesign
		return res, nil
	}

	ag := sec.Width * sec.Depth
	asc := is456.ColumnAxialSteel(pu*1000, d.Fck, d.Fy, ag)
	asc = math.Max(asc, is456.MinColumnSteelRatio*ag)
	if asc > is456.MaxColumnSteelRatio*ag {
		return nil, fmt.Errorf("%w: required %.0f mm² > 4%% of Ag (%.0f mm²)",
			ErrExcessiveReinforcement, asc, is456.MaxColumnSteelRatio*ag)
	}

	area := is456.BarArea(barDia)
	bars := int(math.Ceil(asc / area))
	if bars < 4 {
		bars = 4
	}
	if bars%2 != 0 {
		bars++
	}

	res.Status = AxiallyLoadedShort
	res.AscRequired = asc
	res.AscProvided = float64(bars) * area
	res.SteelPercent = asc / ag * 100
	res.BarDia = barDia
	res.BarCount = bars
	return res, nil
}
