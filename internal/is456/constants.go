// Package is456 collects the IS 456:2000 constants and closed-form
// helpers shared by the limit-state designers. Values follow the code's
// working-stress-free limit state method for Fe250/Fe415/Fe500 steel and
// ordinary concrete grades.
package is456

import "math"

const (
	// LoadFactor is the partial safety factor for loads, limit state of
	// collapse (Cl 36.4.1, gravity combination 1.5(DL+LL)).
	LoadFactor = 1.5

	// Unit weights.
	GammaConcrete = 25.0   // kN/m³ (reinforced concrete)
	GammaBrick    = 19.0   // kN/m³ (brick masonry)
	SteelDensity  = 7850.0 // kg/m³

	// Default superimposed floor loads (kN/m²).
	FloorFinishLoad     = 1.0
	LiveLoadResidential = 2.0

	// Longitudinal steel limits for columns (Cl 26.5.3.1).
	MinColumnSteelRatio = 0.008
	MaxColumnSteelRatio = 0.04

	// Maximum flexural steel for beams (Cl 26.5.1.1(b)).
	MaxBeamSteelRatio = 0.04

	// Slenderness limit separating short from long columns (Cl 25.1.2).
	ShortColumnSlenderness = 12.0

	// Absolute floor on minimum eccentricity (Cl 25.4), mm.
	MinEccentricityFloor = 20.0

	// Column axial capacity coefficients (Cl 39.3):
	// Pu = 0.4·fck·Ac + 0.67·fy·Asc
	ColumnConcreteCoeff = 0.4
	ColumnSteelCoeff    = 0.67
)

// MuLimCoefficient returns k in Mu,lim = k·fck·b·d² for a singly
// reinforced section (SP 16 Table C), selected by steel grade.
func MuLimCoefficient(fy float64) float64 {
	switch {
	case fy <= 250:
		return 0.148
	case fy <= 415:
		return 0.138
	default:
		return 0.133 // Fe500 and above
	}
}

// AstRequired solves the quadratic flexure equation of Annex G for the
// tension steel area of a singly reinforced section:
//
//	Ast = (0.5·fck/fy)·(1 − √(1 − 4.6·Mu/(fck·b·d²)))·b·d
//
// mu is in N·mm, b and d in mm. The ok result is false when the term
// under the root is negative, meaning the section cannot resist mu as
// singly reinforced at this depth.
func AstRequired(mu, fck, fy, b, d float64) (float64, bool) {
	term := 4.6 * mu / (fck * b * d * d)
	if term > 1 {
		return 0, false
	}
	ast := (0.5 * fck / fy) * (1 - math.Sqrt(1-term)) * b * d
	return ast, true
}

// BeamAstMin returns the minimum flexural tension steel 0.85·b·d/fy
// (Cl 26.5.1.1(a)). b and d in mm, result in mm².
func BeamAstMin(b, d, fy float64) float64 {
	return 0.85 * b * d / fy
}

// TauCMax returns the maximum permissible shear stress τc,max in N/mm²
// (Table 20). Beyond this value the section must be resized; stirrups
// cannot help.
func TauCMax(fck float64) float64 {
	switch {
	case fck < 20:
		return 2.5
	case fck < 25:
		return 2.8
	case fck < 30:
		return 3.1
	case fck < 35:
		return 3.5
	case fck < 40:
		return 3.7
	default:
		return 4.0
	}
}

// MinEccentricity returns the design minimum eccentricity per Cl 25.4:
// l/500 + D/30, not less than 20 mm. Both arguments in mm.
func MinEccentricity(unsupportedLength, dim float64) float64 {
	e := unsupportedLength/500 + dim/30
	return math.Max(e, MinEccentricityFloor)
}

// ColumnAxialSteel solves the Cl 39.3 capacity equation for the required
// longitudinal steel:
//
//	Pu = 0.4·fck·(Ag − Asc) + 0.67·fy·Asc
//
// pu in N, ag in mm². The result may be negative when concrete alone
// carries the load; callers clamp to the code minimum.
func ColumnAxialSteel(pu, fck, fy, ag float64) float64 {
	return (pu - ColumnConcreteCoeff*fck*ag) / (ColumnSteelCoeff*fy - ColumnConcreteCoeff*fck)
}

// BarArea returns the cross-sectional area in mm² of a round bar of the
// given diameter in mm.
func BarArea(dia float64) float64 {
	return math.Pi / 4 * dia * dia
}

// Standard bar diameters (mm) used for suggestions, smallest first.
var StandardBars = []float64{8, 10, 12, 16, 20, 25, 32}
