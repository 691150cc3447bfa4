package is456

import (
	"math"
	"testing"
)

func TestMuLimCoefficient(t *testing.T) {
	tests := []struct {
		fy   float64
		want float64
	}{
		{250, 0.148},
		{415, 0.138},
		{500, 0.133},
		{550, 0.133},
	}
	for _, tt := range tests {
		if got := MuLimCoefficient(tt.fy); got != tt.want {
			t.Errorf("MuLimCoefficient(%v) = %v, want %v", tt.fy, got, tt.want)
		}
	}
}

func TestTauCMax(t *testing.T) {
	tests := []struct {
		fck  float64
		want float64
	}{
		{15, 2.5},
		{20, 2.8},
		{25, 3.1},
		{30, 3.5},
		{35, 3.7},
		{40, 4.0},
		{50, 4.0},
	}
	for _, tt := range tests {
		if got := TauCMax(tt.fck); got != tt.want {
			t.Errorf("TauCMax(%v) = %v, want %v", tt.fck, got, tt.want)
		}
	}
}

func TestMinEccentricity(t *testing.T) {
	// 3000/500 + 400/30 = 6 + 13.33 = 19.33 < 20 -> floored
	if got := MinEccentricity(3000, 400); got != 20 {
		t.Errorf("MinEccentricity(3000, 400) = %v, want 20 (floor)", got)
	}
	// 6000/500 + 600/30 = 12 + 20 = 32
	if got := MinEccentricity(6000, 600); math.Abs(got-32) > 1e-9 {
		t.Errorf("MinEccentricity(6000, 600) = %v, want 32", got)
	}
}

func TestAstRequired(t *testing.T) {
	t.Run("moderate moment solvable", func(t *testing.T) {
		// 230x450 section, M25/Fe500, Mu = 80 kN-m.
		ast, ok := AstRequired(80e6, 25, 500, 230, 450)
		if !ok {
			t.Fatal("solvable section reported over-stressed")
		}
		if ast <= 0 {
			t.Errorf("Ast = %v, want > 0", ast)
		}
		// Sanity bound: below the 4% maximum.
		if max := MaxBeamSteelRatio * 230 * 500; ast > max {
			t.Errorf("Ast = %v exceeds 4%% bound %v", ast, max)
		}
	})

	t.Run("excessive moment rejected", func(t *testing.T) {
		if _, ok := AstRequired(5000e6, 25, 500, 230, 450); ok {
			t.Error("over-stressed section reported solvable")
		}
	})

	t.Run("ast grows with moment", func(t *testing.T) {
		prev := 0.0
		for _, mu := range []float64{20e6, 40e6, 60e6, 80e6} {
			ast, ok := AstRequired(mu, 25, 500, 230, 450)
			if !ok {
				t.Fatalf("Mu=%v unsolvable", mu)
			}
			if ast <= prev {
				t.Fatalf("Ast not increasing at Mu=%v: %v <= %v", mu, ast, prev)
			}
			prev = ast
		}
	})
}

func TestColumnAxialSteel(t *testing.T) {
	ag := 230.0 * 400.0
	// Monotone in Pu.
	prev := math.Inf(-1)
	for _, pu := range []float64{400e3, 800e3, 1200e3, 1600e3} {
		asc := ColumnAxialSteel(pu, 25, 500, ag)
		if asc <= prev {
			t.Fatalf("Asc not increasing at Pu=%v: %v <= %v", pu, asc, prev)
		}
		prev = asc
	}
	// Light load needs no steel beyond the minimum.
	if asc := ColumnAxialSteel(100e3, 25, 500, ag); asc >= MinColumnSteelRatio*ag {
		t.Errorf("light load Asc = %v, expected below code minimum %v", asc, MinColumnSteelRatio*ag)
	}
}

func TestBarArea(t *testing.T) {
	if got := BarArea(16); math.Abs(got-201.06) > 0.01 {
		t.Errorf("BarArea(16) = %v, want 201.06", got)
	}
}
