package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProject(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const minimalProject = `
name = "duplex"
units = "mm"

[plot]
vertices = [[0, 0], [9000, 0], [9000, 12000], [0, 12000]]

[bylaw]
uniform_setback = 1500.0
`

func TestLoadMinimalProject(t *testing.T) {
	p, err := Load(writeProject(t, minimalProject))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Units != Millimetres {
		t.Errorf("units = %q", p.Units)
	}
	// Defaults.
	if p.Floors != 2 {
		t.Errorf("floors = %d, want 2 (residential default)", p.Floors)
	}
	if p.Grid.MaxSpan != 4500 {
		t.Errorf("max span = %v, want 4500", p.Grid.MaxSpan)
	}
	if p.Materials.Fck != 25 || p.Materials.Fy != 500 {
		t.Errorf("materials = %+v, want M25/Fe500", p.Materials)
	}
	if p.Foundation.Type != PadFooting {
		t.Errorf("foundation type = %q, want pad", p.Foundation.Type)
	}
	if p.Rates.Concrete != 5500 {
		t.Errorf("concrete rate = %v", p.Rates.Concrete)
	}

	poly, ok := p.Polygon()
	if !ok {
		t.Fatal("polygon not detected")
	}
	if len(poly.Vertices) != 4 {
		t.Errorf("vertex count = %d", len(poly.Vertices))
	}
}

func TestLoadRectangularPlot(t *testing.T) {
	p, err := Load(writeProject(t, `
units = "m"
building_type = "apartment"

[plot]
width = 12.0
depth = 18.0

[bylaw]
use_ruleset = true
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Floors != 4 {
		t.Errorf("floors = %d, want 4 for apartment", p.Floors)
	}
	if p.Grid.MaxSpan != 4.5 {
		t.Errorf("max span = %v, want 4.5 for metre units", p.Grid.MaxSpan)
	}
	if _, ok := p.Polygon(); ok {
		t.Error("rectangular plot reported a polygon")
	}
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no plot", "units = \"mm\"\n"},
		{"two vertices", `
[plot]
vertices = [[0, 0], [1, 1]]
`},
		{"bad units", `
units = "ft"
[plot]
width = 10.0
depth = 10.0
`},
		{"negative setback", `
[plot]
width = 10.0
depth = 10.0
[bylaw]
uniform_setback = -5.0
`},
		{"ruleset with polygon", `
[plot]
vertices = [[0, 0], [9000, 0], [9000, 9000]]
[bylaw]
use_ruleset = true
`},
		{"pile mode missing params", `
[plot]
width = 10.0
depth = 10.0
[foundation]
type = "pile"
`},
		{"unknown foundation", `
[plot]
width = 10.0
depth = 10.0
[foundation]
type = "raft"
`},
		{"unknown building type", `
building_type = "warehouse"
[plot]
width = 10.0
depth = 10.0
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeProject(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestUnitsHelpers(t *testing.T) {
	if Millimetres.ToMetres() != 0.001 || Metres.ToMetres() != 1 {
		t.Error("ToMetres conversion wrong")
	}
	if Millimetres.BoundaryTolerance() != 10 || Metres.BoundaryTolerance() != 0.01 {
		t.Error("BoundaryTolerance wrong")
	}
}
