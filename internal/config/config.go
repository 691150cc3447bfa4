// Package config loads and validates the TOML project file that drives
// a full pipeline run.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/civildesignlab/gorcplan/internal/geometry"
)

// ErrInvalidConfig reports a project file that fails validation.
var ErrInvalidConfig = errors.New("invalid project config")

// Units declares the length unit of the plot coordinates, setback, and
// span values. Design-code quantities (section sizes in mm, loads in kN)
// are unaffected; the unit only drives geometry tolerances.
type Units string

const (
	Millimetres Units = "mm"
	Metres      Units = "m"
)

// ToMetres returns the factor converting plot-unit lengths to metres.
func (u Units) ToMetres() float64 {
	if u == Millimetres {
		return 0.001
	}
	return 1
}

// BoundaryTolerance is the grid membership tolerance in plot units:
// 10 mm, or its metre equivalent.
func (u Units) BoundaryTolerance() float64 {
	if u == Millimetres {
		return 10
	}
	return 0.01
}

// Floor counts by building type for the standard selections.
var floorsByType = map[string]int{
	"bungalow":    1,
	"residential": 2,
	"duplex":      2,
	"apartment":   4,
}

// Project is the top-level project file.
type Project struct {
	Name         string `toml:"name"`
	Units        Units  `toml:"units"`
	BuildingType string `toml:"building_type"`
	Floors       int    `toml:"floors"` // overrides building_type when set

	Plot       Plot       `toml:"plot"`
	Bylaw      Bylaw      `toml:"bylaw"`
	Grid       Grid       `toml:"grid"`
	Loads      Loads      `toml:"loads"`
	Materials  Materials  `toml:"materials"`
	Column     Column     `toml:"column"`
	Beam       Beam       `toml:"beam"`
	Foundation Foundation `toml:"foundation"`
	Rates      Rates      `toml:"rates"`
}

// Plot describes the boundary: either an explicit polygon or a plain
// width × depth rectangle (in plot units).
type Plot struct {
	Vertices [][]float64 `toml:"vertices"`
	Width    float64     `toml:"width"`
	Depth    float64     `toml:"depth"`
}

// Bylaw selects the setback source: a uniform inward buffer, or the
// size-banded per-face ruleset (rectangular plots only).
type Bylaw struct {
	UniformSetback float64 `toml:"uniform_setback"`
	UseRuleset     bool    `toml:"use_ruleset"`
}

type Grid struct {
	MaxSpan float64 `toml:"max_span"` // plot units

	// Nodes optionally supplies column positions directly, bypassing
	// the generator. Positions are plot coordinates for polygon and
	// rectangular plots alike (a rectangular plot's origin is its
	// south-west corner, so the footprint sits setback-in from it).
	// They are still validated against the buildable envelope;
	// out-of-envelope nodes are flagged.
	Nodes [][]float64 `toml:"nodes"`
}

// Loads are the takedown parameters in metres / kN units.
type Loads struct {
	SlabThickness float64 `toml:"slab_thickness"`
	WallHeight    float64 `toml:"wall_height"`
	WallThickness float64 `toml:"wall_thickness"`
	FloorFinish   float64 `toml:"floor_finish"`
	LiveLoad      float64 `toml:"live_load"`
	EdgeAware     bool    `toml:"edge_aware"`
}

type Materials struct {
	Fck float64 `toml:"fck"` // N/mm²
	Fy  float64 `toml:"fy"`  // N/mm²
}

type Column struct {
	Width        float64 `toml:"width"`         // mm
	Depth        float64 `toml:"depth"`         // mm
	StoreyHeight float64 `toml:"storey_height"` // m
}

type Beam struct {
	Width float64 `toml:"width"` // mm
}

// FoundationType selects the single foundation mode of a run.
type FoundationType string

const (
	PadFooting FoundationType = "pad"
	BoredPiles FoundationType = "pile"
)

type Foundation struct {
	Type FoundationType `toml:"type"`

	// Pad mode.
	SBC       float64 `toml:"sbc"`        // kN/m²
	ColumnDim float64 `toml:"column_dim"` // m, column side at footing face

	// Pile mode.
	PileCapacity float64 `toml:"pile_capacity"` // kN
	PileDiameter float64 `toml:"pile_diameter"` // m
	PileDepth    float64 `toml:"pile_depth"`    // m
}

type Rates struct {
	Concrete   float64 `toml:"concrete"`
	Steel      float64 `toml:"steel"`
	PileBoring float64 `toml:"pile_boring"`
}

// Load reads and validates a project file.
func Load(path string) (*Project, error) {
	var p Project
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ApplyDefaults fills unset fields with the residential duplex defaults.
func (p *Project) ApplyDefaults() {
	if p.Units == "" {
		p.Units = Millimetres
	}
	if p.BuildingType == "" {
		p.BuildingType = "residential"
	}
	if p.Floors == 0 {
		if n, ok := floorsByType[strings.ToLower(p.BuildingType)]; ok {
			p.Floors = n
		}
	}
	if p.Grid.MaxSpan == 0 {
		if p.Units == Millimetres {
			p.Grid.MaxSpan = 4500
		} else {
			p.Grid.MaxSpan = 4.5
		}
	}
	if p.Loads.SlabThickness == 0 {
		p.Loads.SlabThickness = 0.150
	}
	if p.Loads.WallHeight == 0 {
		p.Loads.WallHeight = 3.0
	}
	if p.Loads.WallThickness == 0 {
		p.Loads.WallThickness = 0.230
	}
	if p.Loads.FloorFinish == 0 {
		p.Loads.FloorFinish = 1.0
	}
	if p.Loads.LiveLoad == 0 {
		p.Loads.LiveLoad = 2.0
	}
	if p.Materials.Fck == 0 {
		p.Materials.Fck = 25
	}
	if p.Materials.Fy == 0 {
		p.Materials.Fy = 500
	}
	if p.Column.Width == 0 {
		p.Column.Width = 230
	}
	if p.Column.Depth == 0 {
		p.Column.Depth = 400
	}
	if p.Column.StoreyHeight == 0 {
		p.Column.StoreyHeight = 3.0
	}
	if p.Beam.Width == 0 {
		p.Beam.Width = 230
	}
	if p.Foundation.Type == "" {
		p.Foundation.Type = PadFooting
	}
	if p.Foundation.SBC == 0 {
		p.Foundation.SBC = 200
	}
	if p.Foundation.ColumnDim == 0 {
		p.Foundation.ColumnDim = 0.300
	}
	if p.Rates == (Rates{}) {
		p.Rates = Rates{Concrete: 5500, Steel: 75, PileBoring: 1800}
	}
}

// Validate checks the cross-field constraints the decoders cannot.
func (p *Project) Validate() error {
	if p.Units != Millimetres && p.Units != Metres {
		return fmt.Errorf("%w: units must be %q or %q, got %q", ErrInvalidConfig, Millimetres, Metres, p.Units)
	}
	if p.Floors <= 0 {
		return fmt.Errorf("%w: unknown building type %q and no floor count given", ErrInvalidConfig, p.BuildingType)
	}
	hasPoly := len(p.Plot.Vertices) > 0
	hasRect := p.Plot.Width > 0 && p.Plot.Depth > 0
	if !hasPoly && !hasRect {
		return fmt.Errorf("%w: plot needs vertices or width and depth", ErrInvalidConfig)
	}
	if hasPoly {
		if len(p.Plot.Vertices) < 3 {
			return fmt.Errorf("%w: plot polygon needs at least 3 vertices", ErrInvalidConfig)
		}
		for i, v := range p.Plot.Vertices {
			if len(v) != 2 {
				return fmt.Errorf("%w: vertex %d must be [x, y]", ErrInvalidConfig, i)
			}
		}
		if p.Bylaw.UseRuleset {
			return fmt.Errorf("%w: the setback ruleset applies to rectangular plots only", ErrInvalidConfig)
		}
	}
	if p.Bylaw.UniformSetback < 0 {
		return fmt.Errorf("%w: setback must be non-negative", ErrInvalidConfig)
	}
	if p.Grid.MaxSpan <= 0 {
		return fmt.Errorf("%w: max span must be positive", ErrInvalidConfig)
	}
	for i, n := range p.Grid.Nodes {
		if len(n) != 2 {
			return fmt.Errorf("%w: grid node %d must be [x, y]", ErrInvalidConfig, i)
		}
	}
	switch p.Foundation.Type {
	case PadFooting:
		if p.Foundation.SBC <= 0 {
			return fmt.Errorf("%w: pad mode needs a positive soil bearing capacity", ErrInvalidConfig)
		}
	case BoredPiles:
		if p.Foundation.PileCapacity <= 0 || p.Foundation.PileDiameter <= 0 || p.Foundation.PileDepth <= 0 {
			return fmt.Errorf("%w: pile mode needs capacity, diameter, and depth", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown foundation type %q", ErrInvalidConfig, p.Foundation.Type)
	}
	return nil
}

// Polygon converts the configured vertex list into a geometry polygon.
// Returns false when the plot is given as width × depth instead.
func (p *Project) Polygon() (geometry.Polygon, bool) {
	if len(p.Plot.Vertices) == 0 {
		return geometry.Polygon{}, false
	}
	poly := geometry.Polygon{Vertices: make([]geometry.Point, len(p.Plot.Vertices))}
	for i, v := range p.Plot.Vertices {
		poly.Vertices[i] = geometry.Point{X: v[0], Y: v[1]}
	}
	return poly, true
}

// ExternalNodes converts the optional user-supplied column positions.
func (p *Project) ExternalNodes() []geometry.Point {
	if len(p.Grid.Nodes) == 0 {
		return nil
	}
	pts := make([]geometry.Point, len(p.Grid.Nodes))
	for i, n := range p.Grid.Nodes {
		pts[i] = geometry.Point{X: n[0], Y: n[1]}
	}
	return pts
}
