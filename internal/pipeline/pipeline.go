// Package pipeline runs the full plot-to-structure chain: buildable
// envelope, column grid, load takedown, per-node foundation and column
// design, typical beam design, and BOQ aggregation.
//
// Run-level failures (bad geometry, bad parameters) abort the run:
// nothing downstream is meaningful without a valid envelope and grid.
// Per-element design failures are scoped to the element: the run
// continues and every failed element is reported in Result.Failed.
package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/civildesignlab/gorcplan/internal/beam"
	"github.com/civildesignlab/gorcplan/internal/boq"
	"github.com/civildesignlab/gorcplan/internal/bylaw"
	"github.com/civildesignlab/gorcplan/internal/column"
	"github.com/civildesignlab/gorcplan/internal/config"
	"github.com/civildesignlab/gorcplan/internal/foundation"
	"github.com/civildesignlab/gorcplan/internal/geometry"
	"github.com/civildesignlab/gorcplan/internal/grid"
	"github.com/civildesignlab/gorcplan/internal/load"
)

// Options configures a run.
type Options struct {
	// Logger receives progress output. A nil logger discards it.
	Logger *log.Logger
}

// ElementError records one failed element design. The element stays in
// the report; it is never silently dropped.
type ElementError struct {
	Element string // node or beam id
	Stage   string // "foundation", "column", "beam"
	Err     error
}

func (e ElementError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Element, e.Err)
}

// FoundationRecord is the designed foundation of one node. Exactly one
// of Footing and Piles is set, matching the run's foundation mode.
type FoundationRecord struct {
	NodeID  string
	Footing *foundation.Footing
	Piles   *foundation.PileGroup
}

// ColumnRecord is the designed column of one node.
type ColumnRecord struct {
	NodeID string
	Design *column.Result
}

// BeamRecord is one designed typical beam.
type BeamRecord struct {
	ID        string
	Direction string // "x" or "y"
	Count     int    // lattice segments sharing this design
	Design    *beam.Result
}

// Result is the full pipeline output: plain structured records for the
// presentation layer, no formatting attached.
type Result struct {
	RunID   string
	Project *config.Project

	// Envelope is set for polygon plots, Footprint for rectangular ones.
	Envelope  *bylaw.Envelope
	Footprint *bylaw.Footprint

	// Vanished marks the legitimate empty-envelope terminal state; all
	// later stages are skipped.
	Vanished bool

	Grid *grid.Grid

	// ExternalChecks holds the per-point verdicts when the project
	// supplied its own column positions instead of generating them.
	ExternalChecks []grid.NodeCheck

	Loads       []load.Record
	Foundations []FoundationRecord
	Columns     []ColumnRecord
	Beams       []BeamRecord

	Items  []boq.LineItem
	Totals boq.Totals

	Failed []ElementError
}

// BuildableArea returns the buildable area in plot units squared.
func (r *Result) BuildableArea() float64 {
	if r.Envelope != nil {
		return r.Envelope.BuildableArea
	}
	if r.Footprint != nil {
		return r.Footprint.Area
	}
	return 0
}

// Run executes the pipeline for a validated project.
func Run(p *config.Project, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res := &Result{
		RunID:   uuid.NewString(),
		Project: p,
	}

	// Stage 1: buildable envelope.
	toM := p.Units.ToMetres()
	if poly, ok := p.Polygon(); ok {
		env, err := bylaw.ComputeEnvelope(poly, p.Bylaw.UniformSetback)
		if err != nil {
			return nil, err
		}
		res.Envelope = env
		if env.Repaired {
			logger.Warn("plot boundary was self-intersecting and has been repaired; review the repaired outline")
		}
		if env.Vanished {
			logger.Warn("setback consumed the whole plot; nothing to build")
			res.Vanished = true
			return res, nil
		}
	} else {
		sb := bylaw.Setbacks{
			Front: p.Bylaw.UniformSetback,
			Rear:  p.Bylaw.UniformSetback,
			Sides: p.Bylaw.UniformSetback,
		}
		if p.Bylaw.UseRuleset {
			plotArea := p.Plot.Width * toM * p.Plot.Depth * toM
			ruleSB := bylaw.SetbacksFor(plotArea)
			// Ruleset distances are metres; convert to plot units.
			sb = bylaw.Setbacks{
				Front: ruleSB.Front / toM,
				Rear:  ruleSB.Rear / toM,
				Sides: ruleSB.Sides / toM,
			}
		}
		fp, err := bylaw.RectangularFootprint(p.Plot.Width, p.Plot.Depth, sb)
		if err != nil {
			return nil, err
		}
		res.Footprint = fp
		if fp.Vanished() {
			logger.Warn("setbacks consumed the whole plot; nothing to build")
			res.Vanished = true
			return res, nil
		}
	}
	logger.Info("buildable envelope computed",
		"area_m2", res.BuildableArea()*toM*toM)

	// Stage 2: column grid, either generated or validated from a
	// user-supplied node list.
	var g *grid.Grid
	var err error
	region := buildableRegion(res)
	if ext := p.ExternalNodes(); len(ext) > 0 {
		var checks []grid.NodeCheck
		g, checks, err = grid.FromPoints(region, p.Grid.MaxSpan, p.Units.BoundaryTolerance(), ext)
		res.ExternalChecks = checks
		for _, c := range checks {
			if !c.InEnvelope {
				logger.Warn("supplied column lies outside the buildable envelope",
					"x", c.Position.X, "y", c.Position.Y)
			}
		}
	} else {
		g, err = grid.Generate(region, p.Grid.MaxSpan, p.Units.BoundaryTolerance())
	}
	if err != nil {
		return nil, err
	}
	res.Grid = g
	logger.Info("column grid generated",
		"columns", len(g.Nodes), "bays", fmt.Sprintf("%dx%d", g.Nx, g.Ny),
		"spacing_x", g.SpacingX, "spacing_y", g.SpacingY)

	// Stage 3: load takedown.
	lp := load.Params{
		Floors:          p.Floors,
		SlabThickness:   p.Loads.SlabThickness,
		WallHeight:      p.Loads.WallHeight,
		WallThickness:   p.Loads.WallThickness,
		ConcreteDensity: load.DefaultParams().ConcreteDensity,
		BrickDensity:    load.DefaultParams().BrickDensity,
		FloorFinish:     p.Loads.FloorFinish,
		LiveLoad:        p.Loads.LiveLoad,
		LoadFactor:      load.DefaultParams().LoadFactor,
		SpanToMetres:    toM,
		EdgeAware:       p.Loads.EdgeAware,
	}
	res.Loads, err = load.Takedown(g, lp)
	if err != nil {
		return nil, err
	}

	// Stage 4: per-node foundation and column design. Failures are
	// recorded and the run continues with the remaining elements.
	est := boq.NewEstimator(boq.Rates(p.Rates))
	designFoundations(res, est, logger)
	designColumns(res, est)
	designBeams(res, est, lp)

	// Floor slabs over the buildable area.
	slabArea := res.BuildableArea() * toM * toM
	est.AddSlab("slab", slabArea, p.Loads.SlabThickness, p.Floors)

	res.Items = est.Items()
	res.Totals = est.Totals()

	if n := len(res.Failed); n > 0 {
		logger.Warn("some elements could not be designed", "failed", n)
	}
	logger.Info("run complete", "run_id", res.RunID,
		"concrete_m3", res.Totals.ConcreteVolume,
		"steel_kg", res.Totals.SteelMass,
		"cost", res.Totals.Cost)
	return res, nil
}

func designFoundations(res *Result, est *boq.Estimator, logger *log.Logger) {
	p := res.Project
	switch p.Foundation.Type {
	case config.PadFooting:
		pad := &foundation.PadDesigner{SBC: p.Foundation.SBC, Fck: p.Materials.Fck, Fy: p.Materials.Fy}
		for _, rec := range res.Loads {
			f, err := pad.Design(rec.Factored, p.Foundation.ColumnDim)
			if err != nil {
				res.Failed = append(res.Failed, ElementError{Element: rec.NodeID, Stage: "foundation", Err: err})
				continue
			}
			res.Foundations = append(res.Foundations, FoundationRecord{NodeID: rec.NodeID, Footing: f})
			est.AddFooting(rec.NodeID, f)
		}
	case config.BoredPiles:
		pd := &foundation.PileDesigner{
			Capacity: p.Foundation.PileCapacity,
			Diameter: p.Foundation.PileDiameter,
			Depth:    p.Foundation.PileDepth,
		}
		for _, rec := range res.Loads {
			g, err := pd.Design(rec.Factored)
			if err != nil {
				res.Failed = append(res.Failed, ElementError{Element: rec.NodeID, Stage: "foundation", Err: err})
				continue
			}
			res.Foundations = append(res.Foundations, FoundationRecord{NodeID: rec.NodeID, Piles: g})
			est.AddPileGroup(rec.NodeID, g)
		}
	default:
		logger.Error("unknown foundation type", "type", p.Foundation.Type)
	}
}

// Effective length factor for columns braced against sidesway,
// IS 456 Table 28.
const bracedLengthFactor = 0.8

func designColumns(res *Result, est *boq.Estimator) {
	p := res.Project
	d := &column.Designer{Fck: p.Materials.Fck, Fy: p.Materials.Fy}
	sec := column.Section{Width: p.Column.Width, Depth: p.Column.Depth}
	effLen := bracedLengthFactor * p.Column.StoreyHeight
	for _, rec := range res.Loads {
		c, err := d.Design(rec.Factored, effLen, sec)
		if err != nil {
			res.Failed = append(res.Failed, ElementError{Element: rec.NodeID, Stage: "column", Err: err})
			continue
		}
		res.Columns = append(res.Columns, ColumnRecord{NodeID: rec.NodeID, Design: c})
		if c.Status == column.AxiallyLoadedShort {
			est.AddColumn(rec.NodeID, c, p.Column.StoreyHeight, p.Floors)
		}
	}
}

// designBeams sizes one typical beam per grid direction and prices every
// lattice segment between retained nodes with that design.
func designBeams(res *Result, est *boq.Estimator, lp load.Params) {
	p := res.Project
	d := &beam.Designer{Fck: p.Materials.Fck, Fy: p.Materials.Fy}
	g := res.Grid
	toM := lp.SpanToMetres

	unitSlab := lp.SlabThickness*lp.ConcreteDensity + lp.FloorFinish + lp.LiveLoad
	wallPerM := lp.WallThickness * lp.WallHeight * lp.BrickDensity

	sx := g.SpacingX * toM
	sy := g.SpacingY * toM
	countX, countY := segmentCounts(g)

	type typical struct {
		dir      string
		span     float64 // m
		tribPerp float64 // m, slab width drained onto the beam
		count    int
	}
	for _, tb := range []typical{
		{dir: "x", span: sx, tribPerp: sy / 2, count: countX},
		{dir: "y", span: sy, tribPerp: sx / 2, count: countY},
	} {
		if tb.count == 0 {
			continue
		}
		lineLoad := (unitSlab*tb.tribPerp + wallPerM) * lp.LoadFactor
		id := "B" + tb.dir
		b, err := d.Design(tb.span, lineLoad, p.Beam.Width)
		if err != nil {
			res.Failed = append(res.Failed, ElementError{Element: id, Stage: "beam", Err: err})
			continue
		}
		res.Beams = append(res.Beams, BeamRecord{ID: id, Direction: tb.dir, Count: tb.count, Design: b})
		for i := 0; i < tb.count*p.Floors; i++ {
			est.AddBeam(fmt.Sprintf("%s-%d", id, i), b)
		}
	}
}

// buildableRegion returns the buildable area as a polygon in plot
// coordinates, synthesizing one for rectangular footprints so generated
// grids and externally supplied nodes share the plot's frame.
func buildableRegion(res *Result) geometry.Polygon {
	if res.Envelope != nil {
		return res.Envelope.Buildable
	}
	if res.Footprint != nil {
		fp := res.Footprint
		return geometry.Polygon{Vertices: []geometry.Point{
			{X: fp.OriginX, Y: fp.OriginY},
			{X: fp.OriginX + fp.Width, Y: fp.OriginY},
			{X: fp.OriginX + fp.Width, Y: fp.OriginY + fp.Depth},
			{X: fp.OriginX, Y: fp.OriginY + fp.Depth},
		}}
	}
	return geometry.Polygon{}
}

// segmentCounts counts lattice segments whose both endpoints survived
// the region filter, per direction.
func segmentCounts(g *grid.Grid) (countX, countY int) {
	have := make(map[[2]int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		have[[2]int{n.Col, n.Row}] = true
	}
	for _, n := range g.Nodes {
		if have[[2]int{n.Col + 1, n.Row}] {
			countX++
		}
		if have[[2]int{n.Col, n.Row + 1}] {
			countY++
		}
	}
	return countX, countY
}
