// Package boq accumulates concrete volume, steel mass, and cost across
// designed elements into a bill of quantities. Totals are maintained as
// running sums: adding an element only ever increases them, and querying
// never mutates state.
package boq

import (
	"github.com/civildesignlab/gorcplan/internal/beam"
	"github.com/civildesignlab/gorcplan/internal/column"
	"github.com/civildesignlab/gorcplan/internal/foundation"
	"github.com/civildesignlab/gorcplan/internal/is456"
)

// Rates holds unit market rates in the caller's currency. No currency
// symbol is attached anywhere; formatting belongs to the presentation
// layer.
type Rates struct {
	Concrete   float64 // per m³
	Steel      float64 // per kg
	PileBoring float64 // per metre of pile, boring + concreting
}

// DefaultRates are indicative Indian market rates (INR).
func DefaultRates() Rates {
	return Rates{Concrete: 5500, Steel: 75, PileBoring: 1800}
}

// Nominal steel ratio (by volume) assumed for elements whose
// reinforcement is not itemised: pile caps and slabs.
const nominalSteelRatio = 0.01

// LineItem is one priced element.
type LineItem struct {
	Element string // element id, e.g. "C1-2"
	Kind    string // "footing", "pile-group", "column", "beam", "slab"

	ConcreteVolume float64 // m³
	SteelMass      float64 // kg
	Cost           float64
}

// Totals are the running sums over all added elements.
type Totals struct {
	ConcreteVolume float64 // m³
	SteelMass      float64 // kg
	Cost           float64
}

// Estimator owns the single mutable totals structure of a run.
type Estimator struct {
	rates  Rates
	items  []LineItem
	totals Totals
}

// NewEstimator creates an empty estimator with the given rates.
func NewEstimator(rates Rates) *Estimator {
	return &Estimator{rates: rates}
}

// add prices an element and folds it into the running totals.
func (e *Estimator) add(element, kind string, vol, mass, extraCost float64) {
	cost := vol*e.rates.Concrete + mass*e.rates.Steel + extraCost
	e.items = append(e.items, LineItem{
		Element:        element,
		Kind:           kind,
		ConcreteVolume: vol,
		SteelMass:      mass,
		Cost:           cost,
	})
	e.totals.ConcreteVolume += vol
	e.totals.SteelMass += mass
	e.totals.Cost += cost
}

// AddFooting adds a square pad footing. Steel runs in both directions at
// the bottom mat.
func (e *Estimator) AddFooting(element string, f *foundation.Footing) {
	vol := f.Side * f.Side * f.GrossDepth / 1000
	steelVol := f.AstProvided / 1e6 * f.Side * 2
	e.add(element, "footing", vol, steelVol*is456.SteelDensity, 0)
}

// AddPileGroup adds a pile cap plus the boring/concreting of its piles.
// Cap reinforcement is taken at a nominal ratio; pile shaft concrete is
// covered by the per-metre boring rate.
func (e *Estimator) AddPileGroup(element string, g *foundation.PileGroup) {
	capVol := g.CapSide * g.CapSide * g.CapDepth
	mass := capVol * nominalSteelRatio * is456.SteelDensity
	e.add(element, "pile-group", capVol, mass, g.BoringLength*e.rates.PileBoring)
}

// AddColumn adds a column over its full height. height in m per floor.
func (e *Estimator) AddColumn(element string, c *column.Result, height float64, floors int) {
	length := height * float64(floors)
	vol := c.Section.Width / 1000 * c.Section.Depth / 1000 * length
	steelVol := c.AscProvided / 1e6 * length
	e.add(element, "column", vol, steelVol*is456.SteelDensity, 0)
}

// AddBeam adds one beam over its span.
func (e *Estimator) AddBeam(element string, b *beam.Result) {
	vol := b.Width / 1000 * b.GrossDepth / 1000 * b.Span
	steelVol := b.AstProvided / 1e6 * b.Span
	e.add(element, "beam", vol, steelVol*is456.SteelDensity, 0)
}

// AddSlab adds the floor slabs over the buildable area. area in m²,
// thickness in m.
func (e *Estimator) AddSlab(element string, area, thickness float64, floors int) {
	vol := area * thickness * float64(floors)
	mass := vol * nominalSteelRatio * is456.SteelDensity
	e.add(element, "slab", vol, mass, 0)
}

// Items returns the recorded line items in insertion order.
func (e *Estimator) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// Totals reports the running sums. Repeated calls return the same value
// until another element is added.
func (e *Estimator) Totals() Totals {
	return e.totals
}
