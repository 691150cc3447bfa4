// Package bylaw reduces a plot boundary to the legally buildable
// envelope by applying municipal setback rules.
package bylaw

import (
	"errors"
	"fmt"

	"github.com/civildesignlab/gorcplan/internal/geometry"
)

// ErrInvalidGeometry reports a plot polygon that cannot be used: fewer
// than 3 vertices, zero area, or a self-intersection that repair could
// not resolve.
var ErrInvalidGeometry = errors.New("invalid plot geometry")

// ErrInvalidSetback reports a negative setback distance.
var ErrInvalidSetback = errors.New("setback must be non-negative")

// Envelope is the result of applying a uniform setback to a plot.
// Vanished is a legitimate terminal state, not an error: large setbacks
// on small plots leave nothing to build on.
type Envelope struct {
	Plot      geometry.Polygon // repaired plot boundary
	Buildable geometry.Polygon // empty when Vanished

	PlotArea      float64
	BuildableArea float64

	Setback  float64
	Repaired bool // plot boundary was self-intersecting and repaired
	Vanished bool // setback consumed the whole plot
}

// dedupeEps collapses vertices closer than this fraction of the plot's
// bounding diagonal.
const dedupeEpsRatio = 1e-9

// ComputeEnvelope validates and, if needed, repairs the plot polygon,
// then shrinks it inward by the uniform setback distance. Setback and
// coordinates must share one unit.
func ComputeEnvelope(plot geometry.Polygon, setback float64) (*Envelope, error) {
	if setback < 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidSetback, setback)
	}
	if len(plot.Vertices) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 vertices, got %d", ErrInvalidGeometry, len(plot.Vertices))
	}

	b := plot.BoundingBox()
	eps := (b.Width() + b.Height()) * dedupeEpsRatio

	repaired, wasRepaired, err := geometry.Repair(plot, eps)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	// Repair is best-effort; re-validate before trusting it.
	if err := repaired.Validate(); err != nil || !repaired.IsSimple() {
		return nil, fmt.Errorf("%w: repair did not produce a simple polygon", ErrInvalidGeometry)
	}

	env := &Envelope{
		Plot:     repaired,
		PlotArea: repaired.Area(),
		Setback:  setback,
		Repaired: wasRepaired,
	}

	buildable, vanished := repaired.OffsetInward(setback)
	if vanished {
		env.Vanished = true
		return env, nil
	}
	env.Buildable = buildable
	env.BuildableArea = buildable.Area()
	return env, nil
}
