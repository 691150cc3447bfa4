// Package grid partitions a buildable region into an equal-span column
// grid. Bay counts are chosen as ceil(extent/maxSpan) so that every span
// stays within the engineering limit while all bays in a direction remain
// equal, which keeps beam depths uniform across the layout.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/civildesignlab/gorcplan/internal/geometry"
)

// ErrNoBuildableArea is returned when grid generation is attempted on an
// empty or degenerate region. Callers that received a vanished envelope
// must branch before reaching the generator.
var ErrNoBuildableArea = errors.New("no buildable area")

// ErrInvalidSpan is returned for a non-positive maximum span.
var ErrInvalidSpan = errors.New("max span must be positive")

// NodeClass categorises a node by its position on the bounding-box
// lattice. Load takedown uses it for edge-aware tributary factoring.
type NodeClass int

const (
	Interior NodeClass = iota
	Edge
	Corner
)

func (c NodeClass) String() string {
	switch c {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	default:
		return "interior"
	}
}

// Node is an accepted column location.
type Node struct {
	ID       string
	Position geometry.Point
	Col      int // lattice index along X
	Row      int // lattice index along Y
	Class    NodeClass

	// StairBoundary marks the node anchoring the staircase bay.
	StairBoundary bool
}

// Grid is the generated column layout.
type Grid struct {
	Nodes    []Node
	SpacingX float64
	SpacingY float64
	Nx       int // bay count along X
	Ny       int // bay count along Y
	Bounds   geometry.Bounds

	// StaircaseBay is the ID of the node anchoring the designated
	// staircase bay (first column line, mid-depth), or "" when that
	// lattice point was filtered out by the region boundary.
	StaircaseBay string
}

// NodeID encodes a lattice position as a stable identifier.
func NodeID(col, row int) string {
	return fmt.Sprintf("C%d-%d", col, row)
}

// Generate lays out the column grid for a polygonal region. Lattice
// points are candidates over the region's bounding box; a candidate is
// kept when it lies inside the region or within tol of its boundary.
// tol is in the same unit as the region coordinates (10 for mm-based
// plots, 0.01 for metre-based ones).
func Generate(region geometry.Polygon, maxSpan, tol float64) (*Grid, error) {
	if maxSpan <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpan, maxSpan)
	}
	if err := region.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoBuildableArea, err)
	}
	return generate(region.BoundingBox(), maxSpan, func(pt geometry.Point) bool {
		return region.ContainsWithTolerance(pt, tol)
	})
}

// GenerateRect lays out the grid over a plain width × depth rectangle
// with no polygon membership filter. Used for the rectangular-footprint
// path where the buildable region is an axis-aligned rectangle by
// construction.
func GenerateRect(width, depth, maxSpan float64) (*Grid, error) {
	if maxSpan <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpan, maxSpan)
	}
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %v x %v", ErrNoBuildableArea, width, depth)
	}
	b := geometry.Bounds{MinX: 0, MinY: 0, MaxX: width, MaxY: depth}
	return generate(b, maxSpan, func(geometry.Point) bool { return true })
}

func generate(b geometry.Bounds, maxSpan float64, keep func(geometry.Point) bool) (*Grid, error) {
	w, d := b.Width(), b.Height()
	if w <= 0 || d <= 0 {
		return nil, fmt.Errorf("%w: bounding box %v x %v", ErrNoBuildableArea, w, d)
	}

	nx := int(math.Ceil(w / maxSpan))
	ny := int(math.Ceil(d / maxSpan))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}

	g := &Grid{
		SpacingX: w / float64(nx),
		SpacingY: d / float64(ny),
		Nx:       nx,
		Ny:       ny,
		Bounds:   b,
	}

	stairID := NodeID(0, ny/2)
	for i := 0; i <= nx; i++ {
		for j := 0; j <= ny; j++ {
			pt := geometry.Point{
				X: b.MinX + float64(i)*g.SpacingX,
				Y: b.MinY + float64(j)*g.SpacingY,
			}
			if !keep(pt) {
				continue
			}
			n := Node{
				ID:       NodeID(i, j),
				Position: pt,
				Col:      i,
				Row:      j,
				Class:    classify(i, j, nx, ny),
			}
			if n.ID == stairID {
				n.StairBoundary = true
				g.StaircaseBay = stairID
			}
			g.Nodes = append(g.Nodes, n)
		}
	}

	if len(g.Nodes) == 0 {
		return nil, fmt.Errorf("%w: all lattice points fall outside the region", ErrNoBuildableArea)
	}
	return g, nil
}

// classify compares lattice indices against the bounding-box extremes.
func classify(i, j, nx, ny int) NodeClass {
	onX := i == 0 || i == nx
	onY := j == 0 || j == ny
	switch {
	case onX && onY:
		return Corner
	case onX || onY:
		return Edge
	default:
		return Interior
	}
}

// NodeCheck is the validation verdict for one externally supplied node.
type NodeCheck struct {
	Position   geometry.Point
	InEnvelope bool
}

// ValidateNodes checks an externally supplied column list against the
// buildable region with the same boundary tolerance the generator uses.
// Out-of-envelope nodes are flagged, never silently accepted or dropped.
func ValidateNodes(region geometry.Polygon, pts []geometry.Point, tol float64) []NodeCheck {
	checks := make([]NodeCheck, len(pts))
	for i, pt := range pts {
		checks[i] = NodeCheck{
			Position:   pt,
			InEnvelope: region.ContainsWithTolerance(pt, tol),
		}
	}
	return checks
}
