package grid

import (
	"fmt"
	"math"

	"github.com/civildesignlab/gorcplan/internal/geometry"
)

// FromPoints builds a grid from an externally supplied column list,
// bypassing lattice generation. Spacing and bay counts are still derived
// from the region's bounding box and maxSpan so that tributary areas
// remain well defined; each point is assigned the nearest lattice index
// for identification and classification.
//
// Points outside the region (beyond tol) are flagged in the returned
// checks and excluded from the grid; they are never silently accepted.
func FromPoints(region geometry.Polygon, maxSpan, tol float64, pts []geometry.Point) (*Grid, []NodeCheck, error) {
	if maxSpan <= 0 {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSpan, maxSpan)
	}
	if err := region.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNoBuildableArea, err)
	}
	if len(pts) == 0 {
		return nil, nil, fmt.Errorf("%w: empty node list", ErrNoBuildableArea)
	}

	b := region.BoundingBox()
	nx := int(math.Ceil(b.Width() / maxSpan))
	ny := int(math.Ceil(b.Height() / maxSpan))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}

	g := &Grid{
		SpacingX: b.Width() / float64(nx),
		SpacingY: b.Height() / float64(ny),
		Nx:       nx,
		Ny:       ny,
		Bounds:   b,
	}

	checks := ValidateNodes(region, pts, tol)
	// Supplied points may round to the same lattice index; ids still have
	// to stay unique so failure reports name one column each.
	occupied := make(map[[2]int]int)
	for _, c := range checks {
		if !c.InEnvelope {
			continue
		}
		col := int(math.Round((c.Position.X - b.MinX) / g.SpacingX))
		row := int(math.Round((c.Position.Y - b.MinY) / g.SpacingY))
		occupied[[2]int{col, row}]++
		id := NodeID(col, row)
		if n := occupied[[2]int{col, row}]; n > 1 {
			id = fmt.Sprintf("%s%c", id, 'a'+rune(n-1))
		}
		g.Nodes = append(g.Nodes, Node{
			ID:       id,
			Position: c.Position,
			Col:      col,
			Row:      row,
			Class:    classify(col, row, nx, ny),
		})
	}
	if len(g.Nodes) == 0 {
		return nil, checks, fmt.Errorf("%w: every supplied node lies outside the envelope", ErrNoBuildableArea)
	}
	return g, checks, nil
}
