// Package geometry provides the 2D polygon primitives used by the
// envelope and grid engines: area and centroid by the shoelace formula,
// point membership with boundary tolerance, simplicity checks with
// best-effort repair, and uniform inward offsetting.
//
// All operations are unit-agnostic: coordinates are plain float64 values
// in whatever unit the caller declared (millimetres or metres), and
// tolerances are expressed in that same unit.
package geometry

import (
	"fmt"
	"math"
	"sort"
)

// Point represents a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Polygon is an ordered ring of vertices. The ring is implicitly closed;
// the first vertex must not be repeated at the end.
type Polygon struct {
	Vertices []Point
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the X extent of the box.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the Y extent of the box.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ErrDegenerate is returned by Validate for rings that cannot describe a
// region: fewer than 3 distinct vertices or zero enclosed area.
type ErrDegenerate struct {
	msg string
}

func (e *ErrDegenerate) Error() string { return e.msg }

// Validate checks that the polygon has at least 3 distinct vertices and a
// positive enclosed area.
func (p Polygon) Validate() error {
	if len(p.Vertices) < 3 {
		return &ErrDegenerate{fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(p.Vertices))}
	}
	if p.Area() <= 0 {
		return &ErrDegenerate{"polygon encloses no area"}
	}
	return nil
}

// SignedArea computes the shoelace sum. Positive for counter-clockwise
// vertex order, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}
	return sum / 2
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area centroid of the polygon. For degenerate
// polygons it returns the mean of the vertices.
func (p Polygon) Centroid() Point {
	n := len(p.Vertices)
	signed := p.SignedArea()
	if n == 0 {
		return Point{}
	}
	if signed == 0 {
		var c Point
		for _, v := range p.Vertices {
			c.X += v.X
			c.Y += v.Y
		}
		c.X /= float64(n)
		c.Y /= float64(n)
		return c
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	return Point{X: cx / (6 * signed), Y: cy / (6 * signed)}
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
func (p Polygon) BoundingBox() Bounds {
	if len(p.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: p.Vertices[0].X, MaxX: p.Vertices[0].X,
		MinY: p.Vertices[0].Y, MaxY: p.Vertices[0].Y,
	}
	for _, v := range p.Vertices {
		b.MinX = math.Min(b.MinX, v.X)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b
}

// Contains reports whether pt lies strictly inside the polygon, using the
// even-odd ray casting rule. Points exactly on an edge may land on either
// side; use ContainsWithTolerance when boundary points matter.
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) {
			xCross := vi.X + (pt.Y-vi.Y)/(vj.Y-vi.Y)*(vj.X-vi.X)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// DistanceToBoundary returns the minimum distance from pt to any edge of
// the polygon.
func (p Polygon) DistanceToBoundary(pt Point) float64 {
	n := len(p.Vertices)
	if n == 0 {
		return math.Inf(1)
	}
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := distancePointSegment(pt, p.Vertices[i], p.Vertices[j])
		if d < min {
			min = d
		}
	}
	return min
}

// ContainsWithTolerance reports whether pt is inside the polygon or within
// tol of its boundary. The tolerance keeps legitimate boundary points from
// being dropped by floating-point noise.
func (p Polygon) ContainsWithTolerance(pt Point, tol float64) bool {
	if p.Contains(pt) {
		return true
	}
	return p.DistanceToBoundary(pt) <= tol
}

// distancePointSegment returns the distance from pt to the segment a-b.
func distancePointSegment(pt, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(pt.X-a.X, pt.Y-a.Y)
	}
	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	px := a.X + t*dx
	py := a.Y + t*dy
	return math.Hypot(pt.X-px, pt.Y-py)
}

// IsSimple reports whether no two non-adjacent edges intersect. Adjacent
// edges sharing a vertex are skipped.
func (p Polygon) IsSimple() bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := p.Vertices[i]
		a2 := p.Vertices[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip the edge itself and the two edges sharing a vertex with it.
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			b1 := p.Vertices[j]
			b2 := p.Vertices[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// segmentsIntersect reports proper intersection of segments a1-a2 and b1-b2.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Dedupe removes consecutive duplicate vertices (within eps) including a
// repeated closing vertex.
func (p Polygon) Dedupe(eps float64) Polygon {
	if len(p.Vertices) == 0 {
		return p
	}
	out := make([]Point, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		if len(out) > 0 {
			last := out[len(out)-1]
			if math.Hypot(v.X-last.X, v.Y-last.Y) <= eps {
				continue
			}
		}
		out = append(out, v)
	}
	// Drop a closing vertex equal to the first.
	if len(out) > 1 {
		first, last := out[0], out[len(out)-1]
		if math.Hypot(first.X-last.X, first.Y-last.Y) <= eps {
			out = out[:len(out)-1]
		}
	}
	return Polygon{Vertices: out}
}

// Repair returns a best-effort simple polygon for a possibly
// self-intersecting input, along with a flag reporting whether any repair
// was applied. Self-intersecting and zero-area rings are replaced by the
// convex hull of their vertices (a symmetric bowtie's shoelace terms
// cancel to zero, so zero area alone must not reject the input before the
// hull is tried). The result is re-validated; inputs whose hull still
// degenerates (for example all vertices collinear) yield an error.
func Repair(p Polygon, eps float64) (Polygon, bool, error) {
	clean := p.Dedupe(eps)
	if len(clean.Vertices) < 3 {
		return Polygon{}, false, &ErrDegenerate{fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(clean.Vertices))}
	}
	if clean.IsSimple() && clean.Area() > 0 {
		repaired := len(clean.Vertices) != len(p.Vertices)
		return clean, repaired, nil
	}

	hull := convexHull(clean.Vertices)
	if err := hull.Validate(); err != nil {
		return Polygon{}, true, err
	}
	if !hull.IsSimple() {
		return Polygon{}, true, &ErrDegenerate{"polygon could not be repaired to a simple ring"}
	}
	return hull, true, nil
}

// convexHull computes the convex hull using Andrew's monotone chain,
// returned in counter-clockwise order.
func convexHull(pts []Point) Polygon {
	if len(pts) < 3 {
		return Polygon{Vertices: pts}
	}
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var lower, upper []Point
	for _, pt := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], pt) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, pt)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		pt := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], pt) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, pt)
	}
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return Polygon{Vertices: hull}
}
