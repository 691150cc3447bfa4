package geometry

import "math"

// OffsetInward shrinks a simple polygon by a uniform distance d, the
// geometric equivalent of a negative buffer. Each edge is translated
// toward the interior and consecutive offset edges are re-intersected
// (miter joins).
//
// The second return value reports whether the offset region vanished:
// once d reaches roughly the inradius of the polygon the shrunken ring
// collapses, which is a legitimate outcome, not an error. For strongly
// concave rings the miter construction is best-effort; a collapsed or
// self-intersecting result is likewise reported as vanished.
func (p Polygon) OffsetInward(d float64) (Polygon, bool) {
	if d < 0 {
		d = 0
	}
	if d == 0 {
		return p, false
	}
	n := len(p.Vertices)
	if n < 3 {
		return Polygon{}, true
	}

	// Work on a counter-clockwise ring so the interior is to the left of
	// every directed edge.
	ring := p.Vertices
	if p.SignedArea() < 0 {
		ring = make([]Point, n)
		for i, v := range p.Vertices {
			ring[n-1-i] = v
		}
	}

	// Translate every edge inward by d along its left normal.
	type line struct {
		p Point // a point on the offset line
		d Point // direction vector
	}
	lines := make([]line, n)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			return Polygon{}, true
		}
		// Left normal of (dx, dy) is (-dy, dx).
		nx, ny := -dy/length, dx/length
		lines[i] = line{
			p: Point{X: a.X + nx*d, Y: a.Y + ny*d},
			d: Point{X: dx, Y: dy},
		}
	}

	// New vertex i is the intersection of offset edges i-1 and i.
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		prev := lines[(i+n-1)%n]
		cur := lines[i]
		pt, ok := intersectLines(prev.p, prev.d, cur.p, cur.d)
		if !ok {
			// Parallel consecutive edges: the translated edges share the
			// same line, so either endpoint works.
			pt = cur.p
		}
		out = append(out, pt)
	}

	offset := Polygon{Vertices: out}.Dedupe(1e-9)
	if len(offset.Vertices) < 3 {
		return Polygon{}, true
	}
	// A collapsed ring can re-intersect into a simple polygon with its
	// traversal reversed, so the signed area must keep the working ring's
	// counter-clockwise orientation.
	area := offset.SignedArea()
	if area <= 0 || area >= p.Area() || !offset.IsSimple() {
		return Polygon{}, true
	}
	// Every vertex of a true inward offset sits at least d from the
	// original boundary. Miter intersections of a collapsed limb land
	// closer even when the ring stays simple and correctly oriented.
	tol := d * 1e-9
	for _, v := range offset.Vertices {
		if !p.ContainsWithTolerance(v, tol) || p.DistanceToBoundary(v) < d-tol {
			return Polygon{}, true
		}
	}
	return offset, false
}

// intersectLines intersects two infinite lines given as point+direction.
// Returns ok=false for (near-)parallel lines.
func intersectLines(p1, d1, p2, d2 Point) (Point, bool) {
	denom := d1.X*d2.Y - d1.Y*d2.X
	scale := math.Hypot(d1.X, d1.Y) * math.Hypot(d2.X, d2.Y)
	if scale == 0 || math.Abs(denom) < 1e-12*scale {
		return Point{}, false
	}
	t := ((p2.X-p1.X)*d2.Y - (p2.Y-p1.Y)*d2.X) / denom
	return Point{X: p1.X + t*d1.X, Y: p1.Y + t*d1.Y}, true
}
