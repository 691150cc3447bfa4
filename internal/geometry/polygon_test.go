package geometry

import (
	"math"
	"testing"
)

func rect(w, h float64) Polygon {
	return Polygon{Vertices: []Point{
		{0, 0}, {w, 0}, {w, h}, {0, h},
	}}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestArea(t *testing.T) {
	tests := []struct {
		name string
		poly Polygon
		want float64
	}{
		{"unit square", rect(1, 1), 1},
		{"plot 9000x12000", rect(9000, 12000), 108e6},
		{"triangle", Polygon{Vertices: []Point{{0, 0}, {4, 0}, {0, 3}}}, 6},
		{"clockwise square", Polygon{Vertices: []Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}}}, 4},
		{"degenerate line", Polygon{Vertices: []Point{{0, 0}, {1, 1}}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.Area(); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	c := rect(6, 4).Centroid()
	if !almostEqual(c.X, 3, 1e-9) || !almostEqual(c.Y, 2, 1e-9) {
		t.Errorf("Centroid() = %+v, want (3, 2)", c)
	}
}

func TestValidate(t *testing.T) {
	if err := rect(1, 1).Validate(); err != nil {
		t.Errorf("valid square rejected: %v", err)
	}
	if err := (Polygon{Vertices: []Point{{0, 0}, {1, 1}}}).Validate(); err == nil {
		t.Error("2-vertex polygon accepted")
	}
	collinear := Polygon{Vertices: []Point{{0, 0}, {1, 0}, {2, 0}}}
	if err := collinear.Validate(); err == nil {
		t.Error("zero-area polygon accepted")
	}
}

func TestContains(t *testing.T) {
	poly := rect(10, 10)
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Point{5, 5}, true},
		{"outside right", Point{11, 5}, false},
		{"outside below", Point{5, -1}, false},
		{"near corner inside", Point{0.01, 0.01}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := poly.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestContainsWithTolerance(t *testing.T) {
	poly := rect(6000, 9000)

	// Lattice corner sitting exactly on the boundary must survive with the
	// 10-unit tolerance even if the strict ray cast excludes it.
	if !poly.ContainsWithTolerance(Point{0, 0}, 10) {
		t.Error("boundary corner dropped despite tolerance")
	}
	if !poly.ContainsWithTolerance(Point{6000, 4500}, 10) {
		t.Error("boundary edge point dropped despite tolerance")
	}
	if poly.ContainsWithTolerance(Point{6020, 4500}, 10) {
		t.Error("point 20 units outside accepted")
	}
}

func TestDistanceToBoundary(t *testing.T) {
	poly := rect(10, 10)
	if d := poly.DistanceToBoundary(Point{5, 5}); !almostEqual(d, 5, 1e-9) {
		t.Errorf("center distance = %v, want 5", d)
	}
	if d := poly.DistanceToBoundary(Point{-3, 5}); !almostEqual(d, 3, 1e-9) {
		t.Errorf("outside distance = %v, want 3", d)
	}
}

func TestIsSimple(t *testing.T) {
	if !rect(4, 4).IsSimple() {
		t.Error("square reported non-simple")
	}
	bowtie := Polygon{Vertices: []Point{{0, 0}, {4, 4}, {4, 0}, {0, 4}}}
	if bowtie.IsSimple() {
		t.Error("bowtie reported simple")
	}
}

func TestRepair(t *testing.T) {
	t.Run("simple polygon untouched", func(t *testing.T) {
		got, repaired, err := Repair(rect(5, 5), 1e-9)
		if err != nil {
			t.Fatalf("Repair() error: %v", err)
		}
		if repaired {
			t.Error("simple polygon flagged as repaired")
		}
		if !almostEqual(got.Area(), 25, 1e-9) {
			t.Errorf("area changed: %v", got.Area())
		}
	})

	t.Run("bowtie repaired to hull", func(t *testing.T) {
		bowtie := Polygon{Vertices: []Point{{0, 0}, {4, 4}, {4, 0}, {0, 4}}}
		got, repaired, err := Repair(bowtie, 1e-9)
		if err != nil {
			t.Fatalf("Repair() error: %v", err)
		}
		if !repaired {
			t.Error("bowtie not flagged as repaired")
		}
		if !got.IsSimple() {
			t.Error("repair produced a non-simple ring")
		}
		if !almostEqual(got.Area(), 16, 1e-9) {
			t.Errorf("hull area = %v, want 16", got.Area())
		}
	})

	t.Run("zero-shoelace bowtie still repaired", func(t *testing.T) {
		// The symmetric crossing cancels the shoelace sum to exactly
		// zero; the zero area must route to the hull, not reject the
		// input as degenerate.
		bowtie := Polygon{Vertices: []Point{{0, 0}, {8000, 8000}, {8000, 0}, {0, 8000}}}
		got, repaired, err := Repair(bowtie, 1e-9)
		if err != nil {
			t.Fatalf("Repair() error: %v", err)
		}
		if !repaired {
			t.Error("bowtie not flagged as repaired")
		}
		if want := 8000.0 * 8000.0; !almostEqual(got.Area(), want, 1e-6) {
			t.Errorf("hull area = %v, want %v", got.Area(), want)
		}
	})

	t.Run("collinear input fails", func(t *testing.T) {
		line := Polygon{Vertices: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}}
		if _, _, err := Repair(line, 1e-9); err == nil {
			t.Error("collinear ring accepted")
		}
	})

	t.Run("closing vertex dropped", func(t *testing.T) {
		closed := Polygon{Vertices: []Point{{0, 0}, {5, 0}, {5, 5}, {0, 5}, {0, 0}}}
		got, _, err := Repair(closed, 1e-9)
		if err != nil {
			t.Fatalf("Repair() error: %v", err)
		}
		if len(got.Vertices) != 4 {
			t.Errorf("got %d vertices, want 4", len(got.Vertices))
		}
	})
}

func TestOffsetInward(t *testing.T) {
	t.Run("rectangle shrinks by setback on each side", func(t *testing.T) {
		got, empty := rect(9000, 12000).OffsetInward(1500)
		if empty {
			t.Fatal("offset vanished unexpectedly")
		}
		if want := 6000.0 * 9000.0; !almostEqual(got.Area(), want, 1) {
			t.Errorf("area = %v, want %v", got.Area(), want)
		}
		b := got.BoundingBox()
		if !almostEqual(b.Width(), 6000, 1e-6) || !almostEqual(b.Height(), 9000, 1e-6) {
			t.Errorf("bounds = %v x %v, want 6000 x 9000", b.Width(), b.Height())
		}
	})

	t.Run("zero offset is identity", func(t *testing.T) {
		got, empty := rect(10, 10).OffsetInward(0)
		if empty || !almostEqual(got.Area(), 100, 1e-9) {
			t.Errorf("zero offset changed polygon: area=%v empty=%v", got.Area(), empty)
		}
	})

	t.Run("oversized setback vanishes", func(t *testing.T) {
		if _, empty := rect(10, 10).OffsetInward(6); !empty {
			t.Error("offset past inradius did not vanish")
		}
	})

	t.Run("setback past half the width vanishes", func(t *testing.T) {
		// The miter intersections form a simple, correctly-sized ring
		// with the X axis inverted; only the orientation and
		// boundary-distance checks expose the collapse.
		if _, empty := rect(9000, 12000).OffsetInward(5000); !empty {
			t.Error("offset past half the width did not vanish")
		}
	})

	t.Run("collapsed limb of a concave ring vanishes", func(t *testing.T) {
		l := Polygon{Vertices: []Point{
			{0, 0}, {12, 0}, {12, 6}, {6, 6}, {6, 14}, {0, 14},
		}}
		// Both limbs are 6 wide, so an offset of 3.5 leaves nothing, but
		// the miter construction still yields a simple hexagon whose
		// vertices sit closer than 3.5 to the boundary.
		if _, empty := l.OffsetInward(3.5); !empty {
			t.Error("offset past the limb half-width did not vanish")
		}
	})

	t.Run("offset vertices keep the setback distance", func(t *testing.T) {
		poly := Polygon{Vertices: []Point{{0, 0}, {9000, 0}, {9000, 12000}, {3000, 12000}, {0, 8000}}}
		got, empty := poly.OffsetInward(1000)
		if empty {
			t.Fatal("offset vanished unexpectedly")
		}
		for _, v := range got.Vertices {
			if d := poly.DistanceToBoundary(v); d < 1000-1e-6 {
				t.Errorf("vertex (%v,%v) only %v from boundary", v.X, v.Y, d)
			}
		}
	})

	t.Run("area strictly decreases with setback", func(t *testing.T) {
		poly := Polygon{Vertices: []Point{{0, 0}, {9000, 0}, {9000, 12000}, {3000, 12000}, {0, 8000}}}
		prev := poly.Area()
		for _, s := range []float64{500, 1000, 1500, 2000} {
			got, empty := poly.OffsetInward(s)
			if empty {
				break
			}
			if got.Area() >= prev {
				t.Fatalf("area not decreasing at setback %v: %v >= %v", s, got.Area(), prev)
			}
			prev = got.Area()
		}
	})

	t.Run("clockwise ring offsets inward too", func(t *testing.T) {
		cw := Polygon{Vertices: []Point{{0, 0}, {0, 12}, {9, 12}, {9, 0}}}
		got, empty := cw.OffsetInward(1.5)
		if empty {
			t.Fatal("offset vanished unexpectedly")
		}
		if want := 6.0 * 9.0; !almostEqual(got.Area(), want, 1e-6) {
			t.Errorf("area = %v, want %v", got.Area(), want)
		}
	})
}
