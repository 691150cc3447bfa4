package bylaw

import (
	"errors"
	"math"
	"testing"

	"github.com/civildesignlab/gorcplan/internal/geometry"
)

func rectPlot(w, d float64) geometry.Polygon {
	return geometry.Polygon{Vertices: []geometry.Point{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: d}, {X: 0, Y: d},
	}}
}

func TestComputeEnvelopeRectangular(t *testing.T) {
	// The reference case: 9000x12000 mm plot, 1500 mm uniform setback.
	env, err := ComputeEnvelope(rectPlot(9000, 12000), 1500)
	if err != nil {
		t.Fatalf("ComputeEnvelope() error: %v", err)
	}
	if env.Vanished {
		t.Fatal("envelope vanished unexpectedly")
	}
	if env.Repaired {
		t.Error("simple plot flagged as repaired")
	}
	if math.Abs(env.PlotArea-108e6) > 1 {
		t.Errorf("plot area = %v, want 108e6", env.PlotArea)
	}
	if want := 6000.0 * 9000.0; math.Abs(env.BuildableArea-want) > 1 {
		t.Errorf("buildable area = %v, want %v", env.BuildableArea, want)
	}
	b := env.Buildable.BoundingBox()
	if math.Abs(b.Width()-6000) > 1e-6 || math.Abs(b.Height()-9000) > 1e-6 {
		t.Errorf("buildable bounds %v x %v, want 6000 x 9000", b.Width(), b.Height())
	}
}

func TestComputeEnvelopeVanishes(t *testing.T) {
	env, err := ComputeEnvelope(rectPlot(9000, 12000), 5000)
	if err != nil {
		t.Fatalf("vanished envelope must not be an error, got: %v", err)
	}
	if !env.Vanished {
		t.Error("oversized setback did not vanish the envelope")
	}
	if env.BuildableArea != 0 {
		t.Errorf("vanished envelope has area %v", env.BuildableArea)
	}
}

func TestComputeEnvelopeMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for _, sb := range []float64{0, 500, 1000, 2000, 3000} {
		env, err := ComputeEnvelope(rectPlot(9000, 12000), sb)
		if err != nil {
			t.Fatalf("setback %v: %v", sb, err)
		}
		if env.Vanished {
			break
		}
		if env.BuildableArea > prev {
			t.Fatalf("area increased with setback %v: %v > %v", sb, env.BuildableArea, prev)
		}
		prev = env.BuildableArea
	}
}

func TestComputeEnvelopeInvalidInput(t *testing.T) {
	t.Run("too few vertices", func(t *testing.T) {
		twoPt := geometry.Polygon{Vertices: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}
		if _, err := ComputeEnvelope(twoPt, 100); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("got %v, want ErrInvalidGeometry", err)
		}
	})

	t.Run("negative setback", func(t *testing.T) {
		if _, err := ComputeEnvelope(rectPlot(10, 10), -1); !errors.Is(err, ErrInvalidSetback) {
			t.Errorf("got %v, want ErrInvalidSetback", err)
		}
	})

	t.Run("zero area plot", func(t *testing.T) {
		line := geometry.Polygon{Vertices: []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 9, Y: 0}}}
		if _, err := ComputeEnvelope(line, 1); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("got %v, want ErrInvalidGeometry", err)
		}
	})
}

func TestComputeEnvelopeRepairsSelfIntersection(t *testing.T) {
	bowtie := geometry.Polygon{Vertices: []geometry.Point{
		{X: 0, Y: 0}, {X: 8000, Y: 8000}, {X: 8000, Y: 0}, {X: 0, Y: 8000},
	}}
	env, err := ComputeEnvelope(bowtie, 500)
	if err != nil {
		t.Fatalf("ComputeEnvelope() error: %v", err)
	}
	if !env.Repaired {
		t.Error("self-intersecting plot not flagged as repaired")
	}
	if !env.Plot.IsSimple() {
		t.Error("repaired plot is not simple")
	}
	if !env.Vanished && env.BuildableArea >= env.PlotArea {
		t.Error("buildable area not smaller than plot area")
	}
}

func TestSetbacksFor(t *testing.T) {
	small := SetbacksFor(200)
	if small.Front != 3.0 || small.Rear != 2.0 || small.Sides != 1.5 {
		t.Errorf("small plot setbacks = %+v", small)
	}
	large := SetbacksFor(400)
	if large.Front != 4.5 || large.Rear != 3.0 || large.Sides != 2.0 {
		t.Errorf("large plot setbacks = %+v", large)
	}
}

func TestRectangularFootprint(t *testing.T) {
	// 12 x 18 m plot, 216 m² -> small band (3.0/2.0/1.5).
	fp, err := RectangularFootprint(12, 18, SetbacksFor(12*18))
	if err != nil {
		t.Fatalf("RectangularFootprint() error: %v", err)
	}
	if math.Abs(fp.Width-9) > 1e-9 || math.Abs(fp.Depth-13) > 1e-9 {
		t.Errorf("footprint = %v x %v, want 9 x 13", fp.Width, fp.Depth)
	}
	// Anchored in plot coordinates: side setback in x, front setback in y.
	if math.Abs(fp.OriginX-1.5) > 1e-9 || math.Abs(fp.OriginY-3.0) > 1e-9 {
		t.Errorf("footprint origin = (%v, %v), want (1.5, 3)", fp.OriginX, fp.OriginY)
	}

	// Setbacks larger than the plot leave nothing: vanished, not error.
	tiny, err := RectangularFootprint(3, 3, Setbacks{Front: 3, Rear: 2, Sides: 1.5})
	if err != nil {
		t.Fatalf("RectangularFootprint() error: %v", err)
	}
	if !tiny.Vanished() {
		t.Error("consumed plot not reported as vanished")
	}
}
