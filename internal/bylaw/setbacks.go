package bylaw

import "fmt"

// Setbacks holds the per-face setback distances for a rectangular plot,
// in metres.
type Setbacks struct {
	Front float64
	Rear  float64
	Sides float64
}

// SetbacksFor returns the standard municipal setbacks for a rectangular
// plot by size band. plotArea in m². The bands follow typical residential
// bylaws: small plots (< 250 m²) get 3.0/2.0/1.5, larger plots
// 4.5/3.0/2.0 front/rear/sides.
func SetbacksFor(plotArea float64) Setbacks {
	if plotArea < 250 {
		return Setbacks{Front: 3.0, Rear: 2.0, Sides: 1.5}
	}
	return Setbacks{Front: 4.5, Rear: 3.0, Sides: 2.0}
}

// Footprint is the buildable rectangle left after per-face setbacks.
// OriginX/OriginY anchor its south-west corner in plot coordinates (the
// plot's own origin is its south-west corner, front boundary along y=0),
// so footprint positions and plot positions share one frame.
type Footprint struct {
	Width   float64
	Depth   float64
	Area    float64
	OriginX float64
	OriginY float64
}

// RectangularFootprint applies per-face setbacks to a width × depth plot.
// Returns ErrInvalidGeometry wrapped when the setbacks consume the plot
// in either direction; callers treating that as a vanished envelope
// should check with errors.Is.
func RectangularFootprint(plotWidth, plotDepth float64, sb Setbacks) (*Footprint, error) {
	if plotWidth <= 0 || plotDepth <= 0 {
		return nil, fmt.Errorf("%w: plot %v x %v", ErrInvalidGeometry, plotWidth, plotDepth)
	}
	w := plotWidth - 2*sb.Sides
	d := plotDepth - (sb.Front + sb.Rear)
	if w <= 0 || d <= 0 {
		// Same terminal state as a vanished polygon envelope.
		return &Footprint{}, nil
	}
	return &Footprint{
		Width:   w,
		Depth:   d,
		Area:    w * d,
		OriginX: sb.Sides,
		OriginY: sb.Front,
	}, nil
}

// Vanished reports whether the footprint has no buildable area.
func (f *Footprint) Vanished() bool {
	return f.Area <= 0
}
