package column

import (
	"errors"
	"testing"
)

var m25fe500 = &Designer{Fck: 25, Fy: 500}

func TestDesignShortColumn(t *testing.T) {
	// 230x400 at 2.5 m: slenderness 2500/230 = 10.9, short.
	res, err := m25fe500.Design(1200, 2.5, Section{Width: 230, Depth: 400})
	if err != nil {
		t.Fatalf("Design() error: %v", err)
	}
	if res.Status != AxiallyLoadedShort {
		t.Errorf("status = %v, want axially loaded short", res.Status)
	}
	// Pu = 0.4*25*92000 + Asc*(0.67*500 - 0.4*25)
	// Asc = (1200e3 - 920e3) / 325 = 861.5 mm²
	if res.AscRequired < 860 || res.AscRequired > 863 {
		t.Errorf("AscRequired = %v, want ~861.5", res.AscRequired)
	}
	if res.SteelPercent <= 0 {
		t.Errorf("steel percent = %v, want > 0", res.SteelPercent)
	}
}

func TestDesignBarSymmetry(t *testing.T) {
	res, err := m25fe500.Design(1500, 2.5, Section{Width: 300, Depth: 450})
	if err != nil {
		t.Fatalf("Design() error: %v", err)
	}
	if res.BarCount < 4 {
		t.Errorf("bar count = %d, want >= 4", res.BarCount)
	}
	if res.BarCount%2 != 0 {
		t.Errorf("bar count = %d, want even", res.BarCount)
	}
	if res.AscProvided < res.AscRequired {
		t.Errorf("provided %v below required %v", res.AscProvided, res.AscRequired)
	}
}

func TestDesignMinimumSteelClamp(t *testing.T) {
	// A light load on a stocky section: the 0.8% minimum governs.
	res, err := m25fe500.Design(200, 2.5, Section{Width: 300, Depth: 450})
	if err != nil {
		t.Fatalf("Design() error: %v", err)
	}
	ag := 300.0 * 450.0
	if res.AscRequired != 0.008*ag {
		t.Errorf("Asc = %v, want the 0.8%% minimum %v", res.AscRequired, 0.008*ag)
	}
}

func TestDesignSteelMonotoneUntilLimit(t *testing.T) {
	sec := Section{Width: 300, Depth: 450}
	prev := 0.0
	sawLimit := false
	for pu := 500.0; pu <= 6000; pu += 500 {
		res, err := m25fe500.Design(pu, 2.5, sec)
		if err != nil {
			if errors.Is(err, ErrExcessiveReinforcement) {
				sawLimit = true
				break
			}
			t.Fatalf("Design(%v) error: %v", pu, err)
		}
		if res.AscRequired < prev {
			t.Fatalf("steel decreased at pu=%v: %v < %v", pu, res.AscRequired, prev)
		}
		prev = res.AscRequired
	}
	if !sawLimit {
		t.Error("never hit ErrExcessiveReinforcement while ramping load")
	}
}

func TestDesignLongColumnRejected(t *testing.T) {
	// 3.0 m over a 230 mm least dimension: 3000/230 = 13.0 > 12.
	_, err := m25fe500.Design(800, 3.0, Section{Width: 230, Depth: 450})
	if !errors.Is(err, ErrLongColumn) {
		t.Errorf("got %v, want ErrLongColumn", err)
	}
}

func TestDesignBiaxialFlag(t *testing.T) {
	// Small depth drives e_min (20 mm floor) above 5% of D = 15 mm.
	res, err := m25fe500.Design(300, 2.5, Section{Width: 300, Depth: 300})
	if err != nil {
		t.Fatalf("Design() error: %v", err)
	}
	if res.Status != NeedsBiaxialDesign {
		t.Errorf("status = %v, want needs-biaxial", res.Status)
	}
	// No steel is sized for flagged columns.
	if res.AscRequired != 0 || res.BarCount != 0 {
		t.Errorf("flagged column was sized anyway: Asc=%v bars=%d", res.AscRequired, res.BarCount)
	}
}

func TestDesignInvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		pu   float64
		l    float64
		sec  Section
	}{
		{"zero load", 0, 3, Section{230, 400}},
		{"negative length", 800, -1, Section{230, 400}},
		{"zero width", 800, 3, Section{0, 400}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m25fe500.Design(tt.pu, tt.l, tt.sec); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v, want ErrInvalidParameter", err)
			}
		})
	}
}
