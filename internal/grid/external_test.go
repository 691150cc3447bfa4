package grid

import (
	"errors"
	"testing"

	"github.com/civildesignlab/gorcplan/internal/geometry"
)

func TestFromPoints(t *testing.T) {
	env := envelope6000x9000()
	pts := []geometry.Point{
		{X: 0, Y: 0},
		{X: 3000, Y: 4500},
		{X: 6000, Y: 9000},
		{X: 9000, Y: 4500}, // outside
	}
	g, checks, err := FromPoints(env, 4500, 10, pts)
	if err != nil {
		t.Fatalf("FromPoints() error: %v", err)
	}
	if len(g.Nodes) != 3 {
		t.Errorf("accepted %d nodes, want 3", len(g.Nodes))
	}
	if len(checks) != 4 {
		t.Fatalf("checks = %d, want one per supplied point", len(checks))
	}
	if checks[3].InEnvelope {
		t.Error("out-of-envelope node not flagged")
	}
	// Spacing still derives from the envelope box, not the point set.
	if g.SpacingX != 3000 || g.SpacingY != 4500 {
		t.Errorf("spacing = %v x %v, want 3000 x 4500", g.SpacingX, g.SpacingY)
	}
	// Nearest-lattice identification and classification.
	if g.Nodes[0].ID != "C0-0" || g.Nodes[0].Class != Corner {
		t.Errorf("first node = %s (%v), want C0-0 corner", g.Nodes[0].ID, g.Nodes[0].Class)
	}
	if g.Nodes[1].ID != "C1-1" || g.Nodes[1].Class != Interior {
		t.Errorf("center node = %s (%v), want C1-1 interior", g.Nodes[1].ID, g.Nodes[1].Class)
	}
}

func TestFromPointsNearCoincidentNodesKeepDistinctIDs(t *testing.T) {
	env := envelope6000x9000()
	// Both points round to lattice index (1,1).
	pts := []geometry.Point{
		{X: 2900, Y: 4400},
		{X: 3100, Y: 4600},
	}
	g, _, err := FromPoints(env, 4500, 10, pts)
	if err != nil {
		t.Fatalf("FromPoints() error: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Fatalf("accepted %d nodes, want 2", len(g.Nodes))
	}
	if g.Nodes[0].ID != "C1-1" {
		t.Errorf("first occupant = %s, want C1-1", g.Nodes[0].ID)
	}
	if g.Nodes[1].ID != "C1-1b" {
		t.Errorf("second occupant = %s, want C1-1b", g.Nodes[1].ID)
	}
	seen := map[string]bool{}
	for _, n := range g.Nodes {
		if seen[n.ID] {
			t.Fatalf("duplicate node id %s", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestFromPointsAllOutside(t *testing.T) {
	env := envelope6000x9000()
	pts := []geometry.Point{{X: -500, Y: -500}, {X: 7000, Y: 100}}
	_, checks, err := FromPoints(env, 4500, 10, pts)
	if !errors.Is(err, ErrNoBuildableArea) {
		t.Errorf("got %v, want ErrNoBuildableArea", err)
	}
	// The verdicts are still reported so the caller can show what failed.
	if len(checks) != 2 {
		t.Errorf("checks = %d, want 2", len(checks))
	}
}
