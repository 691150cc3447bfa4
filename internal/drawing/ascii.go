package drawing

import (
	"fmt"
	"strings"

	"github.com/civildesignlab/gorcplan/internal/grid"
)

// ASCIIPlan renders the column grid as a terminal plan. Columns are
// marked with their class glyph; bay spacings are annotated below.
func ASCIIPlan(g *grid.Grid) string {
	var sb strings.Builder

	width := g.Bounds.Width()
	height := g.Bounds.Height()
	cols := 48
	rowsN := 16
	if width > 0 && height > 0 {
		// Keep the aspect ratio roughly honest; terminal cells are
		// about twice as tall as wide.
		rowsN = int(float64(cols) / 2 * height / width)
		if rowsN < 4 {
			rowsN = 4
		}
		if rowsN > 40 {
			rowsN = 40
		}
	}

	canvas := make([][]rune, rowsN+1)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", cols+1))
	}

	for _, n := range g.Nodes {
		cx := 0
		cy := 0
		if width > 0 {
			cx = int((n.Position.X - g.Bounds.MinX) / width * float64(cols))
		}
		if height > 0 {
			cy = int((n.Position.Y - g.Bounds.MinY) / height * float64(rowsN))
		}
		canvas[rowsN-cy][cx] = classGlyph(n.Class)
	}

	sb.WriteString("\n  COLUMN LAYOUT\n")
	sb.WriteString("  ─────────────\n")
	sb.WriteString("  ┌" + strings.Repeat("─", cols+1) + "┐\n")
	for _, row := range canvas {
		sb.WriteString("  │" + string(row) + "│\n")
	}
	sb.WriteString("  └" + strings.Repeat("─", cols+1) + "┘\n")

	sb.WriteString(fmt.Sprintf("  %d columns on a %dx%d bay grid, spacing %.2f x %.2f\n",
		len(g.Nodes), g.Nx, g.Ny, g.SpacingX, g.SpacingY))
	sb.WriteString("  ■ corner  ▦ edge  ▣ interior\n")
	if g.StaircaseBay != "" {
		sb.WriteString(fmt.Sprintf("  staircase bay at %s\n", g.StaircaseBay))
	}
	return sb.String()
}

func classGlyph(c grid.NodeClass) rune {
	switch c {
	case grid.Corner:
		return '■'
	case grid.Edge:
		return '▦'
	default:
		return '▣'
	}
}
