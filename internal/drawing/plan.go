// Package drawing renders structural plans: a PNG key plan of the plot,
// buildable envelope and column grid, an ASCII plan for terminal use,
// and a load-profile chart.
package drawing

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/civildesignlab/gorcplan/internal/geometry"
	"github.com/civildesignlab/gorcplan/internal/grid"
)

// PlanData holds everything drawn on the key plan, in plot units.
type PlanData struct {
	Plot     geometry.Polygon
	Envelope geometry.Polygon // zero-length means no envelope outline
	Grid     *grid.Grid       // nil means no grid overlay
	Unit     string           // axis label suffix, e.g. "mm"
}

// ExportPlan writes the key plan to an image file. The format follows
// the file extension; anything unrecognized falls back to PNG.
func ExportPlan(data PlanData, filename string) error {
	p := plot.New()
	p.Title.Text = "Structural Key Plan"
	p.X.Label.Text = fmt.Sprintf("X (%s)", data.Unit)
	p.Y.Label.Text = fmt.Sprintf("Y (%s)", data.Unit)

	if err := addOutline(p, data.Plot, color.Black, vg.Points(2), nil); err != nil {
		return err
	}
	if len(data.Envelope.Vertices) >= 3 {
		dashes := []vg.Length{vg.Points(6), vg.Points(3)}
		green := color.RGBA{R: 34, G: 139, B: 34, A: 255}
		if err := addOutline(p, data.Envelope, green, vg.Points(1.5), dashes); err != nil {
			return err
		}
	}
	if data.Grid != nil {
		if err := addGrid(p, data.Grid); err != nil {
			return err
		}
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 7 * vg.Inch
	height := 7 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func addOutline(p *plot.Plot, poly geometry.Polygon, c color.Color, w vg.Length, dashes []vg.Length) error {
	if len(poly.Vertices) < 3 {
		return nil
	}
	pts := make(plotter.XYs, len(poly.Vertices)+1)
	for i, v := range poly.Vertices {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	pts[len(poly.Vertices)] = pts[0]

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = w
	line.LineStyle.Color = c
	line.LineStyle.Dashes = dashes
	p.Add(line)
	return nil
}

func addGrid(p *plot.Plot, g *grid.Grid) error {
	// Grid lines through every lattice row and column.
	gray := color.RGBA{R: 150, G: 150, B: 150, A: 255}
	for i := 0; i <= g.Nx; i++ {
		x := g.Bounds.MinX + float64(i)*g.SpacingX
		line, err := plotter.NewLine(plotter.XYs{
			{X: x, Y: g.Bounds.MinY}, {X: x, Y: g.Bounds.MaxY},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Color = gray
		line.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(4)}
		p.Add(line)
	}
	for j := 0; j <= g.Ny; j++ {
		y := g.Bounds.MinY + float64(j)*g.SpacingY
		line, err := plotter.NewLine(plotter.XYs{
			{X: g.Bounds.MinX, Y: y}, {X: g.Bounds.MaxX, Y: y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Color = gray
		line.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(4)}
		p.Add(line)
	}

	// Column markers.
	pts := make(plotter.XYs, len(g.Nodes))
	for i, n := range g.Nodes {
		pts[i] = plotter.XY{X: n.Position.X, Y: n.Position.Y}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Shape = draw.BoxGlyph{}
	p.Add(scatter)

	// Node ids next to the markers.
	labels := plotter.XYLabels{}
	for _, n := range g.Nodes {
		labels.XYs = append(labels.XYs, plotter.XY{
			X: n.Position.X + g.SpacingX*0.05,
			Y: n.Position.Y + g.SpacingY*0.05,
		})
		labels.Labels = append(labels.Labels, n.ID)
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}
