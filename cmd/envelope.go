package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/civildesignlab/gorcplan/internal/bylaw"
	"github.com/civildesignlab/gorcplan/internal/geometry"
)

var (
	envWidth    float64
	envDepth    float64
	envSetback  float64
	envVertices string
	envRuleset  bool
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Compute the buildable envelope from bylaw setbacks",
	Long: `Offset the plot boundary inward by the setback distance and report
the buildable envelope.

The plot is either a rectangle (--width and --depth) or an arbitrary
simple polygon given as --vertices "x,y;x,y;...". Self-intersecting
boundaries are repaired to their convex hull and flagged.

With --ruleset, rectangular plots pick setbacks from the area-banded
residential table instead of a uniform distance (dimensions in metres).

Examples:
  # 9x12 m plot in mm with a uniform 1.5 m setback
  gorcplan envelope --width 9000 --depth 12000 --setback 1500

  # L-shaped plot
  gorcplan envelope --vertices "0,0;12,0;12,8;6,8;6,14;0,14" --setback 1.5

  # Area-banded setbacks on a 12x18 m plot
  gorcplan envelope --width 12 --depth 18 --ruleset`,
	RunE: runEnvelope,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)

	envelopeCmd.Flags().Float64VarP(&envWidth, "width", "w", 0, "Plot width (rectangular plots)")
	envelopeCmd.Flags().Float64VarP(&envDepth, "depth", "d", 0, "Plot depth (rectangular plots)")
	envelopeCmd.Flags().Float64VarP(&envSetback, "setback", "s", 0, "Uniform setback distance")
	envelopeCmd.Flags().StringVar(&envVertices, "vertices", "", `Polygon boundary as "x,y;x,y;..."`)
	envelopeCmd.Flags().BoolVar(&envRuleset, "ruleset", false, "Use area-banded residential setbacks (metres)")
}

// parseVertices parses "x,y;x,y;..." into a polygon.
func parseVertices(s string) (geometry.Polygon, error) {
	var poly geometry.Polygon
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return poly, fmt.Errorf("bad vertex %q: want x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return poly, fmt.Errorf("bad vertex %q: %v", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return poly, fmt.Errorf("bad vertex %q: %v", part, err)
		}
		poly.Vertices = append(poly.Vertices, geometry.Point{X: x, Y: y})
	}
	return poly, nil
}

func runEnvelope(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BUILDABLE ENVELOPE - IS BYLAW SETBACKS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if envVertices != "" {
		poly, err := parseVertices(envVertices)
		if err != nil {
			return err
		}
		env, err := bylaw.ComputeEnvelope(poly, envSetback)
		if err != nil {
			return err
		}
		if env.Repaired {
			fmt.Println("  NOTE: boundary was self-intersecting and has been repaired")
			fmt.Println()
		}
		fmt.Fprintf(w, "  Plot Area:\t%.2f\n", env.PlotArea)
		fmt.Fprintf(w, "  Setback:\t%.2f\n", env.Setback)
		if env.Vanished {
			w.Flush()
			fmt.Println()
			fmt.Println("  The setback consumes the entire plot. Nothing is buildable.")
			return nil
		}
		fmt.Fprintf(w, "  Buildable Area:\t%.2f\n", env.BuildableArea)
		fmt.Fprintf(w, "  Utilization:\t%.1f %%\n", env.BuildableArea/env.PlotArea*100)
		w.Flush()
		fmt.Println()
		fmt.Println("  ENVELOPE VERTICES:")
		for _, v := range env.Buildable.Vertices {
			fmt.Printf("    (%.2f, %.2f)\n", v.X, v.Y)
		}
		return nil
	}

	if envWidth <= 0 || envDepth <= 0 {
		return fmt.Errorf("either --vertices or both --width and --depth are required")
	}

	sb := bylaw.Setbacks{Front: envSetback, Rear: envSetback, Sides: envSetback}
	if envRuleset {
		sb = bylaw.SetbacksFor(envWidth * envDepth)
		fmt.Fprintf(w, "  Setbacks (F/R/S):\t%.1f / %.1f / %.1f m\n", sb.Front, sb.Rear, sb.Sides)
	}
	fp, err := bylaw.RectangularFootprint(envWidth, envDepth, sb)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Plot:\t%.2f x %.2f\n", envWidth, envDepth)
	if fp.Vanished() {
		w.Flush()
		fmt.Println()
		fmt.Println("  The setbacks consume the entire plot. Nothing is buildable.")
		return nil
	}
	fmt.Fprintf(w, "  Footprint:\t%.2f x %.2f\n", fp.Width, fp.Depth)
	fmt.Fprintf(w, "  Buildable Area:\t%.2f\n", fp.Area)
	fmt.Fprintf(w, "  Utilization:\t%.1f %%\n", fp.Area/(envWidth*envDepth)*100)
	w.Flush()
	fmt.Println()
	return nil
}
