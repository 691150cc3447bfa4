package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/civildesignlab/gorcplan/internal/beam"
)

var (
	beamSpan  float64
	beamLoad  float64
	beamWidth float64
	beamFck   float64
	beamFy    float64
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Design a simply supported singly reinforced beam",
	Long: `Size the depth and tension reinforcement of a simply supported
rectangular beam under a factored uniform line load.

The depth is chosen so the section stays singly reinforced (Mu below
the limiting moment) and is rounded up to a 50 mm module. Shear stress
is checked against the IS 456 Table 20 ceiling.

Examples:
  # 4.5 m span carrying 35 kN/m on a 230 mm web
  gorcplan beam --span 4.5 --load 35 --width 230

  # Fe415 steel
  gorcplan beam --span 4.5 --load 35 --width 230 --fy 415`,
	RunE: runBeam,
}

func init() {
	rootCmd.AddCommand(beamCmd)

	beamCmd.Flags().Float64VarP(&beamSpan, "span", "s", 0, "Clear span (m) [required]")
	beamCmd.Flags().Float64VarP(&beamLoad, "load", "l", 0, "Factored line load (kN/m) [required]")
	beamCmd.Flags().Float64VarP(&beamWidth, "width", "b", 230, "Web width (mm)")
	beamCmd.Flags().Float64Var(&beamFck, "fck", 25, "Concrete grade fck (N/mm²)")
	beamCmd.Flags().Float64Var(&beamFy, "fy", 500, "Steel grade fy (N/mm²)")

	beamCmd.MarkFlagRequired("span")
	beamCmd.MarkFlagRequired("load")
}

func runBeam(cmd *cobra.Command, args []string) error {
	d := &beam.Designer{Fck: beamFck, Fy: beamFy}
	res, err := d.Design(beamSpan, beamLoad, beamWidth)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SIMPLY SUPPORTED BEAM DESIGN - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.2f m\n", res.Span)
	fmt.Fprintf(w, "  Factored Line Load:\t%.1f kN/m\n", res.LineLoad)
	fmt.Fprintf(w, "  Midspan Moment (Mu):\t%.2f kN-m\n", res.Moment)
	fmt.Fprintf(w, "  Support Shear (Vu):\t%.2f kN\n", res.Shear)
	fmt.Fprintf(w, "  Section:\t%.0f x %.0f mm\n", res.Width, res.GrossDepth)
	fmt.Fprintf(w, "  Effective Depth:\t%.0f mm\n", res.EffDepth)
	fmt.Fprintf(w, "  Ast Required:\t%.1f mm²\n", res.AstRequired)
	fmt.Fprintf(w, "  Ast Minimum:\t%.1f mm²\n", res.AstMin)
	fmt.Fprintf(w, "  Ast Provided:\t%.1f mm²\n", res.AstProvided)
	fmt.Fprintf(w, "  Reinforcement:\t%d-%.0fmm dia\n", res.BarCount, res.BarDia)
	fmt.Fprintf(w, "  Shear Stress:\t%.2f N/mm²\n", res.ShearStress)
	w.Flush()
	fmt.Println()
	return nil
}
