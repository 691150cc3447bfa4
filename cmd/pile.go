package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/civildesignlab/gorcplan/internal/foundation"
)

var (
	pileLoad     float64
	pileCapacity float64
	pileDiameter float64
	pileDepth    float64
)

var pileCmd = &cobra.Command{
	Use:   "pile",
	Short: "Design a bored pile group and cap",
	Long: `Size a bored pile group for a factored column load given the safe
capacity of a single pile.

The pile count is the load divided by the single-pile capacity, rounded
up. Piles are laid on a square pattern at three-diameter spacing; the
cap extends one diameter beyond the outer piles.

Examples:
  # 1500 kN column on 400 kN piles
  gorcplan pile --load 1500 --capacity 400 --diameter 0.45 --depth 12`,
	RunE: runPile,
}

func init() {
	rootCmd.AddCommand(pileCmd)

	pileCmd.Flags().Float64VarP(&pileLoad, "load", "l", 0, "Factored axial load (kN) [required]")
	pileCmd.Flags().Float64VarP(&pileCapacity, "capacity", "c", 0, "Safe capacity of one pile (kN) [required]")
	pileCmd.Flags().Float64Var(&pileDiameter, "diameter", 0.450, "Pile diameter (m)")
	pileCmd.Flags().Float64Var(&pileDepth, "depth", 12, "Pile depth (m)")

	pileCmd.MarkFlagRequired("load")
	pileCmd.MarkFlagRequired("capacity")
}

func runPile(cmd *cobra.Command, args []string) error {
	d := &foundation.PileDesigner{Capacity: pileCapacity, Diameter: pileDiameter, Depth: pileDepth}
	pg, err := d.Design(pileLoad)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BORED PILE GROUP DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Factored Load:\t%.1f kN\n", pileLoad)
	fmt.Fprintf(w, "  Pile Capacity:\t%.0f kN\n", pileCapacity)
	fmt.Fprintf(w, "  Piles Required:\t%d\n", pg.Count)
	fmt.Fprintf(w, "  Pile Spacing:\t%.2f m c/c\n", pg.Spacing)
	fmt.Fprintf(w, "  Cap Size:\t%.2f x %.2f x %.2f m\n", pg.CapSide, pg.CapSide, pg.CapDepth)
	fmt.Fprintf(w, "  Total Boring:\t%.1f m\n", pg.BoringLength)
	w.Flush()
	fmt.Println()
	return nil
}
