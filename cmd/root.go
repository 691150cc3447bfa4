package cmd

import (
	"fmt"
	"os"

	"github.com/civildesignlab/gorcplan/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcplan",
	Short: "Plot-to-Structure RC Design Tool",
	Long: `gorcplan - Go Reinforced Concrete Planner

A CLI tool that takes a residential plot from boundary to bill of
quantities, following IS 456:2000 provisions.

The pipeline covers:
  - Bylaw setbacks and the buildable envelope
  - Column grid generation with equal spans
  - Tributary-area load takedown
  - Pad footing or bored pile foundation design
  - Short column and simply supported beam design
  - Quantity and cost estimation (BOQ)

Each stage is also available as a standalone command for quick checks.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcplan v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Planner                          ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool that designs a residential RC structure from the")
		fmt.Println("  plot boundary, following IS 456:2000 provisions.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Buildable envelope from bylaw setbacks")
		fmt.Println("    • Equal-span column grid with load takedown")
		fmt.Println("    • Pad footing and bored pile design")
		fmt.Println("    • Column, beam and BOQ in one run")
		fmt.Println()
		fmt.Println("  Use 'gorcplan --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
