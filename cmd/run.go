package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/civildesignlab/gorcplan/internal/config"
	"github.com/civildesignlab/gorcplan/internal/drawing"
	"github.com/civildesignlab/gorcplan/internal/pipeline"
	"github.com/civildesignlab/gorcplan/internal/report"
)

var (
	runProjectFile string
	runXLSX        string
	runPlanFile    string
	runASCII       bool
	runChart       bool
	runVerbose     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full plot-to-structure pipeline from a project file",
	Long: `Execute every design stage for a TOML project file: buildable
envelope, column grid, load takedown, foundations, columns, beams and
the bill of quantities.

Per-element design failures do not stop the run; failed elements are
listed at the end and carried into the workbook. A vanished envelope
(setbacks consume the plot) ends the run cleanly with no structure.

Examples:
  # Design and print the summary
  gorcplan run --project duplex.toml

  # Full handover package
  gorcplan run --project duplex.toml --xlsx design.xlsx --plan plan.png

  # Terminal graphics and debug logging
  gorcplan run --project duplex.toml --ascii --chart -v`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runProjectFile, "project", "p", "", "Project TOML file [required]")
	runCmd.Flags().StringVar(&runXLSX, "xlsx", "", "Write the design workbook to this path")
	runCmd.Flags().StringVar(&runPlanFile, "plan", "", "Write the key plan image to this path")
	runCmd.Flags().BoolVar(&runASCII, "ascii", false, "Print the column layout as a terminal plan")
	runCmd.Flags().BoolVar(&runChart, "chart", false, "Chart the factored load profile")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Debug-level logging")

	runCmd.MarkFlagRequired("project")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if runVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	p, err := config.Load(runProjectFile)
	if err != nil {
		return err
	}
	logger.Debug("project loaded", "file", runProjectFile, "units", p.Units, "floors", p.Floors)

	res, err := pipeline.Run(p, pipeline.Options{Logger: logger})
	if err != nil {
		return err
	}

	if res.Vanished {
		fmt.Println()
		fmt.Println("  The setbacks consume the entire plot. Nothing is buildable.")
		fmt.Println()
		return nil
	}

	printRunSummary(res)

	if runASCII {
		fmt.Println(drawing.ASCIIPlan(res.Grid))
	}
	if runChart {
		fmt.Println()
		fmt.Println(drawing.LoadProfile(res.Loads))
		fmt.Println()
	}
	if runXLSX != "" {
		if err := report.WriteWorkbook(res, runXLSX); err != nil {
			return err
		}
		logger.Info("workbook written", "file", runXLSX)
	}
	if runPlanFile != "" {
		data := drawing.PlanData{Grid: res.Grid, Unit: string(res.Project.Units)}
		if poly, ok := res.Project.Polygon(); ok {
			data.Plot = poly
		}
		if res.Envelope != nil {
			data.Envelope = res.Envelope.Buildable
		}
		if err := drawing.ExportPlan(data, runPlanFile); err != nil {
			return err
		}
		logger.Info("key plan written", "file", runPlanFile)
	}
	return nil
}

func printRunSummary(res *pipeline.Result) {
	p := res.Project
	toM := p.Units.ToMetres()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PLOT-TO-STRUCTURE DESIGN SUMMARY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Project:\t%s\n", p.Name)
	fmt.Fprintf(w, "  Run ID:\t%s\n", res.RunID)
	fmt.Fprintf(w, "  Floors:\t%d\n", p.Floors)
	fmt.Fprintf(w, "  Buildable Area:\t%.1f m²\n", res.BuildableArea()*toM*toM)
	fmt.Fprintf(w, "  Columns:\t%d on a %dx%d bay grid\n", len(res.Grid.Nodes), res.Grid.Nx, res.Grid.Ny)
	fmt.Fprintf(w, "  Foundations Designed:\t%d\n", len(res.Foundations))
	fmt.Fprintf(w, "  Columns Designed:\t%d\n", len(res.Columns))
	fmt.Fprintf(w, "  Typical Beams:\t%d\n", len(res.Beams))
	w.Flush()
	fmt.Println()

	fmt.Println("  BILL OF QUANTITIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete:\t%.1f m³\n", res.Totals.ConcreteVolume)
	fmt.Fprintf(w, "  Steel:\t%.0f kg\n", res.Totals.SteelMass)
	fmt.Fprintf(w, "  Estimated Cost:\t%.0f\n", res.Totals.Cost)
	w.Flush()
	fmt.Println()

	if len(res.Failed) > 0 {
		fmt.Println("  ELEMENTS NEEDING ATTENTION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, f := range res.Failed {
			fmt.Fprintf(w, "  %s\t%s\t%v\n", f.Element, f.Stage, f.Err)
		}
		w.Flush()
		fmt.Println()
	}
}
