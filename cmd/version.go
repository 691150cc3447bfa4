package cmd

import (
	"fmt"

	"github.com/civildesignlab/gorcplan/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcplan",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcplan v%s\n", version.Version)
		fmt.Println("Plot-to-Structure RC Design Tool")
		fmt.Println("Based on IS 456:2000 (Plain and Reinforced Concrete)")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
