// Command chartdemo exercises the chart library from the command line: it
// computes technical indicators over CSV series and renders projected 3D
// chart shapes to SVG.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartdemo",
		Short: "Chart geometry and indicator demos",
		Long: `chartdemo drives the chart library without a host renderer:
the indicators command derives moving averages and oscillators from a CSV
series, and the solid command projects 3D chart shapes into an SVG file.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")

	rootCmd.AddCommand(newIndicatorsCmd())
	rootCmd.AddCommand(newSolidCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
