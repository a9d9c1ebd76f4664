package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disksched/sim"
)

var (
	runInput       inputFlags
	runOutput      string // Output format
	runChart       bool   // Draw a step chart after the report
	runChartHeight int    // Rows in the step chart
)

// runCmd schedules one request set with one policy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling simulation",
	Example: `  disksched run --requests "98 183 37 122 14 124 65 67" --head 53 --algorithm sstf
  disksched run --scenario examples/textbook-scan-left.yaml --chart`,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		sc, err := runInput.resolve(cmd)
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}
		if err := runScenario(cmd.OutOrStdout(), sc, runOutput, runChart, runChartHeight); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runScenario validates and runs sc, then writes the report in format.
func runScenario(w io.Writer, sc *sim.Scenario, format string, chart bool, chartHeight int) error {
	if !sim.ValidOutputFormats[format] {
		return fmt.Errorf("unknown output format %q; valid: table, json", format)
	}
	logrus.Infof("Starting simulation: algorithm=%s, head=%d, requests=%d, disk_size=%d",
		sc.Algorithm, sc.Head, len(sc.Requests), sc.Extent().Size)

	result, err := sc.Run()
	if err != nil {
		return err
	}
	label := result.Algorithm
	if label == "scan" {
		dir, _ := sim.ParseDirection(sc.Direction) // validated by Run
		label = "scan-" + dir.String()
	}
	if err := sim.NewMetrics(result, label).SaveResults(w, format); err != nil {
		return err
	}
	if chart {
		sim.RenderStepChart(w, strings.ToUpper(label), result.Path(), sc.Extent(), chartHeight)
	}
	return nil
}

func init() {
	runInput.bind(runCmd)
	runCmd.Flags().StringVar(&runOutput, "output", sim.OutputTable, "Output format (table, json)")
	runCmd.Flags().BoolVar(&runChart, "chart", false, "Draw a step chart of the head path")
	runCmd.Flags().IntVar(&runChartHeight, "chart-height", sim.DefaultChartHeight, "Rows in the step chart")

	rootCmd.AddCommand(runCmd)
}
