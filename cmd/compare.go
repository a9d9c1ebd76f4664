package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disksched/sim"
)

var compareInput inputFlags

// compareCmd runs every policy on the same input and ranks them
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare FCFS, SSTF and SCAN (both directions) on one request set",
	Long:  "Run every scheduling policy on the same requests and head, then print the policies ranked by total head movement. --algorithm and --direction are ignored.",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		sc, err := compareInput.resolve(cmd)
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}
		if err := compareScenario(cmd.OutOrStdout(), sc); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

func compareScenario(w io.Writer, sc *sim.Scenario) error {
	if err := sc.ValidateGeometry(); err != nil {
		return err
	}
	boundary, err := sim.ParseBoundaryMode(sc.Boundary)
	if err != nil {
		return err
	}
	sim.PrintComparison(w, sim.CompareAll(sc.Requests, sc.Head, sc.Extent(), sim.ScanOptions{Boundary: boundary}))
	return nil
}

func init() {
	compareInput.bind(compareCmd)
	rootCmd.AddCommand(compareCmd)
}
