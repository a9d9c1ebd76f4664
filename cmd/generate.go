package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disksched/sim"
)

var (
	genSeed        int64
	genNumRequests int
	genDiskSize    int
	genHead        int
	genAlgorithm   string
	genDirection   string
	genBoundary    string
)

// generateCmd writes a random scenario YAML to stdout
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random scenario YAML",
	Long:  "Draw a reproducible random request set (and head, unless --head is given) and write it as a scenario YAML to stdout for piping into run --scenario.",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := sim.GeneratorConfig{
			Seed:        genSeed,
			NumRequests: genNumRequests,
			DiskSize:    genDiskSize,
			Algorithm:   genAlgorithm,
			Direction:   genDirection,
			Boundary:    genBoundary,
		}
		if cmd.Flags().Changed("head") {
			head := sim.Track(genHead)
			cfg.Head = &head
		}
		if err := writeGeneratedScenario(cmd.OutOrStdout(), cfg); err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
	},
}

// writeGeneratedScenario generates a scenario and marshals it to w.
func writeGeneratedScenario(w io.Writer, cfg sim.GeneratorConfig) error {
	sc, err := sim.GenerateScenario(cfg)
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	data, err := sc.Marshal()
	if err != nil {
		return err
	}
	logrus.Infof("Generated %d requests with seed %d", len(sc.Requests), cfg.Seed)
	_, err = fmt.Fprint(w, string(data))
	return err
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random request generation")
	generateCmd.Flags().IntVar(&genNumRequests, "num-requests", 8, "Number of requests")
	generateCmd.Flags().IntVar(&genDiskSize, "disk-size", sim.DefaultDiskSize, "Number of tracks on the disk")
	generateCmd.Flags().IntVar(&genHead, "head", 0, "Fixed initial head position (random if unset)")
	generateCmd.Flags().StringVar(&genAlgorithm, "algorithm", "fcfs", "Algorithm recorded in the scenario (fcfs, sstf, scan)")
	generateCmd.Flags().StringVar(&genDirection, "direction", "", "SCAN direction recorded in the scenario (left, right)")
	generateCmd.Flags().StringVar(&genBoundary, "boundary", "", "SCAN boundary accounting recorded in the scenario")

	rootCmd.AddCommand(generateCmd)
}
