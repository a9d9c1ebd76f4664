package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disksched/sim"
)

// inputFlags holds the flags shared by run and compare that describe the
// simulation input. Flags explicitly set on the command line override the
// corresponding fields of a --scenario file.
type inputFlags struct {
	scenarioPath    string
	requests        string
	head            string
	algorithm       string
	direction       string
	boundary        string
	diskSize        int
	allowOutOfRange bool
}

func (f *inputFlags) bind(c *cobra.Command) {
	c.Flags().StringVar(&f.scenarioPath, "scenario", "", "Path to a YAML scenario file")
	c.Flags().StringVar(&f.requests, "requests", "", "Space-separated track requests (e.g. \"98 183 37 122\")")
	c.Flags().StringVar(&f.head, "head", "", "Initial head position")
	c.Flags().StringVar(&f.algorithm, "algorithm", "", "Scheduling algorithm (fcfs, sstf, scan)")
	c.Flags().StringVar(&f.direction, "direction", "", "Initial SCAN direction (left, right)")
	c.Flags().StringVar(&f.boundary, "boundary", "", "SCAN boundary accounting (always, on-reverse); default always")
	c.Flags().IntVar(&f.diskSize, "disk-size", sim.DefaultDiskSize, "Number of tracks on the disk")
	c.Flags().BoolVar(&f.allowOutOfRange, "allow-out-of-range", false, "Pass tracks outside [0, disk-size-1] through instead of rejecting them")
}

// resolve builds the scenario from the --scenario file (if any) and the
// explicitly set flags. It rejects malformed numbers and, unless
// --allow-out-of-range is set, tracks outside the disk. Tracks beyond
// sim.MaxTrackMagnitude are always rejected. Selections are not
// checked here; see sim.Scenario.Validate.
func (f *inputFlags) resolve(c *cobra.Command) (*sim.Scenario, error) {
	sc := &sim.Scenario{}
	fromFile := f.scenarioPath != ""
	if fromFile {
		loaded, err := sim.LoadScenario(f.scenarioPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
		logrus.Infof("Loaded scenario from %s", f.scenarioPath)
	}
	override := func(name string) bool {
		return !fromFile || c.Flags().Changed(name)
	}

	if override("requests") {
		requests, err := sim.ParseRequests(f.requests)
		if err != nil {
			return nil, err
		}
		sc.Requests = requests
	}
	if override("head") {
		head, err := sim.ParseHead(f.head)
		if err != nil {
			return nil, err
		}
		sc.Head = head
	}
	if override("algorithm") {
		sc.Algorithm = f.algorithm
	}
	if override("direction") {
		sc.Direction = f.direction
	}
	if override("boundary") {
		sc.Boundary = f.boundary
	}
	if override("disk-size") {
		sc.DiskSize = f.diskSize
	}

	if err := sim.ValidateMagnitude(sc.Requests, sc.Head); err != nil {
		return nil, err
	}
	if err := sim.ValidateRange(sc.Requests, sc.Head, sc.Extent()); err != nil {
		if !f.allowOutOfRange {
			return nil, err
		}
		logrus.Warnf("Passing out-of-range tracks through: %v", err)
	}
	return sc, nil
}
