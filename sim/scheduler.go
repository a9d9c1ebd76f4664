package sim

import (
	"fmt"
	"sort"
)

// DiskScheduler orders a static request set and accounts for head movement.
// Implementations are pure: they copy the input before reordering it and
// keep no state between calls, so one value may be shared across goroutines.
type DiskScheduler interface {
	Name() string
	Schedule(requests RequestSet, head Track) ScheduleResult
}

// SchedulerConfig carries the settings only some policies consult.
// FCFS and SSTF ignore every field.
type SchedulerConfig struct {
	Direction Direction
	Extent    DiskExtent
	Boundary  BoundaryMode
}

// FCFSScheduler services requests in arrival order.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string { return "fcfs" }

func (f *FCFSScheduler) Schedule(requests RequestSet, head Track) ScheduleResult {
	return ScheduleFCFS(requests, head)
}

// SSTFScheduler services the pending request nearest to the head.
type SSTFScheduler struct{}

func (s *SSTFScheduler) Name() string { return "sstf" }

func (s *SSTFScheduler) Schedule(requests RequestSet, head Track) ScheduleResult {
	return ScheduleSSTF(requests, head)
}

// SCANScheduler sweeps toward one boundary, then reverses.
type SCANScheduler struct {
	Direction Direction
	Extent    DiskExtent
	Options   ScanOptions
}

func (s *SCANScheduler) Name() string { return "scan" }

func (s *SCANScheduler) Schedule(requests RequestSet, head Track) ScheduleResult {
	return ScheduleSCANWithOptions(requests, head, s.Direction, s.Extent, s.Options)
}

// ValidAlgorithms is the set of recognized scheduling algorithm names.
// Shared by IsValidAlgorithm and NewScheduler to avoid duplication.
var ValidAlgorithms = map[string]bool{"": true, "fcfs": true, "sstf": true, "scan": true}

// IsValidAlgorithm reports whether name is a recognized algorithm.
func IsValidAlgorithm(name string) bool {
	return ValidAlgorithms[name]
}

// AlgorithmNames returns the recognized non-empty algorithm names, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(ValidAlgorithms))
	for name := range ValidAlgorithms {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// NewScheduler creates a DiskScheduler by name.
// Valid names: "fcfs" (default), "sstf", "scan".
// Empty string defaults to FCFSScheduler (for CLI flag default compatibility).
// Panics on unrecognized names; callers validate user input with IsValidAlgorithm first.
func NewScheduler(name string, cfg SchedulerConfig) DiskScheduler {
	if !IsValidAlgorithm(name) {
		panic(fmt.Sprintf("unknown scheduling algorithm %q", name))
	}
	switch name {
	case "", "fcfs":
		return &FCFSScheduler{}
	case "sstf":
		return &SSTFScheduler{}
	case "scan":
		return &SCANScheduler{
			Direction: cfg.Direction,
			Extent:    cfg.Extent,
			Options:   ScanOptions{Boundary: cfg.Boundary},
		}
	default:
		panic(fmt.Sprintf("unhandled scheduling algorithm %q", name))
	}
}
