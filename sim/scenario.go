package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a complete simulation input, loadable from a YAML file.
// Zero disk_size means DefaultDiskSize. Direction and boundary are only
// consulted for SCAN.
type Scenario struct {
	DiskSize  int        `yaml:"disk_size,omitempty"`
	Head      Track      `yaml:"head"`
	Requests  RequestSet `yaml:"requests,flow"`
	Algorithm string     `yaml:"algorithm"`
	Direction string     `yaml:"direction,omitempty"`
	Boundary  string     `yaml:"boundary,omitempty"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario document with strict field checking.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parsing scenario: scenario file is empty")
		}
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Extent returns the scenario's disk extent.
func (s *Scenario) Extent() DiskExtent {
	return DiskExtent{Size: s.DiskSize}.Resolved()
}

// ValidateGeometry checks the disk size and the track magnitudes. It holds
// even when out-of-range tracks are passed through.
func (s *Scenario) ValidateGeometry() error {
	if s.DiskSize < 0 {
		return fmt.Errorf("disk_size must be non-negative, got %d", s.DiskSize)
	}
	if s.DiskSize > MaxTrackMagnitude {
		return fmt.Errorf("disk_size must be at most %d, got %d", MaxTrackMagnitude, s.DiskSize)
	}
	return ValidateMagnitude(s.Requests, s.Head)
}

// Validate checks selections and parameter ranges. It does not check that
// tracks lie inside the extent; see ValidateRange.
func (s *Scenario) Validate() error {
	if err := s.ValidateGeometry(); err != nil {
		return err
	}
	name, err := ParseAlgorithm(s.Algorithm)
	if err != nil {
		return err
	}
	if _, err := ParseBoundaryMode(s.Boundary); err != nil {
		return err
	}
	if name == "scan" {
		if _, err := ParseDirection(s.Direction); err != nil {
			return err
		}
	}
	return nil
}

// Scheduler validates the scenario and builds the scheduler it selects.
func (s *Scenario) Scheduler() (DiskScheduler, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	name, _ := ParseAlgorithm(s.Algorithm)
	boundary, _ := ParseBoundaryMode(s.Boundary)
	cfg := SchedulerConfig{Extent: s.Extent(), Boundary: boundary}
	if name == "scan" {
		cfg.Direction, _ = ParseDirection(s.Direction)
	}
	return NewScheduler(name, cfg), nil
}

// Run validates the scenario and schedules its requests.
func (s *Scenario) Run() (ScheduleResult, error) {
	sched, err := s.Scheduler()
	if err != nil {
		return ScheduleResult{}, err
	}
	return sched.Schedule(s.Requests, s.Head), nil
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding scenario: %w", err)
	}
	return data, nil
}
