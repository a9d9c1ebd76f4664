package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible generated scenario.
// Two generations with the same SimulationKey and parameters MUST produce
// identical request sets and head positions.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemRequests is the RNG subsystem for request track generation.
	// Uses the master seed directly.
	SubsystemRequests = "requests"

	// SubsystemHead is the RNG subsystem for the initial head position.
	SubsystemHead = "head"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem,
// so changing the number of generated requests never moves the head.
//
// Derivation formula:
//   - For SubsystemRequests: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derivedSeed := int64(p.key)
	if name != SubsystemRequests {
		derivedSeed ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// GenerateRequests draws n tracks uniformly from the extent.
func GenerateRequests(rng *PartitionedRNG, n int, extent DiskExtent) RequestSet {
	r := rng.ForSubsystem(SubsystemRequests)
	size := extent.Resolved().Size
	requests := make(RequestSet, n)
	for i := range requests {
		requests[i] = Track(r.Intn(size))
	}
	return requests
}

// GenerateHead draws a head position uniformly from the extent.
func GenerateHead(rng *PartitionedRNG, extent DiskExtent) Track {
	return Track(rng.ForSubsystem(SubsystemHead).Intn(extent.Resolved().Size))
}

// GeneratorConfig parameterizes GenerateScenario.
// A nil Head draws the head position from the RNG.
type GeneratorConfig struct {
	Seed        int64
	NumRequests int
	DiskSize    int
	Head        *Track
	Algorithm   string
	Direction   string
	Boundary    string
}

// GenerateScenario builds a random scenario. The result is not validated
// beyond the generator's own parameters; call Validate before running it.
func GenerateScenario(cfg GeneratorConfig) (*Scenario, error) {
	if cfg.NumRequests < 0 {
		return nil, fmt.Errorf("num_requests must be non-negative, got %d", cfg.NumRequests)
	}
	if cfg.DiskSize < 0 {
		return nil, fmt.Errorf("disk_size must be non-negative, got %d", cfg.DiskSize)
	}
	extent := DiskExtent{Size: cfg.DiskSize}.Resolved()
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	sc := &Scenario{
		DiskSize:  extent.Size,
		Requests:  GenerateRequests(rng, cfg.NumRequests, extent),
		Algorithm: cfg.Algorithm,
		Direction: cfg.Direction,
		Boundary:  cfg.Boundary,
	}
	if cfg.Head != nil {
		sc.Head = *cfg.Head
	} else {
		sc.Head = GenerateHead(rng, extent)
	}
	return sc, nil
}
