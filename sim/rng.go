package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible benchmark run.
// Two runs with the same SimulationKey and identical configuration MUST
// produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

const (
	// SubsystemScenario is the RNG subsystem for population generation.
	// Uses the master seed directly so --seed maps one-to-one onto the
	// generated scenario.
	SubsystemScenario = "scenario"

	// SubsystemCosts is the RNG subsystem for base cost matrix generation.
	SubsystemCosts = "costs"

	// SubsystemPlacement is the RNG subsystem for the random strategy's host
	// choices.
	SubsystemPlacement = "placement"
)

// SubsystemTrial returns the subsystem name for trial N. The benchmark runner
// derives each trial's seed from it so trials are statistically independent
// but reproducible from one master seed.
func SubsystemTrial(n int) string {
	return fmt.Sprintf("trial_%d", n)
}

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemScenario: uses the master seed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine;
// trials that run concurrently each get their own PartitionedRNG.
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
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.DeriveSeed(name)))
	p.subsystems[name] = rng
	return rng
}

// DeriveSeed returns the seed ForSubsystem would use for the named subsystem.
// Exposed so the benchmark runner can mint per-trial master seeds.
func (p *PartitionedRNG) DeriveSeed(name string) int64 {
	if name == SubsystemScenario {
		return int64(p.key)
	}
	return int64(p.key) ^ fnv1a64(name)
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
