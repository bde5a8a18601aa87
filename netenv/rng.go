package netenv

import (
	"hash/fnv"
	"math/rand"
)

// RNG subsystem names.
const (
	// SubsystemTopology seeds the one-shot topology build.
	SubsystemTopology = "topology"

	// SubsystemTraffic seeds the continuing demand-matrix stream.
	// Its state persists across episode resets.
	SubsystemTraffic = "traffic"
)

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, all derived from one master seed. Every environment owns
// its own PartitionedRNG; the process-wide generator is never used, so
// multiple environment instances stay independent and reproducible.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same cached *rand.Rand
// instance, so successive draws continue one stream. Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed this PartitionedRNG was created with.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
