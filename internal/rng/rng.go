// Package rng implements a seeded pseudo-random source with unique-value
// sampling, grounded on original_source/PrioQueues/RNG.h/.cpp. The original
// wraps std::mt19937 plus a std::unordered_set<size_t> of values already
// returned by nextUniqueSizeT; this package gets the same two properties
// (seeded reproducibility, a Go map standing in for the unordered_set) from
// math/rand/v2's PCG source instead of porting a Mersenne Twister by hand.
package rng

import "math/rand/v2"

// RNG produces seeded pseudo-random uint64s, with a variant that never
// repeats a value within a given range across the lifetime of the RNG.
type RNG struct {
	r      *rand.Rand
	issued map[uint64]struct{}
}

// New returns an RNG seeded deterministically from seed, matching the
// original's RNG(unsigned long seed = 144) default.
func New(seed uint64) *RNG {
	return &RNG{
		r:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		issued: make(map[uint64]struct{}),
	}
}

// NextUint64 returns an unconstrained pseudo-random value.
func (g *RNG) NextUint64() uint64 {
	return g.r.Uint64()
}

// NextUint64Range returns a value in [min, max], inclusive, mirroring the
// original's nextSizeT(min, max) modulo-reduction scheme.
func (g *RNG) NextUint64Range(min, max uint64) uint64 {
	return g.NextUint64()%(max-min+1) + min
}

// NextUniqueUint64 returns a value in [min, max] never before returned by
// this method on this RNG, mirroring nextUniqueSizeT's reject-and-retry
// loop against its yetGenerated set.
func (g *RNG) NextUniqueUint64(min, max uint64) uint64 {
	for {
		candidate := g.NextUint64Range(min, max)
		if _, seen := g.issued[candidate]; !seen {
			g.issued[candidate] = struct{}{}
			return candidate
		}
	}
}
