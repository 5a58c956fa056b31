// Package mdp - random streams for the randomized solvers.
//
// Every randomized solver draws from an injected *rand.Rand; nothing reads
// time or a global source. A run is reproduced from its seed alone.
//
// Streams:
//   - RNGFromSeed turns a configured seed into a generator (0 = default).
//   - DeriveSeed maps (parent, stream) to an unrelated seed; the bench runner
//     uses it to give every run its own seed.
//   - DeriveRNG splits a child generator off a parent; TabuSearch gives
//     each start its own child so a start's seeding does not depend on how
//     many numbers earlier starts consumed.
//
// A *rand.Rand is not safe for concurrent use; derive one per goroutine.
package mdp

import "math/rand"

// defaultSeed replaces a zero seed and backs nil generators.
const defaultSeed int64 = 1

// SplitMix64 constants.
const (
	golden = 0x9e3779b97f4a7c15
	mixA   = 0xbf58476d1ce4e5b9
	mixB   = 0x94d049bb133111eb
)

// RNGFromSeed returns a generator seeded with seed, or with the default
// seed when seed is 0.
func RNGFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed returns the seed of stream number stream under parent.
// Neighboring parents or streams yield unrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(splitMix(uint64(parent) ^ (stream + golden)))
}

// DeriveRNG returns a child generator for stream. It consumes one value
// from parent, so two derivations with the same stream differ; a nil
// parent stands for the default seed and is not advanced.
func DeriveRNG(parent *rand.Rand, stream uint64) *rand.Rand {
	root := defaultSeed
	if parent != nil {
		root = parent.Int63()
	}

	return rand.New(rand.NewSource(DeriveSeed(root, stream)))
}

// splitMix is the SplitMix64 step: advance by the golden gamma, then
// finalize.
func splitMix(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * mixA
	x = (x ^ (x >> 27)) * mixB

	return x ^ (x >> 31)
}

// orDefault returns r, or a fresh default-seeded generator when r is nil.
func orDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return RNGFromSeed(0)
	}

	return r
}
