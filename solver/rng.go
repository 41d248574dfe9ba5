// SPDX-License-Identifier: MIT

// Package solver - seeded generators of runs, HAE children and trials.
//
// A run draws everything from rngFromSeed(Options.Seed). Work that may run on
// other goroutines gets its own stream instead: HAE child i of a parallel
// batch uses deriveRNG(Seed, gen+i), and experiment trial i runs with
// Seed = DeriveSeed(base, i). Streams never share a *rand.Rand, so results
// do not depend on scheduling.
package solver

import "math/rand"

// defaultRNGSeed replaces a zero Seed, so the zero Options value still runs
// a fixed stream.
const defaultRNGSeed int64 = 1

// rngFromSeed returns the run generator of seed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed returns the seed of stream under parent. experiment.Run gives
// trial i the seed DeriveSeed(Seed, i); distinct streams of one parent get
// unrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(splitmix64(uint64(parent) ^ (stream + golden)))
}

// golden is the SplitMix64 increment.
const golden = 0x9e3779b97f4a7c15

// splitmix64 is one step of the SplitMix64 generator: advance x, then mix.
func splitmix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// deriveRNG returns the generator of stream under parent, with the same
// zero-seed policy as rngFromSeed. HAE calls it once per parallel child.
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = defaultRNGSeed
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// sampleTwo returns two distinct indices drawn uniformly from [0, n), n ≥ 2.
//
// Complexity: O(1).
func sampleTwo(n int, rng *rand.Rand) (i, j int) {
	i = rng.Intn(n)
	j = rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
