// Package randutil derives PCG sources for the samplers, deck shuffles and
// table generation so a single configured seed reproduces a whole run.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	return NewStream(seed, 0)
}

// NewStream returns the stream-th independent generator for seed. Parallel
// workers take one stream each so their output does not depend on
// scheduling.
func NewStream(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed) + stream*goldenRatio64*2
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromSeed treats seed 0 as "no seed": it returns a generator keyed from the
// runtime's random source. Any other seed behaves like New.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return New(seed)
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
