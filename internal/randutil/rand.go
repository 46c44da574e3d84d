// Package randutil derives reproducible random sources.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	return NewStream(seed, 0)
}

// NewStream returns the stream-th independent generator for seed. Parallel
// workers each take their own stream so results do not depend on scheduling.
func NewStream(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed) + stream*goldenRatio64*2
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
