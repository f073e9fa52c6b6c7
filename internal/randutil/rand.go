package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG wants two 64-bit seeds; deriving both here keeps every call
// site reproducible from a single seed value.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSeat derives an independent source for a seat from a table-level seed.
// Each seat gets its own stream so one seat's sampling never perturbs
// another's.
func NewSeat(seed int64, seat int) *rand.Rand {
	return New(seed + int64(seat+1)*int64(goldenRatio64>>1))
}

// TimeSeed returns a seed suitable for non-deterministic play.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// mix is a splitmix64-style finaliser to decorrelate nearby seeds.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
