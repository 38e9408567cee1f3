// Package sim simulates table tennis matches rally by rally.
//
// Every function takes its randomness from an explicit Source, so a seeded
// generator reproduces a run exactly and independent callers never share
// generator state.
package sim

// Source yields uniformly distributed values in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Rally resolves one point. It reports whether the server, whose probability
// of winning a served rally is ability, takes the point.
func Rally(src Source, ability float64) bool {
	return ability > src.Float64()
}
