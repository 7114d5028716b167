// Package vmath holds the small integer math helpers shared by the grid code
package vmath

// Wrap maps v into [0, n) treating the axis as a ring
// Handles any integer offset, not only a single step past an edge
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// InRange reports whether 0 <= v < n
func InRange(v, n int) bool {
	return v >= 0 && v < n
}

// --- Randomness ---

// FastRand is a xorshift64 generator; not safe for concurrent use
// Seeded explicitly so games are reproducible under a fixed seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n); 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
