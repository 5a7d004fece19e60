package vmath

// FastRand is a xorshift64 RNG for deterministic grid sampling
// Not safe for concurrent use; give each goroutine its own instance
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

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Vec2iWithin returns a uniform random vector with components in [0, n)
func (r *FastRand) Vec2iWithin(n Vec2i) Vec2i {
	return Vec2i{
		X: int32(r.Intn(int(n.X))),
		Y: int32(r.Intn(int(n.Y))),
	}
}
