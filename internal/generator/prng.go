package generator

// RNG is an explicit 32-bit mixing PRNG (splitmix-style Weyl sequence).
// Reproducibility is contractual: the same seed must replay the same site
// byte for byte across builds and platforms, so the algorithm is spelled
// out here instead of delegating to a platform random source. Every random
// decision the generator makes draws from one RNG instance in a fixed
// order: recipe pick, font, radius, button style, then per page the middle
// shuffle, the extras coin, and each extra's pick and insert position.
type RNG struct {
	state uint32
}

func NewRNG(seed int64) *RNG {
	return &RNG{state: uint32(seed) ^ uint32(uint64(seed)>>32)}
}

func (r *RNG) Next() uint32 {
	r.state += 0x9E3779B9
	z := r.state
	z ^= z >> 16
	z *= 0x21F0AAAD
	z ^= z >> 15
	z *= 0x735A2D97
	z ^= z >> 15
	return z
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n))
}

// Shuffle runs a Fisher-Yates pass over n elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// Pick returns one element of a non-empty slice.
func (r *RNG) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.Intn(len(options))]
}
