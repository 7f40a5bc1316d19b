package quiz

import "math/rand/v2"

// Shuffle returns a new slice holding a random permutation of s.
// The input is never modified. A nil rng uses the global source.
func Shuffle[T any](s []T, rng *rand.Rand) []T {
	out := make([]T, len(s))
	copy(out, s)

	for i := len(out) - 1; i > 0; i-- {
		j := intN(rng, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
