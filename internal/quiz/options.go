package quiz

import "math/rand/v2"

// OptionCount is the number of choices presented per question when the
// answer universe is large enough.
const OptionCount = 4

// Options returns up to OptionCount distinct choices, one of which is
// correct, in random order. When the universe has fewer than
// OptionCount-1 other values, fewer options are returned.
func Options(correct string, universe []string, rng *rand.Rand) []string {
	seen := map[string]bool{correct: true}
	others := make([]string, 0, len(universe))
	for _, v := range universe {
		if seen[v] {
			continue
		}
		seen[v] = true
		others = append(others, v)
	}

	others = Shuffle(others, rng)
	if len(others) > OptionCount-1 {
		others = others[:OptionCount-1]
	}

	opts := append(others, correct)
	return Shuffle(opts, rng)
}

// distinct returns the values in first-seen order with duplicates removed.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
