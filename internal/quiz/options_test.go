package quiz

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShufflePermutation(t *testing.T) {
	for n := 0; n <= 20; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := make([]int, n)
			for i := range in {
				in[i] = i
			}
			orig := slices.Clone(in)

			out := Shuffle(in, seeded(uint64(n)))
			assert.Len(t, out, n)
			assert.ElementsMatch(t, orig, out)
			assert.Equal(t, orig, in, "input must not be modified")
		})
	}
}

func TestShuffleReturnsNewSlice(t *testing.T) {
	in := []string{"only"}
	out := Shuffle(in, nil)
	require.Equal(t, in, out)

	out[0] = "changed"
	assert.Equal(t, "only", in[0])
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, Shuffle(in, seeded(42)), Shuffle(in, seeded(42)))
}

func TestShuffleRoughlyUniform(t *testing.T) {
	rng := seeded(99)
	counts := map[string]int{}
	const rounds = 6000
	for i := 0; i < rounds; i++ {
		counts[fmt.Sprint(Shuffle([]int{1, 2, 3}, rng))]++
	}
	require.Len(t, counts, 6, "all 3! permutations should appear")
	for perm, c := range counts {
		assert.InDelta(t, rounds/6, c, rounds/6*0.2, "permutation %s", perm)
	}
}

func TestOptionsLargeUniverse(t *testing.T) {
	universe := []string{"Tokyo", "Delhi", "Shanghai", "Dhaka", "Cairo", "Lagos", "Lima"}
	rng := seeded(1)

	for i := 0; i < 200; i++ {
		correct := universe[i%len(universe)]
		opts := Options(correct, universe, rng)

		require.Len(t, opts, OptionCount)
		seen := map[string]bool{}
		for _, o := range opts {
			assert.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
			assert.Contains(t, universe, o)
		}
		assert.True(t, seen[correct])
	}
}

func TestOptionsSmallUniverse(t *testing.T) {
	tests := []struct {
		name     string
		correct  string
		universe []string
		want     int
	}{
		{"only correct", "X", []string{"X"}, 1},
		{"empty universe", "X", nil, 1},
		{"one distractor", "X", []string{"X", "Y"}, 2},
		{"two distractors", "X", []string{"Y", "X", "Z"}, 3},
		{"exactly enough", "X", []string{"W", "X", "Y", "Z"}, 4},
		{"duplicates collapse", "X", []string{"Y", "Y", "X", "X", "Z"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options(tt.correct, tt.universe, seeded(3))
			assert.Len(t, opts, tt.want)
			assert.Contains(t, opts, tt.correct)
		})
	}
}

func TestOptionsCorrectNotInUniverse(t *testing.T) {
	opts := Options("Atlantis", []string{"A", "B", "C", "D", "E"}, seeded(4))
	assert.Len(t, opts, OptionCount)
	assert.Contains(t, opts, "Atlantis")
}

func TestOptionsDoesNotMutateUniverse(t *testing.T) {
	universe := []string{"A", "B", "C", "D", "E"}
	orig := append([]string(nil), universe...)
	Options("A", universe, seeded(5))
	assert.Equal(t, orig, universe)
}

func TestOptionsCorrectPositionVaries(t *testing.T) {
	universe := []string{"A", "B", "C", "D", "E", "F"}
	rng := seeded(6)
	positions := map[int]bool{}
	for i := 0; i < 100; i++ {
		for idx, o := range Options("A", universe, rng) {
			if o == "A" {
				positions[idx] = true
			}
		}
	}
	assert.Len(t, positions, OptionCount, "correct answer should land in every slot")
}
