package hash

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedFromString(t *testing.T) {
	t.Run("is stable for equal input", func(t *testing.T) {
		require.Equal(t, SeedFromString("mgr.foo"), SeedFromString("mgr.foo"))
	})

	t.Run("differs across services", func(t *testing.T) {
		require.NotEqual(t, SeedFromString("mgr.foo"), SeedFromString("mgr.bar"))
	})
}

func TestShuffle(t *testing.T) {
	items := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("host-%02d", i)
		}

		return out
	}

	t.Run("same seed produces same permutation", func(t *testing.T) {
		a := items(16)
		b := items(16)

		Shuffle(42, a)
		Shuffle(42, b)

		require.Equal(t, a, b)
	})

	t.Run("preserves membership", func(t *testing.T) {
		shuffled := items(32)

		Shuffle(SeedFromString("mon"), shuffled)

		require.ElementsMatch(t, items(32), shuffled)
	})

	t.Run("different seeds produce different permutations", func(t *testing.T) {
		a := items(24)
		b := items(24)

		Shuffle(SeedFromString("mgr.foo"), a)
		Shuffle(SeedFromString("mgr.bar"), b)

		require.NotEqual(t, a, b)
	})

	t.Run("handles empty and single-element slices", func(t *testing.T) {
		var empty []string
		Shuffle(1, empty)
		require.Empty(t, empty)

		one := []string{"h1"}
		Shuffle(1, one)
		require.Equal(t, []string{"h1"}, one)
	})

	t.Run("actually permutes a large slice", func(t *testing.T) {
		shuffled := items(64)

		Shuffle(SeedFromString("osd"), shuffled)

		require.False(t, slices.Equal(items(64), shuffled))
	})
}
