package placer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VallariAg/placer/types"
)

func TestMergeSlots(t *testing.T) {
	t.Run("left entries come first and win by hostname", func(t *testing.T) {
		merged := mergeSlots(SlotsOf("h1", "h2"), SlotsOf("h2", "h3"))

		require.Equal(t, SlotsOf("h1", "h2", "h3"), merged)
	})

	t.Run("keeps the left slot's pinning on a tie", func(t *testing.T) {
		lh := []types.HostSlot{{Hostname: "h", Name: "x"}}
		rh := []types.HostSlot{{Hostname: "h", Name: "y"}}

		merged := mergeSlots(lh, rh)

		require.Equal(t, []types.HostSlot{{Hostname: "h", Name: "x"}}, merged)
	})

	t.Run("handles empty sides", func(t *testing.T) {
		require.Equal(t, SlotsOf("h1"), mergeSlots(SlotsOf("h1"), nil))
		require.Equal(t, SlotsOf("h1"), mergeSlots(nil, SlotsOf("h1")))
		require.Empty(t, mergeSlots(nil, nil))
	})
}

func TestDifferenceSlots(t *testing.T) {
	t.Run("removes right hostnames from the left", func(t *testing.T) {
		diff := differenceSlots(SlotsOf("h1", "h2", "h3"), SlotsOf("h2"))

		require.Equal(t, SlotsOf("h1", "h3"), diff)
	})

	t.Run("matches by hostname regardless of pinning", func(t *testing.T) {
		lh := []types.HostSlot{{Hostname: "h1", Name: "x"}, {Hostname: "h2", Name: "y"}}
		rh := SlotsOf("h2")

		diff := differenceSlots(lh, rh)

		require.Equal(t, []types.HostSlot{{Hostname: "h1", Name: "x"}}, diff)
	})

	t.Run("empty right side is the identity", func(t *testing.T) {
		require.Equal(t, SlotsOf("h1", "h2"), differenceSlots(SlotsOf("h1", "h2"), nil))
	})
}
