// Package hash provides stable seed derivation and a pinned deterministic
// permutation used for pseudo-random host ordering.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// SeedFromString derives a stable 64-bit seed from s using xxh3.
//
// The mapping is fixed for the lifetime of the library: the same string
// always yields the same seed across processes and hosts, which is what
// makes repeated placement computations for one service agree with each
// other without persisting any state.
//
// Parameters:
//   - s: Stable identity to hash (typically a service name)
//
// Returns:
//   - uint64: Seed for Shuffle
func SeedFromString(s string) uint64 {
	return xxh3.HashString(s)
}

// Shuffle permutes items in place using a Fisher-Yates walk whose swap
// indices are drawn from xxh3 over (seed, position).
//
// The permutation is a pure function of seed and len(items): equal inputs
// produce equal output orderings, and distinct seeds decorrelate the
// orderings of different services over the same candidate pool. The
// algorithm is deliberately explicit rather than delegated to math/rand so
// the permutation stays pinned across Go releases.
//
// Parameters:
//   - seed: Permutation seed (see SeedFromString)
//   - items: Slice to permute in place
func Shuffle[T any](seed uint64, items []T) {
	var buf [8]byte
	for i := len(items) - 1; i > 0; i-- {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		j := int(xxh3.HashSeed(buf[:], seed) % uint64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}
