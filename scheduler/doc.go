// Package scheduler provides built-in host selection scheduler implementations.
//
// Schedulers determine which hosts out of an ordered candidate pool receive
// a daemon. The engine hands every scheduler a pool that is already in
// priority order (deterministically shuffled per service, with existing
// daemon hosts handled separately), so a scheduler only decides how to take
// a subset.
//
// Built-in schedulers:
//
//   - Simple: Takes the first count hosts of the pool. Combined with the
//     engine's seeded shuffle this yields deterministic pseudo-random
//     placement with zero state.
//
// Custom schedulers (e.g. weighted by resource headroom) can be implemented
// by satisfying the types.Scheduler interface and injected with
// placer.WithScheduler.
package scheduler
