package scheduler

import "github.com/VallariAg/placer/types"

// Simple implements the most simple way to pick a set of hosts: select
// from the pool up to count, in pool order.
//
// Correctness depends entirely on the pool already being in the desired
// priority order, which the engine guarantees.
type Simple struct{}

var _ types.Scheduler = (*Simple)(nil)

// NewSimple creates a new take-first scheduler.
//
// Returns:
//   - *Simple: Initialized scheduler
//
// Example:
//
//	assignment, _ := placer.New(spec, hosts, daemons, placer.WithScheduler(scheduler.NewSimple()))
func NewSimple() *Simple {
	return &Simple{}
}

// Place returns the first count slots of pool.
//
// Parameters:
//   - pool: Candidate slots in priority order
//   - count: Maximum number of slots to return; negative means no limit
//
// Returns:
//   - []types.HostSlot: At most count slots, pool order preserved
func (s *Simple) Place(pool []types.HostSlot, count int) []types.HostSlot {
	if len(pool) == 0 {
		return nil
	}
	if count < 0 || count > len(pool) {
		count = len(pool)
	}

	out := make([]types.HostSlot, count)
	copy(out, pool[:count])

	return out
}
