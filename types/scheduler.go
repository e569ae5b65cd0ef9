package types

// Scheduler selects a subset of hosts from a candidate pool.
//
// Implementations should:
//   - Be deterministic (same input → same output)
//   - Preserve the relative order of the pool
//   - Be stateless (no side effects)
//
// The pool handed to a Scheduler is already in priority order: the engine
// shuffles candidates deterministically per service before selection, and
// hosts with existing daemons never reach the Scheduler during a grow.
// The default implementation (scheduler.Simple) therefore just takes the
// first count elements; alternative strategies (e.g. weighted by resource
// headroom) can be injected without altering the engine.
type Scheduler interface {
	// Place returns an ordered subset of pool with at most count elements.
	//
	// Parameters:
	//   - pool: Candidate slots in priority order
	//   - count: Maximum number of slots to return; negative means no limit
	//
	// Returns:
	//   - []HostSlot: At most count slots, relative order preserved,
	//     empty (or nil) for an empty pool
	Place(pool []HostSlot, count int) []HostSlot
}

// AdmissionFilter is an out-of-band precondition applied to candidate hosts
// after constraint resolution.
//
// Returning false drops the host from the candidate list (e.g. because it
// cannot support a required virtual address). Implementations must be
// side-effect-free and return promptly: the engine applies no timeout.
type AdmissionFilter func(hostname string) bool
