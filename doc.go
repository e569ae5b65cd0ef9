// Package placer computes deterministic host placements for fleet daemons.
//
// Given a declarative placement spec, the known host inventory, and the
// daemons currently running, the engine returns the ordered set of host
// slots that should run a service's daemons. It is a pure function: no
// I/O, no persisted state, no retries. An external reconciliation loop is
// expected to call it on every tick and diff the result against reality.
//
// # Quick Start
//
//	import (
//	    "github.com/VallariAg/placer"
//	    "github.com/VallariAg/placer/types"
//	)
//
//	spec := &types.ServiceSpec{
//	    ServiceType: "mgr",
//	    Placement:   types.PlacementSpec{Count: types.Count(3)},
//	}
//
//	assignment, err := placer.New(spec, hosts, daemons)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	target, err := assignment.Place()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	toStart := assignment.AddDaemonHosts(target)
//	toStop := assignment.RemoveDaemonHosts(target)
//
// # Key Properties
//
//   - Deterministic: candidates are shuffled with a seed derived from the
//     service name, so recomputation is stable and cheap while different
//     services spread across different hosts.
//   - Sticky: hosts that already run a daemon are never displaced by a new
//     candidate; only a capacity change moves daemons.
//   - Shrink-aware: when scaling down, hosts running the active instance of
//     an active/standby set are preferred for retention.
//   - Fail-fast: malformed placements produce a validation error and no
//     partial result.
//
// Host selection is delegated to a Scheduler; the default take-first
// scheduler can be replaced via WithScheduler (see the scheduler package).
package placer
