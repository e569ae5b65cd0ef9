package placer

import "github.com/VallariAg/placer/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `placer` package, while
// still providing a convenient `placer.HostSpec`, `placer.Scheduler`, etc.
// for users.
type (
	HostSpec          = types.HostSpec
	DaemonDescription = types.DaemonDescription
	HostSlot          = types.HostSlot
	PlacementSpec     = types.PlacementSpec
	ServiceSpec       = types.ServiceSpec
)

// Re-export interfaces from the internal types package for convenience.
type (
	Scheduler        = types.Scheduler
	AdmissionFilter  = types.AdmissionFilter
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Count returns a pointer to n, for use as a PlacementSpec.Count literal.
func Count(n int) *int {
	return types.Count(n)
}

// SlotsOf turns a list of hostnames into bare host slots, preserving order.
func SlotsOf(hostnames ...string) []HostSlot {
	return types.SlotsOf(hostnames...)
}
