// Package types provides core type definitions and interfaces for the placer library.
//
// This package contains shared types that are used across multiple packages in the
// placer library. By keeping these types in a separate package, we avoid import cycles
// between the main placer package and its internal implementations.
//
// Key types:
//   - HostSpec: Fleet inventory entry (hostname + labels)
//   - DaemonDescription: A daemon currently running on a host
//   - HostSlot: One placement target in the engine's output
//   - ServiceSpec / PlacementSpec: Declarative placement input
//   - Scheduler: Host selection strategy interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
