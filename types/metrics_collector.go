package types

// MetricsCollector defines methods for recording placement metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine may be invoked concurrently for distinct services, so all
// methods must be thread-safe.
type MetricsCollector interface {
	// RecordPlacement records a completed placement computation.
	//
	// Parameters:
	//   - service: Stable service name the placement was computed for
	//   - duration: Computation time in seconds
	//   - candidates: Number of candidate slots after resolution and filtering
	//   - targets: Number of slots in the final target placement
	RecordPlacement(service string, duration float64, candidates, targets int)

	// RecordValidationFailure records a placement rejected during validation.
	RecordValidationFailure(service string)

	// RecordHostsFiltered records hosts dropped by the admission filter.
	//
	// Parameters:
	//   - service: Stable service name being placed
	//   - count: Number of hosts the filter rejected
	RecordHostsFiltered(service string, count int)

	// RecordScaleDecision records the direction a reconciliation took.
	//
	// Parameters:
	//   - service: Stable service name being placed
	//   - direction: "grow", "shrink", or "steady"
	RecordScaleDecision(service string, direction string)
}
