package types

import "errors"

// Sentinel errors for the placer library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Engine construction errors.
var (
	// ErrServiceSpecRequired is returned when the service spec is nil.
	ErrServiceSpecRequired = errors.New("service spec is required")
)

// Validation errors - returned by HostAssignment.Validate and Place.
//
// Placement either fully succeeds or fully fails: none of these is ever
// accompanied by a partial result.
var (
	// ErrInvalidCount is returned when a placement count is present but below one.
	ErrInvalidCount = errors.New("count must be at least 1")

	// ErrColocationNotAllowed is returned when count-per-host exceeds one
	// without colocation being explicitly allowed.
	ErrColocationNotAllowed = errors.New("cannot place more than one daemon per host")

	// ErrUnknownHosts is returned when explicitly-named hosts are missing
	// from the fleet inventory.
	ErrUnknownHosts = errors.New("unknown hosts")

	// ErrNoMatchingHosts is returned when a label or host pattern selects
	// no host in the fleet.
	ErrNoMatchingHosts = errors.New("no matching hosts")

	// ErrEmptyPlacement is returned when a placement specifies no hosts,
	// no label, no pattern, and no count.
	ErrEmptyPlacement = errors.New("placement spec is empty: no hosts, no label, no pattern, no count")
)

// validationErrors is the closed set of errors considered validation failures.
var validationErrors = []error{
	ErrInvalidCount,
	ErrColocationNotAllowed,
	ErrUnknownHosts,
	ErrNoMatchingHosts,
	ErrEmptyPlacement,
}

// IsValidationError reports whether err is (or wraps) one of the placement
// validation errors, as opposed to a usage error such as a nil spec.
//
// Parameters:
//   - err: Error returned by Validate or Place
//
// Returns:
//   - bool: true when err stems from an invalid placement spec
func IsValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
