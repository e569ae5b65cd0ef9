package placer

import "github.com/VallariAg/placer/types"

// Sentinel errors returned by the engine, re-exported from the types package.
var (
	// ErrServiceSpecRequired is returned when the service spec is nil.
	ErrServiceSpecRequired = types.ErrServiceSpecRequired

	// ErrInvalidCount is returned when a placement count is present but below one.
	ErrInvalidCount = types.ErrInvalidCount

	// ErrColocationNotAllowed is returned when count-per-host exceeds one
	// without colocation being explicitly allowed.
	ErrColocationNotAllowed = types.ErrColocationNotAllowed

	// ErrUnknownHosts is returned when explicitly-named hosts are missing
	// from the fleet inventory.
	ErrUnknownHosts = types.ErrUnknownHosts

	// ErrNoMatchingHosts is returned when a label or host pattern selects
	// no host in the fleet.
	ErrNoMatchingHosts = types.ErrNoMatchingHosts

	// ErrEmptyPlacement is returned when a placement specifies no hosts,
	// no label, no pattern, and no count.
	ErrEmptyPlacement = types.ErrEmptyPlacement
)

// IsValidationError reports whether err is (or wraps) one of the placement
// validation errors.
func IsValidationError(err error) bool {
	return types.IsValidationError(err)
}
