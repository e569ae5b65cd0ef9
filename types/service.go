package types

// ServiceSpec identifies a service and declares its placement.
//
// ServiceName is the engine's stable identity for the service: it seeds the
// deterministic candidate shuffle, so two services with different names pick
// differently-ordered hosts while one service always resolves the same way.
type ServiceSpec struct {
	// ServiceType is the kind of daemon this service runs (e.g. "mgr", "crash").
	ServiceType string `json:"service_type"`

	// ServiceID distinguishes multiple services of the same type (may be empty).
	ServiceID string `json:"service_id,omitempty"`

	// Placement declares where the service's daemons should run.
	Placement PlacementSpec `json:"placement"`
}

// ServiceName returns the stable service identity, "<type>.<id>".
//
// Returns:
//   - string: Dot-joined service name, or just the type when ServiceID is empty
func (s ServiceSpec) ServiceName() string {
	if s.ServiceID == "" {
		return s.ServiceType
	}

	return s.ServiceType + "." + s.ServiceID
}

// String renders a one-line description of the service and its placement.
func (s ServiceSpec) String() string {
	return s.ServiceName() + "(" + s.Placement.String() + ")"
}
