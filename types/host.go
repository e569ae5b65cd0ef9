package types

import "slices"

// HostSpec describes one host in the fleet inventory.
//
// Hosts are owned by the fleet-inventory collaborator; the placement engine
// treats them as read-only input and never mutates or caches them.
type HostSpec struct {
	// Hostname uniquely identifies the host within the fleet.
	Hostname string `json:"hostname"`

	// Addr is the address daemons are reached on (defaults to Hostname when empty).
	Addr string `json:"addr,omitempty"`

	// Labels are free-form tags used by label-based placement.
	Labels []string `json:"labels,omitempty"`

	// Status is an informational host state (e.g. "", "maintenance").
	Status string `json:"status,omitempty"`
}

// HasLabel reports whether the host carries the given label.
func (h HostSpec) HasLabel(label string) bool {
	return slices.Contains(h.Labels, label)
}

// DaemonDescription describes a daemon instance currently running on a host.
//
// Daemons are owned by the orchestration layer; the engine reads them to keep
// placements sticky and to prefer active instances during shrink.
type DaemonDescription struct {
	// DaemonType is the service type this daemon belongs to (e.g. "mgr").
	DaemonType string `json:"daemon_type"`

	// DaemonID is the per-daemon identity within the service (e.g. "a").
	DaemonID string `json:"daemon_id"`

	// Hostname is the host the daemon runs on.
	Hostname string `json:"hostname"`

	// IsActive marks the currently-serving instance of an active/standby set.
	IsActive bool `json:"is_active,omitempty"`
}

// Name returns the canonical daemon name, "<type>.<id>".
//
// Returns:
//   - string: Dot-joined daemon name, or just the type when DaemonID is empty
func (d DaemonDescription) Name() string {
	if d.DaemonID == "" {
		return d.DaemonType
	}

	return d.DaemonType + "." + d.DaemonID
}
