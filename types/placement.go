package types

import (
	"fmt"
	"strings"
)

// PlacementSpec declares where a service's daemons should run.
//
// Exactly one selection mode is meant to be populated: an explicit host
// list, a label selector, a hostname pattern, or a bare Count (which
// defaults to "anywhere in the fleet"). When several are populated the
// engine resolves them in that priority order rather than rejecting the
// spec, matching the behavior orchestrators have historically shipped.
type PlacementSpec struct {
	// Hosts places daemons on exactly these slots, order as given.
	Hosts []HostSlot `json:"hosts,omitempty"`

	// Label places daemons on every host carrying this label.
	Label string `json:"label,omitempty"`

	// HostPattern places daemons on every host whose name matches this
	// fnmatch-style glob ("*" and "?" wildcards).
	HostPattern string `json:"host_pattern,omitempty"`

	// Count is the total number of daemons to place. Nil means the
	// selector alone determines the daemon count.
	Count *int `json:"count,omitempty"`

	// CountPerHost is the number of replicas per selected host.
	// Zero means one. Values above one require colocation to be allowed.
	CountPerHost int `json:"count_per_host,omitempty"`
}

// Count returns a pointer to n, for use as a PlacementSpec.Count literal.
func Count(n int) *int {
	return &n
}

// PerHost returns the effective per-host replica count (minimum 1).
func (p PlacementSpec) PerHost() int {
	if p.CountPerHost > 1 {
		return p.CountPerHost
	}

	return 1
}

// String renders a one-line description of the placement for error messages
// and logs.
func (p PlacementSpec) String() string {
	var parts []string
	if p.Count != nil {
		parts = append(parts, fmt.Sprintf("count:%d", *p.Count))
	}
	if p.CountPerHost > 0 {
		parts = append(parts, fmt.Sprintf("count-per-host:%d", p.CountPerHost))
	}
	if p.Label != "" {
		parts = append(parts, "label:"+p.Label)
	}
	if p.HostPattern != "" {
		parts = append(parts, "host-pattern:"+p.HostPattern)
	}
	for _, h := range p.Hosts {
		parts = append(parts, h.String())
	}
	if len(parts) == 0 {
		return "<empty>"
	}

	return strings.Join(parts, ";")
}
