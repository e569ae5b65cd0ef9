package types

import "strings"

// HostSlot identifies one placement target: a hostname plus optional
// sub-identifiers that disambiguate multiple slots on the same host.
//
// HostSlot is a comparable value type. Merge and difference operations over
// slot sequences key on Hostname only; Network and Name ride along so the
// orchestration layer can pin a daemon to a network or a fixed daemon id.
type HostSlot struct {
	// Hostname is the placement target host.
	Hostname string `json:"hostname"`

	// Network optionally pins the daemon to a network/CIDR on the host.
	Network string `json:"network,omitempty"`

	// Name optionally fixes the daemon id to create on this slot.
	Name string `json:"name,omitempty"`
}

// String renders the slot in "host:network=name" form, omitting empty parts.
func (s HostSlot) String() string {
	var b strings.Builder
	b.WriteString(s.Hostname)
	if s.Network != "" {
		b.WriteString(":")
		b.WriteString(s.Network)
	}
	if s.Name != "" {
		b.WriteString("=")
		b.WriteString(s.Name)
	}

	return b.String()
}

// SlotsOf turns a list of hostnames into bare host slots, preserving order.
//
// Parameters:
//   - hostnames: Host names to wrap
//
// Returns:
//   - []HostSlot: One bare slot per hostname
func SlotsOf(hostnames ...string) []HostSlot {
	slots := make([]HostSlot, 0, len(hostnames))
	for _, h := range hostnames {
		slots = append(slots, HostSlot{Hostname: h})
	}

	return slots
}
