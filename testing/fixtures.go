package testing

import "github.com/VallariAg/placer/types"

// Hosts builds a fleet inventory of unlabeled hosts.
//
// Parameters:
//   - hostnames: Host names, one HostSpec per name
//
// Returns:
//   - []types.HostSpec: Inventory in the given order
func Hosts(hostnames ...string) []types.HostSpec {
	out := make([]types.HostSpec, 0, len(hostnames))
	for _, h := range hostnames {
		out = append(out, types.HostSpec{Hostname: h})
	}

	return out
}

// LabeledHost builds one inventory host carrying the given labels.
func LabeledHost(hostname string, labels ...string) types.HostSpec {
	return types.HostSpec{Hostname: hostname, Labels: labels}
}

// Daemon builds a standby daemon of the given service type on a host.
func Daemon(daemonType, daemonID, hostname string) types.DaemonDescription {
	return types.DaemonDescription{DaemonType: daemonType, DaemonID: daemonID, Hostname: hostname}
}

// ActiveDaemon builds an active daemon of the given service type on a host.
func ActiveDaemon(daemonType, daemonID, hostname string) types.DaemonDescription {
	return types.DaemonDescription{DaemonType: daemonType, DaemonID: daemonID, Hostname: hostname, IsActive: true}
}

// DaemonsOn builds one standby daemon per host, with sequential ids.
func DaemonsOn(daemonType string, hostnames ...string) []types.DaemonDescription {
	out := make([]types.DaemonDescription, 0, len(hostnames))
	for i, h := range hostnames {
		out = append(out, types.DaemonDescription{
			DaemonType: daemonType,
			DaemonID:   string(rune('a' + i)),
			Hostname:   h,
		})
	}

	return out
}
