package placer

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/VallariAg/placer/internal/hash"
	"github.com/VallariAg/placer/internal/logger"
	"github.com/VallariAg/placer/internal/metrics"
	"github.com/VallariAg/placer/internal/pattern"
	"github.com/VallariAg/placer/scheduler"
	"github.com/VallariAg/placer/types"
)

// HostAssignment computes the target placement for one service.
//
// It is constructed per computation from immutable snapshots of the fleet
// and daemon inventories, holds no state between calls, and performs no
// I/O. Distinct services with separate snapshots can be placed
// concurrently.
type HostAssignment struct {
	spec      *types.ServiceSpec
	hosts     []types.HostSpec
	daemons   []types.DaemonDescription
	scheduler types.Scheduler
	filter    types.AdmissionFilter
	allowColo bool
	logger    types.Logger
	metrics   types.MetricsCollector

	serviceName string
}

// New creates a HostAssignment for the given service spec and inventory
// snapshots.
//
// The hosts and daemons slices are read-only inputs owned by the caller;
// the caller refreshes them before each computation. The daemons slice
// should contain only daemons belonging to this service.
//
// Parameters:
//   - spec: Service identity and placement declaration
//   - hosts: Known fleet inventory
//   - daemons: Daemons of this service currently running
//   - opts: Optional configuration (WithScheduler, WithAdmissionFilter,
//     WithColocation, WithLogger, WithMetrics)
//
// Returns:
//   - *HostAssignment: Engine ready for Place
//   - error: ErrServiceSpecRequired when spec is nil
func New(spec *types.ServiceSpec, hosts []types.HostSpec, daemons []types.DaemonDescription, opts ...Option) (*HostAssignment, error) {
	if spec == nil {
		return nil, ErrServiceSpecRequired
	}

	options := assignmentOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.scheduler == nil {
		options.scheduler = scheduler.NewSimple()
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &HostAssignment{
		spec:        spec,
		hosts:       hosts,
		daemons:     daemons,
		scheduler:   options.scheduler,
		filter:      options.filter,
		allowColo:   options.allowColo,
		logger:      options.logger,
		metrics:     options.metrics,
		serviceName: spec.ServiceName(),
	}, nil
}

// Validate checks the placement spec against the fleet inventory.
//
// Rules:
//   - Count, when present, must be at least one
//   - CountPerHost above one requires colocation (WithColocation)
//   - Every explicitly-named host must exist in the inventory
//   - A host pattern must match at least one known host
//   - A label must match at least one known host
//
// Any violation fails fast; Place never returns a partial placement.
//
// Returns:
//   - error: A validation error (see IsValidationError), or nil
func (a *HostAssignment) Validate() error {
	pl := a.spec.Placement

	if pl.Count != nil && *pl.Count < 1 {
		return fmt.Errorf("count %d for %s: %w", *pl.Count, a.spec, ErrInvalidCount)
	}

	if pl.CountPerHost > 1 && !a.allowColo {
		return fmt.Errorf("%w: %s", ErrColocationNotAllowed, a.spec.ServiceType)
	}

	if len(pl.Hosts) > 0 {
		known := make(map[string]struct{}, len(a.hosts))
		for _, h := range a.hosts {
			known[h.Hostname] = struct{}{}
		}
		var unknown []string
		for _, slot := range pl.Hosts {
			if _, ok := known[slot.Hostname]; !ok && !slices.Contains(unknown, slot.Hostname) {
				unknown = append(unknown, slot.Hostname)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return fmt.Errorf("cannot place %s on %s: %w", a.spec, strings.Join(unknown, ", "), ErrUnknownHosts)
		}
	}

	if pl.HostPattern != "" {
		if len(pattern.MatchingHostnames(pl.HostPattern, a.hostnames())) == 0 {
			return fmt.Errorf("cannot place %s: %w for pattern %s", a.spec, ErrNoMatchingHosts, pl.HostPattern)
		}
	}

	if pl.Label != "" {
		if len(a.hostsByLabel(pl.Label)) == 0 {
			return fmt.Errorf("cannot place %s: %w for label %s", a.spec, ErrNoMatchingHosts, pl.Label)
		}
	}

	return nil
}

// Place computes the target placement, taking into account:
//
//   - all known hosts
//   - hosts with existing daemons
//   - the placement spec
//   - the admission filter, when set
//
// Returns:
//   - []types.HostSlot: Ordered target placement
//   - error: A validation error on a malformed spec; never a partial result
func (a *HostAssignment) Place() ([]types.HostSlot, error) {
	start := time.Now()

	if err := a.Validate(); err != nil {
		a.metrics.RecordValidationFailure(a.serviceName)
		return nil, err
	}

	candidates, err := a.candidates()
	if err != nil {
		a.metrics.RecordValidationFailure(a.serviceName)
		return nil, err
	}

	pl := a.spec.Placement

	// Without a total count the candidate list is definitive: place on
	// every matching host, repeated per-host-replica times.
	if pl.Count == nil {
		a.logger.Debug("placing on all candidates", "service", a.serviceName, "candidates", candidates)
		final := make([]types.HostSlot, 0, len(candidates)*pl.PerHost())
		for range pl.PerHost() {
			final = append(final, candidates...)
		}
		a.metrics.RecordScaleDecision(a.serviceName, "steady")
		a.metrics.RecordPlacement(a.serviceName, time.Since(start).Seconds(), len(candidates), len(final))

		return final, nil
	}

	count := *pl.Count

	// Prefer hosts that already have daemons. This keeps daemons where
	// they are instead of re-assigning to new hosts every time the
	// cluster gains a node.
	existing := a.hostsWithDaemons(candidates)
	need := count - len(existing)
	others := differenceSlots(candidates, existing)

	var final []types.HostSlot
	switch {
	case need <= 0:
		// Current placement meets or exceeds the target: select down to
		// count, retaining hosts with active daemons first.
		final = a.preferActiveDaemonHosts(existing, count)
		if need < 0 {
			a.metrics.RecordScaleDecision(a.serviceName, "shrink")
		} else {
			a.metrics.RecordScaleDecision(a.serviceName, "steady")
		}
	default:
		picked := a.scheduler.Place(others, need)
		a.logger.Debug("combining existing daemon hosts with new hosts",
			"service", a.serviceName, "existing", existing, "new", picked)
		final = mergeSlots(existing, picked)
		a.metrics.RecordScaleDecision(a.serviceName, "grow")
	}

	a.metrics.RecordPlacement(a.serviceName, time.Since(start).Seconds(), len(candidates), len(final))

	return final, nil
}

// AddDaemonHosts returns the slots of the target placement whose hostname
// has no existing daemon, i.e. where the reconciler must start one.
//
// Parameters:
//   - target: Placement previously computed by Place
//
// Returns:
//   - []types.HostSlot: Slots needing a new daemon, target order preserved
func (a *HostAssignment) AddDaemonHosts(target []types.HostSlot) []types.HostSlot {
	occupied := make(map[string]struct{}, len(a.daemons))
	for _, d := range a.daemons {
		occupied[d.Hostname] = struct{}{}
	}

	var out []types.HostSlot
	for _, slot := range target {
		if _, ok := occupied[slot.Hostname]; !ok {
			out = append(out, slot)
		}
	}

	return out
}

// RemoveDaemonHosts returns the daemons whose host is absent from the
// target placement, i.e. which the reconciler must stop.
//
// Each target slot accounts for one daemon on its host, so colocated
// surplus daemons on a still-targeted host are retired as well.
//
// Parameters:
//   - target: Placement previously computed by Place
//
// Returns:
//   - []types.DaemonDescription: Daemons to retire, inventory order preserved
func (a *HostAssignment) RemoveDaemonHosts(target []types.HostSlot) []types.DaemonDescription {
	remaining := make(map[string]int, len(target))
	for _, slot := range target {
		remaining[slot.Hostname]++
	}

	var out []types.DaemonDescription
	for _, d := range a.daemons {
		if remaining[d.Hostname] > 0 {
			remaining[d.Hostname]--
			continue
		}
		out = append(out, d)
	}

	return out
}

// candidates resolves the placement spec into an ordered candidate list.
//
// Resolution priority: explicit hosts, label, host pattern, then (with a
// bare count) every known host. The admission filter is applied afterward,
// and the result is shuffled deterministically with a seed derived from
// the service name.
func (a *HostAssignment) candidates() ([]types.HostSlot, error) {
	pl := a.spec.Placement

	var slots []types.HostSlot
	switch {
	case len(pl.Hosts) > 0:
		slots = slices.Clone(pl.Hosts)
	case pl.Label != "":
		for _, h := range a.hostsByLabel(pl.Label) {
			slots = append(slots, types.HostSlot{Hostname: h.Hostname})
		}
	case pl.HostPattern != "":
		slots = types.SlotsOf(pattern.MatchingHostnames(pl.HostPattern, a.hostnames())...)
	case pl.Count != nil:
		// Backward compatibility: an empty placement with a count means
		// "anywhere in the fleet", the same as pattern "*".
		slots = types.SlotsOf(a.hostnames()...)
	default:
		return nil, fmt.Errorf("cannot place %s: %w", a.spec, ErrEmptyPlacement)
	}

	if a.filter != nil {
		kept := make([]types.HostSlot, 0, len(slots))
		dropped := 0
		for _, slot := range slots {
			if a.filter(slot.Hostname) {
				kept = append(kept, slot)
				continue
			}
			dropped++
			a.logger.Info("filtered out host: admission precondition not met",
				"service", a.serviceName, "hostname", slot.Hostname)
		}
		if dropped > 0 {
			a.metrics.RecordHostsFiltered(a.serviceName, dropped)
		}
		slots = kept
	}

	// Shuffle for pseudo-random selection. The seed comes off the service
	// name, so one service always resolves the same order while different
	// services spread over different hosts.
	hash.Shuffle(hash.SeedFromString(a.serviceName), slots)

	return slots, nil
}

// hostsWithDaemons returns the candidates that already run a daemon of
// this service, preserving candidate order.
func (a *HostAssignment) hostsWithDaemons(candidates []types.HostSlot) []types.HostSlot {
	occupied := make(map[string]struct{}, len(a.daemons))
	for _, d := range a.daemons {
		occupied[d.Hostname] = struct{}{}
	}

	var existing []types.HostSlot
	for _, slot := range candidates {
		if _, ok := occupied[slot.Hostname]; ok {
			existing = append(existing, slot)
		}
	}
	a.logger.Debug("hosts with existing daemons", "service", a.serviceName, "existing", existing)

	return existing
}

// preferActiveDaemonHosts selects count slots out of existing, retaining
// hosts that run an active daemon instance first. Dropping an active
// instance forces an immediate failover; dropping a standby does not.
func (a *HostAssignment) preferActiveDaemonHosts(existing []types.HostSlot, count int) []types.HostSlot {
	active := a.hostsWithActiveDaemon(existing)
	if len(active) == 0 || count <= 0 {
		return a.scheduler.Place(existing, count)
	}

	if len(active) >= count {
		return a.scheduler.Place(active, count)
	}

	rest := differenceSlots(existing, active)

	return mergeSlots(active, a.scheduler.Place(rest, count-len(active)))
}

// hostsWithActiveDaemon returns the slots of hosts running an active
// daemon instance, ordered by daemon inventory order, deduplicated.
func (a *HostAssignment) hostsWithActiveDaemon(slots []types.HostSlot) []types.HostSlot {
	seen := make(map[types.HostSlot]struct{})
	var active []types.HostSlot
	for _, d := range a.daemons {
		if !d.IsActive {
			continue
		}
		for _, slot := range slots {
			if slot.Hostname != d.Hostname {
				continue
			}
			if _, ok := seen[slot]; !ok {
				seen[slot] = struct{}{}
				active = append(active, slot)
			}
		}
	}

	return active
}

// hostnames returns the hostnames of the fleet inventory, order as given.
func (a *HostAssignment) hostnames() []string {
	names := make([]string, 0, len(a.hosts))
	for _, h := range a.hosts {
		names = append(names, h.Hostname)
	}

	return names
}

// hostsByLabel returns the inventory hosts carrying the given label.
func (a *HostAssignment) hostsByLabel(label string) []types.HostSpec {
	var out []types.HostSpec
	for _, h := range a.hosts {
		if h.HasLabel(label) {
			out = append(out, h)
		}
	}

	return out
}
