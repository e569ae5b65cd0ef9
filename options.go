package placer

import "github.com/VallariAg/placer/types"

// Option configures a HostAssignment with optional dependencies.
type Option func(*assignmentOptions)

// assignmentOptions holds optional HostAssignment configuration.
type assignmentOptions struct {
	scheduler types.Scheduler
	filter    types.AdmissionFilter
	allowColo bool
	logger    types.Logger
	metrics   types.MetricsCollector
}

// WithScheduler sets a custom host selection scheduler.
//
// Parameters:
//   - s: Scheduler implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	assignment, _ := placer.New(spec, hosts, daemons, placer.WithScheduler(scheduler.NewSimple()))
func WithScheduler(s types.Scheduler) Option {
	return func(o *assignmentOptions) {
		o.scheduler = s
	}
}

// WithAdmissionFilter sets an out-of-band precondition applied to candidate
// hosts after constraint resolution.
//
// Hosts for which the filter returns false are dropped from the candidate
// list and logged; they never appear in the target placement. The filter
// must be side-effect-free and return promptly, since the engine applies no
// timeout around it.
//
// Parameters:
//   - f: Admission filter callback
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	filter := func(hostname string) bool { return supportsVirtualIP(hostname) }
//	assignment, _ := placer.New(spec, hosts, daemons, placer.WithAdmissionFilter(filter))
func WithAdmissionFilter(f types.AdmissionFilter) Option {
	return func(o *assignmentOptions) {
		o.filter = f
	}
}

// WithColocation allows placing more than one daemon of the service on a
// single host, which is required for count-per-host values above one.
//
// Returns:
//   - Option: Functional option for New
func WithColocation() Option {
	return func(o *assignmentOptions) {
		o.allowColo = true
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	assignment, _ := placer.New(spec, hosts, daemons, placer.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *assignmentOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "placer")
//	assignment, _ := placer.New(spec, hosts, daemons, placer.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *assignmentOptions) {
		o.metrics = metrics
	}
}
