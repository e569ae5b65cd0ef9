package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/VallariAg/placer/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so constructing the collector
// never panics on a registry that already holds the collectors (e.g. when
// several engines share one registry).
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	placements         *prometheus.CounterVec
	placementDuration  prometheus.Histogram
	targetHosts        *prometheus.GaugeVec
	candidateHosts     *prometheus.GaugeVec
	validationFailures *prometheus.CounterVec
	hostsFiltered      *prometheus.CounterVec
	scaleDecisions     *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "placer" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "placer"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.placements = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "placements_total",
			Help:      "Total placement computations by service.",
		}, []string{"service"})

		p.placementDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "placement_duration_seconds",
			Help:      "Latency of placement computations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs .. ~0.4s
		})

		p.targetHosts = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "target_hosts",
			Help:      "Number of slots in the most recent target placement by service.",
		}, []string{"service"})

		p.candidateHosts = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "candidate_hosts",
			Help:      "Number of candidate slots after resolution and filtering by service.",
		}, []string{"service"})

		p.validationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "validation_failures_total",
			Help:      "Total placements rejected during validation by service.",
		}, []string{"service"})

		p.hostsFiltered = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "hosts_filtered_total",
			Help:      "Total hosts dropped by the admission filter by service.",
		}, []string{"service"})

		p.scaleDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "scale_decisions_total",
			Help:      "Reconciliation directions taken (grow,shrink,steady) by service.",
		}, []string{"service", "direction"})

		p.reg.MustRegister(p.placements)
		p.reg.MustRegister(p.placementDuration)
		p.reg.MustRegister(p.targetHosts)
		p.reg.MustRegister(p.candidateHosts)
		p.reg.MustRegister(p.validationFailures)
		p.reg.MustRegister(p.hostsFiltered)
		p.reg.MustRegister(p.scaleDecisions)
	})
}

// RecordPlacement records a completed placement computation.
func (p *PrometheusCollector) RecordPlacement(service string, duration float64, candidates, targets int) {
	p.ensureRegistered()
	p.placements.WithLabelValues(service).Inc()
	p.placementDuration.Observe(duration)
	p.candidateHosts.WithLabelValues(service).Set(float64(candidates))
	p.targetHosts.WithLabelValues(service).Set(float64(targets))
}

// RecordValidationFailure increments the validation failure counter for the service.
func (p *PrometheusCollector) RecordValidationFailure(service string) {
	p.ensureRegistered()
	p.validationFailures.WithLabelValues(service).Inc()
}

// RecordHostsFiltered adds count to the filtered hosts counter for the service.
func (p *PrometheusCollector) RecordHostsFiltered(service string, count int) {
	p.ensureRegistered()
	p.hostsFiltered.WithLabelValues(service).Add(float64(count))
}

// RecordScaleDecision increments the scale decision counter for the service and direction.
func (p *PrometheusCollector) RecordScaleDecision(service, direction string) {
	p.ensureRegistered()
	p.scaleDecisions.WithLabelValues(service, direction).Inc()
}
