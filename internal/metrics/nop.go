// Package metrics provides MetricsCollector implementations for the placer library.
package metrics

import "github.com/VallariAg/placer/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	assignment, _ := placer.New(spec, hosts, daemons, placer.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPlacement discards the placement metric.
func (n *NopMetrics) RecordPlacement(_ /* service */ string, _ /* duration */ float64, _ /* candidates */, _ /* targets */ int) {
	// No-op
}

// RecordValidationFailure discards the validation failure metric.
func (n *NopMetrics) RecordValidationFailure(_ /* service */ string) {
	// No-op
}

// RecordHostsFiltered discards the filtered hosts metric.
func (n *NopMetrics) RecordHostsFiltered(_ /* service */ string, _ /* count */ int) {
	// No-op
}

// RecordScaleDecision discards the scale decision metric.
func (n *NopMetrics) RecordScaleDecision(_ /* service */, _ /* direction */ string) {
	// No-op
}
