// Package metrics counts what the calculator does in one run.
//
// The CLI is short-lived, so instead of serving /metrics the counters are
// written to a node_exporter textfile when a path is configured.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters and the registry they are registered in.
type Metrics struct {
	registry *prometheus.Registry

	SummariesCalculated prometheus.Counter
	AmountsSpelled      *prometheus.CounterVec
	DraftOperations     *prometheus.CounterVec
	ValidationFailures  prometheus.Counter
}

// New creates counters in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SummariesCalculated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "servicecharge",
			Name:      "summaries_calculated_total",
			Help:      "Number of bill summaries calculated.",
		}),
		AmountsSpelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "servicecharge",
			Name:      "amounts_spelled_total",
			Help:      "Number of amounts converted to words, by language.",
		}, []string{"language"}),
		DraftOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "servicecharge",
			Name:      "draft_operations_total",
			Help:      "Draft store operations, by operation and result.",
		}, []string{"operation", "result"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "servicecharge",
			Name:      "validation_failures_total",
			Help:      "Number of bills rejected by validation.",
		}),
	}

	m.registry.MustRegister(
		m.SummariesCalculated,
		m.AmountsSpelled,
		m.DraftOperations,
		m.ValidationFailures,
	)
	return m
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// DraftOperation records the outcome of a draft store call.
func (m *Metrics) DraftOperation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.DraftOperations.WithLabelValues(op, result).Inc()
}

// WriteTextfile writes all metrics in the text exposition format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
