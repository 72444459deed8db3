package driver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeSkipped  = "skipped"
	OutcomeError    = "error"
)

// Metrics holds the driver's Prometheus collectors on a private registry,
// so several runners (or tests) never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	expanded *prometheus.CounterVec
	searches *prometheus.CounterVec
	cost     *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// expanded counts Successors calls. Labels: algorithm
		expanded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvsearch",
			Name:      "expanded_states_total",
			Help:      "Total states expanded by search algorithm",
		}, []string{"algorithm"}),

		// searches counts invocations. Labels: algorithm, outcome
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvsearch",
			Name:      "searches_total",
			Help:      "Total search invocations by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		// cost tracks solution costs of successful searches. Labels: algorithm
		cost: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvsearch",
			Name:      "path_cost",
			Help:      "Cumulative cost of found solutions",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200, 500},
		}, []string{"algorithm"}),

		// duration measures wall time per invocation. Labels: algorithm
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvsearch",
			Name:      "search_duration_seconds",
			Help:      "Search wall time in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"algorithm"}),
	}
}

// Registry exposes the private registry as a Gatherer.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// observe records one finished (or skipped) invocation.
func (m *Metrics) observe(algorithm string, o Outcome) {
	outcome := o.label()
	m.searches.WithLabelValues(algorithm, outcome).Inc()
	if outcome == OutcomeSkipped {
		return
	}
	m.expanded.WithLabelValues(algorithm).Add(float64(o.Expanded))
	m.duration.WithLabelValues(algorithm).Observe(o.Duration.Seconds())
	if o.Found {
		m.cost.WithLabelValues(algorithm).Observe(float64(o.Cost))
	}
}

// WriteFile writes the text exposition of every metric to path atomically.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
