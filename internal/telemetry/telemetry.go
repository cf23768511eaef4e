// Package telemetry exports Prometheus metrics for the aggregation
// engine: per-adapter call outcomes and fan-out latency.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Adapter call outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

// Metrics holds the aggregator's Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	// AdapterRequests counts adapter calls by source id and outcome.
	AdapterRequests *prometheus.CounterVec

	// AdapterArticles counts records contributed per source id.
	AdapterArticles *prometheus.CounterVec

	// FanoutDuration observes the wall-clock time of one fan-out by
	// orchestrator name.
	FanoutDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the metric set on a fresh registry,
// so tests can build as many instances as they like.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		AdapterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsagg_adapter_requests_total",
			Help: "Adapter calls by source and outcome.",
		}, []string{"source", "outcome"}),
		AdapterArticles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsagg_adapter_articles_total",
			Help: "Articles contributed to aggregates per source.",
		}, []string{"source"}),
		FanoutDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "newsagg_fanout_duration_seconds",
			Help:    "Wall-clock duration of one adapter fan-out.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"orchestrator"}),
	}
}

// ObserveAdapter records one adapter call outcome and its contribution.
func (m *Metrics) ObserveAdapter(sourceID, outcome string, articles int) {
	m.AdapterRequests.WithLabelValues(sourceID, outcome).Inc()
	if articles > 0 {
		m.AdapterArticles.WithLabelValues(sourceID).Add(float64(articles))
	}
}

// ObserveFanout records the duration of one orchestrator fan-out.
func (m *Metrics) ObserveFanout(orchestrator string, d time.Duration) {
	m.FanoutDuration.WithLabelValues(orchestrator).Observe(d.Seconds())
}

// Handler returns the exposition handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
