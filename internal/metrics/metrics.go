// Package metrics provides Prometheus metrics for the prediction service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects and exposes service-level Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	PredictionsServed *prometheus.CounterVec
	UpstreamErrors    *prometheus.CounterVec
	RateLimitDenials  prometheus.Counter
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	OracleLatency     prometheus.Histogram
	PersistFailures   prometheus.Counter
}

// New creates and registers all service metrics on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PredictionsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "predictions_served_total",
			Help: "Prediction responses served, by sport.",
		}, []string{"sport"}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_errors_total",
			Help: "Failed calls to external services, by service.",
		}, []string{"service"}),
		RateLimitDenials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rate_limit_denials_total",
			Help: "Requests denied by the per-client rate limiter.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "odds_cache_hits_total",
			Help: "Odds fetches served from the TTL cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "odds_cache_misses_total",
			Help: "Odds fetches that went to the upstream provider.",
		}),
		OracleLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "oracle_request_duration_seconds",
			Help:    "Latency of completion service calls.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
		}),
		PersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "prediction_persist_failures_total",
			Help: "Prediction store writes that failed (request still served).",
		}),
	}

	m.registry.MustRegister(
		m.PredictionsServed,
		m.UpstreamErrors,
		m.RateLimitDenials,
		m.CacheHits,
		m.CacheMisses,
		m.OracleLatency,
		m.PersistFailures,
	)
	return m
}

// Handler returns the scrape endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
