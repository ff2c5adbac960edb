// Package obs holds the Prometheus metrics exported by the front end.
package obs

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Catalog fetch outcomes
const (
	OutcomeRemote   = "remote"
	OutcomeFallback = "fallback"
)

// Metrics owns a registry so several apps (tests) can coexist in one process
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	catalogFetches      *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "passa_http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "passa_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "passa_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		catalogFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "passa_catalog_fetch_total",
			Help: "Collection fetches by resource and whether remote data or the fallback was used.",
		}, []string{"resource", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.catalogFetches,
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry (used by tests to gather values)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveFetch counts one collection fetch
func (m *Metrics) ObserveFetch(resource, outcome string) {
	m.catalogFetches.WithLabelValues(resource, outcome).Inc()
}

// FetchCount returns the current fetch counter value
func (m *Metrics) FetchCount(resource, outcome string) float64 {
	return counterValue(m.catalogFetches.WithLabelValues(resource, outcome))
}

// RequestStarted marks a request as in flight and returns the function
// that records its completion
func (m *Metrics) RequestStarted() func(method, route, status string) {
	m.httpInFlight.Inc()
	start := time.Now()
	return func(method, route, status string) {
		m.httpInFlight.Dec()
		m.httpRequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
		m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	}
}

// RequestCount returns the request counter value for the labels
func (m *Metrics) RequestCount(method, route, status string) float64 {
	return counterValue(m.httpRequestsTotal.WithLabelValues(method, route, status))
}

// InFlight returns the number of requests currently being served
func (m *Metrics) InFlight() float64 {
	return gaugeValue(m.httpInFlight)
}
