package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "playtime"

// Metrics holds the service's collectors on a private registry so that
// several instances (e.g. in tests) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	LookupsTotal     *prometheus.CounterVec
	StepDuration     *prometheus.HistogramVec
	UpstreamDuration *prometheus.HistogramVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Total number of playtime lookups by outcome",
			},
			[]string{"outcome"}, // ok, verification_failed, not_found, upstream_error, internal_error
		),
		StepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "step_duration_seconds",
				Help:      "Time spent in each lookup pipeline step",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"step"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Latency of outbound requests by upstream service",
				Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"service", "code", "method"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of inbound HTTP requests",
			},
			[]string{"code", "method"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of inbound HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.LookupsTotal,
		m.StepDuration,
		m.UpstreamDuration,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// InstrumentTransport wraps an outbound transport, labelling requests with service
func (m *Metrics) InstrumentTransport(service string, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	obs := m.UpstreamDuration.MustCurryWith(prometheus.Labels{"service": service})
	return promhttp.InstrumentRoundTripperDuration(obs, next)
}

// InstrumentHandler counts and times inbound requests
func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.HTTPRequests,
		promhttp.InstrumentHandlerDuration(m.HTTPDuration, next))
}

// ObserveLookup records the outcome of one lookup
func (m *Metrics) ObserveLookup(outcome string) {
	m.LookupsTotal.WithLabelValues(outcome).Inc()
}

// ObserveStep records how long a pipeline step took
func (m *Metrics) ObserveStep(step string, d time.Duration) {
	m.StepDuration.WithLabelValues(step).Observe(d.Seconds())
}
