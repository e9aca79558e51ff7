package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics stores the Prometheus collectors used across the service.
type Metrics struct {
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	Registrations prometheus.Counter
	BonusesIssued *prometheus.CounterVec
	ChainReads    *prometheus.CounterVec
}

// New builds and registers the service collectors under the namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Total newly created profiles.",
		}),
		BonusesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonuses_issued_total",
			Help:      "Total bonus transactions issued by type.",
		}, []string{"type"}),
		ChainReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_reads_total",
			Help:      "Total chain balance reads by outcome.",
		}, []string{"status"}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.Registrations,
		m.BonusesIssued,
		m.ChainReads,
	)

	return m
}

// NewNop builds the collectors without registering them, for tests.
func NewNop() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
		}, []string{"route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
		}, []string{"route"}),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "registrations_total",
		}),
		BonusesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bonuses_issued_total",
		}, []string{"type"}),
		ChainReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chain_reads_total",
		}, []string{"status"}),
	}
	return m
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
