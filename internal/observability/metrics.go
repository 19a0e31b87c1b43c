package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	requestsTotal         *prometheus.CounterVec
	requestLatencySeconds *prometheus.HistogramVec
	mutationsTotal        *prometheus.CounterVec
	auditFailuresTotal    *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classguard_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		requestLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "classguard_request_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		mutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classguard_mutations_total",
			Help: "Progress and classroom mutations by kind and outcome.",
		}, []string{"kind", "outcome"})

		auditFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classguard_audit_failures_total",
			Help: "Audit trail writes that failed after a successful mutation.",
		}, []string{"kind"})

		prometheus.MustRegister(requestsTotal, requestLatencySeconds, mutationsTotal, auditFailuresTotal)
	})
}

// Requests exposes the counter for served requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// RequestLatency exposes the latency histogram for served requests.
func RequestLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return requestLatencySeconds
}

// Mutations exposes the counter tracking mutation outcomes.
func Mutations() *prometheus.CounterVec {
	RegisterMetrics()
	return mutationsTotal
}

// AuditFailures exposes the counter for best-effort audit writes that failed.
func AuditFailures() *prometheus.CounterVec {
	RegisterMetrics()
	return auditFailuresTotal
}
