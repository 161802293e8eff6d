// Package metrics holds the Prometheus instruments for the payable
// submission workflow.  All collectors register with the global registry,
// so importing this package is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payable_submissions_total",
			Help: "Submission attempts received, valid or not.",
		})

	SubmissionsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payable_submissions_rejected_total",
			Help: "Submissions rejected by local validation.",
		})

	GatewayFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payable_gateway_failures_total",
			Help: "Gateway calls that resolved with a failure reason.",
		})

	AcceptedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payable_accepted_total",
			Help: "Payables accepted and assigned an identifier.",
		})

	GatewayLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "payable_gateway_latency_seconds",
			Help:    "Wall time of gateway Create calls.",
			Buckets: prometheus.DefBuckets,
		})
)

func init() {
	prometheus.MustRegister(
		SubmissionsTotal,
		SubmissionsRejectedTotal,
		GatewayFailuresTotal,
		AcceptedTotal,
		GatewayLatency,
	)
}
