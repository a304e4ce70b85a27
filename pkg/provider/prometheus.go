package provider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics used in monitoring gateway requests.
var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of gateway requests by operation and outcome",
			Name:      "gateway_requests_total",
			Namespace: "starky",
		},
		[]string{"operation", "outcome"},
	)
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Help:      "Gateway request duration",
			Name:      "gateway_request_duration_seconds",
			Namespace: "starky",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(
		requestsTotal,
		requestDuration,
	)
}

func addReqMetric(operation string, outcome string, t time.Duration) {
	requestsTotal.WithLabelValues(operation, outcome).Inc()
	requestDuration.WithLabelValues(operation).Observe(t.Seconds())
}
