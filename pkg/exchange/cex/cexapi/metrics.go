package cexapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	requestStatusOK       = "ok"
	requestStatusRejected = "rejected"
	requestStatusError    = "error"
)

var latencyMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "cex_api_latency_ms",
		Help:    "The histogram of latency returned by CEX.IO API",
		Buckets: prometheus.ExponentialBuckets(20, 2, 9), // 20ms to 5120ms
	},
	[]string{"endpoint", "status"},
)

var requestCounterMetrics = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cex_api_requests_total",
		Help: "The number of CEX.IO API requests by endpoint and outcome",
	},
	[]string{"endpoint", "status"},
)

func recordRequestMetrics(endpoint Endpoint, start time.Time, status string) {
	labels := prometheus.Labels{
		"endpoint": endpoint.String(),
		"status":   status,
	}

	latencyMetrics.With(labels).Observe(float64(time.Since(start).Milliseconds()))
	requestCounterMetrics.With(labels).Inc()
}
