package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vrio_client",
			Name:      "requests_total",
			Help:      "Vrio API calls by operation and envelope outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vrio_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of Vrio API calls, including failed ones.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func recordResult(operation string, res Result, elapsed time.Duration) {
	requestsTotal.WithLabelValues(operation, outcomeLabel(res)).Inc()
	requestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func outcomeLabel(res Result) string {
	if res.Success {
		return "success"
	}
	switch res.Fault {
	case FaultClient:
		return "client_fault"
	case FaultServer:
		return "server_fault"
	default:
		return "transport_fault"
	}
}
