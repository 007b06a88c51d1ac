// Package observability holds the prometheus collectors exported on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "logistics"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "orders_created_total", Help: "Orders created, by creating role"},
		[]string{"role"},
	)
	OrderClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "order_claims_total", Help: "Claim attempts by outcome"},
		[]string{"outcome"},
	)
	OrderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "order_transitions_total", Help: "Worker driven status transitions"},
		[]string{"status"},
	)
	OrderCancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "order_cancellations_total", Help: "Cancellations by role"},
		[]string{"role"},
	)
	CancellationFees = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cancellation_fee",
			Help:      "Cancellation fee charged",
			Buckets:   []float64{0, 50, 100, 250, 500, 1000, 2500, 5000},
		},
		[]string{"role"},
	)

	RelayPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "status_events_published_total", Help: "Status history rows published to the broker",
	})
	RelayFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "status_relay_failures_total", Help: "Failed relay runs",
	})
)
