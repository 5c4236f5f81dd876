// Package metrics exposes Prometheus collectors for the boardroom
// service, registered on the default registry and served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled HTTP requests by route and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boardroom_http_requests_total",
		Help: "HTTP requests handled, by route and status code.",
	}, []string{"path", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boardroom_http_request_duration_seconds",
		Help:    "HTTP request latency, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// ListingOutcomes counts calendar listing attempts by outcome.
	ListingOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boardroom_calendar_listings_total",
		Help: "Calendar listing attempts, by outcome.",
	}, []string{"outcome"})
)
