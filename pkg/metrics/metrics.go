// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for UpstreamRequestsTotal.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
	OutcomeUpstream  = "upstream_error"
)

var (
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_upstream_requests_total",
		Help: "Total number of requests sent to the search API",
	}, []string{"endpoint", "outcome"})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "folio_upstream_request_duration_seconds",
		Help:    "Duration of search API requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	// StaleResponsesTotal counts responses dropped because a newer request of
	// the same class was issued first.
	StaleResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_stale_responses_total",
		Help: "Responses discarded because a newer request superseded them",
	}, []string{"class"})

	SuggestionsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "folio_suggestions_skipped_total",
		Help: "Input events that did not reach the suggest endpoint because the text was too short",
	})

	WebSocketSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "folio_websocket_sessions",
		Help: "Number of open WebSocket sessions",
	})

	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "folio_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)
