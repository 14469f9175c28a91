// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_requests_total",
			Help: "Total number of match requests per engine",
		},
		[]string{"engine"},
	)

	MatchRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_requests_failed_total",
			Help: "Total number of failed match requests per engine",
		},
		[]string{"engine", "error_code"},
	)

	MatchRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "match_request_duration_seconds",
			Help: "Duration of match request processing in seconds",
		},
		[]string{"engine"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_cache_lookups_total",
			Help: "Results cache lookups by outcome",
		},
		[]string{"engine", "outcome"},
	)

	NarrativeStreams = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "narrative_streams_total",
			Help: "Narrative streams by kind and source (upstream or fallback)",
		},
		[]string{"kind", "source"},
	)

	NarrativeStreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "narrative_stream_duration_seconds",
			Help: "Duration of narrative streaming in seconds",
		},
		[]string{"kind"},
	)
)
