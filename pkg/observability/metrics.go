// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the websearch-mcp server.
package observability

import "github.com/prometheus/client_golang/prometheus"

// SearchBuckets defines histogram buckets suited for search API latencies,
// ranging from 50ms to 30s.
var SearchBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

var (
	// RequestsTotal counts all HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websearch_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "websearch_request_duration_seconds",
			Help:    "Request duration",
			Buckets: SearchBuckets,
		},
		[]string{"method"},
	)

	// ToolExecutionsTotal counts web_search tool calls by outcome status.
	ToolExecutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websearch_tool_executions_total",
			Help: "Tool executions",
		},
		[]string{"status"},
	)

	// ProviderAttemptsTotal counts individual provider invocations by
	// provider and outcome (success, empty, auth, quota, network, malformed).
	ProviderAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websearch_provider_attempts_total",
			Help: "Provider attempts",
		},
		[]string{"provider", "outcome"},
	)

	// ProviderLatency records per-provider call latency in seconds.
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "websearch_provider_latency_seconds",
			Help:    "Provider latency",
			Buckets: SearchBuckets,
		},
		[]string{"provider"},
	)

	// ResultsReturned records the number of search results returned per
	// successful provider call.
	ResultsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "websearch_results_returned",
			Help:    "Number of search results returned",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
		[]string{"provider"},
	)

	// FallbackDepth records how many providers were tried beyond the first
	// before a search completed (0 = first pick answered).
	FallbackDepth = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "websearch_fallback_depth",
			Help:    "Providers tried beyond the first per search",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		ToolExecutionsTotal,
		ProviderAttemptsTotal,
		ProviderLatency,
		ResultsReturned,
		FallbackDepth,
	)
}
