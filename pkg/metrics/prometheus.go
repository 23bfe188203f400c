// Package metrics provides Prometheus metrics for the jyotish reading service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// HTTP boundary
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Reading pipeline
	readingsByKind *prometheus.CounterVec
	emptyResults   *prometheus.CounterVec

	// Upstream generation API
	upstreamRequests *prometheus.CounterVec
	upstreamDuration prometheus.Histogram

	// Daily horoscope cache
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "jyotish",
		subsystem:        "readings",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.readingsByKind = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_by_kind_total",
		Help:      "Reading requests by resolved template kind",
	}, []string{"kind"})

	m.emptyResults = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_results_total",
		Help:      "Generations that produced no usable text, by reason",
	}, []string{"reason"})

	m.upstreamRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_requests_total",
		Help:      "Calls to the generation API by HTTP status code",
	}, []string{"status"})

	m.upstreamDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_request_duration_ms",
		Help:      "Generation API call duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "daily_cache_hits_total",
		Help:      "Daily horoscope cache hits",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "daily_cache_misses_total",
		Help:      "Daily horoscope cache misses",
	})
}

// GetRegistry returns the registry that /healthz serves.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

// RecordHTTPRequest records one handled HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration records the handling latency of one request.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// RecordReadingKind counts a request against its resolved template kind.
func RecordReadingKind(kind string) {
	if globalManager.enabled {
		globalManager.readingsByKind.WithLabelValues(kind).Inc()
	}
}

// RecordEmptyResult counts a generation that yielded no usable text.
// Reason is "no_content" or "safety_blocked".
func RecordEmptyResult(reason string) {
	if globalManager.enabled {
		globalManager.emptyResults.WithLabelValues(reason).Inc()
	}
}

// RecordUpstreamRequest counts one generation API call by status code.
func RecordUpstreamRequest(status string) {
	if globalManager.enabled {
		globalManager.upstreamRequests.WithLabelValues(status).Inc()
	}
}

// RecordUpstreamDuration records the latency of one generation API call.
func RecordUpstreamDuration(durationMs float64) {
	if globalManager.enabled {
		globalManager.upstreamDuration.Observe(durationMs)
	}
}

// RecordCacheHit counts a daily horoscope served from cache.
func RecordCacheHit() {
	if globalManager.enabled {
		globalManager.cacheHits.Inc()
	}
}

// RecordCacheMiss counts a daily horoscope that went upstream.
func RecordCacheMiss() {
	if globalManager.enabled {
		globalManager.cacheMisses.Inc()
	}
}
