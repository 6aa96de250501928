// Package metrics provides Prometheus metrics for the scatterviz service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the scatterviz service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Encoding
	encodes       *prometheus.CounterVec
	pointsEncoded prometheus.Counter
	encodeErrors  *prometheus.CounterVec

	// Rendering
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec

	// Storage
	datasetsStored prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System
	memoryUsage    prometheus.Gauge
	goroutineCount prometheus.Gauge
	gcPause        prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scatterviz",
		subsystem:        "chart",
		histogramBuckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
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

	m.encodes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "encodes_total",
		Help:      "Total number of successful encode passes by variant",
	}, []string{"variant"})

	m.pointsEncoded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "points_encoded_total",
		Help:      "Total number of data points turned into visual points",
	})

	m.encodeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "encode_errors_total",
		Help:      "Total number of rejected encode passes by error kind",
	}, []string{"kind"})

	m.renders = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "renders_total",
		Help:      "Total number of rendered charts by output format",
	}, []string{"format"})

	m.renderDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_duration_milliseconds",
		Help:      "Chart rendering duration in milliseconds by output format",
		Buckets:   m.histogramBuckets,
	}, []string{"format"})

	m.datasetsStored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "datasets_stored",
		Help:      "Number of datasets held in memory",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of failed HTTP requests by endpoint and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.memoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Heap bytes allocated and still in use",
	})

	m.goroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Number of live goroutines",
	})

	m.gcPause = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "gc_pause_avg_milliseconds",
		Help:      "Average GC pause since process start in milliseconds",
	})
}

// RecordEncode records a successful encode pass of n points.
func (m *Manager) RecordEncode(variant string, n int) {
	if !m.enabled {
		return
	}
	m.encodes.WithLabelValues(variant).Inc()
	m.pointsEncoded.Add(float64(n))
}

// RecordEncodeError records a rejected encode pass.
func (m *Manager) RecordEncodeError(kind string) {
	if !m.enabled {
		return
	}
	m.encodeErrors.WithLabelValues(kind).Inc()
}

// RecordRender records a rendered chart and how long it took.
func (m *Manager) RecordRender(format string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.renders.WithLabelValues(format).Inc()
	m.renderDuration.WithLabelValues(format).Observe(durationMs)
}

// UpdateDatasetsStored sets the number of stored datasets.
func (m *Manager) UpdateDatasetsStored(n int) {
	if !m.enabled {
		return
	}
	m.datasetsStored.Set(float64(n))
}

// RecordHTTPRequest records an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records a failed HTTP request.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !m.enabled {
		return
	}
	m.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap bytes in use.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if !m.enabled {
		return
	}
	m.memoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of live goroutines.
func (m *Manager) UpdateSystemGoroutineCount(n int) {
	if !m.enabled {
		return
	}
	m.goroutineCount.Set(float64(n))
}

// RecordSystemGCPauseTime sets the average GC pause.
func (m *Manager) RecordSystemGCPauseTime(ms float64) {
	if !m.enabled {
		return
	}
	m.gcPause.Set(ms)
}

// Package-level helpers delegate to the global manager.

// RecordEncode records a successful encode pass of n points.
func RecordEncode(variant string, n int) { globalManager.RecordEncode(variant, n) }

// RecordEncodeError records a rejected encode pass.
func RecordEncodeError(kind string) { globalManager.RecordEncodeError(kind) }

// RecordRender records a rendered chart and how long it took.
func RecordRender(format string, durationMs float64) { globalManager.RecordRender(format, durationMs) }

// UpdateDatasetsStored sets the number of stored datasets.
func UpdateDatasetsStored(n int) { globalManager.UpdateDatasetsStored(n) }

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordErrorByEndpoint records a failed HTTP request.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// UpdateSystemMemoryUsage sets the heap bytes in use.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.UpdateSystemMemoryUsage(bytes) }

// UpdateSystemGoroutineCount sets the number of live goroutines.
func UpdateSystemGoroutineCount(n int) { globalManager.UpdateSystemGoroutineCount(n) }

// RecordSystemGCPauseTime sets the average GC pause.
func RecordSystemGCPauseTime(ms float64) { globalManager.RecordSystemGCPauseTime(ms) }

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
