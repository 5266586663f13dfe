// Package metrics provides Prometheus metrics for the training dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every collector exposed by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	seriesBuilt      *prometheus.CounterVec
	sessionsSkipped  prometheus.Counter
	aggregateLatency prometheus.Histogram

	importedFiles *prometheus.CounterVec
	importedRows  prometheus.Counter

	targetWrites *prometheus.CounterVec
	goalUpdates  *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager registered on the configured registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "trainpulse",
		subsystem:        "dashboard",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
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

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.seriesBuilt = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "hours_series_total",
			Help:      "Total number of hour series built, by granularity",
		},
		[]string{"granularity"},
	)

	m.sessionsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_skipped_total",
		Help:      "Sessions ignored by aggregation because their date could not be read",
	})

	m.aggregateLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregate_latency_milliseconds",
		Help:      "Time spent loading and aggregating sessions in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.importedFiles = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "import_files_total",
			Help:      "CSV files seen by the importer, by outcome",
		},
		[]string{"outcome"},
	)

	m.importedRows = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_rows_total",
		Help:      "Training sessions loaded by the importer",
	})

	m.targetWrites = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "target_writes_total",
			Help:      "Target values written, by key",
		},
		[]string{"key"},
	)

	m.goalUpdates = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "goal_changes_total",
			Help:      "Goals created or updated, by operation",
		},
		[]string{"operation"},
	)
}

// RecordHTTPRequest records one served request and its duration.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordSeriesBuilt counts a built hour series.
func RecordSeriesBuilt(granularity string) {
	globalManager.seriesBuilt.WithLabelValues(granularity).Inc()
}

// RecordSessionsSkipped adds n to the skipped sessions counter.
func RecordSessionsSkipped(n int) {
	if n > 0 {
		globalManager.sessionsSkipped.Add(float64(n))
	}
}

// RecordAggregateLatency records aggregation latency in milliseconds.
func RecordAggregateLatency(latencyMs float64) {
	globalManager.aggregateLatency.Observe(latencyMs)
}

// Import outcomes.
const (
	ImportLoaded  = "loaded"
	ImportSkipped = "skipped"
	ImportFailed  = "failed"
)

// RecordImportFile counts a processed file with its outcome.
func RecordImportFile(outcome string) {
	globalManager.importedFiles.WithLabelValues(outcome).Inc()
}

// RecordImportedRows adds n to the imported rows counter.
func RecordImportedRows(n int) {
	globalManager.importedRows.Add(float64(n))
}

// RecordTargetWrite counts a target store write.
func RecordTargetWrite(key string) {
	globalManager.targetWrites.WithLabelValues(key).Inc()
}

// RecordGoalChange counts a goal creation or progress update.
func RecordGoalChange(operation string) {
	globalManager.goalUpdates.WithLabelValues(operation).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Handler serves the custom registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}
