package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"rentcar-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity CRUD metrics (entity = clientes, vehiculos, marcas, ...)
	EntityOperationsCounter prometheus.CounterVec

	// Rental lifecycle metrics
	RentaOperationsCounter prometheus.CounterVec
	RentasActivasGauge     prometheus.Gauge

	// Report metrics
	ReportRequestsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Entity CRUD metrics
	EntityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_entity_operations_total",
			Help: "Total number of CRUD operations per entity",
		},
		[]string{"entity", "operation"},
	)

	// Rental lifecycle metrics
	RentaOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_renta_operations_total",
			Help: "Total number of rental lifecycle operations",
		},
		[]string{"operation"},
	)

	RentasActivasGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_rentas_activas",
			Help: "Current number of active rentals",
		},
	)

	// Report metrics
	ReportRequestsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_report_requests_total",
			Help: "Total number of report requests",
		},
		[]string{"format"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordEntityOperation increments the CRUD counter for an entity
func RecordEntityOperation(entity string, operation string) {
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordRentaOperation increments the counter for rental lifecycle operations
func RecordRentaOperation(operation string) {
	RentaOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordReportRequest increments the counter for report requests
func RecordReportRequest(format string) {
	ReportRequestsCounter.WithLabelValues(format).Inc()
}
