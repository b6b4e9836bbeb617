// Package metrics exposes Prometheus instrumentation for the recipe store
// and the import job.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_store_operation_duration_seconds",
			Help:    "Duration of recipe store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "driver"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_store_errors_total",
			Help: "Total number of failed recipe store operations",
		},
		[]string{"operation", "driver"},
	)

	RecipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_created_total",
			Help: "Total number of recipes persisted",
		},
	)

	// Import Metrics
	ImportFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_import_fetch_duration_seconds",
			Help:    "Duration of external recipe fetches in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	ImportRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_import_records_total",
			Help: "Total number of external records processed by the import job",
		},
		[]string{"result"},
	)

	ImportBatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipe_import_batches_total",
			Help: "Total number of import batches run",
		},
	)
)

// RecordStoreOperation records the outcome of a store call.
func RecordStoreOperation(operation, driver string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation, driver).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(operation, driver).Inc()
	}
}

// RecordImportRecord records whether one external record was imported.
func RecordImportRecord(imported bool) {
	if imported {
		ImportRecords.WithLabelValues(ResultSuccess).Inc()
		return
	}
	ImportRecords.WithLabelValues(ResultError).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
