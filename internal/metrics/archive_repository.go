package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive_repository",
		Name:      "operations_total",
		Help:      "Count of archive repository operations.",
	}, []string{"operation", "status"})
	archiveRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "archive_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of archive repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
	archiveRepositoryRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive_repository",
		Name:      "rows_total",
		Help:      "Count of rows written to the archive.",
	}, []string{"operation"})
)

// ArchiveRepository tracks metrics for archive writes.
type ArchiveRepository struct{}

// NewArchiveRepository creates an ArchiveRepository metrics collector.
func NewArchiveRepository() *ArchiveRepository {
	return &ArchiveRepository{}
}

// Observe records duration and status of a repository operation writing rows.
func (m ArchiveRepository) Observe(operation string, rows int, err error, started time.Time) {
	status := statusOf(err)
	archiveRepositoryRequestsTotal.WithLabelValues(operation, status).Inc()
	archiveRepositoryRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
	if err == nil {
		archiveRepositoryRows.WithLabelValues(operation).Add(float64(rows))
	}
}
