package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "operations_total",
		Help:      "Count of node API requests.",
	}, []string{"operation", "server", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node API requests, including event long-polls.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 90},
	}, []string{"operation", "server", "status"})
)

// APIClient tracks metrics for requests to a node.
type APIClient struct {
	server string
}

// NewAPIClient constructs a metrics collector for requests to server.
func NewAPIClient(server string) *APIClient {
	return &APIClient{server: serverLabel(server)}
}

// Observe records a single request outcome and duration.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	apiRequestsTotal.WithLabelValues(operation, m.server, status).Inc()
	apiRequestDuration.WithLabelValues(operation, m.server, status).Observe(time.Since(started).Seconds())
}
