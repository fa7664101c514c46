package metrics

import (
	"time"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncWaitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync_loop",
		Name:      "wait_total",
		Help:      "Count of event long-poll cycles.",
	}, []string{"server", "status"})

	syncWaitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sync_loop",
		Name:      "wait_duration_seconds",
		Help:      "Duration of event long-poll cycles.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 20, 30, 45, 60, 65},
	}, []string{"server", "status"})

	syncBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sync_loop",
		Name:      "batch_size",
		Help:      "Number of events returned per long-poll cycle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"server"})

	syncEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync_loop",
		Name:      "events_total",
		Help:      "Count of events by kind and outcome.",
	}, []string{"server", "kind", "outcome"})

	syncHeadHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "sync_loop",
		Name:      "head_height",
		Help:      "Height of the most recent block in the block list.",
	}, []string{"server"})

	syncActivePeers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "sync_loop",
		Name:      "active_peers",
		Help:      "Number of connected peers in the peer table.",
	}, []string{"server"})

	syncSessionState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "sync_loop",
		Name:      "session_state",
		Help:      "Current session state; 1 for the active state, 0 otherwise.",
	}, []string{"server", "state"})
)

var sessionStates = []model.SessionState{
	model.SessionIdle,
	model.SessionInitializing,
	model.SessionSyncing,
	model.SessionShuttingDown,
	model.SessionStopped,
}

// SyncLoop tracks metrics for a sync session.
type SyncLoop struct {
	server string
}

// NewSyncLoop constructs a SyncLoop metrics collector for server.
func NewSyncLoop(server string) *SyncLoop {
	return &SyncLoop{server: serverLabel(server)}
}

// ObserveWait records a long-poll cycle and the number of events it returned.
func (m SyncLoop) ObserveWait(err error, events int, started time.Time) {
	status := statusOf(err)
	syncWaitTotal.WithLabelValues(m.server, status).Inc()
	syncWaitDuration.WithLabelValues(m.server, status).Observe(time.Since(started).Seconds())
	if err == nil {
		syncBatchSize.WithLabelValues(m.server).Observe(float64(events))
	}
}

// ObserveEvent records how an event was handled.
func (m SyncLoop) ObserveEvent(kind model.EventKind, outcome string) {
	syncEventsTotal.WithLabelValues(m.server, kind.String(), outcome).Inc()
}

// ObserveStatus records the published status.
func (m SyncLoop) ObserveStatus(status model.Status) {
	syncHeadHeight.WithLabelValues(m.server).Set(float64(status.HeadHeight))
	syncActivePeers.WithLabelValues(m.server).Set(float64(status.ActivePeers))
}

// ObserveState records a session state change.
func (m SyncLoop) ObserveState(state model.SessionState) {
	for _, s := range sessionStates {
		v := 0.0
		if s == state {
			v = 1
		}
		syncSessionState.WithLabelValues(m.server, s.String()).Set(v)
	}
}
