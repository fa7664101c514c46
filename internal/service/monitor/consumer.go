package monitor

import (
	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"go.uber.org/zap"
)

// message is the unit of work passed from the worker to the consumer. Exactly one field is set.
type message struct {
	snapshot *model.Snapshot
	event    *ResolvedEvent
	// barrier ends a batch; the consumer publishes the status and replies with the
	// addresses deferred since the previous barrier.
	barrier chan<- []string
}

// consumer is the only goroutine that touches the projections and calls the presenter.
type consumer struct {
	reconciler *Reconciler
	presenter  Presenter
	metrics    SyncLoopMetrics
	logger     *zap.Logger
	deferred   []string
}

func (c *consumer) run(in <-chan message) {
	for msg := range in {
		switch {
		case msg.snapshot != nil:
			loaded := c.reconciler.LoadSnapshot(*msg.snapshot)
			c.logger.Info("snapshot loaded", zap.Int("blocks", len(loaded.Blocks)), zap.Int("peers", len(loaded.Peers)))
			c.presenter.OnSnapshot(loaded)

		case msg.event != nil:
			outcome := c.reconciler.Apply(*msg.event)
			c.metrics.ObserveEvent(msg.event.Event.Kind, outcome.label())
			if outcome.Delta != nil {
				c.presenter.OnDelta(*outcome.Delta)
			}
			if outcome.Deferred != "" {
				c.deferred = append(c.deferred, outcome.Deferred)
			}

		case msg.barrier != nil:
			status := c.reconciler.Status()
			c.metrics.ObserveStatus(status)
			c.presenter.OnStatus(status)
			msg.barrier <- c.deferred
			c.deferred = nil
		}
	}
}
