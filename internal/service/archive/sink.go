// Package archive writes the deltas applied by a sync session to the ClickHouse archive.
package archive

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"github.com/ben-haim/Nxt2Monitor/pkg/batcher"
)

// record holds exactly one of its fields.
type record struct {
	block  *model.BlockEvent
	peer   *model.PeerEvent
	status *model.StatusRecord
}

// Sink is a presenter that archives snapshots, deltas and statuses in batches.
// Archive failures are logged and never reach the sync session.
type Sink struct {
	repo    Repository
	server  string
	logger  *zap.Logger
	now     func() time.Time
	batcher *batcher.Batcher[record]

	mu  sync.RWMutex
	ctx context.Context
}

func NewSink(repo Repository, server string, logger *zap.Logger) *Sink {
	s := &Sink{
		repo:   repo,
		server: server,
		logger: logger,
		now:    time.Now,
		ctx:    context.Background(),
	}
	s.batcher = batcher.New[record](
		logger.Named("recordBatcher"),
		s.flush,
		recordBatcherCapacity,
		recordBatcherFlushInterval,
		recordBatcherRPS,
	)
	return s
}

// Start begins background flushing. Records added after ctx is done are dropped.
func (s *Sink) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()
	s.batcher.Start(ctx)
}

// Stop flushes queued records and waits for the flush to finish.
func (s *Sink) Stop() {
	s.batcher.Stop()
}

func (s *Sink) OnSnapshot(snapshot model.Snapshot) {
	at := s.now().UTC()
	for row, block := range snapshot.Blocks {
		s.add(record{block: &model.BlockEvent{
			Server:     s.server,
			Kind:       model.BlockInserted,
			Row:        row,
			Block:      block,
			ObservedAt: at,
		}})
	}
	for row, peer := range snapshot.Peers {
		s.add(record{peer: &model.PeerEvent{
			Server:     s.server,
			Kind:       model.PeerInserted,
			Row:        row,
			Peer:       peer.Clone(),
			ObservedAt: at,
		}})
	}
}

func (s *Sink) OnDelta(delta model.Delta) {
	at := s.now().UTC()
	switch delta.Kind {
	case model.BlockInserted, model.BlockRemoved:
		s.add(record{block: &model.BlockEvent{
			Server:     s.server,
			Kind:       delta.Kind,
			Row:        delta.Row,
			Block:      delta.Block,
			ObservedAt: at,
		}})
	case model.PeerInserted, model.PeerUpdated:
		s.add(record{peer: &model.PeerEvent{
			Server:     s.server,
			Kind:       delta.Kind,
			Row:        delta.Row,
			Peer:       delta.Peer.Clone(),
			ObservedAt: at,
		}})
	default:
		s.logger.Warn("unknown delta kind", zap.Stringer("kind", delta.Kind))
	}
}

func (s *Sink) OnStatus(status model.Status) {
	s.add(record{status: &model.StatusRecord{
		Server:      s.server,
		HeadHeight:  status.HeadHeight,
		ActivePeers: status.ActivePeers,
		ObservedAt:  s.now().UTC(),
	}})
}

func (s *Sink) add(r record) {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()

	if err := s.batcher.Add(ctx, r); err != nil {
		if errors.Is(err, batcher.ErrStopped) || errors.Is(err, context.Canceled) {
			s.logger.Debug("archive record dropped", zap.Error(err))
			return
		}
		s.logger.Warn("archive record dropped", zap.Error(err))
	}
}

func (s *Sink) flush(ctx context.Context, records []record) error {
	var (
		blocks   []model.BlockEvent
		peers    []model.PeerEvent
		statuses []model.StatusRecord
	)
	for _, r := range records {
		switch {
		case r.block != nil:
			blocks = append(blocks, *r.block)
		case r.peer != nil:
			peers = append(peers, *r.peer)
		case r.status != nil:
			statuses = append(statuses, *r.status)
		}
	}

	var errs []error
	if len(blocks) > 0 {
		if err := s.repo.InsertBlockEvents(ctx, blocks); err != nil {
			errs = append(errs, err)
		}
	}
	if len(peers) > 0 {
		if err := s.repo.InsertPeerEvents(ctx, peers); err != nil {
			errs = append(errs, err)
		}
	}
	if len(statuses) > 0 {
		if err := s.repo.InsertStatuses(ctx, statuses); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
