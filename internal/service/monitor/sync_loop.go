// Package monitor keeps in-memory projections of a node's blocks and peers in sync
// with the node through its event long-poll API.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"github.com/ben-haim/Nxt2Monitor/internal/projection"
	"go.uber.org/zap"
)

// Config tunes a SyncLoop. Zero values select the defaults.
type Config struct {
	// BlockWindow is the number of most recent blocks loaded by the snapshot.
	BlockWindow int
	// WaitTimeout is the server-side long-poll timeout in seconds.
	WaitTimeout int
	// QueueSize bounds the messages queued between the worker and the consumer.
	QueueSize int
}

func (c Config) withDefaults() Config {
	if c.BlockWindow <= 0 {
		c.BlockWindow = defaultBlockWindow
	}
	if c.WaitTimeout <= 0 {
		c.WaitTimeout = defaultWaitTimeout
	}
	if c.QueueSize <= 0 {
		c.QueueSize = defaultQueueSize
	}
	return c
}

// SyncLoop runs one monitoring session against a node. A SyncLoop runs once;
// start a new one to reconnect.
type SyncLoop struct {
	api       API
	feed      *EventFeed
	presenter Presenter
	metrics   SyncLoopMetrics
	logger    *zap.Logger
	cfg       Config

	started  atomic.Bool
	state    atomic.Int32
	shutdown atomic.Bool
	catalog  atomic.Pointer[model.Catalog]

	mu           sync.Mutex
	sub          *Subscription
	deregistered bool

	// pending holds addresses of peers reported without a version. Worker goroutine only.
	pending []string
}

// NewSyncLoop builds a SyncLoop.
func NewSyncLoop(api API, presenter Presenter, metrics SyncLoopMetrics, logger *zap.Logger, cfg Config) (*SyncLoop, error) {
	if api == nil {
		return nil, errors.New("node api is required")
	}
	if presenter == nil {
		return nil, errors.New("presenter is required")
	}
	if metrics == nil {
		return nil, errors.New("sync loop metrics is required")
	}

	return &SyncLoop{
		api:       api,
		feed:      NewEventFeed(api, logger.Named("eventFeed")),
		presenter: presenter,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg.withDefaults(),
	}, nil
}

// State returns the current session state.
func (s *SyncLoop) State() model.SessionState {
	return model.SessionState(s.state.Load())
}

// Catalog returns the catalog loaded by the session, or nil before initialization.
func (s *SyncLoop) Catalog() *model.Catalog {
	return s.catalog.Load()
}

func (s *SyncLoop) setState(state model.SessionState) {
	s.state.Store(int32(state))
	s.metrics.ObserveState(state)
	s.logger.Debug("session state changed", zap.Stringer("state", state))
}

// Shutdown stops the session. It removes the event listener, which ends any wait in
// progress, and may be called any number of times from any goroutine.
func (s *SyncLoop) Shutdown() {
	if !s.shutdown.CompareAndSwap(false, true) {
		return
	}
	if s.State() != model.SessionStopped {
		s.setState(model.SessionShuttingDown)
	}
	s.logger.Info("shutdown requested")
	s.deregister()
}

func (s *SyncLoop) deregister() {
	s.mu.Lock()
	sub := s.sub
	if sub == nil || s.deregistered {
		s.mu.Unlock()
		return
	}
	s.deregistered = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), deregisterTimeout)
	defer cancel()
	s.feed.Deregister(ctx, *sub)
}

// Run performs the session until it fails, Shutdown is called or ctx is cancelled.
// A requested stop returns nil; initialization and wait failures are returned.
func (s *SyncLoop) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("sync loop already started")
	}
	defer s.setState(model.SessionStopped)
	if s.shutdown.Load() {
		return nil
	}

	in := make(chan message, s.cfg.QueueSize)
	c := &consumer{
		reconciler: NewReconciler(projection.NewBlockList(), projection.NewPeerTable(), s.logger.Named("reconciler")),
		presenter:  s.presenter,
		metrics:    s.metrics,
		logger:     s.logger.Named("consumer"),
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.run(in)
	}()
	defer func() {
		close(in)
		wg.Wait()
	}()

	stopped := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(stopped)
		s.Shutdown()
	})
	defer func() {
		if !stop() {
			<-stopped
		}
	}()

	sub, err := s.initialize(ctx, in)
	if err != nil {
		if s.stopping(ctx) {
			s.logger.Info("session stopped during initialization", zap.Error(err))
			return nil
		}
		return fmt.Errorf("initialize session: %w", err)
	}

	s.mu.Lock()
	s.sub = &sub
	s.mu.Unlock()
	if s.shutdown.Load() {
		s.deregister()
		return nil
	}

	s.setState(model.SessionSyncing)
	return s.sync(ctx, in, sub)
}

func (s *SyncLoop) stopping(ctx context.Context) bool {
	return s.shutdown.Load() || ctx.Err() != nil
}

func (s *SyncLoop) initialize(ctx context.Context, in chan<- message) (Subscription, error) {
	s.setState(model.SessionInitializing)

	catalog, err := s.api.GetConstants(ctx)
	if err != nil {
		return Subscription{}, fmt.Errorf("get constants: %w", err)
	}
	blocks, err := s.api.GetBlocks(ctx, 0, s.cfg.BlockWindow-1)
	if err != nil {
		return Subscription{}, fmt.Errorf("get blocks: %w", err)
	}
	peers, err := s.api.GetPeers(ctx, model.PeerConnected)
	if err != nil {
		return Subscription{}, fmt.Errorf("get peers: %w", err)
	}

	complete := make([]model.Peer, 0, len(peers))
	for _, p := range peers {
		if p.Partial() {
			s.enqueuePending(p.Address)
			continue
		}
		complete = append(complete, p)
	}
	s.catalog.Store(catalog)

	if err := s.send(ctx, in, message{snapshot: &model.Snapshot{Blocks: blocks, Peers: complete, Catalog: catalog}}); err != nil {
		return Subscription{}, err
	}
	// The snapshot must be applied before any event can be observed.
	if _, err := s.barrier(ctx, in); err != nil {
		return Subscription{}, err
	}
	if s.shutdown.Load() {
		return Subscription{}, ErrCancelled
	}

	return s.feed.Register(ctx, model.MonitoredEvents)
}

func (s *SyncLoop) sync(ctx context.Context, in chan<- message, sub Subscription) error {
	for {
		if s.stopping(ctx) {
			return nil
		}

		batch := s.drainPending()
		started := time.Now()
		events, err := s.feed.Wait(ctx, sub, s.cfg.WaitTimeout)
		s.metrics.ObserveWait(err, len(events), started)
		if s.stopping(ctx) {
			s.logger.Info("session stopping, batch discarded",
				zap.Int("events", len(events)),
				zap.Int("pending", len(batch)))
			return nil
		}
		if err != nil {
			s.logger.Error("event wait failed", zap.Error(err))
			return err
		}
		batch = append(batch, events...)

		for _, ev := range batch {
			resolved, ok := s.resolve(ctx, ev)
			if !ok {
				continue
			}
			if err := s.send(ctx, in, message{event: &resolved}); err != nil {
				return nil
			}
		}

		deferred, err := s.barrier(ctx, in)
		if err != nil {
			return nil
		}
		s.enqueuePending(deferred...)
	}
}

// resolve fetches the record an event refers to. Events that cannot be resolved are dropped.
func (s *SyncLoop) resolve(ctx context.Context, ev model.Event) (ResolvedEvent, bool) {
	id, ok := ev.FirstID()
	if !ok {
		s.logger.Warn("event without id", zap.String("name", ev.Name))
		s.metrics.ObserveEvent(ev.Kind, outcomeDropped)
		return ResolvedEvent{}, false
	}

	resolved := ResolvedEvent{Event: ev}
	switch ev.Kind {
	case model.EventPeerAdd, model.EventPeerChange, model.EventPeerAnnouncedAddress, model.EventPeerUnblacklist:
		peer, err := s.api.GetPeer(ctx, id)
		if err != nil {
			s.logger.Warn("fetch peer failed, event dropped", zap.String("event", ev.Name), zap.String("peer", id), zap.Error(err))
			s.metrics.ObserveEvent(ev.Kind, outcomeDropped)
			return ResolvedEvent{}, false
		}
		resolved.Peer = &peer

	case model.EventPeerBlacklist:

	case model.EventBlockPushed:
		block, err := s.api.GetBlock(ctx, id)
		if err != nil {
			s.logger.Warn("fetch block failed, event dropped", zap.String("block", id), zap.Error(err))
			s.metrics.ObserveEvent(ev.Kind, outcomeDropped)
			return ResolvedEvent{}, false
		}
		resolved.Block = &block

	case model.EventBlockPopped:
		blockID, err := model.ParseID(id)
		if err != nil {
			s.logger.Warn("popped block id not numeric, event dropped", zap.String("block", id), zap.Error(err))
			s.metrics.ObserveEvent(ev.Kind, outcomeDropped)
			return ResolvedEvent{}, false
		}
		resolved.BlockID = blockID

	default:
		s.logger.Warn("unknown event ignored", zap.String("name", ev.Name))
		s.metrics.ObserveEvent(ev.Kind, outcomeIgnored)
		return ResolvedEvent{}, false
	}
	return resolved, true
}

func (s *SyncLoop) send(ctx context.Context, in chan<- message, msg message) error {
	select {
	case in <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// barrier waits until the consumer has applied everything sent so far.
func (s *SyncLoop) barrier(ctx context.Context, in chan<- message) ([]string, error) {
	reply := make(chan []string, 1)
	if err := s.send(ctx, in, message{barrier: reply}); err != nil {
		return nil, err
	}
	select {
	case deferred := <-reply:
		return deferred, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *SyncLoop) enqueuePending(addresses ...string) {
	for _, address := range addresses {
		queued := false
		for _, p := range s.pending {
			if p == address {
				queued = true
				break
			}
		}
		if !queued {
			s.pending = append(s.pending, address)
		}
	}
}

// drainPending turns queued partial peers into synthetic add events and clears the queue.
func (s *SyncLoop) drainPending() []model.Event {
	if len(s.pending) == 0 {
		return nil
	}
	events := make([]model.Event, 0, len(s.pending))
	for _, address := range s.pending {
		events = append(events, model.Event{
			Name: model.EventNamePeerAdd,
			Kind: model.EventPeerAdd,
			IDs:  []string{address},
		})
	}
	s.pending = nil
	return events
}
