package monitor

import (
	"context"
	"time"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// API is the subset of the node API used by a sync session.
	API interface {
		GetConstants(ctx context.Context) (*model.Catalog, error)
		GetBlocks(ctx context.Context, firstIndex, lastIndex int) ([]model.Block, error)
		GetBlock(ctx context.Context, blockID string) (model.Block, error)
		GetPeers(ctx context.Context, state model.PeerState) ([]model.Peer, error)
		GetPeer(ctx context.Context, address string) (model.Peer, error)
		EventRegister(ctx context.Context, events []string, token string, add, remove bool) (string, error)
		EventWait(ctx context.Context, token string, timeoutSeconds int) ([]model.Event, error)
	}
	// Presenter receives projection changes. Calls are made from a single goroutine, in order.
	Presenter interface {
		OnSnapshot(snapshot model.Snapshot)
		OnDelta(delta model.Delta)
		OnStatus(status model.Status)
	}
	SyncLoopMetrics interface {
		ObserveWait(err error, events int, started time.Time)
		ObserveEvent(kind model.EventKind, outcome string)
		ObserveStatus(status model.Status)
		ObserveState(state model.SessionState)
	}
)
