package monitor

import (
	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"github.com/ben-haim/Nxt2Monitor/internal/projection"
	"go.uber.org/zap"
)

// ResolvedEvent is an event together with the record fetched for it.
// Peer is set for peer events other than blacklist, Block for pushed blocks,
// and BlockID for popped blocks.
type ResolvedEvent struct {
	Event   model.Event
	Peer    *model.Peer
	Block   *model.Block
	BlockID uint64
}

// Outcome is the result of applying one event. At most one of Delta and Deferred is set.
type Outcome struct {
	Delta *model.Delta
	// Deferred is a peer address whose record is not complete yet.
	Deferred string
}

func (o Outcome) label() string {
	switch {
	case o.Delta != nil:
		return outcomeApplied
	case o.Deferred != "":
		return outcomeDeferred
	default:
		return outcomeIgnored
	}
}

// Reconciler applies events to the projections.
type Reconciler struct {
	blocks *projection.BlockList
	peers  *projection.PeerTable
	logger *zap.Logger
}

// NewReconciler creates a Reconciler over the given projections.
func NewReconciler(blocks *projection.BlockList, peers *projection.PeerTable, logger *zap.Logger) *Reconciler {
	return &Reconciler{blocks: blocks, peers: peers, logger: logger}
}

// LoadSnapshot replaces both projections and returns the snapshot as loaded.
func (r *Reconciler) LoadSnapshot(s model.Snapshot) model.Snapshot {
	return model.Snapshot{
		Blocks:  r.blocks.Replace(s.Blocks),
		Peers:   r.peers.Replace(s.Peers),
		Catalog: s.Catalog,
	}
}

// Status summarizes the projections.
func (r *Reconciler) Status() model.Status {
	status := model.Status{ActivePeers: r.peers.ActiveCount()}
	if head, ok := r.blocks.Head(); ok {
		status.HeadHeight = head.Height
		status.HasHead = true
	}
	return status
}

// Apply reconciles a single event.
func (r *Reconciler) Apply(ev ResolvedEvent) Outcome {
	id, _ := ev.Event.FirstID()

	switch ev.Event.Kind {
	case model.EventPeerAdd:
		return r.addPeer(ev.Peer)

	case model.EventPeerChange, model.EventPeerAnnouncedAddress:
		if cached, ok := r.peers.Get(id); ok {
			// The cached state is the before side of the change.
			next := model.PeerConnected
			if cached.State == model.PeerConnected {
				next = model.PeerDisconnected
			}
			delta, _, _ := r.peers.MarkState(id, next, false)
			return Outcome{Delta: &delta}
		}
		return r.addPeer(ev.Peer)

	case model.EventPeerBlacklist:
		delta, _, ok := r.peers.MarkState(id, model.PeerDisconnected, true)
		if !ok {
			return Outcome{}
		}
		return Outcome{Delta: &delta}

	case model.EventPeerUnblacklist:
		if ev.Peer == nil {
			return Outcome{}
		}
		delta, _, ok := r.peers.MarkState(id, ev.Peer.State, false)
		if !ok {
			return Outcome{}
		}
		return Outcome{Delta: &delta}

	case model.EventBlockPushed:
		if ev.Block == nil {
			return Outcome{}
		}
		delta, ok := r.blocks.InsertHead(*ev.Block)
		if !ok {
			r.logger.Debug("pushed block already present", zap.Uint64("block", ev.Block.ID))
			return Outcome{}
		}
		return Outcome{Delta: &delta}

	case model.EventBlockPopped:
		delta, ok := r.blocks.RemoveByID(ev.BlockID)
		if !ok {
			return Outcome{}
		}
		return Outcome{Delta: &delta}

	default:
		r.logger.Warn("unhandled event", zap.String("name", ev.Event.Name))
		return Outcome{}
	}
}

func (r *Reconciler) addPeer(p *model.Peer) Outcome {
	if p == nil || p.State != model.PeerConnected {
		return Outcome{}
	}
	if p.Partial() {
		return Outcome{Deferred: p.Address}
	}
	delta, _, _ := r.peers.Upsert(*p)
	return Outcome{Delta: &delta}
}
