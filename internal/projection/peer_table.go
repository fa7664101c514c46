package projection

import "github.com/ben-haim/Nxt2Monitor/internal/model"

// PeerTable holds the known peers in insertion order together with the number
// of connected peers. Peers are never removed during a session.
type PeerTable struct {
	peers  []model.Peer
	index  map[string]int
	active int
}

// NewPeerTable returns an empty PeerTable.
func NewPeerTable() *PeerTable {
	return &PeerTable{index: make(map[string]int)}
}

// Replace discards the current contents and loads peers. Repeated addresses are skipped.
// It returns the accepted peers in row order.
func (t *PeerTable) Replace(peers []model.Peer) []model.Peer {
	t.peers = make([]model.Peer, 0, len(peers))
	t.index = make(map[string]int, len(peers))
	t.active = 0
	for _, p := range peers {
		if _, ok := t.index[p.Address]; ok {
			continue
		}
		t.index[p.Address] = len(t.peers)
		t.peers = append(t.peers, p.Clone())
		t.active += activeTransition(model.PeerNotConnected, p.State)
	}
	return t.Peers()
}

// Upsert inserts p or replaces the stored record with the same address.
// It returns the delta, whether the peer was new and the change in ActiveCount.
func (t *PeerTable) Upsert(p model.Peer) (model.Delta, bool, int) {
	p = p.Clone()
	if row, ok := t.index[p.Address]; ok {
		change := activeTransition(t.peers[row].State, p.State)
		t.peers[row] = p
		t.active += change
		return model.Delta{Kind: model.PeerUpdated, Row: row, Peer: p.Clone()}, false, change
	}

	row := len(t.peers)
	t.index[p.Address] = row
	t.peers = append(t.peers, p)
	change := activeTransition(model.PeerNotConnected, p.State)
	t.active += change
	return model.Delta{Kind: model.PeerInserted, Row: row, Peer: p.Clone()}, true, change
}

// MarkState sets state and blacklisted on a known peer. Unknown addresses are a no-op.
func (t *PeerTable) MarkState(address string, state model.PeerState, blacklisted bool) (model.Delta, int, bool) {
	row, ok := t.index[address]
	if !ok {
		return model.Delta{}, 0, false
	}
	change := activeTransition(t.peers[row].State, state)
	t.peers[row].State = state
	t.peers[row].Blacklisted = blacklisted
	t.active += change
	return model.Delta{Kind: model.PeerUpdated, Row: row, Peer: t.peers[row].Clone()}, change, true
}

// Get returns the peer stored under address.
func (t *PeerTable) Get(address string) (model.Peer, bool) {
	row, ok := t.index[address]
	if !ok {
		return model.Peer{}, false
	}
	return t.peers[row].Clone(), true
}

// ActiveCount returns the number of peers in the connected state.
func (t *PeerTable) ActiveCount() int {
	return t.active
}

// Len returns the number of peers.
func (t *PeerTable) Len() int {
	return len(t.peers)
}

// Peers returns a copy of the table in row order.
func (t *PeerTable) Peers() []model.Peer {
	out := make([]model.Peer, len(t.peers))
	for i, p := range t.peers {
		out[i] = p.Clone()
	}
	return out
}

func activeTransition(from, to model.PeerState) int {
	switch {
	case from != model.PeerConnected && to == model.PeerConnected:
		return 1
	case from == model.PeerConnected && to != model.PeerConnected:
		return -1
	default:
		return 0
	}
}
