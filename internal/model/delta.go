package model

// DeltaKind names the change applied to a projection.
type DeltaKind uint8

const (
	BlockInserted DeltaKind = iota + 1
	BlockRemoved
	PeerInserted
	PeerUpdated
)

func (k DeltaKind) String() string {
	switch k {
	case BlockInserted:
		return "block_inserted"
	case BlockRemoved:
		return "block_removed"
	case PeerInserted:
		return "peer_inserted"
	case PeerUpdated:
		return "peer_updated"
	default:
		return "unknown"
	}
}

// Delta is one row-level change. Block is set for block kinds and Peer for peer kinds.
// Row 0 of the block list is the chain head.
type Delta struct {
	Kind  DeltaKind
	Row   int
	Block Block
	Peer  Peer
}

// Snapshot is the initial state of a session. Blocks are in row order, chain head first.
type Snapshot struct {
	Blocks  []Block
	Peers   []Peer
	Catalog *Catalog
}

// Status is the summary published after every batch.
type Status struct {
	HeadHeight  uint64
	HasHead     bool
	ActivePeers int
}

// SessionState is the lifecycle state of a sync session.
type SessionState int32

const (
	SessionIdle SessionState = iota
	SessionInitializing
	SessionSyncing
	SessionShuttingDown
	SessionStopped
)

func (s SessionState) String() string {
	switch s {
	case SessionInitializing:
		return "initializing"
	case SessionSyncing:
		return "syncing"
	case SessionShuttingDown:
		return "shutting_down"
	case SessionStopped:
		return "stopped"
	default:
		return "idle"
	}
}
