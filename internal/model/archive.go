package model

import "time"

// BlockEvent is an archived block delta.
type BlockEvent struct {
	Server     string
	Kind       DeltaKind
	Row        int
	Block      Block
	ObservedAt time.Time
}

// PeerEvent is an archived peer delta.
type PeerEvent struct {
	Server     string
	Kind       DeltaKind
	Row        int
	Peer       Peer
	ObservedAt time.Time
}

// StatusRecord is an archived status summary.
type StatusRecord struct {
	Server      string
	HeadHeight  uint64
	ActivePeers int
	ObservedAt  time.Time
}
