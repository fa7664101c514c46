package model

// PeerState is the connection state reported by the node for a peer.
type PeerState uint8

const (
	PeerNotConnected PeerState = 0
	PeerConnected    PeerState = 1
	PeerDisconnected PeerState = 2
)

// PeerStateFromCode maps a numeric state code to a PeerState. Unknown codes map to PeerNotConnected.
func PeerStateFromCode(code int64) PeerState {
	switch code {
	case int64(PeerConnected):
		return PeerConnected
	case int64(PeerDisconnected):
		return PeerDisconnected
	default:
		return PeerNotConnected
	}
}

// APIName is the name used by the node API for the state filter of getPeers.
func (s PeerState) APIName() string {
	switch s {
	case PeerConnected:
		return "CONNECTED"
	case PeerDisconnected:
		return "DISCONNECTED"
	default:
		return "NON_CONNECTED"
	}
}

func (s PeerState) String() string {
	switch s {
	case PeerConnected:
		return "connected"
	case PeerDisconnected:
		return "disconnected"
	default:
		return "not_connected"
	}
}

// Peer is a network peer of the monitored node, keyed by Address.
type Peer struct {
	Address          string
	AnnouncedAddress string
	Application      string
	Version          string
	Platform         string
	Services         []string
	State            PeerState
	Blacklisted      bool
}

// DisplayAddress returns the announced address, falling back to the network address.
func (p Peer) DisplayAddress() string {
	if p.AnnouncedAddress != "" {
		return p.AnnouncedAddress
	}
	return p.Address
}

// Partial reports whether the node has not yet learned the peer's version.
func (p Peer) Partial() bool {
	return p.Version == ""
}

// Clone returns a copy that shares no memory with p.
func (p Peer) Clone() Peer {
	if p.Services != nil {
		p.Services = append([]string(nil), p.Services...)
	}
	return p
}
