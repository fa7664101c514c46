package model

// EventKind is the decoded form of a server event name.
type EventKind uint8

const (
	EventUnknown EventKind = iota
	EventPeerAdd
	EventPeerChange
	EventPeerAnnouncedAddress
	EventPeerBlacklist
	EventPeerUnblacklist
	EventBlockPushed
	EventBlockPopped
)

// Server event names.
const (
	EventNamePeerAdd              = "Peer.ADD_ACTIVE_PEER"
	EventNamePeerChange           = "Peer.CHANGE_ACTIVE_PEER"
	EventNamePeerAnnouncedAddress = "Peer.CHANGE_ANNOUNCED_ADDRESS"
	EventNamePeerBlacklist        = "Peer.BLACKLIST"
	EventNamePeerUnblacklist      = "Peer.UNBLACKLIST"
	EventNameBlockPushed          = "Block.BLOCK_PUSHED"
	EventNameBlockPopped          = "Block.BLOCK_POPPED"
)

// MonitoredEvents is the fixed set of events a session registers for.
var MonitoredEvents = []string{
	EventNamePeerAdd,
	EventNamePeerChange,
	EventNamePeerAnnouncedAddress,
	EventNamePeerBlacklist,
	EventNamePeerUnblacklist,
	EventNameBlockPushed,
	EventNameBlockPopped,
}

var eventKinds = map[string]EventKind{
	EventNamePeerAdd:              EventPeerAdd,
	EventNamePeerChange:           EventPeerChange,
	EventNamePeerAnnouncedAddress: EventPeerAnnouncedAddress,
	EventNamePeerBlacklist:        EventPeerBlacklist,
	EventNamePeerUnblacklist:      EventPeerUnblacklist,
	EventNameBlockPushed:          EventBlockPushed,
	EventNameBlockPopped:          EventBlockPopped,
}

// ParseEventKind decodes a server event name.
func ParseEventKind(name string) EventKind {
	return eventKinds[name]
}

func (k EventKind) String() string {
	switch k {
	case EventPeerAdd:
		return "peer_add"
	case EventPeerChange:
		return "peer_change"
	case EventPeerAnnouncedAddress:
		return "peer_announced_address"
	case EventPeerBlacklist:
		return "peer_blacklist"
	case EventPeerUnblacklist:
		return "peer_unblacklist"
	case EventBlockPushed:
		return "block_pushed"
	case EventBlockPopped:
		return "block_popped"
	default:
		return "unknown"
	}
}

// Event is a single server event. Only the first id is meaningful.
type Event struct {
	Name string
	Kind EventKind
	IDs  []string
}

// FirstID returns the first id carried by the event.
func (e Event) FirstID() (string, bool) {
	if len(e.IDs) == 0 {
		return "", false
	}
	return e.IDs[0], true
}
