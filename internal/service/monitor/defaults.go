package monitor

import "time"

const (
	defaultBlockWindow = 25
	defaultWaitTimeout = 60
	defaultQueueSize   = 256

	deregisterTimeout = 5 * time.Second
)

// Event outcomes reported to SyncLoopMetrics.
const (
	outcomeApplied  = "applied"
	outcomeIgnored  = "ignored"
	outcomeDeferred = "deferred"
	outcomeDropped  = "dropped"
)
