package archive

import "time"

const (
	recordBatcherCapacity      = 500
	recordBatcherFlushInterval = 2 * time.Second
	recordBatcherRPS           = 10
)
