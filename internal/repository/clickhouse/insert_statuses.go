package clickhouse

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"github.com/ben-haim/Nxt2Monitor/pkg/safe"
)

// InsertStatuses stores per-batch status summaries.
func (r *Repository) InsertStatuses(ctx context.Context, statuses []model.StatusRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_statuses", len(statuses), err, start)
	}()

	if len(statuses) == 0 {
		return nil
	}

	const query = `
INSERT INTO nxt_statuses (
	server,
	head_height,
	active_peers,
	observed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statuses batch: %w", err)
	}

	for _, status := range statuses {
		var active uint32
		if active, err = safe.Uint32(status.ActivePeers); err != nil {
			return fmt.Errorf("active peers: %w", err)
		}
		if err = batch.Append(
			status.Server,
			status.HeadHeight,
			active,
			status.ObservedAt,
		); err != nil {
			return fmt.Errorf("append status: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert statuses: %w", err)
	}
	return nil
}

// rowIndex maps rows outside the Int32 column range to -1.
func rowIndex(row int) int32 {
	if row < 0 || row > math.MaxInt32 {
		return -1
	}
	return int32(row)
}

func boolToUInt8(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
