package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
)

// InsertBlockEvents stores block list deltas.
func (r *Repository) InsertBlockEvents(ctx context.Context, events []model.BlockEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO nxt_block_events (
	server,
	kind,
	row_index,
	block_id,
	height,
	block_timestamp,
	version,
	tx_count,
	generator_id,
	generator_rs,
	observed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			event.Server,
			event.Kind.String(),
			rowIndex(event.Row),
			event.Block.ID,
			event.Block.Height,
			event.Block.Timestamp,
			event.Block.Version,
			event.Block.TransactionCount,
			event.Block.GeneratorID,
			event.Block.GeneratorRS,
			event.ObservedAt,
		); err != nil {
			return fmt.Errorf("append block event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block events: %w", err)
	}
	return nil
}
