package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
)

// InsertPeerEvents stores peer table deltas.
func (r *Repository) InsertPeerEvents(ctx context.Context, events []model.PeerEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_peer_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO nxt_peer_events (
	server,
	kind,
	row_index,
	address,
	announced_address,
	application,
	version,
	platform,
	services,
	state,
	blacklisted,
	observed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare peer events batch: %w", err)
	}

	for _, event := range events {
		services := event.Peer.Services
		if services == nil {
			services = []string{}
		}
		if err = batch.Append(
			event.Server,
			event.Kind.String(),
			rowIndex(event.Row),
			event.Peer.Address,
			event.Peer.AnnouncedAddress,
			event.Peer.Application,
			event.Peer.Version,
			event.Peer.Platform,
			services,
			event.Peer.State.String(),
			boolToUInt8(event.Peer.Blacklisted),
			event.ObservedAt,
		); err != nil {
			return fmt.Errorf("append peer event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert peer events: %w", err)
	}
	return nil
}
