package presenter

import (
	"go.uber.org/zap"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
)

// Log writes projection changes to a zap logger.
type Log struct {
	logger  *zap.Logger
	catalog *model.Catalog
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) OnSnapshot(snapshot model.Snapshot) {
	l.catalog = snapshot.Catalog

	fields := []zap.Field{
		zap.Int("blocks", len(snapshot.Blocks)),
		zap.Int("peers", len(snapshot.Peers)),
	}
	if len(snapshot.Blocks) > 0 {
		fields = append(fields, l.blockFields(snapshot.Blocks[0])...)
	}
	l.logger.Info("snapshot", fields...)
}

func (l *Log) OnDelta(delta model.Delta) {
	switch delta.Kind {
	case model.BlockInserted, model.BlockRemoved:
		fields := append([]zap.Field{zap.Int("row", delta.Row)}, l.blockFields(delta.Block)...)
		l.logger.Info(delta.Kind.String(), fields...)
	case model.PeerInserted, model.PeerUpdated:
		l.logger.Info(delta.Kind.String(),
			zap.Int("row", delta.Row),
			zap.String("address", delta.Peer.DisplayAddress()),
			zap.Stringer("state", delta.Peer.State),
			zap.Bool("blacklisted", delta.Peer.Blacklisted),
			zap.String("application", delta.Peer.Application),
			zap.String("version", delta.Peer.Version),
			zap.String("platform", delta.Peer.Platform),
		)
	default:
		l.logger.Warn("unknown delta kind", zap.Stringer("kind", delta.Kind))
	}
}

func (l *Log) OnStatus(status model.Status) {
	if !status.HasHead {
		l.logger.Info("status", zap.Int("active_peers", status.ActivePeers))
		return
	}
	l.logger.Info("status", zap.Uint64("height", status.HeadHeight), zap.Int("active_peers", status.ActivePeers))
}

func (l *Log) blockFields(b model.Block) []zap.Field {
	fields := []zap.Field{
		zap.String("id", model.FormatID(b.ID)),
		zap.Uint64("height", b.Height),
		zap.Uint32("transactions", b.TransactionCount),
		zap.String("generator", b.GeneratorRS),
	}
	if l.catalog != nil {
		fields = append(fields, zap.Time("time", l.catalog.BlockTime(b.Timestamp)))
	}
	return fields
}
