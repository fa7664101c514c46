package archive

import (
	"context"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBlockEvents(ctx context.Context, events []model.BlockEvent) error
		InsertPeerEvents(ctx context.Context, events []model.PeerEvent) error
		InsertStatuses(ctx context.Context, statuses []model.StatusRecord) error
	}
)
