// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
)

// HealthHandler implements ExplorerServiceServer health on top of the sync session state.
type HealthHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	reporter StateReporter
}

// NewHealthHandler returns a HealthHandler instance.
func NewHealthHandler(reporter StateReporter) blockinsight7000v1.ExplorerServiceServer {
	return &HealthHandler{reporter: reporter}
}

// Health reports healthy only while a session is syncing.
func (h *HealthHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	state := h.reporter.State()
	server := h.reporter.Server()
	if state != model.SessionSyncing {
		return nil, status.Error(codes.Unavailable, fmt.Sprintf("session %s: %s", server, state))
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: fmt.Sprintf("syncing %s", server),
	}, nil
}
