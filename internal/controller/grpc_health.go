package controller

import (
	"context"

	"github.com/project/library/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/health/grpc_health_v1"
)

var _ grpc_health_v1.HealthServer = (*HealthServer)(nil)

// HealthServer serves grpc.health.v1 from the same storage ping as /health.
type HealthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	logger *zap.Logger
	pinger Pinger
}

func NewHealthServer(logger *zap.Logger, pinger Pinger) *HealthServer {
	return &HealthServer{logger: logger, pinger: pinger}
}

func (h *HealthServer) status(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if h.pinger == nil {
		return grpc_health_v1.HealthCheckResponse_SERVING
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); logger.CheckError(err, h.logger, "storage ping failed", zap.Error(err)) {
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_SERVING
}

func (h *HealthServer) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{Status: h.status(ctx)}, nil
}

// Watch sends the current status once.
func (h *HealthServer) Watch(_ *grpc_health_v1.HealthCheckRequest, server grpc_health_v1.Health_WatchServer) error {
	return server.Send(&grpc_health_v1.HealthCheckResponse{Status: h.status(server.Context())})
}
