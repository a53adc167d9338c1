// Package grpc exposes the gRPC health service of the inventory service.
package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name the inventory status is reported under, in addition to the server-wide "".
const ServiceName = "inventory"

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker publishes the database reachability through the standard gRPC health service.
type HealthChecker struct {
	server   *health.Server
	db       Pinger
	interval time.Duration
	logger   *slog.Logger
}

func NewHealthChecker(db Pinger, interval time.Duration, logger *slog.Logger) *HealthChecker {
	return &HealthChecker{
		server:   health.NewServer(),
		db:       db,
		interval: interval,
		logger:   logger.With("component", "grpc-health"),
	}
}

// Register adds the health service to the gRPC server.
func (h *HealthChecker) Register(s *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(s, h.server)
}

// Run checks the database immediately and then on every interval until ctx is done.
func (h *HealthChecker) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		h.check(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *HealthChecker) Shutdown() {
	h.server.Shutdown()
}

func (h *HealthChecker) check(ctx context.Context) {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	pingCtx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()
	if err := h.db.Ping(pingCtx); err != nil {
		h.logger.WarnContext(ctx, "Database ping failed", "error", err)
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
}
