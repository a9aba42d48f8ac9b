package transport

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/pocschain/internal/clock"
)

// HaltReporter reports whether the chain stopped accepting writes.
type HaltReporter func() (bool, error)

// HealthMonitor flips the gRPC health status to NOT_SERVING once the chain
// halts. The halt is permanent, so the monitor stops after reporting it.
type HealthMonitor struct {
	srv      *health.Server
	halted   HaltReporter
	interval time.Duration
	logger   *zap.Logger
}

// NewHealthMonitor marks the node and the gossip service as serving.
func NewHealthMonitor(srv *health.Server, halted HaltReporter, interval time.Duration, logger *zap.Logger) *HealthMonitor {
	srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	srv.SetServingStatus(GossipServiceName, healthpb.HealthCheckResponse_SERVING)
	return &HealthMonitor{srv: srv, halted: halted, interval: interval, logger: logger.Named("health")}
}

// Run polls until the chain halts or ctx is done.
func (m *HealthMonitor) Run(ctx context.Context) error {
	for {
		if m.check() {
			return nil
		}
		if err := clock.SleepWithContext(ctx, m.interval); err != nil {
			return err
		}
	}
}

func (m *HealthMonitor) check() bool {
	halted, cause := m.halted()
	if !halted {
		return false
	}
	m.srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	m.srv.SetServingStatus(GossipServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	m.logger.Error("chain halted, reporting NOT_SERVING", zap.Error(cause))
	return true
}
