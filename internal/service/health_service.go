package service

import (
	"context"
	"time"

	"product-catalog/internal/logger"

	"go.opentelemetry.io/otel"
)

// Pinger is the health probe of whatever backs the repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	driver string
	store  Pinger
}

type HealthStatus struct {
	Driver string
	Store  string
}

var HealthServiceTracer = otel.Tracer("HealthService")

func NewHealthService(driver string, store Pinger) *HealthService {
	return &HealthService{driver: driver, store: store}
}

func (s *HealthService) Check(ctx context.Context) HealthStatus {
	ctx, span := HealthServiceTracer.Start(ctx, "HealthService.Check")
	defer span.End()
	logger.Info(ctx, "Service")

	status := HealthStatus{Driver: s.driver, Store: "UP"}

	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.store.Ping(probeCtx); err != nil {
		status.Store = "DOWN"
	}

	return status
}
