package usecase

import (
	"context"
	"time"

	"emogo/internal/domain/dto"
	"emogo/internal/domain/repository/database"
)

// HealthChecker reports whether the record store is reachable.
type HealthChecker struct {
	counter database.Counter
}

func NewHealthChecker(counter database.Counter) *HealthChecker {
	return &HealthChecker{counter: counter}
}

func (h *HealthChecker) Check(ctx context.Context) dto.HealthStatus {
	status := dto.HealthStatus{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC(),
	}

	if err := h.counter.Ping(ctx); err != nil {
		status.Status = "unhealthy"
		status.Database = "disconnected"
		status.Error = err.Error()
	}

	return status
}
