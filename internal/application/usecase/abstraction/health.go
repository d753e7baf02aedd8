package abstraction

import (
	"context"

	"emogo/internal/domain/dto"
)

// HealthChecker probes the record store.
type HealthChecker interface {
	Check(ctx context.Context) dto.HealthStatus
}
