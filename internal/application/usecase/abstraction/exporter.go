package abstraction

import (
	"context"

	"emogo/internal/domain/dto"
)

// Exporter aggregates stored records for the export page and bulk download.
type Exporter interface {
	Bundle(ctx context.Context) (dto.ExportBundle, error)
	Counts(ctx context.Context) (dto.CollectionCounts, error)
}
