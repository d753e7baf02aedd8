package abstraction

import (
	"context"

	"emogo/internal/domain/dto"
	"emogo/internal/domain/entity"
	"emogo/internal/domain/model"
)

// Ingestor validates and persists incoming records.
type Ingestor interface {
	IngestVlog(ctx context.Context, vlog *model.Vlog) (string, error)
	IngestVlogUpload(ctx context.Context, upload entity.VlogUpload) (dto.VlogUploadResult, error)
	IngestSentiment(ctx context.Context, sentiment *model.Sentiment) (string, error)
	IngestGPS(ctx context.Context, gps *model.GPSCoordinate) (string, error)
}
