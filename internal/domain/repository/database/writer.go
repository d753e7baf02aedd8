package database

import (
	"context"

	"emogo/internal/domain/model"
)

// Writer persists one record per call and returns the server-assigned id.
type Writer interface {
	CreateVlog(ctx context.Context, vlog *model.Vlog) (string, error)
	CreateSentiment(ctx context.Context, sentiment *model.Sentiment) (string, error)
	CreateGPS(ctx context.Context, gps *model.GPSCoordinate) (string, error)
}
