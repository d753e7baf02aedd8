package abstraction

import (
	"context"

	"emogo/internal/domain/model"
)

// Fetcher reads records back, in bulk or by id.
type Fetcher interface {
	Vlogs(ctx context.Context, userID string, limit int64) ([]model.Vlog, error)
	VlogByID(ctx context.Context, id string) (*model.Vlog, error)
	Sentiments(ctx context.Context, userID string, limit int64) ([]model.Sentiment, error)
	SentimentByID(ctx context.Context, id string) (*model.Sentiment, error)
	GPSCoordinates(ctx context.Context, userID string, limit int64) ([]model.GPSCoordinate, error)
	GPSByID(ctx context.Context, id string) (*model.GPSCoordinate, error)
}
