package database

import (
	"context"

	"emogo/internal/domain/model"
)

// Lister retrieves records in bulk, optionally filtered by owner. An empty
// userID means no filter; limit bounds the result count.
type Lister interface {
	Vlogs(ctx context.Context, userID string, limit int64) ([]model.Vlog, error)
	Sentiments(ctx context.Context, userID string, limit int64) ([]model.Sentiment, error)
	GPSCoordinates(ctx context.Context, userID string, limit int64) ([]model.GPSCoordinate, error)
}
