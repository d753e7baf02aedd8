package database

import (
	"context"

	"emogo/internal/domain/model"
)

// Retriever looks up single records by their server-assigned id.
type Retriever interface {
	VlogByID(ctx context.Context, id string) (*model.Vlog, error)
	SentimentByID(ctx context.Context, id string) (*model.Sentiment, error)
	GPSByID(ctx context.Context, id string) (*model.GPSCoordinate, error)
}
