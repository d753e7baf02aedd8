package usecase

import (
	"context"

	"emogo/internal/domain/model"
	"emogo/internal/domain/repository/database"
)

// Fetcher is a thin read-side pass-through to the record store.
type Fetcher struct {
	retriever database.Retriever
	lister    database.Lister
}

func NewFetcher(retriever database.Retriever, lister database.Lister) *Fetcher {
	return &Fetcher{
		retriever: retriever,
		lister:    lister,
	}
}

func (f *Fetcher) Vlogs(ctx context.Context, userID string, limit int64) ([]model.Vlog, error) {
	return f.lister.Vlogs(ctx, userID, limit)
}

func (f *Fetcher) VlogByID(ctx context.Context, id string) (*model.Vlog, error) {
	return f.retriever.VlogByID(ctx, id)
}

func (f *Fetcher) Sentiments(ctx context.Context, userID string, limit int64) ([]model.Sentiment, error) {
	return f.lister.Sentiments(ctx, userID, limit)
}

func (f *Fetcher) SentimentByID(ctx context.Context, id string) (*model.Sentiment, error) {
	return f.retriever.SentimentByID(ctx, id)
}

func (f *Fetcher) GPSCoordinates(ctx context.Context, userID string, limit int64) ([]model.GPSCoordinate, error) {
	return f.lister.GPSCoordinates(ctx, userID, limit)
}

func (f *Fetcher) GPSByID(ctx context.Context, id string) (*model.GPSCoordinate, error) {
	return f.retriever.GPSByID(ctx, id)
}
