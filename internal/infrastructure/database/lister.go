package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"emogo/internal/domain/model"
)

type RecordLister struct {
	db *Database
}

func NewRecordLister(db *Database) *RecordLister {
	return &RecordLister{db: db}
}

func (l *RecordLister) Vlogs(ctx context.Context, userID string, limit int64) ([]model.Vlog, error) {
	return findMany[model.Vlog](ctx, l.db, VlogCollection, userID, limit)
}

func (l *RecordLister) Sentiments(ctx context.Context, userID string, limit int64) ([]model.Sentiment, error) {
	return findMany[model.Sentiment](ctx, l.db, SentimentCollection, userID, limit)
}

func (l *RecordLister) GPSCoordinates(ctx context.Context, userID string, limit int64) ([]model.GPSCoordinate, error) {
	return findMany[model.GPSCoordinate](ctx, l.db, GPSCollection, userID, limit)
}

// findMany returns documents in natural order. The owner filter is an exact,
// case-sensitive match; an empty userID returns everything up to limit.
func findMany[T any](ctx context.Context, db *Database, collection, userID string, limit int64) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}

	coll := db.Client.Database(db.DBName).Collection(collection)

	cursor, err := coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
