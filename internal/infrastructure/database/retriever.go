package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"emogo/internal/domain"
	"emogo/internal/domain/model"
)

type RecordRetriever struct {
	db *Database
}

func NewRecordRetriever(db *Database) *RecordRetriever {
	return &RecordRetriever{db: db}
}

func (r *RecordRetriever) VlogByID(ctx context.Context, id string) (*model.Vlog, error) {
	return findOne[model.Vlog](ctx, r.db, VlogCollection, id)
}

func (r *RecordRetriever) SentimentByID(ctx context.Context, id string) (*model.Sentiment, error) {
	return findOne[model.Sentiment](ctx, r.db, SentimentCollection, id)
}

func (r *RecordRetriever) GPSByID(ctx context.Context, id string) (*model.GPSCoordinate, error) {
	return findOne[model.GPSCoordinate](ctx, r.db, GPSCollection, id)
}

// findOne distinguishes a malformed id (domain.ErrInvalidID) from a
// well-formed id that matches nothing (domain.ErrNotFound).
func findOne[T any](ctx context.Context, db *Database, collection, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	coll := db.Client.Database(db.DBName).Collection(collection)

	var record T
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return &record, nil
}
