package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"emogo/internal/domain/model"
)

type RecordWriter struct {
	db *Database
}

func NewRecordWriter(db *Database) *RecordWriter {
	return &RecordWriter{db: db}
}

func (w *RecordWriter) CreateVlog(ctx context.Context, vlog *model.Vlog) (string, error) {
	return w.insert(ctx, VlogCollection, vlog)
}

func (w *RecordWriter) CreateSentiment(ctx context.Context, sentiment *model.Sentiment) (string, error) {
	return w.insert(ctx, SentimentCollection, sentiment)
}

func (w *RecordWriter) CreateGPS(ctx context.Context, gps *model.GPSCoordinate) (string, error) {
	return w.insert(ctx, GPSCollection, gps)
}

// insert writes a single document and returns its generated id as hex.
// InsertOne is atomic, so a record is either fully visible to subsequent
// reads or not visible at all.
func (w *RecordWriter) insert(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(collection)

	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("inserted id is not an ObjectID")
	}

	return oid.Hex(), nil
}
