package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type RecordCounter struct {
	db *Database
}

func NewRecordCounter(db *Database) *RecordCounter {
	return &RecordCounter{db: db}
}

func (c *RecordCounter) Count(ctx context.Context, collection string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.db.QueryTimeout)
	defer cancel()

	coll := c.db.Client.Database(c.db.DBName).Collection(collection)

	return coll.CountDocuments(ctx, bson.M{})
}

func (c *RecordCounter) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.db.QueryTimeout)
	defer cancel()

	return c.db.Client.Ping(ctx, nil)
}
