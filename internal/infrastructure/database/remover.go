package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"emogo/pkg/logger"
)

type RecordRemover struct {
	db *Database
}

func NewRecordRemover(db *Database) *RecordRemover {
	return &RecordRemover{db: db}
}

// Clear removes every document in a collection and returns the removed
// count. Not exposed over HTTP; seeding tooling only.
func (r *RecordRemover) Clear(ctx context.Context, collection string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(collection)

	result, err := coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}

	logger.Info("cleared collection", "collection", collection, "removed", result.DeletedCount)

	return result.DeletedCount, nil
}
