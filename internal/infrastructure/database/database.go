package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repository "emogo/internal/domain/repository/database"
)

const (
	VlogCollection      = repository.VlogCollection
	SentimentCollection = repository.SentimentCollection
	GPSCollection       = repository.GPSCollection
)

// DefaultListLimit bounds list queries when the caller gives no limit.
const DefaultListLimit = 100

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	for collection, schema := range collectionSchemas {
		if err := initCollection(db, collection, schema); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// collectionSchemas holds the $jsonSchema validator per collection. Bounds
// are enforced by the domain validator before any write reaches the store;
// the schemas are a second line of defense against out-of-band writes.
var collectionSchemas = map[string]bson.M{
	VlogCollection: {
		"bsonType": "object",
		"required": []string{"user_id", "video_url", "timestamp"},
		"properties": bson.M{
			"user_id":           bson.M{"bsonType": "string", "minLength": 1},
			"video_url":         bson.M{"bsonType": "string", "minLength": 1},
			"download_url":      bson.M{"bsonType": "string"},
			"original_filename": bson.M{"bsonType": "string"},
			"file_size":         bson.M{"bsonType": []string{"long", "int", "null"}},
			"title":             bson.M{"bsonType": []string{"string", "null"}},
			"description":       bson.M{"bsonType": []string{"string", "null"}},
			"duration":          bson.M{"bsonType": []string{"double", "int", "null"}, "minimum": 0},
			"timestamp":         bson.M{"bsonType": "date"},
		},
	},
	SentimentCollection: {
		"bsonType": "object",
		"required": []string{"user_id", "emotion", "intensity", "timestamp"},
		"properties": bson.M{
			"user_id":   bson.M{"bsonType": "string", "minLength": 1},
			"emotion":   bson.M{"bsonType": "string", "minLength": 1},
			"intensity": bson.M{"bsonType": []string{"double", "int"}, "minimum": 0, "maximum": 1},
			"note":      bson.M{"bsonType": []string{"string", "null"}},
			"context":   bson.M{"bsonType": []string{"string", "null"}},
			"timestamp": bson.M{"bsonType": "date"},
		},
	},
	GPSCollection: {
		"bsonType": "object",
		"required": []string{"user_id", "latitude", "longitude", "timestamp"},
		"properties": bson.M{
			"user_id":       bson.M{"bsonType": "string", "minLength": 1},
			"latitude":      bson.M{"bsonType": []string{"double", "int"}, "minimum": -90, "maximum": 90},
			"longitude":     bson.M{"bsonType": []string{"double", "int"}, "minimum": -180, "maximum": 180},
			"altitude":      bson.M{"bsonType": []string{"double", "int", "null"}},
			"accuracy":      bson.M{"bsonType": []string{"double", "int", "null"}},
			"location_name": bson.M{"bsonType": []string{"string", "null"}},
			"timestamp":     bson.M{"bsonType": "date"},
		},
	},
}

func initCollection(db *Database, collection string, schema bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": collection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{"$jsonSchema": schema})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, collection, collOpts)
	if err != nil {
		return err
	}
	coll := db.Client.Database(db.DBName).Collection(collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
