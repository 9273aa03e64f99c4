package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"jessster/logger"
)

const (
	DefaultURI    = "mongodb://localhost:27017"
	DefaultDBName = "jessster"

	collectionClientState = "client_state"
	connectTimeout        = 10 * time.Second
)

// Connect opens a client, pings the primary and ensures indexes on the
// collections this module writes to. The caller owns the returned client.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	if uri == "" {
		uri = DefaultURI
	}
	if dbName == "" {
		dbName = DefaultDBName
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, nil, err
	}

	d := cl.Database(dbName)
	if err := ensureIndexes(ctx, d); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, nil, err
	}
	logger.InfoWithFields("mongodb connected", logger.Fields{"db": dbName})
	return cl, d, nil
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// client_state: updated_at for inspecting stale sessions
	_, err := d.Collection(collectionClientState).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: -1}},
		Options: options.Index().SetName("idx_updated_at_desc"),
	})
	return err
}
