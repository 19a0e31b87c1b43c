package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo wraps the document-store client with an explicit lifecycle. The client
// is constructed once at startup and closed during shutdown; it is never a
// hidden package-level singleton.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// ConnectMongo establishes a connection to the MongoDB deployment at uri and
// binds the named database.
func ConnectMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri must not be empty")
	}
	if dbName == "" {
		return nil, fmt.Errorf("mongo database name must not be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("unable to reach mongo: %w", err)
	}

	return &Mongo{client: client, database: client.Database(dbName)}, nil
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
