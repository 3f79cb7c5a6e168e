package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of a MongoDB collection, for
// deployments that need renders shared across multiple server instances.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore wraps a collection (conventionally named "renders") for
// render persistence. The caller is responsible for connecting and
// disconnecting the underlying client except via [MongoStore.Close].
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

// Get retrieves a render by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Render, error) {
	var r Render
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find render: %w", err)
	}
	return &r, nil
}

// Set stores a render, replacing any existing document with the same ID.
func (s *MongoStore) Set(ctx context.Context, r *Render) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"id": r.ID}, r, opts)
	if err != nil {
		return fmt.Errorf("store render: %w", err)
	}
	return nil
}

// Delete removes a render.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete render: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close() error {
	return s.collection.Database().Client().Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
