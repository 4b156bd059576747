package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/Click-facil/fitclick/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const kvCollectionName = "kv"

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoKVStore implements repository.KVStore
type mongoKVStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoKVStore creates a KV store in db. Close disconnects client.
func NewMongoKVStore(client *mongo.Client, db *mongo.Database) repository.KVStore {
	return &mongoKVStore{
		client:     client,
		collection: db.Collection(kvCollectionName),
	}
}

func (s *mongoKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, err
	}
	return doc.Value, nil
}

// Set replaces the whole document, a single-document write is atomic in MongoDB.
func (s *mongoKVStore) Set(ctx context.Context, key string, value []byte) error {
	doc := kvDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *mongoKVStore) Close() error {
	if s.client == nil {
		return nil
	}
	return DisconnectDB(s.client)
}
