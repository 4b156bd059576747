// Package redis keeps the collections in a (typically local) redis instance.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/Click-facil/fitclick/internal/repository"

	"github.com/go-redis/redis/v8"
)

type kvStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewKVStore wraps client; every key is stored as keyPrefix + key.
func NewKVStore(client *redis.Client, keyPrefix string) repository.KVStore {
	return &kvStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// NewClient connects to addr and pings it.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, err
	}
	return val, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.keyPrefix+key, value, 0).Err()
}

func (s *kvStore) Close() error {
	return s.client.Close()
}
