// Package kv persists the exercise library and workout history as whole JSON
// arrays under fixed keys of a repository.KVStore.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Click-facil/fitclick/internal/repository"

	log "github.com/sirupsen/logrus"
)

// loadCollection reads and decodes the array stored under key.
// A missing key yields absent(); unparseable data is logged and yields corrupt().
func loadCollection[T any](
	ctx context.Context,
	store repository.KVStore,
	key string,
	absent, corrupt func() []T,
) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return absent(), nil
		}
		return nil, fmt.Errorf("%w: get %s: %v", repository.ErrStorageRead, key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Errorf("stored %s can't be parsed, recovering: %s", key, err)
		return corrupt(), nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveCollection encodes items and replaces the value under key.
func saveCollection[T any](ctx context.Context, store repository.KVStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", repository.ErrStorageWrite, key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: set %s: %v", repository.ErrStorageWrite, key, err)
	}
	return nil
}
