package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Click-facil/fitclick/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvEntry struct {
	Key       string `gorm:"column:kv_key;primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

type kvStore struct {
	db *gorm.DB
}

// NewKVStore creates a repository.KVStore on top of an opened gorm sqlite db.
func NewKVStore(db *gorm.DB) repository.KVStore {
	return &kvStore{db: db}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).Where("kv_key = ?", key).First(&entry).Error
	switch {
	case err == nil:
		return entry.Value, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrKeyNotFound
	default:
		return nil, fmt.Errorf("find kv entry: %w", err)
	}
}

// Set upserts the value in a single statement, so a failed write leaves the old value.
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("upsert kv entry: %w", err)
	}
	return nil
}

func (s *kvStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
