package main

import (
	"context"
	"fmt"

	"github.com/Click-facil/fitclick/internal/config"
	"github.com/Click-facil/fitclick/internal/repository"
	"github.com/Click-facil/fitclick/internal/repository/memory"
	"github.com/Click-facil/fitclick/internal/repository/mongo"
	"github.com/Click-facil/fitclick/internal/repository/redis"
	"github.com/Click-facil/fitclick/internal/repository/sqlite"
	log "github.com/sirupsen/logrus"
)

// openKVStore connects the configured backend. Closing the returned store
// releases the underlying connection.
func openKVStore(ctx context.Context, cfg config.StorageConfig) (repository.KVStore, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.NewDB(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		log.Infof("using sqlite store at %s", cfg.SQLitePath)
		return sqlite.NewKVStore(db), nil

	case config.DriverMongo:
		client, err := mongo.ConnectDB(cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		log.Infof("using mongo store, database %s", cfg.MongoDatabase)
		return mongo.NewMongoKVStore(client, client.Database(cfg.MongoDatabase)), nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		log.Infof("using redis store at %s, prefix %q", cfg.RedisAddr, cfg.KeyPrefix)
		return redis.NewKVStore(client, cfg.KeyPrefix), nil

	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return memory.NewKVStore(), nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
}
