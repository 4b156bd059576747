package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/Click-facil/fitclick/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewKVStore(db, "fitclick:")
	ctx := context.Background()

	mock.ExpectGet("fitclick:workouts").SetErr(redis.Nil)
	_, err := store.Get(ctx, repository.WorkoutsKey)
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	mock.ExpectGet("fitclick:workouts").SetVal(`[]`)
	val, err := store.Get(ctx, repository.WorkoutsKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), val)

	mock.ExpectGet("fitclick:exercises").SetErr(errors.New("connection refused"))
	_, err = store.Get(ctx, repository.ExercisesKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewKVStore(db, "fitclick:")
	ctx := context.Background()

	mock.ExpectSet("fitclick:exercises", []byte(`[{"id":"x"}]`), 0).SetVal("OK")
	require.NoError(t, store.Set(ctx, repository.ExercisesKey, []byte(`[{"id":"x"}]`)))

	mock.ExpectSet("fitclick:exercises", []byte(`[]`), 0).SetErr(errors.New("OOM command not allowed"))
	require.Error(t, store.Set(ctx, repository.ExercisesKey, []byte(`[]`)))

	require.NoError(t, mock.ExpectationsWereMet())
}
