package service_test

import (
	"context"
	"testing"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/repository/kv"
	"github.com/Click-facil/fitclick/internal/repository/memory"
	"github.com/Click-facil/fitclick/internal/service"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseService_Create(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewExerciseRepository(memory.NewKVStore())
	svc := service.NewExerciseService(repo, sequentialIDs("ex-"))

	name := gofakeit.Noun() + " Press"
	created, err := svc.CreateExercise(ctx, "  "+name+"  ", domain.CategoryChest)
	require.NoError(t, err)
	assert.Equal(t, "ex-1", created.ID)
	assert.Equal(t, name, created.Name)

	all, err := svc.ListExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(domain.SeedExercises())+1)
	assert.Equal(t, *created, all[len(all)-1])
}

func TestExerciseService_CreateRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	svc := service.NewExerciseService(kv.NewExerciseRepository(store), nil)

	testCases := []struct {
		name     string
		exName   string
		category domain.Category
	}{
		{name: "blank name", exName: "   ", category: domain.CategoryLegs},
		{name: "unknown category", exName: "Nordic Curl", category: domain.Category("Neck")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateExercise(ctx, tc.exName, tc.category)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	// nothing was persisted
	_, err := store.Get(ctx, "exercises")
	assert.Error(t, err)
}

func TestExerciseService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := service.NewExerciseService(kv.NewExerciseRepository(memory.NewKVStore()), nil)

	require.NoError(t, svc.DeleteExercise(ctx, "p1"))
	all, err := svc.ListExercises(ctx)
	require.NoError(t, err)
	for _, ex := range all {
		assert.NotEqual(t, "p1", ex.ID)
	}
	assert.Len(t, all, len(domain.SeedExercises())-1)

	require.NoError(t, svc.DeleteExercise(ctx, "does-not-exist"))
}
