package kv

import (
	"context"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/repository"
)

// exerciseRepository implements repository.ExerciseRepository
type exerciseRepository struct {
	store repository.KVStore
}

// NewExerciseRepository creates a new Exercise repository backed by store.
func NewExerciseRepository(store repository.KVStore) repository.ExerciseRepository {
	return &exerciseRepository{store: store}
}

// LoadExercises returns the stored library, or the seed catalog when nothing
// was saved yet. The seed catalog is not written here.
func (r *exerciseRepository) LoadExercises(ctx context.Context) ([]domain.Exercise, error) {
	return loadCollection(ctx, r.store, repository.ExercisesKey, domain.SeedExercises, domain.SeedExercises)
}

// SaveExercise appends exercise. There is no upsert, callers must generate a fresh id.
func (r *exerciseRepository) SaveExercise(ctx context.Context, exercise domain.Exercise) error {
	exercises, err := r.LoadExercises(ctx)
	if err != nil {
		return err
	}
	exercises = append(exercises, exercise)
	return saveCollection(ctx, r.store, repository.ExercisesKey, exercises)
}

// DeleteExercise removes the exercise with id if present. An unknown id
// writes nothing; removing a seed entry before the library was ever saved
// persists the rest of the seed catalog. Workouts referencing it are not
// touched.
func (r *exerciseRepository) DeleteExercise(ctx context.Context, id string) error {
	exercises, err := r.LoadExercises(ctx)
	if err != nil {
		return err
	}
	filtered := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if ex.ID != id {
			filtered = append(filtered, ex)
		}
	}
	if len(filtered) == len(exercises) {
		return nil
	}
	return saveCollection(ctx, r.store, repository.ExercisesKey, filtered)
}
