package kv

import (
	"context"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/repository"
)

// workoutRepository implements repository.WorkoutRepository
type workoutRepository struct {
	store repository.KVStore
}

// NewWorkoutRepository creates a new Workout repository backed by store.
func NewWorkoutRepository(store repository.KVStore) repository.WorkoutRepository {
	return &workoutRepository{store: store}
}

func emptyWorkouts() []domain.Workout { return []domain.Workout{} }

// LoadWorkouts returns the stored history; empty if none stored.
func (r *workoutRepository) LoadWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return loadCollection(ctx, r.store, repository.WorkoutsKey, emptyWorkouts, emptyWorkouts)
}

// SaveWorkout replaces the workout with the same id in place, or appends it.
// The workout's own invariants are the caller's responsibility.
func (r *workoutRepository) SaveWorkout(ctx context.Context, workout domain.Workout) error {
	workouts, err := r.LoadWorkouts(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range workouts {
		if workouts[i].ID == workout.ID {
			workouts[i] = workout
			replaced = true
			break
		}
	}
	if !replaced {
		workouts = append(workouts, workout)
	}

	return saveCollection(ctx, r.store, repository.WorkoutsKey, workouts)
}

// DeleteWorkout removes the workout with id, together with its sessions.
// Deleting an unknown id is not an error.
func (r *workoutRepository) DeleteWorkout(ctx context.Context, id string) error {
	workouts, err := r.LoadWorkouts(ctx)
	if err != nil {
		return err
	}
	filtered := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.ID != id {
			filtered = append(filtered, w)
		}
	}
	return saveCollection(ctx, r.store, repository.WorkoutsKey, filtered)
}
