package repository

import (
	"context" // Standard for request-scoped deadlines, cancellation signals, etc.

	"github.com/Click-facil/fitclick/internal/domain" // Import our defined domain models
)

// Error constants for repository layer
var (
	ErrKeyNotFound  = RepositoryError("key not found")
	ErrStorageRead  = RepositoryError("storage read failed")
	ErrStorageWrite = RepositoryError("storage write failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Keys of the two persisted collections.
const (
	WorkoutsKey  = "workouts"
	ExercisesKey = "exercises"
)

// KVStore is the local key-value medium the collections are persisted in.
// Get returns ErrKeyNotFound when nothing was ever written under key.
// Set replaces the whole value atomically.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// ExerciseRepository defines the interface for interacting with the exercise library.
type ExerciseRepository interface {
	LoadExercises(ctx context.Context) ([]domain.Exercise, error)
	SaveExercise(ctx context.Context, exercise domain.Exercise) error // append, caller generates a fresh id
	DeleteExercise(ctx context.Context, id string) error              // absent id is a no-op
}

// WorkoutRepository defines the interface for interacting with workout history.
type WorkoutRepository interface {
	LoadWorkouts(ctx context.Context) ([]domain.Workout, error)
	SaveWorkout(ctx context.Context, workout domain.Workout) error // upsert by id
	DeleteWorkout(ctx context.Context, id string) error            // absent id is a no-op
}
