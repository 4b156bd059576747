package service

import (
	"context"
	"strings"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/idgen"
	"github.com/Click-facil/fitclick/internal/repository"
)

// ExerciseService manages the personal exercise library.
type ExerciseService interface {
	CreateExercise(ctx context.Context, name string, category domain.Category) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID string) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	newID        idgen.Generator
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, newID idgen.Generator) ExerciseService {
	if newID == nil {
		newID = idgen.New
	}
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		newID:        newID,
	}
}

// CreateExercise validates the input and appends a new exercise with a fresh id.
// Invalid input returns domain.ErrValidation and nothing is written.
func (s *exerciseService) CreateExercise(ctx context.Context, name string, category domain.Category) (*domain.Exercise, error) {
	if err := domain.ValidateExercise(name, category); err != nil {
		return nil, err
	}

	exercise := domain.Exercise{
		ID:       s.newID(),
		Name:     strings.TrimSpace(name),
		Category: category,
	}
	if err := s.exerciseRepo.SaveExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

// ListExercises returns the library, the seed catalog on first use.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.LoadExercises(ctx)
}

// DeleteExercise removes an exercise. Historic workouts keep the dangling id.
func (s *exerciseService) DeleteExercise(ctx context.Context, exerciseID string) error {
	return s.exerciseRepo.DeleteExercise(ctx, exerciseID)
}
