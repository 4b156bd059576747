package api

import (
	"time"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/views"
)

// --- DTOs for API (Data Transfer Objects) ---

type ExerciseResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category domain.Category `json:"category"`
}

type SetResponse struct {
	ID        string  `json:"id"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

type ExerciseSessionResponse struct {
	ID           string        `json:"id"`
	ExerciseID   string        `json:"exerciseId"`
	ExerciseName string        `json:"exerciseName"`
	Sets         []SetResponse `json:"sets"`
}

// WorkoutResponse is a workout with exercise names resolved and its volume computed.
type WorkoutResponse struct {
	ID        string                    `json:"id"`
	Date      time.Time                 `json:"date"`
	Notes     string                    `json:"notes,omitempty"`
	Volume    float64                   `json:"volume"`
	Exercises []ExerciseSessionResponse `json:"exercises"`
}

type TemplateResponse struct {
	Name      string             `json:"name"`
	Exercises []ExerciseResponse `json:"exercises"`
}

func MapExerciseToResponse(ex domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:       ex.ID,
		Name:     ex.Name,
		Category: ex.Category,
	}
}

func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(ex)
	}
	return responses
}

func MapSetsToResponse(sets []domain.SetLog) []SetResponse {
	responses := make([]SetResponse, len(sets))
	for i, s := range sets {
		responses[i] = SetResponse{
			ID:        s.ID,
			Weight:    s.Weight,
			Reps:      s.Reps,
			Completed: s.Completed,
		}
	}
	return responses
}

// MapWorkoutToResponse resolves exercise names against the library. Deleted
// exercises show as views.UnknownExerciseName.
func MapWorkoutToResponse(w domain.Workout, exercises []domain.Exercise) WorkoutResponse {
	sessions := make([]ExerciseSessionResponse, len(w.Exercises))
	for i, ex := range w.Exercises {
		sessions[i] = ExerciseSessionResponse{
			ID:           ex.ID,
			ExerciseID:   ex.ExerciseID,
			ExerciseName: views.ExerciseName(exercises, ex.ExerciseID),
			Sets:         MapSetsToResponse(ex.Sets),
		}
	}
	return WorkoutResponse{
		ID:        w.ID,
		Date:      w.Date,
		Notes:     w.Notes,
		Volume:    views.WorkoutVolume(w),
		Exercises: sessions,
	}
}

func MapWorkoutsToResponse(workouts []domain.Workout, exercises []domain.Exercise) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(w, exercises)
	}
	return responses
}

func MapTemplatesToResponse(templates []domain.Template, exercises []domain.Exercise) []TemplateResponse {
	responses := make([]TemplateResponse, len(templates))
	for i, tpl := range templates {
		resolved := make([]ExerciseResponse, len(tpl.ExerciseIDs))
		for j, id := range tpl.ExerciseIDs {
			resolved[j] = ExerciseResponse{ID: id, Name: views.ExerciseName(exercises, id)}
			for _, ex := range exercises {
				if ex.ID == id {
					resolved[j].Category = ex.Category
					break
				}
			}
		}
		responses[i] = TemplateResponse{Name: tpl.Name, Exercises: resolved}
	}
	return responses
}
