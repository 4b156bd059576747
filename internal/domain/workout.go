// internal/domain/workout.go
package domain

import (
	"fmt"
	"time"
)

// SetLog is one performed (or planned) set inside an exercise session.
type SetLog struct {
	ID        string  `json:"id"`
	Weight    float64 `json:"weight"` // kilograms
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// Volume is weight * reps for this set.
func (s SetLog) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// ExerciseSession holds the sets done for one exercise within a workout.
// ExerciseID is a weak reference: the exercise may be deleted later.
type ExerciseSession struct {
	ID         string   `json:"id"`
	ExerciseID string   `json:"exerciseId"`
	Sets       []SetLog `json:"sets"`
}

// Workout is one training session on one date.
type Workout struct {
	ID        string            `json:"id"`
	Date      time.Time         `json:"date"`
	Exercises []ExerciseSession `json:"exercises"`
	Notes     string            `json:"notes,omitempty"`
}

// Clone returns a deep copy so edits never leak into shared snapshots.
func (w Workout) Clone() Workout {
	out := w
	out.Exercises = make([]ExerciseSession, len(w.Exercises))
	for i, ex := range w.Exercises {
		out.Exercises[i] = ex
		out.Exercises[i].Sets = append([]SetLog(nil), ex.Sets...)
		if out.Exercises[i].Sets == nil {
			out.Exercises[i].Sets = []SetLog{}
		}
	}
	return out
}

// SetPatch is a partial update of a SetLog. Nil fields are left untouched.
type SetPatch struct {
	Weight    *float64 `json:"weight,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
}

// Apply merges the present fields of p into s.
func (p SetPatch) Apply(s SetLog) SetLog {
	if p.Weight != nil {
		s.Weight = *p.Weight
	}
	if p.Reps != nil {
		s.Reps = *p.Reps
	}
	if p.Completed != nil {
		s.Completed = *p.Completed
	}
	return s
}

// Validate rejects negative weight or reps.
func (p SetPatch) Validate() error {
	if p.Weight != nil && *p.Weight < 0 {
		return fmt.Errorf("%w: weight can't be negative", ErrValidation)
	}
	if p.Reps != nil && *p.Reps < 0 {
		return fmt.Errorf("%w: reps can't be negative", ErrValidation)
	}
	return nil
}
