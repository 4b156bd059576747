package service

import (
	"time"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/idgen"
	"github.com/Click-facil/fitclick/internal/views"
)

// SessionBuilder creates and edits in-progress workouts. Every method returns
// a new Workout value and leaves its input untouched; nothing here writes to
// the store, committing is the caller's job.
type SessionBuilder struct {
	newID idgen.Generator
	now   func() time.Time
}

// NewSessionBuilder creates a builder. Nil arguments default to idgen.New and time.Now.
func NewSessionBuilder(newID idgen.Generator, now func() time.Time) *SessionBuilder {
	if newID == nil {
		newID = idgen.New
	}
	if now == nil {
		now = time.Now
	}
	return &SessionBuilder{newID: newID, now: now}
}

// StartEmpty starts a workout without exercises.
func (b *SessionBuilder) StartEmpty() domain.Workout {
	return domain.Workout{
		ID:        b.newID(),
		Date:      b.now().UTC(),
		Exercises: []domain.ExerciseSession{},
	}
}

// StartFromTemplate starts a workout with one blank set per template exercise,
// in template order. Template sessions are never prefilled from history.
func (b *SessionBuilder) StartFromTemplate(exerciseIDs []string) domain.Workout {
	w := b.StartEmpty()
	for _, exerciseID := range exerciseIDs {
		w.Exercises = append(w.Exercises, domain.ExerciseSession{
			ID:         b.newID(),
			ExerciseID: exerciseID,
			Sets:       []domain.SetLog{b.blankSet()},
		})
	}
	return w
}

// AddExercise appends a session for exerciseID. When history holds a previous
// performance its sets are copied with fresh ids and completed reset,
// otherwise the session starts with one blank set.
func (b *SessionBuilder) AddExercise(w domain.Workout, exerciseID string, history []domain.Workout) domain.Workout {
	out := w.Clone()

	var sets []domain.SetLog
	if last, ok := views.LastPerformance(history, exerciseID); ok {
		sets = make([]domain.SetLog, 0, len(last))
		for _, s := range last {
			sets = append(sets, domain.SetLog{
				ID:     b.newID(),
				Weight: s.Weight,
				Reps:   s.Reps,
			})
		}
	} else {
		sets = []domain.SetLog{b.blankSet()}
	}

	out.Exercises = append(out.Exercises, domain.ExerciseSession{
		ID:         b.newID(),
		ExerciseID: exerciseID,
		Sets:       sets,
	})
	return out
}

// ReplaceExercise swaps the exercise of a session and keeps its logged sets.
func (b *SessionBuilder) ReplaceExercise(w domain.Workout, sessionID, newExerciseID string) domain.Workout {
	out := w.Clone()
	for i := range out.Exercises {
		if out.Exercises[i].ID == sessionID {
			out.Exercises[i].ExerciseID = newExerciseID
		}
	}
	return out
}

// RemoveExercise drops the session with sessionID.
func (b *SessionBuilder) RemoveExercise(w domain.Workout, sessionID string) domain.Workout {
	out := w.Clone()
	kept := out.Exercises[:0]
	for _, ex := range out.Exercises {
		if ex.ID != sessionID {
			kept = append(kept, ex)
		}
	}
	out.Exercises = kept
	return out
}

// AddSet appends a set that continues from the session's last set.
func (b *SessionBuilder) AddSet(w domain.Workout, sessionID string) domain.Workout {
	out := w.Clone()
	for i := range out.Exercises {
		ex := &out.Exercises[i]
		if ex.ID != sessionID {
			continue
		}
		next := b.blankSet()
		if n := len(ex.Sets); n > 0 {
			next.Weight = ex.Sets[n-1].Weight
			next.Reps = ex.Sets[n-1].Reps
		}
		ex.Sets = append(ex.Sets, next)
	}
	return out
}

// UpdateSet merges patch into the matching set. Unknown ids change nothing.
func (b *SessionBuilder) UpdateSet(w domain.Workout, sessionID, setID string, patch domain.SetPatch) domain.Workout {
	out := w.Clone()
	for i := range out.Exercises {
		if out.Exercises[i].ID != sessionID {
			continue
		}
		for j := range out.Exercises[i].Sets {
			if out.Exercises[i].Sets[j].ID == setID {
				out.Exercises[i].Sets[j] = patch.Apply(out.Exercises[i].Sets[j])
			}
		}
	}
	return out
}

func (b *SessionBuilder) blankSet() domain.SetLog {
	return domain.SetLog{ID: b.newID()}
}
