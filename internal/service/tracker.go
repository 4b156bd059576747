package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/metrics"
	"github.com/Click-facil/fitclick/internal/repository"
	"github.com/Click-facil/fitclick/internal/views"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoActiveWorkout  = errors.New("no workout in progress")
	ErrTemplateNotFound = errors.New("template not found")
)

// TipRequester asks for a fresh coach tip in the background.
type TipRequester interface {
	Request(ctx context.Context, workouts []domain.Workout, exercises []domain.Exercise) uint64
}

// Tracker owns the in-memory application state: the loaded collections and
// the single workout in progress. Every operation is serialized. The active
// workout lives only in memory until SaveActive commits it.
type Tracker struct {
	workoutRepo     repository.WorkoutRepository
	exerciseService ExerciseService
	builder         *SessionBuilder
	tips            TipRequester
	metrics         *metrics.Manager

	mu        sync.Mutex
	exercises []domain.Exercise
	workouts  []domain.Workout
	active    *domain.Workout
}

// NewTracker creates a Tracker. tips and metricsManager may be nil.
// Call Refresh before serving.
func NewTracker(
	workoutRepo repository.WorkoutRepository,
	exerciseService ExerciseService,
	builder *SessionBuilder,
	tips TipRequester,
	metricsManager *metrics.Manager,
) *Tracker {
	if builder == nil {
		builder = NewSessionBuilder(nil, nil)
	}
	return &Tracker{
		workoutRepo:     workoutRepo,
		exerciseService: exerciseService,
		builder:         builder,
		tips:            tips,
		metrics:         metricsManager,
	}
}

// Refresh reloads both collections from the store and asks for a new tip.
func (t *Tracker) Refresh(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.reloadLocked(ctx); err != nil {
		return err
	}
	t.requestTipLocked(ctx)
	return nil
}

func (t *Tracker) reloadLocked(ctx context.Context) error {
	exercises, err := t.exerciseService.ListExercises(ctx)
	if err != nil {
		return fmt.Errorf("load exercises: %w", err)
	}
	workouts, err := t.workoutRepo.LoadWorkouts(ctx)
	if err != nil {
		return fmt.Errorf("load workouts: %w", err)
	}
	t.exercises = exercises
	t.workouts = workouts
	return nil
}

func (t *Tracker) requestTipLocked(ctx context.Context) {
	if t.tips == nil {
		return
	}
	t.tips.Request(ctx, t.workouts, t.exercises)
}

func (t *Tracker) recordWrite(collection string, err error) {
	if t.metrics == nil {
		return
	}
	t.metrics.CounterStoreWrites.WithLabelValues(collection, metrics.Outcome(err)).Inc()
}

func (t *Tracker) setActiveLocked(w *domain.Workout) {
	t.active = w
	if t.metrics == nil {
		return
	}
	if w == nil {
		t.metrics.GaugeActiveWorkout.Set(0)
	} else {
		t.metrics.GaugeActiveWorkout.Set(1)
	}
}

// Workouts returns the history in collection order.
func (t *Tracker) Workouts() []domain.Workout {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Workout, 0, len(t.workouts))
	for _, w := range t.workouts {
		out = append(out, w.Clone())
	}
	return out
}

func (t *Tracker) Exercises() []domain.Exercise {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Exercise(nil), t.exercises...)
}

// History returns the workouts newest first.
func (t *Tracker) History() []domain.Workout {
	return views.SortedHistory(t.Workouts())
}

func (t *Tracker) CreateExercise(ctx context.Context, name string, category domain.Category) (*domain.Exercise, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	exercise, err := t.exerciseService.CreateExercise(ctx, name, category)
	if errors.Is(err, domain.ErrValidation) {
		return nil, err
	}
	t.recordWrite(repository.ExercisesKey, err)
	if err != nil {
		return nil, err
	}

	if err := t.reloadLocked(ctx); err != nil {
		return nil, err
	}
	t.requestTipLocked(ctx)
	log.Infof("exercise created: %s (%s)", exercise.Name, exercise.ID)
	return exercise, nil
}

// DeleteExercise removes an exercise from the library. Workouts that used it
// keep the id and resolve it as UnknownExerciseName.
func (t *Tracker) DeleteExercise(ctx context.Context, exerciseID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.exerciseService.DeleteExercise(ctx, exerciseID)
	t.recordWrite(repository.ExercisesKey, err)
	if err != nil {
		return err
	}
	if err := t.reloadLocked(ctx); err != nil {
		return err
	}
	t.requestTipLocked(ctx)
	return nil
}

func (t *Tracker) DeleteWorkout(ctx context.Context, workoutID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.workoutRepo.DeleteWorkout(ctx, workoutID)
	t.recordWrite(repository.WorkoutsKey, err)
	if err != nil {
		return err
	}
	if err := t.reloadLocked(ctx); err != nil {
		return err
	}
	t.requestTipLocked(ctx)
	return nil
}

// Active returns a copy of the workout in progress.
func (t *Tracker) Active() (domain.Workout, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return domain.Workout{}, false
	}
	return t.active.Clone(), true
}

// StartWorkout starts a new workout, discarding any workout in progress.
// With template exercise ids every exercise gets one blank set.
func (t *Tracker) StartWorkout(templateExerciseIDs ...string) domain.Workout {
	t.mu.Lock()
	defer t.mu.Unlock()

	var w domain.Workout
	if len(templateExerciseIDs) == 0 {
		w = t.builder.StartEmpty()
	} else {
		w = t.builder.StartFromTemplate(templateExerciseIDs)
	}
	if t.active != nil {
		log.Debugf("discarding unsaved workout %s", t.active.ID)
	}
	t.setActiveLocked(&w)
	return w.Clone()
}

// StartTemplate starts a workout from a built-in template.
func (t *Tracker) StartTemplate(name string) (domain.Workout, error) {
	tpl, ok := domain.FindTemplate(name)
	if !ok {
		return domain.Workout{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return t.StartWorkout(tpl.ExerciseIDs...), nil
}

// editActive applies edit to the workout in progress and stores the result.
func (t *Tracker) editActive(edit func(w domain.Workout) domain.Workout) (domain.Workout, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return domain.Workout{}, ErrNoActiveWorkout
	}
	next := edit(*t.active)
	t.active = &next
	return next.Clone(), nil
}

// AddExerciseToActive appends a session prefilled from the last performance.
func (t *Tracker) AddExerciseToActive(exerciseID string) (domain.Workout, error) {
	if strings.TrimSpace(exerciseID) == "" {
		return domain.Workout{}, fmt.Errorf("%w: exercise id is required", domain.ErrValidation)
	}
	return t.editActive(func(w domain.Workout) domain.Workout {
		return t.builder.AddExercise(w, exerciseID, t.workouts)
	})
}

func (t *Tracker) ReplaceExerciseInActive(sessionID, newExerciseID string) (domain.Workout, error) {
	if strings.TrimSpace(newExerciseID) == "" {
		return domain.Workout{}, fmt.Errorf("%w: exercise id is required", domain.ErrValidation)
	}
	return t.editActive(func(w domain.Workout) domain.Workout {
		return t.builder.ReplaceExercise(w, sessionID, newExerciseID)
	})
}

func (t *Tracker) RemoveExerciseFromActive(sessionID string) (domain.Workout, error) {
	return t.editActive(func(w domain.Workout) domain.Workout {
		return t.builder.RemoveExercise(w, sessionID)
	})
}

func (t *Tracker) AddSetToActive(sessionID string) (domain.Workout, error) {
	return t.editActive(func(w domain.Workout) domain.Workout {
		return t.builder.AddSet(w, sessionID)
	})
}

func (t *Tracker) UpdateSetInActive(sessionID, setID string, patch domain.SetPatch) (domain.Workout, error) {
	if err := patch.Validate(); err != nil {
		return domain.Workout{}, err
	}
	return t.editActive(func(w domain.Workout) domain.Workout {
		return t.builder.UpdateSet(w, sessionID, setID, patch)
	})
}

func (t *Tracker) SetActiveNotes(notes string) (domain.Workout, error) {
	return t.editActive(func(w domain.Workout) domain.Workout {
		w = w.Clone()
		w.Notes = notes
		return w
	})
}

// SaveActive commits the workout in progress, reloads the history and clears
// the active slot. On a write failure the workout stays active. Once the write
// succeeds the save is reported as done; a failed reload only leaves the
// cached collections stale until the next successful change or Refresh.
func (t *Tracker) SaveActive(ctx context.Context) (domain.Workout, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return domain.Workout{}, ErrNoActiveWorkout
	}

	saved := t.active.Clone()
	err := t.workoutRepo.SaveWorkout(ctx, saved)
	t.recordWrite(repository.WorkoutsKey, err)
	if err != nil {
		return domain.Workout{}, err
	}
	t.setActiveLocked(nil)

	if err := t.reloadLocked(ctx); err != nil {
		log.Errorf("workout %s saved but reload failed: %s", saved.ID, err)
		return saved, nil
	}
	t.requestTipLocked(ctx)
	log.Infof("workout saved: %s (%d exercises, volume %.1fkg)", saved.ID, len(saved.Exercises), views.WorkoutVolume(saved))
	return saved, nil
}

// CancelActive discards the workout in progress without writing anything.
func (t *Tracker) CancelActive() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return ErrNoActiveWorkout
	}
	t.setActiveLocked(nil)
	return nil
}

func (t *Tracker) LastPerformance(exerciseID string) ([]domain.SetLog, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return views.LastPerformance(t.workouts, exerciseID)
}

// WeeklyVolume returns the 7-day volume series ending at ref.
func (t *Tracker) WeeklyVolume(ref time.Time) []views.DayVolume {
	t.mu.Lock()
	defer t.mu.Unlock()
	return views.WeeklyVolumeSeries(t.workouts, ref)
}
