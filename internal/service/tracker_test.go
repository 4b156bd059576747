package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/metrics"
	"github.com/Click-facil/fitclick/internal/repository"
	"github.com/Click-facil/fitclick/internal/repository/kv"
	"github.com/Click-facil/fitclick/internal/repository/memory"
	"github.com/Click-facil/fitclick/internal/service"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTips struct {
	mu       sync.Mutex
	requests int
	last     []domain.Workout
}

func (c *countingTips) Request(_ context.Context, workouts []domain.Workout, _ []domain.Exercise) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	c.last = workouts
	return uint64(c.requests)
}

func (c *countingTips) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests
}

// brokenWorkoutRepo fails every write.
type brokenWorkoutRepo struct {
	repository.WorkoutRepository
}

func (brokenWorkoutRepo) SaveWorkout(context.Context, domain.Workout) error {
	return repository.ErrStorageWrite
}

// reloadFailingWorkoutRepo commits writes but fails every load after the
// first write.
type reloadFailingWorkoutRepo struct {
	repository.WorkoutRepository
	written bool
}

func (r *reloadFailingWorkoutRepo) SaveWorkout(ctx context.Context, w domain.Workout) error {
	if err := r.WorkoutRepository.SaveWorkout(ctx, w); err != nil {
		return err
	}
	r.written = true
	return nil
}

func (r *reloadFailingWorkoutRepo) LoadWorkouts(ctx context.Context) ([]domain.Workout, error) {
	if r.written {
		return nil, repository.ErrStorageRead
	}
	return r.WorkoutRepository.LoadWorkouts(ctx)
}

type trackerFixture struct {
	tracker *service.Tracker
	tips    *countingTips
	metrics *metrics.Manager
}

func newTrackerFixture(t *testing.T, workoutRepo repository.WorkoutRepository) trackerFixture {
	t.Helper()
	store := memory.NewKVStore()
	exerciseRepo := kv.NewExerciseRepository(store)
	if workoutRepo == nil {
		workoutRepo = kv.NewWorkoutRepository(store)
	}
	tips := &countingTips{}
	m := metrics.NewTestManager()

	tracker := service.NewTracker(
		workoutRepo,
		service.NewExerciseService(exerciseRepo, sequentialIDs("ex-")),
		service.NewSessionBuilder(sequentialIDs("id-"), fixedClock),
		tips,
		m,
	)
	require.NoError(t, tracker.Refresh(context.Background()))
	return trackerFixture{tracker: tracker, tips: tips, metrics: m}
}

func TestTracker_RefreshLoadsSeedCatalog(t *testing.T) {
	f := newTrackerFixture(t, nil)

	assert.Equal(t, domain.SeedExercises(), f.tracker.Exercises())
	assert.Empty(t, f.tracker.Workouts())
	assert.Equal(t, 1, f.tips.count())
}

func TestTracker_NoActiveWorkout(t *testing.T) {
	f := newTrackerFixture(t, nil)
	ctx := context.Background()

	_, ok := f.tracker.Active()
	assert.False(t, ok)

	_, err := f.tracker.AddExerciseToActive("p1")
	assert.ErrorIs(t, err, service.ErrNoActiveWorkout)
	_, err = f.tracker.AddSetToActive("s")
	assert.ErrorIs(t, err, service.ErrNoActiveWorkout)
	_, err = f.tracker.SetActiveNotes("n")
	assert.ErrorIs(t, err, service.ErrNoActiveWorkout)
	_, err = f.tracker.SaveActive(ctx)
	assert.ErrorIs(t, err, service.ErrNoActiveWorkout)
	assert.ErrorIs(t, f.tracker.CancelActive(), service.ErrNoActiveWorkout)
}

func TestTracker_WorkoutLifecycle(t *testing.T) {
	f := newTrackerFixture(t, nil)
	ctx := context.Background()

	w, err := f.tracker.StartTemplate(domain.Templates[1].Name)
	require.NoError(t, err)
	assert.Len(t, w.Exercises, len(domain.Templates[1].ExerciseIDs))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.GaugeActiveWorkout))

	w, err = f.tracker.AddExerciseToActive("l1")
	require.NoError(t, err)
	session := w.Exercises[len(w.Exercises)-1]
	assert.Equal(t, "l1", session.ExerciseID)

	_, err = f.tracker.UpdateSetInActive(session.ID, session.Sets[0].ID, domain.SetPatch{
		Weight:    ptr(100.0),
		Reps:      ptr(5),
		Completed: ptr(true),
	})
	require.NoError(t, err)
	w, err = f.tracker.SetActiveNotes("heavy day")
	require.NoError(t, err)
	assert.Equal(t, "heavy day", w.Notes)

	saved, err := f.tracker.SaveActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, w.ID, saved.ID)

	_, ok := f.tracker.Active()
	assert.False(t, ok)
	workouts := f.tracker.Workouts()
	require.Len(t, workouts, 1)
	assert.Equal(t, "heavy day", workouts[0].Notes)
	assert.Equal(t, 2, f.tips.count())
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.GaugeActiveWorkout))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterStoreWrites.WithLabelValues("workouts", "ok")))

	// the next workout is prefilled from the saved one
	f.tracker.StartWorkout()
	w, err = f.tracker.AddExerciseToActive("l1")
	require.NoError(t, err)
	require.Len(t, w.Exercises[0].Sets, 1)
	assert.Equal(t, 100.0, w.Exercises[0].Sets[0].Weight)
	assert.Equal(t, 5, w.Exercises[0].Sets[0].Reps)
	assert.False(t, w.Exercises[0].Sets[0].Completed)

	last, ok := f.tracker.LastPerformance("l1")
	require.True(t, ok)
	assert.Equal(t, 100.0, last[0].Weight)

	series := f.tracker.WeeklyVolume(fixedNow)
	require.Len(t, series, 7)
	assert.Equal(t, 500.0, series[6].Volume)
}

func TestTracker_StartWorkoutReplacesActive(t *testing.T) {
	f := newTrackerFixture(t, nil)

	first := f.tracker.StartWorkout("p1")
	second := f.tracker.StartWorkout()

	active, ok := f.tracker.Active()
	require.True(t, ok)
	assert.Equal(t, second.ID, active.ID)
	assert.NotEqual(t, first.ID, active.ID)
	assert.Empty(t, active.Exercises)
}

func TestTracker_StartTemplateUnknown(t *testing.T) {
	f := newTrackerFixture(t, nil)

	_, err := f.tracker.StartTemplate("Full Body")
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
	_, ok := f.tracker.Active()
	assert.False(t, ok)
}

func TestTracker_EditValidation(t *testing.T) {
	f := newTrackerFixture(t, nil)
	w := f.tracker.StartWorkout("p1")

	_, err := f.tracker.UpdateSetInActive(w.Exercises[0].ID, w.Exercises[0].Sets[0].ID, domain.SetPatch{Reps: ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.tracker.AddExerciseToActive(" ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	replaced, err := f.tracker.ReplaceExerciseInActive(w.Exercises[0].ID, "p2")
	require.NoError(t, err)
	assert.Equal(t, "p2", replaced.Exercises[0].ExerciseID)

	removed, err := f.tracker.RemoveExerciseFromActive(w.Exercises[0].ID)
	require.NoError(t, err)
	assert.Empty(t, removed.Exercises)
}

func TestTracker_CancelActive(t *testing.T) {
	f := newTrackerFixture(t, nil)
	f.tracker.StartWorkout("p1")

	require.NoError(t, f.tracker.CancelActive())
	_, ok := f.tracker.Active()
	assert.False(t, ok)
	assert.Empty(t, f.tracker.Workouts())
}

func TestTracker_SaveFailureKeepsActive(t *testing.T) {
	store := memory.NewKVStore()
	f := newTrackerFixture(t, brokenWorkoutRepo{kv.NewWorkoutRepository(store)})
	w := f.tracker.StartWorkout("p1")

	_, err := f.tracker.SaveActive(context.Background())
	assert.True(t, errors.Is(err, repository.ErrStorageWrite))

	active, ok := f.tracker.Active()
	require.True(t, ok)
	assert.Equal(t, w.ID, active.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterStoreWrites.WithLabelValues("workouts", "error")))
}

func TestTracker_SaveSucceedsWhenReloadFails(t *testing.T) {
	store := memory.NewKVStore()
	repo := &reloadFailingWorkoutRepo{WorkoutRepository: kv.NewWorkoutRepository(store)}
	f := newTrackerFixture(t, repo)
	ctx := context.Background()
	w := f.tracker.StartWorkout("p1")

	saved, err := f.tracker.SaveActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, w.ID, saved.ID)

	_, ok := f.tracker.Active()
	assert.False(t, ok)

	_, err = f.tracker.SaveActive(ctx)
	assert.ErrorIs(t, err, service.ErrNoActiveWorkout)

	persisted, err := kv.NewWorkoutRepository(store).LoadWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, w.ID, persisted[0].ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterStoreWrites.WithLabelValues("workouts", "ok")))
}

func TestTracker_ExercisesAndDeletes(t *testing.T) {
	f := newTrackerFixture(t, nil)
	ctx := context.Background()

	_, err := f.tracker.CreateExercise(ctx, "", domain.CategoryArms)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.CounterStoreWrites.WithLabelValues("exercises", "ok")))

	created, err := f.tracker.CreateExercise(ctx, "Zercher Squat", domain.CategoryLegs)
	require.NoError(t, err)
	assert.Contains(t, f.tracker.Exercises(), *created)

	f.tracker.StartWorkout(created.ID)
	_, err = f.tracker.SaveActive(ctx)
	require.NoError(t, err)

	require.NoError(t, f.tracker.DeleteExercise(ctx, created.ID))
	assert.NotContains(t, f.tracker.Exercises(), *created)
	require.Len(t, f.tracker.Workouts(), 1)

	require.NoError(t, f.tracker.DeleteWorkout(ctx, f.tracker.Workouts()[0].ID))
	assert.Empty(t, f.tracker.Workouts())
	require.NoError(t, f.tracker.DeleteWorkout(ctx, "missing"))
}

func TestTracker_HistoryNewestFirst(t *testing.T) {
	store := memory.NewKVStore()
	workoutRepo := kv.NewWorkoutRepository(store)
	ctx := context.Background()
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, workoutRepo.SaveWorkout(ctx, domain.Workout{
			ID:        id,
			Date:      fixedNow.Add(time.Duration(i) * time.Hour),
			Exercises: []domain.ExerciseSession{},
		}))
	}
	f := newTrackerFixture(t, workoutRepo)

	history := f.tracker.History()
	require.Len(t, history, 3)
	assert.Equal(t, "c", history[0].ID)
	assert.Equal(t, "a", history[2].ID)
	assert.Equal(t, "a", f.tracker.Workouts()[0].ID)
}
