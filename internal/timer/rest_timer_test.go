package timer_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Click-facil/fitclick/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu    sync.Mutex
	ticks []time.Duration
	done  int
}

func (r *recorder) onTick(remaining time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, remaining)
}

func (r *recorder) onDone() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
}

func (r *recorder) snapshot() ([]time.Duration, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.ticks...), r.done
}

func TestRestTimer_CountsDownAndFiresDoneOnce(t *testing.T) {
	rec := &recorder{}
	tick := 5 * time.Millisecond
	rt := timer.NewWithTick(tick, rec.onTick, rec.onDone)

	require.NoError(t, rt.Start(3*tick))
	assert.True(t, rt.Running())

	assert.Eventually(t, func() bool {
		_, done := rec.snapshot()
		return done == 1
	}, time.Second, time.Millisecond)
	rt.Stop()

	ticks, done := rec.snapshot()
	assert.Equal(t, []time.Duration{2 * tick, tick, 0}, ticks)
	assert.Equal(t, 1, done)
	assert.False(t, rt.Running())
	assert.Equal(t, time.Duration(0), rt.Remaining())
}

func TestRestTimer_StartReplacesRunningCountdown(t *testing.T) {
	rec := &recorder{}
	tick := 5 * time.Millisecond
	rt := timer.NewWithTick(tick, rec.onTick, rec.onDone)

	require.NoError(t, rt.Start(time.Hour))
	require.NoError(t, rt.Start(2*tick))

	status := rt.Status()
	assert.Equal(t, 2*tick, status.Duration)

	assert.Eventually(t, func() bool {
		_, done := rec.snapshot()
		return done == 1
	}, time.Second, time.Millisecond)
	rt.Stop()

	ticks, done := rec.snapshot()
	assert.Equal(t, 1, done)
	for _, remaining := range ticks {
		assert.LessOrEqual(t, remaining, 2*tick)
	}
}

func TestRestTimer_StopCancels(t *testing.T) {
	rec := &recorder{}
	rt := timer.NewWithTick(time.Hour, rec.onTick, rec.onDone)

	require.NoError(t, rt.Start(90*time.Second))
	rt.Stop()
	rt.Stop()

	status := rt.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 90*time.Second, status.Remaining)

	_, done := rec.snapshot()
	assert.Equal(t, 0, done)
}

func TestRestTimer_InvalidDuration(t *testing.T) {
	rt := timer.New(nil, nil)
	assert.ErrorIs(t, rt.Start(0), timer.ErrInvalidDuration)
	assert.ErrorIs(t, rt.Start(-time.Second), timer.ErrInvalidDuration)
	assert.False(t, rt.Running())
}

func TestPresets(t *testing.T) {
	assert.Contains(t, timer.Presets, timer.DefaultDuration)
	assert.Len(t, timer.Presets, 5)
}
