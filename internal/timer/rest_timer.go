// Package timer implements the countdown shown between sets.
package timer

import (
	"errors"
	"sync"
	"time"
)

const DefaultDuration = 60 * time.Second

// Presets are the durations offered by the rest timer picker.
var Presets = []time.Duration{
	30 * time.Second,
	45 * time.Second,
	60 * time.Second,
	90 * time.Second,
	120 * time.Second,
}

var ErrInvalidDuration = errors.New("rest duration must be positive")

// Status is a snapshot of the timer.
type Status struct {
	Running   bool          `json:"running"`
	Duration  time.Duration `json:"duration"`
	Remaining time.Duration `json:"remaining"`
}

// RestTimer counts down once per tick. At most one countdown runs at a time.
// Callbacks run on the countdown goroutine and must not call Start or Stop.
type RestTimer struct {
	tick   time.Duration
	onTick func(remaining time.Duration)
	onDone func()

	mu        sync.Mutex
	duration  time.Duration
	remaining time.Duration
	stop      chan struct{}
	exited    chan struct{}
}

// New creates a timer ticking every second. Nil callbacks are ignored.
func New(onTick func(remaining time.Duration), onDone func()) *RestTimer {
	return NewWithTick(time.Second, onTick, onDone)
}

func NewWithTick(tick time.Duration, onTick func(remaining time.Duration), onDone func()) *RestTimer {
	if tick <= 0 {
		tick = time.Second
	}
	if onTick == nil {
		onTick = func(time.Duration) {}
	}
	if onDone == nil {
		onDone = func() {}
	}
	return &RestTimer{
		tick:   tick,
		onTick: onTick,
		onDone: onDone,
	}
}

// Start begins a countdown of d, replacing any countdown in progress.
func (t *RestTimer) Start(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidDuration
	}
	t.Stop()

	stop := make(chan struct{})
	exited := make(chan struct{})

	t.mu.Lock()
	t.duration = d
	t.remaining = d
	t.stop = stop
	t.exited = exited
	t.mu.Unlock()

	go t.run(stop, exited)
	return nil
}

func (t *RestTimer) run(stop, exited chan struct{}) {
	defer close(exited)

	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		t.mu.Lock()
		if t.stop != stop {
			t.mu.Unlock()
			return
		}
		t.remaining -= t.tick
		if t.remaining < 0 {
			t.remaining = 0
		}
		remaining := t.remaining
		if remaining == 0 {
			t.stop = nil
		}
		t.mu.Unlock()

		t.onTick(remaining)
		if remaining == 0 {
			t.onDone()
			return
		}
	}
}

// Stop cancels the running countdown and waits for it to exit. The remaining
// time is kept for Status.
func (t *RestTimer) Stop() {
	t.mu.Lock()
	stop, exited := t.stop, t.exited
	t.stop = nil
	t.mu.Unlock()

	if stop != nil {
		close(stop)
	}
	if exited != nil {
		<-exited
	}
}

func (t *RestTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *RestTimer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *RestTimer) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Status{
		Running:   t.stop != nil,
		Duration:  t.duration,
		Remaining: t.remaining,
	}
}
