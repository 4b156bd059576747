package coach

import (
	"context"
	"sync"

	"github.com/Click-facil/fitclick/internal/domain"
)

// TipSource produces a tip for a history snapshot. *Coach satisfies it.
type TipSource interface {
	Tip(ctx context.Context, workouts []domain.Workout, exercises []domain.Exercise) string
}

// TipBoard holds the latest coach tip. Requests run in the background and
// only the most recently issued one may overwrite the slot, so a slow stale
// answer never replaces a newer one.
type TipBoard struct {
	source TipSource

	mu      sync.RWMutex
	tip     string
	issued  uint64
	applied uint64

	wg sync.WaitGroup
}

func NewTipBoard(source TipSource) *TipBoard {
	return &TipBoard{
		source: source,
		tip:    AnalyzingTip,
	}
}

// Request asks for a fresh tip without blocking and returns its sequence number.
// The slices are copied, callers may keep mutating theirs.
func (b *TipBoard) Request(ctx context.Context, workouts []domain.Workout, exercises []domain.Exercise) uint64 {
	workouts = append([]domain.Workout(nil), workouts...)
	exercises = append([]domain.Exercise(nil), exercises...)

	b.mu.Lock()
	b.issued++
	seq := b.issued
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		tip := b.source.Tip(context.WithoutCancel(ctx), workouts, exercises)
		b.apply(seq, tip)
	}()
	return seq
}

func (b *TipBoard) apply(seq uint64, tip string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq <= b.applied {
		return
	}
	b.applied = seq
	b.tip = tip
}

// Current returns the displayed tip and whether a newer request is still running.
func (b *TipBoard) Current() (tip string, pending bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tip, b.applied < b.issued
}

// Wait blocks until every issued request has finished.
func (b *TipBoard) Wait() {
	b.wg.Wait()
}
