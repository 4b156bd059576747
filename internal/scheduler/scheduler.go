// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Job is a unit of scheduled work. Its error is logged, never retried.
type Job func(ctx context.Context) error

// Scheduler wraps cron-based jobs.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

// New creates a scheduler that bounds every job run by timeout.
func New(loc *time.Location, timeout time.Duration) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		timeout: timeout,
	}
}

// Schedule registers job under a standard 5-field cron spec or a descriptor
// such as "@daily" or "@every 1h".
func (s *Scheduler) Schedule(name, spec string, job Job) (cron.EntryID, error) {
	return s.cron.AddFunc(spec, func() {
		ctx := context.Background()
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		started := time.Now()
		if err := job(ctx); err != nil {
			log.Errorf("scheduled job %s failed: %s", name, err)
			return
		}
		log.Debugf("scheduled job %s done in %s", name, time.Since(started))
	})
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
