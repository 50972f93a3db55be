package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"atrova/internal/reminder"
	"atrova/pkg/log"
)

// Scheduler runs reminder.UseCase.Notify on a fixed interval.
type Scheduler struct {
	l     log.Logger
	uc    reminder.UseCase
	cron  *cron.Cron
	clock func() time.Time
}

// New registers the notify job. The interval is truncated to whole seconds.
func New(l log.Logger, uc reminder.UseCase, interval time.Duration, loc *time.Location) (*Scheduler, error) {
	if interval < time.Second {
		return nil, reminder.ErrInvalidInterval
	}
	if loc == nil {
		loc = time.Local
	}

	s := &Scheduler{
		l:     l,
		uc:    uc,
		cron:  cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		clock: time.Now,
	}
	spec := fmt.Sprintf("@every %ds", int(interval/time.Second))
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("schedule reminders: %w", err)
	}
	return s, nil
}

func (s *Scheduler) tick() {
	ctx := context.Background()
	if _, err := s.uc.Notify(ctx, s.clock()); err != nil {
		s.l.Errorf(ctx, "reminder.scheduler.tick: %v", err)
	}
}

// Run starts the scheduler and blocks until ctx is done, then waits for a running job to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	s.l.Infof(ctx, "reminder scheduler started")
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.l.Infof(context.Background(), "reminder scheduler stopped")
}
