package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// OutboxScheduler runs the outbox drain on a cron schedule. Overlapping runs
// are skipped and a panicking run does not stop the scheduler.
type OutboxScheduler struct {
	cron     *cron.Cron
	schedule string
	job      func()
}

func NewOutboxScheduler(schedule string, job func()) *OutboxScheduler {
	logger := cron.PrintfLogger(log.Default())
	c := cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))
	return &OutboxScheduler{cron: c, schedule: schedule, job: job}
}

func (s *OutboxScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.job); err != nil {
		log.Printf("[outbox][scheduler] invalid schedule %q err=%v", s.schedule, err)
		return err
	}
	s.cron.Start()
	log.Printf("[outbox][scheduler] started schedule=%q", s.schedule)
	return nil
}

// Stop halts the scheduler; the returned context is done once running jobs finish.
func (s *OutboxScheduler) Stop() context.Context {
	return s.cron.Stop()
}
