package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers the daily briefing push on a cron spec.
type Scheduler struct {
	cron      *cron.Cron
	spec      string
	ctx       context.Context
	cancel    context.CancelFunc
	briefFunc func(ctx context.Context) error
}

func New(spec string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		spec:   spec,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetBriefingFunction sets the callback invoked on each tick.
func (s *Scheduler) SetBriefingFunction(f func(ctx context.Context) error) {
	s.briefFunc = f
}

func (s *Scheduler) Start() error {
	if s.briefFunc == nil {
		log.Println("briefing function not set, scheduler will not push briefings")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		log.Printf("triggered scheduled briefing push (%s)", s.spec)
		if err := s.briefFunc(s.ctx); err != nil {
			log.Printf("scheduled briefing push failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule briefing push: %w", err)
	}

	s.cron.Start()
	log.Printf("scheduler started, briefings will be pushed on spec %q (UTC)", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
