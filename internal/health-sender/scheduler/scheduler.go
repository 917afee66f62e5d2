package scheduler

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"PreTrip_Health_Sender/internal/health-sender/pipeline"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultSchedule = "@hourly"

type SyncScheduler interface {
	Start() error
	// Stop prevents new runs and waits for a running one to finish.
	Stop()
}

type syncScheduler struct {
	cron       *cron.Cron
	schedule   string
	runOnStart bool
	runTimeout time.Duration
	pipeline   pipeline.SyncPipeline
	logger     *zap.Logger
}

func (s *syncScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.onTick); err != nil {
		return fmt.Errorf("SyncScheduler.Start: %w", err)
	}
	s.cron.Start()
	s.logger.Info("sync scheduler started", zap.String("schedule", s.schedule))
	if s.runOnStart {
		// cron owns the goroutine so Stop waits for it
		s.cron.Schedule(&onceSchedule{}, cron.FuncJob(s.onTick))
	}
	return nil
}

func (s *syncScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("sync scheduler stopped")
}

func (s *syncScheduler) onTick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()
	s.pipeline.Run(ctx, pipeline.RunOptions{Trigger: model.SyncTriggerSchedule})
}

// onceSchedule fires immediately, then never again.
type onceSchedule struct {
	fired bool
}

func (o *onceSchedule) Next(t time.Time) time.Time {
	if o.fired {
		return time.Time{}
	}
	o.fired = true
	return t
}

func NewSyncScheduler(schedule string, runOnStart bool, runTimeout time.Duration, p pipeline.SyncPipeline, logger *zap.Logger) SyncScheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &syncScheduler{
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		schedule:   schedule,
		runOnStart: runOnStart,
		runTimeout: runTimeout,
		pipeline:   p,
		logger:     logger,
	}
}
