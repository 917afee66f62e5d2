package pipeline

import (
	"PreTrip_Health_Sender/internal/health-sender/collector"
	"PreTrip_Health_Sender/internal/health-sender/device"
	"PreTrip_Health_Sender/internal/health-sender/model"
	"PreTrip_Health_Sender/internal/health-sender/transmitter"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reportTimeout = 10 * time.Second

type RunOptions struct {
	Trigger string
	// DryRun stops after collection; nothing is sent.
	DryRun bool
}

type SyncPipeline interface {
	// Run performs availability check, authorization, collection and transmission in that order,
	// stopping at the first step that does not succeed. ctx only bounds the wait for a previous
	// run to finish; once started, collection and transmission are not cancelled by the caller.
	Run(ctx context.Context, opts RunOptions) model.SyncOutcome
	// LastOutcome returns the outcome of the most recent finished run.
	LastOutcome() (model.SyncOutcome, bool)
	IsAvailable() bool
}

type syncPipeline struct {
	collector   collector.SampleCollector
	transmitter transmitter.TransmissionClient
	reporter    OutcomeReporter
	deviceID    device.IdentifierProvider
	logger      *zap.Logger
	now         func() time.Time
	newRunID    func() string

	// runSem holds one token per running run
	runSem chan struct{}
	mu     sync.RWMutex
	last   *model.SyncOutcome
}

func (p *syncPipeline) IsAvailable() bool {
	return p.collector.IsAvailable()
}

func (p *syncPipeline) Run(ctx context.Context, opts RunOptions) model.SyncOutcome {
	outcome := model.SyncOutcome{
		RunID:     p.newRunID(),
		Trigger:   opts.Trigger,
		StartedAt: p.now(),
	}
	if err := p.acquire(ctx); err != nil {
		outcome.Status = model.SyncStatusBusy
		outcome.Message = fmt.Sprintf("another sync run is still in progress: %v", err)
		outcome.FinishedAt = p.now()
		p.log(outcome)
		return outcome
	}
	defer p.release()

	outcome.DeviceID = p.deviceID.DeviceID()
	p.execute(context.WithoutCancel(ctx), opts, &outcome)
	outcome.FinishedAt = p.now()

	p.mu.Lock()
	p.last = &outcome
	p.mu.Unlock()

	p.log(outcome)
	p.report(ctx, outcome)
	return outcome
}

// acquire takes the run token, preferring a free token over an already expired ctx.
func (p *syncPipeline) acquire(ctx context.Context) error {
	select {
	case p.runSem <- struct{}{}:
		return nil
	default:
	}
	select {
	case p.runSem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *syncPipeline) release() {
	<-p.runSem
}

func (p *syncPipeline) execute(ctx context.Context, opts RunOptions, outcome *model.SyncOutcome) {
	if !p.collector.IsAvailable() {
		outcome.Status = model.SyncStatusNotAvailable
		outcome.Message = "health data is not available on this device"
		return
	}

	granted, err := p.collector.RequestAuthorization(ctx)
	if err != nil {
		outcome.Status = model.SyncStatusAuthorizationError
		outcome.Message = err.Error()
		return
	}
	if !granted {
		outcome.Status = model.SyncStatusAuthorizationDenied
		outcome.Message = "health data access was denied"
		return
	}

	record, err := p.collector.Collect(ctx)
	if err != nil {
		outcome.Status = model.SyncStatusCollectionError
		outcome.Message = err.Error()
		return
	}
	outcome.Record = &record

	if opts.DryRun {
		outcome.Status = model.SyncStatusCollected
		outcome.Message = "health record collected, not sent (dry run)"
		return
	}

	result := p.transmitter.Send(ctx, record)
	outcome.StatusCode = result.StatusCode
	switch {
	case result.IsTransportFailure():
		outcome.Status = model.SyncStatusTransportFailure
		outcome.Message = result.Message()
	case result.IsSuccess():
		outcome.Status = model.SyncStatusSent
		outcome.Message = fmt.Sprintf("health record sent: %s", result.Message())
	default:
		outcome.Status = model.SyncStatusServerError
		outcome.Message = fmt.Sprintf("server rejected health record: %s", result.Message())
	}
}

func (p *syncPipeline) log(outcome model.SyncOutcome) {
	fields := []zap.Field{
		zap.String("run_id", outcome.RunID),
		zap.String("trigger", outcome.Trigger),
		zap.String("status", outcome.Status),
		zap.Int("status_code", outcome.StatusCode),
		zap.Duration("duration", outcome.FinishedAt.Sub(outcome.StartedAt)),
	}
	if outcome.Succeeded() {
		p.logger.Info(outcome.Message, fields...)
	} else {
		p.logger.Warn(outcome.Message, fields...)
	}
}

func (p *syncPipeline) report(ctx context.Context, outcome model.SyncOutcome) {
	if p.reporter == nil {
		return
	}
	reportCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
	defer cancel()
	if err := p.reporter.Report(reportCtx, outcome); err != nil {
		p.logger.Error("failed to report sync outcome", zap.String("run_id", outcome.RunID), zap.Error(err))
	}
}

func (p *syncPipeline) LastOutcome() (model.SyncOutcome, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.last == nil {
		return model.SyncOutcome{}, false
	}
	return *p.last, true
}

// NewSyncPipeline wires a pipeline. reporter may be nil.
func NewSyncPipeline(sampleCollector collector.SampleCollector, client transmitter.TransmissionClient, reporter OutcomeReporter, deviceID device.IdentifierProvider, logger *zap.Logger) SyncPipeline {
	return &syncPipeline{
		collector:   sampleCollector,
		transmitter: client,
		reporter:    reporter,
		deviceID:    deviceID,
		logger:      logger,
		now:         time.Now,
		newRunID:    uuid.NewString,
		runSem:      make(chan struct{}, 1),
	}
}
