package collector

import (
	"PreTrip_Health_Sender/internal/health-sender/device"
	apperrors "PreTrip_Health_Sender/internal/health-sender/errors"
	"PreTrip_Health_Sender/internal/health-sender/healthstore"
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const DefaultQueryTimeout = 10 * time.Second

type SampleCollector interface {
	// IsAvailable reports whether the health-data subsystem is present.
	IsAvailable() bool
	// RequestAuthorization asks for read access to every sample kind at once. A denial is
	// (false, nil); a failure to ask is an *apperrors.AuthorizationError.
	RequestAuthorization(ctx context.Context) (bool, error)
	// Collect reads the samples of every kind concurrently and assembles a record. Per-kind
	// failures become zero values; the only error is apperrors.ErrNotAuthorized.
	Collect(ctx context.Context) (model.HealthRecord, error)
}

type sampleCollector struct {
	store        healthstore.HealthStore
	deviceID     device.IdentifierProvider
	mode         model.SampleMode
	queryTimeout time.Duration
	logger       *zap.Logger
	now          func() time.Time
	authorized   atomic.Bool
}

type queryResult struct {
	samples []model.Sample
	err     error
}

func (c *sampleCollector) IsAvailable() bool {
	return c.store.IsHealthDataAvailable()
}

func (c *sampleCollector) RequestAuthorization(ctx context.Context) (bool, error) {
	if !c.store.IsHealthDataAvailable() {
		return false, apperrors.NewAuthorizationError(apperrors.ErrHealthDataUnavailable)
	}
	granted, err := c.store.RequestAuthorization(ctx, model.AllSampleKinds())
	if err != nil {
		return false, apperrors.NewAuthorizationError(fmt.Errorf("SampleCollector.RequestAuthorization: %w", err))
	}
	if granted {
		c.authorized.Store(true)
	}
	return granted, nil
}

func (c *sampleCollector) Collect(ctx context.Context) (model.HealthRecord, error) {
	if !c.authorized.Load() {
		return model.HealthRecord{}, fmt.Errorf("SampleCollector.Collect: %w", apperrors.ErrNotAuthorized)
	}
	kinds := model.AllSampleKinds()
	end := c.now()
	results := make([]model.Measurement, len(kinds))
	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind model.SampleKind) {
			defer wg.Done()
			results[i] = c.collectKind(ctx, kind, end)
		}(i, kind)
	}
	wg.Wait()

	values := make(map[model.SampleKind]model.Measurement, len(kinds))
	for i, kind := range kinds {
		values[kind] = results[i]
	}
	return model.NewHealthRecord(c.mode, values, c.deviceID.DeviceID()), nil
}

// collectKind never fails: anything that prevents a value falls back to the empty measurement.
func (c *sampleCollector) collectKind(ctx context.Context, kind model.SampleKind, end time.Time) model.Measurement {
	empty := model.EmptyMeasurement(c.mode)
	query := model.SampleQuery{
		Kind:  kind,
		Start: model.DistantPast,
		End:   end,
	}
	if c.mode == model.SampleModeSeries {
		query.Order = model.SortAscending
	} else {
		query.Limit = 1
		query.Order = model.SortDescending
	}

	samples, err := c.query(ctx, query)
	if err != nil {
		c.logger.Warn("health sample query failed", zap.String("kind", kind.String()), zap.Error(err))
		return empty
	}

	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		v, e := s.Quantity.ValueIn(kind.Unit())
		if e != nil {
			c.logger.Warn("skipping health sample", zap.String("kind", kind.String()), zap.Error(e))
			continue
		}
		if kind.Integral() {
			v = math.Trunc(v)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		c.logger.Debug("no health sample", zap.String("kind", kind.String()), zap.Error(apperrors.ErrSampleUnavailable))
		return empty
	}
	if c.mode == model.SampleModeSeries {
		return model.Series(values...)
	}
	return model.Scalar(values[0])
}

// query resolves exactly once: with the store's answer, or with the timeout if the store does not
// answer in time.
func (c *sampleCollector) query(ctx context.Context, query model.SampleQuery) ([]model.Sample, error) {
	queryCtx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	ch := make(chan queryResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- queryResult{err: fmt.Errorf("SampleCollector.query: store panicked: %v", r)}
			}
		}()
		samples, err := c.store.QuerySamples(queryCtx, query)
		ch <- queryResult{samples: samples, err: err}
	}()

	select {
	case res := <-ch:
		return res.samples, res.err
	case <-queryCtx.Done():
		return nil, fmt.Errorf("SampleCollector.query: %w", queryCtx.Err())
	}
}

func NewSampleCollector(store healthstore.HealthStore, deviceID device.IdentifierProvider, mode model.SampleMode, queryTimeout time.Duration, logger *zap.Logger) SampleCollector {
	if mode == "" {
		mode = model.SampleModeLatest
	}
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &sampleCollector{
		store:        store,
		deviceID:     deviceID,
		mode:         mode,
		queryTimeout: queryTimeout,
		logger:       logger,
		now:          time.Now,
	}
}
