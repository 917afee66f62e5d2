package healthstore

import (
	apperrors "PreTrip_Health_Sender/internal/health-sender/errors"
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heartRate(value float64, at time.Time) model.Sample {
	return model.Sample{
		Kind:      model.SampleKindHeartRate,
		Quantity:  model.Quantity{Value: value, Unit: model.UnitCountPerMinute},
		StartDate: at,
		EndDate:   at,
	}
}

func TestMemoryHealthStore_QuerySamples(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryHealthStore(3, model.AllSampleKinds())
	require.NoError(t, store.Add(
		heartRate(60, now.Add(-4*time.Hour)),
		heartRate(62, now.Add(-time.Hour)),
		heartRate(64, now.Add(-3*time.Hour)),
		heartRate(66, now.Add(-2*time.Hour)),
	))

	latest, err := store.QuerySamples(context.Background(), model.SampleQuery{Kind: model.SampleKindHeartRate, Start: model.DistantPast, End: now, Limit: 1})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, 62.0, latest[0].Quantity.Value)

	all, err := store.QuerySamples(context.Background(), model.SampleQuery{Kind: model.SampleKindHeartRate, Start: model.DistantPast, End: now, Order: model.SortAscending})
	require.NoError(t, err)
	var values []float64
	for _, s := range all {
		values = append(values, s.Quantity.Value)
	}
	// capacity 3 evicts the first sample added
	assert.Equal(t, []float64{64, 66, 62}, values)
}

func TestMemoryHealthStore_Add(t *testing.T) {
	store := NewMemoryHealthStore(0, nil)
	err := store.Add(model.Sample{Kind: "steps"})
	assert.Error(t, err)
}

func TestMemoryHealthStore_RequestAuthorization(t *testing.T) {
	store := NewMemoryHealthStore(0, []model.SampleKind{model.SampleKindHeartRate, model.SampleKindBodyTemperature})

	granted, err := store.RequestAuthorization(context.Background(), []model.SampleKind{model.SampleKindHeartRate})
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = store.RequestAuthorization(context.Background(), model.AllSampleKinds())
	require.NoError(t, err)
	assert.False(t, granted)

	_, err = store.RequestAuthorization(context.Background(), []model.SampleKind{"HKQuantityTypeIdentifierHeartRate"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownSampleKind)

	_, err = store.RequestAuthorization(context.Background(), nil)
	assert.Error(t, err)
}

func TestMemoryHealthStore_Availability(t *testing.T) {
	store := NewMemoryHealthStore(0, nil)
	assert.True(t, store.IsHealthDataAvailable())
	store.SetAvailable(false)
	assert.False(t, store.IsHealthDataAvailable())
}

func TestMemoryHealthStore_CancelledContext(t *testing.T) {
	store := NewMemoryHealthStore(0, model.AllSampleKinds())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.QuerySamples(ctx, model.SampleQuery{Kind: model.SampleKindHeartRate, End: time.Now()})
	assert.ErrorIs(t, err, context.Canceled)
}
