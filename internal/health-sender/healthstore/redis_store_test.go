package healthstore

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisTests(t *testing.T) (*miniredis.Miniredis, *redis.Client, HealthStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })
	return mr, client, NewRedisHealthStore(client, time.Second)
}

func seedRedisSample(t *testing.T, client *redis.Client, kind model.SampleKind, value float64, unit model.Unit, at time.Time) {
	b, err := json.Marshal(redisSample{Value: value, Unit: string(unit), StartDate: at, EndDate: at})
	require.NoError(t, err)
	err = client.ZAdd(context.Background(), "health:samples:"+string(kind), redis.Z{
		Score:  float64(at.UnixMilli()),
		Member: string(b),
	}).Err()
	require.NoError(t, err)
}

func TestRedisHealthStore_RequestAuthorization(t *testing.T) {
	testCases := []struct {
		name     string
		grants   map[string]string
		input    []model.SampleKind
		expected bool
	}{
		{
			name: "All kinds granted",
			grants: map[string]string{
				"heart_rate":               "granted",
				"blood_pressure_systolic":  "granted",
				"blood_pressure_diastolic": "granted",
				"body_temperature":         "granted",
				"blood_alcohol_content":    "granted",
			},
			input:    model.AllSampleKinds(),
			expected: true,
		},
		{
			name: "One kind denied",
			grants: map[string]string{
				"heart_rate":               "granted",
				"blood_pressure_systolic":  "granted",
				"blood_pressure_diastolic": "granted",
				"body_temperature":         "denied",
				"blood_alcohol_content":    "granted",
			},
			input:    model.AllSampleKinds(),
			expected: false,
		},
		{
			name:     "No consent recorded",
			input:    model.AllSampleKinds(),
			expected: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, client, store := setupRedisTests(t)
			for field, value := range tc.grants {
				require.NoError(t, client.HSet(context.Background(), "health:authorizations", field, value).Err())
			}

			granted, err := store.RequestAuthorization(context.Background(), tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, granted)
		})
	}
}

func TestRedisHealthStore_RequestAuthorizationErrors(t *testing.T) {
	mr, _, store := setupRedisTests(t)

	_, err := store.RequestAuthorization(context.Background(), []model.SampleKind{"steps"})
	assert.Error(t, err)

	mr.Close()
	_, err = store.RequestAuthorization(context.Background(), model.AllSampleKinds())
	assert.Error(t, err)
}

func TestRedisHealthStore_QuerySamples(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	_, client, store := setupRedisTests(t)
	seedRedisSample(t, client, model.SampleKindHeartRate, 64, model.UnitCountPerMinute, now.Add(-2*time.Hour))
	seedRedisSample(t, client, model.SampleKindHeartRate, 1.2, model.UnitCountPerSecond, now.Add(-time.Hour))
	seedRedisSample(t, client, model.SampleKindHeartRate, 90, model.UnitCountPerMinute, now)
	seedRedisSample(t, client, model.SampleKindBodyTemperature, 36.6, model.UnitDegreeCelsius, now.Add(-time.Hour))

	testCases := []struct {
		name           string
		input          model.SampleQuery
		expectedValues []float64
	}{
		{
			name:           "Latest sample excludes the range end",
			input:          model.SampleQuery{Kind: model.SampleKindHeartRate, Start: model.DistantPast, End: now, Limit: 1},
			expectedValues: []float64{1.2},
		},
		{
			name:           "All samples oldest first",
			input:          model.SampleQuery{Kind: model.SampleKindHeartRate, Start: model.DistantPast, End: now.Add(time.Second), Order: model.SortAscending},
			expectedValues: []float64{64, 1.2, 90},
		},
		{
			name:           "Range start is inclusive",
			input:          model.SampleQuery{Kind: model.SampleKindHeartRate, Start: now.Add(-time.Hour), End: now.Add(time.Second)},
			expectedValues: []float64{90, 1.2},
		},
		{
			name:           "Kind without samples",
			input:          model.SampleQuery{Kind: model.SampleKindBloodAlcoholContent, Start: model.DistantPast, End: now, Limit: 1},
			expectedValues: []float64{},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			samples, err := store.QuerySamples(context.Background(), tc.input)
			require.NoError(t, err)
			values := make([]float64, 0, len(samples))
			for _, s := range samples {
				assert.Equal(t, tc.input.Kind, s.Kind)
				values = append(values, s.Quantity.Value)
			}
			assert.Equal(t, tc.expectedValues, values)
		})
	}

	latest, err := store.QuerySamples(context.Background(), model.SampleQuery{Kind: model.SampleKindHeartRate, Start: model.DistantPast, End: now, Limit: 1})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, model.UnitCountPerSecond, latest[0].Quantity.Unit)
	assert.True(t, now.Add(-time.Hour).Equal(latest[0].StartDate))
}

func TestRedisHealthStore_QuerySamplesMalformedMember(t *testing.T) {
	_, client, store := setupRedisTests(t)
	require.NoError(t, client.ZAdd(context.Background(), "health:samples:heart_rate", redis.Z{Score: 1, Member: "not json"}).Err())

	_, err := store.QuerySamples(context.Background(), model.SampleQuery{Kind: model.SampleKindHeartRate, Start: model.DistantPast, End: time.Now(), Limit: 1})
	assert.Error(t, err)
}

func TestRedisHealthStore_IsHealthDataAvailable(t *testing.T) {
	mr, _, store := setupRedisTests(t)
	assert.True(t, store.IsHealthDataAvailable())

	mr.Close()
	assert.False(t, store.IsHealthDataAvailable())
}
