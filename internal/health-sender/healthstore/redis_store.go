package healthstore

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisAuthorizationKey = "health:authorizations"
	redisGranted          = "granted"
)

// redisSample is one sorted set member. The score is the start date in unix milliseconds.
type redisSample struct {
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type redisHealthStore struct {
	redis       *redis.Client
	pingTimeout time.Duration
}

func (*redisHealthStore) getSamplesKey(kind model.SampleKind) string {
	return fmt.Sprintf("health:samples:%s", kind)
}

func (r *redisHealthStore) IsHealthDataAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), r.pingTimeout)
	defer cancel()
	return r.redis.Ping(ctx).Err() == nil
}

func (r *redisHealthStore) RequestAuthorization(ctx context.Context, kinds []model.SampleKind) (bool, error) {
	if err := validateKinds(kinds); err != nil {
		return false, fmt.Errorf("redisHealthStore.RequestAuthorization: %w", err)
	}
	fields := make([]string, len(kinds))
	for i, k := range kinds {
		fields[i] = string(k)
	}
	res, err := r.redis.HMGet(ctx, redisAuthorizationKey, fields...).Result()
	if err != nil {
		return false, fmt.Errorf("redisHealthStore.RequestAuthorization: %w", err)
	}
	for _, v := range res {
		if s, ok := v.(string); !ok || s != redisGranted {
			return false, nil
		}
	}
	return true, nil
}

func (r *redisHealthStore) QuerySamples(ctx context.Context, query model.SampleQuery) ([]model.Sample, error) {
	key := r.getSamplesKey(query.Kind)
	opt := &redis.ZRangeBy{
		Min: strconv.FormatInt(query.Start.UnixMilli(), 10),
		Max: "(" + strconv.FormatInt(query.End.UnixMilli(), 10),
	}
	if query.Limit > 0 {
		opt.Count = int64(query.Limit)
	}
	var members []string
	var err error
	if query.Order == model.SortAscending {
		members, err = r.redis.ZRangeByScore(ctx, key, opt).Result()
	} else {
		members, err = r.redis.ZRevRangeByScore(ctx, key, opt).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("redisHealthStore.QuerySamples: %w", err)
	}
	samples := make([]model.Sample, 0, len(members))
	for _, m := range members {
		var s redisSample
		if e := json.Unmarshal([]byte(m), &s); e != nil {
			return nil, fmt.Errorf("redisHealthStore.QuerySamples: %w", e)
		}
		samples = append(samples, model.Sample{
			Kind:      query.Kind,
			Quantity:  model.Quantity{Value: s.Value, Unit: model.Unit(s.Unit)},
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
		})
	}
	return samples, nil
}

func NewRedisHealthStore(redis *redis.Client, pingTimeout time.Duration) HealthStore {
	if pingTimeout <= 0 {
		pingTimeout = 2 * time.Second
	}
	return &redisHealthStore{
		redis:       redis,
		pingTimeout: pingTimeout,
	}
}
