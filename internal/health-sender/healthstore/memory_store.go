package healthstore

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

const DefaultMemoryCapacity = 1024

// MemoryHealthStore keeps the most recent samples of each kind in memory, dropping the oldest
// once a kind holds capacity samples.
type MemoryHealthStore struct {
	mu        sync.RWMutex
	samples   map[model.SampleKind][]model.Sample
	capacity  int
	granted   map[model.SampleKind]bool
	available atomic.Bool
}

func (s *MemoryHealthStore) IsHealthDataAvailable() bool {
	return s.available.Load()
}

func (s *MemoryHealthStore) SetAvailable(available bool) {
	s.available.Store(available)
}

func (s *MemoryHealthStore) RequestAuthorization(ctx context.Context, kinds []model.SampleKind) (bool, error) {
	if err := validateKinds(kinds); err != nil {
		return false, fmt.Errorf("MemoryHealthStore.RequestAuthorization: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("MemoryHealthStore.RequestAuthorization: %w", err)
	}
	for _, k := range kinds {
		if !s.granted[k] {
			return false, nil
		}
	}
	return true, nil
}

func (s *MemoryHealthStore) QuerySamples(ctx context.Context, query model.SampleQuery) ([]model.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("MemoryHealthStore.QuerySamples: %w", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selectSamples(s.samples[query.Kind], query), nil
}

// Add buffers samples. Samples of unknown kinds are rejected.
func (s *MemoryHealthStore) Add(samples ...model.Sample) error {
	for _, sample := range samples {
		if !sample.Kind.Valid() {
			return fmt.Errorf("MemoryHealthStore.Add %q: invalid sample kind", sample.Kind)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sample := range samples {
		buf := append(s.samples[sample.Kind], sample)
		if len(buf) > s.capacity {
			buf = buf[len(buf)-s.capacity:]
		}
		s.samples[sample.Kind] = buf
	}
	return nil
}

// NewMemoryHealthStore returns an available store that grants read access to grantedKinds.
func NewMemoryHealthStore(capacity int, grantedKinds []model.SampleKind) *MemoryHealthStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	granted := make(map[model.SampleKind]bool, len(grantedKinds))
	for _, k := range grantedKinds {
		granted[k] = true
	}
	s := &MemoryHealthStore{
		samples:  make(map[model.SampleKind][]model.Sample),
		capacity: capacity,
		granted:  granted,
	}
	s.available.Store(true)
	return s
}
