package healthstore

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// seedSample is one entry of a memory store seed file.
type seedSample struct {
	Kind      string     `json:"kind"`
	Value     float64    `json:"value"`
	Unit      string     `json:"unit"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// LoadSeedFile adds the samples of a JSON array file to the store and returns how many were
// added. Nothing is added when any entry is invalid.
func (s *MemoryHealthStore) LoadSeedFile(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("MemoryHealthStore.LoadSeedFile: %w", err)
	}
	var entries []seedSample
	if err = json.Unmarshal(b, &entries); err != nil {
		return 0, fmt.Errorf("MemoryHealthStore.LoadSeedFile %s: %w", path, err)
	}

	samples := make([]model.Sample, 0, len(entries))
	for i, e := range entries {
		kind, err := model.ParseSampleKind(e.Kind)
		if err != nil {
			return 0, fmt.Errorf("MemoryHealthStore.LoadSeedFile %s entry %d: %w", path, i, err)
		}
		unit, err := model.ParseUnit(e.Unit)
		if err != nil {
			return 0, fmt.Errorf("MemoryHealthStore.LoadSeedFile %s entry %d: %w", path, i, err)
		}
		if e.StartDate.IsZero() {
			return 0, fmt.Errorf("MemoryHealthStore.LoadSeedFile %s entry %d: start_date is required", path, i)
		}
		end := e.StartDate
		if e.EndDate != nil {
			end = *e.EndDate
		}
		samples = append(samples, model.Sample{
			Kind:      kind,
			Quantity:  model.Quantity{Value: e.Value, Unit: unit},
			StartDate: e.StartDate,
			EndDate:   end,
		})
	}
	if err = s.Add(samples...); err != nil {
		return 0, fmt.Errorf("MemoryHealthStore.LoadSeedFile: %w", err)
	}
	return len(samples), nil
}
