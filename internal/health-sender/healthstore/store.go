package healthstore

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"fmt"
	"sort"
)

// HealthStore is the platform health-data subsystem the collector reads from.
type HealthStore interface {
	// IsHealthDataAvailable reports whether the subsystem is present. It has no side effects.
	IsHealthDataAvailable() bool
	// RequestAuthorization asks for read access to kinds in a single request. A denial is
	// (false, nil); an error means the request itself could not be made.
	RequestAuthorization(ctx context.Context, kinds []model.SampleKind) (bool, error)
	// QuerySamples returns the samples matching query in query order. Quantities keep the unit
	// they were stored with.
	QuerySamples(ctx context.Context, query model.SampleQuery) ([]model.Sample, error)
}

func validateKinds(kinds []model.SampleKind) error {
	if len(kinds) == 0 {
		return fmt.Errorf("validateKinds: no sample kinds requested")
	}
	for _, k := range kinds {
		if _, err := model.ParseSampleKind(string(k)); err != nil {
			return fmt.Errorf("validateKinds: %w", err)
		}
	}
	return nil
}

// selectSamples applies query's range, order and limit to samples.
func selectSamples(samples []model.Sample, query model.SampleQuery) []model.Sample {
	var matched []model.Sample
	for _, s := range samples {
		if query.Matches(s) {
			matched = append(matched, s)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if query.Order == model.SortAscending {
			return matched[i].StartDate.Before(matched[j].StartDate)
		}
		return matched[i].StartDate.After(matched[j].StartDate)
	})
	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched
}
