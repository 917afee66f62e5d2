package model

import "time"

// DistantPast is the lower bound of the unbounded "most recent sample" range.
var DistantPast = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

type SortOrder int

const (
	SortDescending SortOrder = iota
	SortAscending
)

type Sample struct {
	Kind      SampleKind
	Quantity  Quantity
	StartDate time.Time
	EndDate   time.Time
}

// SampleQuery selects samples of one kind whose start date lies in [Start, End).
// A zero Limit means no limit.
type SampleQuery struct {
	Kind  SampleKind
	Start time.Time
	End   time.Time
	Limit int
	Order SortOrder
}

// Matches reports whether s belongs to the query's kind and time range.
func (q SampleQuery) Matches(s Sample) bool {
	if s.Kind != q.Kind {
		return false
	}
	return !s.StartDate.Before(q.Start) && s.StartDate.Before(q.End)
}
