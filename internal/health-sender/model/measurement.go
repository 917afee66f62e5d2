package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type SampleMode string

const (
	// SampleModeLatest keeps only the most recent sample of each kind.
	SampleModeLatest SampleMode = "latest"
	// SampleModeSeries keeps every sample of each kind, oldest first.
	SampleModeSeries SampleMode = "series"
)

func ParseSampleMode(s string) (SampleMode, error) {
	switch SampleMode(s) {
	case SampleModeLatest, SampleModeSeries:
		return SampleMode(s), nil
	default:
		return "", fmt.Errorf("ParseSampleMode: unknown sample mode %q", s)
	}
}

// Measurement is a record field. It is a scalar or an ordered series; the zero value is the
// scalar 0.
type Measurement struct {
	values []float64
	series bool
}

func Scalar(v float64) Measurement {
	return Measurement{values: []float64{v}}
}

func Series(values ...float64) Measurement {
	cp := make([]float64, len(values))
	copy(cp, values)
	return Measurement{values: cp, series: true}
}

// EmptyMeasurement is the zero value for the given mode.
func EmptyMeasurement(mode SampleMode) Measurement {
	if mode == SampleModeSeries {
		return Series()
	}
	return Measurement{}
}

func (m Measurement) IsSeries() bool {
	return m.series
}

// Value returns the scalar value, or the last element of a series.
func (m Measurement) Value() float64 {
	if len(m.values) == 0 {
		return 0
	}
	return m.values[len(m.values)-1]
}

func (m Measurement) Values() []float64 {
	cp := make([]float64, len(m.values))
	copy(cp, m.values)
	return cp
}

func (m Measurement) MarshalJSON() ([]byte, error) {
	if m.series {
		return json.Marshal(m.Values())
	}
	return json.Marshal(m.Value())
}

func (m *Measurement) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var values []float64
		if err := json.Unmarshal(b, &values); err != nil {
			return fmt.Errorf("Measurement.UnmarshalJSON: %w", err)
		}
		*m = Series(values...)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("Measurement.UnmarshalJSON: %w", err)
	}
	*m = Scalar(v)
	return nil
}
