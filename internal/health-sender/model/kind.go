package model

import (
	apperrors "PreTrip_Health_Sender/internal/health-sender/errors"
	"fmt"
)

type SampleKind string

const (
	SampleKindHeartRate              SampleKind = "heart_rate"
	SampleKindBloodPressureSystolic  SampleKind = "blood_pressure_systolic"
	SampleKindBloodPressureDiastolic SampleKind = "blood_pressure_diastolic"
	SampleKindBodyTemperature        SampleKind = "body_temperature"
	SampleKindBloodAlcoholContent    SampleKind = "blood_alcohol_content"
)

var sampleKinds = []SampleKind{
	SampleKindHeartRate,
	SampleKindBloodPressureSystolic,
	SampleKindBloodPressureDiastolic,
	SampleKindBodyTemperature,
	SampleKindBloodAlcoholContent,
}

// AllSampleKinds returns the five kinds in record field order.
func AllSampleKinds() []SampleKind {
	kinds := make([]SampleKind, len(sampleKinds))
	copy(kinds, sampleKinds)
	return kinds
}

func ParseSampleKind(s string) (SampleKind, error) {
	for _, k := range sampleKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("ParseSampleKind %q: %w", s, apperrors.ErrUnknownSampleKind)
}

func (k SampleKind) Valid() bool {
	_, err := ParseSampleKind(string(k))
	return err == nil
}

// Unit is the canonical unit a kind's values are converted to before they land in a record.
func (k SampleKind) Unit() Unit {
	switch k {
	case SampleKindHeartRate:
		return UnitCountPerMinute
	case SampleKindBloodPressureSystolic, SampleKindBloodPressureDiastolic:
		return UnitMillimeterOfMercury
	case SampleKindBodyTemperature:
		return UnitDegreeCelsius
	case SampleKindBloodAlcoholContent:
		return UnitPercent
	default:
		return ""
	}
}

// Integral kinds are reported as whole numbers, truncated toward zero.
func (k SampleKind) Integral() bool {
	switch k {
	case SampleKindHeartRate, SampleKindBloodPressureSystolic, SampleKindBloodPressureDiastolic:
		return true
	default:
		return false
	}
}

func (k SampleKind) String() string {
	return string(k)
}
