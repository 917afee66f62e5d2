package model

// HealthRecord is the payload posted to the health endpoint. All measurements are always present.
type HealthRecord struct {
	Pulse                  Measurement `json:"pulse"`
	BloodPressureSystolic  Measurement `json:"bloodPressureSystolic"`
	BloodPressureDiastolic Measurement `json:"bloodPressureDiastolic"`
	Temperature            Measurement `json:"temperature"`
	BloodAlcoholLevel      Measurement `json:"bloodAlcoholLevel"`
	DeviceID               string      `json:"deviceId"`
}

// NewHealthRecord assembles a record, filling every kind missing from values with the empty
// measurement of mode.
func NewHealthRecord(mode SampleMode, values map[SampleKind]Measurement, deviceID string) HealthRecord {
	get := func(k SampleKind) Measurement {
		if m, ok := values[k]; ok {
			return m
		}
		return EmptyMeasurement(mode)
	}
	return HealthRecord{
		Pulse:                  get(SampleKindHeartRate),
		BloodPressureSystolic:  get(SampleKindBloodPressureSystolic),
		BloodPressureDiastolic: get(SampleKindBloodPressureDiastolic),
		Temperature:            get(SampleKindBodyTemperature),
		BloodAlcoholLevel:      get(SampleKindBloodAlcoholContent),
		DeviceID:               deviceID,
	}
}

func (r HealthRecord) Measurement(kind SampleKind) Measurement {
	switch kind {
	case SampleKindHeartRate:
		return r.Pulse
	case SampleKindBloodPressureSystolic:
		return r.BloodPressureSystolic
	case SampleKindBloodPressureDiastolic:
		return r.BloodPressureDiastolic
	case SampleKindBodyTemperature:
		return r.Temperature
	case SampleKindBloodAlcoholContent:
		return r.BloodAlcoholLevel
	default:
		return Measurement{}
	}
}
