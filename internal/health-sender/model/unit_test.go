package model

import (
	apperrors "PreTrip_Health_Sender/internal/health-sender/errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_ValueIn(t *testing.T) {
	testCases := []struct {
		name        string
		input       Quantity
		target      Unit
		expected    float64
		expectedErr error
	}{
		{
			name:     "Same unit",
			input:    Quantity{Value: 72, Unit: UnitCountPerMinute},
			target:   UnitCountPerMinute,
			expected: 72,
		},
		{
			name:     "Beats per second to beats per minute",
			input:    Quantity{Value: 1.2, Unit: UnitCountPerSecond},
			target:   UnitCountPerMinute,
			expected: 72,
		},
		{
			name:     "Kilopascal to mmHg",
			input:    Quantity{Value: 16, Unit: UnitKilopascal},
			target:   UnitMillimeterOfMercury,
			expected: 120.00985,
		},
		{
			name:     "Fahrenheit to Celsius",
			input:    Quantity{Value: 97.88, Unit: UnitDegreeFahrenheit},
			target:   UnitDegreeCelsius,
			expected: 36.6,
		},
		{
			name:     "Kelvin to Celsius",
			input:    Quantity{Value: 309.75, Unit: UnitKelvin},
			target:   UnitDegreeCelsius,
			expected: 36.6,
		},
		{
			name:     "Celsius to Fahrenheit",
			input:    Quantity{Value: 100, Unit: UnitDegreeCelsius},
			target:   UnitDegreeFahrenheit,
			expected: 212,
		},
		{
			name:     "Fraction to percent",
			input:    Quantity{Value: 0.0008, Unit: UnitFraction},
			target:   UnitPercent,
			expected: 0.08,
		},
		{
			name:        "Incompatible dimensions",
			input:       Quantity{Value: 36.6, Unit: UnitDegreeCelsius},
			target:      UnitMillimeterOfMercury,
			expectedErr: apperrors.ErrIncompatibleUnit,
		},
		{
			name:        "Unknown source unit",
			input:       Quantity{Value: 1, Unit: "furlong"},
			target:      UnitPercent,
			expectedErr: apperrors.ErrUnknownUnit,
		},
		{
			name:        "Unknown target unit",
			input:       Quantity{Value: 1, Unit: UnitPercent},
			target:      "furlong",
			expectedErr: apperrors.ErrUnknownUnit,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.input.ValueIn(tc.target)
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-4)
		})
	}
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("mmHg")
	require.NoError(t, err)
	assert.Equal(t, UnitMillimeterOfMercury, u)

	_, err = ParseUnit("mmhg")
	assert.ErrorIs(t, err, apperrors.ErrUnknownUnit)
}

func TestSampleKind(t *testing.T) {
	testCases := []struct {
		kind     SampleKind
		unit     Unit
		integral bool
	}{
		{SampleKindHeartRate, UnitCountPerMinute, true},
		{SampleKindBloodPressureSystolic, UnitMillimeterOfMercury, true},
		{SampleKindBloodPressureDiastolic, UnitMillimeterOfMercury, true},
		{SampleKindBodyTemperature, UnitDegreeCelsius, false},
		{SampleKindBloodAlcoholContent, UnitPercent, false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.unit, tc.kind.Unit())
			assert.Equal(t, tc.integral, tc.kind.Integral())
			parsed, err := ParseSampleKind(string(tc.kind))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, parsed)
		})
	}

	_, err := ParseSampleKind("HKQuantityTypeIdentifierHeartRate")
	assert.ErrorIs(t, err, apperrors.ErrUnknownSampleKind)
	assert.Len(t, AllSampleKinds(), 5)
}
