package model

import (
	apperrors "PreTrip_Health_Sender/internal/health-sender/errors"
	"fmt"
	"math"
)

type Unit string

const (
	UnitCountPerMinute      Unit = "count/min"
	UnitCountPerSecond      Unit = "count/s"
	UnitMillimeterOfMercury Unit = "mmHg"
	UnitKilopascal          Unit = "kPa"
	UnitCentimeterOfWater   Unit = "cmH2O"
	UnitDegreeCelsius       Unit = "degC"
	UnitDegreeFahrenheit    Unit = "degF"
	UnitKelvin              Unit = "K"
	UnitPercent             Unit = "%"
	UnitFraction            Unit = "fraction"
)

type dimension string

const (
	dimensionFrequency   dimension = "frequency"
	dimensionPressure    dimension = "pressure"
	dimensionTemperature dimension = "temperature"
	dimensionRatio       dimension = "ratio"
)

type unitDefinition struct {
	dimension dimension
	toBase    func(float64) float64
	fromBase  func(float64) float64
}

func scale(factor float64) (func(float64) float64, func(float64) float64) {
	return func(v float64) float64 { return v * factor }, func(v float64) float64 { return v / factor }
}

var units = func() map[Unit]unitDefinition {
	identity := func(v float64) float64 { return v }
	perSecondTo, perSecondFrom := scale(60)
	kPaTo, kPaFrom := scale(7.500615758)
	cmH2OTo, cmH2OFrom := scale(0.735559240)
	fractionTo, fractionFrom := scale(100)
	return map[Unit]unitDefinition{
		UnitCountPerMinute:      {dimension: dimensionFrequency, toBase: identity, fromBase: identity},
		UnitCountPerSecond:      {dimension: dimensionFrequency, toBase: perSecondTo, fromBase: perSecondFrom},
		UnitMillimeterOfMercury: {dimension: dimensionPressure, toBase: identity, fromBase: identity},
		UnitKilopascal:          {dimension: dimensionPressure, toBase: kPaTo, fromBase: kPaFrom},
		UnitCentimeterOfWater:   {dimension: dimensionPressure, toBase: cmH2OTo, fromBase: cmH2OFrom},
		UnitDegreeCelsius:       {dimension: dimensionTemperature, toBase: identity, fromBase: identity},
		UnitDegreeFahrenheit: {
			dimension: dimensionTemperature,
			toBase:    func(v float64) float64 { return (v - 32) * 5 / 9 },
			fromBase:  func(v float64) float64 { return v*9/5 + 32 },
		},
		UnitKelvin: {
			dimension: dimensionTemperature,
			toBase:    func(v float64) float64 { return v - 273.15 },
			fromBase:  func(v float64) float64 { return v + 273.15 },
		},
		UnitPercent:  {dimension: dimensionRatio, toBase: identity, fromBase: identity},
		UnitFraction: {dimension: dimensionRatio, toBase: fractionTo, fromBase: fractionFrom},
	}
}()

func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if _, ok := units[u]; !ok {
		return "", fmt.Errorf("ParseUnit %q: %w", s, apperrors.ErrUnknownUnit)
	}
	return u, nil
}

type Quantity struct {
	Value float64
	Unit  Unit
}

// ValueIn converts the quantity to target. Both units must measure the same dimension.
func (q Quantity) ValueIn(target Unit) (float64, error) {
	from, ok := units[q.Unit]
	if !ok {
		return 0, fmt.Errorf("Quantity.ValueIn %q: %w", q.Unit, apperrors.ErrUnknownUnit)
	}
	to, ok := units[target]
	if !ok {
		return 0, fmt.Errorf("Quantity.ValueIn %q: %w", target, apperrors.ErrUnknownUnit)
	}
	if from.dimension != to.dimension {
		return 0, fmt.Errorf("Quantity.ValueIn %s to %s: %w", q.Unit, target, apperrors.ErrIncompatibleUnit)
	}
	v := to.fromBase(from.toBase(q.Value))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("Quantity.ValueIn: value %v is not finite", v)
	}
	return v, nil
}
