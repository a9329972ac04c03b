// ABOUTME: Measurement unit enum with per-unit canonical increments.
// ABOUTME: Kilogram and pound increments are independent values, not conversions.
package models

import "math"

// Unit is the canonical measurement unit weights flow through.
type Unit string

const (
	UnitKg Unit = "kg"
	UnitLb Unit = "lb"
)

// IsValidUnit checks if a string is a valid unit.
func IsValidUnit(s string) bool {
	return s == string(UnitKg) || s == string(UnitLb)
}

// successIncrements holds the per-success weight increase by unit and
// muscle group. Each unit has its own canonical value; the pound
// figures are not 2.2046× the kilogram ones.
var successIncrements = map[Unit]map[MuscleGroup]float64{
	UnitKg: {LowerBody: 5, UpperBody: 2.5},
	UnitLb: {LowerBody: 10, UpperBody: 5},
}

// deloadSteps is the plate rounding step per unit, used when deloading.
var deloadSteps = map[Unit]float64{
	UnitKg: 2.5,
	UnitLb: 5,
}

// Increment returns the weight increase applied after a successful lift.
func (u Unit) Increment(mg MuscleGroup) float64 {
	return successIncrements[u][mg]
}

// Step returns the unit's plate rounding step.
func (u Unit) Step() float64 {
	return deloadSteps[u]
}

// Round rounds a weight to the nearest multiple of the unit's step.
func (u Unit) Round(weight float64) float64 {
	step := u.Step()
	return math.Round(weight/step) * step
}
