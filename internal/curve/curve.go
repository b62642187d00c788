// Package curve provides growth curves for the simulation: pure functions
// mapping an upgrade level to a numeric magnitude. Curves describe both the
// output of generators (production per second at a level) and the price of
// upgrade steps (cost to buy a level).
package curve

import "math"

// Curve maps a non-negative upgrade level to a numeric value.
// Implementations must be pure and defined for every level >= 0.
type Curve interface {
	Value(level int) float64
}

type linear struct {
	initial float64
	factor  float64
}

// Linear returns a curve computing level*factor + initial.
func Linear(initial, factor float64) Curve {
	return linear{initial: initial, factor: factor}
}

func (c linear) Value(level int) float64 {
	return float64(level)*c.factor + c.initial
}

type exponential struct{}

// Exponential returns a curve computing e^level.
// Values grow unbounded; callers must tolerate very large magnitudes.
func Exponential() Curve {
	return exponential{}
}

func (exponential) Value(level int) float64 {
	return math.Exp(float64(level))
}

type flat struct {
	value float64
}

// Flat returns a curve that yields the same value at every level.
func Flat(value float64) Curve {
	return flat{value: value}
}

func (c flat) Value(int) float64 {
	return c.value
}
