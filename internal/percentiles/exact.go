package percentiles

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// WeightedPercentiles computes order statistics of (values, weights) by interpolating
// the sorted, normalized cumulative-weight curve. targets are in [0, 100].
//
// Edge policy:
//   - no values: every target is 0
//   - one value: every target is that value, whatever its weight
//   - total weight <= 0: every target is 0
//   - targets outside the curve clamp to the first or last sorted value
//   - results are clamped to a minimum of 0
func WeightedPercentiles(values, weights, targets []float64) []float64 {
	out := make([]float64, len(targets))
	n := len(values)
	if n == 0 {
		return out
	}
	if n == 1 {
		for i := range out {
			out[i] = math.Max(0, values[0])
		}
		return out
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})

	sortedValues := make([]float64, n)
	sortedWeights := make([]float64, n)
	for i, idx := range order {
		sortedValues[i] = values[idx]
		sortedWeights[i] = weights[idx]
	}

	cumulative := floats.CumSum(make([]float64, n), sortedWeights)
	total := cumulative[n-1]
	if !(total > 0) {
		return out
	}
	for i := range cumulative {
		cumulative[i] = cumulative[i] / total * 100
	}

	predict := curvePredictor(cumulative, sortedValues)
	for i, target := range targets {
		out[i] = math.Max(0, predict(target))
	}
	return out
}

// curvePredictor returns the clamped piecewise-linear function through (xp[i], fp[i]).
// Zero weights repeat a knot of xp, which PiecewiseLinear.Fit panics on; those curves
// are evaluated by interpolate.
func curvePredictor(xp, fp []float64) func(float64) float64 {
	if !strictlyIncreasing(xp) {
		return func(x float64) float64 {
			return interpolate(x, xp, fp)
		}
	}
	var curve interp.PiecewiseLinear
	_ = curve.Fit(xp, fp)
	return curve.Predict
}

func strictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return false
		}
	}
	return true
}

// interpolate evaluates the piecewise-linear function through (xp[i], fp[i]) at x.
// xp must be non-decreasing; x outside [xp[0], xp[n-1]] clamps to the end values.
func interpolate(x float64, xp, fp []float64) float64 {
	last := len(xp) - 1
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[last] {
		return fp[last]
	}
	hi := sort.SearchFloat64s(xp, x)
	if xp[hi] == x {
		return fp[hi]
	}
	lo := hi - 1
	span := xp[hi] - xp[lo]
	if span == 0 {
		return fp[hi]
	}
	return fp[lo] + (x-xp[lo])/span*(fp[hi]-fp[lo])
}

type exactAccumulator struct {
	values     []float64
	weights    []float64
	minSamples int
}

func newExactAccumulator(minSamples int) *exactAccumulator {
	return &exactAccumulator{minSamples: minSamples}
}

func (a *exactAccumulator) Add(values, weights []float64) error {
	if len(values) != len(weights) {
		return fmt.Errorf("%w: %d values, %d weights", ErrLengthMismatch, len(values), len(weights))
	}
	a.values = append(a.values, values...)
	a.weights = append(a.weights, weights...)
	return nil
}

func (a *exactAccumulator) Samples() int {
	return len(a.values)
}

func (a *exactAccumulator) Resolve(targets []float64) ([]float64, error) {
	if len(a.values) < a.minSamples {
		return nil, fmt.Errorf("%w: %d samples, need %d", ErrInsufficientData, len(a.values), a.minSamples)
	}
	return WeightedPercentiles(a.values, a.weights, targets), nil
}
