package percentiles

import (
	"fmt"
	"math"

	"lre-analytics/internal/models"
)

// Sketch is a bounded-memory quantile structure fed with weighted samples.
// Percentile takes p in [0, 100] and returns NaN when no estimate is available.
//
//go:generate mockgen -source=digest.go -destination=./mocks/digest_mock.go -package=mocks
type Sketch interface {
	Update(value, weight float64) error
	Percentile(p float64) float64
}

// BatchUpdater is implemented by sketches that accept a whole slice of samples in one call.
type BatchUpdater interface {
	BatchUpdate(values, weights []float64) error
}

type digestAccumulator struct {
	sketch     Sketch
	kind       models.SketchKind
	update     func(values, weights []float64) error
	vectorized bool
	samples    int
}

// NewDigestAccumulator wraps sketch into an Accumulator. The update path is fixed here:
// sketches implementing BatchUpdater receive whole slices, others one call per sample.
func NewDigestAccumulator(sketch Sketch, kind models.SketchKind) Accumulator {
	acc := &digestAccumulator{sketch: sketch, kind: kind}
	if batch, ok := sketch.(BatchUpdater); ok {
		acc.update = batch.BatchUpdate
		acc.vectorized = true
	} else {
		acc.update = acc.updateEach
	}
	return acc
}

func (a *digestAccumulator) updateEach(values, weights []float64) error {
	for i := range values {
		if err := a.sketch.Update(values[i], weights[i]); err != nil {
			return err
		}
	}
	return nil
}

func (a *digestAccumulator) Add(values, weights []float64) error {
	if len(values) != len(weights) {
		return fmt.Errorf("%w: %d values, %d weights", ErrLengthMismatch, len(values), len(weights))
	}
	if len(values) == 0 {
		return nil
	}
	if err := a.update(values, weights); err != nil {
		return err
	}
	a.samples += len(values)

	mode := modePerRow
	if a.vectorized {
		mode = modeVectorized
	}
	metricSketchUpdatesTotal.WithLabelValues(string(a.kind), mode).Inc()
	return nil
}

func (a *digestAccumulator) Samples() int {
	return a.samples
}

// Resolve substitutes 0 for any NaN or non-positive sketch estimate.
func (a *digestAccumulator) Resolve(targets []float64) ([]float64, error) {
	if a.samples == 0 {
		return nil, fmt.Errorf("%w: empty sketch", ErrInsufficientData)
	}
	out := make([]float64, len(targets))
	for i, target := range targets {
		v := a.sketch.Percentile(target)
		if math.IsNaN(v) || v <= 0 {
			v = 0
		}
		out[i] = v
	}
	return out, nil
}
