package percentiles

import (
	"fmt"

	"lre-analytics/internal/models"
)

// Accumulator folds the weighted samples of one group across any number of batches
// and resolves them into percentiles once the stream is exhausted.
//
//go:generate mockgen -source=accumulator.go -destination=./mocks/accumulator_mock.go -package=mocks
type Accumulator interface {
	// Add folds one slice of samples. values and weights must have the same length.
	Add(values, weights []float64) error
	// Samples returns the number of samples folded so far.
	Samples() int
	// Resolve returns one non-negative value per target, in target order.
	// ErrInsufficientData means the group must be left out of the result mapping.
	Resolve(targets []float64) ([]float64, error)
}

// AccumulatorFactory creates fresh accumulators for one strategy.
// A run uses exactly one factory, so exact and digest accumulators never mix.
type AccumulatorFactory interface {
	Strategy() models.Strategy
	NewAccumulator() (Accumulator, error)
}

// Config selects and tunes the percentile strategy of a run.
type Config struct {
	Strategy        models.Strategy
	ExactMinSamples int
	Digest          DigestConfig
}

// DigestConfig holds the resolution settings of every sketch backend; only the
// fields of the selected Kind are read.
type DigestConfig struct {
	Kind               models.SketchKind
	Compression        float64 // tdigest
	RelativeAccuracy   float64 // ddsketch
	SignificantFigures int     // hdr
	HDRScale           float64 // hdr: multiplier turning values into integer units
	HDRMax             int64   // hdr: highest trackable scaled value
}

const (
	DefaultExactMinSamples    = 2
	DefaultCompression        = 100
	DefaultRelativeAccuracy   = 0.01
	DefaultSignificantFigures = 3
	DefaultHDRScale           = 1000
	DefaultHDRMax             = 3_600_000_000
)

// DefaultDigestConfig returns a tdigest configuration with the default compression.
func DefaultDigestConfig() DigestConfig {
	return DigestConfig{
		Kind:               models.SketchTDigest,
		Compression:        DefaultCompression,
		RelativeAccuracy:   DefaultRelativeAccuracy,
		SignificantFigures: DefaultSignificantFigures,
		HDRScale:           DefaultHDRScale,
		HDRMax:             DefaultHDRMax,
	}
}

// NewAccumulatorFactory validates cfg and returns the factory of its strategy.
func NewAccumulatorFactory(cfg Config) (AccumulatorFactory, error) {
	switch cfg.Strategy {
	case models.StrategyExact:
		minSamples := cfg.ExactMinSamples
		if minSamples <= 0 {
			minSamples = DefaultExactMinSamples
		}
		return &exactFactory{minSamples: minSamples}, nil
	case models.StrategyDigest:
		// build one sketch up front so a bad resolution fails the run before any I/O
		if _, err := NewSketch(cfg.Digest); err != nil {
			return nil, err
		}
		return &digestFactory{cfg: cfg.Digest}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}

type exactFactory struct {
	minSamples int
}

func (f *exactFactory) Strategy() models.Strategy { return models.StrategyExact }

func (f *exactFactory) NewAccumulator() (Accumulator, error) {
	return newExactAccumulator(f.minSamples), nil
}

type digestFactory struct {
	cfg DigestConfig
}

func (f *digestFactory) Strategy() models.Strategy { return models.StrategyDigest }

func (f *digestFactory) NewAccumulator() (Accumulator, error) {
	sketch, err := NewSketch(f.cfg)
	if err != nil {
		return nil, err
	}
	return NewDigestAccumulator(sketch, f.cfg.Kind), nil
}
