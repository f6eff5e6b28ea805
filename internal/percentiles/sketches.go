package percentiles

import (
	"fmt"
	"math"

	"lre-analytics/internal/models"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/influxdata/tdigest"
)

// NewSketch builds an empty sketch of cfg.Kind with the configured resolution.
func NewSketch(cfg DigestConfig) (Sketch, error) {
	switch cfg.Kind {
	case models.SketchTDigest:
		if cfg.Compression <= 0 {
			return nil, fmt.Errorf("%w: tdigest compression must be > 0, got %v", ErrInvalidSketch, cfg.Compression)
		}
		return newTDigestSketch(cfg.Compression), nil
	case models.SketchDDSketch:
		if cfg.RelativeAccuracy <= 0 || cfg.RelativeAccuracy >= 1 {
			return nil, fmt.Errorf("%w: ddsketch relative accuracy must be in (0, 1), got %v", ErrInvalidSketch, cfg.RelativeAccuracy)
		}
		sketch, err := ddsketch.NewDefaultDDSketch(cfg.RelativeAccuracy)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSketch, err)
		}
		return &ddSketch{sketch: sketch}, nil
	case models.SketchHDR:
		if cfg.SignificantFigures < 1 || cfg.SignificantFigures > 5 {
			return nil, fmt.Errorf("%w: hdr significant figures must be in [1, 5], got %d", ErrInvalidSketch, cfg.SignificantFigures)
		}
		if cfg.HDRScale <= 0 || cfg.HDRMax < 2 {
			return nil, fmt.Errorf("%w: hdr scale must be > 0 and max >= 2", ErrInvalidSketch)
		}
		return &hdrSketch{
			hist:  hdrhistogram.New(1, cfg.HDRMax, cfg.SignificantFigures),
			scale: cfg.HDRScale,
			max:   cfg.HDRMax,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidSketch, cfg.Kind)
	}
}

// tdigestSketch supports vectorized updates through centroid lists. It holds nothing
// but the digest, so its size follows the compression and not the batch size.
type tdigestSketch struct {
	digest *tdigest.TDigest
	weight float64
}

func newTDigestSketch(compression float64) *tdigestSketch {
	return &tdigestSketch{digest: tdigest.NewWithCompression(compression)}
}

func (s *tdigestSketch) Update(value, weight float64) error {
	s.digest.Add(value, weight)
	s.weight += weight
	return nil
}

// BatchUpdate adds one group slice as a centroid list that is dropped once merged.
func (s *tdigestSketch) BatchUpdate(values, weights []float64) error {
	centroids := make(tdigest.CentroidList, len(values))
	for i := range values {
		centroids[i] = tdigest.Centroid{Mean: values[i], Weight: weights[i]}
		s.weight += weights[i]
	}
	s.digest.AddCentroidList(centroids)
	return nil
}

func (s *tdigestSketch) Percentile(p float64) float64 {
	if s.weight == 0 {
		return math.NaN()
	}
	return s.digest.Quantile(p / 100)
}

type ddSketch struct {
	sketch *ddsketch.DDSketch
}

func (s *ddSketch) Update(value, weight float64) error {
	return s.sketch.AddWithCount(value, weight)
}

// Percentile relies on GetValueAtQuantile failing on an empty sketch.
func (s *ddSketch) Percentile(p float64) float64 {
	v, err := s.sketch.GetValueAtQuantile(p / 100)
	if err != nil {
		return math.NaN()
	}
	return v
}

// hdrSketch records values as integers in units of 1/scale, clamped to [1, max].
type hdrSketch struct {
	hist  *hdrhistogram.Histogram
	scale float64
	max   int64
}

func (s *hdrSketch) Update(value, weight float64) error {
	scaled := int64(math.Round(value * s.scale))
	if scaled < 1 {
		scaled = 1
	}
	if scaled > s.max {
		scaled = s.max
	}
	count := int64(math.Round(weight))
	if count < 1 {
		count = 1
	}
	return s.hist.RecordValues(scaled, count)
}

func (s *hdrSketch) Percentile(p float64) float64 {
	if s.hist.TotalCount() == 0 {
		return math.NaN()
	}
	return float64(s.hist.ValueAtQuantile(p)) / s.scale
}
