package percentiles_test

import (
	"math"
	"math/rand"
	"testing"

	"lre-analytics/internal/models"
	"lre-analytics/internal/percentiles"
	"lre-analytics/internal/percentiles/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var targets = []float64{50, 90, 95, 99}

// batchSketch is a sketch that also advertises vectorized updates.
type batchSketch struct {
	*mocks.MockSketch
	*mocks.MockBatchUpdater
}

func TestDigestAccumulator_UsesBatchUpdateWhenSupported(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sketch := batchSketch{MockSketch: mocks.NewMockSketch(ctrl), MockBatchUpdater: mocks.NewMockBatchUpdater(ctrl)}
	acc := percentiles.NewDigestAccumulator(sketch, models.SketchTDigest)

	sketch.MockBatchUpdater.EXPECT().
		BatchUpdate([]float64{1, 2, 3}, []float64{4, 5, 6}).
		Return(nil).
		Times(1)
	sketch.MockSketch.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, acc.Add([]float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Equal(t, 3, acc.Samples())
}

func TestDigestAccumulator_FallsBackToPerRowUpdate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sketch := mocks.NewMockSketch(ctrl)
	acc := percentiles.NewDigestAccumulator(sketch, models.SketchDDSketch)

	gomock.InOrder(
		sketch.EXPECT().Update(1.0, 4.0).Return(nil),
		sketch.EXPECT().Update(2.0, 5.0).Return(nil),
		sketch.EXPECT().Update(3.0, 6.0).Return(nil),
	)

	require.NoError(t, acc.Add([]float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Equal(t, 3, acc.Samples())
}

func TestDigestAccumulator_SubstitutesZeroForUnavailableEstimates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sketch := mocks.NewMockSketch(ctrl)
	acc := percentiles.NewDigestAccumulator(sketch, models.SketchDDSketch)

	sketch.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	sketch.EXPECT().Percentile(50.0).Return(math.NaN())
	sketch.EXPECT().Percentile(90.0).Return(-2.0)
	sketch.EXPECT().Percentile(95.0).Return(0.0)
	sketch.EXPECT().Percentile(99.0).Return(7.5)

	require.NoError(t, acc.Add([]float64{7.5}, []float64{1}))
	got, err := acc.Resolve(targets)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 7.5}, got)
}

func TestDigestAccumulator_EmptyIsInsufficient(t *testing.T) {
	t.Parallel()

	sketch, err := percentiles.NewSketch(percentiles.DefaultDigestConfig())
	require.NoError(t, err)
	acc := percentiles.NewDigestAccumulator(sketch, models.SketchTDigest)

	_, err = acc.Resolve(targets)
	assert.ErrorIs(t, err, percentiles.ErrInsufficientData)
}

func TestDigestAccumulator_LengthMismatch(t *testing.T) {
	t.Parallel()

	sketch, err := percentiles.NewSketch(percentiles.DefaultDigestConfig())
	require.NoError(t, err)
	acc := percentiles.NewDigestAccumulator(sketch, models.SketchTDigest)

	assert.ErrorIs(t, acc.Add([]float64{1}, nil), percentiles.ErrLengthMismatch)
}

func TestNewSketch_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  percentiles.DigestConfig
	}{
		{name: "tdigest without compression", cfg: percentiles.DigestConfig{Kind: models.SketchTDigest}},
		{name: "ddsketch accuracy of one", cfg: percentiles.DigestConfig{Kind: models.SketchDDSketch, RelativeAccuracy: 1}},
		{name: "hdr too many figures", cfg: percentiles.DigestConfig{Kind: models.SketchHDR, SignificantFigures: 6, HDRScale: 1, HDRMax: 100}},
		{name: "hdr without scale", cfg: percentiles.DigestConfig{Kind: models.SketchHDR, SignificantFigures: 3, HDRMax: 100}},
		{name: "unknown kind", cfg: percentiles.DigestConfig{Kind: "kll"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := percentiles.NewSketch(tt.cfg)
			assert.ErrorIs(t, err, percentiles.ErrInvalidSketch)
		})
	}
}

// syntheticDataset returns 10 000 log-normal response times with weights in [1, 5].
func syntheticDataset() ([]float64, []float64) {
	rng := rand.New(rand.NewSource(42))
	values := make([]float64, 10_000)
	weights := make([]float64, 10_000)
	for i := range values {
		values[i] = 200 * math.Exp(0.5*rng.NormFloat64())
		weights[i] = float64(1 + rng.Intn(5))
	}
	return values, weights
}

func TestDigestStrategies_ConvergeTowardExact(t *testing.T) {
	t.Parallel()

	values, weights := syntheticDataset()
	exact := percentiles.WeightedPercentiles(values, weights, targets)
	exactP90 := exact[1]

	tests := []struct {
		name string
		cfg  percentiles.DigestConfig
	}{
		{name: "tdigest", cfg: percentiles.DigestConfig{Kind: models.SketchTDigest, Compression: 200}},
		{name: "ddsketch", cfg: percentiles.DigestConfig{Kind: models.SketchDDSketch, RelativeAccuracy: 0.005}},
		{name: "hdr", cfg: percentiles.DigestConfig{Kind: models.SketchHDR, SignificantFigures: 3, HDRScale: 1000, HDRMax: percentiles.DefaultHDRMax}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factory, err := percentiles.NewAccumulatorFactory(percentiles.Config{Strategy: models.StrategyDigest, Digest: tt.cfg})
			require.NoError(t, err)
			acc, err := factory.NewAccumulator()
			require.NoError(t, err)

			for start := 0; start < len(values); start += 1000 {
				require.NoError(t, acc.Add(values[start:start+1000], weights[start:start+1000]))
			}

			got, err := acc.Resolve(targets)
			require.NoError(t, err)
			assert.InDelta(t, exactP90, got[1], exactP90*0.02, "p90 outside 2%% of exact %v", exactP90)
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, got[i-1], got[i])
			}
		})
	}
}

func TestDigestStrategies_ResolutionImprovesAccuracy(t *testing.T) {
	t.Parallel()

	values, weights := syntheticDataset()
	exactP99 := percentiles.WeightedPercentiles(values, weights, []float64{99})[0]

	errorAt := func(accuracy float64) float64 {
		sketch, err := percentiles.NewSketch(percentiles.DigestConfig{Kind: models.SketchDDSketch, RelativeAccuracy: accuracy})
		require.NoError(t, err)
		acc := percentiles.NewDigestAccumulator(sketch, models.SketchDDSketch)
		require.NoError(t, acc.Add(values, weights))
		got, err := acc.Resolve([]float64{99})
		require.NoError(t, err)
		return math.Abs(got[0]-exactP99) / exactP99
	}

	coarse := errorAt(0.1)
	fine := errorAt(0.001)
	assert.LessOrEqual(t, fine, 0.1)
	assert.LessOrEqual(t, fine, coarse+0.001)
}

func TestNewAccumulatorFactory(t *testing.T) {
	t.Parallel()

	exact, err := percentiles.NewAccumulatorFactory(percentiles.Config{Strategy: models.StrategyExact})
	require.NoError(t, err)
	assert.Equal(t, models.StrategyExact, exact.Strategy())

	digest, err := percentiles.NewAccumulatorFactory(percentiles.Config{Strategy: models.StrategyDigest, Digest: percentiles.DefaultDigestConfig()})
	require.NoError(t, err)
	assert.Equal(t, models.StrategyDigest, digest.Strategy())

	_, err = percentiles.NewAccumulatorFactory(percentiles.Config{Strategy: "median"})
	assert.ErrorIs(t, err, percentiles.ErrUnknownStrategy)

	_, err = percentiles.NewAccumulatorFactory(percentiles.Config{Strategy: models.StrategyDigest})
	assert.ErrorIs(t, err, percentiles.ErrInvalidSketch)
}

func TestExactFactory_DefaultsMinSamples(t *testing.T) {
	t.Parallel()

	factory, err := percentiles.NewAccumulatorFactory(percentiles.Config{Strategy: models.StrategyExact})
	require.NoError(t, err)
	acc, err := factory.NewAccumulator()
	require.NoError(t, err)

	require.NoError(t, acc.Add([]float64{3}, []float64{1}))
	_, err = acc.Resolve(targets)
	assert.ErrorIs(t, err, percentiles.ErrInsufficientData)

	require.NoError(t, acc.Add([]float64{5}, []float64{1}))
	got, err := acc.Resolve(targets)
	require.NoError(t, err)
	assert.Len(t, got, len(targets))
}
