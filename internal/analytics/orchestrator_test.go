package analytics

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"lre-analytics/internal/models"
	"lre-analytics/internal/percentiles"
	pmocks "lre-analytics/internal/percentiles/mocks"
	"lre-analytics/internal/sources"
	smocks "lre-analytics/internal/sources/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	targets = models.DefaultPercentileTargets
	submit  = models.NewGroupKey("Login", "Submit")
	timeout = models.NewGroupKey("Login", "Timeout")
)

func exactFactory(t *testing.T) percentiles.AccumulatorFactory {
	t.Helper()
	factory, err := percentiles.NewAccumulatorFactory(percentiles.Config{Strategy: models.StrategyExact})
	require.NoError(t, err)
	return factory
}

func TestOrchestrator_ExactRunFiltersInvalidRows(t *testing.T) {
	t.Parallel()

	rows := models.Batch{
		{Key: submit, Value: 100, Weight: 1},
		{Key: submit, Value: 0, Weight: 4},
		{Key: submit, Value: 200, Weight: 1},
		{Key: submit, Value: 999, Weight: 0},
		{Key: submit, Value: -3, Weight: 2},
		{Key: submit, Value: math.Inf(1), Weight: 1},
		{Key: submit, Value: 250, Weight: math.Inf(1)},
		{Key: submit, Value: 300, Weight: 1},
	}

	result, err := NewOrchestrator(exactFactory(t), targets).Process(context.Background(), sources.NewMemoryBatchSource(rows, 2))
	require.NoError(t, err)

	require.Len(t, result.Percentiles, 1)
	got := result.Percentiles[submit]
	assert.Equal(t, submit, got.Key)
	require.Len(t, got.Values, 4)
	assert.InDelta(t, 150, got.Values[0], 1e-9)
	assert.InDelta(t, 270, got.Values[1], 1e-9)
	assert.InDelta(t, 285, got.Values[2], 1e-9)
	assert.InDelta(t, 297, got.Values[3], 1e-9)

	assert.Equal(t, models.RunStats{
		RowsRead:    8,
		RowsDropped: 5,
		Batches:     4,
		Groups:      1,
		Resolved:    1,
	}, result.Stats)
}

func TestOrchestrator_AllInvalidGroupIsAbsent(t *testing.T) {
	t.Parallel()

	rows := models.Batch{
		{Key: timeout, Value: 0, Weight: 1},
		{Key: timeout, Value: 5, Weight: 0},
	}

	result, err := NewOrchestrator(exactFactory(t), targets).Process(context.Background(), sources.NewMemoryBatchSource(rows, 10))
	require.NoError(t, err)
	assert.Empty(t, result.Percentiles)
	assert.Equal(t, 0, result.Stats.Groups)
	assert.Equal(t, int64(2), result.Stats.RowsDropped)
}

func TestOrchestrator_InsufficientGroupIsOmitted(t *testing.T) {
	t.Parallel()

	rows := models.Batch{
		{Key: submit, Value: 1, Weight: 1},
		{Key: submit, Value: 2, Weight: 1},
		{Key: timeout, Value: 7, Weight: 5},
	}

	result, err := NewOrchestrator(exactFactory(t), targets).Process(context.Background(), sources.NewMemoryBatchSource(rows, 10))
	require.NoError(t, err)
	assert.Contains(t, result.Percentiles, submit)
	assert.NotContains(t, result.Percentiles, timeout)
	assert.Equal(t, 2, result.Stats.Groups)
	assert.Equal(t, 1, result.Stats.Insufficient)
}

func TestOrchestrator_BatchBoundaryInvariance(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	keys := []models.GroupKey{submit, timeout, models.NewGroupKey("Search", "Query")}
	rows := make(models.Batch, 500)
	for i := range rows {
		rows[i] = models.MeasurementRow{
			Key:    keys[rng.Intn(len(keys))],
			Value:  rng.Float64() * 3,
			Weight: float64(rng.Intn(6)),
		}
	}

	process := func(batchSize int) map[models.GroupKey]models.PercentileResult {
		result, err := NewOrchestrator(exactFactory(t), targets).Process(context.Background(), sources.NewMemoryBatchSource(rows, batchSize))
		require.NoError(t, err)
		return result.Percentiles
	}

	expected := process(len(rows))
	for _, size := range []int{1, 7, 10, 100} {
		assert.Equal(t, expected, process(size), "batch size %d", size)
	}
}

func TestOrchestrator_DigestRunStaysWithinRange(t *testing.T) {
	t.Parallel()

	factory, err := percentiles.NewAccumulatorFactory(percentiles.Config{
		Strategy: models.StrategyDigest,
		Digest:   percentiles.DefaultDigestConfig(),
	})
	require.NoError(t, err)

	rows := models.Batch{
		{Key: submit, Value: 100, Weight: 1},
		{Key: submit, Value: 200, Weight: 1},
		{Key: submit, Value: 300, Weight: 1},
	}
	result, err := NewOrchestrator(factory, targets).Process(context.Background(), sources.NewMemoryBatchSource(rows, 2))
	require.NoError(t, err)

	values := result.Percentiles[submit].Values
	require.Len(t, values, 4)
	for i, v := range values {
		assert.GreaterOrEqual(t, v, 100.0)
		assert.LessOrEqual(t, v, 300.0)
		if i > 0 {
			assert.LessOrEqual(t, values[i-1], v)
		}
	}
}

func TestOrchestrator_GroupFailuresAreZeroFilled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := models.NewGroupKey("A", "resolve-error")
	panicking := models.NewGroupKey("B", "resolve-panic")
	rejecting := models.NewGroupKey("C", "add-error")
	healthy := models.NewGroupKey("D", "ok")

	factory := pmocks.NewMockAccumulatorFactory(ctrl)
	factory.EXPECT().Strategy().Return(models.StrategyExact).AnyTimes()

	accFailing := pmocks.NewMockAccumulator(ctrl)
	accPanicking := pmocks.NewMockAccumulator(ctrl)
	accRejecting := pmocks.NewMockAccumulator(ctrl)
	accHealthy := pmocks.NewMockAccumulator(ctrl)
	gomock.InOrder(
		factory.EXPECT().NewAccumulator().Return(accFailing, nil),
		factory.EXPECT().NewAccumulator().Return(accPanicking, nil),
		factory.EXPECT().NewAccumulator().Return(accRejecting, nil),
		factory.EXPECT().NewAccumulator().Return(accHealthy, nil),
	)

	accFailing.EXPECT().Add([]float64{1}, []float64{1}).Return(nil)
	accFailing.EXPECT().Resolve(targets).Return(nil, errors.New("numerical failure"))
	accPanicking.EXPECT().Add([]float64{2}, []float64{1}).Return(nil)
	accPanicking.EXPECT().Resolve(targets).DoAndReturn(func([]float64) ([]float64, error) {
		panic("corrupt sketch")
	})
	accRejecting.EXPECT().Add([]float64{3}, []float64{1}).Return(errors.New("sketch rejected value"))
	accHealthy.EXPECT().Add([]float64{4}, []float64{1}).Return(nil)
	accHealthy.EXPECT().Resolve(targets).Return([]float64{4, 4, 4, 4}, nil)

	rows := models.Batch{
		{Key: failing, Value: 1, Weight: 1},
		{Key: panicking, Value: 2, Weight: 1},
		{Key: rejecting, Value: 3, Weight: 1},
		{Key: healthy, Value: 4, Weight: 1},
	}

	result, err := NewOrchestrator(factory, targets).Process(context.Background(), sources.NewMemoryBatchSource(rows, 10))
	require.NoError(t, err)

	zeros := []float64{0, 0, 0, 0}
	assert.Equal(t, zeros, result.Percentiles[failing].Values)
	assert.Equal(t, zeros, result.Percentiles[panicking].Values)
	assert.Equal(t, zeros, result.Percentiles[rejecting].Values)
	assert.Equal(t, []float64{4, 4, 4, 4}, result.Percentiles[healthy].Values)
	assert.Equal(t, 3, result.Stats.Failed)
	assert.Equal(t, 1, result.Stats.Resolved)
}

func TestOrchestrator_DataSourceFailureIsFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := smocks.NewMockBatchSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Next(gomock.Any()).Return(models.Batch{{Key: submit, Value: 1, Weight: 1}}, nil),
		src.EXPECT().Next(gomock.Any()).Return(nil, errors.New("disk I/O error")),
	)

	result, err := NewOrchestrator(exactFactory(t), targets).Process(context.Background(), src)
	assert.Nil(t, result)
	require.ErrorIs(t, err, ErrDataSourceFailed)
	assert.Contains(t, err.Error(), "disk I/O error")
}
