package analytics

import (
	"testing"

	"lre-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_LeftJoinZeroFillsMissingGroups(t *testing.T) {
	t.Parallel()

	a := models.SummaryRow{GroupKey: models.NewGroupKey("A", "t"), TransactionCount: 10, Minimum: 0.1, Maximum: 0.9, Pass: 10}
	b := models.SummaryRow{GroupKey: models.NewGroupKey("B", "t"), TransactionCount: 4, Minimum: 0.2, Maximum: 0.4, Fail: 4}

	results := map[models.GroupKey]models.PercentileResult{
		a.GroupKey: {Key: a.GroupKey, Values: []float64{0.5, 0.8, 0.85, 0.89}},
	}

	rows := Merge([]models.SummaryRow{b, a}, results, targets)
	require.Len(t, rows, 2)

	assert.Equal(t, a, rows[0].SummaryRow)
	assert.Equal(t, []models.PercentileValue{
		{Label: "p50", Target: 50, Value: 0.5},
		{Label: "p90", Target: 90, Value: 0.8},
		{Label: "p95", Target: 95, Value: 0.85},
		{Label: "p99", Target: 99, Value: 0.89},
	}, rows[0].Percentiles)

	assert.Equal(t, b, rows[1].SummaryRow)
	for _, p := range rows[1].Percentiles {
		assert.Zero(t, p.Value, p.Label)
	}
}

func TestMerge_IgnoresResultsWithoutSummary(t *testing.T) {
	t.Parallel()

	orphan := models.NewGroupKey("Z", "orphan")
	rows := Merge(nil, map[models.GroupKey]models.PercentileResult{
		orphan: {Key: orphan, Values: []float64{1, 2, 3, 4}},
	}, targets)
	assert.Empty(t, rows)
}

func TestMerge_OrdersByScriptThenTransaction(t *testing.T) {
	t.Parallel()

	summaries := []models.SummaryRow{
		{GroupKey: models.NewGroupKey("b", "a")},
		{GroupKey: models.NewGroupKey("a", "z")},
		{GroupKey: models.NewGroupKey("a", "b")},
	}

	rows := Merge(summaries, nil, []float64{50})
	require.Len(t, rows, 3)
	assert.Equal(t, models.NewGroupKey("a", "b"), rows[0].GroupKey)
	assert.Equal(t, models.NewGroupKey("a", "z"), rows[1].GroupKey)
	assert.Equal(t, models.NewGroupKey("b", "a"), rows[2].GroupKey)
	assert.Equal(t, []models.PercentileValue{{Label: "p50", Target: 50}}, rows[0].Percentiles)
}
