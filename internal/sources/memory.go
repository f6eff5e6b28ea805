package sources

import (
	"context"
	"fmt"
	"io"
	"sort"

	"lre-analytics/internal/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const DriverMemory = "memory"

// Sample is one raw measurement event held by an in-memory run.
type Sample struct {
	Key          models.GroupKey
	ResponseTime float64
	Count        float64
	Passed       bool
}

type memoryRun struct {
	samples []Sample
}

// NewMemoryRun serves a run from samples already in memory. Only passed samples
// reach the batch source; summaries count both outcomes.
func NewMemoryRun(samples []Sample) Run {
	return &memoryRun{samples: samples}
}

func (r *memoryRun) Batches(_ context.Context, batchSize int) (BatchSource, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}
	rows := make(models.Batch, 0, len(r.samples))
	for _, s := range r.samples {
		if s.Passed {
			rows = append(rows, models.MeasurementRow{Key: s.Key, Value: s.ResponseTime, Weight: s.Count})
		}
	}
	return NewMemoryBatchSource(rows, batchSize), nil
}

type groupSamples struct {
	values  []float64
	weights []float64
	total   float64
	pass    float64
	fail    float64
}

func (r *memoryRun) Summaries(_ context.Context) ([]models.SummaryRow, error) {
	groups := make(map[models.GroupKey]*groupSamples)
	for _, s := range r.samples {
		g, ok := groups[s.Key]
		if !ok {
			g = &groupSamples{}
			groups[s.Key] = g
		}
		g.total += s.Count
		if !s.Passed {
			g.fail += s.Count
			continue
		}
		g.pass += s.Count
		g.values = append(g.values, s.ResponseTime)
		g.weights = append(g.weights, s.Count)
	}

	rows := make([]models.SummaryRow, 0, len(groups))
	for key, g := range groups {
		row := models.SummaryRow{
			GroupKey:         key,
			TransactionCount: int64(g.total),
			Pass:             int64(g.pass),
			Fail:             int64(g.fail),
		}
		if len(g.values) > 0 {
			row.Minimum = round3(floats.Min(g.values))
			row.Maximum = round3(floats.Max(g.values))
			if g.pass > 0 {
				mean, std := stat.PopMeanStdDev(g.values, g.weights)
				row.Average = round3(mean)
				row.StdDeviation = round3(std)
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].GroupKey.Less(rows[j].GroupKey) })
	return rows, nil
}

func (r *memoryRun) Close() error {
	return nil
}

type memoryBatchSource struct {
	rows      models.Batch
	batchSize int
	offset    int
}

// NewMemoryBatchSource slices rows into batches of batchSize without copying.
func NewMemoryBatchSource(rows models.Batch, batchSize int) BatchSource {
	if batchSize < 1 {
		batchSize = 1
	}
	return &memoryBatchSource{rows: rows, batchSize: batchSize}
}

func (s *memoryBatchSource) Next(ctx context.Context) (models.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.offset >= len(s.rows) {
		return nil, io.EOF
	}
	end := min(s.offset+s.batchSize, len(s.rows))
	batch := s.rows[s.offset:end]
	s.offset = end

	metricBatchesReadTotal.WithLabelValues(DriverMemory).Inc()
	metricRowsReadTotal.WithLabelValues(DriverMemory).Add(float64(len(batch)))
	return batch, nil
}

func (s *memoryBatchSource) Close() error {
	return nil
}
