package sources

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math"

	"lre-analytics/internal/models"

	"github.com/jmoiron/sqlx"
)

type measurementRecord struct {
	models.GroupKey
	ResponseTime float64 `db:"response_time"`
	Count        float64 `db:"count"`
}

type summaryRecord struct {
	models.GroupKey
	TransactionCount int64           `db:"transaction_count"`
	Minimum          sql.NullFloat64 `db:"minimum"`
	Maximum          sql.NullFloat64 `db:"maximum"`
	PassWeight       float64         `db:"pass_weight"`
	PassSum          float64         `db:"pass_sum"`
	PassSumSquares   float64         `db:"pass_sum_squares"`
	Pass             int64           `db:"pass"`
	Fail             int64           `db:"fail"`
}

// toSummaryRow derives the weighted mean and population standard deviation of the
// passed samples, rounded to 3 decimals like every other statistic of the row.
func (r summaryRecord) toSummaryRow() models.SummaryRow {
	var mean, std float64
	if r.PassWeight > 0 {
		mean = r.PassSum / r.PassWeight
		std = math.Sqrt(math.Max(0, r.PassSumSquares/r.PassWeight-mean*mean))
	}
	return models.SummaryRow{
		GroupKey:         r.GroupKey,
		TransactionCount: r.TransactionCount,
		Minimum:          round3(r.Minimum.Float64),
		Average:          round3(mean),
		Maximum:          round3(r.Maximum.Float64),
		StdDeviation:     round3(std),
		Pass:             r.Pass,
		Fail:             r.Fail,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// sqlRun serves a run from any database/sql driver through sqlx.
type sqlRun struct {
	db                 *sqlx.DB
	driver             string
	responseTimesQuery string
	summaryQuery       string
}

func (r *sqlRun) Summaries(ctx context.Context) ([]models.SummaryRow, error) {
	var records []summaryRecord
	if err := r.db.SelectContext(ctx, &records, r.summaryQuery); err != nil {
		return nil, fmt.Errorf("failed to query %s summary: %w", r.driver, err)
	}

	rows := make([]models.SummaryRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.toSummaryRow())
	}
	return rows, nil
}

func (r *sqlRun) Batches(ctx context.Context, batchSize int) (BatchSource, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}
	rows, err := r.db.QueryxContext(ctx, r.responseTimesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s response times: %w", r.driver, err)
	}
	return &sqlBatchSource{rows: rows, batchSize: batchSize, driver: r.driver}, nil
}

func (r *sqlRun) Close() error {
	return r.db.Close()
}

// sqlBatchSource streams a single cursor; only one batch is held in memory.
type sqlBatchSource struct {
	rows      *sqlx.Rows
	batchSize int
	driver    string
	done      bool
}

func (s *sqlBatchSource) Next(ctx context.Context) (models.Batch, error) {
	if s.done {
		return nil, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch := make(models.Batch, 0, min(s.batchSize, 4096))
	var record measurementRecord
	for len(batch) < s.batchSize && s.rows.Next() {
		if err := s.rows.StructScan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan %s measurement row: %w", s.driver, err)
		}
		batch = append(batch, models.MeasurementRow{
			Key:    record.GroupKey,
			Value:  record.ResponseTime,
			Weight: record.Count,
		})
	}

	if len(batch) < s.batchSize {
		if err := s.rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s measurement rows: %w", s.driver, err)
		}
		s.done = true
	}
	if len(batch) == 0 {
		return nil, io.EOF
	}

	metricBatchesReadTotal.WithLabelValues(s.driver).Inc()
	metricRowsReadTotal.WithLabelValues(s.driver).Add(float64(len(batch)))
	return batch, nil
}

func (s *sqlBatchSource) Close() error {
	return s.rows.Close()
}
