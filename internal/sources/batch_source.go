package sources

import (
	"context"

	"lre-analytics/internal/models"
)

// BatchSource yields the measurement rows of one run in batches of at most the
// configured size. Next returns io.EOF once the rows are exhausted; a batch is
// either returned whole or not at all.
//
//go:generate mockgen -source=batch_source.go -destination=./mocks/batch_source_mock.go -package=mocks
type BatchSource interface {
	Next(ctx context.Context) (models.Batch, error)
	Close() error
}

// SummaryProvider returns one summary row per group, unique by GroupKey.
type SummaryProvider interface {
	Summaries(ctx context.Context) ([]models.SummaryRow, error)
}

// Run is the measurement data of one load-test run, opened through a Catalog.
type Run interface {
	SummaryProvider
	Batches(ctx context.Context, batchSize int) (BatchSource, error)
	Close() error
}

// Catalog resolves run IDs to their measurement data.
type Catalog interface {
	Open(ctx context.Context, runID string) (Run, error)
}
