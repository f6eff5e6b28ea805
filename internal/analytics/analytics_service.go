package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lre-analytics/internal/models"
	"lre-analytics/internal/percentiles"
	"lre-analytics/internal/shared/loggers"
	"lre-analytics/internal/shared/metrics"
	"lre-analytics/internal/shared/svcerrors"
	"lre-analytics/internal/shared/ulid"
	"lre-analytics/internal/sources"
)

const (
	DefaultBatchSize = 50_000
	MinBatchSize     = 1
	MaxBatchSize     = 1_000_000
)

// Options are the configured defaults of every run.
type Options struct {
	BatchSize       int
	Strategy        models.Strategy
	Percentiles     []float64
	ExactMinSamples int
	Digest          percentiles.DigestConfig
}

// RunRequest asks for the report of one run. Zero fields fall back to Options.
type RunRequest struct {
	RunID       string
	ReportID    string
	Strategy    models.Strategy
	Percentiles []float64
	BatchSize   int
}

//go:generate mockgen -source=analytics_service.go -destination=./mocks/analytics_service_mock.go -package=mocks
type AnalyticsService interface {
	// Run computes the summary and percentile report of one run. The data source
	// failing aborts the run; per-group failures only zero-fill their row.
	Run(ctx context.Context, req RunRequest) (*models.Report, error)
}

type analyticsService struct {
	catalog sources.Catalog
	opts    Options
}

func NewAnalyticsService(catalog sources.Catalog, opts Options) AnalyticsService {
	return &analyticsService{catalog: catalog, opts: opts}
}

// runPlan is a RunRequest with every default applied and validated.
type runPlan struct {
	runID     string
	reportID  string
	batchSize int
	targets   []float64
	factory   percentiles.AccumulatorFactory
}

func (s *analyticsService) Run(ctx context.Context, req RunRequest) (*models.Report, error) {
	start := time.Now()

	plan, err := s.plan(req)
	if err != nil {
		metricRunsTotal.WithLabelValues(string(req.Strategy), err.Code).Inc()
		return nil, err
	}
	strategy := plan.factory.Strategy()

	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, plan.runID).
		Str(loggers.FieldReportID, plan.reportID).
		Str(loggers.FieldStrategy, string(strategy)).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Int(loggers.FieldBatchSize, plan.batchSize).Msg("started analytics run")

	report, runErr := s.execute(ctx, plan)
	if runErr != nil {
		metricRunsTotal.WithLabelValues(string(strategy), runErr.Code).Inc()
		logger.Error().Err(runErr).Msg("analytics run failed")
		return nil, runErr
	}

	metricRunsTotal.WithLabelValues(string(strategy), metrics.ValueNoError).Inc()
	metricRunDurationSeconds.WithLabelValues(string(strategy)).Observe(time.Since(start).Seconds())
	logger.Info().
		Int(loggers.FieldGroups, len(report.Rows)).
		Int64(loggers.FieldRows, report.Stats.RowsRead).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("completed analytics run")
	return report, nil
}

func (s *analyticsService) execute(ctx context.Context, plan *runPlan) (*models.Report, *svcerrors.ServiceError) {
	run, err := s.catalog.Open(ctx, plan.runID)
	if err != nil {
		switch {
		case errors.Is(err, sources.ErrRunNotFound):
			return nil, errRunNotFound(err)
		case errors.Is(err, sources.ErrInvalidRunID):
			return nil, errInvalidRunRequest("invalid run id", err)
		default:
			return nil, errInternalDataSourceFailed(err)
		}
	}
	defer run.Close()

	summaries, err := run.Summaries(ctx)
	if err != nil {
		return nil, errInternalSummaryFailed(err)
	}
	loggers.Ctx(ctx).Debug().Int(loggers.FieldGroups, len(summaries)).Msg("fetched summary statistics")

	src, err := run.Batches(ctx, plan.batchSize)
	if err != nil {
		return nil, errInternalDataSourceFailed(err)
	}
	defer src.Close()

	result, err := NewOrchestrator(plan.factory, plan.targets).Process(ctx, src)
	if err != nil {
		return nil, errInternalDataSourceFailed(err)
	}

	return &models.Report{
		ReportID:    plan.reportID,
		RunID:       plan.runID,
		Strategy:    plan.factory.Strategy(),
		Targets:     plan.targets,
		Rows:        Merge(summaries, result.Percentiles, plan.targets),
		Stats:       result.Stats,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *analyticsService) plan(req RunRequest) (*runPlan, *svcerrors.ServiceError) {
	if req.RunID == "" {
		return nil, errInvalidRunRequest("runID is required", nil)
	}

	batchSize := req.BatchSize
	if batchSize == 0 {
		batchSize = s.opts.BatchSize
	}
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, errInvalidRunRequest(fmt.Sprintf("batch size must be between %d and %d", MinBatchSize, MaxBatchSize), nil)
	}

	targets := req.Percentiles
	if len(targets) == 0 {
		targets = s.opts.Percentiles
	}
	if len(targets) == 0 {
		targets = models.DefaultPercentileTargets
	}
	if err := ValidateTargets(targets); err != nil {
		return nil, errInvalidRunRequest(err.Error(), err)
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = s.opts.Strategy
	}
	if strategy == "" {
		strategy = models.StrategyExact
	}
	factory, err := percentiles.NewAccumulatorFactory(percentiles.Config{
		Strategy:        strategy,
		ExactMinSamples: s.opts.ExactMinSamples,
		Digest:          s.opts.Digest,
	})
	if err != nil {
		return nil, errInvalidRunRequest(err.Error(), err)
	}

	reportID := req.ReportID
	if reportID == "" {
		reportID = ulid.NewULID()
	}

	return &runPlan{
		runID:     req.RunID,
		reportID:  reportID,
		batchSize: batchSize,
		targets:   targets,
		factory:   factory,
	}, nil
}

// ValidateTargets requires at least one target, each in [0, 100] and listed once.
// Any order is accepted; results come back in the order given.
func ValidateTargets(targets []float64) error {
	if len(targets) == 0 {
		return errors.New("at least one percentile target is required")
	}
	seen := make(map[float64]struct{}, len(targets))
	for _, t := range targets {
		if !(t >= 0 && t <= 100) {
			return fmt.Errorf("percentile target %v out of range [0, 100]", t)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("percentile target %v listed twice", t)
		}
		seen[t] = struct{}{}
	}
	return nil
}
