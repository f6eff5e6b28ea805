package builders

import (
	"context"
	"errors"
	"time"

	"lre-analytics/internal/analytics"
	"lre-analytics/internal/events"
	"lre-analytics/internal/models"
	"lre-analytics/internal/shared/loggers"
	"lre-analytics/internal/shared/metrics"
	"lre-analytics/internal/shared/svcerrors"
	"lre-analytics/internal/stores"
)

// ReportBuilder turns a ReportRequestedEvent into a completed or failed ReportJob.
//
//go:generate mockgen -source=report_builder.go -destination=./mocks/report_builder_mock.go -package=mocks
type ReportBuilder interface {
	Build(ctx context.Context, event *events.ReportRequestedEvent) *svcerrors.ServiceError
}

type reportBuilder struct {
	analyticsService analytics.AnalyticsService
	reportStore      stores.ReportStore
	now              func() time.Time
}

func NewReportBuilder(analyticsService analytics.AnalyticsService, reportStore stores.ReportStore) ReportBuilder {
	return &reportBuilder{
		analyticsService: analyticsService,
		reportStore:      reportStore,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (b *reportBuilder) Build(ctx context.Context, event *events.ReportRequestedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)

	job, err := b.reportStore.Get(ctx, event.RunID, event.ReportID)
	switch {
	case errors.Is(err, stores.ErrReportNotFound):
		job = models.NewPendingReportJob(event.RunID, event.ReportID, event.RequestedAt)
	case err != nil:
		return b.record(event, errInternalReportStoreFailed(err))
	case job.IsDone():
		logger.Info().Str("status", string(job.Status)).Msg("report already built, skipping")
		metricReportsBuiltTotal.WithLabelValues(string(event.Strategy), codeSkipped).Inc()
		return nil
	}

	report, runErr := b.analyticsService.Run(ctx, analytics.RunRequest{
		RunID:       event.RunID,
		ReportID:    event.ReportID,
		Strategy:    event.Strategy,
		Percentiles: event.Percentiles,
		BatchSize:   event.BatchSize,
	})

	var buildErr *svcerrors.ServiceError
	if runErr != nil {
		svcErr := svcerrors.FromError(runErr)
		job.Fail(svcErr.Code, svcErr.Message, b.now())
		buildErr = svcErr
	} else {
		job.Complete(report, b.now())
	}

	if err := b.reportStore.Save(ctx, job); err != nil {
		logger.Error().Err(err).Msg("failed to save report job")
		return b.record(event, errInternalReportStoreFailed(err))
	}

	if buildErr != nil {
		logger.Warn().Str(loggers.FieldErrorCode, buildErr.Code).Msg("report failed")
		return b.record(event, buildErr)
	}
	logger.Info().Int(loggers.FieldGroups, len(report.Rows)).Msg("report completed")
	return b.record(event, nil)
}

func (b *reportBuilder) record(event *events.ReportRequestedEvent, svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	code := metrics.ValueNoError
	if svcErr != nil {
		code = svcErr.Code
	}
	metricReportsBuiltTotal.WithLabelValues(string(event.Strategy), code).Inc()
	return svcErr
}
