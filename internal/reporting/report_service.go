package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"lre-analytics/internal/analytics"
	"lre-analytics/internal/events"
	"lre-analytics/internal/models"
	"lre-analytics/internal/shared/loggers"
	"lre-analytics/internal/shared/metrics"
	"lre-analytics/internal/shared/svcerrors"
	"lre-analytics/internal/shared/ulid"
	"lre-analytics/internal/shared/validators"
	"lre-analytics/internal/stores"
	"lre-analytics/internal/streams"
)

const maxRequestBytes = 64 * 1024

// ReportAccepted is returned once a report job is stored and queued.
type ReportAccepted struct {
	ReportID string `json:"reportId"`
	RunID    string `json:"runId"`
	Status   string `json:"status"`
}

// ReportListItem describes one report of a run without its rows.
type ReportListItem struct {
	ReportID    string              `json:"reportId"`
	Status      models.ReportStatus `json:"status"`
	ErrorCode   string              `json:"errorCode,omitempty"`
	RequestedAt time.Time           `json:"requestedAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// reportRequest is the optional JSON body of a report request.
//
// Example:
//
//	{"strategy": "digest", "percentiles": [50, 90, 99], "batchSize": 20000}
type reportRequest struct {
	Strategy    string    `json:"strategy" validate:"omitempty,oneof=exact digest"`
	Percentiles []float64 `json:"percentiles" validate:"omitempty,max=32,dive,gte=0,lte=100"`
	BatchSize   int       `json:"batchSize" validate:"omitempty,min=1,max=1000000"`
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// RequestReport stores a pending report job for runID and queues it for building.
	// A non-empty idempotencyKey becomes the report ID; reusing it is a conflict.
	RequestReport(ctx context.Context, runID string, idempotencyKey string, r io.Reader) (*ReportAccepted, error)
	GetReport(ctx context.Context, runID, reportID string) (*models.ReportJob, error)
	ListReports(ctx context.Context, runID string) ([]ReportListItem, error)
}

type reportService struct {
	reportStore       stores.ReportStore
	reportJobProducer streams.ReportJobProducer
	validate          *validators.Validate
	now               func() time.Time
}

func NewReportService(reportStore stores.ReportStore, reportJobProducer streams.ReportJobProducer) ReportService {
	return &reportService{
		reportStore:       reportStore,
		reportJobProducer: reportJobProducer,
		validate:          validators.New(),
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) RequestReport(ctx context.Context, runID string, idempotencyKey string, r io.Reader) (*ReportAccepted, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started report request with run ID: %s, idempotency key: %s", runID, idempotencyKey)

	if !validators.IsSafeID(runID) {
		return nil, s.reject(errValidationFailed("runID must be 1-128 characters of [A-Za-z0-9_.-]", nil))
	}

	req, svcErr := s.parseRequest(r)
	if svcErr != nil {
		return nil, s.reject(svcErr)
	}

	requestedAt := s.now()
	reportID := strings.TrimSpace(idempotencyKey)
	if reportID == "" {
		reportID = ulid.NewULIDAt(requestedAt)
	} else if !validators.IsSafeID(reportID) {
		return nil, s.reject(errValidationFailed("idempotency key must be 1-128 characters of [A-Za-z0-9_.-]", nil))
	}

	job := models.NewPendingReportJob(runID, reportID, requestedAt)
	if err := s.reportStore.Create(ctx, job); err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExists) {
			return nil, s.reject(errReportAlreadyRequested(err))
		}
		return nil, s.reject(errInternalReportStoreFailed(err))
	}

	event := &events.ReportRequestedEvent{
		ReportID:    reportID,
		RunID:       runID,
		Strategy:    models.Strategy(req.Strategy),
		Percentiles: req.Percentiles,
		BatchSize:   req.BatchSize,
		RequestedAt: requestedAt,
	}
	if err := s.reportJobProducer.Produce(ctx, event); err != nil {
		svcErr := errInternalReportPublisherFailed(err)
		job.Fail(svcErr.Code, "report could not be queued", s.now())
		if saveErr := s.reportStore.Save(ctx, job); saveErr != nil {
			logger.Error().Err(saveErr).Str(loggers.FieldReportID, reportID).Msg("failed to mark unqueued report as failed")
		}
		return nil, s.reject(svcErr)
	}

	metricReportRequestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().Str(loggers.FieldRunID, runID).Str(loggers.FieldReportID, reportID).Msg("report requested")
	return &ReportAccepted{ReportID: reportID, RunID: runID, Status: string(job.Status)}, nil
}

func (s *reportService) GetReport(ctx context.Context, runID, reportID string) (*models.ReportJob, error) {
	if !validators.IsSafeID(runID) || !validators.IsSafeID(reportID) {
		return nil, errValidationFailed("runID and reportID must be 1-128 characters of [A-Za-z0-9_.-]", nil)
	}

	job, err := s.reportStore.Get(ctx, runID, reportID)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return nil, errReportNotFound(err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return job, nil
}

func (s *reportService) ListReports(ctx context.Context, runID string) ([]ReportListItem, error) {
	if !validators.IsSafeID(runID) {
		return nil, errValidationFailed("runID must be 1-128 characters of [A-Za-z0-9_.-]", nil)
	}

	reportIDs, err := s.reportStore.List(ctx, runID)
	if err != nil {
		return nil, errInternalReportStoreFailed(err)
	}

	items := make([]ReportListItem, 0, len(reportIDs))
	for _, reportID := range reportIDs {
		job, err := s.reportStore.Get(ctx, runID, reportID)
		if err != nil {
			if errors.Is(err, stores.ErrReportNotFound) {
				continue
			}
			return nil, errInternalReportStoreFailed(err)
		}
		items = append(items, ReportListItem{
			ReportID:    job.ReportID,
			Status:      job.Status,
			ErrorCode:   job.ErrorCode,
			RequestedAt: job.RequestedAt,
			UpdatedAt:   job.UpdatedAt,
		})
	}
	// idempotency keys are not time-ordered like ULIDs
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RequestedAt.Before(items[j].RequestedAt)
	})
	return items, nil
}

func (s *reportService) parseRequest(r io.Reader) (*reportRequest, *svcerrors.ServiceError) {
	req := &reportRequest{}
	if r == nil {
		return req, nil
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxRequestBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxRequestBytes {
		return nil, errValidationFailed("request body too large: must be <= 64KB", nil)
	}
	if len(strings.TrimSpace(string(buf))) == 0 {
		return req, nil
	}

	decoder := json.NewDecoder(strings.NewReader(string(buf)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, errValidationFailed(formatValidationError(err), err)
	}
	if req.Strategy != "" {
		strategy, err := models.NewStrategyFromString(req.Strategy)
		if err != nil {
			return nil, errValidationFailed(err.Error(), err)
		}
		req.Strategy = string(strategy)
	}
	if len(req.Percentiles) > 0 {
		if err := analytics.ValidateTargets(req.Percentiles); err != nil {
			return nil, errValidationFailed(err.Error(), err)
		}
	}
	return req, nil
}

func (s *reportService) reject(svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	metricReportRequestedTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}
