package reporting

import (
	"errors"
	"fmt"
	"strings"

	"lre-analytics/internal/shared/svcerrors"
	"lre-analytics/internal/shared/validators"
)

// ReportService errors
const (
	codeValidationFailed       = "REP_1000"
	codeReportNotFound         = "REP_1001"
	codeReportAlreadyRequested = "REP_1002"

	codeInternalReportStoreFailed     = "REP_9000"
	codeInternalReportPublisherFailed = "REP_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

func errReportNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "report not found", cause)
}

// errReportAlreadyRequested returns an error when the idempotency key was already used for this run.
func errReportAlreadyRequested(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyRequested, "report already requested", cause)
}

// errInternalReportStoreFailed returns an error when a report store operation fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

// errInternalReportPublisherFailed returns an error when the report job cannot be queued.
func errInternalReportPublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportPublisherFailed, fmt.Errorf("reportJobPublisherFailed: %w", cause))
}

// formatValidationError turns validator errors into "field (tag=param)" pairs.
func formatValidationError(err error) string {
	var ve validators.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		field := strings.ToLower(e.Field())
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s (%s)", field, e.Tag()))
		}
	}
	return "invalid request: " + strings.Join(parts, ", ")
}
