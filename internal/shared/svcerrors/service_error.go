package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument  = "invalid_argument"
	categoryResourceConflict = "resource_conflict"
	categoryNotFound         = "not_found"
	categoryInternal         = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"

	messageInternal = "internal server error"
)

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
//
// The code and message are persisted on failed report jobs, so both must stay stable and
// safe to show to clients.
type ServiceError struct {
	Category       string // invalid_argument, resource_conflict, not_found or internal
	Code           string // service-owned stable code (e.g. ANA_1000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int
}

func newServiceError(category, code, message string, cause error, status int) *ServiceError {
	return &ServiceError{
		Category:       category,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: status,
	}
}

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryInvalidArgument, code, message, cause, http.StatusBadRequest)
}

// NewResourceConflictError creates a new ServiceError with category resource_conflict.
func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryResourceConflict, code, message, cause, http.StatusConflict)
}

// NewNotFoundError creates a new ServiceError with category not_found.
func NewNotFoundError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryNotFound, code, message, cause, http.StatusNotFound)
}

// NewInternalError creates a new ServiceError with category internal. The cause never
// reaches clients.
func NewInternalError(code string, cause error) *ServiceError {
	return newServiceError(categoryInternal, code, messageInternal, cause, http.StatusInternalServerError)
}

// NewInternalErrorUndefined wraps an error that no service classified (SYS_9001).
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

// NewInternalErrorPanic wraps a recovered panic (SYS_9000).
func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// NewInternalErrorFromPanic converts a recovered panic value into a SYS_9000 error.
func NewInternalErrorFromPanic(p any) *ServiceError {
	if err, ok := p.(error); ok {
		return NewInternalErrorPanic(err)
	}
	return NewInternalErrorPanic(fmt.Errorf("%v", p))
}

// AsServiceError extracts a ServiceError from the error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// FromError returns the ServiceError in err's chain, or err wrapped as SYS_9001.
// It returns nil for a nil err.
func FromError(err error) *ServiceError {
	if err == nil {
		return nil
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr
	}
	return NewInternalErrorUndefined(err)
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsNotFound() bool {
	return e.Category == categoryNotFound
}

func (e *ServiceError) IsConflict() bool {
	return e.Category == categoryResourceConflict
}
