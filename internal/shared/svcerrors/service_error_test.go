package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ANA_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("ANA_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "not found ServiceError",
			err:     NewNotFoundError("REP_1001", "report not found", nil),
			wantErr: NewNotFoundError("REP_1001", "report not found", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ANA_9000", nil)),
			wantErr: NewInternalError("ANA_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Categories(t *testing.T) {
	t.Parallel()

	notFound := NewNotFoundError("REP_1001", "report not found", errors.New("missing"))
	assert.True(t, notFound.IsNotFound())
	assert.False(t, notFound.IsInternalError())
	assert.Equal(t, 404, notFound.HttpStatusCode)
	assert.Equal(t, "REP_1001: report not found", notFound.Error())

	internal := NewInternalError("ANA_9000", errors.New("disk"))
	assert.True(t, internal.IsInternalError())
	assert.False(t, internal.IsNotFound())
	assert.EqualError(t, errors.Unwrap(internal), "disk")
}

func TestFromError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromError(nil))

	conflict := NewResourceConflictError("REP_1002", "report already requested", nil)
	assert.Same(t, conflict, FromError(fmt.Errorf("wrapped: %w", conflict)))
	assert.True(t, conflict.IsConflict())

	plain := errors.New("boom")
	undefined := FromError(plain)
	assert.Equal(t, "SYS_9001", undefined.Code)
	assert.Equal(t, "internal server error", undefined.Message)
	assert.ErrorIs(t, undefined, plain)
}

func TestNewInternalErrorFromPanic(t *testing.T) {
	t.Parallel()

	fromString := NewInternalErrorFromPanic("nil map write")
	assert.Equal(t, "SYS_9000", fromString.Code)
	assert.EqualError(t, fromString.Cause, "nil map write")

	cause := errors.New("index out of range")
	fromError := NewInternalErrorFromPanic(cause)
	assert.Same(t, cause, fromError.Cause)
	assert.Equal(t, 500, fromError.HttpStatusCode)
}
