package sources

import "errors"

var (
	ErrRunNotFound      = errors.New("run not found")
	ErrInvalidRunID     = errors.New("invalid run id")
	ErrUnknownDriver    = errors.New("unknown source driver")
	ErrInvalidBatchSize = errors.New("invalid batch size")
)
