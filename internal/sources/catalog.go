package sources

import (
	"fmt"

	"lre-analytics/internal/shared/validators"
)

// Config selects where run data lives and how it is read.
type Config struct {
	Driver     string
	RunsDir    string
	FileFormat string
}

// ValidateRunID rejects IDs that could escape the runs directory.
func ValidateRunID(runID string) error {
	if !validators.IsSafeID(runID) {
		return fmt.Errorf("%w: %q", ErrInvalidRunID, runID)
	}
	return nil
}

// NewCatalog returns the catalog of the configured driver.
func NewCatalog(cfg Config) (Catalog, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return NewSQLiteCatalog(cfg.RunsDir), nil
	case DriverDuckDB:
		if cfg.FileFormat != FormatParquet && cfg.FileFormat != FormatCSV {
			return nil, fmt.Errorf("%w: duckdb needs file format parquet or csv, got %q", ErrUnknownDriver, cfg.FileFormat)
		}
		return NewDuckDBCatalog(cfg.RunsDir, cfg.FileFormat), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
