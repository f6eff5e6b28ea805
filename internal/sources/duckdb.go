package sources

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/marcboeker/go-duckdb/v2"
)

const (
	DriverDuckDB = "duckdb"

	FormatParquet = "parquet"
	FormatCSV     = "csv"
)

type duckdbCatalog struct {
	runsDir string
	format  string
}

// NewDuckDBCatalog serves runs exported as flat files at <runsDir>/<runID>.<format>.
func NewDuckDBCatalog(runsDir, format string) Catalog {
	return &duckdbCatalog{runsDir: runsDir, format: format}
}

func (c *duckdbCatalog) Open(ctx context.Context, runID string) (Run, error) {
	if err := ValidateRunID(runID); err != nil {
		return nil, err
	}
	path := filepath.Join(c.runsDir, runID+"."+c.format)
	if err := checkReadable(path); err != nil {
		return nil, err
	}
	return OpenExportFile(ctx, path, c.format)
}

// OpenExportFile queries a parquet or csv measurement export through an in-memory DuckDB.
func OpenExportFile(ctx context.Context, path, format string) (Run, error) {
	relation, err := exportRelation(format, path)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(DriverDuckDB, "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect duckdb: %w", err)
	}

	return &sqlRun{
		db:                 db,
		driver:             DriverDuckDB,
		responseTimesQuery: fmt.Sprintf(exportResponseTimesQuery, relation),
		summaryQuery:       fmt.Sprintf(exportSummaryQuery, relation),
	}, nil
}
