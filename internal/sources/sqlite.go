package sources

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const DriverSQLite = "sqlite"

// sqlitePragmas tune large sequential reads; they are applied on every new connection.
var sqlitePragmas = []string{
	"cache_size(-100000)",
	"mmap_size(268435456)",
	"temp_store(MEMORY)",
	"query_only(1)",
}

type sqliteCatalog struct {
	runsDir string
}

// NewSQLiteCatalog serves runs stored as LRE result databases at <runsDir>/<runID>.db.
func NewSQLiteCatalog(runsDir string) Catalog {
	return &sqliteCatalog{runsDir: runsDir}
}

func (c *sqliteCatalog) Open(ctx context.Context, runID string) (Run, error) {
	if err := ValidateRunID(runID); err != nil {
		return nil, err
	}
	path := filepath.Join(c.runsDir, runID+".db")
	if err := checkReadable(path); err != nil {
		return nil, err
	}
	return OpenSQLiteFile(ctx, path)
}

// OpenSQLiteFile opens an LRE result database read-only.
func OpenSQLiteFile(ctx context.Context, path string) (Run, error) {
	db, err := sqlx.Open(DriverSQLite, sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect sqlite database: %w", err)
	}
	return NewSQLRun(db, DriverSQLite), nil
}

// NewSQLRun serves a run from an already opened LRE result database.
func NewSQLRun(db *sqlx.DB, driver string) Run {
	return &sqlRun{
		db:                 db,
		driver:             driver,
		responseTimesQuery: sqliteResponseTimesQuery,
		summaryQuery:       sqliteSummaryQuery,
	}
}

func sqliteDSN(path string) string {
	query := url.Values{}
	query.Set("mode", "ro")
	for _, pragma := range sqlitePragmas {
		query.Add("_pragma", pragma)
	}
	return "file:" + path + "?" + query.Encode()
}

func checkReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRunNotFound, filepath.Base(path))
		}
		return fmt.Errorf("failed to stat run data: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrRunNotFound, filepath.Base(path))
	}
	return nil
}
