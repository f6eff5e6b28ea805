package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"lre-analytics/internal/models"
	"lre-analytics/internal/shared/filestorages"

	"github.com/jellydator/ttlcache/v3"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportAlreadyExists = errors.New("report already exists")
)

// ReportStore persists report jobs as JSON documents at reports/<runID>/<reportID>.json.
// Reads go through an in-process TTL cache; writes update file and cache together.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Create stores a new job and fails with ErrReportAlreadyExists when the ID is taken.
	Create(ctx context.Context, job *models.ReportJob) error
	// Save overwrites the stored job.
	Save(ctx context.Context, job *models.ReportJob) error
	Get(ctx context.Context, runID, reportID string) (*models.ReportJob, error)
	// List returns the IDs of every report stored for runID, oldest ULID first.
	List(ctx context.Context, runID string) ([]string, error)
}

// CacheOptions bounds the read cache of a ReportStore.
type CacheOptions struct {
	TTL      time.Duration
	Capacity uint64
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
	cache       *ttlcache.Cache[string, *models.ReportJob]
}

func NewReportStore(fileStorage filestorages.FileStorage, opts CacheOptions) ReportStore {
	cacheOpts := []ttlcache.Option[string, *models.ReportJob]{
		ttlcache.WithTTL[string, *models.ReportJob](opts.TTL),
	}
	if opts.Capacity > 0 {
		cacheOpts = append(cacheOpts, ttlcache.WithCapacity[string, *models.ReportJob](opts.Capacity))
	}
	return &reportStore{
		fileStorage: fileStorage,
		dir:         "reports",
		cache:       ttlcache.New(cacheOpts...),
	}
}

func (s *reportStore) Create(ctx context.Context, job *models.ReportJob) error {
	err := s.put(ctx, job, filestorages.PutOptions{AllowOverwrite: false})
	if errors.Is(err, filestorages.ErrFileAlreadyExists) {
		return ErrReportAlreadyExists
	}
	return err
}

func (s *reportStore) Save(ctx context.Context, job *models.ReportJob) error {
	return s.put(ctx, job, filestorages.PutOptions{AllowOverwrite: true})
}

func (s *reportStore) put(ctx context.Context, job *models.ReportJob, opts filestorages.PutOptions) error {
	jsonData, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal report job: %w", err)
	}

	key := s.getKey(job.RunID, job.ReportID)
	if _, err := s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), opts); err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to put report job: %w", err)
	}

	cached := *job
	s.cache.Set(key, &cached, ttlcache.DefaultTTL)
	return nil
}

func (s *reportStore) Get(ctx context.Context, runID, reportID string) (*models.ReportJob, error) {
	key := s.getKey(runID, reportID)
	if item := s.cache.Get(key); item != nil {
		job := *item.Value()
		return &job, nil
	}

	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report job: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report job: %w", err)
	}
	var job models.ReportJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report job: %w", err)
	}

	cached := job
	s.cache.Set(key, &cached, ttlcache.DefaultTTL)
	return &job, nil
}

func (s *reportStore) List(ctx context.Context, runID string) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, fmt.Sprintf("%s/%s", s.dir, runID))
	if err != nil {
		return nil, fmt.Errorf("failed to list report jobs: %w", err)
	}

	reportIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		if path.Ext(key) != ".json" {
			continue
		}
		reportIDs = append(reportIDs, strings.TrimSuffix(path.Base(key), ".json"))
	}
	return reportIDs, nil
}

func (s *reportStore) getKey(runID, reportID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, runID, reportID)
}
