package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"lre-analytics/internal/models"
	"lre-analytics/internal/shared/filestorages"
	"lre-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var cacheOptions = CacheOptions{TTL: time.Minute, Capacity: 16}

func pendingJob() *models.ReportJob {
	return models.NewPendingReportJob("4711", "rep-1", time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
}

func TestReportStore_Create_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, cacheOptions)

	ctx := context.Background()
	job := pendingJob()
	expectedJSON, _ := json.Marshal(job)

	mockFileStorage.EXPECT().
		Put(ctx, "reports/4711/rep-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	require.NoError(t, store.Create(ctx, job))

	// served from cache: no Get on the file storage
	got, err := store.Get(ctx, "4711", "rep-1")
	require.NoError(t, err)
	assert.Equal(t, job, got)
	assert.NotSame(t, job, got)
}

func TestReportStore_Create_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, cacheOptions)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), "reports/4711/rep-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Create(context.Background(), pendingJob())
	assert.ErrorIs(t, err, ErrReportAlreadyExists)
}

func TestReportStore_Save_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, cacheOptions)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), "reports/4711/rep-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		Return(nil, errors.New("storage error"))

	err := store.Save(context.Background(), pendingJob())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put report job")
	assert.Contains(t, err.Error(), "storage error")
}

func TestReportStore_Save_UpdatesCachedJob(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, cacheOptions)
	ctx := context.Background()

	mockFileStorage.EXPECT().Put(ctx, "reports/4711/rep-1.json", gomock.Any(), gomock.Any()).
		Return(&filestorages.PutResult{}, nil).Times(2)

	job := pendingJob()
	require.NoError(t, store.Create(ctx, job))
	job.Complete(&models.Report{ReportID: "rep-1", RunID: "4711"}, job.RequestedAt.Add(time.Second))
	require.NoError(t, store.Save(ctx, job))

	got, err := store.Get(ctx, "4711", "rep-1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusCompleted, got.Status)
}

func TestReportStore_Get_ReadsThroughOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, cacheOptions)
	ctx := context.Background()

	job := pendingJob()
	job.Fail("ANA_1001", "run not found", job.RequestedAt.Add(time.Second))
	jsonData, _ := json.Marshal(job)

	mockFileStorage.EXPECT().
		Get(ctx, "reports/4711/rep-1.json").
		Return(io.NopCloser(bytes.NewReader(jsonData)), nil).
		Times(1)

	for i := 0; i < 3; i++ {
		got, err := store.Get(ctx, "4711", "rep-1")
		require.NoError(t, err)
		assert.Equal(t, models.ReportStatusFailed, got.Status)
		assert.Equal(t, "ANA_1001", got.ErrorCode)
		assert.True(t, job.UpdatedAt.Equal(got.UpdatedAt))
	}
}

func TestReportStore_Get_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		readCloser io.ReadCloser
		getErr     error
		wantIs     error
		wantMsg    string
	}{
		{name: "not found", getErr: filestorages.ErrFileNotFound, wantIs: ErrReportNotFound},
		{name: "storage error", getErr: errors.New("storage error"), wantMsg: "failed to get report job"},
		{name: "read error", readCloser: io.NopCloser(&errorReader{err: errors.New("read error")}), wantMsg: "failed to read report job"},
		{name: "corrupt document", readCloser: io.NopCloser(bytes.NewReader([]byte("{"))), wantMsg: "failed to unmarshal report job"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store := NewReportStore(mockFileStorage, cacheOptions)
			mockFileStorage.EXPECT().Get(gomock.Any(), "reports/4711/rep-1.json").Return(tt.readCloser, tt.getErr)

			got, err := store.Get(context.Background(), "4711", "rep-1")
			assert.Nil(t, got)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestReportStore_List(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, cacheOptions)

	mockFileStorage.EXPECT().List(gomock.Any(), "reports/4711").
		Return([]string{"reports/4711/rep-1.json", "reports/4711/notes.txt", "reports/4711/rep-2.json"}, nil)

	ids, err := store.List(context.Background(), "4711")
	require.NoError(t, err)
	assert.Equal(t, []string{"rep-1", "rep-2"}, ids)
}

func TestReportStore_WithRealFileStorage(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	writer := NewReportStore(fileStorage, cacheOptions)
	require.NoError(t, writer.Create(ctx, pendingJob()))
	assert.ErrorIs(t, writer.Create(ctx, pendingJob()), ErrReportAlreadyExists)

	// a second store has a cold cache and reads the document from disk
	reader := NewReportStore(fileStorage, cacheOptions)
	got, err := reader.Get(ctx, "4711", "rep-1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, got.Status)

	ids, err := reader.List(ctx, "4711")
	require.NoError(t, err)
	assert.Equal(t, []string{"rep-1"}, ids)
}

type errorReader struct {
	err error
}

func (r *errorReader) Read(p []byte) (n int, err error) {
	return 0, r.err
}
