package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) FileStorage {
	t.Helper()
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

func readKey(t *testing.T, storage FileStorage, key string) string {
	t.Helper()
	rc, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(content)
}

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	validKeys := []string{
		"report.json",
		"reports/4711/01JAB8Q8T0Q6M4V3CJ4Y1X2Z9K.json",
		"nested/deep/path/file.txt",
		"file-with-dashes.txt",
		"file_with_underscores.txt",
		"file.with.dots.txt",
		"..hidden/file",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			result, err := storage.Put(context.Background(), key, strings.NewReader("payload"), PutOptions{})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, "payload", string(content))
		})
	}
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"reports/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(context.Background(), key, strings.NewReader("data"), PutOptions{})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestPut_Overwrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		allowOverwrite bool
		wantErr        error
		wantContent    string
	}{
		{name: "create only keeps the first write", allowOverwrite: false, wantErr: ErrFileAlreadyExists, wantContent: "pending"},
		{name: "overwrite replaces content", allowOverwrite: true, wantContent: "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage := newTestStorage(t)
			ctx := context.Background()
			key := "reports/4711/rep.json"

			_, err := storage.Put(ctx, key, strings.NewReader("pending"), PutOptions{})
			require.NoError(t, err)

			_, err = storage.Put(ctx, key, strings.NewReader("completed"), PutOptions{AllowOverwrite: tt.allowOverwrite})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantContent, readKey(t, storage, key))

			keys, err := storage.List(ctx, "reports/4711")
			require.NoError(t, err)
			assert.Equal(t, []string{"reports/4711/rep.json"}, keys, "temp files must not linger")
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestStorage(t).Get(context.Background(), "nonexistent.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutGet_LargeData(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	data := strings.Repeat("A", 5*1024*1024)

	_, err := storage.Put(context.Background(), "large.json", strings.NewReader(data), PutOptions{})
	require.NoError(t, err)
	assert.Equal(t, data, readKey(t, storage, "large.json"))
}

func TestList(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()
	for _, key := range []string{"reports/42/b.json", "reports/42/a.json", "reports/42/nested/c.json", "reports/7/x.json"} {
		_, err := storage.Put(ctx, key, strings.NewReader("{}"), PutOptions{})
		require.NoError(t, err)
	}

	keys, err := storage.List(ctx, "reports/42")
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/42/a.json", "reports/42/b.json"}, keys)

	keys, err = storage.List(ctx, "reports/missing")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = storage.List(ctx, "../outside")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
