package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository/memory"
	"workout-tracker/internal/service"
)

// fakeObjectStorage captures puts and serves canned download URLs.
type fakeObjectStorage struct {
	objects map[string][]byte
	putErr  error
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: map[string][]byte{}}
}

func (f *fakeObjectStorage) PutObject(_ context.Context, key, _ string, body []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = body
	return nil
}

func (f *fakeObjectStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.example/" + key + "?signed", nil
}

func (f *fakeObjectStorage) DeleteObject(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func TestExportHistory(t *testing.T) {
	store := memory.NewStore()
	objects := newFakeObjectStorage()
	workouts := service.NewWorkoutService(store, store, store)
	exports := service.NewExportService(store, objects, 0)
	ctx := context.Background()

	for _, day := range []int{1, 2, 3} {
		_, err := workouts.LogWorkout(ctx, "user-1", service.LogDraft{DayNumber: day})
		require.NoError(t, err)
	}

	url, count, err := exports.ExportHistory(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.True(t, strings.HasPrefix(url, "https://storage.example/exports/user-1/"), url)

	require.Len(t, objects.objects, 1)
	for _, payload := range objects.objects {
		var exported []domain.LoggedWorkout
		require.NoError(t, json.Unmarshal(payload, &exported))
		assert.Len(t, exported, 3)
	}
}

func TestExportHistoryEmptyLog(t *testing.T) {
	store := memory.NewStore()
	objects := newFakeObjectStorage()
	exports := service.NewExportService(store, objects, 0)

	url, count, err := exports.ExportHistory(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.NotEmpty(t, url)
}

func TestExportHistoryStorageFault(t *testing.T) {
	store := memory.NewStore()
	objects := newFakeObjectStorage()
	objects.putErr = assert.AnError
	exports := service.NewExportService(store, objects, 0)

	_, _, err := exports.ExportHistory(context.Background(), "user-1")
	assert.ErrorIs(t, err, service.ErrExportFailed)
}
