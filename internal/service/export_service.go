package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"workout-tracker/internal/repository"
	"workout-tracker/internal/storage"
)

var ErrExportFailed = errors.New("failed to export workout history")

// ExportService snapshots a user's logged history into object storage
// and hands back a short-lived download link.
type ExportService interface {
	ExportHistory(ctx context.Context, userID string) (url string, count int, err error)
}

type exportService struct {
	workoutRepo repository.WorkoutRepository
	objects     storage.ObjectStorage
	urlExpiry   time.Duration
	now         func() time.Time
}

// NewExportService creates a new export service.
func NewExportService(workoutRepo repository.WorkoutRepository, objects storage.ObjectStorage, urlExpiry time.Duration) ExportService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		workoutRepo: workoutRepo,
		objects:     objects,
		urlExpiry:   urlExpiry,
		now:         time.Now,
	}
}

// ExportHistory serializes the caller's full log to JSON, stores it
// under a per-user key, and returns a presigned download URL.
func (s *exportService) ExportHistory(ctx context.Context, userID string) (string, int, error) {
	workouts, err := s.workoutRepo.List(ctx, userID)
	if err != nil {
		return "", 0, err
	}

	payload, err := json.MarshalIndent(workouts, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	objectKey := fmt.Sprintf("exports/%s/%s.json", userID, s.now().UTC().Format("20060102T150405Z"))
	if err := s.objects.PutObject(ctx, objectKey, "application/json", payload); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	url, err := s.objects.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return url, len(workouts), nil
}
