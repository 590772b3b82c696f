package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
	"workout-tracker/internal/rotation"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrMissingDayNumber = errors.New("missing required field: dayNumber")
	ErrMissingExercise  = errors.New("missing required fields: dayNumber and exercise")
)

// LogDraft is the input for logging a completed session.
type LogDraft struct {
	DayNumber int
	DayName   string
	Date      string
	Mode      domain.Mode
	Exercises []domain.CompletedExercise
}

// ImportDraft is one item of a bulk import. Unlike LogDraft it may carry
// a caller-supplied id and timestamp from the system being migrated.
type ImportDraft struct {
	ID        string
	DayNumber int
	DayName   string
	Date      string
	Mode      domain.Mode
	Exercises []domain.CompletedExercise
	Timestamp time.Time
}

// LegacyDraft is the input of the pre-rework create endpoint: a single
// exercise entry rather than a whole session.
type LegacyDraft struct {
	DayNumber int
	Exercise  string
	Weight    float64
	Reps      int
	Sets      int
	Date      string
}

// WorkoutService owns the logged-workout and current-day flows.
type WorkoutService interface {
	LogWorkout(ctx context.Context, userID string, draft LogDraft) (*domain.LoggedWorkout, error)
	LogLegacyWorkout(ctx context.Context, userID string, draft LegacyDraft) (*domain.LoggedWorkout, error)
	ImportWorkouts(ctx context.Context, userID string, drafts []ImportDraft) (*repository.BulkResult, error)
	ListHistory(ctx context.Context, userID string) ([]domain.LoggedWorkout, error)
	ListHistoryByDay(ctx context.Context, userID string, dayNumber int) ([]domain.LoggedWorkout, error)
	DeleteWorkout(ctx context.Context, userID, id string) error
	CurrentDay(ctx context.Context, userID string) (int, error)
	SetCurrentDay(ctx context.Context, userID string, dayNumber int) (int, error)
}

type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	settingsRepo repository.SettingsRepository
	catalogRepo  repository.CatalogRepository
	now          func() time.Time
}

// NewWorkoutService creates a new workout service.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	settingsRepo repository.SettingsRepository,
	catalogRepo repository.CatalogRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		settingsRepo: settingsRepo,
		catalogRepo:  catalogRepo,
		now:          time.Now,
	}
}

// LogWorkout validates and persists one completed session. The id is
// always generated server-side; records are immutable after creation.
func (s *workoutService) LogWorkout(ctx context.Context, userID string, draft LogDraft) (*domain.LoggedWorkout, error) {
	if draft.DayNumber == 0 {
		return nil, ErrMissingDayNumber
	}
	if !rotation.IsValidDay(draft.DayNumber) {
		return nil, ErrInvalidDay
	}

	mode := draft.Mode
	if mode == "" {
		mode = domain.ModeQuick
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrValidationFailed, draft.Mode)
	}

	now := s.now().UTC()
	date := draft.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	exercises := draft.Exercises
	if mode == domain.ModeQuick {
		// Quick logs carry no per-exercise detail.
		exercises = nil
	}

	workout := &domain.LoggedWorkout{
		UserID:    userID,
		DayNumber: draft.DayNumber,
		DayName:   s.dayNameFor(ctx, draft.DayNumber, draft.DayName),
		Date:      date,
		Mode:      mode,
		Exercises: exercises,
		Timestamp: now,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// dayNameFor snapshots the catalog name when the caller did not supply
// one. The stored copy is denormalized: history keeps the name that was
// true at log time.
func (s *workoutService) dayNameFor(ctx context.Context, dayNumber int, supplied string) string {
	if supplied != "" {
		return supplied
	}
	day, err := s.catalogRepo.GetDayDefinition(ctx, dayNumber)
	if err != nil {
		return ""
	}
	return day.Name
}

// LogLegacyWorkout persists a single-exercise entry submitted through the
// old create endpoint, stored as a detailed log of one exercise.
func (s *workoutService) LogLegacyWorkout(ctx context.Context, userID string, draft LegacyDraft) (*domain.LoggedWorkout, error) {
	if draft.DayNumber == 0 || draft.Exercise == "" {
		return nil, ErrMissingExercise
	}
	if !rotation.IsValidDay(draft.DayNumber) {
		return nil, ErrInvalidDay
	}

	return s.LogWorkout(ctx, userID, LogDraft{
		DayNumber: draft.DayNumber,
		Date:      draft.Date,
		Mode:      domain.ModeDetailed,
		Exercises: []domain.CompletedExercise{{
			Name:   draft.Exercise,
			Weight: draft.Weight,
			Reps:   draft.Reps,
			Sets:   draft.Sets,
		}},
	})
}

// ImportWorkouts runs a best-effort batch create. Each draft is
// validated and inserted independently; a malformed or colliding draft
// becomes a per-item failure without touching its siblings.
func (s *workoutService) ImportWorkouts(ctx context.Context, userID string, drafts []ImportDraft) (*repository.BulkResult, error) {
	result := &repository.BulkResult{
		Created:  []domain.LoggedWorkout{},
		Failures: []repository.BulkFailure{},
	}

	now := s.now().UTC()
	for _, draft := range drafts {
		workout := domain.LoggedWorkout{
			ID:        draft.ID,
			UserID:    userID,
			DayNumber: draft.DayNumber,
			DayName:   draft.DayName,
			Date:      draft.Date,
			Mode:      draft.Mode,
			Exercises: draft.Exercises,
			Timestamp: draft.Timestamp,
		}
		if workout.Mode == "" {
			workout.Mode = domain.ModeQuick
		}
		if workout.Date == "" {
			workout.Date = now.Format("2006-01-02")
		}

		if !rotation.IsValidDay(draft.DayNumber) {
			result.Failures = append(result.Failures, repository.BulkFailure{
				Draft: workout,
				Error: ErrInvalidDay.Error(),
			})
			continue
		}

		batch, err := s.workoutRepo.BulkCreate(ctx, []domain.LoggedWorkout{workout})
		if err != nil {
			return nil, err
		}
		result.Created = append(result.Created, batch.Created...)
		result.Failures = append(result.Failures, batch.Failures...)
	}
	return result, nil
}

// ListHistory returns the user's full log, most recent date first.
func (s *workoutService) ListHistory(ctx context.Context, userID string) ([]domain.LoggedWorkout, error) {
	return s.workoutRepo.List(ctx, userID)
}

// ListHistoryByDay returns the user's log entries for one cycle day.
func (s *workoutService) ListHistoryByDay(ctx context.Context, userID string, dayNumber int) ([]domain.LoggedWorkout, error) {
	if !rotation.IsValidDay(dayNumber) {
		return nil, ErrInvalidDay
	}
	return s.workoutRepo.ListByDay(ctx, userID, dayNumber)
}

// DeleteWorkout removes one entry; corrections are delete + recreate.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, id string) error {
	err := s.workoutRepo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// CurrentDay returns the user's pointer into the cycle, defaulting to 1
// for a user who never set one. The default is not an error and writes
// nothing.
func (s *workoutService) CurrentDay(ctx context.Context, userID string) (int, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return settings.CurrentDay, nil
}

// SetCurrentDay validates and upserts the user's cycle pointer,
// returning the stored value. An invalid day leaves the prior value
// unchanged.
func (s *workoutService) SetCurrentDay(ctx context.Context, userID string, dayNumber int) (int, error) {
	if !rotation.IsValidDay(dayNumber) {
		return 0, ErrInvalidDay
	}
	settings := &domain.UserSettings{
		UserID:     userID,
		CurrentDay: dayNumber,
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return 0, err
	}
	return settings.CurrentDay, nil
}
