package repository

import (
	"context"

	"workout-tracker/internal/domain"
)

// Error constants for the repository layer. A lookup miss is a normal
// outcome the caller branches on, not an exception; a backend fault is
// collapsed into ErrUnavailable so the API layer can map it to a 5xx.
var (
	ErrNotFound    = RepositoryError("not found")
	ErrDuplicateID = RepositoryError("id already exists")
	ErrUnavailable = RepositoryError("store unavailable")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// BulkFailure records one draft that could not be persisted during a
// bulk create. Failures never abort sibling drafts.
type BulkFailure struct {
	Draft domain.LoggedWorkout `json:"workout"`
	Error string               `json:"error"`
}

// BulkResult is the outcome of a best-effort batch create. Partial
// success is a normal outcome, not an overall failure.
type BulkResult struct {
	Created  []domain.LoggedWorkout
	Failures []BulkFailure
}

// CatalogRepository reads the static day-definition and exercise
// reference data and (re)installs the seed set.
type CatalogRepository interface {
	GetDayDefinition(ctx context.Context, dayNumber int) (*domain.DayDefinition, error)
	ListExercisesByDay(ctx context.Context, dayNumber int) ([]domain.Exercise, error)
	SeedCatalog(ctx context.Context, days []domain.DayDefinition, exercises []domain.Exercise) (daysSeeded, exercisesSeeded int, err error)
}

// WorkoutRepository persists logged workouts. All operations are scoped
// to the owning userId; a record is never reachable without it.
type WorkoutRepository interface {
	// Create inserts a new record. It fails with ErrDuplicateID instead of
	// overwriting when the id is already taken.
	Create(ctx context.Context, workout *domain.LoggedWorkout) error
	// List returns the user's workouts ordered by date descending, ties
	// broken by createdAt descending.
	List(ctx context.Context, userID string) ([]domain.LoggedWorkout, error)
	ListByDay(ctx context.Context, userID string, dayNumber int) ([]domain.LoggedWorkout, error)
	// BulkCreate inserts each draft independently; one bad draft does not
	// abort the rest.
	BulkCreate(ctx context.Context, workouts []domain.LoggedWorkout) (*BulkResult, error)
	// Delete requires both id and userId; deleting another user's record
	// reports ErrNotFound.
	Delete(ctx context.Context, userID, id string) error
}

// SettingsRepository persists the per-user current-day pointer.
type SettingsRepository interface {
	// Get returns ErrNotFound when the user has no settings record yet.
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	// Upsert writes the single settings record for the user,
	// last-writer-wins.
	Upsert(ctx context.Context, settings *domain.UserSettings) error
}
