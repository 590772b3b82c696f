// Package memory provides an in-memory implementation of the repository
// interfaces. It backs the service and handler tests and mirrors the
// mongo implementation's semantics: insert-only creates, owner-scoped
// deletes, and history ordering by date then creation instant.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

var (
	_ repository.CatalogRepository  = (*Store)(nil)
	_ repository.WorkoutRepository  = (*Store)(nil)
	_ repository.SettingsRepository = (*Store)(nil)
)

// Store holds all record kinds behind one mutex, like the single backing
// collection it stands in for.
type Store struct {
	mu        sync.Mutex
	days      map[int]domain.DayDefinition
	exercises []domain.Exercise
	workouts  map[string]domain.LoggedWorkout
	settings  map[string]domain.UserSettings

	// Fail, when set, makes every operation report ErrUnavailable.
	Fail bool
}

func NewStore() *Store {
	return &Store{
		days:     make(map[int]domain.DayDefinition),
		workouts: make(map[string]domain.LoggedWorkout),
		settings: make(map[string]domain.UserSettings),
	}
}

func (s *Store) fail() error {
	if s.Fail {
		return repository.ErrUnavailable
	}
	return nil
}

// --- repository.CatalogRepository ---

func (s *Store) GetDayDefinition(_ context.Context, dayNumber int) (*domain.DayDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	day, ok := s.days[dayNumber]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &day, nil
}

func (s *Store) ListExercisesByDay(_ context.Context, dayNumber int) ([]domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	out := []domain.Exercise{}
	for _, e := range s.exercises {
		if e.DayNumber == dayNumber {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) SeedCatalog(_ context.Context, days []domain.DayDefinition, exercises []domain.Exercise) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return 0, 0, err
	}
	for _, d := range days {
		d.Type = domain.TypeDayDefinition
		s.days[d.DayNumber] = d
	}
	s.exercises = append([]domain.Exercise{}, exercises...)
	return len(days), len(exercises), nil
}

// --- repository.WorkoutRepository ---

func (s *Store) Create(_ context.Context, workout *domain.LoggedWorkout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(workout)
}

func (s *Store) createLocked(workout *domain.LoggedWorkout) error {
	if err := s.fail(); err != nil {
		return err
	}
	if workout.UserID == "" {
		return errors.New("logged workout requires userId")
	}
	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	if _, exists := s.workouts[workout.ID]; exists {
		return repository.ErrDuplicateID
	}
	workout.Type = domain.TypeLoggedWorkout
	now := time.Now().UTC()
	workout.CreatedAt = now
	if workout.Timestamp.IsZero() {
		workout.Timestamp = now
	}
	if workout.Exercises == nil {
		workout.Exercises = []domain.CompletedExercise{}
	}
	s.workouts[workout.ID] = *workout
	return nil
}

func (s *Store) List(_ context.Context, userID string) ([]domain.LoggedWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	out := []domain.LoggedWorkout{}
	for _, w := range s.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) ListByDay(_ context.Context, userID string, dayNumber int) ([]domain.LoggedWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	out := []domain.LoggedWorkout{}
	for _, w := range s.workouts {
		if w.UserID == userID && w.DayNumber == dayNumber {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *Store) BulkCreate(_ context.Context, workouts []domain.LoggedWorkout) (*repository.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := &repository.BulkResult{
		Created:  []domain.LoggedWorkout{},
		Failures: []repository.BulkFailure{},
	}
	for i := range workouts {
		w := workouts[i]
		if err := s.createLocked(&w); err != nil {
			result.Failures = append(result.Failures, repository.BulkFailure{
				Draft: workouts[i],
				Error: err.Error(),
			})
			continue
		}
		result.Created = append(result.Created, w)
	}
	return result, nil
}

func (s *Store) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	w, ok := s.workouts[id]
	if !ok || w.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.workouts, id)
	return nil
}

// --- repository.SettingsRepository ---

func (s *Store) Get(_ context.Context, userID string) (*domain.UserSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	settings, ok := s.settings[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &settings, nil
}

func (s *Store) Upsert(_ context.Context, settings *domain.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	if settings.UserID == "" {
		return errors.New("settings require userId")
	}
	settings.ID = domain.SettingsID(settings.UserID)
	settings.Type = domain.TypeSettings
	settings.UpdatedAt = time.Now().UTC()
	s.settings[settings.UserID] = *settings
	return nil
}
