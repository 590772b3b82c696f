package service

import (
	"context"
	"errors"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
	"workout-tracker/internal/rotation"
)

// --- Error Definitions ---
var (
	ErrInvalidDay       = errors.New("invalid day number, must be between 1 and 12")
	ErrDayNotFound      = errors.New("workout day not found")
	ErrValidationFailed = errors.New("validation failed")
)

// CatalogService exposes the static day-definition and exercise
// reference data.
type CatalogService interface {
	GetDayDefinition(ctx context.Context, dayNumber int) (*domain.DayDefinition, error)
	ListExercisesByDay(ctx context.Context, dayNumber int) ([]domain.Exercise, error)
	SeedCatalog(ctx context.Context) (daysSeeded, exercisesSeeded int, err error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	seedDays    []domain.DayDefinition
	seedLibrary []domain.Exercise
}

// NewCatalogService creates a new catalog service backed by the given
// repository and seed reference data.
func NewCatalogService(catalogRepo repository.CatalogRepository, seedDays []domain.DayDefinition, seedLibrary []domain.Exercise) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		seedDays:    seedDays,
		seedLibrary: seedLibrary,
	}
}

// GetDayDefinition retrieves one day of the cycle. Out-of-range numbers
// are rejected before any store access.
func (s *catalogService) GetDayDefinition(ctx context.Context, dayNumber int) (*domain.DayDefinition, error) {
	if !rotation.IsValidDay(dayNumber) {
		return nil, ErrInvalidDay
	}
	day, err := s.catalogRepo.GetDayDefinition(ctx, dayNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return day, nil
}

// ListExercisesByDay retrieves the prescribed exercises for a day. An
// empty list is a normal outcome.
func (s *catalogService) ListExercisesByDay(ctx context.Context, dayNumber int) ([]domain.Exercise, error) {
	if !rotation.IsValidDay(dayNumber) {
		return nil, ErrInvalidDay
	}
	return s.catalogRepo.ListExercisesByDay(ctx, dayNumber)
}

// SeedCatalog installs the reference data, idempotently.
func (s *catalogService) SeedCatalog(ctx context.Context) (int, int, error) {
	return s.catalogRepo.SeedCatalog(ctx, s.seedDays, s.seedLibrary)
}
