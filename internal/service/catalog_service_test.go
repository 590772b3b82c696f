package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/catalog"
	"workout-tracker/internal/repository/memory"
	"workout-tracker/internal/service"
)

func TestGetDayDefinition(t *testing.T) {
	store := memory.NewStore()
	svc := service.NewCatalogService(store, catalog.Days(), catalog.AllExercises())
	ctx := context.Background()

	// Nothing seeded yet: a valid number is a miss, not a crash.
	_, err := svc.GetDayDefinition(ctx, 3)
	assert.ErrorIs(t, err, service.ErrDayNotFound)

	days, exercises, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, days)
	assert.Equal(t, len(catalog.AllExercises()), exercises)

	day, err := svc.GetDayDefinition(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, "Pecs (Mobility)", day.Name)
	assert.NotEmpty(t, day.Warning)

	_, err = svc.GetDayDefinition(ctx, 0)
	assert.ErrorIs(t, err, service.ErrInvalidDay)
	_, err = svc.GetDayDefinition(ctx, 13)
	assert.ErrorIs(t, err, service.ErrInvalidDay)
}

func TestListExercisesByDay(t *testing.T) {
	store := memory.NewStore()
	svc := service.NewCatalogService(store, catalog.Days(), catalog.AllExercises())
	ctx := context.Background()

	_, _, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)

	exercises, err := svc.ListExercisesByDay(ctx, 12)
	require.NoError(t, err)
	assert.NotEmpty(t, exercises)
	for _, e := range exercises {
		assert.Equal(t, 12, e.DayNumber)
	}

	_, err = svc.ListExercisesByDay(ctx, -1)
	assert.ErrorIs(t, err, service.ErrInvalidDay)
}
