package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/catalog"
)

func TestDaysCoverFullCycle(t *testing.T) {
	days := catalog.Days()
	require.Len(t, days, 12)
	for i, d := range days {
		assert.Equal(t, i+1, d.DayNumber)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Focus)
		assert.NotEmpty(t, d.PrimaryMuscleGroups)
	}
}

func TestDayByNumber(t *testing.T) {
	day, ok := catalog.DayByNumber(9)
	require.True(t, ok)
	assert.Equal(t, "Compound: Push", day.Name)

	_, ok = catalog.DayByNumber(0)
	assert.False(t, ok)
	_, ok = catalog.DayByNumber(13)
	assert.False(t, ok)
}

func TestOnlyDayEightCarriesWarning(t *testing.T) {
	for _, d := range catalog.Days() {
		if d.DayNumber == 8 {
			assert.NotEmpty(t, d.Warning)
		} else {
			assert.Empty(t, d.Warning, "day %d", d.DayNumber)
		}
	}
}

func TestExercisesForDay(t *testing.T) {
	legs := catalog.ExercisesForDay(1)
	require.NotEmpty(t, legs)
	for _, e := range legs {
		assert.Equal(t, 1, e.DayNumber)
	}
}

func TestAssistedDipsKeepNegativeTargetWeight(t *testing.T) {
	for _, e := range catalog.ExercisesForDay(9) {
		if e.Name == "Dips" {
			require.NotNil(t, e.TargetWeight)
			assert.Equal(t, float64(-90), *e.TargetWeight)
			return
		}
	}
	t.Fatal("dips not found in day 9 prescriptions")
}

func TestSeedHistory(t *testing.T) {
	records := catalog.SeedHistory("user-42")
	require.Len(t, records, 20)

	seen := map[string]bool{}
	for _, w := range records {
		assert.Equal(t, "user-42", w.UserID)
		assert.GreaterOrEqual(t, w.DayNumber, 1)
		assert.LessOrEqual(t, w.DayNumber, 12)
		assert.NotEmpty(t, w.DayName)
		assert.NotEmpty(t, w.Date)
		assert.False(t, w.Timestamp.IsZero())
		assert.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
	}

	assert.Equal(t, "seed-workout-2026-02-14-day-8", records[0].ID)
}

func TestExerciseDocIDIsStable(t *testing.T) {
	for _, e := range catalog.ExercisesForDay(1) {
		if e.Name == "Barbell Squat (Smith Machine)" {
			assert.Equal(t, "exercise-1-barbell-squat--smith-machine-", catalog.ExerciseDocID(e))
			return
		}
	}
	t.Fatal("squat not found in day 1 prescriptions")
}
