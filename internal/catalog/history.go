package catalog

import (
	"fmt"
	"time"

	"workout-tracker/internal/domain"
)

type historyEntry struct {
	date      string
	dayNumber int
	dayName   string
}

// Historical sessions carried over from the spreadsheet era.
var history = []historyEntry{
	{"2026-02-14", 8, "Pecs (Mobility)"},
	{"2026-01-29", 11, "Deltoid"},
	{"2026-01-26", 6, "Bicep"},
	{"2026-01-23", 5, "Compound: Pulls"},
	{"2026-01-22", 4, "Abs"},
	{"2026-01-08", 3, "Hamstring"},
	{"2026-01-05", 2, "Calves"},
	{"2026-01-04", 1, "Compound: Legs"},

	{"2025-12-11", 6, "Bicep"},
	{"2025-12-10", 5, "Compound: Pulls"},
	{"2025-12-09", 7, "Torso"},
	{"2025-12-08", 1, "Compound: Legs"},
	{"2025-12-07", 10, "Triceps"},
	{"2025-12-05", 12, "Grip"},
	{"2025-11-26", 9, "Compound: Push"},
	{"2025-11-25", 6, "Bicep"},
	{"2025-11-24", 5, "Compound: Pulls"},
	{"2025-11-16", 7, "Torso"},
	{"2025-11-15", 1, "Compound: Legs"},
	{"2025-11-14", 12, "Grip"},
}

// SeedHistory returns the historical logged workouts attributed to
// userID. Ids are deterministic per date and day, so reseeding skips
// records that already exist instead of duplicating them.
func SeedHistory(userID string) []domain.LoggedWorkout {
	out := make([]domain.LoggedWorkout, len(history))
	for i, h := range history {
		ts, _ := time.Parse("2006-01-02", h.date)
		out[i] = domain.LoggedWorkout{
			ID:        SeedWorkoutDocID(h.date, h.dayNumber),
			UserID:    userID,
			DayNumber: h.dayNumber,
			DayName:   h.dayName,
			Date:      h.date,
			Mode:      domain.ModeQuick,
			Timestamp: ts.UTC(),
		}
	}
	return out
}

// SeedWorkoutDocID is the deterministic document id for one historical
// session.
func SeedWorkoutDocID(date string, dayNumber int) string {
	return fmt.Sprintf("seed-workout-%s-day-%d", date, dayNumber)
}
