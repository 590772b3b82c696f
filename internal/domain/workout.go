package domain

import "time"

// Mode distinguishes how much detail a logged workout carries.
type Mode string

const (
	// ModeQuick records only that the day was completed.
	ModeQuick Mode = "quick"
	// ModeDetailed records per-exercise weight/reps/sets.
	ModeDetailed Mode = "detailed"
)

func (m Mode) Valid() bool {
	return m == ModeQuick || m == ModeDetailed
}

// CompletedExercise is one exercise entry inside a detailed log.
type CompletedExercise struct {
	Name   string  `bson:"name" json:"name"`
	Weight float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Reps   int     `bson:"reps,omitempty" json:"reps,omitempty"`
	Sets   int     `bson:"sets,omitempty" json:"sets,omitempty"`
}

// LoggedWorkout is one completed session. Records are immutable once
// created; a correction is a delete followed by a fresh create.
type LoggedWorkout struct {
	ID        string `bson:"_id" json:"id"`
	Type      string `bson:"type" json:"-"`
	UserID    string `bson:"userId" json:"userId"`
	DayNumber int    `bson:"dayNumber" json:"dayNumber"`
	// DayName is a snapshot of the day definition's name at log time.
	// It is kept even if the catalog is renamed later.
	DayName string `bson:"dayName,omitempty" json:"dayName,omitempty"`
	// Date is the calendar day (YYYY-MM-DD) the session is attributed to.
	// A backfilled entry may have Date in the past while Timestamp is "now".
	Date      string              `bson:"date" json:"date"`
	Mode      Mode                `bson:"mode" json:"mode"`
	Exercises []CompletedExercise `bson:"exercises" json:"exercises"`
	Timestamp time.Time           `bson:"timestamp" json:"timestamp"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// LegacyWorkoutView is the response shape of the pre-rework /workouts
// endpoints: a flattened serialization of LoggedWorkout kept for old
// clients. It is a view, not a second entity.
type LegacyWorkoutView struct {
	ID        string              `json:"id"`
	Day       int                 `json:"day"`
	DayName   string              `json:"dayName"`
	Date      string              `json:"date"`
	Exercises []CompletedExercise `json:"exercises"`
}

// LegacyView flattens a LoggedWorkout into the old wire shape. The old
// clients expect the recording instant in the date field when present.
func (w LoggedWorkout) LegacyView() LegacyWorkoutView {
	date := w.Date
	if !w.Timestamp.IsZero() {
		date = w.Timestamp.UTC().Format(time.RFC3339)
	}
	exercises := w.Exercises
	if exercises == nil {
		exercises = []CompletedExercise{}
	}
	return LegacyWorkoutView{
		ID:        w.ID,
		Day:       w.DayNumber,
		DayName:   w.DayName,
		Date:      date,
		Exercises: exercises,
	}
}
