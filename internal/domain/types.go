package domain

// Record kinds stored in the single backing collection, distinguished
// by their `type` field.
const (
	TypeDayDefinition = "workout-day-definition"
	TypeExercise      = "exercise"
	TypeLoggedWorkout = "logged-workout"
	TypeSettings      = "settings"
)
