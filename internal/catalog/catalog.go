// Package catalog holds the static 12-day cycle reference data: the day
// definitions and the prescribed exercise library. Loaded once, never
// mutated at runtime.
package catalog

import (
	"fmt"
	"strings"

	"workout-tracker/internal/domain"
)

func weight(w float64) *float64 { return &w }
func sets(n int) *int           { return &n }

var days = []domain.DayDefinition{
	{DayNumber: 1, Name: "Compound: Legs", Focus: "Main Lift: Squat. Systemic leg strength.", PrimaryMuscleGroups: []string{"legs", "glutes", "quads"}},
	{DayNumber: 2, Name: "Calves", Focus: "Active recovery.", PrimaryMuscleGroups: []string{"calves"}},
	{DayNumber: 3, Name: "Hamstring", Focus: "Isolation. (Safe here since Day 1 was Squats).", PrimaryMuscleGroups: []string{"hamstrings"}},
	{DayNumber: 4, Name: "Abs", Focus: "Flexion focus.", PrimaryMuscleGroups: []string{"abs", "core"}},
	{DayNumber: 5, Name: "Compound: Pulls", Focus: "Main Lift: Back/Rows. Systemic pulling strength.", PrimaryMuscleGroups: []string{"back", "lats"}},
	{DayNumber: 6, Name: "Bicep", Focus: "Accessory work.", PrimaryMuscleGroups: []string{"biceps"}},
	{DayNumber: 7, Name: "Torso", Focus: "Extension/Rotation. Placed here to save lower back for Day 1.", PrimaryMuscleGroups: []string{"core", "back"}},
	{DayNumber: 8, Name: "Pecs (Mobility)", Focus: "The Primer. Light flys/holds to prep shoulder capsule. ⚠️ NO DIPS or heavy pressing.", PrimaryMuscleGroups: []string{"chest"}, Warning: "Shoulder health priority - light work only"},
	{DayNumber: 9, Name: "Compound: Push", Focus: "Main Lift: DB Bench. Heavy chest/front delt focus.", PrimaryMuscleGroups: []string{"chest", "shoulders", "triceps"}},
	{DayNumber: 10, Name: "Triceps", Focus: "Isolation. Focus on \"feel\" to save elbows.", PrimaryMuscleGroups: []string{"triceps"}},
	{DayNumber: 11, Name: "Deltoid", Focus: "Shoulder isolation.", PrimaryMuscleGroups: []string{"shoulders", "delts"}},
	{DayNumber: 12, Name: "Grip", Focus: "Forearm/Hand focus. Final burnout.", PrimaryMuscleGroups: []string{"forearms", "grip"}},
}

var exercises = []domain.Exercise{
	// Compound: Legs
	{Name: "Barbell Squat (Smith Machine)", DayNumber: 1, Equipment: "Smith Machine", TargetWeight: weight(115), TargetReps: domain.RepsText("6-8"), TargetSets: sets(4), Location: "Gym"},
	{Name: "Leg Press", DayNumber: 1, Equipment: "Leg Press Machine", TargetWeight: weight(140), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Gym"},
	{Name: "Leg Extension", DayNumber: 1, Equipment: "Leg Extension Machine", TargetWeight: weight(60), TargetReps: domain.RepsText("12-15"), TargetSets: sets(3), Location: "Gym", Notes: "Lowest seat, legs notch 1, back notch 1. Superset with leg curls"},
	{Name: "Leg Curl", DayNumber: 1, Equipment: "Leg Curl Machine", TargetWeight: weight(60), TargetReps: domain.RepsText("12-15"), TargetSets: sets(3), Location: "Gym", Notes: "Highest seat, legs at lowest notch. Superset with leg extension"},
	{Name: "Seated Calf Raises", DayNumber: 1, Equipment: "Bench + Dumbbells", TargetWeight: weight(80), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Gym"},

	// Calves
	{Name: "Calf Stands", DayNumber: 2, Equipment: "Bodyweight", TargetReps: domain.RepsText("5 minutes"), Location: "Anywhere", Notes: "Stand on toes for about 5 minutes"},
	{Name: "Calf Stretches", DayNumber: 2, Equipment: "None", Location: "Anywhere"},
	{Name: "Seated Calf Raises", DayNumber: 2, Equipment: "Seated Calf Raise Machine", TargetWeight: weight(90), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Gym"},

	// Hamstring
	{Name: "Single Leg Cable Stretch (Front)", DayNumber: 3, Equipment: "Cable", TargetReps: domain.RepsText("3-5 minutes, 2-5 times"), Location: "Gym"},
	{Name: "Single Leg Cable Stretch (Side)", DayNumber: 3, Equipment: "Cable", TargetReps: domain.RepsText("3-5 minutes, 2-5 times"), Location: "Gym"},
	{Name: "Single Leg Forward Lean", DayNumber: 3, Equipment: "Bodyweight", Location: "Anywhere"},
	{Name: "Seated Splits", DayNumber: 3, Equipment: "None", Location: "Anywhere"},

	// Abs
	{Name: "Crunches", DayNumber: 4, Equipment: "Bodyweight", Location: "Anywhere"},
	{Name: "Under Leg Crunches", DayNumber: 4, Equipment: "Bodyweight", Location: "Anywhere"},

	// Compound: Pulls
	{Name: "Lat Pulldowns", DayNumber: 5, Equipment: "Cable Machine", TargetWeight: weight(40), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Home"},
	{Name: "Bent-Over Rows", DayNumber: 5, Equipment: "Barbell", TargetWeight: weight(35), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Home"},
	{Name: "Seated Cable Rows", DayNumber: 5, Equipment: "Cable Machine", TargetWeight: weight(80), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Home"},

	// Biceps
	{Name: "Dumbbell Bicep Curl", DayNumber: 6, Equipment: "Dumbbells", TargetWeight: weight(20), TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Home", Notes: "Reps to failure, decrease weight by 5-10 each time"},
	{Name: "Cable Bicep Curl", DayNumber: 6, Equipment: "Cable Machine", TargetWeight: weight(20), TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Home", Notes: "Reps to failure, decrease weight by 5-10 each time"},

	// Torso
	{Name: "Torso Twist", DayNumber: 7, Equipment: "Torso Twist Machine", TargetWeight: weight(90), TargetReps: domain.Reps(20), TargetSets: sets(3), Location: "Gym", Notes: "Max twist. One set is rotating from each side"},
	{Name: "Back Extension (Seated)", DayNumber: 7, Equipment: "Seated Back Extension Machine", TargetWeight: weight(140), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Gym", Notes: "Max range of motion"},
	{Name: "Hip Adductor", DayNumber: 7, Equipment: "Hip Adductor Machine", TargetWeight: weight(100), TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Gym", Notes: "Max stretch. Involves static stretching and contractions"},
	{Name: "Hip Abductor", DayNumber: 7, Equipment: "Hip Abductor Machine", TargetWeight: weight(80), TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Gym"},
	{Name: "Situps", DayNumber: 7, Equipment: "Situp Device", TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Gym"},

	// Pecs (Mobility)
	{Name: "Dumbbell Bench Press (Light)", DayNumber: 8, Equipment: "Dumbbells", TargetWeight: weight(20), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Home", Notes: "⚠️ Light weight only for mobility"},
	{Name: "Cable Fly", DayNumber: 8, Equipment: "Cable Machine", Location: "Home", Notes: "⚠️ Light weight, focus on stretch"},
	{Name: "Static Hold (Lowered Position)", DayNumber: 8, Equipment: "Dumbbells", Location: "Home", Notes: "⚠️ Horizontal dumbbell hold in lowered position"},

	// Compound: Push
	{Name: "Barbell Bench Press (Smith Machine)", DayNumber: 9, Equipment: "Smith Machine", TargetWeight: weight(115), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Gym"},
	{Name: "Dumbbell Bench Press", DayNumber: 9, Equipment: "Dumbbells", TargetWeight: weight(20), TargetReps: domain.Reps(12), TargetSets: sets(3), Location: "Home", Notes: "Reps to failure, decreasing weight"},
	// Negative weight means machine assistance, not load.
	{Name: "Dips", DayNumber: 9, Equipment: "Dip Machine", TargetWeight: weight(-90), TargetReps: domain.RepsText("15-20"), TargetSets: sets(3), Location: "Gym"},

	// Triceps
	{Name: "Cable Standing High Cross", DayNumber: 10, Equipment: "Cable Machine", Location: "Home"},
	{Name: "Tricep Pushdown", DayNumber: 10, Equipment: "Cable Machine", Location: "Home"},
	{Name: "Tricep Extension (Katana)", DayNumber: 10, Equipment: "Dumbbell", TargetWeight: weight(10), Location: "Home"},

	// Deltoids
	{Name: "Reverse Delt Cable Fly", DayNumber: 11, Equipment: "Cable Machine", Location: "Home"},
	{Name: "Side Delt Cable Raises", DayNumber: 11, Equipment: "Cable Machine", Location: "Home"},
	{Name: "Front Deltoid Raises (Bottom to Top)", DayNumber: 11, Equipment: "Cable Machine", Location: "Home"},
	{Name: "Front Deltoid Raises (Top to Bottom)", DayNumber: 11, Equipment: "Cable Machine", Location: "Home"},
	{Name: "Rotator Cuff Work", DayNumber: 11, Equipment: "Light Weight", Location: "Home"},

	// Grip
	{Name: "Gripper - Trainer", DayNumber: 12, Equipment: "Hand Gripper", TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Home", Notes: "Start with left/weak side"},
	{Name: "Gripper - Sport", DayNumber: 12, Equipment: "Hand Gripper", TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Home", Notes: "Start with left/weak side"},
	{Name: "Gripper - Guide", DayNumber: 12, Equipment: "Hand Gripper", TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Home", Notes: "Start with left/weak side"},
	{Name: "Wrist Curls (Pronated)", DayNumber: 12, Equipment: "Dumbbells", TargetWeight: weight(20), TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Home"},
	{Name: "Wrist Curls (Supinated)", DayNumber: 12, Equipment: "Dumbbells", TargetWeight: weight(20), TargetReps: domain.RepsText("Failure"), TargetSets: sets(3), Location: "Home"},
}

// Days returns all twelve day definitions in cycle order.
func Days() []domain.DayDefinition {
	out := make([]domain.DayDefinition, len(days))
	copy(out, days)
	return out
}

// DayByNumber returns the definition for dayNumber, or false if the
// number is outside the cycle.
func DayByNumber(dayNumber int) (domain.DayDefinition, bool) {
	for _, d := range days {
		if d.DayNumber == dayNumber {
			return d, true
		}
	}
	return domain.DayDefinition{}, false
}

// ExercisesForDay returns the prescribed exercises for a day. The result
// may be empty; that is not an error.
func ExercisesForDay(dayNumber int) []domain.Exercise {
	var out []domain.Exercise
	for _, e := range exercises {
		if e.DayNumber == dayNumber {
			out = append(out, e)
		}
	}
	return out
}

// AllExercises returns the full exercise library.
func AllExercises() []domain.Exercise {
	out := make([]domain.Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// DayDocID is the deterministic document id for a day definition.
func DayDocID(dayNumber int) string {
	return fmt.Sprintf("workout-day-%d", dayNumber)
}

// ExerciseDocID is the deterministic document id for a library exercise,
// derived from its day and slugified name so reseeding is idempotent.
func ExerciseDocID(e domain.Exercise) string {
	return fmt.Sprintf("exercise-%d-%s", e.DayNumber, slugify(e.Name))
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
