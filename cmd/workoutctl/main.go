// workoutctl is a terminal view onto the workout tracker: it shows the
// prescribed day, lists history, logs sessions, and advances the cycle.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"workout-tracker/internal/client"
	"workout-tracker/internal/domain"
	"workout-tracker/internal/rotation"
)

const usage = `Usage: workoutctl [flags] <command>

Commands:
  today              show the current day's card and prescribed exercises
  history            list logged workouts, most recent first
  log                log today's workout (quick mode) and advance the cycle
  advance            advance the current day without logging
  delete <id>        delete a logged workout by id

Flags:
`

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "API base URL")
	token := flag.String("token", os.Getenv("WORKOUT_TOKEN"), "bearer token (default $WORKOUT_TOKEN)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*serverURL, *token)

	var err error
	switch flag.Arg(0) {
	case "today":
		err = showToday(ctx, api)
	case "history":
		err = showHistory(ctx, api)
	case "log":
		err = logToday(ctx, api)
	case "advance":
		err = advanceDay(ctx, api)
	case "delete":
		if flag.NArg() < 2 {
			err = fmt.Errorf("delete requires a workout id")
			break
		}
		err = deleteWorkout(ctx, api, flag.Arg(1))
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func showToday(ctx context.Context, api *client.Client) error {
	current, err := api.CurrentDay(ctx)
	if err != nil {
		return err
	}
	day, err := api.WorkoutDay(ctx, current)
	if err != nil {
		return err
	}
	exercises, err := api.ExercisesForDay(ctx, current)
	if err != nil {
		return err
	}

	fmt.Printf("Day %d/12: %s\n", day.DayNumber, day.Name)
	fmt.Printf("Focus: %s\n", day.Focus)
	fmt.Printf("Muscles: %s\n", strings.Join(day.PrimaryMuscleGroups, ", "))
	if day.Warning != "" {
		fmt.Printf("WARNING: %s\n", day.Warning)
	}
	if len(exercises) > 0 {
		fmt.Println("\nPrescribed exercises:")
		for _, e := range exercises {
			fmt.Printf("  - %s%s\n", e.Name, describeTargets(e))
		}
	}
	return nil
}

func describeTargets(e domain.Exercise) string {
	var parts []string
	if e.TargetWeight != nil {
		if *e.TargetWeight < 0 {
			parts = append(parts, fmt.Sprintf("assist %.0f", -*e.TargetWeight))
		} else {
			parts = append(parts, fmt.Sprintf("%.0f lbs", *e.TargetWeight))
		}
	}
	if e.TargetReps != nil {
		parts = append(parts, e.TargetReps.String()+" reps")
	}
	if e.TargetSets != nil {
		parts = append(parts, fmt.Sprintf("%d sets", *e.TargetSets))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func showHistory(ctx context.Context, api *client.Client) error {
	workouts, err := api.LoggedWorkouts(ctx)
	if err != nil {
		return err
	}
	if len(workouts) == 0 {
		fmt.Println("No workouts logged yet.")
		return nil
	}
	for _, w := range workouts {
		detail := ""
		if w.Mode == domain.ModeDetailed {
			detail = fmt.Sprintf("  [%d exercises]", len(w.Exercises))
		}
		fmt.Printf("%s  day %2d  %-20s %s%s\n", w.Date, w.DayNumber, w.DayName, w.ID, detail)
	}
	return nil
}

// logToday records a quick log for the current day, then advances the
// cycle pointer and re-reads history so the display reflects the server.
func logToday(ctx context.Context, api *client.Client) error {
	current, err := api.CurrentDay(ctx)
	if err != nil {
		return err
	}

	workout, err := api.LogWorkout(ctx, client.LogWorkoutRequest{
		DayNumber: current,
		Mode:      domain.ModeQuick,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged day %d (%s) as %s\n", workout.DayNumber, workout.DayName, workout.ID)

	stored, err := api.SetCurrentDay(ctx, rotation.NextDay(current))
	if err != nil {
		return err
	}
	fmt.Printf("Next up: day %d\n", stored)
	return nil
}

func advanceDay(ctx context.Context, api *client.Client) error {
	current, err := api.CurrentDay(ctx)
	if err != nil {
		return err
	}
	stored, err := api.SetCurrentDay(ctx, rotation.NextDay(current))
	if err != nil {
		return err
	}
	fmt.Printf("Current day is now %d\n", stored)
	return nil
}

func deleteWorkout(ctx context.Context, api *client.Client, id string) error {
	if err := api.DeleteWorkout(ctx, id); err != nil {
		return err
	}
	fmt.Println("Deleted", id)
	return nil
}
