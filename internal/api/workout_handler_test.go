package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "workout_tracker", body["database"])
	assert.Equal(t, "records", body["container"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestGetWorkoutDay(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/workout-days/9", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		WorkoutDay struct {
			DayNumber int    `json:"dayNumber"`
			Name      string `json:"name"`
		} `json:"workoutDay"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 9, body.WorkoutDay.DayNumber)
	assert.NotEmpty(t, body.WorkoutDay.Name)
}

func TestGetWorkoutDayInvalidParam(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, p := range []string{"0", "13", "-1", "abc"} {
		rec := doRequest(t, router, http.MethodGet, "/api/workout-days/"+p, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "param %q", p)
	}
}

func TestGetExercisesByDay(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/exercises/day/4", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Exercises []struct {
			Name      string `json:"name"`
			DayNumber int    `json:"dayNumber"`
		} `json:"exercises"`
	}
	decodeBody(t, rec, &body)
	require.NotEmpty(t, body.Exercises)
	for _, ex := range body.Exercises {
		assert.Equal(t, 4, ex.DayNumber)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/logged-workouts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/logged-workouts", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/log-workout", "",
		map[string]interface{}{"dayNumber": 9})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogWorkoutAndList(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	rec := doRequest(t, router, http.MethodPost, "/api/log-workout", token,
		map[string]interface{}{"dayNumber": 9, "mode": "quick"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Workout struct {
			ID        string `json:"id"`
			DayNumber int    `json:"dayNumber"`
			Mode      string `json:"mode"`
			DayName   string `json:"dayName"`
		} `json:"workout"`
	}
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.Workout.ID)
	assert.Equal(t, 9, created.Workout.DayNumber)
	assert.Equal(t, "quick", created.Workout.Mode)
	assert.NotEmpty(t, created.Workout.DayName)

	rec = doRequest(t, router, http.MethodGet, "/api/logged-workouts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Workouts []struct {
			ID string `json:"id"`
		} `json:"workouts"`
	}
	decodeBody(t, rec, &listed)
	require.Len(t, listed.Workouts, 1)
	assert.Equal(t, created.Workout.ID, listed.Workouts[0].ID)
}

func TestLogWorkoutValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	rec := doRequest(t, router, http.MethodPost, "/api/log-workout", token,
		map[string]interface{}{"mode": "quick"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/log-workout", token,
		map[string]interface{}{"dayNumber": 13})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkoutsAreScopedPerUser(t *testing.T) {
	router, _ := newTestRouter(t)
	alice := signToken(t, "alice")
	bob := signToken(t, "bob")

	rec := doRequest(t, router, http.MethodPost, "/api/log-workout", alice,
		map[string]interface{}{"dayNumber": 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/logged-workouts", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Workouts []interface{} `json:"workouts"`
	}
	decodeBody(t, rec, &listed)
	assert.Empty(t, listed.Workouts)
}

func TestCreateWorkoutLegacy(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	rec := doRequest(t, router, http.MethodPost, "/api/workouts", token,
		map[string]interface{}{
			"dayNumber": 3,
			"exercise":  "Incline Dumbbell Press",
			"weight":    32.5,
			"reps":      8,
			"sets":      3,
		})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/workouts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Workouts []struct {
			Day       int    `json:"day"`
			DayName   string `json:"dayName"`
			Date      string `json:"date"`
			Exercises []struct {
				Name   string  `json:"name"`
				Weight float64 `json:"weight"`
				Reps   int     `json:"reps"`
				Sets   int     `json:"sets"`
			} `json:"exercises"`
		} `json:"workouts"`
	}
	decodeBody(t, rec, &listed)
	require.Len(t, listed.Workouts, 1)
	w := listed.Workouts[0]
	assert.Equal(t, 3, w.Day)
	assert.NotEmpty(t, w.Date)
	require.Len(t, w.Exercises, 1)
	assert.Equal(t, "Incline Dumbbell Press", w.Exercises[0].Name)
	assert.Equal(t, 32.5, w.Exercises[0].Weight)
}

func TestCreateWorkoutLegacyValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	rec := doRequest(t, router, http.MethodPost, "/api/workouts", token,
		map[string]interface{}{"dayNumber": 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListWorkoutsByDay(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	for _, day := range []int{2, 7, 2} {
		rec := doRequest(t, router, http.MethodPost, "/api/log-workout", token,
			map[string]interface{}{"dayNumber": day})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/workouts/day/2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Workouts []struct {
			DayNumber int `json:"dayNumber"`
		} `json:"workouts"`
	}
	decodeBody(t, rec, &listed)
	require.Len(t, listed.Workouts, 2)
	for _, w := range listed.Workouts {
		assert.Equal(t, 2, w.DayNumber)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/workouts/day/13", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkImportPartialSuccess(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	rec := doRequest(t, router, http.MethodPost, "/api/workouts/bulk", token,
		map[string]interface{}{
			"workouts": []map[string]interface{}{
				{"dayNumber": 5, "mode": "quick"},
				{"dayNumber": 42},
				{"dayNumber": 6, "mode": "quick"},
			},
		})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success  int `json:"success"`
		Failed   int `json:"failed"`
		Workouts []struct {
			DayNumber int `json:"dayNumber"`
		} `json:"workouts"`
		Errors []struct {
			Error string `json:"error"`
		} `json:"errors"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 2, body.Success)
	assert.Equal(t, 1, body.Failed)
	assert.Len(t, body.Workouts, 2)
	assert.Len(t, body.Errors, 1)
}

func TestBulkImportRejectsMissingArray(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	rec := doRequest(t, router, http.MethodPost, "/api/workouts/bulk", token,
		map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteWorkout(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	rec := doRequest(t, router, http.MethodPost, "/api/log-workout", token,
		map[string]interface{}{"dayNumber": 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Workout struct {
			ID string `json:"id"`
		} `json:"workout"`
	}
	decodeBody(t, rec, &created)

	rec = doRequest(t, router, http.MethodDelete, "/api/workouts/"+created.Workout.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted map[string]interface{}
	decodeBody(t, rec, &deleted)
	assert.Equal(t, created.Workout.ID, deleted["id"])

	// A second delete of the same id is a 404.
	rec = doRequest(t, router, http.MethodDelete, "/api/workouts/"+created.Workout.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteWorkoutOtherUser(t *testing.T) {
	router, _ := newTestRouter(t)
	alice := signToken(t, "alice")
	bob := signToken(t, "bob")

	rec := doRequest(t, router, http.MethodPost, "/api/log-workout", alice,
		map[string]interface{}{"dayNumber": 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Workout struct {
			ID string `json:"id"`
		} `json:"workout"`
	}
	decodeBody(t, rec, &created)

	rec = doRequest(t, router, http.MethodDelete, "/api/workouts/"+created.Workout.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCurrentDayFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	rec := doRequest(t, router, http.MethodGet, "/api/current-day", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		CurrentDay int `json:"currentDay"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 1, body.CurrentDay)

	rec = doRequest(t, router, http.MethodPut, "/api/current-day", token,
		map[string]interface{}{"currentDay": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, 5, body.CurrentDay)

	rec = doRequest(t, router, http.MethodGet, "/api/current-day", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, 5, body.CurrentDay)

	rec = doRequest(t, router, http.MethodPut, "/api/current-day", token,
		map[string]interface{}{"currentDay": 13})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHistory(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	for day := 1; day <= 3; day++ {
		rec := doRequest(t, router, http.MethodPost, "/api/log-workout", token,
			map[string]interface{}{"dayNumber": day})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodPost, "/api/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		URL      string `json:"url"`
		Workouts int    `json:"workouts"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.URL, "exports/user-1/")
	assert.Equal(t, 3, body.Workouts)
}

func TestAdminInitDatabase(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "admin")

	rec := doRequest(t, router, http.MethodPost, "/api/admin/init-database", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Seeded  struct {
			WorkoutDays     int `json:"workoutDays"`
			Exercises       int `json:"exercises"`
			Workouts        int `json:"workouts"`
			WorkoutsSkipped int `json:"workoutsSkipped"`
		} `json:"seeded"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, 12, body.Seeded.WorkoutDays)
	assert.Greater(t, body.Seeded.Exercises, 0)
	assert.Equal(t, 20, body.Seeded.Workouts)
	assert.Zero(t, body.Seeded.WorkoutsSkipped)

	// A second run must not duplicate the seeded history.
	rec = doRequest(t, router, http.MethodPost, "/api/admin/init-database", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Zero(t, body.Seeded.Workouts)
	assert.Equal(t, 20, body.Seeded.WorkoutsSkipped)

	seedToken := signToken(t, "seed-user")
	rec = doRequest(t, router, http.MethodGet, "/api/logged-workouts", seedToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Workouts []struct {
			Date string `json:"date"`
		} `json:"workouts"`
	}
	decodeBody(t, rec, &listed)
	require.Len(t, listed.Workouts, 20)
	assert.Equal(t, "2026-02-14", listed.Workouts[0].Date)
}

func TestNoRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestHistoryOrdering(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signToken(t, "user-1")

	dates := []string{"2026-08-01", "2026-08-20", "2026-08-10"}
	for i, d := range dates {
		rec := doRequest(t, router, http.MethodPost, "/api/log-workout", token,
			map[string]interface{}{"dayNumber": i + 1, "date": d})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/logged-workouts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Workouts []struct {
			Date string `json:"date"`
		} `json:"workouts"`
	}
	decodeBody(t, rec, &listed)
	require.Len(t, listed.Workouts, 3)

	got := make([]string, 0, len(listed.Workouts))
	for _, w := range listed.Workouts {
		got = append(got, w.Date)
	}
	assert.Equal(t, []string{"2026-08-20", "2026-08-10", "2026-08-01"}, got,
		fmt.Sprintf("history should be newest-first, got %v", got))
}
