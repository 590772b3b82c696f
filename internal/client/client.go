// Package client is a typed consumer of the workout tracker HTTP API,
// used by the terminal client. It mirrors the web client's call surface:
// read the catalog, read and advance the current day, list history, and
// submit or delete log entries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"workout-tracker/internal/domain"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client calls the workout tracker API with a bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the API at baseURL. The token is sent as-is
// in the Authorization header; it must come from the identity provider.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// LogWorkoutRequest is the body of POST /api/log-workout.
type LogWorkoutRequest struct {
	DayNumber int                        `json:"dayNumber"`
	DayName   string                     `json:"dayName,omitempty"`
	Mode      domain.Mode                `json:"mode,omitempty"`
	Date      string                     `json:"date,omitempty"`
	Exercises []domain.CompletedExercise `json:"exercises,omitempty"`
}

// WorkoutDay fetches one day definition from the catalog.
func (c *Client) WorkoutDay(ctx context.Context, dayNumber int) (*domain.DayDefinition, error) {
	var out struct {
		WorkoutDay domain.DayDefinition `json:"workoutDay"`
	}
	path := fmt.Sprintf("/api/workout-days/%d", dayNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.WorkoutDay, nil
}

// ExercisesForDay fetches the prescribed exercises for a cycle day.
func (c *Client) ExercisesForDay(ctx context.Context, dayNumber int) ([]domain.Exercise, error) {
	var out struct {
		Exercises []domain.Exercise `json:"exercises"`
	}
	path := fmt.Sprintf("/api/exercises/day/%d", dayNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Exercises, nil
}

// LoggedWorkouts fetches the caller's history, most recent first.
func (c *Client) LoggedWorkouts(ctx context.Context) ([]domain.LoggedWorkout, error) {
	var out struct {
		Workouts []domain.LoggedWorkout `json:"workouts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/logged-workouts", nil, &out); err != nil {
		return nil, err
	}
	return out.Workouts, nil
}

// LogWorkout submits a completed session and returns the stored record.
func (c *Client) LogWorkout(ctx context.Context, req LogWorkoutRequest) (*domain.LoggedWorkout, error) {
	var out struct {
		Workout domain.LoggedWorkout `json:"workout"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/log-workout", req, &out); err != nil {
		return nil, err
	}
	return &out.Workout, nil
}

// DeleteWorkout removes one history entry by id.
func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/workouts/"+id, nil, nil)
}

// CurrentDay fetches the caller's pointer into the cycle.
func (c *Client) CurrentDay(ctx context.Context) (int, error) {
	var out struct {
		CurrentDay int `json:"currentDay"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/current-day", nil, &out); err != nil {
		return 0, err
	}
	return out.CurrentDay, nil
}

// SetCurrentDay writes the caller's pointer and returns the stored
// value, which callers should display instead of the requested one.
func (c *Client) SetCurrentDay(ctx context.Context, dayNumber int) (int, error) {
	body := map[string]int{"currentDay": dayNumber}
	var out struct {
		CurrentDay int `json:"currentDay"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/current-day", body, &out); err != nil {
		return 0, err
	}
	return out.CurrentDay, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
