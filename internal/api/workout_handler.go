package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/logger"
	"workout-tracker/internal/service"
)

// WorkoutHandler owns the authenticated logged-workout, current-day and
// export routes. Every handler resolves the caller from the verified
// token and calls exactly one service operation.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	exportService  service.ExportService
	log            *logger.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, exportService service.ExportService, log *logger.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		exportService:  exportService,
		log:            log,
	}
}

// --- DTOs ---

// LogWorkoutRequest is the body of POST /log-workout.
type LogWorkoutRequest struct {
	DayNumber int                        `json:"dayNumber"`
	DayName   string                     `json:"dayName"`
	Mode      domain.Mode                `json:"mode"`
	Date      string                     `json:"date"`
	Exercises []domain.CompletedExercise `json:"exercises"`
}

// LegacyWorkoutRequest is the body of the pre-rework POST /workouts.
type LegacyWorkoutRequest struct {
	DayNumber int     `json:"dayNumber"`
	Exercise  string  `json:"exercise"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Sets      int     `json:"sets"`
	Date      string  `json:"date"`
}

// BulkImportItem is one draft of POST /workouts/bulk. Migrated records
// may carry their original id and recording instant.
type BulkImportItem struct {
	ID        string                     `json:"id"`
	DayNumber int                        `json:"dayNumber"`
	DayName   string                     `json:"dayName"`
	Date      string                     `json:"date"`
	Mode      domain.Mode                `json:"mode"`
	Exercises []domain.CompletedExercise `json:"exercises"`
	Timestamp time.Time                  `json:"timestamp"`
}

// BulkImportRequest is the body of POST /workouts/bulk.
type BulkImportRequest struct {
	Workouts []BulkImportItem `json:"workouts"`
}

// SetCurrentDayRequest is the body of PUT /current-day.
type SetCurrentDayRequest struct {
	CurrentDay int `json:"currentDay"`
}

// --- Handler Methods ---

// ListLoggedWorkouts handles GET /logged-workouts: the user's history,
// most recent date first.
func (h *WorkoutHandler) ListLoggedWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workouts, err := h.workoutService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("failed to list logged workouts", "userId", userID, "error", err)
		abortWithInternalError(c, "Failed to fetch logged workouts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// LogWorkout handles POST /log-workout. Responds 201 with the stored
// record, including the server-assigned id and creation instant.
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.workoutService.LogWorkout(c.Request.Context(), userID, service.LogDraft{
		DayNumber: req.DayNumber,
		DayName:   req.DayName,
		Date:      req.Date,
		Mode:      req.Mode,
		Exercises: req.Exercises,
	})
	if err != nil {
		if isValidationError(err) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("failed to log workout", "userId", userID, "error", err)
		abortWithInternalError(c, "Failed to log workout", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workout": workout})
}

// ListWorkoutsLegacy handles GET /workouts, serving the flattened
// pre-rework shape over the same records as /logged-workouts.
func (h *WorkoutHandler) ListWorkoutsLegacy(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workouts, err := h.workoutService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("failed to list workouts", "userId", userID, "error", err)
		abortWithInternalError(c, "Failed to fetch workouts", err)
		return
	}

	views := make([]domain.LegacyWorkoutView, len(workouts))
	for i, w := range workouts {
		views[i] = w.LegacyView()
	}
	c.JSON(http.StatusOK, gin.H{"workouts": views})
}

// ListWorkoutsByDay handles GET /workouts/day/:dayNumber.
func (h *WorkoutHandler) ListWorkoutsByDay(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	dayNumber, ok := dayNumberParam(c)
	if !ok {
		return
	}

	workouts, err := h.workoutService.ListHistoryByDay(c.Request.Context(), userID, dayNumber)
	if err != nil {
		h.log.Error("failed to list workouts by day", "userId", userID, "day", dayNumber, "error", err)
		abortWithInternalError(c, "Failed to fetch workouts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// CreateWorkoutLegacy handles the pre-rework POST /workouts.
func (h *WorkoutHandler) CreateWorkoutLegacy(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req LegacyWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.workoutService.LogLegacyWorkout(c.Request.Context(), userID, service.LegacyDraft{
		DayNumber: req.DayNumber,
		Exercise:  req.Exercise,
		Weight:    req.Weight,
		Reps:      req.Reps,
		Sets:      req.Sets,
		Date:      req.Date,
	})
	if err != nil {
		if isValidationError(err) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("failed to create workout", "userId", userID, "error", err)
		abortWithInternalError(c, "Failed to create workout", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workout": workout})
}

// BulkImportWorkouts handles POST /workouts/bulk. Drafts are processed
// independently; the response always reports per-item outcomes and the
// status is 201 even on partial failure.
func (h *WorkoutHandler) BulkImportWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Request body must contain an array of workouts")
		return
	}
	if req.Workouts == nil {
		abortWithError(c, http.StatusBadRequest, "Request body must contain an array of workouts")
		return
	}

	drafts := make([]service.ImportDraft, len(req.Workouts))
	for i, item := range req.Workouts {
		drafts[i] = service.ImportDraft{
			ID:        item.ID,
			DayNumber: item.DayNumber,
			DayName:   item.DayName,
			Date:      item.Date,
			Mode:      item.Mode,
			Exercises: item.Exercises,
			Timestamp: item.Timestamp,
		}
	}

	result, err := h.workoutService.ImportWorkouts(c.Request.Context(), userID, drafts)
	if err != nil {
		h.log.Error("bulk import failed", "userId", userID, "error", err)
		abortWithInternalError(c, "Failed to import workouts", err)
		return
	}

	response := gin.H{
		"success":  len(result.Created),
		"failed":   len(result.Failures),
		"workouts": result.Created,
	}
	if len(result.Failures) > 0 {
		response["errors"] = result.Failures
	}
	c.JSON(http.StatusCreated, response)
}

// DeleteWorkout handles DELETE /workouts/:id. The record must belong to
// the caller; anything else reports not found.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workoutID := c.Param("id")
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
			return
		}
		h.log.Error("failed to delete workout", "userId", userID, "workoutId", workoutID, "error", err)
		abortWithInternalError(c, "Failed to delete workout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully", "id": workoutID})
}

// GetCurrentDay handles GET /current-day, defaulting to 1 for a user
// with no settings record.
func (h *WorkoutHandler) GetCurrentDay(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	currentDay, err := h.workoutService.CurrentDay(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("failed to fetch current day", "userId", userID, "error", err)
		abortWithInternalError(c, "Failed to fetch current day", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"currentDay": currentDay})
}

// SetCurrentDay handles PUT /current-day.
func (h *WorkoutHandler) SetCurrentDay(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req SetCurrentDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	currentDay, err := h.workoutService.SetCurrentDay(c.Request.Context(), userID, req.CurrentDay)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDay) {
			abortWithError(c, http.StatusBadRequest, "Invalid day number. Must be between 1 and 12.")
			return
		}
		h.log.Error("failed to update current day", "userId", userID, "error", err)
		abortWithInternalError(c, "Failed to update current day", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"currentDay": currentDay})
}

// ExportHistory handles POST /export: snapshots the caller's history to
// object storage and returns a short-lived download URL.
func (h *WorkoutHandler) ExportHistory(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	url, count, err := h.exportService.ExportHistory(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("failed to export history", "userId", userID, "error", err)
		abortWithInternalError(c, "Failed to export workout history", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "workouts": count})
}

// isValidationError reports whether err belongs to the 400 family.
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidDay) ||
		errors.Is(err, service.ErrMissingDayNumber) ||
		errors.Is(err, service.ErrMissingExercise) ||
		errors.Is(err, service.ErrValidationFailed)
}
