package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/service"
)

// CatalogHandler serves the static day-definition and exercise data.
// These routes are unauthenticated: the catalog is the same for everyone.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// dayNumberParam parses and range-checks the :dayNumber path parameter.
// Rejection happens here, before any store call.
func dayNumberParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("dayNumber"))
	if err != nil || n < 1 || n > 12 {
		abortWithError(c, http.StatusBadRequest, "Invalid day number. Must be between 1 and 12.")
		return 0, false
	}
	return n, true
}

// GetWorkoutDay handles GET /workout-days/:dayNumber.
func (h *CatalogHandler) GetWorkoutDay(c *gin.Context) {
	dayNumber, ok := dayNumberParam(c)
	if !ok {
		return
	}

	day, err := h.catalogService.GetDayDefinition(c.Request.Context(), dayNumber)
	if err != nil {
		if errors.Is(err, service.ErrDayNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout day not found")
			return
		}
		abortWithInternalError(c, "Failed to fetch workout day", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workoutDay": day})
}

// GetExercisesByDay handles GET /exercises/day/:dayNumber.
func (h *CatalogHandler) GetExercisesByDay(c *gin.Context) {
	dayNumber, ok := dayNumberParam(c)
	if !ok {
		return
	}

	exercises, err := h.catalogService.ListExercisesByDay(c.Request.Context(), dayNumber)
	if err != nil {
		abortWithInternalError(c, "Failed to fetch exercises", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}
