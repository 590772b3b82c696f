package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/catalog"
	"workout-tracker/internal/logger"
	"workout-tracker/internal/service"
)

// AdminHandler owns the database init/seed endpoint.
type AdminHandler struct {
	catalogService service.CatalogService
	workoutService service.WorkoutService
	seedUserID     string
	databaseName   string
	collectionName string
	log            *logger.Logger
}

// NewAdminHandler creates a new AdminHandler. seedUserID may be empty,
// in which case only the catalog is seeded.
func NewAdminHandler(catalogService service.CatalogService, workoutService service.WorkoutService, seedUserID, databaseName, collectionName string, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		workoutService: workoutService,
		seedUserID:     seedUserID,
		databaseName:   databaseName,
		collectionName: collectionName,
		log:            log,
	}
}

// InitDatabase handles POST /admin/init-database: installs the day
// definitions and exercise library under deterministic ids, plus the
// carried-over workout history when a seed user is configured. Safe to
// run repeatedly.
func (h *AdminHandler) InitDatabase(c *gin.Context) {
	days, exercises, err := h.catalogService.SeedCatalog(c.Request.Context())
	if err != nil {
		h.log.Error("database init failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to initialize database",
			"message": err.Error(),
		})
		return
	}

	seeded := gin.H{
		"workoutDays": days,
		"exercises":   exercises,
	}

	if h.seedUserID != "" {
		records := catalog.SeedHistory(h.seedUserID)
		drafts := make([]service.ImportDraft, len(records))
		for i, w := range records {
			drafts[i] = service.ImportDraft{
				ID:        w.ID,
				DayNumber: w.DayNumber,
				DayName:   w.DayName,
				Date:      w.Date,
				Mode:      w.Mode,
				Timestamp: w.Timestamp,
			}
		}
		result, err := h.workoutService.ImportWorkouts(c.Request.Context(), h.seedUserID, drafts)
		if err != nil {
			h.log.Error("history seed failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to initialize database",
				"message": err.Error(),
			})
			return
		}
		// Records already present from an earlier run count as skipped.
		seeded["workouts"] = len(result.Created)
		seeded["workoutsSkipped"] = len(result.Failures)
	}

	h.log.Info("database seeded", "workoutDays", days, "exercises", exercises)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Database initialized and seeded successfully",
		"database":  h.databaseName,
		"container": h.collectionName,
		"seeded":    seeded,
	})
}
