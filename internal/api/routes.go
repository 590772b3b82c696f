package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"workout-tracker/internal/logger"
	"workout-tracker/internal/service"
)

// HealthCheck describes the backing store for the health endpoint.
type HealthCheck struct {
	Ping      func(ctx context.Context) error
	Database  string
	Container string
}

// SetupRoutes wires the full HTTP surface onto the router.
func SetupRoutes(
	router *gin.Engine,
	log *logger.Logger,
	verifier *TokenVerifier,
	allowedOrigins []string,
	health HealthCheck,
	seedUserID string,
	catalogService service.CatalogService,
	workoutService service.WorkoutService,
	exportService service.ExportService,
) {
	catalogHandler := NewCatalogHandler(catalogService)
	workoutHandler := NewWorkoutHandler(workoutService, exportService, log)
	adminHandler := NewAdminHandler(catalogService, workoutService, seedUserID, health.Database, health.Container, log)

	// Only the configured origins may call the API with credentials.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		if health.Ping != nil {
			pingCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			defer cancel()
			if err := health.Ping(pingCtx); err != nil {
				status = "degraded"
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  health.Database,
			"container": health.Container,
		})
	})

	authMiddleware := AuthMiddleware(verifier)

	apiGroup := router.Group("/api")
	{
		// Catalog routes are public.
		apiGroup.GET("/workout-days/:dayNumber", catalogHandler.GetWorkoutDay)
		apiGroup.GET("/exercises/day/:dayNumber", catalogHandler.GetExercisesByDay)

		protected := apiGroup.Group("")
		protected.Use(authMiddleware)
		{
			protected.GET("/logged-workouts", workoutHandler.ListLoggedWorkouts)
			protected.POST("/log-workout", workoutHandler.LogWorkout)

			protected.GET("/workouts", workoutHandler.ListWorkoutsLegacy)
			protected.GET("/workouts/day/:dayNumber", workoutHandler.ListWorkoutsByDay)
			protected.POST("/workouts", workoutHandler.CreateWorkoutLegacy)
			protected.POST("/workouts/bulk", workoutHandler.BulkImportWorkouts)
			protected.DELETE("/workouts/:id", workoutHandler.DeleteWorkout)

			protected.GET("/current-day", workoutHandler.GetCurrentDay)
			protected.PUT("/current-day", workoutHandler.SetCurrentDay)

			// Export is only wired when object storage is configured.
			if exportService != nil {
				protected.POST("/export", workoutHandler.ExportHistory)
			}

			protected.POST("/admin/init-database", adminHandler.InitDatabase)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
