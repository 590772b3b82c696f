package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/api"
	"workout-tracker/internal/catalog"
	"workout-tracker/internal/config"
	"workout-tracker/internal/logger"
	repomongo "workout-tracker/internal/repository/mongo"
	"workout-tracker/internal/service"
	"workout-tracker/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("starting workout tracker server")

	// --- Database Connection ---
	dbClient, err := repomongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		zlog.Fatal("could not connect to MongoDB", "error", err)
	}
	defer func() {
		zlog.Info("disconnecting MongoDB")
		if err := repomongo.DisconnectDB(dbClient); err != nil {
			zlog.Error("failed to disconnect MongoDB", "error", err)
		}
	}()
	records := dbClient.Database(cfg.Database.Name).Collection(cfg.Database.Collection)
	zlog.Info("database connection established",
		"database", cfg.Database.Name, "collection", cfg.Database.Collection)

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := repomongo.EnsureRecordIndexes(ctx, records); err != nil {
			zlog.Warn("index creation failed", "error", err)
		}
	}()

	// --- Initialize Repositories ---
	catalogRepo := repomongo.NewCatalogRepository(records)
	workoutRepo := repomongo.NewWorkoutRepository(records)
	settingsRepo := repomongo.NewSettingsRepository(records)

	// --- Initialize Services ---
	catalogService := service.NewCatalogService(catalogRepo, catalog.Days(), catalog.AllExercises())
	workoutService := service.NewWorkoutService(workoutRepo, settingsRepo, catalogRepo)

	var exportService service.ExportService
	if cfg.S3.BucketName != "" {
		objectStorage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			zlog.Fatal("failed to initialize object storage", "error", err)
		}
		exportService = service.NewExportService(workoutRepo, objectStorage, cfg.Export.URLExpiry)
		zlog.Info("history exports enabled", "bucket", cfg.S3.BucketName)
	} else {
		zlog.Info("history exports disabled: no S3 bucket configured")
	}

	// --- Auth ---
	verifier, err := api.NewTokenVerifier(cfg.Auth)
	if err != nil {
		zlog.Fatal("failed to initialize token verifier", "error", err)
	}

	// --- Router ---
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, zlog, verifier, cfg.CORS.AllowedOrigins, api.HealthCheck{
		Ping: func(ctx context.Context) error {
			return repomongo.Ping(ctx, dbClient)
		},
		Database:  cfg.Database.Name,
		Container: cfg.Database.Collection,
	}, cfg.Seed.HistoryUserID, catalogService, workoutService, exportService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zlog.Info("server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("listen and serve error", "error", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		zlog.Fatal("server forced to shutdown", "error", err)
	}

	zlog.Info("server exiting")
}
