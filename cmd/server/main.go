package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Click-facil/fitclick/internal/api"
	"github.com/Click-facil/fitclick/internal/clients/gemini"
	"github.com/Click-facil/fitclick/internal/coach"
	"github.com/Click-facil/fitclick/internal/config"
	"github.com/Click-facil/fitclick/internal/logging"
	"github.com/Click-facil/fitclick/internal/metrics"
	"github.com/Click-facil/fitclick/internal/repository/kv"
	"github.com/Click-facil/fitclick/internal/scheduler"
	"github.com/Click-facil/fitclick/internal/service"
	"github.com/Click-facil/fitclick/internal/storage"
	"github.com/Click-facil/fitclick/internal/timer"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	shutdownTimeout = 5 * time.Second
	backupTimeout   = 2 * time.Minute
)

// @title FitClick API
// @version 1.0
// @description Personal workout tracker: exercise library, workout sessions, history and stats.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logCloser := logging.Setup(cfg.Log)
	log.Info("starting FitClick server...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager("fitclick", "server", registry)

	// --- Storage ---
	store, err := openKVStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("could not open storage: %s", err)
	}

	exerciseRepo := kv.NewExerciseRepository(store)
	workoutRepo := kv.NewWorkoutRepository(store)

	// --- Coach ---
	var generator coach.TextGenerator
	if cfg.AI.APIKey != "" {
		generator = gemini.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout)
		log.Infof("coach tips enabled, model %s", cfg.AI.Model)
	} else {
		log.Warn("ai.api_key not set, coach will serve the fallback tip")
	}
	tipCoach := coach.New(generator, cfg.AI.Timeout, cfg.AI.CacheSizeMB, metricsManager)
	tipBoard := coach.NewTipBoard(tipCoach)

	// --- Services ---
	exerciseService := service.NewExerciseService(exerciseRepo, nil)
	tracker := service.NewTracker(
		workoutRepo,
		exerciseService,
		service.NewSessionBuilder(nil, nil),
		tipBoard,
		metricsManager,
	)
	if err := tracker.Refresh(ctx); err != nil {
		log.Fatalf("could not load data: %s", err)
	}
	log.Infof("loaded %d exercises and %d workouts", len(tracker.Exercises()), len(tracker.Workouts()))

	var snapshotStorage storage.SnapshotStorage
	if cfg.Backup.Enabled {
		snapshotStorage, err = storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("could not initialize S3 storage: %s", err)
		}
	}
	backupService := service.NewBackupService(exerciseRepo, workoutRepo, snapshotStorage, metricsManager, nil)

	backupScheduler := scheduler.New(time.Local, backupTimeout)
	if cfg.Backup.Enabled {
		if _, err := backupScheduler.Schedule("backup", cfg.Backup.Schedule, func(ctx context.Context) error {
			_, err := backupService.Backup(ctx)
			return err
		}); err != nil {
			log.Fatalf("invalid backup.schedule %q: %s", cfg.Backup.Schedule, err)
		}
		backupScheduler.Start()
		log.Infof("backups scheduled: %s", cfg.Backup.Schedule)
	}

	restTimer := timer.New(nil, func() {
		log.Info("rest is over, next set")
	})

	// --- HTTP ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(router, api.Dependencies{
		Tracker:             tracker,
		BackupService:       backupService,
		Tips:                tipBoard,
		RestTimer:           restTimer,
		DefaultRestDuration: cfg.Timer.DefaultDuration,
		Metrics:             metricsManager,
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	shutdownErr := server.Shutdown(ctxShutdown)
	backupScheduler.Stop()
	restTimer.Stop()
	tipBoard.Wait()
	shutdownErr = multierr.Append(shutdownErr, store.Close())

	if shutdownErr != nil {
		log.Errorf("shutdown finished with errors: %s", shutdownErr)
	} else {
		log.Info("server exiting")
	}
	if err := multierr.Append(shutdownErr, logCloser.Close()); err != nil {
		os.Exit(1)
	}
}
