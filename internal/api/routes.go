package api

import (
	"net/http"
	"time"

	"github.com/Click-facil/fitclick/internal/metrics"
	"github.com/Click-facil/fitclick/internal/service"
	"github.com/Click-facil/fitclick/internal/timer"
	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators the HTTP layer talks to.
type Dependencies struct {
	Tracker             *service.Tracker
	BackupService       service.BackupService
	Tips                TipReader
	RestTimer           *timer.RestTimer
	DefaultRestDuration time.Duration
	Metrics             *metrics.Manager
	MetricsHandler      http.Handler // nil disables GET /metrics
	Now                 func() time.Time
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.Use(LogRequest())
	if deps.Metrics != nil {
		router.Use(RequestMetrics(deps.Metrics))
	}

	exerciseHandler := NewExerciseHandler(deps.Tracker)
	workoutHandler := NewWorkoutHandler(deps.Tracker, deps.Now)
	sessionHandler := NewSessionHandler(deps.Tracker)
	coachHandler := NewCoachHandler(deps.Tips)
	timerHandler := NewTimerHandler(deps.RestTimer, deps.DefaultRestDuration)
	backupHandler := NewBackupHandler(deps.BackupService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if deps.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	apiV1 := router.Group("/api/v1")
	{
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.GET("/:id/last", exerciseHandler.GetLastPerformance)
		}
		apiV1.GET("/categories", exerciseHandler.ListCategories)
		apiV1.GET("/templates", exerciseHandler.ListTemplates)

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}
		apiV1.GET("/stats/weekly", workoutHandler.GetWeeklyVolume)

		// --- Workout in progress ---
		sessionGroup := apiV1.Group("/session")
		{
			sessionGroup.GET("", sessionHandler.GetSession)
			sessionGroup.POST("", sessionHandler.StartSession)
			sessionGroup.DELETE("", sessionHandler.CancelSession)
			sessionGroup.POST("/save", sessionHandler.SaveSession)
			sessionGroup.PUT("/notes", sessionHandler.SetNotes)
			sessionGroup.POST("/exercises", sessionHandler.AddExercise)
			sessionGroup.PUT("/exercises/:sessionId", sessionHandler.ReplaceExercise)
			sessionGroup.DELETE("/exercises/:sessionId", sessionHandler.RemoveExercise)
			sessionGroup.POST("/exercises/:sessionId/sets", sessionHandler.AddSet)
			sessionGroup.PATCH("/exercises/:sessionId/sets/:setId", sessionHandler.UpdateSet)
		}

		apiV1.GET("/coach/tip", coachHandler.GetTip)

		timerGroup := apiV1.Group("/timer")
		{
			timerGroup.GET("", timerHandler.GetTimer)
			timerGroup.POST("", timerHandler.StartTimer)
			timerGroup.DELETE("", timerHandler.StopTimer)
		}

		apiV1.POST("/backups", backupHandler.CreateBackup)
		apiV1.DELETE("/backups/*key", backupHandler.DeleteBackup)
	}
}
