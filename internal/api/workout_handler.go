package api

import (
	"net/http"
	"time"

	"github.com/Click-facil/fitclick/internal/service"
	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves the saved history and the stats derived from it.
type WorkoutHandler struct {
	tracker *service.Tracker
	now     func() time.Time
}

func NewWorkoutHandler(tracker *service.Tracker, now func() time.Time) *WorkoutHandler {
	if now == nil {
		now = time.Now
	}
	return &WorkoutHandler{tracker: tracker, now: now}
}

// ListWorkouts godoc
// @Summary Workout history, newest first
// @Tags Workouts
// @Produce json
// @Success 200 {array} WorkoutResponse
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, MapWorkoutsToResponse(h.tracker.History(), h.tracker.Exercises()))
}

// DeleteWorkout removes a saved workout. Unknown ids succeed as well.
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.tracker.DeleteWorkout(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWeeklyVolume returns the volume of the last 7 days. The optional tz query
// parameter (IANA name) decides where day boundaries fall.
// @Router /stats/weekly [get]
func (h *WorkoutHandler) GetWeeklyVolume(c *gin.Context) {
	ref := h.now()
	if tz := c.Query("tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid time zone: "+tz)
			return
		}
		ref = ref.In(loc)
	}
	c.JSON(http.StatusOK, h.tracker.WeeklyVolume(ref))
}
