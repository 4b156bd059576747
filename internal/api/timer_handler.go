package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Click-facil/fitclick/internal/timer"
	"github.com/gin-gonic/gin"
)

type TimerHandler struct {
	restTimer       *timer.RestTimer
	defaultDuration time.Duration
}

func NewTimerHandler(restTimer *timer.RestTimer, defaultDuration time.Duration) *TimerHandler {
	if defaultDuration <= 0 {
		defaultDuration = timer.DefaultDuration
	}
	return &TimerHandler{restTimer: restTimer, defaultDuration: defaultDuration}
}

// StartTimerRequest omits seconds to use the configured default.
type StartTimerRequest struct {
	Seconds int `json:"seconds"`
}

type TimerResponse struct {
	Running          bool  `json:"running"`
	DurationSeconds  int   `json:"durationSeconds"`
	RemainingSeconds int   `json:"remainingSeconds"`
	PresetSeconds    []int `json:"presetSeconds"`
}

func (h *TimerHandler) status() TimerResponse {
	st := h.restTimer.Status()
	presets := make([]int, len(timer.Presets))
	for i, p := range timer.Presets {
		presets[i] = int(p / time.Second)
	}
	return TimerResponse{
		Running:          st.Running,
		DurationSeconds:  int(st.Duration / time.Second),
		RemainingSeconds: int(st.Remaining / time.Second),
		PresetSeconds:    presets,
	}
}

// @Router /timer [get]
func (h *TimerHandler) GetTimer(c *gin.Context) {
	c.JSON(http.StatusOK, h.status())
}

// StartTimer starts a countdown, replacing the running one.
// @Router /timer [post]
func (h *TimerHandler) StartTimer(c *gin.Context) {
	var req StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	d := h.defaultDuration
	if req.Seconds != 0 {
		d = time.Duration(req.Seconds) * time.Second
	}
	if err := h.restTimer.Start(d); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, h.status())
}

// @Router /timer [delete]
func (h *TimerHandler) StopTimer(c *gin.Context) {
	h.restTimer.Stop()
	c.JSON(http.StatusOK, h.status())
}
