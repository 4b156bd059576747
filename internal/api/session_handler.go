package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/service"
	"github.com/gin-gonic/gin"
)

// SessionHandler edits the workout in progress.
type SessionHandler struct {
	tracker *service.Tracker
}

func NewSessionHandler(tracker *service.Tracker) *SessionHandler {
	return &SessionHandler{tracker: tracker}
}

// StartSessionRequest starts from a named template, from explicit exercise ids,
// or empty when both are missing.
type StartSessionRequest struct {
	Template    string   `json:"template"`
	ExerciseIDs []string `json:"exerciseIds"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type ExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
}

func (h *SessionHandler) respond(c *gin.Context, code int, w domain.Workout, err error) {
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(code, MapWorkoutToResponse(w, h.tracker.Exercises()))
}

// GetSession returns the workout in progress.
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	w, ok := h.tracker.Active()
	if !ok {
		abortWithError(c, http.StatusNotFound, service.ErrNoActiveWorkout.Error())
		return
	}
	h.respond(c, http.StatusOK, w, nil)
}

// StartSession godoc
// @Summary Start a workout, replacing any unsaved one
// @Tags Session
// @Accept json
// @Produce json
// @Param body body StartSessionRequest false "Template name or exercise ids"
// @Success 201 {object} WorkoutResponse
// @Failure 404 {object} gin.H "Unknown template"
// @Router /session [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if req.Template != "" {
		w, err := h.tracker.StartTemplate(req.Template)
		h.respond(c, http.StatusCreated, w, err)
		return
	}
	h.respond(c, http.StatusCreated, h.tracker.StartWorkout(req.ExerciseIDs...), nil)
}

// CancelSession discards the workout in progress.
// @Router /session [delete]
func (h *SessionHandler) CancelSession(c *gin.Context) {
	if err := h.tracker.CancelActive(); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveSession commits the workout in progress to the history.
// @Router /session/save [post]
func (h *SessionHandler) SaveSession(c *gin.Context) {
	w, err := h.tracker.SaveActive(c.Request.Context())
	h.respond(c, http.StatusCreated, w, err)
}

// @Router /session/notes [put]
func (h *SessionHandler) SetNotes(c *gin.Context) {
	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	w, err := h.tracker.SetActiveNotes(req.Notes)
	h.respond(c, http.StatusOK, w, err)
}

// AddExercise appends an exercise, prefilled from its last performance.
// @Router /session/exercises [post]
func (h *SessionHandler) AddExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	w, err := h.tracker.AddExerciseToActive(req.ExerciseID)
	h.respond(c, http.StatusCreated, w, err)
}

// ReplaceExercise swaps the exercise of a session, keeping its sets.
// @Router /session/exercises/{sessionId} [put]
func (h *SessionHandler) ReplaceExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	w, err := h.tracker.ReplaceExerciseInActive(c.Param("sessionId"), req.ExerciseID)
	h.respond(c, http.StatusOK, w, err)
}

// @Router /session/exercises/{sessionId} [delete]
func (h *SessionHandler) RemoveExercise(c *gin.Context) {
	w, err := h.tracker.RemoveExerciseFromActive(c.Param("sessionId"))
	h.respond(c, http.StatusOK, w, err)
}

// AddSet appends a set continuing from the last one of the session.
// @Router /session/exercises/{sessionId}/sets [post]
func (h *SessionHandler) AddSet(c *gin.Context) {
	w, err := h.tracker.AddSetToActive(c.Param("sessionId"))
	h.respond(c, http.StatusCreated, w, err)
}

// UpdateSet applies a partial update: any of weight, reps, completed.
// @Router /session/exercises/{sessionId}/sets/{setId} [patch]
func (h *SessionHandler) UpdateSet(c *gin.Context) {
	var patch domain.SetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	w, err := h.tracker.UpdateSetInActive(c.Param("sessionId"), c.Param("setId"), patch)
	h.respond(c, http.StatusOK, w, err)
}
