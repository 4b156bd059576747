package api

import (
	"net/http"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/service"
	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the exercise library, categories and templates.
type ExerciseHandler struct {
	tracker *service.Tracker
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(tracker *service.Tracker) *ExerciseHandler {
	return &ExerciseHandler{tracker: tracker}
}

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category domain.Category `json:"category" binding:"required"`
}

// CreateExercise godoc
// @Summary Create a new exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.tracker.CreateExercise(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(*exercise))
}

// ListExercises godoc
// @Summary List the exercise library
// @Tags Exercises
// @Produce json
// @Success 200 {array} ExerciseResponse
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, MapExercisesToResponse(h.tracker.Exercises()))
}

// DeleteExercise removes an exercise. Unknown ids succeed as well.
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	if err := h.tracker.DeleteExercise(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetLastPerformance returns the sets of the most recent session of an exercise.
// @Router /exercises/{id}/last [get]
func (h *ExerciseHandler) GetLastPerformance(c *gin.Context) {
	sets, ok := h.tracker.LastPerformance(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "No previous performance for this exercise.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exerciseId": c.Param("id"),
		"sets":       MapSetsToResponse(sets),
	})
}

func (h *ExerciseHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Categories)
}

func (h *ExerciseHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, MapTemplatesToResponse(domain.Templates, h.tracker.Exercises()))
}
