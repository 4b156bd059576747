package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TipReader exposes the latest coach tip.
type TipReader interface {
	Current() (tip string, pending bool)
}

type CoachHandler struct {
	tips TipReader
}

func NewCoachHandler(tips TipReader) *CoachHandler {
	return &CoachHandler{tips: tips}
}

// GetTip returns the latest tip. While a newer one is being generated,
// pending is true and the previous tip (or the placeholder) is returned.
// @Router /coach/tip [get]
func (h *CoachHandler) GetTip(c *gin.Context) {
	tip, pending := h.tips.Current()
	c.JSON(http.StatusOK, gin.H{"tip": tip, "pending": pending})
}
