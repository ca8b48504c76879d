package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListServices returns the active catalog used to populate the booking
// form's service selector.
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.Store.ActiveServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list services", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}
	c.JSON(http.StatusOK, services)
}
