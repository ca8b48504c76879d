package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SubmitReviewRequest is the public testimonial form. There is no
// isApproved field on purpose: a submitted review is always unapproved
// until staff flip it out-of-band.
type SubmitReviewRequest struct {
	PatientName string `json:"patientName" binding:"required,min=2"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment" binding:"required"`
}

// ListReviews returns approved reviews only, newest first.
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.Store.ApprovedReviews(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list reviews", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// SubmitReview persists an unapproved review.
func (h *Handler) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.Store.CreateReview(c.Request.Context(), req.PatientName, req.Rating, req.Comment)
	if err != nil {
		h.Logger.Error("failed to create review", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}
