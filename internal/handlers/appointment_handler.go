package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
	"github.com/youssefchaouch/dental-practice-api/internal/store"
)

// BookAppointmentRequest is the public booking form contract.
// Validation runs before any persistence is attempted.
type BookAppointmentRequest struct {
	FirstName     string `json:"firstName" binding:"required,min=2"`
	LastName      string `json:"lastName" binding:"required,min=2"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,min=10"`
	DateOfBirth   string `json:"dateOfBirth"`
	Address       string `json:"address"`
	Service       string `json:"service" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime" binding:"required"`
	Notes         string `json:"notes"`
}

// BookAppointment handles the public booking form: upserts the patient
// by email, creates a pending appointment and notifies the staff room.
func (h *Handler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preferredDate, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "preferredDate must be YYYY-MM-DD"})
		return
	}
	// Compare calendar days, not instants. Truncating a wall-clock
	// Now() would round to UTC day boundaries and misclassify dates
	// near midnight for servers outside UTC.
	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if preferredDate.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "preferredDate must not be in the past"})
		return
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dateOfBirth must be YYYY-MM-DD"})
			return
		}
		dateOfBirth = &dob
	}

	patient, err := h.Store.UpsertPatientByEmail(c.Request.Context(), store.PatientInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: dateOfBirth,
		Address:     req.Address,
	})
	if err != nil {
		h.Logger.Error("failed to upsert patient", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	apt, err := h.Store.CreateAppointment(c.Request.Context(), store.AppointmentInput{
		PatientID:     patient.ID,
		Service:       req.Service,
		PreferredDate: preferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
	})
	if err != nil {
		h.Logger.Error("failed to create appointment", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	h.Hub.PublishNewAppointment(apt)

	c.JSON(http.StatusCreated, apt)
}

// ListAppointments lists appointments for the staff dashboard, newest
// first, optionally filtered by lifecycle status.
func (h *Handler) ListAppointments(c *gin.Context) {
	status := models.AppointmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
		return
	}

	appointments, err := h.Store.AppointmentsByStatus(c.Request.Context(), status)
	if err != nil {
		h.Logger.Error("failed to list appointments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointment fetches one appointment with its patient.
func (h *Handler) GetAppointment(c *gin.Context) {
	apt, err := h.Store.AppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		h.Logger.Error("failed to fetch appointment", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
		return
	}
	c.JSON(http.StatusOK, apt)
}

// UpdateStatusRequest is the staff transition contract. Pending is not
// a valid target: appointments only start there.
type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=approved rescheduled cancelled completed"`
	ActualDate    string `json:"actualDate"`
	ActualTime    string `json:"actualTime"`
	GoogleEventID string `json:"googleEventId"`
}

// UpdateAppointmentStatus applies a lifecycle transition and fans the
// event out to the staff room and the owning patient's room.
func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.StatusUpdate{
		Status:        models.AppointmentStatus(req.Status),
		ActualTime:    req.ActualTime,
		GoogleEventID: req.GoogleEventID,
	}
	if req.ActualDate != "" {
		d, err := time.Parse("2006-01-02", req.ActualDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "actualDate must be YYYY-MM-DD"})
			return
		}
		upd.ActualDate = &d
	}

	apt, err := h.Store.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		h.Logger.Error("failed to update appointment status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	h.Hub.PublishStatusChange(apt)

	c.JSON(http.StatusOK, apt)
}
