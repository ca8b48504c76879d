package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus is the appointment lifecycle enumeration. An
// appointment is created pending and only ever moves by an explicit
// transition; records are never hard-deleted.
type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "pending"
	StatusApproved    AppointmentStatus = "approved"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusCompleted   AppointmentStatus = "completed"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRescheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type Appointment struct {
	ID            string            `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID     string            `gorm:"type:uuid;not null;index" json:"patientId"`
	Patient       Patient           `gorm:"foreignKey:PatientID" json:"patient"`
	Service       string            `gorm:"not null" json:"service"`
	PreferredDate time.Time         `gorm:"not null" json:"preferredDate"`
	PreferredTime string            `gorm:"not null" json:"preferredTime"`
	Notes         string            `json:"notes,omitempty"`
	Status        AppointmentStatus `gorm:"not null;default:pending;index" json:"status"`

	// Assigned by staff on approval or reschedule.
	ActualDate    *time.Time `json:"actualDate,omitempty"`
	ActualTime    string     `json:"actualTime,omitempty"`
	GoogleEventID string     `json:"googleEventId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
