package ws

import (
	"encoding/json"
	"time"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

// Event names emitted by the relay. The client listens for these by
// name; both appointment-status-changed and appointment-approved fire
// on the approved transition, matching the frontend contract.
const (
	EventNewAppointment     = "new-appointment"
	EventAppointmentUpdated = "appointment-updated"
	EventStatusChanged      = "appointment-status-changed"
	EventApproved           = "appointment-approved"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// PatientRef is the patient summary embedded in event payloads.
type PatientRef struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AppointmentPayload is the shared appointment shape carried by the
// staff-room events.
type AppointmentPayload struct {
	ID            string                   `json:"id"`
	PatientID     string                   `json:"patientId"`
	Patient       PatientRef               `json:"patient"`
	Service       string                   `json:"service"`
	Status        models.AppointmentStatus `json:"status"`
	PreferredDate string                   `json:"preferredDate"`
	PreferredTime string                   `json:"preferredTime"`
	ActualDate    string                   `json:"actualDate,omitempty"`
	ActualTime    string                   `json:"actualTime,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
}

// StatusChangedPayload is the patient-room shape: the appointment facts
// plus the presentation already resolved server-side, so every client
// renders the same severity, title and message.
type StatusChangedPayload struct {
	AppointmentPayload
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
}

// frame is the wire envelope: {"event": ..., "data": ...}.
type frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func encodeFrame(event string, data any) []byte {
	b, err := json.Marshal(frame{Event: event, Data: data})
	if err != nil {
		// Payload types are plain structs; this cannot fail at runtime.
		return []byte(`{"event":"` + event + `"}`)
	}
	return b
}

// NewAppointmentPayload maps a persisted appointment into its event
// shape.
func NewAppointmentPayload(apt *models.Appointment) AppointmentPayload {
	p := AppointmentPayload{
		ID:        apt.ID,
		PatientID: apt.PatientID,
		Patient: PatientRef{
			FirstName: apt.Patient.FirstName,
			LastName:  apt.Patient.LastName,
			Email:     apt.Patient.Email,
		},
		Service:       apt.Service,
		Status:        apt.Status,
		PreferredDate: apt.PreferredDate.Format("2006-01-02"),
		PreferredTime: apt.PreferredTime,
		ActualTime:    apt.ActualTime,
		Notes:         apt.Notes,
	}
	if apt.ActualDate != nil {
		p.ActualDate = apt.ActualDate.Format("2006-01-02")
	}
	return p
}

// Presentation resolves the fixed severity/title/message for a
// lifecycle transition. Approved and rescheduled messages interpolate
// the actual date/time when assigned and fall back to the requested
// ones otherwise. Pending has no presentation; a pending appointment
// never reaches the patient room.
func Presentation(status models.AppointmentStatus, actualDate *time.Time, actualTime string) (Severity, string, string) {
	switch status {
	case models.StatusApproved:
		date := "the requested date"
		if actualDate != nil {
			date = actualDate.Format("January 2, 2006")
		}
		at := "the requested time"
		if actualTime != "" {
			at = actualTime
		}
		return SeveritySuccess, "Appointment Confirmed!",
			"Your appointment has been approved for " + date + " at " + at + "."
	case models.StatusRescheduled:
		date := "a new date"
		if actualDate != nil {
			date = actualDate.Format("January 2, 2006")
		}
		at := "a new time"
		if actualTime != "" {
			at = actualTime
		}
		return SeverityWarning, "Appointment Rescheduled",
			"Your appointment has been rescheduled to " + date + " at " + at + "."
	case models.StatusCancelled:
		return SeverityError, "Appointment Cancelled",
			"Your appointment has been cancelled. Please contact us to reschedule."
	case models.StatusCompleted:
		return SeveritySuccess, "Appointment Completed",
			"Your appointment has been completed. Thank you for visiting us!"
	default:
		return SeverityInfo, "Appointment Updated", "Your appointment has been updated."
	}
}
