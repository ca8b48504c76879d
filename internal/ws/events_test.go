package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

func TestPresentation_Approved(t *testing.T) {
	actual := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	severity, title, message := Presentation(models.StatusApproved, &actual, "10:00")
	require.Equal(t, SeveritySuccess, severity)
	require.Equal(t, "Appointment Confirmed!", title)
	require.Equal(t, "Your appointment has been approved for January 11, 2025 at 10:00.", message)
}

func TestPresentation_ApprovedFallsBackToRequested(t *testing.T) {
	severity, _, message := Presentation(models.StatusApproved, nil, "")
	require.Equal(t, SeveritySuccess, severity)
	require.Equal(t, "Your appointment has been approved for the requested date at the requested time.", message)
}

func TestPresentation_Rescheduled(t *testing.T) {
	severity, title, message := Presentation(models.StatusRescheduled, nil, "")
	require.Equal(t, SeverityWarning, severity)
	require.Equal(t, "Appointment Rescheduled", title)
	require.Contains(t, message, "a new date")
	require.Contains(t, message, "a new time")
}

func TestPresentation_CancelledAndCompleted(t *testing.T) {
	severity, title, _ := Presentation(models.StatusCancelled, nil, "")
	require.Equal(t, SeverityError, severity)
	require.Equal(t, "Appointment Cancelled", title)

	severity, title, _ = Presentation(models.StatusCompleted, nil, "")
	require.Equal(t, SeveritySuccess, severity)
	require.Equal(t, "Appointment Completed", title)
}
