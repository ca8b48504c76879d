package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func validBooking() map[string]any {
	return map[string]any{
		"firstName":     "Ann",
		"lastName":      "Lee",
		"email":         "ann@x.com",
		"phone":         "5551234567",
		"service":       "Regular Cleaning",
		"preferredDate": futureDate(),
		"preferredTime": "09:00",
	}
}

func TestBookAppointment_Success(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/appointments", validBooking(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var apt models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apt))
	require.Equal(t, models.StatusPending, apt.Status)
	require.Equal(t, "ann@x.com", apt.Patient.Email)
	require.NotEmpty(t, apt.PatientID)
}

func TestBookAppointment_ValidationRejectedBeforePersistence(t *testing.T) {
	f := newFixture(t)

	bad := validBooking()
	bad["email"] = "not-an-email"
	w := f.do(t, http.MethodPost, "/api/appointments", bad, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Email")

	var patients int64
	require.NoError(t, f.db.Model(&models.Patient{}).Count(&patients).Error)
	require.Zero(t, patients, "nothing may be persisted on validation failure")
}

func TestBookAppointment_RejectsPastDate(t *testing.T) {
	f := newFixture(t)

	bad := validBooking()
	bad["preferredDate"] = "2020-01-01"
	w := f.do(t, http.MethodPost, "/api/appointments", bad, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookAppointment_AcceptsToday(t *testing.T) {
	f := newFixture(t)

	// Same-day bookings are valid regardless of server time zone.
	body := validBooking()
	body["preferredDate"] = time.Now().Format("2006-01-02")
	w := f.do(t, http.MethodPost, "/api/appointments", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestBookAppointment_RepeatEmailUpdatesPatient(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/appointments", validBooking(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	second := validBooking()
	second["firstName"] = "Anne"
	second["lastName"] = "Leigh"
	w = f.do(t, http.MethodPost, "/api/appointments", second, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var patients []models.Patient
	require.NoError(t, f.db.Find(&patients).Error)
	require.Len(t, patients, 1, "same email must not duplicate the patient")
	require.Equal(t, "Anne", patients[0].FirstName)

	var appointments int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&appointments).Error)
	require.EqualValues(t, 2, appointments)
}

func TestAdminAppointments_RequireToken(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/admin/appointments", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/api/admin/appointments", nil, map[string]string{
		"Authorization": "Bearer bogus",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/api/admin/appointments", nil, staffAuth(t))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAppointmentStatus_Flow(t *testing.T) {
	f := newFixture(t)
	auth := staffAuth(t)

	w := f.do(t, http.MethodPost, "/api/appointments", validBooking(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var apt models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apt))

	w = f.do(t, http.MethodPatch, "/api/admin/appointments/"+apt.ID+"/status", map[string]any{
		"status":     "approved",
		"actualDate": "2025-01-11",
		"actualTime": "10:00",
	}, auth)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, models.StatusApproved, updated.Status)
	require.Equal(t, "10:00", updated.ActualTime)

	// pending is not a valid transition target
	w = f.do(t, http.MethodPatch, "/api/admin/appointments/"+apt.ID+"/status", map[string]any{
		"status": "pending",
	}, auth)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPatch, "/api/admin/appointments/unknown/status", map[string]any{
		"status": "cancelled",
	}, auth)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// dialWS connects to the relay through the real HTTP server and sends a
// join frame.
func dialWS(t *testing.T, serverURL string, join map[string]any) *websocket.Conn {
	t.Helper()
	wsURL := strings.Replace(serverURL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.WriteJSON(join))
	return conn
}

func waitForMembers(t *testing.T, f *fixture, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		total := 0
		for _, n := range f.hub.Stats() {
			total += n
		}
		return total >= want
	}, 2*time.Second, 10*time.Millisecond)
}

type wsFrame struct {
	Event string `json:"event"`
	Data  struct {
		PatientID string `json:"patientId"`
		Status    string `json:"status"`
		Severity  string `json:"severity"`
		Title     string `json:"title"`
		Message   string `json:"message"`
	} `json:"data"`
}

func readFrame(t *testing.T, conn *websocket.Conn) wsFrame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f wsFrame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestNotificationRelay_EndToEnd(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	// Book first so we know the patient id for the room key.
	w := f.do(t, http.MethodPost, "/api/appointments", validBooking(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var apt models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apt))

	staff := dialWS(t, srv.URL, map[string]any{"action": "join-dentist-room"})
	owner := dialWS(t, srv.URL, map[string]any{"action": "join-patient-room", "patientId": apt.PatientID})
	stranger := dialWS(t, srv.URL, map[string]any{"action": "join-patient-room", "patientId": "someone-else"})
	waitForMembers(t, f, 3)

	wr := f.do(t, http.MethodPatch, "/api/admin/appointments/"+apt.ID+"/status", map[string]any{
		"status":     "approved",
		"actualDate": "2025-01-11",
		"actualTime": "10:00",
	}, staffAuth(t))
	require.Equal(t, http.StatusOK, wr.Code)

	frame := readFrame(t, staff)
	require.Equal(t, "appointment-updated", frame.Event)
	require.Equal(t, apt.PatientID, frame.Data.PatientID)

	frame = readFrame(t, owner)
	require.Equal(t, "appointment-status-changed", frame.Event)
	require.Equal(t, "success", frame.Data.Severity)
	require.Equal(t, "Appointment Confirmed!", frame.Data.Title)
	require.Contains(t, frame.Data.Message, "January 11, 2025")
	require.Contains(t, frame.Data.Message, "10:00")

	frame = readFrame(t, owner)
	require.Equal(t, "appointment-approved", frame.Event)

	// The stranger's room stays silent.
	stranger.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var unexpected wsFrame
	err := stranger.ReadJSON(&unexpected)
	require.Error(t, err, "other patients must not receive the event")
}
