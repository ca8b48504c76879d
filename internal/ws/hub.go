// Package ws is the notification relay: a room-partitioned
// publish/subscribe channel for appointment lifecycle events. Staff
// share one broadcast room; each patient has a room keyed by their own
// id, so a patient only ever sees events about their own appointments.
// Delivery is best-effort, at-most-once: no persistence, no replay, no
// backfill after reconnect.
package ws

import (
	"log/slog"
	"sync"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

const dentistRoom = "dentist-room"

func patientRoom(patientID string) string {
	return "patient:" + patientID
}

// Hub is the connection registry: room name to the set of connections
// subscribed to it. Publishing iterates the membership set under the
// lock and hands each client its frame without blocking; a client whose
// send buffer is full is dropped rather than waited on.
type Hub struct {
	logger *slog.Logger

	mu    sync.Mutex
	rooms map[string]map[*Client]bool
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		rooms:  make(map[string]map[*Client]bool),
	}
}

// JoinDentistRoom subscribes a staff connection to the shared broadcast
// room.
func (h *Hub) JoinDentistRoom(c *Client) {
	h.join(c, dentistRoom)
}

// JoinPatientRoom subscribes a patient connection to the room keyed by
// their own patient id.
func (h *Hub) JoinPatientRoom(c *Client, patientID string) {
	if patientID == "" {
		return
	}
	h.join(c, patientRoom(patientID))
}

func (h *Hub) join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]bool)
		h.rooms[room] = members
	}
	members[c] = true
	h.logger.Debug("client joined room", "room", room)
}

// Leave removes a connection from every room it joined and closes its
// send channel. Called once when the connection dies; any event
// published during the disconnection window is simply missed.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(c)
}

// drop removes c from all rooms. Caller holds h.mu.
func (h *Hub) drop(c *Client) {
	removed := false
	for room, members := range h.rooms {
		if members[c] {
			delete(members, c)
			removed = true
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	if removed {
		close(c.send)
	}
}

// Stats reports current membership per room.
func (h *Hub) Stats() map[string]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]int, len(h.rooms))
	for room, members := range h.rooms {
		out[room] = len(members)
	}
	return out
}

// publish delivers one frame to every member of a room. Fire and
// forget: a member that cannot accept the frame immediately is dropped
// from the registry instead of blocking the publisher.
func (h *Hub) publish(room string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- payload:
		default:
			h.logger.Warn("dropping slow notification client", "room", room)
			h.drop(c)
		}
	}
}

// PublishNewAppointment notifies the staff room about a fresh booking.
func (h *Hub) PublishNewAppointment(apt *models.Appointment) {
	h.publish(dentistRoom, encodeFrame(EventNewAppointment, NewAppointmentPayload(apt)))
}

// PublishStatusChange fans a lifecycle transition out to its audiences:
// appointment-updated to the staff room, appointment-status-changed to
// the owning patient's room, and additionally appointment-approved to
// the patient on the approved transition.
func (h *Hub) PublishStatusChange(apt *models.Appointment) {
	payload := NewAppointmentPayload(apt)
	h.publish(dentistRoom, encodeFrame(EventAppointmentUpdated, payload))

	severity, title, message := Presentation(apt.Status, apt.ActualDate, apt.ActualTime)
	changed := StatusChangedPayload{
		AppointmentPayload: payload,
		Severity:           severity,
		Title:              title,
		Message:            message,
	}
	room := patientRoom(apt.PatientID)
	h.publish(room, encodeFrame(EventStatusChanged, changed))
	if apt.Status == models.StatusApproved {
		h.publish(room, encodeFrame(EventApproved, changed))
	}
}
