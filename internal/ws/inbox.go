package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultRetention is how long a delivered notification stays visible
// before it is evicted automatically.
const DefaultRetention = 8 * time.Second

// Notification is one delivered relay event, held client-side for a
// bounded display window. Never persisted.
type Notification struct {
	ID          string               `json:"id"`
	Severity    Severity             `json:"severity"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	Timestamp   time.Time            `json:"timestamp"`
	Appointment StatusChangedPayload `json:"appointment"`
}

// Inbox is the client-side retention buffer: an ordered,
// most-recent-first notification list. Each entry is evicted after the
// retention window unless dismissed earlier; dismissal of one entry or
// all at once is supported.
type Inbox struct {
	retention time.Duration

	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
}

// NewInbox creates an inbox. A non-positive retention falls back to
// DefaultRetention.
func NewInbox(retention time.Duration) *Inbox {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Inbox{
		retention: retention,
		timers:    make(map[string]*time.Timer),
	}
}

// Add prepends a notification and schedules its eviction. Returns the
// assigned notification id.
func (in *Inbox) Add(payload StatusChangedPayload) string {
	n := Notification{
		ID:          uuid.NewString(),
		Severity:    payload.Severity,
		Title:       payload.Title,
		Message:     payload.Message,
		Timestamp:   time.Now(),
		Appointment: payload,
	}

	in.mu.Lock()
	in.items = append([]Notification{n}, in.items...)
	in.timers[n.ID] = time.AfterFunc(in.retention, func() {
		in.Dismiss(n.ID)
	})
	in.mu.Unlock()

	return n.ID
}

// Dismiss removes one notification, cancelling its eviction timer.
func (in *Inbox) Dismiss(id string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if t, ok := in.timers[id]; ok {
		t.Stop()
		delete(in.timers, id)
	}
	for i, n := range in.items {
		if n.ID == id {
			in.items = append(in.items[:i], in.items[i+1:]...)
			break
		}
	}
}

// Clear removes everything at once.
func (in *Inbox) Clear() {
	in.mu.Lock()
	defer in.mu.Unlock()
	for id, t := range in.timers {
		t.Stop()
		delete(in.timers, id)
	}
	in.items = nil
}

// List returns a snapshot, most recent first.
func (in *Inbox) List() []Notification {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := make([]Notification, len(in.items))
	copy(out, in.items)
	return out
}
