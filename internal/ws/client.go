package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The site is public and the channel carries no secrets; origin
	// policy is enforced by the CORS layer on the REST side.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// joinMessage is the only inbound frame a client sends: immediately
// after connecting it declares its role, and for patients, which
// patient room to join.
type joinMessage struct {
	Action    string `json:"action"`
	PatientID string `json:"patientId,omitempty"`
}

const (
	actionJoinDentistRoom = "join-dentist-room"
	actionJoinPatientRoom = "join-patient-room"
)

// Client is one long-lived relay connection.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger
}

// Serve upgrades an HTTP request into a relay connection and runs its
// read/write pumps.
func Serve(hub *Hub, logger *slog.Logger, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		logger: logger,
	}
	go client.writePump()
	go client.readPump()
}

// readPump consumes join messages until the connection dies, then
// detaches the client from the hub. A reconnecting client starts from
// scratch: membership is re-established, missed events are not.
func (c *Client) readPump() {
	defer func() {
		c.hub.Leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			return
		}

		var msg joinMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.logger.Debug("ignoring malformed client frame")
			continue
		}
		switch msg.Action {
		case actionJoinDentistRoom:
			c.hub.JoinDentistRoom(c)
		case actionJoinPatientRoom:
			c.hub.JoinPatientRoom(c, msg.PatientID)
		default:
			c.logger.Debug("ignoring unknown client action", "action", msg.Action)
		}
	}
}

// writePump drains the send channel onto the socket and keeps the
// connection alive with pings. A failed write ends the connection; the
// event is lost, which is acceptable for this channel.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
