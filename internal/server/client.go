package server

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"klondike/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client represents a single WebSocket connection to a table. Whether
// it controls the game depends on who holds the table's seat, not on
// the connection itself.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	PlayerID string
}

func NewClient(hub *Hub, conn *websocket.Conn, playerID string) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, 256),
		PlayerID: playerID,
	}
}

// ReadPump reads messages from the WebSocket and forwards to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("ws read error", "error", err)
			}
			break
		}
		var env protocol.Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			slog.Warn("ws parse error", "error", err)
			continue
		}
		c.hub.incoming <- IncomingMessage{Client: c, Envelope: env}
	}
}

// WritePump writes messages from the send channel to the WebSocket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

// SendEnvelope sends a typed message to this client.
func (c *Client) SendEnvelope(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		slog.Error("marshal error", "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
		slog.Warn("client send buffer full, dropping message", "player", c.PlayerID)
	}
}

// IncomingMessage pairs a message with its source client.
type IncomingMessage struct {
	Client   *Client
	Envelope protocol.Envelope
}
