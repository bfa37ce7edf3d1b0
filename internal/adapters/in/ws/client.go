package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512

	// sendBufferSize bounds per-client memory. A client that cannot keep up
	// is disconnected rather than allowed to stall the publisher.
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The storefront frontend may be served from another origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is a subscription control frame sent by the browser.
type clientMessage struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
}

const (
	messageSubscribeOrder   = "subscribe_order"
	messageUnsubscribeOrder = "unsubscribe_order"
)

// Client is one WebSocket connection attached to the hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	send      chan []byte
	closeOnce sync.Once
}

// ServeWS upgrades the HTTP request to a WebSocket connection and starts the
// client's read and write pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	go client.writePump()
	go client.readPump()
	return nil
}

// enqueue offers a payload to the client without blocking. It reports false
// when the client's send buffer is full.
func (c *Client) enqueue(payload []byte) bool {
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// readPump consumes subscription control frames until the connection drops.
func (c *Client) readPump() {
	defer func() {
		c.hub.disconnect(c)
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
				slog.Warn("websocket read failed", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		// Malformed order ids never match a room, so they are ignored here
		// rather than rejected.
		if _, err := uuid.Parse(msg.OrderID); err != nil {
			continue
		}

		switch msg.Type {
		case messageSubscribeOrder:
			c.hub.subscribe(c, msg.OrderID)
		case messageUnsubscribeOrder:
			c.hub.unsubscribe(c, msg.OrderID)
		}
	}
}

// writePump forwards queued events to the connection and keeps it alive with
// pings.
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
