// Package ws delivers realtime order status updates over WebSocket. Clients
// subscribe to individual orders; the hub fans each status change out to every
// subscriber of that order's room.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
)

// statusEvent is the wire format pushed to subscribed clients.
type statusEvent struct {
	Type      string `json:"type"`
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

const eventTypeOrderStatusUpdate = "order_status_update"

// Hub tracks order subscriptions and implements ports.OrderStatusPublisher.
// All methods are safe for concurrent use.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

// NewHub creates an empty subscription hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]struct{})}
}

// PublishOrderStatus sends a status update to every client subscribed to the
// order. Publishing to an order nobody watches is a no-op.
func (h *Hub) PublishOrderStatus(orderID kernel.UUID, status order.Status, at time.Time) error {
	event := statusEvent{
		Type:      eventTypeOrderStatusUpdate,
		OrderID:   orderID.String(),
		Status:    status.String(),
		Timestamp: at.UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.RLock()
	room := h.rooms[event.OrderID]
	clients := make([]*Client, 0, len(room))
	for client := range room {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if !client.enqueue(payload) {
			slog.Warn("dropping slow websocket client", "orderId", event.OrderID)
			h.disconnect(client)
		}
	}

	return nil
}

// subscribe adds the client to the order's room.
func (h *Hub) subscribe(client *Client, orderID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[orderID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[orderID] = room
	}
	room[client] = struct{}{}
}

// unsubscribe removes the client from the order's room, dropping the room
// once it is empty.
func (h *Hub) unsubscribe(client *Client, orderID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[orderID]
	if !ok {
		return
	}

	delete(room, client)
	if len(room) == 0 {
		delete(h.rooms, orderID)
	}
}

// disconnect purges the client from every room and closes its send queue.
func (h *Hub) disconnect(client *Client) {
	h.mu.Lock()
	for orderID, room := range h.rooms {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, orderID)
		}
	}
	h.mu.Unlock()

	client.close()
}

// subscriberCount reports how many clients watch the given order.
func (h *Hub) subscriberCount(orderID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[orderID])
}
