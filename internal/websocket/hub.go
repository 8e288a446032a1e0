package websocket

import (
	"context"
	"encoding/json"

	"shopfront-service/internal/domain/order"

	"go.uber.org/zap"
)

// Event is the wire format pushed to connected admin clients.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans out storefront events to connected admin clients. Registration,
// unregistration and broadcasting all go through channels; the client map is
// owned by the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		logger:     logger,
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("websocket client connected",
				zap.String("user_id", client.userID),
				zap.Int("clients", len(h.clients)),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop the client rather than block the
					// hub.
					delete(h.clients, client)
					close(client.send)
				}
			}

		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
			}
			h.clients = make(map[*Client]bool)
			return
		}
	}
}

// Register attaches a new client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// NotifyOrderPlaced broadcasts a completed checkout batch to every connected
// admin.
func (h *Hub) NotifyOrderPlaced(report order.Report) {
	payload, err := json.Marshal(Event{Type: "order.placed", Data: report})
	if err != nil {
		h.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("websocket broadcast buffer full, dropping event")
	}
}
