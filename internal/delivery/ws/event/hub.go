package ws_event

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	userID  uuid.UUID
	eventID uuid.UUID
}

type eventUpdate struct {
	eventID uuid.UUID
	update  model.Update
}

// Hub fans event updates out to the sockets watching that event.
type Hub struct {
	logger     *slog.Logger
	rooms      map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan eventUpdate
	done       chan struct{}
	mu         sync.RWMutex
}

type HubOption func(*Hub)

func WithHubLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		logger:     slog.Default(),
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan eventUpdate, 64),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case u := <-h.broadcast:
			h.broadcastToEvent(u.eventID, u.update)
		}
	}
}

// Publish queues an update for every subscriber of the event. It never blocks the caller.
func (h *Hub) Publish(eventID uuid.UUID, update model.Update) {
	select {
	case h.broadcast <- eventUpdate{eventID: eventID, update: update}:
	default:
		h.logger.Warn("live update dropped",
			slog.String("event_id", eventID.String()),
			slog.String("type", update.Type))
	}
}

// join returns false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Subscribers reports how many sockets watch the event.
func (h *Hub) Subscribers(eventID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[eventID])
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.rooms[client.eventID]; !exists {
		h.rooms[client.eventID] = make(map[*Client]bool)
	}
	h.rooms[client.eventID][client] = true

	h.logger.Info("client registered",
		slog.String("user_id", client.userID.String()),
		slog.String("event_id", client.eventID.String()))
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.drop(client)
	h.logger.Info("client unregistered",
		slog.String("user_id", client.userID.String()),
		slog.String("event_id", client.eventID.String()))
}

// drop must be called with mu held.
func (h *Hub) drop(client *Client) {
	room, ok := h.rooms[client.eventID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	delete(room, client)
	close(client.send)
	if len(room) == 0 {
		delete(h.rooms, client.eventID)
	}
}

func (h *Hub) broadcastToEvent(eventID uuid.UUID, update model.Update) {
	payload, err := json.Marshal(update)
	if err != nil {
		h.logger.Error("failed to encode live update", sl.Err(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[eventID] {
		select {
		case client.send <- payload:
		default:
			// Slow reader.
			h.drop(client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range h.rooms {
		for client := range room {
			h.drop(client)
		}
	}
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Info("websocket closed unexpectedly", sl.Err(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
