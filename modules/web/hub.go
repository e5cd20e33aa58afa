package web

import (
	"context"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Client is one connected storefront browser.
type Client struct {
	ID   string
	Conn *websocket.Conn
}

// EventFrame is the wire shape pushed to every client when the bus
// publishes.
type EventFrame struct {
	Event string `json:"event"`
}

// Hub fans bus events out to every connected WebSocket client. It is
// a single feed: the storefront has one session, so every client sees
// the same stream.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan EventFrame
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan EventFrame, 256),
		done:       make(chan struct{}),
	}
}

// Run drives the hub until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Println("[hub] shutting down")
			h.closeAllClients()
			close(h.done)
			return
		case client := <-h.register:
			h.handleRegister(client)
		case client := <-h.unregister:
			h.handleUnregister(client)
		case frame := <-h.broadcast:
			h.handleBroadcast(frame)
		}
	}
}

// Wait blocks until the hub has stopped.
func (h *Hub) Wait() {
	<-h.done
}

// Register adds a client to the feed.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister drops a client from the feed.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast queues an event frame for every client. The queue is
// bounded; when it is full the frame is dropped rather than blocking
// the publisher.
func (h *Hub) Broadcast(event string) {
	select {
	case h.broadcast <- EventFrame{Event: event}:
	default:
		log.Printf("[hub] feed full, dropping %s", event)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range h.clients {
		_ = client.Conn.Close()
	}
	h.clients = make(map[string]*Client)
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	log.Printf("[hub] client %s connected", client.ID)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		log.Printf("[hub] client %s disconnected", client.ID)
	}
}

func (h *Hub) handleBroadcast(frame EventFrame) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if err := client.Conn.WriteJSON(frame); err != nil {
			log.Printf("[hub] write to %s: %v", client.ID, err)
		}
	}
}
