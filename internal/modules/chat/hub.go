package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client pairs a connection with its write lock. gorilla/websocket allows at
// most one concurrent writer per connection, so every WriteJSON goes through
// the per-client mutex.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(message any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(message)
}

// Hub tracks one live websocket connection per user. A second connection for
// the same user replaces the first.
type Hub struct {
	clients map[string]*client
	admins  map[string]bool
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
		admins:  make(map[string]bool),
	}
}

func (h *Hub) Register(userID string, isAdmin bool, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, ok := h.clients[userID]; ok && old.conn != nil {
		_ = old.conn.Close()
	}
	h.clients[userID] = &client{conn: conn}
	if isAdmin {
		h.admins[userID] = true
	}
}

func (h *Hub) Unregister(userID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, ok := h.clients[userID]; ok && cl.conn != nil {
		_ = cl.conn.Close()
	}
	delete(h.clients, userID)
	delete(h.admins, userID)
}

func (h *Hub) SendToUser(userID string, message any) bool {
	h.mutex.RLock()
	cl, ok := h.clients[userID]
	h.mutex.RUnlock()

	if !ok || cl.conn == nil {
		return false
	}
	if err := cl.write(message); err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

// SendToAdmins pushes the message to every connected administrator.
func (h *Hub) SendToAdmins(message any) {
	h.mutex.RLock()
	ids := make([]string, 0, len(h.admins))
	for id := range h.admins {
		ids = append(ids, id)
	}
	h.mutex.RUnlock()

	for _, id := range ids {
		h.SendToUser(id, message)
	}
}

func (h *Hub) IsOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, ok := h.clients[userID]
	return ok
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, cl := range h.clients {
		if cl.conn != nil {
			_ = cl.conn.Close()
		}
		delete(h.clients, id)
		delete(h.admins, id)
	}
}
