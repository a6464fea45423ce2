package connection

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lazharichir/pokerhands/game"
)

// Client represents a connected player
type Client struct {
	ID      string
	Conn    *websocket.Conn
	Send    chan []byte
	Session *game.Session // Rounds played over this connection
}

// Manager handles all client connections
type Manager struct {
	clients    map[string]*Client // Map connection IDs to clients
	sessionMap map[string]string  // Map session IDs to connection IDs
	mutex      sync.RWMutex
}

// NewManager creates a new connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		sessionMap: make(map[string]string),
	}
}

// Register adds a client so messages can be routed to it
func (m *Manager) Register(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.clients[client.ID] = client
	if client.Session != nil {
		m.sessionMap[client.Session.ID] = client.ID
	}
}

// Unregister removes a client and closes its send queue. Unknown clients are ignored.
func (m *Manager) Unregister(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.clients[client.ID]; !ok {
		return
	}
	if client.Session != nil {
		delete(m.sessionMap, client.Session.ID)
	}
	delete(m.clients, client.ID)
	close(client.Send)
}

// SendToClient queues a message for a client. It reports false when the
// client is unknown or its queue is full.
func (m *Manager) SendToClient(clientID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	client, ok := m.clients[clientID]
	if !ok {
		return false
	}
	select {
	case client.Send <- message:
		return true
	default:
		return false
	}
}

// SendToSession sends a message to the client owning the session
func (m *Manager) SendToSession(sessionID string, message []byte) bool {
	m.mutex.RLock()
	connID, exists := m.sessionMap[sessionID]
	m.mutex.RUnlock()

	if !exists {
		return false
	}
	return m.SendToClient(connID, message)
}

// Count returns the number of registered clients
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.clients)
}
