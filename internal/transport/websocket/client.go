package websocket

import (
	"sync"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// ConnectionManager handles active WebSocket connections thread-safely
type ConnectionManager struct {
	connections map[string]*websocket.Conn
	usernames   map[string]string

	// conn.WriteJSON is not safe for concurrent use
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // Protects the maps themselves
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		usernames:   make(map[string]string),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// AddConnection registers a new connection, closing any previous one of the player
func (cm *ConnectionManager) AddConnection(playerID string, conn *websocket.Conn, username string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[playerID]; exists {
		oldConn.Close()
	}

	cm.connections[playerID] = conn
	cm.usernames[playerID] = username
	cm.writeMu[playerID] = &sync.Mutex{}
}

// RemoveConnectionIfMatching avoids closing a newer connection when cleaning
// up an old one.
func (cm *ConnectionManager) RemoveConnectionIfMatching(playerID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if currentConn, exists := cm.connections[playerID]; exists && currentConn == conn {
		currentConn.Close()
		delete(cm.connections, playerID)
		delete(cm.usernames, playerID)
		delete(cm.writeMu, playerID)
	}
}

// SendMessage sends a JSON message to a specific player
func (cm *ConnectionManager) SendMessage(playerID string, message domain.ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[playerID]
	mu, muExists := cm.writeMu[playerID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil // Player disconnected, ignore
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(message)
}

// Ping writes a keep-alive frame under the player's write lock.
func (cm *ConnectionManager) Ping(playerID string) error {
	cm.mu.RLock()
	conn, exists := cm.connections[playerID]
	mu, muExists := cm.writeMu[playerID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return websocket.ErrCloseSent
	}

	mu.Lock()
	defer mu.Unlock()
	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}
