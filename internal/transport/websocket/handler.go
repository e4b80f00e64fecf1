package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/service/game"
	"github.com/GPar6/gomoku/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Secret         string
	Upgrader       websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, secret string, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Secret:         secret,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range allowedOrigins {
			if allowed == origin || allowed == "*" {
				return true
			}
		}
		return false
	}
}

// HandleWebSocket upgrades the connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// 1. Wait for Initialization (Auth)
	claims, ok := h.authenticate(conn)
	if !ok {
		conn.Close()
		return
	}
	playerID, username := claims.PlayerID, claims.Username
	h.ConnManager.AddConnection(playerID, conn, username)
	log.Info().Str("player_id", playerID).Str("username", username).Int("connections", h.ConnManager.Count()).Msg("connection initialized")

	done := make(chan struct{})
	defer func() {
		close(done)
		log.Info().Str("player_id", playerID).Msg("connection closed")
		h.ConnManager.RemoveConnectionIfMatching(playerID, conn)
	}()
	go h.keepAlive(playerID, done)

	h.ConnManager.SendMessage(playerID, domain.ServerMessage{Type: "connected", Message: username})
	h.resume(playerID)

	// 2. Main Message Loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("player_id", playerID).Msg("player disconnected unexpectedly")
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.ConnManager.SendMessage(playerID, errorMessage("Invalid message format"))
			continue
		}

		h.processMessage(playerID, username, msg)
	}
}

func (h *Handler) authenticate(conn *websocket.Conn) (*auth.Claims, bool) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Debug().Err(err).Msg("read error during init")
		return nil, false
	}

	var message domain.ClientMessage
	if err := json.Unmarshal(data, &message); err != nil || message.Type != "init" || message.JWT == "" {
		conn.WriteJSON(domain.ErrorMessage{Type: "error", Message: "Expected init message with token"})
		return nil, false
	}

	claims, err := auth.ValidateGuestToken(h.Secret, message.JWT)
	if err != nil {
		log.Debug().Err(err).Msg("invalid token during init")
		conn.WriteJSON(domain.ErrorMessage{Type: "error", Message: "Invalid token"})
		return nil, false
	}
	return claims, true
}

func (h *Handler) keepAlive(playerID string, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := h.ConnManager.Ping(playerID); err != nil {
				return
			}
		}
	}
}

// resume re-sends the state of an unfinished game after a reconnect.
func (h *Handler) resume(playerID string) {
	session, exists := h.SessionManager.GetSessionByPlayerID(playerID)
	if !exists {
		return
	}
	snapshot := session.Snapshot()
	if snapshot.Status != domain.StatusActive {
		return
	}
	h.ConnManager.SendMessage(playerID, domain.ServerMessage{
		Type:        "game_resume",
		GameID:      snapshot.GameID,
		Opponent:    session.BotUsername,
		YourRole:    int(snapshot.HumanRole),
		CurrentTurn: int(snapshot.CurrentTurn),
		Board:       snapshot.Board,
	})
}

// processMessage routes specific actions
func (h *Handler) processMessage(playerID, username string, msg domain.ClientMessage) {
	switch msg.Type {
	case "new_game":
		color := msg.Color
		if color == "" {
			color = "black"
		}
		role, err := domain.ParseRole(color)
		if err != nil {
			h.ConnManager.SendMessage(playerID, errorMessage("Unknown color"))
			return
		}
		if _, err := h.SessionManager.CreateSession(playerID, username, role, msg.Difficulty, h.ConnManager); err != nil {
			log.Error().Err(err).Str("player_id", playerID).Msg("failed to start game")
			h.ConnManager.SendMessage(playerID, errorMessage("Failed to start game"))
		}

	case "make_move":
		gameSession, exists := h.SessionManager.GetSessionByPlayerID(playerID)
		if !exists {
			h.ConnManager.SendMessage(playerID, errorMessage("Game not found"))
			return
		}

		coord := domain.Coordinate{Row: msg.Row, Col: msg.Col}
		if err := gameSession.HandleMove(playerID, coord, h.ConnManager); err != nil {
			h.ConnManager.SendMessage(playerID, errorMessage(err.Error()))
		}

	case "abandon_game":
		gameSession, exists := h.SessionManager.GetSessionByPlayerID(playerID)
		if !exists {
			return
		}
		gameSession.Abandon(playerID, h.ConnManager)

	default:
		h.ConnManager.SendMessage(playerID, errorMessage("Unknown message type"))
	}
}

func errorMessage(text string) domain.ServerMessage {
	return domain.ServerMessage{Type: "error", Message: text}
}
