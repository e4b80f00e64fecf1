package http

import (
	"context"
	"net/http"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/service/game"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LiveGames interface {
	GetActiveGames() []game.LiveGame
	GetSessionByGameID(gameID string) (*game.GameSession, bool)
}

// SnapshotReader loads a stored live game. A missing game is (nil, nil).
type SnapshotReader interface {
	LoadSnapshot(ctx context.Context, gameID string) (*domain.GameSnapshot, error)
}

type WatchHandler struct {
	Sessions  LiveGames
	Snapshots SnapshotReader // Optional, can be nil
}

func NewWatchHandler(sessions LiveGames, snapshots SnapshotReader) *WatchHandler {
	return &WatchHandler{Sessions: sessions, Snapshots: snapshots}
}

type liveGameResponse struct {
	GameID     string    `json:"gameId"`
	Player     string    `json:"player"`
	Bot        string    `json:"bot"`
	Difficulty string    `json:"difficulty"`
	MoveCount  int       `json:"moveCount"`
	StartedAt  time.Time `json:"startedAt"`
}

// GetLiveGames returns all games currently being played
func (h *WatchHandler) GetLiveGames(c *gin.Context) {
	activeGames := h.Sessions.GetActiveGames()

	response := make([]liveGameResponse, 0, len(activeGames))
	for _, g := range activeGames {
		response = append(response, liveGameResponse{
			GameID:     g.GameID,
			Player:     g.Player,
			Bot:        g.Bot,
			Difficulty: g.Difficulty,
			MoveCount:  g.MoveCount,
			StartedAt:  g.StartedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetLiveGame returns the current state of one game, preferring the stored
// snapshot so any instance can answer.
func (h *WatchHandler) GetLiveGame(c *gin.Context) {
	gameID := c.Param("id")

	if h.Snapshots != nil {
		snapshot, err := h.Snapshots.LoadSnapshot(c.Request.Context(), gameID)
		if err != nil {
			log.Warn().Err(err).Str("game_id", gameID).Msg("snapshot lookup failed")
		} else if snapshot != nil {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, snapshot)
			return
		}
	}

	session, ok := h.Sessions.GetSessionByGameID(gameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, session.Snapshot())
}
