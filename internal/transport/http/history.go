package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultHistoryLimit = 20

// GameArchive reads finished games.
type GameArchive interface {
	GetGameByID(ctx context.Context, gameID string) (*domain.GameRecord, error)
	GetPlayerHistory(ctx context.Context, playerID string, limit int) ([]domain.GameRecord, error)
}

type HistoryHandler struct {
	Games GameArchive
}

func NewHistoryHandler(games GameArchive) *HistoryHandler {
	return &HistoryHandler{Games: games}
}

type gameHistoryItem struct {
	ID               string    `json:"id"`
	OpponentUsername string    `json:"opponentUsername"`
	Difficulty       string    `json:"difficulty"`
	Result           string    `json:"result"` // "win", "loss", "draw"
	EndReason        string    `json:"endReason"`
	CreatedAt        time.Time `json:"createdAt"`
	MovesCount       int       `json:"movesCount"`
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	playerID := c.GetString(middleware.PlayerIDKey)
	if playerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	records, err := h.Games.GetPlayerHistory(c.Request.Context(), playerID, limit)
	if err != nil {
		log.Error().Err(err).Str("player_id", playerID).Msg("failed to fetch history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	history := make([]gameHistoryItem, 0, len(records))
	for _, record := range records {
		history = append(history, gameHistoryItem{
			ID:               record.GameID,
			OpponentUsername: domain.GetBotName(record.Difficulty),
			Difficulty:       record.Difficulty,
			Result:           resultFor(record),
			EndReason:        record.Reason,
			CreatedAt:        record.CreatedAt,
			MovesCount:       record.TotalMoves,
		})
	}

	c.JSON(http.StatusOK, history)
}

func resultFor(record domain.GameRecord) string {
	switch record.Winner {
	case domain.Empty:
		return "draw"
	case record.HumanRole:
		return "win"
	default:
		return "loss"
	}
}

func (h *HistoryHandler) GetGameDetails(c *gin.Context) {
	gameID := c.Param("id")
	record, err := h.Games.GetGameByID(c.Request.Context(), gameID)
	if err != nil {
		log.Error().Err(err).Str("game_id", gameID).Msg("failed to fetch game")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}
	if record == nil || record.PlayerID != c.GetString(middleware.PlayerIDKey) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}
