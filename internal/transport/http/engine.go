package http

import (
	"errors"
	"net/http"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/service/bot"
	"github.com/GPar6/gomoku/internal/service/game"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MoveSuggester answers single engine queries.
type MoveSuggester interface {
	SuggestMove(board *domain.Board, role domain.Role, difficulty string) (domain.Coordinate, error)
	SuggestMoveWithConfig(board *domain.Board, role domain.Role, cfg bot.Config) (domain.Coordinate, error)
}

type EngineHandler struct {
	Engine MoveSuggester
}

func NewEngineHandler(engine MoveSuggester) *EngineHandler {
	return &EngineHandler{Engine: engine}
}

type suggestMoveRequest struct {
	Board      [][]int     `json:"board" binding:"required"`
	Role       string      `json:"role" binding:"required"`
	Difficulty string      `json:"difficulty"`
	Config     *bot.Config `json:"config"`
}

// SuggestMove returns the engine's move for the posted position.
func (h *EngineHandler) SuggestMove(c *gin.Context) {
	var req suggestMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	board, err := domain.BoardFromRows(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var coord domain.Coordinate
	if req.Config != nil {
		coord, err = h.Engine.SuggestMoveWithConfig(board, role, *req.Config)
	} else {
		coord, err = h.Engine.SuggestMove(board, role, req.Difficulty)
	}

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrBoardFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, game.ErrInvalidEngineConfig), errors.Is(err, domain.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		log.Error().Err(err).Msg("engine query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Engine failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"row": coord.Row, "col": coord.Col})
}
