package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/GPar6/gomoku/pkg/auth"
	"github.com/GPar6/gomoku/pkg/httputil"
	"github.com/GPar6/gomoku/pkg/uid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	Secret       string
	TTL          time.Duration
	SecureCookie bool
}

func NewAuthHandler(secret string, ttl time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{Secret: secret, TTL: ttl, SecureCookie: secureCookie}
}

// GuestLogin issues a token for a new guest player.
func (h *AuthHandler) GuestLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	// an empty body is fine, the name is optional
	_ = c.ShouldBindJSON(&req)

	playerID := uid.GeneratePlayerID()
	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = "Guest-" + playerID[len(playerID)-4:]
	}
	if len(username) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be at most 50 characters"})
		return
	}

	token, err := auth.GenerateGuestToken(h.Secret, playerID, username, h.TTL)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign guest token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	httputil.SetAuthCookie(c.Writer, token, h.TTL, h.SecureCookie)
	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"playerId": playerID,
		"username": username,
	})
}
