package middleware

import (
	"net/http"

	"github.com/GPar6/gomoku/pkg/auth"
	"github.com/GPar6/gomoku/pkg/httputil"
	"github.com/gin-gonic/gin"
)

const (
	PlayerIDKey = "player_id"
	UsernameKey = "username"
)

// AuthMiddleware validates the guest token from cookie, header or query and
// stores the player in the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateGuestToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(PlayerIDKey, claims.PlayerID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}
