package http

import (
	"net/http"

	"github.com/GPar6/gomoku/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AllowedOrigins []string
	JWTSecret      string
	Auth           *AuthHandler
	Engine         *EngineHandler
	History        *HistoryHandler
	Watch          *WatchHandler
	WebSocket      gin.HandlerFunc // Optional
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(d.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public Routes
	router.POST("/api/auth/guest", d.Auth.GuestLogin)
	router.POST("/api/engine/move", d.Engine.SuggestMove)
	router.GET("/api/games", d.Watch.GetLiveGames)
	router.GET("/api/games/:id", d.Watch.GetLiveGame)

	// Protected Routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(d.JWTSecret))
	{
		protected.GET("/api/history", d.History.GetHistory)
		protected.GET("/api/history/:id", d.History.GetGameDetails)
	}

	// WebSocket Route (auth handled inside the WS handler itself)
	if d.WebSocket != nil {
		router.GET("/ws", d.WebSocket)
	}

	return router
}
