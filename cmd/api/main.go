package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/GPar6/gomoku/internal/config"
	"github.com/GPar6/gomoku/internal/repository/memory"
	"github.com/GPar6/gomoku/internal/repository/postgres"
	"github.com/GPar6/gomoku/internal/repository/redis"
	"github.com/GPar6/gomoku/internal/service/cleanup"
	"github.com/GPar6/gomoku/internal/service/game"
	transportHttp "github.com/GPar6/gomoku/internal/transport/http"
	"github.com/GPar6/gomoku/internal/transport/websocket"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// archive is what both game repositories provide.
type archive interface {
	game.GameRepository
	transportHttp.GameArchive
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Info().Msg("no .env file found")
		}
	}

	cfg := config.LoadConfig()
	setLogLevel(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	// 1. Persistence
	var games archive
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		games = postgres.NewGameRepo(db)
	} else {
		log.Warn().Msg("DATABASE_URL not set, finished games are kept in memory")
		games = memory.NewGameRepo()
	}

	var snapshots game.SnapshotStore
	var snapshotReader transportHttp.SnapshotReader
	redisClient, err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		store := redis.NewSnapshotStore(redisClient, cfg.SnapshotTTL)
		snapshots = store
		snapshotReader = store
	}

	// 2. Services
	gameService := game.NewService(cfg.Engine)
	sessionManager := game.NewSessionManager(games, snapshots, game.NewEngineFactory(cfg.Engine))
	connManager := websocket.NewConnectionManager()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanup.NewWorker(sessionManager, 10*time.Minute).Start(ctx)

	// 3. Transport
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.JWTSecret, cfg.AllowedOrigins)
	router := transportHttp.NewRouter(transportHttp.RouterDeps{
		AllowedOrigins: cfg.AllowedOrigins,
		JWTSecret:      cfg.JWTSecret,
		Auth:           transportHttp.NewAuthHandler(cfg.JWTSecret, cfg.GuestTokenTTL, strings.HasPrefix(cfg.FrontendURL, "https://")),
		Engine:         transportHttp.NewEngineHandler(gameService),
		History:        transportHttp.NewHistoryHandler(games),
		Watch:          transportHttp.NewWatchHandler(sessionManager, snapshotReader),
		WebSocket:      wsHandler.HandleWebSocket,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Int("depth", cfg.Engine.Depth).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	sessionManager.Wait()

	log.Info().Msg("server exited gracefully")
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
