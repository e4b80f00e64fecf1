package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GPar6/gomoku/internal/service/bot"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                 string
	AllowedOrigins       []string
	FrontendURL          string
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string
	SnapshotTTL          time.Duration
	JWTSecret            string
	GuestTokenTTL        time.Duration
	LogLevel             string
	Engine               bot.Config
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := []string{frontendURL}
	if extras := GetEnv("ALLOWED_ORIGINS", ""); extras != "" {
		for _, origin := range strings.Split(extras, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Database Config (empty URL keeps finished games in memory)
	dbURL := GetEnv("DATABASE_URL", "")
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 25)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 25)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	// Security
	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	guestTTLHours := GetEnvAsInt("GUEST_TOKEN_TTL_HOURS", 72)

	AppConfig = &Config{
		Port:                 port,
		AllowedOrigins:       allowedOrigins,
		FrontendURL:          frontendURL,
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       dbMaxOpenConns,
		DBMaxIdleConns:       dbMaxIdleConns,
		DBConnMaxLifetimeMin: dbConnMaxLifetimeMin,
		RedisURL:             GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:        GetEnv("REDIS_PASSWORD", ""),
		SnapshotTTL:          time.Duration(GetEnvAsInt("SNAPSHOT_TTL_MINUTES", 60)) * time.Minute,
		JWTSecret:            jwtSecret,
		GuestTokenTTL:        time.Duration(guestTTLHours) * time.Hour,
		LogLevel:             GetEnv("LOG_LEVEL", "info"),
		Engine:               LoadEngineConfig(bot.DefaultConfig()),
	}

	return AppConfig
}

// LoadEngineConfig overrides base with any ENGINE_* variables that are set.
// An invalid combination falls back to base as a whole.
func LoadEngineConfig(base bot.Config) bot.Config {
	cfg := base
	cfg.Depth = GetEnvAsInt("ENGINE_DEPTH", base.Depth)
	cfg.BranchLimit = GetEnvAsInt("ENGINE_BRANCH_LIMIT", base.BranchLimit)
	cfg.DecisiveThreshold = GetEnvAsInt("ENGINE_DECISIVE_THRESHOLD", base.DecisiveThreshold)

	cfg.Weights.Five = GetEnvAsInt("ENGINE_WEIGHT_FIVE", base.Weights.Five)
	cfg.Weights.OpenFour = GetEnvAsInt("ENGINE_WEIGHT_OPEN_FOUR", base.Weights.OpenFour)
	cfg.Weights.SimpleFour = GetEnvAsInt("ENGINE_WEIGHT_SIMPLE_FOUR", base.Weights.SimpleFour)
	cfg.Weights.OpenThree = GetEnvAsInt("ENGINE_WEIGHT_OPEN_THREE", base.Weights.OpenThree)
	cfg.Weights.BlockedThree = GetEnvAsInt("ENGINE_WEIGHT_BLOCKED_THREE", base.Weights.BlockedThree)
	cfg.Weights.OpenTwo = GetEnvAsInt("ENGINE_WEIGHT_OPEN_TWO", base.Weights.OpenTwo)
	cfg.Weights.BlockedTwo = GetEnvAsInt("ENGINE_WEIGHT_BLOCKED_TWO", base.Weights.BlockedTwo)

	cfg.DefenseWeight = GetEnvAsFloat("ENGINE_DEFENSE_WEIGHT", base.DefenseWeight)
	cfg.EscalatedDefenseWeight = GetEnvAsFloat("ENGINE_DEFENSE_WEIGHT_ESCALATED", base.EscalatedDefenseWeight)
	cfg.DefenseEscalation = GetEnvAsInt("ENGINE_DEFENSE_ESCALATION", base.DefenseEscalation)
	cfg.UrgentThreshold = GetEnvAsInt("ENGINE_URGENT_THRESHOLD", base.UrgentThreshold)

	if err := cfg.Validate(); err != nil {
		log.Warn().Err(err).Msg("invalid engine configuration, using defaults")
		return base
	}
	return cfg
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Float64("default", defaultValue).Msg("invalid float value, using default")
		return defaultValue
	}
	return value
}
