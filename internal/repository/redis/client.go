package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const snapshotKeyPrefix = "game:snapshot:"

// InitRedis connects to Redis. It returns nil, nil when the server is not
// reachable so the service can run without live snapshots.
func InitRedis(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("could not connect to redis, live snapshots disabled")
		client.Close()
		return nil, nil
	}

	log.Info().Str("addr", addr).Msg("redis connected successfully")
	return client, nil
}

// SnapshotStore keeps the latest state of each live game in Redis.
type SnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{client: client, ttl: ttl}
}

func snapshotKey(gameID string) string {
	return snapshotKeyPrefix + gameID
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snapshot domain.GameSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return s.client.Set(ctx, snapshotKey(snapshot.GameID), data, s.ttl).Err()
}

// LoadSnapshot returns nil, nil when no snapshot is stored for gameID.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context, gameID string) (*domain.GameSnapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snapshot domain.GameSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *SnapshotStore) DeleteSnapshot(ctx context.Context, gameID string) error {
	return s.client.Del(ctx, snapshotKey(gameID)).Err()
}
