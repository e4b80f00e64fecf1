package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/GPar6/gomoku/internal/domain"
)

// GameRepo keeps finished games in process memory. It is used when no
// database is configured.
type GameRepo struct {
	mu    sync.RWMutex
	games map[string]domain.GameRecord
}

func NewGameRepo() *GameRepo {
	return &GameRepo{games: make(map[string]domain.GameRecord)}
}

func (r *GameRepo) SaveGame(ctx context.Context, record domain.GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[record.GameID] = record
	return nil
}

func (r *GameRepo) GetGameByID(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.games[gameID]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *GameRepo) GetPlayerHistory(ctx context.Context, playerID string, limit int) ([]domain.GameRecord, error) {
	r.mu.RLock()
	history := []domain.GameRecord{}
	for _, record := range r.games {
		if record.PlayerID == playerID {
			history = append(history, record)
		}
	}
	r.mu.RUnlock()

	sort.Slice(history, func(i, j int) bool {
		return history[i].FinishedAt.After(history[j].FinishedAt)
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}
