package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/service/bot"
	"github.com/GPar6/gomoku/pkg/uid"
	"github.com/rs/zerolog/log"
)

type ConnectionManagerInterface interface {
	SendMessage(playerID string, message domain.ServerMessage) error
}

type GameRepository interface {
	SaveGame(ctx context.Context, record domain.GameRecord) error
}

// SnapshotStore receives the state of a live game after every move.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snapshot domain.GameSnapshot) error
	DeleteSnapshot(ctx context.Context, gameID string) error
}

const (
	finishedSessionTTL = 1 * time.Hour
	idleSessionTTL     = 24 * time.Hour
	saveTimeout        = 5 * time.Second
)

// SessionManager manages active game sessions
type SessionManager struct {
	Session      map[string]*GameSession // gameID → GameSession
	PlayerToGame map[string]string       // playerID → gameID
	mu           sync.RWMutex
	repo         GameRepository
	snapshots    SnapshotStore // Optional, can be nil
	newEngine    EngineFactory
	saves        sync.WaitGroup
}

func NewSessionManager(repo GameRepository, snapshots SnapshotStore, newEngine EngineFactory) *SessionManager {
	if newEngine == nil {
		newEngine = NewEngineFactory(bot.DefaultConfig())
	}
	return &SessionManager{
		Session:      make(map[string]*GameSession),
		PlayerToGame: make(map[string]string),
		repo:         repo,
		snapshots:    snapshots,
		newEngine:    newEngine,
	}
}

// CreateSession starts a new game against the engine. Any previous session of
// the player is closed first; an unfinished one counts as abandoned.
func (sm *SessionManager) CreateSession(playerID, username string, humanRole domain.Role, difficulty string, conn ConnectionManagerInterface) (*GameSession, error) {
	if !humanRole.Valid() {
		return nil, domain.ErrInvalidRole
	}
	sm.ForceCleanupForPlayer(playerID, conn)

	difficulty = bot.ParseDifficulty(difficulty)
	session := &GameSession{
		GameID:         uid.GenerateGameID(),
		PlayerID:       playerID,
		PlayerUsername: username,
		BotUsername:    domain.GetBotName(difficulty),
		HumanRole:      humanRole,
		Difficulty:     difficulty,
		Game:           domain.NewGame(domain.BoardSize),
		CreatedAt:      time.Now(),
		LastActivity:   time.Now(),
		engine:         sm.newEngine(difficulty),
		sm:             sm,
	}

	sm.mu.Lock()
	sm.Session[session.GameID] = session
	sm.PlayerToGame[playerID] = session.GameID
	sm.mu.Unlock()

	log.Info().
		Str("game_id", session.GameID).
		Str("player_id", playerID).
		Str("role", humanRole.String()).
		Str("difficulty", difficulty).
		Msg("session created")

	if err := session.start(conn); err != nil {
		return session, err
	}
	return session, nil
}

func (sm *SessionManager) GetSessionByPlayerID(playerID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	gameID, exists := sm.PlayerToGame[playerID]
	if !exists {
		return nil, false
	}

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.removeSessionLocked(gameID)
}

// removeSessionLocked removes session from maps without acquiring lock (caller must hold it)
func (sm *SessionManager) removeSessionLocked(gameID string) error {
	session, exists := sm.Session[gameID]
	if !exists {
		return fmt.Errorf("session not found")
	}

	if sm.PlayerToGame[session.PlayerID] == gameID {
		delete(sm.PlayerToGame, session.PlayerID)
	}
	delete(sm.Session, gameID)
	return nil
}

// ForceCleanupForPlayer abandons the player's active game, if any, and forgets it.
func (sm *SessionManager) ForceCleanupForPlayer(playerID string, conn ConnectionManagerInterface) {
	session, exists := sm.GetSessionByPlayerID(playerID)
	if !exists {
		return
	}

	if err := session.Abandon(playerID, conn); err != nil {
		log.Warn().Err(err).Str("game_id", session.GameID).Msg("failed to abandon previous session")
	}
	sm.RemoveSession(session.GameID)
}

// LiveGame is a summary of a running session.
type LiveGame struct {
	GameID     string
	Player     string
	Bot        string
	Difficulty string
	MoveCount  int
	StartedAt  time.Time
}

func (sm *SessionManager) GetActiveGames() []LiveGame {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, session := range sm.Session {
		sessions = append(sessions, session)
	}
	sm.mu.RUnlock()

	games := []LiveGame{}
	for _, session := range sessions {
		session.mu.Lock()
		if !session.Game.IsFinished() {
			games = append(games, LiveGame{
				GameID:     session.GameID,
				Player:     session.PlayerUsername,
				Bot:        session.BotUsername,
				Difficulty: session.Difficulty,
				MoveCount:  session.Game.MoveCount,
				StartedAt:  session.CreatedAt,
			})
		}
		session.mu.Unlock()
	}
	return games
}

// CleanupOldSessions drops finished sessions after an hour and abandoned
// ones after a day without activity. It returns the number removed.
func (sm *SessionManager) CleanupOldSessions(now time.Time) int {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, session := range sm.Session {
		sessions = append(sessions, session)
	}
	sm.mu.RUnlock()

	// session locks are taken without sm.mu so a running search blocks only its own session
	stale := []*GameSession{}
	for _, session := range sessions {
		if session.isStale(now) {
			stale = append(stale, session)
		}
	}

	removed := []string{}
	sm.mu.Lock()
	for _, session := range stale {
		if sm.Session[session.GameID] == session {
			sm.removeSessionLocked(session.GameID)
			removed = append(removed, session.GameID)
		}
	}
	sm.mu.Unlock()

	for _, gameID := range removed {
		sm.deleteSnapshot(gameID)
	}

	count := len(removed)
	if count > 0 {
		log.Info().Int("removed", count).Msg("memory cleanup: removed stale game sessions")
	}
	return count
}

// Wait blocks until every background save has finished.
func (sm *SessionManager) Wait() {
	sm.saves.Wait()
}

// Saves game data to the archive in background to avoid blocking game_over messages
func (sm *SessionManager) saveGameAsync(record domain.GameRecord) {
	if sm.repo == nil {
		return
	}
	sm.saves.Add(1)
	go func() {
		defer sm.saves.Done()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := sm.repo.SaveGame(ctx, record); err != nil {
			log.Error().Err(err).Str("game_id", record.GameID).Msg("error saving game")
			return
		}
		log.Info().Str("game_id", record.GameID).Msg("game saved successfully")
	}()
}

func (sm *SessionManager) saveSnapshot(snapshot domain.GameSnapshot) {
	if sm.snapshots == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := sm.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		log.Warn().Err(err).Str("game_id", snapshot.GameID).Msg("failed to store snapshot")
	}
}

func (sm *SessionManager) deleteSnapshot(gameID string) {
	if sm.snapshots == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := sm.snapshots.DeleteSnapshot(ctx, gameID); err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("failed to delete snapshot")
	}
}
