package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/service/bot"
	"github.com/rs/zerolog/log"
)

// GameSession is one human playing against the engine.
type GameSession struct {
	GameID         string
	PlayerID       string
	PlayerUsername string
	BotUsername    string
	HumanRole      domain.Role
	Difficulty     string
	Game           *domain.Game
	Reason         string
	CreatedAt      time.Time
	FinishedAt     time.Time
	LastActivity   time.Time
	engine         *bot.Engine
	mu             sync.Mutex
	sm             *SessionManager
}

func (gs *GameSession) BotRole() domain.Role {
	return gs.HumanRole.Opponent()
}

// start announces the game and lets the engine open when it plays first.
func (gs *GameSession) start(conn ConnectionManagerInterface) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.send(conn, domain.ServerMessage{
		Type:        "game_start",
		GameID:      gs.GameID,
		Opponent:    gs.BotUsername,
		YourRole:    int(gs.HumanRole),
		CurrentTurn: int(gs.Game.CurrentRole),
		Board:       gs.Game.Board.Rows(),
	})

	if gs.Game.CurrentRole == gs.BotRole() {
		return gs.playEngineLocked(conn)
	}
	gs.storeSnapshotLocked()
	return nil
}

// HandleMove applies the human's move and, if the game goes on, the engine's reply.
func (gs *GameSession) HandleMove(playerID string, coord domain.Coordinate, conn ConnectionManagerInterface) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if playerID != gs.PlayerID {
		return fmt.Errorf("player not in this game")
	}
	if gs.Game.IsFinished() {
		return domain.ErrGameFinished
	}
	if gs.Game.CurrentRole != gs.HumanRole {
		return domain.ErrNotYourTurn
	}

	if err := gs.Game.MakeMove(gs.HumanRole, coord); err != nil {
		return err
	}
	gs.LastActivity = time.Now()
	gs.send(conn, domain.MoveMadeMessage(gs.Game, coord, gs.HumanRole))

	if gs.Game.IsFinished() {
		gs.finishLocked(conn)
		return nil
	}
	return gs.playEngineLocked(conn)
}

// playEngineLocked lets the engine move. Caller holds gs.mu.
func (gs *GameSession) playEngineLocked(conn ConnectionManagerInterface) error {
	coord, err := gs.engine.ChooseMove(gs.Game.Board, gs.BotRole())
	if errors.Is(err, domain.ErrBoardFull) {
		gs.Game.Status = domain.StatusDraw
		gs.finishLocked(conn)
		return nil
	}
	if err != nil {
		return fmt.Errorf("engine move: %w", err)
	}

	if err := gs.Game.MakeMove(gs.BotRole(), coord); err != nil {
		return fmt.Errorf("engine move %v: %w", coord, err)
	}
	gs.LastActivity = time.Now()
	gs.send(conn, domain.MoveMadeMessage(gs.Game, coord, gs.BotRole()))

	if gs.Game.IsFinished() {
		gs.finishLocked(conn)
		return nil
	}
	gs.storeSnapshotLocked()
	return nil
}

// Abandon resigns the game on behalf of the human.
func (gs *GameSession) Abandon(playerID string, conn ConnectionManagerInterface) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if playerID != gs.PlayerID {
		return fmt.Errorf("player not in this game")
	}
	if gs.Game.IsFinished() {
		return nil
	}

	gs.Game.Resign(gs.HumanRole)
	gs.Reason = domain.ReasonAbandoned
	gs.finishLocked(conn)
	return nil
}

func (gs *GameSession) finishLocked(conn ConnectionManagerInterface) {
	gs.FinishedAt = time.Now()
	if gs.Reason == "" {
		if gs.Game.Status == domain.StatusDraw {
			gs.Reason = domain.ReasonDraw
		} else {
			gs.Reason = domain.ReasonFiveInRow
		}
	}

	winner := gs.winnerName()
	gs.send(conn, domain.ServerMessage{
		Type:   "game_over",
		GameID: gs.GameID,
		Winner: winner,
		Reason: gs.Reason,
		Board:  gs.Game.Board.Rows(),
	})

	log.Info().
		Str("game_id", gs.GameID).
		Str("winner", winner).
		Str("reason", gs.Reason).
		Int("moves", gs.Game.MoveCount).
		Msg("game finished")

	gs.sm.deleteSnapshot(gs.GameID)
	gs.sm.saveGameAsync(gs.recordLocked())
}

func (gs *GameSession) winnerName() string {
	switch gs.Game.Winner {
	case gs.HumanRole:
		return gs.PlayerUsername
	case gs.BotRole():
		return gs.BotUsername
	default:
		return ""
	}
}

func (gs *GameSession) recordLocked() domain.GameRecord {
	moves := make([]domain.Move, len(gs.Game.Moves))
	copy(moves, gs.Game.Moves)
	return domain.GameRecord{
		GameID:          gs.GameID,
		PlayerID:        gs.PlayerID,
		PlayerUsername:  gs.PlayerUsername,
		HumanRole:       gs.HumanRole,
		Difficulty:      gs.Difficulty,
		Winner:          gs.Game.Winner,
		WinnerUsername:  gs.winnerName(),
		Reason:          gs.Reason,
		TotalMoves:      gs.Game.MoveCount,
		DurationSeconds: int(gs.FinishedAt.Sub(gs.CreatedAt).Seconds()),
		Moves:           moves,
		Board:           gs.Game.Board.Rows(),
		CreatedAt:       gs.CreatedAt,
		FinishedAt:      gs.FinishedAt,
	}
}

func (gs *GameSession) isStale(now time.Time) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.Game.IsFinished() {
		return now.Sub(gs.FinishedAt) > finishedSessionTTL
	}
	return now.Sub(gs.LastActivity) > idleSessionTTL
}

// Snapshot returns the current state of the session.
func (gs *GameSession) Snapshot() domain.GameSnapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.snapshotLocked()
}

func (gs *GameSession) snapshotLocked() domain.GameSnapshot {
	return domain.GameSnapshot{
		GameID:         gs.GameID,
		PlayerID:       gs.PlayerID,
		PlayerUsername: gs.PlayerUsername,
		HumanRole:      gs.HumanRole,
		Difficulty:     gs.Difficulty,
		CurrentTurn:    gs.Game.CurrentRole,
		Status:         gs.Game.Status,
		Winner:         gs.Game.Winner,
		MoveCount:      gs.Game.MoveCount,
		Board:          gs.Game.Board.Rows(),
		UpdatedAt:      time.Now(),
	}
}

func (gs *GameSession) storeSnapshotLocked() {
	gs.sm.saveSnapshot(gs.snapshotLocked())
}

func (gs *GameSession) send(conn ConnectionManagerInterface, msg domain.ServerMessage) {
	if conn == nil {
		return
	}
	if err := conn.SendMessage(gs.PlayerID, msg); err != nil {
		log.Debug().Err(err).Str("player_id", gs.PlayerID).Str("type", msg.Type).Msg("failed to deliver message")
	}
}
