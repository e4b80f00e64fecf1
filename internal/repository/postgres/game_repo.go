package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GPar6/gomoku/internal/domain"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// SaveGame stores a finished game. Saving the same game twice overwrites the
// outcome columns.
func (r *GameRepo) SaveGame(ctx context.Context, record domain.GameRecord) error {
	movesJSON, err := json.Marshal(record.Moves)
	if err != nil {
		return fmt.Errorf("failed to marshal moves: %w", err)
	}
	boardJSON, err := json.Marshal(record.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	query := `
	INSERT INTO game (game_id, player_id, player_username, human_role, difficulty, winner, winner_username, reason, total_moves, duration_seconds, moves, board_state, created_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (game_id) DO UPDATE SET
		winner = EXCLUDED.winner,
		winner_username = EXCLUDED.winner_username,
		reason = EXCLUDED.reason,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		moves = EXCLUDED.moves,
		board_state = EXCLUDED.board_state,
		finished_at = EXCLUDED.finished_at;
	`

	_, err = r.DB.ExecContext(ctx, query,
		record.GameID, record.PlayerID, record.PlayerUsername, int(record.HumanRole), record.Difficulty,
		int(record.Winner), record.WinnerUsername, record.Reason, record.TotalMoves, record.DurationSeconds,
		movesJSON, boardJSON, record.CreatedAt, record.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %w", err)
	}
	return nil
}

const selectGameColumns = `
	SELECT game_id, player_id, player_username, human_role, difficulty, winner, winner_username,
	       reason, total_moves, duration_seconds, moves, board_state, created_at, finished_at
	FROM game`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*domain.GameRecord, error) {
	var record domain.GameRecord
	var humanRole, winner int
	var movesJSON, boardJSON []byte

	err := row.Scan(
		&record.GameID,
		&record.PlayerID,
		&record.PlayerUsername,
		&humanRole,
		&record.Difficulty,
		&winner,
		&record.WinnerUsername,
		&record.Reason,
		&record.TotalMoves,
		&record.DurationSeconds,
		&movesJSON,
		&boardJSON,
		&record.CreatedAt,
		&record.FinishedAt,
	)
	if err != nil {
		return nil, err
	}

	record.HumanRole = domain.Role(humanRole)
	record.Winner = domain.Role(winner)
	if err := json.Unmarshal(movesJSON, &record.Moves); err != nil {
		return nil, fmt.Errorf("failed to unmarshal moves: %w", err)
	}
	if err := json.Unmarshal(boardJSON, &record.Board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board state: %w", err)
	}
	return &record, nil
}

// GetGameByID returns nil, nil when the game does not exist.
func (r *GameRepo) GetGameByID(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	row := r.DB.QueryRowContext(ctx, selectGameColumns+` WHERE game_id = $1;`, gameID)

	record, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}
	return record, nil
}

// GetPlayerHistory returns the player's most recent games, newest first.
func (r *GameRepo) GetPlayerHistory(ctx context.Context, playerID string, limit int) ([]domain.GameRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		selectGameColumns+` WHERE player_id = $1 ORDER BY finished_at DESC LIMIT $2;`, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game history: %w", err)
	}
	defer rows.Close()

	history := []domain.GameRecord{}
	for rows.Next() {
		record, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		history = append(history, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game rows: %w", err)
	}
	return history, nil
}
