package domain

import "time"

// GameRecord is a finished game as it is archived.
type GameRecord struct {
	GameID          string    `json:"gameId"`
	PlayerID        string    `json:"playerId"`
	PlayerUsername  string    `json:"playerUsername"`
	HumanRole       Role      `json:"humanRole"`
	Difficulty      string    `json:"difficulty"`
	Winner          Role      `json:"winner"`
	WinnerUsername  string    `json:"winnerUsername"`
	Reason          string    `json:"reason"`
	TotalMoves      int       `json:"totalMoves"`
	DurationSeconds int       `json:"durationSeconds"`
	Moves           []Move    `json:"moves"`
	Board           [][]int   `json:"board"`
	CreatedAt       time.Time `json:"createdAt"`
	FinishedAt      time.Time `json:"finishedAt"`
}

// GameSnapshot is the live state of an unfinished or just finished game.
type GameSnapshot struct {
	GameID         string     `json:"gameId"`
	PlayerID       string     `json:"playerId"`
	PlayerUsername string     `json:"playerUsername"`
	HumanRole      Role       `json:"humanRole"`
	Difficulty     string     `json:"difficulty"`
	CurrentTurn    Role       `json:"currentTurn"`
	Status         GameStatus `json:"status"`
	Winner         Role       `json:"winner"`
	MoveCount      int        `json:"moveCount"`
	Board          [][]int    `json:"board"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

const (
	ReasonFiveInRow = "five_in_row"
	ReasonDraw      = "draw"
	ReasonAbandoned = "abandoned"
)
