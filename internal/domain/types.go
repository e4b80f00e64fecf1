package domain

var BotNames = map[string]string{
	DifficultyEasy:   "Alice",
	DifficultyMedium: "Bob",
	DifficultyHard:   "Charles",
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// Role is the content of a single cell, and also identifies a side.
type Role int

const (
	Empty Role = 0
	Black Role = 1
	White Role = 2
)

// Black always moves first.
const FirstRole = Black

func (r Role) Opponent() Role {
	switch r {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Valid reports whether r is a playable side (not Empty).
func (r Role) Valid() bool {
	return r == Black || r == White
}

func (r Role) String() string {
	switch r {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "black", "1":
		return Black, nil
	case "white", "2":
		return White, nil
	}
	return Empty, ErrInvalidRole
}

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

const (
	BoardSize = 15
	ToWin     = 5
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfBounds  Error = "coordinate out of bounds"
	ErrCellOccupied Error = "cell is occupied"
	ErrNotYourTurn  Error = "not your turn"
	ErrGameFinished Error = "game is finished"
	ErrBoardFull    Error = "board is full"
	ErrInvalidBoard Error = "invalid board"
	ErrInvalidRole  Error = "invalid role"
)
