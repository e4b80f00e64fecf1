package domain

type Move struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Role Role `json:"role"`
}

type Game struct {
	Board       *Board
	CurrentRole Role
	Status      GameStatus
	Winner      Role
	MoveCount   int
	Moves       []Move
}

func NewGame(size int) *Game {
	return &Game{
		Board:       NewBoard(size),
		CurrentRole: FirstRole,
		Status:      StatusActive,
		Winner:      Empty,
		MoveCount:   0,
	}
}

// MakeMove places role at coord, then updates win/draw status and passes the turn.
func (g *Game) MakeMove(role Role, coord Coordinate) error {
	if g.Status != StatusActive {
		return ErrGameFinished
	}
	if role != g.CurrentRole {
		return ErrNotYourTurn
	}
	if !g.Board.InBounds(coord.Row, coord.Col) {
		return ErrOutOfBounds
	}
	if g.Board.At(coord) != Empty {
		return ErrCellOccupied
	}

	g.Board.Set(coord.Row, coord.Col, role)
	g.MoveCount++
	g.Moves = append(g.Moves, Move{Row: coord.Row, Col: coord.Col, Role: role})

	if CheckWin(g.Board, coord, role) {
		g.Status = StatusWon
		g.Winner = role
		return nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return nil
	}

	g.CurrentRole = role.Opponent()
	return nil
}

// Resign ends an active game in favour of role's opponent.
func (g *Game) Resign(role Role) {
	if g.Status != StatusActive {
		return
	}
	g.Status = StatusWon
	g.Winner = role.Opponent()
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

func (g *Game) LastMove() (Move, bool) {
	if len(g.Moves) == 0 {
		return Move{}, false
	}
	return g.Moves[len(g.Moves)-1], true
}
