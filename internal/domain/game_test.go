package domain

import "testing"

func TestMakeMoveAlternatesTurns(t *testing.T) {
	g := NewGame(BoardSize)
	if err := g.MakeMove(Black, Coordinate{7, 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.CurrentRole != White {
		t.Fatalf("expected white to move, got %v", g.CurrentRole)
	}
	if err := g.MakeMove(Black, Coordinate{7, 8}); err != ErrNotYourTurn {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
	if err := g.MakeMove(White, Coordinate{7, 7}); err != ErrCellOccupied {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
	if err := g.MakeMove(White, Coordinate{15, 0}); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if g.MoveCount != 1 || len(g.Moves) != 1 {
		t.Fatalf("rejected moves must not be recorded")
	}
}

func TestMakeMoveDetectsFiveInRow(t *testing.T) {
	g := NewGame(BoardSize)
	for i := 0; i < 4; i++ {
		mustMove(t, g, Black, Coordinate{3, 3 + i})
		mustMove(t, g, White, Coordinate{10, 3 + i})
	}
	mustMove(t, g, Black, Coordinate{3, 7})

	if g.Status != StatusWon || g.Winner != Black {
		t.Fatalf("expected black win, got status=%s winner=%v", g.Status, g.Winner)
	}
	if err := g.MakeMove(White, Coordinate{0, 0}); err != ErrGameFinished {
		t.Fatalf("expected ErrGameFinished, got %v", err)
	}
}

func TestMakeMoveDiagonalWin(t *testing.T) {
	g := NewGame(BoardSize)
	for i := 0; i < 4; i++ {
		mustMove(t, g, Black, Coordinate{i, 4 - i})
		mustMove(t, g, White, Coordinate{14, i})
	}
	mustMove(t, g, Black, Coordinate{4, 0})
	if g.Winner != Black {
		t.Fatalf("expected anti-diagonal win")
	}
}

func TestMakeMoveDrawOnFullBoard(t *testing.T) {
	g := NewGame(2)
	mustMove(t, g, Black, Coordinate{0, 0})
	mustMove(t, g, White, Coordinate{0, 1})
	mustMove(t, g, Black, Coordinate{1, 1})
	mustMove(t, g, White, Coordinate{1, 0})
	if g.Status != StatusDraw {
		t.Fatalf("expected draw, got %s", g.Status)
	}
}

func TestResign(t *testing.T) {
	g := NewGame(BoardSize)
	g.Resign(Black)
	if g.Status != StatusWon || g.Winner != White {
		t.Fatalf("expected white to win by resignation")
	}
}

func mustMove(t *testing.T, g *Game, role Role, c Coordinate) {
	t.Helper()
	if err := g.MakeMove(role, c); err != nil {
		t.Fatalf("move %v for %v: %v", c, role, err)
	}
}
