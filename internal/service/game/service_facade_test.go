package game

import (
	"errors"
	"testing"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/service/bot"
)

func TestSuggestMoveEmptyBoard(t *testing.T) {
	svc := NewService(bot.DefaultConfig())
	coord, err := svc.SuggestMove(domain.NewBoard(domain.BoardSize), domain.Black, "hard")
	if err != nil {
		t.Fatalf("SuggestMove: %v", err)
	}
	if coord != (domain.Coordinate{Row: 7, Col: 7}) {
		t.Fatalf("expected center, got %+v", coord)
	}
}

func TestSuggestMoveBlocksFour(t *testing.T) {
	svc := NewService(bot.DefaultConfig())
	board := domain.NewBoard(domain.BoardSize)
	for col := 3; col < 7; col++ {
		board.Set(7, col, domain.Black)
	}
	board.Set(7, 2, domain.White)
	board.Set(0, 0, domain.White)

	coord, err := svc.SuggestMove(board, domain.White, "easy")
	if err != nil {
		t.Fatalf("SuggestMove: %v", err)
	}
	if coord != (domain.Coordinate{Row: 7, Col: 7}) {
		t.Fatalf("expected block at (7,7), got %+v", coord)
	}
}

func TestSuggestMoveWithConfigRejectsInvalid(t *testing.T) {
	svc := NewService(bot.DefaultConfig())
	cfg := bot.DefaultConfig()
	cfg.Depth = 0
	_, err := svc.SuggestMoveWithConfig(domain.NewBoard(domain.BoardSize), domain.Black, cfg)
	if !errors.Is(err, ErrInvalidEngineConfig) {
		t.Fatalf("expected ErrInvalidEngineConfig, got %v", err)
	}
}
