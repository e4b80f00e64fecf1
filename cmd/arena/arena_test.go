package main

import (
	"context"
	"os"
	"testing"

	"github.com/GPar6/gomoku/internal/service/bot"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func testOptions(games int) options {
	return options{
		Games:        games,
		Concurrency:  2,
		EngineA:      "easy",
		EngineB:      "easy",
		OpeningPlies: 2,
		Seed:         42,
		Base:         bot.DefaultConfig(),
	}
}

func TestPlayGameIsReproducible(t *testing.T) {
	opts := testOptions(1)
	info := gameInfo{Index: 0, Seed: 7, AIsBlack: true}

	first, err := playGame(context.Background(), opts, info)
	if err != nil {
		t.Fatalf("playGame: %v", err)
	}
	second, err := playGame(context.Background(), opts, info)
	if err != nil {
		t.Fatalf("playGame: %v", err)
	}
	if first != second {
		t.Fatalf("same seed gave different games: %+v vs %+v", first, second)
	}
	if first.Moves < 9 || first.Moves > 225 {
		t.Fatalf("implausible game length %d", first.Moves)
	}
}

func TestRunPlaysAllGames(t *testing.T) {
	result, err := run(context.Background(), testOptions(4))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.games() != 4 {
		t.Fatalf("expected 4 games, got %d", result.games())
	}
	if result.TotalMoves == 0 {
		t.Fatalf("no moves recorded")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := run(ctx, testOptions(10)); err == nil {
		t.Fatalf("expected an error from a cancelled arena")
	}
}
