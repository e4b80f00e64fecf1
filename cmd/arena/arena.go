package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/GPar6/gomoku/internal/service/bot"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type options struct {
	Games        int
	Concurrency  int
	EngineA      string
	EngineB      string
	OpeningPlies int
	Seed         int64
	Base         bot.Config
}

type gameInfo struct {
	Index int
	Seed  int64

	// AIsBlack alternates so both engines open equally often.
	AIsBlack bool
}

type gameResult struct {
	Index  int
	Winner string // "a", "b" or "" for a draw
	Moves  int
}

type summary struct {
	EngineA, EngineB string
	WinsA, WinsB     int
	Draws            int
	TotalMoves       int
}

func (s *summary) add(res gameResult) {
	switch res.Winner {
	case "a":
		s.WinsA++
	case "b":
		s.WinsB++
	default:
		s.Draws++
	}
	s.TotalMoves += res.Moves
}

func (s summary) games() int {
	return s.WinsA + s.WinsB + s.Draws
}

func (s summary) print() {
	n := s.games()
	avg := 0.0
	if n > 0 {
		avg = float64(s.TotalMoves) / float64(n)
	}
	fmt.Printf("%s vs %s: +%d -%d =%d (%d games, %.1f moves/game)\n",
		s.EngineA, s.EngineB, s.WinsA, s.WinsB, s.Draws, n, avg)
}

func run(ctx context.Context, opts options) (summary, error) {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	log.Info().
		Int("games", opts.Games).
		Int("concurrency", opts.Concurrency).
		Str("a", opts.EngineA).
		Str("b", opts.EngineB).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	gameInfos := make(chan gameInfo)
	gameResults := make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		rng := rand.New(rand.NewSource(opts.Seed))
		for i := 0; i < opts.Games; i++ {
			info := gameInfo{Index: i, Seed: rng.Int63(), AIsBlack: i%2 == 0}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
		return nil
	})

	result := summary{EngineA: opts.EngineA, EngineB: opts.EngineB}
	g.Go(func() error {
		for res := range gameResults {
			result.add(res)
			log.Debug().Int("game", res.Index).Str("winner", res.Winner).Int("moves", res.Moves).Msg("game finished")
		}
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, opts, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return result, err
	}
	log.Info().Int("games", result.games()).Msg("arena finished")
	return result, nil
}

func playGames(ctx context.Context, opts options, gameInfos <-chan gameInfo, gameResults chan<- gameResult) error {
	for info := range gameInfos {
		res, err := playGame(ctx, opts, info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

// playGame plays one game to the end. Each engine gets its own random source
// derived from the game seed so a game replays identically.
func playGame(ctx context.Context, opts options, info gameInfo) (gameResult, error) {
	rng := rand.New(rand.NewSource(info.Seed))
	engineA := bot.NewEngine(bot.ConfigForDifficulty(opts.EngineA, opts.Base), rand.NewSource(rng.Int63()))
	engineB := bot.NewEngine(bot.ConfigForDifficulty(opts.EngineB, opts.Base), rand.NewSource(rng.Int63()))

	black, white := engineA, engineB
	if !info.AIsBlack {
		black, white = engineB, engineA
	}

	g := domain.NewGame(domain.BoardSize)
	if err := playOpening(g, rng, opts.OpeningPlies); err != nil {
		return gameResult{}, err
	}

	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		engine := black
		if g.CurrentRole == domain.White {
			engine = white
		}
		coord, err := engine.ChooseMove(g.Board, g.CurrentRole)
		if err != nil {
			return gameResult{}, fmt.Errorf("game %d move %d: %w", info.Index, g.MoveCount, err)
		}
		if err := g.MakeMove(g.CurrentRole, coord); err != nil {
			return gameResult{}, fmt.Errorf("game %d engine played %v: %w", info.Index, coord, err)
		}
	}

	res := gameResult{Index: info.Index, Moves: g.MoveCount}
	switch {
	case g.Winner == domain.Empty:
	case (g.Winner == domain.Black) == info.AIsBlack:
		res.Winner = "a"
	default:
		res.Winner = "b"
	}
	return res, nil
}

// playOpening places random stones within two cells of the center.
func playOpening(g *domain.Game, rng *rand.Rand, plies int) error {
	center := g.Board.Center()
	for i := 0; i < plies && !g.IsFinished(); i++ {
		var free []domain.Coordinate
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				c := domain.Coordinate{Row: center.Row + dr, Col: center.Col + dc}
				if g.Board.At(c) == domain.Empty {
					free = append(free, c)
				}
			}
		}
		if len(free) == 0 {
			return nil
		}
		if err := g.MakeMove(g.CurrentRole, free[rng.Intn(len(free))]); err != nil {
			return err
		}
	}
	return nil
}
