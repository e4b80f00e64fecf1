package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/GPar6/gomoku/internal/config"
	"github.com/GPar6/gomoku/internal/service/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var opts options
	flag.IntVar(&opts.Games, "games", 20, "number of games to play")
	flag.IntVar(&opts.Concurrency, "concurrency", runtime.NumCPU(), "games played in parallel")
	flag.StringVar(&opts.EngineA, "a", "hard", "difficulty of engine A")
	flag.StringVar(&opts.EngineB, "b", "medium", "difficulty of engine B")
	flag.IntVar(&opts.OpeningPlies, "opening", 2, "random stones placed near the center before the engines play")
	flag.Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "random seed")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// ENGINE_* variables tune both sides
	opts.Base = config.LoadEngineConfig(bot.DefaultConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := run(ctx, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("arena failed")
	}
	result.print()
}
