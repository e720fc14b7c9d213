package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nim/config"
	"nim/engine"
	"nim/experiments"
	"nim/experiments/metrics"
	"nim/player"
	"nim/searcher"
)

func main() {
	conf, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	initLogger(conf)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, conf); err != nil {
		log.Error().Err(err).Msg("nim failed")
		os.Exit(1)
	}
}

func initLogger(conf *config.Config) {
	zerolog.SetGlobalLevel(conf.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func run(ctx context.Context, conf *config.Config) error {
	state := conf.InitialState()

	if conf.Mode == config.ModeExperiment {
		configs := experiments.DepthConfigs(conf.Depth, conf.Goroutines)
		games, moves, err := experiments.RunDepthMatchups(ctx, state, configs, conf.Seed)
		if err != nil {
			return err
		}
		return experiments.Report(metrics.NewWriter(os.Stdout), configs, games, moves)
	}

	var players [2]player.Player
	first := 0
	switch conf.Mode {
	case config.ModeSelf:
		players = [2]player.Player{newComputer("Computer 1", conf), newComputer("Computer 2", conf)}
	default:
		players = [2]player.Player{player.NewHuman("Human", os.Stdin, os.Stdout), newComputer("Computer", conf)}
		if !conf.HumanFirst() {
			first = 1
		}
	}

	e, err := engine.New(state, players, first, os.Stdout)
	if err != nil {
		return err
	}
	_, err = e.Run(ctx)
	return err
}

func newComputer(name string, conf *config.Config) *player.Computer {
	return player.NewComputer(name, searcher.NewMinimax(
		searcher.WithGoroutines(conf.Goroutines),
		searcher.WithMetrics(),
	))
}
