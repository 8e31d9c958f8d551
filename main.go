package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"morris/communication/server"
	"morris/config"
	"morris/experiments"
	"morris/game"
	"morris/player"
)

func main() {
	mode := flag.String("mode", "arena", "arena: play games between two players, serve: expose the rules over HTTP")
	configPath := flag.String("config", "", "Config file (default: morris/config.json in the XDG config dirs)")
	games := flag.Int("games", 0, "Number of arena games")
	workers := flag.Int("workers", 0, "Number of games played concurrently")
	seed := flag.Uint64("seed", 0, "Seed for random players")
	moveLimit := flag.Int("move-limit", 0, "Moves without a capture before a draw")
	maxTurns := flag.Int("max-turns", 0, "Turn cap per arena game")
	players := flag.String("players", "", "Two comma separated players: random, uniform, human or an agent URL")
	temperature := flag.Float64("temperature", -1, "Sampling temperature of policy players, 0 plays greedily")
	recordDir := flag.String("record-dir", "", "Directory for arena records, empty disables them")
	addr := flag.String("addr", "", "Listen address of the HTTP server")
	logLevel := flag.String("log-level", "", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	// Flags override file values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "workers":
			cfg.SetWorkers(*workers)
		case "seed":
			cfg.Seed = *seed
		case "move-limit":
			cfg.MoveLimit = *moveLimit
		case "max-turns":
			cfg.MaxTurns = *maxTurns
		case "players":
			kinds := strings.Split(*players, ",")
			if len(kinds) != 2 {
				log.Fatal().Msgf("expected two players, got %q", *players)
			}
			cfg.Players = [2]string{strings.TrimSpace(kinds[0]), strings.TrimSpace(kinds[1])}
		case "temperature":
			cfg.Temperature = *temperature
		case "record-dir":
			cfg.RecordDir = *recordDir
		case "addr":
			cfg.Server.Addr = *addr
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := game.NewGame(game.WithMoveLimit(cfg.MoveLimit))

	switch *mode {
	case "arena":
		err = runArena(ctx, g, cfg)
	case "serve":
		log.Info().Str("addr", cfg.Server.Addr).Msg("serving")
		err = server.NewServer(g, log.Logger).ListenAndServe(ctx, cfg.Server.Addr)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(*mode)
	}
}

func runArena(ctx context.Context, g *game.Game, cfg *config.Config) error {
	one, err := player.New(cfg.Players[0], g, cfg.Seed, cfg.Temperature, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	two, err := player.New(cfg.Players[1], g, cfg.Seed+1, cfg.Temperature, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	matchUps := []experiments.MatchUp{{Name1: cfg.Players[0], Name2: cfg.Players[1], One: one, Two: two}}
	_, err = experiments.Run(ctx, g, "arena", matchUps, experiments.Settings{
		Games:     cfg.Games,
		Workers:   cfg.Workers,
		MaxTurns:  cfg.MaxTurns,
		RecordDir: cfg.RecordDir,
	})
	return err
}
