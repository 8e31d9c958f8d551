package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"
	"morris/player"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *LocalEngine) {
		if c != nil {
			e.collector = c
		}
	}
}

func WithID(id int) Option {
	return func(e *LocalEngine) {
		e.id = id
	}
}

// LocalEngine runs one game between two in-process players. The first player
// plays PlayerOne and moves first.
type LocalEngine struct {
	game      *game.Game
	players   [2]player.Player
	maxTurns  int
	collector metrics.Collector
	id        int
}

func NewLocalEngine(g *game.Game, first, second player.Player, options ...Option) *LocalEngine {
	e := &LocalEngine{ // Default values
		game:      g,
		players:   [2]player.Player{first, second},
		maxTurns:  meta.MAX_TURNS,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is decided or the turn cap is
// reached, which counts as a draw.
func (e *LocalEngine) Run(ctx context.Context) (game.Result, metrics.GameMetric, error) {
	session := NewSession(e.game)
	metric := metrics.GameMetric{
		ID:             e.id,
		StartingPlayer: 1,
		StartTime:      time.Now(),
	}

	logger := log.With().Int("game", e.id).Logger()
	logger.Debug().Msg("game started")

	for turn := 0; turn < e.maxTurns && !session.IsOver(); turn++ {
		if err := ctx.Err(); err != nil {
			return game.Ongoing, metric, err
		}

		current := session.Player()
		index := 0
		if current == game.PlayerTwo {
			index = 1
		}

		action, err := e.players[index].Play(session.Canonical())
		if err != nil {
			return game.Ongoing, metric, fmt.Errorf("%v failed to choose an action: %w", current, err)
		}
		if err := session.Play(action); err != nil {
			return game.Ongoing, metric, fmt.Errorf("%v: %w", current, err)
		}

		move := e.game.Move(action)
		metric.Moves++
		if move.IsCapture() {
			metric.Captures++
		}
		e.collector.AddMove(move.IsCapture())
		logger.Trace().Int("turn", turn).Stringer("player", current).Stringer("move", move).Msg("move played")
	}

	result := session.Result()
	if result == game.Ongoing {
		logger.Debug().Int("turns", e.maxTurns).Msg("turn cap reached")
		result = game.Draw
	}

	metric.Result = result
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)

	logger.Debug().Stringer("result", result).Int("moves", metric.Moves).Msg("game finished")
	return result, metric, nil
}
