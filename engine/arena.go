package engine

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"
	"morris/player"
)

// Arena pits two players against each other over many games, alternating
// which one moves first.
type Arena struct {
	game      *game.Game
	one, two  player.Player
	workers   int
	maxTurns  int
	collector metrics.Collector
}

type ArenaOption func(a *Arena)

// WithWorkers caps how many games run at once. Players that are not safe for
// concurrent use need a single worker.
func WithWorkers(workers int) ArenaOption {
	return func(a *Arena) {
		if workers > 0 {
			a.workers = workers
		}
	}
}

func WithArenaMaxTurns(turns int) ArenaOption {
	return func(a *Arena) {
		if turns > 0 {
			a.maxTurns = turns
		}
	}
}

func WithArenaCollector(c metrics.Collector) ArenaOption {
	return func(a *Arena) {
		if c != nil {
			a.collector = c
		}
	}
}

func NewArena(g *game.Game, one, two player.Player, options ...ArenaOption) *Arena {
	a := &Arena{ // Default values
		game:      g,
		one:       one,
		two:       two,
		workers:   1,
		maxTurns:  meta.MAX_TURNS,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// ArenaResult counts games from the first player's perspective.
type ArenaResult struct {
	OneWon int
	TwoWon int
	Draws  int
	Games  []metrics.GameMetric
}

// PlayGames plays n games. The first half start with the first player, the
// second half with the second; for odd n the first player starts the extra
// game. The first error cancels the remaining games.
func (a *Arena) PlayGames(ctx context.Context, n int) (ArenaResult, error) {
	games := make([]metrics.GameMetric, n)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(a.workers)

	for i := 0; i < n; i++ {
		swapped := i >= (n+1)/2
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			first, second := a.one, a.two
			if swapped {
				first, second = a.two, a.one
			}
			e := NewLocalEngine(a.game, first, second,
				WithID(i),
				WithMaxTurns(a.maxTurns),
				WithCollector(a.collector),
			)
			result, metric, err := e.Run(ctx)
			if err != nil {
				return err
			}
			if swapped {
				result = result.Reverse()
				metric.StartingPlayer = 2
			}
			metric.Result = result
			a.collector.AddGame(result)
			games[i] = metric
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return ArenaResult{}, err
	}

	res := ArenaResult{Games: games}
	for _, metric := range games {
		switch metric.Result {
		case game.Win:
			res.OneWon++
		case game.Loss:
			res.TwoWon++
		default:
			res.Draws++
		}
	}
	log.Info().Msgf("arena finished %d games: %d won, %d lost, %d drawn", n, res.OneWon, res.TwoWon, res.Draws)
	return res, nil
}
