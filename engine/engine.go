package engine

import (
	"context"

	"morris/experiments/metrics"
	"morris/game"
)

type Engine interface {
	// Run plays a game till there's a result or the turn cap is reached.
	// The result is seen from the player that moved first.
	Run(ctx context.Context) (game.Result, metrics.GameMetric, error)
}
