package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"morris/engine"
	"morris/experiments/metrics"
	"morris/game"
	"morris/player"
)

// MatchUp pairs two named players.
type MatchUp struct {
	Name1, Name2 string
	One, Two     player.Player
}

type Settings struct {
	Games     int // Per match up
	Workers   int
	MaxTurns  int
	RecordDir string // Empty disables records
}

// Run plays every match up in turn and stores the game records and a summary
// under <RecordDir>/<name>/<timestamp>.
func Run(ctx context.Context, g *game.Game, name string, matchUps []MatchUp, settings Settings) ([]engine.ArenaResult, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	results := make([]engine.ArenaResult, 0, len(matchUps))
	collector := metrics.NewCollector()

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), matchUp.Name1, matchUp.Name2)

		arena := engine.NewArena(g, matchUp.One, matchUp.Two,
			engine.WithWorkers(settings.Workers),
			engine.WithArenaMaxTurns(settings.MaxTurns),
			engine.WithArenaCollector(collector),
		)
		res, err := arena.PlayGames(ctx, settings.Games)
		if err != nil {
			return nil, fmt.Errorf("matchup %s vs %s: %w", matchUp.Name1, matchUp.Name2, err)
		}
		results = append(results, res)

		for _, metric := range res.Games {
			metric.ID = count
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				Player1:    matchUp.Name1,
				Player2:    matchUp.Name2,
				GameMetric: metric,
			})
		}
		log.Info().
			Int("player1_won", res.OneWon).
			Int("player2_won", res.TwoWon).
			Int("draws", res.Draws).
			Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	summary := collector.Complete()
	log.Info().
		Int("games", summary.Games).
		Int("moves", summary.Moves).
		Int("captures", summary.Captures).
		Dur("duration", summary.Duration).
		Msgf("completed %s experiment", name)

	if settings.RecordDir == "" {
		return results, nil
	}

	writer, err := metrics.NewWriter(settings.RecordDir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteSummary(summary); err != nil {
		return nil, err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored summary")
	return results, nil
}
