package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"morris/experiments/metrics"
	"morris/game"
	"morris/player"
)

var testGame = game.NewGame()

// firstLegal always plays the lowest legal action.
func firstLegal(g *game.Game) player.Player {
	return player.Func(func(b game.Board) (int, error) {
		return g.LegalActions(b, game.PlayerOne)[0], nil
	})
}

func placement(pos int) int {
	a, _ := testGame.Index(game.Move{Origin: game.NoPosition, Destination: pos, Capture: game.NoPosition})
	return a
}

func TestSession(t *testing.T) {
	t.Run("alternates players and records history", func(t *testing.T) {
		s := NewSession(testGame)
		require.Equal(t, game.PlayerOne, s.Player())

		require.NoError(t, s.Play(placement(0)))
		require.Equal(t, game.PlayerTwo, s.Player())
		require.Equal(t, game.PlayerOne, s.Board().At(0))
		require.Equal(t, game.PlayerTwo, s.Canonical().At(0), "Player two sees the opponent's stone as -1")

		require.NoError(t, s.Play(placement(1)))
		require.Len(t, s.History(), 2)
		require.Equal(t, game.PlayerTwo, s.History()[1].Player)
		require.Equal(t, game.Ongoing, s.Result())
	})

	t.Run("rejects illegal actions without changing the board", func(t *testing.T) {
		s := NewSession(testGame)
		require.NoError(t, s.Play(placement(0)))
		before := s.Board()

		err := s.Play(placement(0))
		require.ErrorIs(t, err, ErrIllegalAction)
		require.ErrorIs(t, s.Play(-1), ErrIllegalAction)
		require.ErrorIs(t, s.Play(testGame.ActionCount()), ErrIllegalAction)
		require.Equal(t, before, s.Board())
		require.Equal(t, game.PlayerTwo, s.Player())
	})

	t.Run("decided games accept no more actions", func(t *testing.T) {
		cells := make([]int, game.Positions)
		for pos := 0; pos < 8; pos++ {
			cells[pos] = 1 - 2*(pos%2)
		}
		blocked := game.MustBoard(cells, 18, 0)

		s := ResumeSession(testGame, blocked, game.PlayerOne)
		require.True(t, s.IsOver())
		require.Equal(t, game.Loss, s.Result())
		require.ErrorIs(t, s.Play(0), ErrGameOver)

		s = ResumeSession(testGame, blocked.Canonical(game.PlayerTwo), game.PlayerTwo)
		require.Equal(t, game.Win, s.Result(), "Result is reported for player one")
	})
}

func TestLocalEngine(t *testing.T) {
	t.Run("random players finish a game", func(t *testing.T) {
		collector := metrics.NewCollector()
		e := NewLocalEngine(testGame, player.NewRandom(testGame, 1), player.NewRandom(testGame, 2), WithCollector(collector), WithID(4))

		result, metric, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Contains(t, []game.Result{game.Win, game.Loss, game.Draw}, result)
		require.Equal(t, result, metric.Result)
		require.Equal(t, 4, metric.ID)
		require.Greater(t, metric.Moves, 0)
		require.Equal(t, metric.Moves, collector.Complete().Moves)
		require.Equal(t, metric.Captures, collector.Complete().Captures)
		require.False(t, metric.EndTime.Before(metric.StartTime))
	})

	t.Run("turn cap counts as a draw", func(t *testing.T) {
		e := NewLocalEngine(testGame, firstLegal(testGame), firstLegal(testGame), WithMaxTurns(4))
		result, metric, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.Draw, result)
		require.Equal(t, 4, metric.Moves)
	})

	t.Run("illegal actions stop the game", func(t *testing.T) {
		stubborn := player.Func(func(game.Board) (int, error) { return placement(0), nil })
		e := NewLocalEngine(testGame, stubborn, stubborn)
		_, _, err := e.Run(context.Background())
		require.ErrorIs(t, err, ErrIllegalAction)
	})

	t.Run("player errors are propagated", func(t *testing.T) {
		failing := player.Func(func(game.Board) (int, error) { return 0, errors.New("disconnected") })
		e := NewLocalEngine(testGame, firstLegal(testGame), failing)
		_, _, err := e.Run(context.Background())
		require.ErrorContains(t, err, "disconnected")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		e := NewLocalEngine(testGame, firstLegal(testGame), firstLegal(testGame))
		_, _, err := e.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestArena(t *testing.T) {
	t.Run("alternates the starting player", func(t *testing.T) {
		collector := metrics.NewCollector()
		arena := NewArena(testGame, player.NewRandom(testGame, 1), player.NewRandom(testGame, 2),
			WithWorkers(3), WithArenaCollector(collector))

		res, err := arena.PlayGames(context.Background(), 6)
		require.NoError(t, err)
		require.Equal(t, 6, res.OneWon+res.TwoWon+res.Draws)
		require.Len(t, res.Games, 6)
		for i, metric := range res.Games {
			require.Equal(t, i, metric.ID)
			if i < 3 {
				require.Equal(t, 1, metric.StartingPlayer)
			} else {
				require.Equal(t, 2, metric.StartingPlayer)
			}
		}

		summary := collector.Complete()
		require.Equal(t, 6, summary.Games)
		require.Equal(t, res.OneWon, summary.OneWon)
		require.Equal(t, res.TwoWon, summary.TwoWon)
	})

	t.Run("first player starts the extra game of an odd count", func(t *testing.T) {
		arena := NewArena(testGame, firstLegal(testGame), firstLegal(testGame), WithArenaMaxTurns(2))

		res, err := arena.PlayGames(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, 1, res.Games[0].StartingPlayer)

		res, err = arena.PlayGames(context.Background(), 3)
		require.NoError(t, err)
		starts := make([]int, len(res.Games))
		for i, metric := range res.Games {
			starts[i] = metric.StartingPlayer
		}
		require.Equal(t, []int{1, 1, 2}, starts)
	})

	t.Run("capped games are all draws", func(t *testing.T) {
		arena := NewArena(testGame, firstLegal(testGame), firstLegal(testGame), WithArenaMaxTurns(2), WithWorkers(2))
		res, err := arena.PlayGames(context.Background(), 4)
		require.NoError(t, err)
		require.Equal(t, 4, res.Draws)
	})

	t.Run("first error cancels the arena", func(t *testing.T) {
		stubborn := player.Func(func(game.Board) (int, error) { return placement(0), nil })
		arena := NewArena(testGame, stubborn, stubborn, WithWorkers(2))
		_, err := arena.PlayGames(context.Background(), 4)
		require.ErrorIs(t, err, ErrIllegalAction)
	})
}
