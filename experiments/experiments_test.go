package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"morris/game"
	"morris/player"
)

func TestRun(t *testing.T) {
	g := game.NewGame()

	t.Run("plays every matchup and writes records", func(t *testing.T) {
		root := t.TempDir()
		matchUps := []MatchUp{
			{Name1: "random", Name2: "random", One: player.NewRandom(g, 1), Two: player.NewRandom(g, 2)},
			{Name1: "random", Name2: "uniform", One: player.NewRandom(g, 3), Two: player.NewPolicyPlayer(g, player.Uniform{Size: g.ActionCount()}, 1, 4)},
		}

		results, err := Run(context.Background(), g, "smoke", matchUps, Settings{Games: 2, Workers: 2, MaxTurns: 60, RecordDir: root})
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, res := range results {
			require.Equal(t, 2, res.OneWon+res.TwoWon+res.Draws)
		}

		dirs, err := os.ReadDir(filepath.Join(root, "smoke"))
		require.NoError(t, err)
		require.Len(t, dirs, 1, "One timestamped folder per run")
		for _, name := range []string{"game_records.csv", "summary.csv"} {
			_, err := os.Stat(filepath.Join(root, "smoke", dirs[0].Name(), name))
			require.NoError(t, err, name)
		}
	})

	t.Run("no records without a directory", func(t *testing.T) {
		matchUps := []MatchUp{{Name1: "a", Name2: "b", One: player.NewRandom(g, 1), Two: player.NewRandom(g, 2)}}
		results, err := Run(context.Background(), g, "quiet", matchUps, Settings{Games: 1, Workers: 1, MaxTurns: 10})
		require.NoError(t, err)
		require.Len(t, results, 1)
	})

	t.Run("errors abort the experiment", func(t *testing.T) {
		broken := player.Func(func(game.Board) (int, error) { return -1, nil })
		matchUps := []MatchUp{{Name1: "broken", Name2: "broken", One: broken, Two: broken}}
		_, err := Run(context.Background(), g, "broken", matchUps, Settings{Games: 1, Workers: 1, MaxTurns: 10})
		require.ErrorContains(t, err, "broken vs broken")
	})
}
