package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"morris/game"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent updates", func(t *testing.T) {
		c := NewCollector()
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c.AddMove(i%2 == 0)
				c.AddMove(false)
				c.AddGame([]game.Result{game.Win, game.Loss, game.Draw}[i%3])
			}(i)
		}
		wg.Wait()

		summary := c.Complete()
		require.Equal(t, 10, summary.Games)
		require.Equal(t, 20, summary.Moves)
		require.Equal(t, 5, summary.Captures)
		require.Equal(t, 4, summary.OneWon)
		require.Equal(t, 3, summary.TwoWon)
		require.Equal(t, 3, summary.Draws)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.AddMove(true)
		c.AddGame(game.Win)
		require.Equal(t, Summary{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "arena")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "arena"), filepath.Dir(w.Dir()))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	records := []GameRecord{
		{Player1: "random", Player2: "uniform", GameMetric: GameMetric{
			ID: 0, StartingPlayer: 1, Result: game.Win, Moves: 41, Captures: 7,
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
		}},
		{Player1: "random", Player2: "uniform", GameMetric: GameMetric{
			ID: 1, StartingPlayer: 2, Result: game.Draw, Moves: 300,
		}},
	}
	require.NoError(t, w.WriteGameRecords(records))
	require.NoError(t, w.WriteSummary(Summary{Games: 2, Moves: 341, Captures: 7, OneWon: 1, Draws: 1, Duration: time.Minute}))

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 3, "Header plus one row per game")
	require.Equal(t, "starting_player", games[0][3])
	require.Equal(t, []string{"0", "random", "uniform", "1", "win", "41", "7", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, games[1])
	require.Equal(t, "draw", games[2][4])

	summary := readCSV(t, filepath.Join(w.Dir(), "summary.csv"))
	require.Equal(t, []string{"2", "341", "7", "1", "0", "1", "1m0s"}, summary[1])
}
