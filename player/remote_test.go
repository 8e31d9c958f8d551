package player

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"morris/communication"
	"morris/game"
)

func TestRemote(t *testing.T) {
	t.Run("sends the board and returns the agent's action", func(t *testing.T) {
		var received game.Board
		agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/findmove", r.URL.Path)
			var req communication.Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			b, err := req.Board.ToBoard()
			require.NoError(t, err)
			received = b
			_ = json.NewEncoder(w).Encode(communication.ActionResponse{Action: 42})
		}))
		defer agent.Close()

		cells := make([]int, game.Positions)
		cells[3] = -1
		b := game.MustBoard(cells, 1, 1)

		p, err := New(agent.URL, testGame, 0, 0, nil, nil)
		require.NoError(t, err)
		a, err := p.Play(b)
		require.NoError(t, err)
		require.Equal(t, 42, a)
		require.Equal(t, b, received)
	})

	t.Run("agent failures are errors", func(t *testing.T) {
		agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		defer agent.Close()

		_, err := NewRemote(agent.URL, agent.Client()).Play(game.Board{})
		require.ErrorContains(t, err, "503")
		require.ErrorContains(t, err, "overloaded")
	})
}
