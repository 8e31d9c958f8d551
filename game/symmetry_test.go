package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymmetries(t *testing.T) {
	g := newTestGame()

	t.Run("three rotations of board and policy", func(t *testing.T) {
		b := boardWith([]int{0, 9}, []int{17, 20}, 4, 4)
		pi := make([]float64, g.ActionCount())
		a, _ := g.Index(place(0, NoPosition))
		pi[a] = 1

		symmetries := g.Symmetries(b, pi)

		require.Len(t, symmetries, 3)
		require.Equal(t, PlayerOne, symmetries[0].Board.At(2))
		require.Equal(t, PlayerOne, symmetries[1].Board.At(4))
		require.Equal(t, PlayerOne, symmetries[2].Board.At(6))

		for i, want := range []int{2, 4, 6} {
			j, _ := g.Index(place(want, NoPosition))
			require.Equal(t, 1.0, symmetries[i].Pi[j], "Policy mass follows the rotated placement")
		}
		require.Equal(t, 1.0, pi[a], "Input policy must not be modified")
		require.Equal(t, b, symmetries[2].Board.Rotate(), "A fourth turn restores the board")
	})

	t.Run("probability mass is preserved", func(t *testing.T) {
		pi := make([]float64, g.ActionCount())
		for i := range pi {
			pi[i] = float64(i%7) / 10
		}
		var total float64
		for _, p := range pi {
			total += p
		}

		for _, s := range g.Symmetries(g.InitialState(), pi) {
			var sum float64
			for _, p := range s.Pi {
				sum += p
			}
			require.InDelta(t, total, sum, 1e-9)
			require.Equal(t, g.InitialState(), s.Board)
		}
	})

	t.Run("panics on misaligned policy", func(t *testing.T) {
		require.Panics(t, func() { g.Symmetries(g.InitialState(), make([]float64, 10)) })
	})
}
