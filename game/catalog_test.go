package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Built during package variable initialization, before any init function.
var testCatalog = NewCatalog()

func TestNewCatalog(t *testing.T) {
	t.Run("enumerating every well-formed move once", func(t *testing.T) {
		placing := Positions * Positions                     // 24 no-capture + 23 captures per point
		moving := Positions * (Positions - 1) * (Positions - 1) // ordered pairs, 1 + 22 capture variants
		require.Equal(t, placing+moving, testCatalog.Size())
		require.Equal(t, 13272, testCatalog.Size())
		require.Len(t, testCatalog.index, testCatalog.Size(), "Reverse index should hold every move")
	})

	t.Run("package level catalog matches one built at run time", func(t *testing.T) {
		require.Equal(t, NewCatalog().moves, testCatalog.moves)

		i, ok := testCatalog.Index(Move{Origin: 0, Destination: 7, Capture: NoPosition})
		require.True(t, ok)
		require.Equal(t, Positions*Positions, i, "First move follows the placements")
	})

	t.Run("indices are stable and reversible", func(t *testing.T) {
		require.Equal(t, Move{Origin: NoPosition, Destination: 0, Capture: NoPosition}, testCatalog.Move(0))
		require.Equal(t, Move{Origin: NoPosition, Destination: 0, Capture: 1}, testCatalog.Move(1))

		var mismatched []int
		for i := 0; i < testCatalog.Size(); i++ {
			if j, ok := testCatalog.Index(testCatalog.Move(i)); !ok || i != j {
				mismatched = append(mismatched, i)
			}
		}
		require.Empty(t, mismatched)
	})

	t.Run("no move reuses a point", func(t *testing.T) {
		var reused []Move
		for _, m := range testCatalog.moves {
			if !IsValid(m.Destination) || m.Destination == m.Origin || m.Destination == m.Capture ||
				(m.Origin != NoPosition && m.Origin == m.Capture) {
				reused = append(reused, m)
			}
		}
		require.Empty(t, reused)
	})

	t.Run("unknown moves are not indexed", func(t *testing.T) {
		_, ok := testCatalog.Index(Move{Origin: 3, Destination: 3, Capture: NoPosition})
		require.False(t, ok)
	})

	t.Run("panics on out of range index", func(t *testing.T) {
		require.Panics(t, func() { testCatalog.Move(-1) })
		require.Panics(t, func() { testCatalog.Move(testCatalog.Size()) })
	})
}

func TestCatalogRotation(t *testing.T) {
	t.Run("rotation table matches rotated moves", func(t *testing.T) {
		var mismatched []int
		for i, m := range testCatalog.moves {
			if m.Rotate() != testCatalog.moves[testCatalog.Rotated(i)] {
				mismatched = append(mismatched, i)
			}
		}
		require.Empty(t, mismatched)
	})

	t.Run("rotation is a permutation", func(t *testing.T) {
		seen := make([]bool, testCatalog.Size())
		var twice []int
		for i := range testCatalog.moves {
			j := testCatalog.Rotated(i)
			if seen[j] {
				twice = append(twice, j)
			}
			seen[j] = true
		}
		require.Empty(t, twice, "No index may be hit twice")
	})

	t.Run("rotation has order four", func(t *testing.T) {
		var wrong []int
		for i := range testCatalog.moves {
			j := i
			for k := 0; k < 4; k++ {
				j = testCatalog.Rotated(j)
			}
			// A quarter turn moves every point
			if i != j || i == testCatalog.Rotated(i) {
				wrong = append(wrong, i)
			}
		}
		require.Empty(t, wrong)
	})
}
