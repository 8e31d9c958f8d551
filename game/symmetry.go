package game

import "fmt"

// Symmetry is a rotated board with the policy vector re-indexed to match it.
type Symmetry struct {
	Board Board     `json:"board"`
	Pi    []float64 `json:"pi"`
}

// rotatePolicy moves every probability to the index of its rotated move.
// The permutation is a bijection, so no renormalization is needed.
func (c *Catalog) rotatePolicy(pi []float64) []float64 {
	rotated := make([]float64, len(pi))
	for i, p := range pi {
		rotated[c.rotation[i]] = p
	}
	return rotated
}

// Symmetries returns the board and policy rotated by 90, 180 and 270 degrees,
// in that order. pi must be aligned to the catalog.
func (g *Game) Symmetries(b Board, pi []float64) []Symmetry {
	if len(pi) != g.catalog.Size() {
		panic(fmt.Sprintf("policy has %d entries, want %d", len(pi), g.catalog.Size()))
	}
	symmetries := make([]Symmetry, 0, 3)
	for i := 0; i < 3; i++ {
		b = b.Rotate()
		pi = g.catalog.rotatePolicy(pi)
		symmetries = append(symmetries, Symmetry{Board: b, Pi: pi})
	}
	return symmetries
}
