package game

import "fmt"

// Catalog enumerates every syntactically well-formed move exactly once and
// assigns it a stable index. It is a superset of what can ever be legal: the
// Board decides legality against the live position. A Catalog is immutable
// after construction and safe for concurrent use.
type Catalog struct {
	moves    []Move
	index    map[Move]int
	rotation []int
}

// NewCatalog builds the move list, its reverse index and the 90 degree
// rotation permutation.
func NewCatalog() *Catalog {
	c := &Catalog{index: make(map[Move]int)}

	c.addPlacements()
	// Adjacency moves first, then the flying superset; duplicates are dropped
	for origin := 0; origin < Positions; origin++ {
		for _, destination := range Adjacent(origin) {
			c.addWithCaptures(origin, destination)
		}
	}
	for origin := 0; origin < Positions; origin++ {
		for destination := 0; destination < Positions; destination++ {
			if origin != destination {
				c.addWithCaptures(origin, destination)
			}
		}
	}

	c.rotation = make([]int, len(c.moves))
	for i, move := range c.moves {
		j, ok := c.index[move.Rotate()]
		if !ok {
			panic(fmt.Sprintf("rotated move %v of %v is missing from the catalog", move.Rotate(), move))
		}
		c.rotation[i] = j
	}
	return c
}

func (c *Catalog) addPlacements() {
	for destination := 0; destination < Positions; destination++ {
		c.add(Move{Origin: NoPosition, Destination: destination, Capture: NoPosition})
		for capture := 0; capture < Positions; capture++ {
			if capture != destination {
				c.add(Move{Origin: NoPosition, Destination: destination, Capture: capture})
			}
		}
	}
}

func (c *Catalog) addWithCaptures(origin, destination int) {
	c.add(Move{Origin: origin, Destination: destination, Capture: NoPosition})
	for capture := 0; capture < Positions; capture++ {
		if capture != origin && capture != destination {
			c.add(Move{Origin: origin, Destination: destination, Capture: capture})
		}
	}
}

func (c *Catalog) add(m Move) {
	if _, ok := c.index[m]; ok {
		return
	}
	c.index[m] = len(c.moves)
	c.moves = append(c.moves, m)
}

// Size returns the number of moves, i.e. the length of every action vector.
func (c *Catalog) Size() int {
	return len(c.moves)
}

// Move returns the move stored at index. It panics if index is out of range.
func (c *Catalog) Move(index int) Move {
	if index < 0 || index >= len(c.moves) {
		panic(fmt.Sprintf("action index %d out of range [0,%d)", index, len(c.moves)))
	}
	return c.moves[index]
}

// Index returns the catalog index of m.
func (c *Catalog) Index(m Move) (int, bool) {
	i, ok := c.index[m]
	return i, ok
}

// Rotated returns the index of the move at index after a 90 degree rotation.
func (c *Catalog) Rotated(index int) int {
	return c.rotation[index]
}
