package game

import (
	"fmt"

	"morris/meta"
)

type Option func(g *Game)

// Game is the rules engine behind a fixed action space. It owns the move
// catalog and is safe to share between goroutines; all state lives in Boards.
type Game struct {
	catalog   *Catalog
	moveLimit int
}

// WithMoveLimit sets how many moves without a capture end the game in a draw.
func WithMoveLimit(limit int) Option {
	return func(g *Game) {
		if limit > 0 {
			g.moveLimit = limit
		}
	}
}

// WithCatalog reuses an already built catalog.
func WithCatalog(c *Catalog) Option {
	return func(g *Game) {
		if c != nil {
			g.catalog = c
		}
	}
}

func NewGame(options ...Option) *Game {
	g := &Game{ // Default values
		moveLimit: meta.MOVES_WITHOUT_MILL,
	}
	for _, option := range options {
		option(g)
	}
	if g.catalog == nil {
		g.catalog = NewCatalog()
	}
	return g
}

func (g *Game) Catalog() *Catalog {
	return g.catalog
}

func (g *Game) MoveLimit() int {
	return g.moveLimit
}

// InitialState returns an empty board with both counters at zero.
func (g *Game) InitialState() Board {
	return Board{}
}

// ActionCount returns the size of the action space.
func (g *Game) ActionCount() int {
	return g.catalog.Size()
}

// Move translates an action index into its move.
func (g *Game) Move(action int) Move {
	return g.catalog.Move(action)
}

// Index translates a move into its action index.
func (g *Game) Index(m Move) (int, bool) {
	return g.catalog.Index(m)
}

// LegalActions returns the action indices legal for p, in ascending order.
func (g *Game) LegalActions(b Board, p Player) []int {
	valid := g.ValidActions(b, p)
	actions := []int{}
	for i, v := range valid {
		if v == 1 {
			actions = append(actions, i)
		}
	}
	return actions
}

// ValidActions returns a vector over the action space with 1 at every legal
// action for p.
func (g *Game) ValidActions(b Board, p Player) []uint8 {
	valid := make([]uint8, g.catalog.Size())
	for _, move := range b.LegalMoves(p) {
		i, ok := g.catalog.Index(move)
		if !ok {
			panic(fmt.Sprintf("legal move %v is missing from the catalog", move))
		}
		valid[i] = 1
	}
	return valid
}

// Apply plays action for p on a copy of b and returns it together with the
// next player. Illegal actions panic.
func (g *Game) Apply(b Board, p Player, action int) (Board, Player) {
	move := g.catalog.Move(action)
	if !b.IsLegal(p, move) {
		panic(fmt.Sprintf("illegal action %d (%v) for %v in the %v phase", action, move, p, b.Phase(p)))
	}
	b.Execute(p, move)
	return b, p.Opponent()
}

// Result evaluates the game for p.
func (g *Game) Result(b Board, p Player) Result {
	return b.Result(p, g.moveLimit)
}

// Outcome is Result encoded as a number: 0 ongoing, 1 won, -1 lost, and
// meta.DRAW_VALUE for a draw.
func (g *Game) Outcome(b Board, p Player) float64 {
	return g.Result(b, p).Value()
}

// Canonicalize returns b from p's perspective.
func (g *Game) Canonicalize(b Board, p Player) Board {
	return b.Canonical(p)
}

// HashKey returns the transposition key of b.
func (g *Game) HashKey(b Board) string {
	return Key(b)
}

// Render draws b for debugging.
func (g *Game) Render(b Board) string {
	return Render(b)
}
