package communication

import "morris/game"

// Board is the wire form of game.Board. Cells is a slice so that requests
// with the wrong number of points can be told apart from empty points.
type Board struct {
	Cells            []int `json:"cells"`
	StonesPlaced     int   `json:"stonesPlaced"`
	MovesWithoutMill int   `json:"movesWithoutMill"`
}

func FromBoard(b game.Board) Board {
	cells := make([]int, len(b.Cells))
	for i, cell := range b.Cells {
		cells[i] = int(cell)
	}
	return Board{Cells: cells, StonesPlaced: b.StonesPlaced, MovesWithoutMill: b.MovesWithoutMill}
}

// ToBoard validates the wire board.
func (b Board) ToBoard() (game.Board, error) {
	return game.NewBoard(b.Cells, b.StonesPlaced, b.MovesWithoutMill)
}

type Request struct {
	Board  *Board    `json:"board"`
	Player int       `json:"player"`
	Action *int      `json:"action,omitempty"`
	Pi     []float64 `json:"pi,omitempty"`
}

type StateResponse struct {
	Board  game.Board `json:"board"`
	Player int        `json:"player"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type ValidResponse struct {
	Valid []int `json:"valid"`
	Legal []int `json:"legal"`
}

type OutcomeResponse struct {
	Outcome float64 `json:"outcome"`
	Result  string  `json:"result"`
}

type CanonicalResponse struct {
	Board game.Board `json:"board"`
}

type SymmetriesResponse struct {
	Symmetries []game.Symmetry `json:"symmetries"`
}

type HashResponse struct {
	Key string `json:"key"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ActionResponse is what a remote agent answers to a move request.
type ActionResponse struct {
	Action int `json:"action"`
}
