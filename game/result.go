package game

import "morris/meta"

// Result is the state of a game from one player's perspective.
type Result int

const (
	Ongoing Result = iota
	Win
	Loss
	Draw
)

// Value encodes the result the way search and training code expects it:
// 0 ongoing, 1 win, -1 loss and a small positive value for a draw.
func (r Result) Value() float64 {
	switch r {
	case Win:
		return 1
	case Loss:
		return -1
	case Draw:
		return meta.DRAW_VALUE
	default:
		return 0
	}
}

// Reverse returns the same result seen from the opponent's side.
func (r Result) Reverse() Result {
	switch r {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return r
	}
}

func (r Result) String() string {
	switch r {
	case Ongoing:
		return "ongoing"
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}
