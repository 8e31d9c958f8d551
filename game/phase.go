package game

// Phase is derived per player from the board and never stored.
type Phase int

const (
	PlacingPhase Phase = iota // fewer than MAX_STONES placed in total
	MovingPhase               // stones step along lines to adjacent points
	FlyingPhase               // a player down to three stones may jump anywhere
)

func (p Phase) String() string {
	switch p {
	case PlacingPhase:
		return "placing"
	case MovingPhase:
		return "moving"
	case FlyingPhase:
		return "flying"
	default:
		return "unknown"
	}
}
