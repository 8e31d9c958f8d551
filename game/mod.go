package game

import "fmt"

// Player identifies a side. The two values are symmetric; canonical boards are
// always seen from PlayerOne's perspective.
type Player int8

const (
	PlayerOne Player = 1
	PlayerTwo Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) IsValid() bool {
	return p == PlayerOne || p == PlayerTwo
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player1"
	case PlayerTwo:
		return "Player2"
	default:
		return fmt.Sprintf("Player(%d)", int8(p))
	}
}

// Move places or moves a stone to Destination, optionally removing the opponent
// stone on Capture. Origin is NoPosition for placements and Capture is
// NoPosition when no mill is formed.
type Move struct {
	Origin      int
	Destination int
	Capture     int
}

func (m Move) IsPlacement() bool {
	return m.Origin == NoPosition
}

func (m Move) IsCapture() bool {
	return m.Capture != NoPosition
}

// Rotate returns the move rotated by 90 degrees.
func (m Move) Rotate() Move {
	return Move{
		Origin:      rotatePosition(m.Origin),
		Destination: rotatePosition(m.Destination),
		Capture:     rotatePosition(m.Capture),
	}
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s %s", positionString(m.Origin), positionString(m.Destination), positionString(m.Capture))
}

func positionString(pos int) string {
	if pos == NoPosition {
		return "none"
	}
	return fmt.Sprintf("%d", pos)
}
