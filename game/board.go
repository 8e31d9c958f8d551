package game

import (
	"errors"
	"fmt"
	"sort"

	"morris/meta"
)

var ErrInvalidBoard = errors.New("invalid board")

// Board is the complete game state: the stone on every point plus two
// counters. Cells hold +1, -1 or 0. Board is a plain value: assigning it copies
// everything, so sibling search branches never share storage.
type Board struct {
	Cells            [Positions]int8 `json:"cells"`
	StonesPlaced     int             `json:"stonesPlaced"`     // placed by both players, 0..MAX_STONES
	MovesWithoutMill int             `json:"movesWithoutMill"` // reset by every capture
}

// NewBoard builds a board from a snapshot, validating every invariant.
func NewBoard(cells []int, stonesPlaced, movesWithoutMill int) (Board, error) {
	var b Board
	if len(cells) != Positions {
		return b, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, Positions, len(cells))
	}
	for pos, cell := range cells {
		if cell < -1 || cell > 1 {
			return b, fmt.Errorf("%w: cell %d holds %d", ErrInvalidBoard, pos, cell)
		}
		b.Cells[pos] = int8(cell)
	}
	b.StonesPlaced = stonesPlaced
	b.MovesWithoutMill = movesWithoutMill
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// MustBoard is like NewBoard but panics on an invalid snapshot.
func MustBoard(cells []int, stonesPlaced, movesWithoutMill int) Board {
	b, err := NewBoard(cells, stonesPlaced, movesWithoutMill)
	if err != nil {
		panic(err)
	}
	return b
}

// Validate checks the counters and cell values.
func (b Board) Validate() error {
	if b.StonesPlaced < 0 || b.StonesPlaced > meta.MAX_STONES {
		return fmt.Errorf("%w: %d stones placed, want 0..%d", ErrInvalidBoard, b.StonesPlaced, meta.MAX_STONES)
	}
	if b.MovesWithoutMill < 0 {
		return fmt.Errorf("%w: negative moves without mill %d", ErrInvalidBoard, b.MovesWithoutMill)
	}
	for pos, cell := range b.Cells {
		if cell < -1 || cell > 1 {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidBoard, pos, cell)
		}
	}
	return nil
}

// At returns the owner of pos, or 0 when the point is empty.
func (b Board) At(pos int) Player {
	return Player(b.Cells[pos])
}

func (b Board) IsEmpty(pos int) bool {
	return b.Cells[pos] == 0
}

// Stones returns the positions occupied by p in ascending order.
func (b Board) Stones(p Player) []int {
	var stones []int
	for pos, cell := range b.Cells {
		if Player(cell) == p {
			stones = append(stones, pos)
		}
	}
	return stones
}

func (b Board) Count(p Player) int {
	count := 0
	for _, cell := range b.Cells {
		if Player(cell) == p {
			count++
		}
	}
	return count
}

func (b Board) EmptyPositions() []int {
	var empty []int
	for pos, cell := range b.Cells {
		if cell == 0 {
			empty = append(empty, pos)
		}
	}
	return empty
}

// Phase determines which phase p is in. Both players share the placing phase
// but may differ afterwards.
func (b Board) Phase(p Player) Phase {
	if b.StonesPlaced < meta.MAX_STONES {
		return PlacingPhase
	}
	if b.Count(p) <= 3 {
		return FlyingPhase
	}
	return MovingPhase
}

// FormsMill reports whether a stone of p arriving on destination from origin
// (NoPosition for a placement) completes a mill. The origin stone cannot count
// towards the mill it is leaving.
func (b Board) FormsMill(p Player, origin, destination int) bool {
	for _, pair := range millPairs[destination] {
		if pair[0] == origin || pair[1] == origin {
			continue
		}
		if b.At(pair[0]) == p && b.At(pair[1]) == p {
			return true
		}
	}
	return false
}

// InMill reports whether the stone on pos is part of a mill of its owner.
func (b Board) InMill(pos int) bool {
	owner := b.At(pos)
	if owner == 0 {
		return false
	}
	for _, pair := range millPairs[pos] {
		if b.At(pair[0]) == owner && b.At(pair[1]) == owner {
			return true
		}
	}
	return false
}

// Mills lists every mill currently held by p, each as an ascending triad.
func (b Board) Mills(p Player) [][3]int {
	seen := make(map[[3]int]struct{})
	var mills [][3]int
	for _, pos := range b.Stones(p) {
		for _, pair := range millPairs[pos] {
			if b.At(pair[0]) != p || b.At(pair[1]) != p {
				continue
			}
			triad := [3]int{pos, pair[0], pair[1]}
			sort.Ints(triad[:])
			if _, ok := seen[triad]; ok {
				continue
			}
			seen[triad] = struct{}{}
			mills = append(mills, triad)
		}
	}
	sort.Slice(mills, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if mills[i][k] != mills[j][k] {
				return mills[i][k] < mills[j][k]
			}
		}
		return false
	})
	return mills
}

// CaptureTargets returns the opponent stones p may remove after forming a mill:
// stones outside the opponent's mills, or all of them if none are outside.
func (b Board) CaptureTargets(p Player) []int {
	opponentStones := b.Stones(p.Opponent())
	var targets []int
	for _, pos := range opponentStones {
		if !b.InMill(pos) {
			targets = append(targets, pos)
		}
	}
	if len(targets) == 0 {
		return opponentStones
	}
	return targets
}

// candidates returns the (origin, destination) pairs p can play in phase,
// ignoring captures.
func (b Board) candidates(p Player, phase Phase) [][2]int {
	var pairs [][2]int
	switch phase {
	case PlacingPhase:
		for _, destination := range b.EmptyPositions() {
			pairs = append(pairs, [2]int{NoPosition, destination})
		}
	case MovingPhase:
		for _, origin := range b.Stones(p) {
			for _, destination := range Adjacent(origin) {
				if b.IsEmpty(destination) {
					pairs = append(pairs, [2]int{origin, destination})
				}
			}
		}
	case FlyingPhase:
		empty := b.EmptyPositions()
		for _, origin := range b.Stones(p) {
			for _, destination := range empty {
				pairs = append(pairs, [2]int{origin, destination})
			}
		}
	default:
		panic(fmt.Sprintf("unknown phase %d", phase))
	}
	return pairs
}

// LegalMoves returns all legal moves for p. A mill-forming step expands into
// one move per capture target and has no capture-free variant.
func (b Board) LegalMoves(p Player) []Move {
	if !p.IsValid() {
		panic(fmt.Sprintf("invalid player %d", p))
	}
	phase := b.Phase(p)
	var targets []int
	var moves []Move
	for _, pair := range b.candidates(p, phase) {
		origin, destination := pair[0], pair[1]
		if !b.FormsMill(p, origin, destination) {
			moves = append(moves, Move{Origin: origin, Destination: destination, Capture: NoPosition})
			continue
		}
		if targets == nil {
			targets = b.CaptureTargets(p)
		}
		if len(targets) == 0 { // Opponent has no stones left to take
			moves = append(moves, Move{Origin: origin, Destination: destination, Capture: NoPosition})
			continue
		}
		for _, capture := range targets {
			moves = append(moves, Move{Origin: origin, Destination: destination, Capture: capture})
		}
	}
	return moves
}

// HasLegalMoves checks if p can make any move. Every candidate step yields at
// least one legal move, so captures need not be expanded.
func (b Board) HasLegalMoves(p Player) bool {
	return len(b.candidates(p, b.Phase(p))) > 0
}

// IsLegal checks m against the rules for p without enumerating all moves.
func (b Board) IsLegal(p Player, m Move) bool {
	if !p.IsValid() || !IsValid(m.Destination) || !b.IsEmpty(m.Destination) {
		return false
	}
	switch b.Phase(p) {
	case PlacingPhase:
		if m.Origin != NoPosition {
			return false
		}
	case MovingPhase:
		if !IsValid(m.Origin) || b.At(m.Origin) != p || !AreAdjacent(m.Origin, m.Destination) {
			return false
		}
	case FlyingPhase:
		if !IsValid(m.Origin) || b.At(m.Origin) != p {
			return false
		}
	}

	if !b.FormsMill(p, m.Origin, m.Destination) {
		return m.Capture == NoPosition
	}
	targets := b.CaptureTargets(p)
	if len(targets) == 0 {
		return m.Capture == NoPosition
	}
	for _, target := range targets {
		if target == m.Capture {
			return true
		}
	}
	return false
}

// Execute plays m for p in place. The move is checked structurally before the
// board is touched; an inconsistent move panics and leaves b unchanged.
func (b *Board) Execute(p Player, m Move) {
	if !p.IsValid() {
		panic(fmt.Sprintf("invalid player %d", p))
	}
	if !IsValid(m.Destination) || !b.IsEmpty(m.Destination) {
		panic(fmt.Sprintf("cannot play %v: destination is not an empty point", m))
	}
	if m.Origin != NoPosition && (!IsValid(m.Origin) || b.At(m.Origin) != p) {
		panic(fmt.Sprintf("cannot play %v: origin is not a stone of %v", m, p))
	}
	if m.Capture != NoPosition && (!IsValid(m.Capture) || b.At(m.Capture) != p.Opponent()) {
		panic(fmt.Sprintf("cannot play %v: capture is not a stone of %v", m, p.Opponent()))
	}
	placing := b.Phase(p) == PlacingPhase
	if placing != m.IsPlacement() {
		panic(fmt.Sprintf("cannot play %v in the %v phase", m, b.Phase(p)))
	}

	if placing {
		b.StonesPlaced++
	}
	if m.Origin != NoPosition {
		b.Cells[m.Origin] = 0
	}
	if m.Capture != NoPosition {
		b.Cells[m.Capture] = 0
		b.MovesWithoutMill = 0
	} else {
		b.MovesWithoutMill++
	}
	b.Cells[m.Destination] = int8(p)
}

// Play returns a copy of b with m executed for p.
func (b Board) Play(p Player, m Move) Board {
	b.Execute(p, m)
	return b
}

// eliminated reports whether p has lost: no move to make, or fewer than three
// stones once all stones have been placed.
func (b Board) eliminated(p Player) bool {
	if !b.HasLegalMoves(p) {
		return true
	}
	return b.StonesPlaced == meta.MAX_STONES && b.Count(p) < 3
}

// Result evaluates the game for p. The move limit draw takes precedence over
// elimination.
func (b Board) Result(p Player, moveLimit int) Result {
	if b.MovesWithoutMill >= moveLimit {
		return Draw
	}
	if b.eliminated(p) {
		return Loss
	}
	if b.eliminated(p.Opponent()) {
		return Win
	}
	return Ongoing
}

// Canonical returns the board seen from p: p's stones read +1. Counters are
// unchanged. Rotations are not folded together.
func (b Board) Canonical(p Player) Board {
	for pos := range b.Cells {
		b.Cells[pos] *= int8(p)
	}
	return b
}

// Rotate returns the board turned by 90 degrees: every ring shifts by
// RotationStep slots, matching Move.Rotate.
func (b Board) Rotate() Board {
	rotated := b
	for pos, cell := range b.Cells {
		rotated.Cells[rotatePosition(pos)] = cell
	}
	return rotated
}
