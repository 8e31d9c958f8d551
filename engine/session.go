package engine

import (
	"errors"
	"fmt"

	"morris/game"
)

var (
	ErrIllegalAction = errors.New("illegal action")
	ErrGameOver      = errors.New("game is over")
)

// Update records one applied action.
type Update struct {
	Player game.Player
	Action int
	Move   game.Move
	Board  game.Board // after the action
}

// Session is a single game in progress. Unlike game.Game.Apply it rejects
// illegal actions with an error instead of panicking.
type Session struct {
	game    *game.Game
	board   game.Board
	player  game.Player
	result  game.Result // from the player to move
	history []Update
}

func NewSession(g *game.Game) *Session {
	return &Session{
		game:   g,
		board:  g.InitialState(),
		player: game.PlayerOne,
	}
}

// ResumeSession continues a game from b with p to move.
func ResumeSession(g *game.Game, b game.Board, p game.Player) *Session {
	return &Session{
		game:   g,
		board:  b,
		player: p,
		result: g.Result(b, p),
	}
}

func (s *Session) Board() game.Board {
	return s.board
}

// Player returns the player to move.
func (s *Session) Player() game.Player {
	return s.player
}

// Canonical returns the board as the player to move sees it.
func (s *Session) Canonical() game.Board {
	return s.game.Canonicalize(s.board, s.player)
}

// Result returns the game result seen from PlayerOne.
func (s *Session) Result() game.Result {
	if s.player == game.PlayerOne {
		return s.result
	}
	return s.result.Reverse()
}

func (s *Session) IsOver() bool {
	return s.result != game.Ongoing
}

func (s *Session) History() []Update {
	return s.history
}

// Play applies action for the player to move.
func (s *Session) Play(action int) error {
	if s.IsOver() {
		return ErrGameOver
	}
	if action < 0 || action >= s.game.ActionCount() {
		return fmt.Errorf("%w: %d is outside the action space", ErrIllegalAction, action)
	}

	move := s.game.Move(action)
	if !s.board.IsLegal(s.player, move) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalAction, move, s.player)
	}

	mover := s.player
	s.board, s.player = s.game.Apply(s.board, s.player, action)
	s.result = s.game.Result(s.board, s.player)
	s.history = append(s.history, Update{
		Player: mover,
		Action: action,
		Move:   move,
		Board:  s.board,
	})
	return nil
}
