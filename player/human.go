package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"morris/game"
)

// Human reads moves as "origin destination capture" lines, "none" marking an
// absent point, e.g. "none 4 none" to place on 4.
type Human struct {
	game    *game.Game
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(g *game.Game, in io.Reader, out io.Writer) *Human {
	return &Human{
		game:    g,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Play shows the board and prompts until a legal move is entered.
func (h *Human) Play(b game.Board) (int, error) {
	fmt.Fprint(h.out, h.game.Render(b))
	fmt.Fprintf(h.out, "phase: %v\n", b.Phase(game.PlayerOne))
	for {
		fmt.Fprint(h.out, "move (origin destination capture): ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return 0, errors.Wrap(err, "reading move")
			}
			return 0, errors.Wrap(io.ErrUnexpectedEOF, "reading move")
		}
		move, err := ParseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintf(h.out, "invalid input: %v\n", err)
			continue
		}
		if !b.IsLegal(game.PlayerOne, move) {
			fmt.Fprintf(h.out, "illegal move: %v\n", move)
			continue
		}
		action, ok := h.game.Index(move)
		if !ok {
			fmt.Fprintf(h.out, "unknown move: %v\n", move)
			continue
		}
		return action, nil
	}
}

// ParseMove reads the three points of a move; "none" stands for NoPosition.
func ParseMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return game.Move{}, errors.Errorf("expected 3 fields, got %d", len(fields))
	}
	var points [3]int
	for i, field := range fields {
		point, err := parsePoint(field)
		if err != nil {
			return game.Move{}, errors.Wrapf(err, "field %d", i+1)
		}
		points[i] = point
	}
	return game.Move{Origin: points[0], Destination: points[1], Capture: points[2]}, nil
}

func parsePoint(field string) (int, error) {
	if strings.EqualFold(field, "none") {
		return game.NoPosition, nil
	}
	point, err := strconv.Atoi(field)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", field)
	}
	if !game.IsValid(point) {
		return 0, errors.Errorf("point %d out of range", point)
	}
	return point, nil
}
