package player

import (
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"morris/game"
)

var ErrNoLegalAction = errors.New("no legal action")

// Player chooses an action for a canonical board, one where the stones of the
// player to move read +1.
type Player interface {
	Play(b game.Board) (int, error)
}

// Func adapts a plain function to the Player interface.
type Func func(b game.Board) (int, error)

func (f Func) Play(b game.Board) (int, error) {
	return f(b)
}

// Random picks uniformly among the legal actions. A single Random may serve
// several games concurrently.
type Random struct {
	game *game.Game
	mu   sync.Mutex
	rng  *rand.Rand
}

func NewRandom(g *game.Game, seed uint64) *Random {
	return &Random{
		game: g,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Play(b game.Board) (int, error) {
	actions := r.game.LegalActions(b, game.PlayerOne)
	if len(actions) == 0 {
		return 0, ErrNoLegalAction
	}
	r.mu.Lock()
	i := r.rng.Intn(len(actions))
	r.mu.Unlock()
	return actions[i], nil
}

// New builds a player by kind: "random", "uniform", "human" or the http(s) URL
// of a remote agent. Human players read from in and write to out.
func New(kind string, g *game.Game, seed uint64, temperature float64, in io.Reader, out io.Writer) (Player, error) {
	switch kind {
	case "random":
		return NewRandom(g, seed), nil
	case "uniform":
		return NewPolicyPlayer(g, Uniform{Size: g.ActionCount()}, temperature, seed), nil
	case "human":
		return NewHuman(g, in, out), nil
	default:
		if IsRemote(kind) {
			return NewRemote(kind, nil), nil
		}
		return nil, errors.Errorf("unknown player kind %q", kind)
	}
}

// IsRemote reports whether kind names a remote agent.
func IsRemote(kind string) bool {
	return strings.HasPrefix(kind, "http://") || strings.HasPrefix(kind, "https://")
}
