package player

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"morris/game"
)

// Policy estimates a probability for every action of a canonical board. The
// returned vector is aligned to the game's action space.
type Policy interface {
	Predict(b game.Board) []float64
}

// Uniform assigns the same weight to every action. Masking leaves a uniform
// distribution over the legal ones.
type Uniform struct {
	Size int
}

func (u Uniform) Predict(game.Board) []float64 {
	pi := make([]float64, u.Size)
	for i := range pi {
		pi[i] = 1 / float64(u.Size)
	}
	return pi
}

// PolicyPlayer samples actions from a Policy restricted to the legal ones.
type PolicyPlayer struct {
	game        *game.Game
	policy      Policy
	temperature float64 // 0 plays the most likely action
	mu          sync.Mutex
	rng         *rand.Rand
}

func NewPolicyPlayer(g *game.Game, policy Policy, temperature float64, seed uint64) *PolicyPlayer {
	return &PolicyPlayer{
		game:        g,
		policy:      policy,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (p *PolicyPlayer) Play(b game.Board) (int, error) {
	valid := p.game.ValidActions(b, game.PlayerOne)
	pi := mask(p.policy.Predict(b), valid)
	if pi == nil {
		return 0, ErrNoLegalAction
	}
	if p.temperature == 0 {
		return argmax(pi), nil
	}
	pi = adjustTemperature(pi, p.temperature)
	p.mu.Lock()
	sampled := p.rng.Float64()
	p.mu.Unlock()
	return sample(pi, sampled), nil
}

// mask zeroes illegal actions and renormalizes. When the policy puts no mass
// on a legal action the result is uniform over the legal ones. It returns nil
// if nothing is legal.
func mask(pi []float64, valid []uint8) []float64 {
	masked := make([]float64, len(valid))
	sum, legal := 0.0, 0
	for i, v := range valid {
		if v == 0 {
			continue
		}
		legal++
		if i < len(pi) && pi[i] > 0 {
			masked[i] = pi[i]
			sum += pi[i]
		}
	}
	if legal == 0 {
		return nil
	}
	if sum == 0 {
		for i, v := range valid {
			if v == 1 {
				masked[i] = 1 / float64(legal)
			}
		}
		return masked
	}
	for i := range masked {
		masked[i] /= sum
	}
	return masked
}

func adjustTemperature(pi []float64, temperature float64) []float64 {
	// Compute temperature-adjusted action probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(pi))
	for action, prob := range pi {
		if prob == 0 {
			continue
		}
		policy[action] = math.Pow(prob, exponent)
		sum += policy[action]
	}
	if sum == 0 || math.IsInf(sum, 0) { // Exponent under- or overflowed
		policy = make([]float64, len(pi))
		policy[argmax(pi)] = 1
		return policy
	}
	// Normalize
	for action := range policy {
		policy[action] /= sum
	}
	return policy
}

func sample(policy []float64, sampled float64) int {
	cumulative := 0.0
	last := -1
	for action, prob := range policy {
		if prob == 0 {
			continue
		}
		last = action
		cumulative += prob
		if sampled < cumulative {
			return action
		}
	}
	return last // Fallback in case of rounding errors
}

func argmax(policy []float64) int {
	best := -1
	bestProb := -1.0
	for action, prob := range policy {
		if prob > bestProb {
			bestProb = prob
			best = action
		}
	}
	return best
}
