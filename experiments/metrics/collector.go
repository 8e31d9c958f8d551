package metrics

import (
	"sync/atomic"
	"time"

	"morris/game"
)

// GameMetric describes one finished game. Result is seen from the first
// player of the arena, whichever side it played on.
type GameMetric struct {
	ID             int
	StartingPlayer int // 1 if the first arena player moved first, 2 otherwise
	Result         game.Result
	Moves          int
	Captures       int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// Summary aggregates every game a Collector has seen.
type Summary struct {
	Games    int
	Moves    int
	Captures int
	OneWon   int
	TwoWon   int
	Draws    int
	Duration time.Duration
}

type Collector interface {
	AddMove(capture bool)
	AddGame(result game.Result)
	Complete() Summary
}

type collector struct {
	startTime time.Time
	games     atomic.Int32
	moves     atomic.Int32
	captures  atomic.Int32
	oneWon    atomic.Int32
	twoWon    atomic.Int32
	draws     atomic.Int32
}

func NewCollector() Collector {
	return &collector{startTime: time.Now()}
}

func (m *collector) AddMove(capture bool) {
	m.moves.Add(1)
	if capture {
		m.captures.Add(1)
	}
}

func (m *collector) AddGame(result game.Result) {
	m.games.Add(1)
	switch result {
	case game.Win:
		m.oneWon.Add(1)
	case game.Loss:
		m.twoWon.Add(1)
	default:
		m.draws.Add(1)
	}
}

func (m *collector) Complete() Summary {
	return Summary{
		Games:    int(m.games.Load()),
		Moves:    int(m.moves.Load()),
		Captures: int(m.captures.Load()),
		OneWon:   int(m.oneWon.Load()),
		TwoWon:   int(m.twoWon.Load()),
		Draws:    int(m.draws.Load()),
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) AddMove(capture bool)       {}
func (m *dummyCollector) AddGame(result game.Result) {}
func (m *dummyCollector) Complete() Summary          { return Summary{} }
