// meta/meta.go
package meta

// MAX_STONES is the number of stones both players place during the opening.
const MAX_STONES = 18

// MOVES_WITHOUT_MILL is the default number of moves without a capture after
// which a game is drawn.
const MOVES_WITHOUT_MILL = 50

// MAX_TURNS caps the length of a game played by the local engine.
const MAX_TURNS = 300

// DRAW_VALUE is the outcome reported for a drawn game. It is small but non-zero
// so that callers can tell a draw apart from an ongoing game.
const DRAW_VALUE = 1e-4
