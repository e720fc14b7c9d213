package searcher

import (
	"math"

	"nim/game"
)

// Bounds of the alpha-beta window.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Searcher picks a move for the side to play.
type Searcher interface {
	FindNextMove(state game.GameState) (move game.Move, metrics MoveMetrics, ok bool)
}
