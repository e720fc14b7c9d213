package player

import (
	"context"

	"nim/game"
	"nim/searcher"
)

// Computer asks a searcher for its moves.
type Computer struct {
	name     string
	searcher searcher.Searcher
	last     searcher.MoveMetrics
}

func NewComputer(name string, s searcher.Searcher) *Computer {
	return &Computer{name: name, searcher: s}
}

func (c *Computer) Name() string      { return c.name }
func (c *Computer) Interactive() bool { return false }

func (c *Computer) NextMove(ctx context.Context, state game.GameState) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	move, metrics, ok := c.searcher.FindNextMove(state)
	c.last = metrics
	if !ok {
		return 0, ErrNoLegalMoves
	}
	return move, nil
}

// LastMetrics returns the metrics of the latest search.
func (c *Computer) LastMetrics() searcher.MoveMetrics {
	return c.last
}
