package player

import (
	"context"
	"errors"

	"nim/game"
)

var (
	ErrInputClosed  = errors.New("input closed before a move was entered")
	ErrNoLegalMoves = errors.New("no legal moves")
)

// Player supplies moves to the engine.
type Player interface {
	Name() string
	// Interactive players see the board themselves; the engine does not
	// announce their moves.
	Interactive() bool
	NextMove(ctx context.Context, state game.GameState) (game.Move, error)
}
