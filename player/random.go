package player

import (
	"context"

	"golang.org/x/exp/rand"

	"nim/game"
)

// Random plays a uniformly chosen legal move. It is the baseline opponent in
// experiments.
type Random struct {
	name string
	rng  *rand.Rand
}

func NewRandom(name string, seed uint64) *Random {
	return &Random{name: name, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string      { return r.name }
func (r *Random) Interactive() bool { return false }

func (r *Random) NextMove(ctx context.Context, state game.GameState) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}
