package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"nim/game"
	"nim/player"
	"nim/searcher"
)

var ErrInvalidFirstPlayer = errors.New("first player index must be 0 or 1")

// Record describes one move of a finished game.
type Record struct {
	Turn    int
	Player  int // Index into the engine's players
	Move    game.Move
	State   game.GameState // State after the move
	Metrics searcher.MoveMetrics
}

// Result summarizes a finished game.
type Result struct {
	State      game.GameState
	Verdict    string
	Turns      int
	LastMover  int // -1 when the game started in a terminal state
	Records    []Record
	StartTime  time.Time
	FinishTime time.Time
}

type metricsReporter interface {
	LastMetrics() searcher.MoveMetrics
}

// Engine alternates two players until a pile is empty. Whose turn it is lives
// here, not in the game state.
type Engine struct {
	state   game.GameState
	players [2]player.Player
	first   int
	out     io.Writer
}

func New(state game.GameState, players [2]player.Player, first int, out io.Writer) (*Engine, error) {
	if first != 0 && first != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFirstPlayer, first)
	}
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		state:   state,
		players: players,
		first:   first,
		out:     out,
	}, nil
}

// Verdict is the closing message of a game. It depends on the variant only,
// not on which player emptied a pile.
func Verdict(variant game.Variant) string {
	if variant == game.Misere {
		return "Game over! You win."
	}
	return "Game over! You lose."
}

// Run plays the game to the end, printing progress to the engine's output.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	result := Result{LastMover: -1, StartTime: time.Now()}
	current := e.first

	log.Info().Msgf("%s is starting from %s", e.players[current].Name(), e.state)

	for !e.state.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("game interrupted: %w", err)
		}

		p := e.players[current]
		move, err := p.NextMove(ctx, e.state)
		if err != nil {
			return result, fmt.Errorf("%s failed to move: %w", p.Name(), err)
		}
		if !p.Interactive() {
			fmt.Fprintf(e.out, "%s moves: %s\n", p.Name(), move)
		}

		e.state = e.state.Play(move)
		result.Turns++
		record := Record{Turn: result.Turns, Player: current, Move: move, State: e.state}
		if reporter, ok := p.(metricsReporter); ok {
			record.Metrics = reporter.LastMetrics()
		}
		result.Records = append(result.Records, record)
		result.LastMover = current

		log.Debug().
			Int("turn", result.Turns).
			Str("player", p.Name()).
			Stringer("move", move).
			Int64("nodes", record.Metrics.Nodes).
			Dur("search", record.Metrics.Duration).
			Msg("move played")

		fmt.Fprintln(e.out, e.state)
		current = 1 - current
	}

	result.State = e.state
	result.Verdict = Verdict(e.state.Variant)
	result.FinishTime = time.Now()
	fmt.Fprintln(e.out, result.Verdict)
	fmt.Fprintf(e.out, "Final Score: %d\n", e.state.Score())

	log.Info().Msgf("game over after %d turns with score %d", result.Turns, e.state.Score())
	return result, nil
}
