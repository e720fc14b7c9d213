package searcher

import (
	"sync"

	"github.com/rs/zerolog/log"

	"nim/game"
)

type Option func(m *Minimax)

// Minimax is a depth-limited alpha-beta searcher. It keeps no state between
// calls and is safe for concurrent use.
type Minimax struct {
	depth      int
	goroutines int
	metrics    bool
}

// WithDepth overrides the lookahead carried by the game state.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines evaluates root moves in parallel.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{goroutines: 1} // Default values
	for _, option := range options {
		option(m)
	}
	return m
}

// Search returns the minimax value of state searched depth plies ahead,
// pruning with the window [alpha, beta]. Pruning never changes the value.
func Search(state game.GameState, depth, alpha, beta int, maximizing bool) int {
	return search(state, depth, alpha, beta, maximizing, noMetrics)
}

// BestMove returns the move with the greatest evaluation for the side to play,
// searching state.Depth plies below each candidate. Equal evaluations keep the
// earliest move. ok is false when no move is legal.
func BestMove(state game.GameState) (move game.Move, ok bool) {
	move, _, ok = NewMinimax().FindNextMove(state)
	return move, ok
}

func (m *Minimax) FindNextMove(state game.GameState) (game.Move, MoveMetrics, bool) {
	collector := noMetrics
	if m.metrics {
		collector = NewMetricsCollector()
	}

	depth := state.Depth
	if m.depth > 0 {
		depth = m.depth
	}

	collector.Start(depth)
	moves := state.LegalMoves()
	evals := m.evaluate(state, moves, depth, collector)

	// Strict comparison keeps the first of equal evaluations
	bestIndex := -1
	bestEval := NegInf
	for i, eval := range evals {
		if bestIndex < 0 || eval > bestEval {
			bestEval = eval
			bestIndex = i
		}
	}
	metrics := collector.Complete()

	if bestIndex < 0 {
		return 0, metrics, false
	}
	log.Debug().
		Stringer("move", moves[bestIndex]).
		Int("eval", bestEval).
		Int("depth", depth).
		Int64("nodes", metrics.Nodes).
		Msg("best move found")
	return moves[bestIndex], metrics, true
}

// evaluate scores every root move from the opponent's (minimizing) side. The
// result is indexed like moves regardless of evaluation order.
func (m *Minimax) evaluate(state game.GameState, moves []game.Move, depth int, collector MetricsCollector) []int {
	evals := make([]int, len(moves))
	if m.goroutines <= 1 || len(moves) <= 1 {
		for i, move := range moves {
			evals[i] = search(state.Play(move), depth, NegInf, PosInf, false, collector)
		}
		return evals
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for n := min(m.goroutines, len(moves)); n > 0; n-- {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				evals[i] = search(state.Play(moves[i]), depth, NegInf, PosInf, false, collector)
			}
		}()
	}

	wg.Wait()
	return evals
}

func search(state game.GameState, depth, alpha, beta int, maximizing bool, collector MetricsCollector) int {
	collector.AddNode()

	// A pile can be empty while the other still allows moves, so the
	// terminal check has to come before move enumeration.
	if depth == 0 || state.IsTerminal() {
		return state.Score()
	}

	if maximizing {
		best := NegInf
		for _, move := range state.LegalMoves() {
			eval := search(state.Play(move), depth-1, alpha, beta, false, collector)
			best = max(best, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				collector.AddCutoff()
				break
			}
		}
		return best
	}

	best := PosInf
	for _, move := range state.LegalMoves() {
		eval := search(state.Play(move), depth-1, alpha, beta, true, collector)
		best = min(best, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			collector.AddCutoff()
			break
		}
	}
	return best
}
