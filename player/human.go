package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"nim/game"
)

// Human reads moves from a line-oriented input and re-prompts until a legal
// move is entered.
type Human struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Name() string      { return h.name }
func (h *Human) Interactive() bool { return true }

func (h *Human) NextMove(ctx context.Context, state game.GameState) (game.Move, error) {
	legal := state.LegalMoves()
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprintf(h.out, "Your move (available moves: %v): ", legal)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, ErrInputClosed
		}

		move, err := game.ParseMove(strings.TrimSpace(h.scanner.Text()))
		if err == nil && slices.Contains(legal, move) {
			return move, nil
		}
		fmt.Fprintln(h.out, "Invalid move. Try again.")
	}
}
