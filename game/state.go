package game

import "fmt"

// GameState is an immutable snapshot of a game. Play returns a new value and
// never modifies the receiver, so states can be shared freely between search
// branches.
type GameState struct {
	Red     int     // Red marbles left
	Blue    int     // Blue marbles left
	Variant Variant // Reporting mode at the end of the game
	Depth   int     // Lookahead used by the computer player
}

// NewGame returns the starting state. It panics on negative counts or depth;
// user input is validated before it gets here.
func NewGame(red, blue int, variant Variant, depth int) GameState {
	if red < 0 || blue < 0 {
		panic(fmt.Sprintf("negative marble count: red=%d blue=%d", red, blue))
	}
	if depth < 0 {
		panic(fmt.Sprintf("negative search depth: %d", depth))
	}
	return GameState{Red: red, Blue: blue, Variant: variant, Depth: depth}
}

// IsTerminal reports whether either pile is empty. The other pile may still
// hold marbles.
func (gs GameState) IsTerminal() bool {
	return gs.Red == 0 || gs.Blue == 0
}

// Score is defined for every state, not only terminal ones.
func (gs GameState) Score() int {
	return gs.Red*2 + gs.Blue*3
}

// LegalMoves returns the playable moves in enumeration order.
func (gs GameState) LegalMoves() []Move {
	moves := make([]Move, 0, len(AllMoves))
	if gs.Red > 0 {
		moves = append(moves, RemoveOneRed)
	}
	if gs.Blue > 0 {
		moves = append(moves, RemoveOneBlue)
	}
	if gs.Red > 1 {
		moves = append(moves, RemoveTwoRed)
	}
	if gs.Blue > 1 {
		moves = append(moves, RemoveTwoBlue)
	}
	return moves
}

// Play applies move and returns the resulting state. Legality is not checked:
// a pile never drops below zero, so taking two from a pile of one empties it.
func (gs GameState) Play(move Move) GameState {
	next := gs
	switch move.Pile() {
	case Red:
		next.Red = max(0, gs.Red-move.Count())
	case Blue:
		next.Blue = max(0, gs.Blue-move.Count())
	}
	return next
}

func (gs GameState) String() string {
	return fmt.Sprintf("Red marbles: %d, Blue marbles: %d", gs.Red, gs.Blue)
}
