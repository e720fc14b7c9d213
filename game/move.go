package game

import "fmt"

// Pile identifies one of the two marble piles.
type Pile int

const (
	Red Pile = iota
	Blue
)

func (p Pile) String() string {
	if p == Red {
		return "red"
	}
	return "blue"
}

// Move is one of the four moves of the game. The declaration order is the
// enumeration order used by LegalMoves.
type Move uint8

const (
	RemoveOneRed Move = iota
	RemoveOneBlue
	RemoveTwoRed
	RemoveTwoBlue
)

// AllMoves lists every move in enumeration order.
var AllMoves = [...]Move{RemoveOneRed, RemoveOneBlue, RemoveTwoRed, RemoveTwoBlue}

var moveNames = [...]string{"1r", "1b", "2r", "2b"}

// Pile returns the pile the move takes marbles from.
func (m Move) Pile() Pile {
	if m == RemoveOneRed || m == RemoveTwoRed {
		return Red
	}
	return Blue
}

// Count returns how many marbles the move removes.
func (m Move) Count() int {
	if m == RemoveTwoRed || m == RemoveTwoBlue {
		return 2
	}
	return 1
}

func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

// ParseMove converts the textual form ("1r", "1b", "2r", "2b") into a Move.
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if s == name {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}
