package game

import (
	"fmt"
	"strings"
)

// Variant selects how the end of a game is reported. The numeric score is the
// same in both variants.
type Variant int

const (
	Standard Variant = iota
	Misere
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Misere:
		return "misere"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant accepts "standard" or "misere", ignoring case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "misere":
		return Misere, nil
	default:
		return Standard, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}
