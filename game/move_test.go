package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	t.Run("pile and count", func(t *testing.T) {
		assert.Equal(t, Red, RemoveOneRed.Pile())
		assert.Equal(t, Blue, RemoveOneBlue.Pile())
		assert.Equal(t, Red, RemoveTwoRed.Pile())
		assert.Equal(t, Blue, RemoveTwoBlue.Pile())

		assert.Equal(t, 1, RemoveOneRed.Count())
		assert.Equal(t, 1, RemoveOneBlue.Count())
		assert.Equal(t, 2, RemoveTwoRed.Count())
		assert.Equal(t, 2, RemoveTwoBlue.Count())
	})

	t.Run("round trips through its textual form", func(t *testing.T) {
		for _, move := range AllMoves {
			parsed, err := ParseMove(move.String())
			require.NoError(t, err)
			require.Equal(t, move, parsed)
		}
	})

	t.Run("rejects unknown text", func(t *testing.T) {
		for _, s := range []string{"", "3r", "1R", "r1", "2 b"} {
			_, err := ParseMove(s)
			require.ErrorIs(t, err, ErrUnknownMove, "input %q", s)
		}
	})

	t.Run("formats out of range values", func(t *testing.T) {
		assert.Equal(t, "Move(9)", Move(9).String())
	})
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("standard")
	require.NoError(t, err)
	assert.Equal(t, Standard, v)

	v, err = ParseVariant(" Misere ")
	require.NoError(t, err)
	assert.Equal(t, Misere, v)

	_, err = ParseVariant("normal")
	require.ErrorIs(t, err, ErrUnknownVariant)

	assert.Equal(t, "misere", Misere.String())
	assert.Equal(t, "red", Red.String())
	assert.Equal(t, "blue", Blue.String())
}
