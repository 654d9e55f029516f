package analysis

import (
	"testing"

	"github.com/lox/holdem-odds/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutsFlushDraw(t *testing.T) {
	t.Parallel()
	player := poker.MustParseHand("Ah Kh")
	board := poker.MustParseHand("7h 2h 9c")

	// Nine hearts, plus the fourteen non-heart cards that pair a rank.
	n, err := Outs(player, board)
	require.NoError(t, err)
	assert.Equal(t, 23, n)

	mask, err := OutsMask(player, board)
	require.NoError(t, err)
	assert.True(t, mask.HasCard(poker.MustParseCard("3h")))
	assert.True(t, mask.HasCard(poker.MustParseCard("As")))
	assert.False(t, mask.HasCard(poker.MustParseCard("Tc")), "a lower kicker is no improvement")
	assert.False(t, mask.Overlaps(player|board))
}

func TestOutsAgainstOpponent(t *testing.T) {
	t.Parallel()
	player := poker.MustParseHand("Ah Kh")
	board := poker.MustParseHand("7h 2h 9c")
	opponent := poker.MustParseHand("9s 9d")

	mask, err := OutsMask(player, board, opponent)
	require.NoError(t, err)
	// Every heart but the 9h, which gives the opponent quads.
	assert.Equal(t, 8, mask.CountCards())
	assert.False(t, mask.HasCard(poker.MustParseCard("9h")))
	assert.False(t, mask.HasCard(poker.MustParseCard("As")), "a pair of aces still trails the set")
	assert.False(t, mask.Overlaps(opponent))
}

func TestOutsOnTurn(t *testing.T) {
	t.Parallel()
	// Open-ended straight draw: any four or nine completes it.
	player := poker.MustParseHand("6c 5d")
	board := poker.MustParseHand("7h 8s Kc 2d")
	mask, err := OutsMask(player, board, poker.MustParseHand("Ks Qs"))
	require.NoError(t, err)
	assert.Equal(t, 8, mask.CountCards())
}

func TestOutsValidation(t *testing.T) {
	t.Parallel()
	player := poker.MustParseHand("Ah Kh")
	for _, board := range []string{"", "7h 2h", "7h 2h 9c 3d 4s"} {
		_, err := Outs(player, poker.MustParseHand(board))
		assert.ErrorIs(t, err, poker.ErrOutOfRange, "board %q", board)
	}

	_, err := Outs(poker.MustParseHand("Ah"), poker.MustParseHand("7h 2h 9c"))
	assert.ErrorIs(t, err, poker.ErrOutOfRange)

	_, err = Outs(player, poker.MustParseHand("7h 2h 9c"), poker.MustParseHand("9c 9d"))
	assert.ErrorIs(t, err, ErrDuplicateCards)

	_, err = Outs(player, poker.MustParseHand("7h 2h 9c"), poker.MustParseHand("9d"))
	assert.ErrorIs(t, err, poker.ErrOutOfRange)
}
