package enumerate

import (
	"testing"

	"github.com/lox/holdem-odds/internal/randutil"
	"github.com/lox/holdem-odds/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomHandsRespectConstraints(t *testing.T) {
	t.Parallel()
	shared := poker.MustParseHand("As Kd")
	dead := poker.MustParseHand("Qh Jh 2c")
	s, err := RandomHands(shared, dead, 7, 2000, WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, 2000, s.Len())

	count := 0
	for h := range s.All() {
		assert.Equal(t, 7, h.CountCards())
		assert.Equal(t, shared, h&shared)
		assert.False(t, h.Overlaps(dead))
		count++
	}
	assert.Equal(t, 2000, count)
}

func TestRandomHandsUniqueLegalHand(t *testing.T) {
	t.Parallel()
	want := poker.MustParseHand("2c 7d Th")
	dead := poker.DeckMask &^ want
	s, err := RandomHands(0, dead, 3, 50, WithSeed(1))
	require.NoError(t, err)
	for h := range s.All() {
		assert.Equal(t, want, h)
	}
}

func TestRandomHandsSeedReproducible(t *testing.T) {
	t.Parallel()
	s, err := RandomHands(0, 0, 5, 100, WithSeed(1234))
	require.NoError(t, err)

	var first, second []poker.Hand
	for h := range s.All() {
		first = append(first, h)
	}
	for h := range s.All() {
		second = append(second, h)
	}
	assert.Equal(t, first, second)
}

func TestRandomIteratorExhaustion(t *testing.T) {
	t.Parallel()
	s, err := RandomHands(0, 0, 2, 3, WithRand(randutil.New(3)))
	require.NoError(t, err)
	it := s.Iterator()
	for range 3 {
		require.True(t, it.HasNext())
		_, err := it.Next()
		require.NoError(t, err)
	}
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestRandomHandsErrors(t *testing.T) {
	t.Parallel()
	_, err := RandomHands(0, 0, 8, 1)
	assert.ErrorIs(t, err, poker.ErrOutOfRange)

	_, err = RandomHands(0, 0, 2, -1)
	assert.ErrorIs(t, err, poker.ErrOutOfRange)

	dead := poker.DeckMask &^ poker.MustParseHand("As")
	_, err = RandomHands(0, dead, 2, 1)
	assert.ErrorIs(t, err, poker.ErrOutOfRange)
}

func TestRandomHand(t *testing.T) {
	t.Parallel()
	board := poker.MustParseHand("As Kd Qh")
	h, err := RandomHand(randutil.New(5), board, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, h.CountCards())
	assert.Equal(t, board, h&board)

	h, err = RandomHand(nil, 0, board, 2)
	require.NoError(t, err)
	assert.False(t, h.Overlaps(board))
}
