package poker

import (
	"testing"

	"github.com/lox/holdem-odds/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckDealsEveryCardOnce(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(1), 0)
	require.Equal(t, NumberOfCards, d.CardsRemaining())

	all, ok := d.Deal(NumberOfCards)
	require.True(t, ok)
	assert.Equal(t, DeckMask, all)
	assert.Equal(t, 0, d.CardsRemaining())

	_, ok = d.DealOne()
	assert.False(t, ok)
	_, ok = d.Deal(1)
	assert.False(t, ok)
}

func TestDeckExcludesDeadCards(t *testing.T) {
	t.Parallel()
	dead := MustParseHand("As Kd 2c")
	d := NewDeck(randutil.New(2), dead)
	assert.Equal(t, NumberOfCards-3, d.CardsRemaining())

	rest, ok := d.Deal(d.CardsRemaining())
	require.True(t, ok)
	assert.False(t, rest.Overlaps(dead))
	assert.Equal(t, DeckMask&^dead, rest)
}

func TestDeckShuffleIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(99), 0)
	b := NewDeck(randutil.New(99), 0)
	for range 10 {
		ca, _ := a.DealOne()
		cb, _ := b.DealOne()
		assert.Equal(t, ca, cb)
	}

	a.Shuffle()
	assert.Equal(t, NumberOfCards, a.CardsRemaining())
}
