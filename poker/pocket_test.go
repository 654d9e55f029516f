package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPocketClassCoversAllTwoCardHands(t *testing.T) {
	t.Parallel()
	counts := make(map[PocketClass]int)
	for i := range NumberOfTwoCardHands {
		c := PocketClassOf(TwoCardHand(i))
		require.True(t, c.Valid(), "hand %s", TwoCardHand(i))
		counts[c]++
	}
	assert.Len(t, counts, NumberOfPocketClasses)

	for c, n := range counts {
		switch {
		case c.IsPair():
			assert.Equal(t, 6, n, "%s", c)
		case c.IsSuited():
			assert.Equal(t, 4, n, "%s", c)
		default:
			assert.Equal(t, 12, n, "%s", c)
		}
		assert.Equal(t, n, c.Combos())
	}
}

func TestPocketPairsUseReservedClasses(t *testing.T) {
	t.Parallel()
	for rank := range uint8(NumberOfRanks) {
		var want PocketClass = PocketNone
		for s1 := range uint8(NumberOfSuits) {
			for s2 := s1 + 1; s2 < NumberOfSuits; s2++ {
				c := PocketClassOf(NewHand(NewCard(rank, s1), NewCard(rank, s2)))
				assert.Less(t, c, PocketClass(NumberOfRanks))
				if want == PocketNone {
					want = c
				}
				assert.Equal(t, want, c)
			}
		}
		assert.Equal(t, PocketClass(Ace-rank), want, "pairs run AA down to 22")
	}
}

func TestPocketClassOrderAndNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "AA", PocketClass(0).String())
	assert.Equal(t, "22", PocketClass(12).String())
	assert.Equal(t, "AKs", PocketClass(13).String())
	assert.Equal(t, "AKo", PocketClass(14).String())
	assert.Equal(t, "AQs", PocketClass(15).String())
	assert.Equal(t, "32o", PocketClass(NumberOfPocketClasses-1).String())
	assert.Equal(t, "None", PocketNone.String())

	assert.Equal(t, PocketClass(13), PocketClassOf(MustParseHand("As Ks")))
	assert.Equal(t, PocketClass(14), PocketClassOf(MustParseHand("Ks Ad")))
}

func TestPocketClassOfRejectsOtherSizes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, PocketNone, PocketClassOf(0))
	assert.Equal(t, PocketNone, PocketClassOf(MustParseHand("As")))
	assert.Equal(t, PocketNone, PocketClassOf(MustParseHand("As Ks Qs")))
	assert.Nil(t, PocketNone.Masks())
	assert.False(t, PocketNone.IsPair())
}

func TestPocketClassMasks(t *testing.T) {
	t.Parallel()
	for c := range PocketClass(NumberOfPocketClasses) {
		for _, h := range c.Masks() {
			assert.Equal(t, 2, h.CountCards())
			assert.Equal(t, c, PocketClassOf(h))
		}
	}
}

func TestParsePocketClass(t *testing.T) {
	t.Parallel()
	for c := range PocketClass(NumberOfPocketClasses) {
		got, ok := ParsePocketClass(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}

	got, ok := ParsePocketClass("aks")
	assert.True(t, ok)
	assert.Equal(t, "AKs", got.String())

	_, ok = ParsePocketClass("AK")
	assert.False(t, ok)
	_, ok = ParsePocketClass("AAs")
	assert.False(t, ok)
}
