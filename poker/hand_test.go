package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandOperations(t *testing.T) {
	t.Parallel()
	var h Hand
	h.AddCard(MustParseCard("As"))
	h.AddCard(MustParseCard("Kd"))
	h.AddCard(MustParseCard("As"))

	assert.Equal(t, 2, h.CountCards())
	assert.True(t, h.HasCard(MustParseCard("Kd")))
	assert.False(t, h.HasCard(MustParseCard("Kh")))

	h.RemoveCard(MustParseCard("Kd"))
	assert.Equal(t, 1, h.CountCards())
	assert.Equal(t, "As", h.String())
}

func TestParseHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"spaced", "As Kd", []string{"As", "Kd"}, false},
		{"concatenated", "AsKd", []string{"As", "Kd"}, false},
		{"ten prefix", "10h 9h", []string{"Th", "9h"}, false},
		{"mixed", "AhKh Qh", []string{"Ah", "Kh", "Qh"}, false},
		{"empty", "", nil, false},
		{"duplicate", "As As", nil, true},
		{"dangling rank", "AsK", nil, true},
		{"bad card", "As Zz", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, err := ParseHand(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want := Hand(0)
			for _, s := range tc.want {
				want.AddCard(MustParseCard(s))
			}
			assert.Equal(t, want, h)
		})
	}
}

func TestHandStringOrder(t *testing.T) {
	t.Parallel()
	h := MustParseHand("2c As Kd Th")
	// Highest deck index first: spades, hearts, diamonds, clubs.
	assert.Equal(t, "As Th Kd 2c", h.String())

	cards := h.Cards()
	require.Len(t, cards, 4)
	for i := 1; i < len(cards); i++ {
		assert.Greater(t, cards[i-1], cards[i])
	}
}

func TestSuitAndRankMasks(t *testing.T) {
	t.Parallel()
	h := MustParseHand("Ah Kh 2c 2s")
	assert.Equal(t, uint16(1<<Ace|1<<King), h.GetSuitMask(Hearts))
	assert.Equal(t, uint16(1<<Two), h.GetSuitMask(Clubs))
	assert.Equal(t, uint16(0), h.GetSuitMask(Diamonds))
	assert.Equal(t, uint16(1<<Ace|1<<King|1<<Two), h.RankMask())
}

func TestOverlaps(t *testing.T) {
	t.Parallel()
	a := MustParseHand("As Kd")
	assert.True(t, a.Overlaps(MustParseHand("Kd Qc")))
	assert.False(t, a.Overlaps(MustParseHand("Ks Qc")))
}

func TestTwoCardHelpers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand      string
		suited    bool
		connected bool
		gap       int
	}{
		{"As Ks", true, true, 0},
		{"Ah Kd", false, true, 0},
		{"As 2s", true, true, 0},
		{"As 3d", false, false, 1},
		{"As 4d", false, false, 2},
		{"As 5d", false, false, 3},
		{"As 6d", false, false, 7},
		{"9h 7h", true, false, 1},
		{"Jc 2d", false, false, 8},
		{"7c 7d", false, false, -1},
	}

	for _, tc := range tests {
		t.Run(tc.hand, func(t *testing.T) {
			t.Parallel()
			h := MustParseHand(tc.hand)
			assert.Equal(t, tc.suited, IsSuited(h), "suited")
			assert.Equal(t, tc.connected, IsConnected(h), "connected")
			assert.Equal(t, tc.gap, GapCount(h), "gap")
		})
	}

	assert.Equal(t, -1, GapCount(MustParseHand("As Ks Qs")))
}

func TestTwoCardTable(t *testing.T) {
	t.Parallel()
	seen := make(map[Hand]bool, NumberOfTwoCardHands)
	prev := DeckMask + 1
	for i := range NumberOfTwoCardHands {
		h := TwoCardHand(i)
		assert.Equal(t, 2, h.CountCards())
		assert.Less(t, h, prev, "two card table must be strictly descending")
		assert.False(t, seen[h])
		seen[h] = true
		prev = h
	}
	assert.Len(t, seen, NumberOfTwoCardHands)
	assert.Equal(t, MustParseHand("As Ks"), TwoCardHand(0))
	assert.Equal(t, MustParseHand("3c 2c"), TwoCardHand(NumberOfTwoCardHands-1))
	assert.Equal(t, Hand(0), TwoCardHand(NumberOfTwoCardHands))
}
