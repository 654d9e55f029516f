package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades != 51 {
		t.Errorf("Expected As at index 51, got %d", aceSpades)
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs != 0 || twoClubs.String() != "2c" {
		t.Errorf("Expected 2c at index 0, got %s at %d", twoClubs, twoClubs)
	}
}

func TestCardIndexLayout(t *testing.T) {
	t.Parallel()
	for i := range NumberOfCards {
		c := Card(i)
		assert.Equal(t, uint8(i%13), c.Rank())
		assert.Equal(t, uint8(i/13), c.Suit())
		assert.Equal(t, Hand(1)<<i, c.Mask())
		assert.Equal(t, c.Mask(), CardMask(i))
	}
}

func TestJokerAndInvalidCards(t *testing.T) {
	t.Parallel()
	assert.False(t, Joker.Valid())
	assert.Equal(t, Hand(0), Joker.Mask())
	assert.Equal(t, "Xx", Joker.String())
	assert.Equal(t, "??", Card(60).String())
	assert.Equal(t, Hand(0), CardMask(-1))
	assert.Equal(t, Hand(0), CardMask(52))
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{"ace of spades", "As", NewCard(Ace, Spades), false},
		{"two of hearts", "2h", NewCard(Two, Hearts), false},
		{"king of diamonds", "Kd", NewCard(King, Diamonds), false},
		{"ten with T", "Tc", NewCard(Ten, Clubs), false},
		{"ten with 10", "10c", NewCard(Ten, Clubs), false},
		{"lower case", "qh", NewCard(Queen, Hearts), false},
		{"upper case suit", "9S", NewCard(Nine, Spades), false},
		{"invalid rank", "Xs", 0, true},
		{"invalid suit", "Ax", 0, true},
		{"empty string", "", 0, true},
		{"too short", "A", 0, true},
		{"too long", "Asd", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	t.Parallel()
	for i := range NumberOfCards {
		c := Card(i)
		parsed, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestRankNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A", RankString(Ace))
	assert.Equal(t, "T", RankString(Ten))
	assert.Equal(t, "?", RankString(13))
	assert.Equal(t, "Five", RankName(Five))
	assert.Equal(t, "Unknown", RankName(20))
}
