package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Hand is a set of cards stored as a bitmask: bit i set means card i is
// present. Only bits 0-51 are meaningful.
type Hand uint64

// DeckMask has every card of the deck set.
const DeckMask Hand = 1<<NumberOfCards - 1

// NewHand creates a hand from the given cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= c.Mask()
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= c.Mask()
}

// RemoveCard removes a card from the hand.
func (h *Hand) RemoveCard(c Card) {
	*h &^= c.Mask()
}

// HasCard reports whether the card is in the hand.
func (h Hand) HasCard(c Card) bool {
	return h&c.Mask() != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h & DeckMask))
}

// Overlaps reports whether the two hands share any card.
func (h Hand) Overlaps(other Hand) bool {
	return h&other != 0
}

// GetSuitMask returns the 13-bit rank pattern of one suit.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16(uint64(h)>>(NumberOfRanks*uint(suit))) & 0x1FFF
}

// RankMask returns the 13-bit pattern of ranks present in any suit.
func (h Hand) RankMask() uint16 {
	return h.GetSuitMask(Clubs) | h.GetSuitMask(Diamonds) |
		h.GetSuitMask(Hearts) | h.GetSuitMask(Spades)
}

// Cards returns the cards in the hand, highest deck index first.
func (h Hand) Cards() []Card {
	h &= DeckMask
	cards := make([]Card, 0, bits.OnesCount64(uint64(h)))
	for h != 0 {
		top := 63 - bits.LeadingZeros64(uint64(h))
		cards = append(cards, Card(top))
		h &^= 1 << top
	}
	return cards
}

// String lists the cards highest deck index first, space separated.
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// ParseHand parses a list of cards. Cards may be separated by spaces or
// written back to back: "As Kd", "AsKd" and "as 10d" are all accepted.
// Repeating a card is an error.
func ParseHand(s string) (Hand, error) {
	var h Hand
	pos := 0
	for _, field := range strings.Fields(s) {
		for i := 0; i < len(field); {
			width := 2
			if strings.HasPrefix(field[i:], "10") {
				width = 3
			}
			if i+width > len(field) {
				return 0, fmt.Errorf("incomplete card %q at position %d", field[i:], pos)
			}
			c, err := ParseCard(field[i : i+width])
			if err != nil {
				return 0, fmt.Errorf("card %d: %w", pos, err)
			}
			if h.HasCard(c) {
				return 0, fmt.Errorf("card %d: %s appears more than once", pos, c)
			}
			h.AddCard(c)
			i += width
			pos++
		}
	}
	return h, nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// IsSuited reports whether every card of the hand is of one suit.
func IsSuited(h Hand) bool {
	n := h.CountCards()
	for suit := range uint8(NumberOfSuits) {
		if int(bitsTable[h.GetSuitMask(suit)]) == n {
			return true
		}
	}
	return false
}

// IsConnected reports whether a two card hand has adjacent ranks.
func IsConnected(h Hand) bool {
	return GapCount(h) == 0
}

// GapCount returns the number of empty ranks between the two cards of a
// two card hand, treating the ace as low when paired with a wheel card.
// It returns -1 unless the hand holds exactly two distinct ranks.
func GapCount(h Hand) int {
	if h.CountCards() != 2 {
		return -1
	}
	ranks := h.RankMask()
	if bitsTable[ranks] != 2 {
		return -1
	}

	hi := int(topCardTable[ranks])
	lo := int(topCardTable[ranks&^(1<<hi)])
	if hi == int(Ace) && lo <= int(Five) {
		return lo
	}
	return hi - lo - 1
}
