package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Ranks, deuce through ace. A card's rank is its index modulo 13.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits. A card's suit is its index divided by 13.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	// NumberOfCards is the size of the deck the evaluator works over.
	NumberOfCards = 52
	// NumberOfRanks is the number of distinct ranks per suit.
	NumberOfRanks = 13
	// NumberOfSuits is the number of suits in the deck.
	NumberOfSuits = 4
)

// ErrOutOfRange reports that a size or count argument is outside the range an
// operation supports (card counts, pocket sizes, board sizes, player counts).
var ErrOutOfRange = errors.New("argument out of range")

// Card is a deck index in [0,52): rank + 13*suit.
type Card uint8

// Joker is the 53rd card value. The evaluator never produces or accepts it.
const Joker Card = NumberOfCards

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// NewCard creates a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(rank + NumberOfRanks*suit)
}

// Rank returns the card's rank, 0 (deuce) through 12 (ace).
func (c Card) Rank() uint8 {
	return uint8(c) % NumberOfRanks
}

// Suit returns the card's suit, 0 (clubs) through 3 (spades).
func (c Card) Suit() uint8 {
	return uint8(c) / NumberOfRanks
}

// Valid reports whether c is one of the 52 deck cards.
func (c Card) Valid() bool {
	return c < NumberOfCards
}

// Mask returns the single-bit hand containing only c. Invalid cards,
// including the joker, map to the empty hand.
func (c Card) Mask() Hand {
	if !c.Valid() {
		return 0
	}
	return cardMasksTable[c]
}

// String returns the two character notation, e.g. "As" or "Tc".
func (c Card) String() string {
	if c == Joker {
		return "Xx"
	}
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// RankString returns the single character for a rank (0-12).
func RankString(rank uint8) string {
	if rank >= NumberOfRanks {
		return "?"
	}
	return rankChars[rank : rank+1]
}

// RankName returns the English name of a rank.
func RankName(rank uint8) string {
	switch rank {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// ParseCard parses a card such as "As", "td" or "10h".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: want rank and suit", s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return NewCard(rank, suit), nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseRank(c byte) (uint8, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return c - '2', nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(c byte) (uint8, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
