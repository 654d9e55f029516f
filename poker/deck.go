package poker

import (
	rand "math/rand/v2"
)

// Deck is a shuffled 52 card deck that deals from the top. Dead cards can
// be removed before shuffling so the deck only holds live cards.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a shuffled deck without the cards in dead. A nil rng
// falls back to the global source.
func NewDeck(rng *rand.Rand, dead Hand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, NumberOfCards),
		rng:   rng,
	}
	for i := range NumberOfCards {
		c := Card(i)
		if !dead.HasCard(c) {
			d.cards = append(d.cards, c)
		}
	}
	d.Shuffle()
	return d
}

// Shuffle puts every card back and shuffles using Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards as a hand. It returns false when fewer than n remain.
func (d *Deck) Deal(n int) (Hand, bool) {
	if n < 0 || d.next+n > len(d.cards) {
		return 0, false
	}
	var h Hand
	for _, c := range d.cards[d.next : d.next+n] {
		h |= c.Mask()
	}
	d.next += n
	return h, true
}

// DealOne deals a single card.
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return Joker, false
	}
	c := d.cards[d.next]
	d.next++
	return c, true
}

// CardsRemaining returns the number of cards left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
