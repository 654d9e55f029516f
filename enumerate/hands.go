// Package enumerate produces every, or a random selection of, k-card hands
// drawn from the deck, with cards that must be included (shared) and cards
// that may not appear (dead).
package enumerate

import (
	"errors"
	"fmt"
	"iter"

	"github.com/lox/holdem-odds/poker"
)

// MaxCards is the largest hand the enumerators produce.
const MaxCards = 7

// ErrExhausted is returned by Next once a sequence has produced every hand.
var ErrExhausted = errors.New("enumeration exhausted")

// Enumeration describes every hand of numberOfCards cards that contains
// shared and avoids dead. It holds no cursor state: each call to Iterator
// or All starts a fresh, independent pass, so one Enumeration may be
// walked by several goroutines at once.
type Enumeration struct {
	shared poker.Hand
	dead   poker.Hand
	free   int // cards still to choose beyond shared
	total  uint64
	live   []poker.Card // candidate cards, highest index first

	general bool // skip the one and two card fast paths
}

// Hands enumerates every numberOfCards-card hand that is a superset of
// shared and disjoint from dead. Hands are produced in strictly decreasing
// mask order: the highest free card runs from 51 down, each further card
// stays below the one before it, and the last card varies fastest.
func Hands(shared, dead poker.Hand, numberOfCards int) (*Enumeration, error) {
	shared &= poker.DeckMask
	dead = (dead | shared) & poker.DeckMask

	free, err := freeCards(shared, numberOfCards)
	if err != nil {
		return nil, err
	}

	live := make([]poker.Card, 0, poker.NumberOfCards-dead.CountCards())
	for i := poker.NumberOfCards - 1; i >= 0; i-- {
		if c := poker.Card(i); !dead.HasCard(c) {
			live = append(live, c)
		}
	}

	return &Enumeration{
		shared: shared,
		dead:   dead,
		free:   free,
		total:  Binomial(len(live), free),
		live:   live,
	}, nil
}

// AllHands enumerates every numberOfCards-card hand of the full deck.
func AllHands(numberOfCards int) (*Enumeration, error) {
	return Hands(0, 0, numberOfCards)
}

func freeCards(shared poker.Hand, numberOfCards int) (int, error) {
	if numberOfCards < 0 || numberOfCards > MaxCards {
		return 0, fmt.Errorf("%w: hands hold 0-%d cards, got %d", poker.ErrOutOfRange, MaxCards, numberOfCards)
	}
	free := numberOfCards - shared.CountCards()
	if free < 0 {
		return 0, fmt.Errorf("%w: %d shared cards do not fit in a %d card hand",
			poker.ErrOutOfRange, shared.CountCards(), numberOfCards)
	}
	return free, nil
}

// Len returns the number of hands the enumeration produces,
// C(52 - |shared ∪ dead|, numberOfCards - |shared|).
func (e *Enumeration) Len() uint64 {
	return e.total
}

// Iterator starts a new pass over the hands.
func (e *Enumeration) Iterator() *Iterator {
	it := &Iterator{e: e, remaining: e.total}
	switch {
	case e.free == 0:
		it.step = it.stepShared
	case e.free == 1 && !e.general:
		it.step = it.stepOneCard
	case e.free == 2 && !e.general:
		it.step = it.stepTwoCard
	default:
		it.step = it.stepGeneral
	}
	return it
}

// All returns the hands as a range-over-func sequence.
func (e *Enumeration) All() iter.Seq[poker.Hand] {
	return func(yield func(poker.Hand) bool) {
		it := e.Iterator()
		for it.HasNext() {
			h, _ := it.Next()
			if !yield(h) {
				return
			}
		}
	}
}

// Iterator walks one pass of an Enumeration. It is not safe for concurrent
// use.
type Iterator struct {
	e         *Enumeration
	remaining uint64
	started   bool
	step      func() poker.Hand

	// flat scan position for the one and two card paths
	index int

	// per-depth position in e.live and the OR of the cards chosen up to
	// and including that depth
	pos     [MaxCards]int
	partial [MaxCards]poker.Hand
}

// HasNext reports whether Next will return another hand.
func (it *Iterator) HasNext() bool {
	return it.remaining > 0
}

// Remaining returns how many hands are left.
func (it *Iterator) Remaining() uint64 {
	return it.remaining
}

// Next returns the next hand, or ErrExhausted after the last one.
func (it *Iterator) Next() (poker.Hand, error) {
	if it.remaining == 0 {
		return 0, ErrExhausted
	}
	it.remaining--
	h := it.step()
	it.started = true
	return h, nil
}

func (it *Iterator) stepShared() poker.Hand {
	return it.e.shared
}

func (it *Iterator) stepOneCard() poker.Hand {
	for ; it.index < poker.NumberOfCards; it.index++ {
		m := poker.CardMask(poker.NumberOfCards - 1 - it.index)
		if m&it.e.dead == 0 {
			it.index++
			return it.e.shared | m
		}
	}
	panic("enumerate: one card scan ran past its count")
}

func (it *Iterator) stepTwoCard() poker.Hand {
	for ; it.index < poker.NumberOfTwoCardHands; it.index++ {
		m := poker.TwoCardHand(it.index)
		if m&it.e.dead == 0 {
			it.index++
			return it.e.shared | m
		}
	}
	panic("enumerate: two card scan ran past its count")
}

func (it *Iterator) stepGeneral() poker.Hand {
	k := it.e.free
	live := it.e.live
	n := len(live)

	from := 0
	if it.started {
		// Advance the innermost depth that still has room and reset the
		// depths inside it.
		d := k - 1
		for d >= 0 && it.pos[d] == n-k+d {
			d--
		}
		if d < 0 {
			panic("enumerate: general scan ran past its count")
		}
		it.pos[d]++
		for j := d + 1; j < k; j++ {
			it.pos[j] = it.pos[j-1] + 1
		}
		from = d
	} else {
		for j := range k {
			it.pos[j] = j
		}
	}

	for d := from; d < k; d++ {
		m := live[it.pos[d]].Mask()
		if d > 0 {
			m |= it.partial[d-1]
		}
		it.partial[d] = m
	}
	return it.e.shared | it.partial[k-1]
}
