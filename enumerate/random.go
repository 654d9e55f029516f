package enumerate

import (
	"fmt"
	"iter"
	rand "math/rand/v2"

	"github.com/lox/holdem-odds/internal/randutil"
	"github.com/lox/holdem-odds/poker"
)

// Sampling describes trials independently drawn random hands. Draws are
// with repetition across trials, so the same hand may appear twice.
type Sampling struct {
	shared poker.Hand
	dead   poker.Hand
	free   int
	trials int

	seed int64
	rng  *rand.Rand
}

// RandomOption configures RandomHands.
type RandomOption func(*Sampling)

// WithSeed makes every pass over the sampling draw the same hands: each
// Iterator gets its own generator seeded from seed.
func WithSeed(seed int64) RandomOption {
	return func(s *Sampling) {
		s.seed = seed
	}
}

// WithRand draws from rng. All iterators of the sampling share it, so they
// must not run concurrently.
func WithRand(rng *rand.Rand) RandomOption {
	return func(s *Sampling) {
		s.rng = rng
	}
}

// RandomHands draws trials hands of numberOfCards cards, each containing
// shared and avoiding dead. Free cards are chosen uniformly from the legal
// cards by rejection sampling.
func RandomHands(shared, dead poker.Hand, numberOfCards, trials int, opts ...RandomOption) (*Sampling, error) {
	shared &= poker.DeckMask
	dead = (dead | shared) & poker.DeckMask

	free, err := freeCards(shared, numberOfCards)
	if err != nil {
		return nil, err
	}
	if trials < 0 {
		return nil, fmt.Errorf("%w: negative trial count %d", poker.ErrOutOfRange, trials)
	}
	if legal := poker.NumberOfCards - dead.CountCards(); free > legal {
		return nil, fmt.Errorf("%w: need %d cards but only %d are live", poker.ErrOutOfRange, free, legal)
	}

	s := &Sampling{shared: shared, dead: dead, free: free, trials: trials}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Len returns the number of trials.
func (s *Sampling) Len() int {
	return s.trials
}

// Iterator starts a new pass of trials draws.
func (s *Sampling) Iterator() *RandomIterator {
	rng := s.rng
	if rng == nil {
		rng = randutil.FromSeed(s.seed)
	}
	return &RandomIterator{s: s, rng: rng, remaining: s.trials}
}

// All returns the draws as a range-over-func sequence.
func (s *Sampling) All() iter.Seq[poker.Hand] {
	return func(yield func(poker.Hand) bool) {
		it := s.Iterator()
		for it.HasNext() {
			h, _ := it.Next()
			if !yield(h) {
				return
			}
		}
	}
}

// RandomIterator walks one pass of a Sampling. It is not safe for
// concurrent use.
type RandomIterator struct {
	s         *Sampling
	rng       *rand.Rand
	remaining int
}

// HasNext reports whether Next will return another hand.
func (it *RandomIterator) HasNext() bool {
	return it.remaining > 0
}

// Next draws the next hand, or returns ErrExhausted once trials hands have
// been drawn.
func (it *RandomIterator) Next() (poker.Hand, error) {
	if it.remaining <= 0 {
		return 0, ErrExhausted
	}
	it.remaining--
	return draw(it.rng, it.s.shared, it.s.dead, it.s.free), nil
}

// RandomHand draws a single hand of numberOfCards cards containing shared
// and avoiding dead. A nil rng draws from a process-local source.
func RandomHand(rng *rand.Rand, shared, dead poker.Hand, numberOfCards int) (poker.Hand, error) {
	if rng == nil {
		rng = randutil.FromSeed(0)
	}
	s, err := RandomHands(shared, dead, numberOfCards, 1, WithRand(rng))
	if err != nil {
		return 0, err
	}
	return draw(rng, s.shared, s.dead, s.free), nil
}

// draw assumes at least free cards lie outside dead.
func draw(rng *rand.Rand, shared, dead poker.Hand, free int) poker.Hand {
	var h poker.Hand
	for n := 0; n < free; {
		m := poker.CardMask(rng.IntN(poker.NumberOfCards))
		if m&(dead|h) == 0 {
			h |= m
			n++
		}
	}
	return h | shared
}
