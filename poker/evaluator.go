package poker

import (
	"fmt"
)

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumberOfHandTypes is the number of hand categories.
const NumberOfHandTypes = 9

// String returns a human-readable hand category.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandValue is a packed, directly comparable hand strength. The category
// sits in bits 24-31 and up to five ranks fill the nibbles at bits 16, 12,
// 8, 4 and 0, most significant first. A larger value is a stronger hand.
type HandValue uint32

const (
	handTypeShift   = 24
	topCardShift    = 16
	secondCardShift = 12
	thirdCardShift  = 8
	fourthCardShift = 4
	fifthCardShift  = 0

	topCardMask    = 0x000F0000
	secondCardMask = 0x0000F000
	fifthCardMask  = 0x0000000F

	cardWidth = 4
	cardMask  = 0x0F
)

const (
	valueStraightFlush = HandValue(StraightFlush) << handTypeShift
	valueFourOfAKind   = HandValue(FourOfAKind) << handTypeShift
	valueFullHouse     = HandValue(FullHouse) << handTypeShift
	valueFlush         = HandValue(Flush) << handTypeShift
	valueStraight      = HandValue(Straight) << handTypeShift
	valueTrips         = HandValue(ThreeOfAKind) << handTypeShift
	valueTwoPair       = HandValue(TwoPair) << handTypeShift
	valuePair          = HandValue(Pair) << handTypeShift
	valueHighCard      = HandValue(HighCard) << handTypeShift
)

// Type returns the hand category.
func (v HandValue) Type() HandType {
	return HandType(v >> handTypeShift)
}

// TopCard returns the rank that defines the hand: the pair, trips or quads
// rank, the higher pair of two pair, or the highest card otherwise.
func (v HandValue) TopCard() uint8 {
	return uint8(v>>topCardShift) & cardMask
}

// SecondCard returns the second most significant rank. Straights and
// straight flushes carry only a top card, so this is zero for them.
func (v HandValue) SecondCard() uint8 {
	return uint8(v>>secondCardShift) & cardMask
}

// ThirdCard returns the third most significant rank.
func (v HandValue) ThirdCard() uint8 {
	return uint8(v>>thirdCardShift) & cardMask
}

// FourthCard returns the fourth most significant rank.
func (v HandValue) FourthCard() uint8 {
	return uint8(v>>fourthCardShift) & cardMask
}

// FifthCard returns the least significant rank.
func (v HandValue) FifthCard() uint8 {
	return uint8(v>>fifthCardShift) & cardMask
}

// String returns the category and its defining rank, e.g. "Straight, Ace high".
func (v HandValue) String() string {
	top := RankName(v.TopCard())
	switch v.Type() {
	case Pair:
		return fmt.Sprintf("Pair of %ss", top)
	case TwoPair:
		return fmt.Sprintf("Two Pair, %ss and %ss", top, RankName(v.SecondCard()))
	case ThreeOfAKind:
		return fmt.Sprintf("Three %ss", top)
	case FullHouse:
		return fmt.Sprintf("Full House, %ss over %ss", top, RankName(v.SecondCard()))
	case FourOfAKind:
		return fmt.Sprintf("Four %ss", top)
	case HighCard, Straight, Flush, StraightFlush:
		return fmt.Sprintf("%s, %s high", v.Type(), top)
	default:
		return "Unknown"
	}
}

// CompareHands returns a positive value if a wins, zero for a tie and a
// negative value if b wins.
func CompareHands(a, b HandValue) int {
	return int(a) - int(b)
}

// Evaluate ranks a hand of numberOfCards cards (1-7). numberOfCards must be
// the number of cards set in h.
func Evaluate(h Hand, numberOfCards int) (HandValue, error) {
	if numberOfCards < 1 || numberOfCards > 7 {
		return 0, fmt.Errorf("%w: evaluate supports 1-7 cards, got %d", ErrOutOfRange, numberOfCards)
	}
	return EvaluateUnchecked(h, numberOfCards), nil
}

// EvaluateHand ranks a hand of 1-7 cards, counting the cards itself.
func EvaluateHand(h Hand) (HandValue, error) {
	return Evaluate(h, h.CountCards())
}

// MustEvaluate ranks a hand and panics on error (for tests)
func MustEvaluate(h Hand) HandValue {
	v, err := EvaluateHand(h)
	if err != nil {
		panic(err)
	}
	return v
}

// EvaluateUnchecked ranks a hand without validating numberOfCards. It is the
// hot path used by enumeration loops whose inputs were validated up front;
// numberOfCards must be in [1,7] and equal to the cards set in h.
func EvaluateUnchecked(h Hand, numberOfCards int) HandValue {
	sc := h.GetSuitMask(Clubs)
	sd := h.GetSuitMask(Diamonds)
	sh := h.GetSuitMask(Hearts)
	ss := h.GetSuitMask(Spades)

	ranks := sc | sd | sh | ss
	nRanks := int(bitsTable[ranks])
	nDups := numberOfCards - nRanks

	var retval HandValue

	// A flush, straight or straight flush may be final straight away.
	if nRanks >= 5 {
		flushed := false
		for _, suit := range [4]uint16{ss, sc, sd, sh} {
			if bitsTable[suit] < 5 {
				continue
			}
			if st := straightTable[suit]; st != 0 {
				return valueStraightFlush + HandValue(st)<<topCardShift
			}
			retval = valueFlush + HandValue(topFiveCardsTable[suit])
			flushed = true
			break
		}
		if !flushed {
			if st := straightTable[ranks]; st != 0 {
				retval = valueStraight + HandValue(st)<<topCardShift
			}
		}

		// With fewer than three duplicates neither quads nor a full house fit.
		if retval != 0 && nDups < 3 {
			return retval
		}
	}

	switch nDups {
	case 0:
		return valueHighCard + HandValue(topFiveCardsTable[ranks])

	case 1:
		twoMask := ranks ^ (sc ^ sd ^ sh ^ ss)
		v := valuePair + HandValue(topCardTable[twoMask])<<topCardShift
		t := ranks ^ twoMask
		// Top three of what is left, moved down one slot.
		kickers := HandValue(topFiveCardsTable[t]>>cardWidth) &^ fifthCardMask
		return v + kickers

	case 2:
		twoMask := ranks ^ (sc ^ sd ^ sh ^ ss)
		if twoMask != 0 {
			t := ranks ^ twoMask
			return valueTwoPair +
				HandValue(topFiveCardsTable[twoMask]&(topCardMask|secondCardMask)) +
				HandValue(topCardTable[t])<<thirdCardShift
		}

		threeMask := ((sc & sd) | (sh & ss)) & ((sc & sh) | (sd & ss))
		v := valueTrips + HandValue(topCardTable[threeMask])<<topCardShift
		t := ranks ^ threeMask
		second := topCardTable[t]
		v += HandValue(second) << secondCardShift
		t ^= 1 << second
		return v + HandValue(topCardTable[t])<<thirdCardShift

	default:
		if fourMask := sh & sd & sc & ss; fourMask != 0 {
			tc := topCardTable[fourMask]
			return valueFourOfAKind +
				HandValue(tc)<<topCardShift +
				HandValue(topCardTable[ranks^(1<<tc)])<<secondCardShift
		}

		// Quads are ruled out, so twoMask holds exactly the paired ranks and
		// threeMask the ranks held in three suits.
		twoMask := ranks ^ (sc ^ sd ^ sh ^ ss)
		if int(bitsTable[twoMask]) != nDups {
			threeMask := ((sc & sd) | (sh & ss)) & ((sc & sh) | (sd & ss))
			tc := topCardTable[threeMask]
			t := (twoMask | threeMask) ^ (1 << tc)
			return valueFullHouse +
				HandValue(tc)<<topCardShift +
				HandValue(topCardTable[t])<<secondCardShift
		}

		if retval != 0 {
			return retval
		}

		top := topCardTable[twoMask]
		second := topCardTable[twoMask^(1<<top)]
		return valueTwoPair +
			HandValue(top)<<topCardShift +
			HandValue(second)<<secondCardShift +
			HandValue(topCardTable[ranks^(1<<top)^(1<<second)])<<thirdCardShift
	}
}

// EvaluateType returns only the category of a hand of 1-7 cards. It skips
// kicker extraction and is cheaper than Evaluate.
func EvaluateType(h Hand, numberOfCards int) (HandType, error) {
	if numberOfCards < 1 || numberOfCards > 7 {
		return HighCard, fmt.Errorf("%w: evaluate supports 1-7 cards, got %d", ErrOutOfRange, numberOfCards)
	}
	return EvaluateTypeUnchecked(h, numberOfCards), nil
}

// EvaluateHandType returns the category of a hand of 1-7 cards, counting the cards itself.
func EvaluateHandType(h Hand) (HandType, error) {
	return EvaluateType(h, h.CountCards())
}

// EvaluateTypeUnchecked is EvaluateType without argument validation.
func EvaluateTypeUnchecked(h Hand, numberOfCards int) HandType {
	sc := h.GetSuitMask(Clubs)
	sd := h.GetSuitMask(Diamonds)
	sh := h.GetSuitMask(Hearts)
	ss := h.GetSuitMask(Spades)

	ranks := sc | sd | sh | ss
	rankInfo := bitsAndStrTable[ranks]
	nDups := numberOfCards - int(rankInfo>>2)

	madeHand := HighCard
	if rankInfo&0x01 != 0 {
		if rankInfo&0x02 != 0 {
			madeHand = Straight
		}

		t := bitsAndStrTable[ss] | bitsAndStrTable[sc] | bitsAndStrTable[sd] | bitsAndStrTable[sh]
		if t&0x01 != 0 {
			if t&0x02 != 0 {
				return StraightFlush
			}
			madeHand = Flush
		}

		if madeHand != HighCard && nDups < 3 {
			return madeHand
		}
	}

	switch nDups {
	case 0:
		return HighCard
	case 1:
		return Pair
	case 2:
		if ranks^(sc^sd^sh^ss) != 0 {
			return TwoPair
		}
		return ThreeOfAKind
	default:
		switch {
		case (sc&sd)&(sh&ss) != 0:
			return FourOfAKind
		case ((sc&sd)|(sh&ss))&((sc&sh)|(sd&ss)) != 0:
			return FullHouse
		case madeHand != HighCard:
			return madeHand
		default:
			return TwoPair
		}
	}
}
