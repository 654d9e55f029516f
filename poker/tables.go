package poker

import "math/bits"

// Lookup tables indexed by a 13-bit rank pattern. They are built once during
// package initialisation and never written again.

const rankPatterns = 1 << NumberOfRanks

// wheelPattern is A-2-3-4-5.
const wheelPattern = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five

// cardMasksTable[i] is the single-bit hand for card i.
var cardMasksTable = func() [NumberOfCards]Hand {
	var table [NumberOfCards]Hand
	for i := range table {
		table[i] = Hand(1) << i
	}
	return table
}()

// twoCardTable holds all 1326 two card hands in descending order: the higher
// card runs 51 down to 1, the lower card from just below it down to 0.
var twoCardTable = func() [NumberOfTwoCardHands]Hand {
	var table [NumberOfTwoCardHands]Hand
	n := 0
	for i1 := NumberOfCards - 1; i1 >= 0; i1-- {
		for i2 := i1 - 1; i2 >= 0; i2-- {
			table[n] = Hand(1)<<i1 | Hand(1)<<i2
			n++
		}
	}
	return table
}()

// bitsTable is the population count of each pattern.
var bitsTable = func() [rankPatterns]uint8 {
	var table [rankPatterns]uint8
	for i := range table {
		table[i] = uint8(bits.OnesCount16(uint16(i)))
	}
	return table
}()

// straightTable is the top rank of the best five card run in a pattern, or 0
// when there is none. The wheel reports Five (3) as its top card.
var straightTable = func() [rankPatterns]uint8 {
	var table [rankPatterns]uint8
	for i := range table {
		table[i] = straightTop(uint16(i))
	}
	return table
}()

// topCardTable is the highest rank set in a pattern (0 for the empty pattern).
var topCardTable = func() [rankPatterns]uint8 {
	var table [rankPatterns]uint8
	for i := 1; i < rankPatterns; i++ {
		table[i] = uint8(bits.Len16(uint16(i)) - 1)
	}
	return table
}()

// topFiveCardsTable packs the five highest ranks of a pattern as nibbles at
// shifts 16, 12, 8, 4 and 0, the highest rank first. Missing ranks are zero.
var topFiveCardsTable = func() [rankPatterns]uint32 {
	var table [rankPatterns]uint32
	for i := range table {
		pattern := uint16(i)
		var packed uint32
		shift := topCardShift
		for n := 0; n < 5 && pattern != 0; n++ {
			top := bits.Len16(pattern) - 1
			packed |= uint32(top) << shift
			pattern &^= 1 << top
			shift -= cardWidth
		}
		table[i] = packed
	}
	return table
}()

// bitsAndStrTable combines, per pattern: bit 0 set when five or more ranks
// are present, bit 1 set when a straight is present, and the population
// count in the bits above.
var bitsAndStrTable = func() [rankPatterns]uint16 {
	var table [rankPatterns]uint16
	for i := range table {
		n := uint16(bitsTable[i])
		v := n << 2
		if straightTable[i] != 0 {
			v |= 0x02
		}
		if n >= 5 {
			v |= 0x01
		}
		table[i] = v
	}
	return table
}()

func straightTop(pattern uint16) uint8 {
	for top := int(Ace); top >= int(Six); top-- {
		run := uint16(0x1F) << (top - 4)
		if pattern&run == run {
			return uint8(top)
		}
	}
	if pattern&wheelPattern == wheelPattern {
		return Five
	}
	return 0
}

// CardMask returns the single-bit hand for the card at index i.
func CardMask(i int) Hand {
	if i < 0 || i >= NumberOfCards {
		return 0
	}
	return cardMasksTable[i]
}

// NumberOfTwoCardHands is C(52,2).
const NumberOfTwoCardHands = 1326

// TwoCardHand returns the i-th two card hand in enumeration order: the higher
// card runs 51 down to 1 and the lower card from just below it down to 0.
func TwoCardHand(i int) Hand {
	if i < 0 || i >= NumberOfTwoCardHands {
		return 0
	}
	return twoCardTable[i]
}
