package poker

import (
	"math/bits"
	"strings"
)

// PocketClass is one of the 169 canonical starting hands. Pairs come first,
// AA through 22, followed by each unpaired rank combination from AK down to
// 32 with the suited class before the offsuit one.
type PocketClass uint8

const (
	// NumberOfPocketClasses is 13 pairs + 78 suited + 78 offsuit.
	NumberOfPocketClasses = 169
	// PocketNone marks a hand that is not exactly two cards.
	PocketNone PocketClass = NumberOfPocketClasses
)

type pocketKind uint8

const (
	kindPair pocketKind = iota
	kindSuited
	kindOffsuit
)

type pocketInfo struct {
	hi, lo uint8
	kind   pocketKind
}

var pocketInfos = func() [NumberOfPocketClasses]pocketInfo {
	var infos [NumberOfPocketClasses]pocketInfo
	n := 0
	for r := int(Ace); r >= int(Two); r-- {
		infos[n] = pocketInfo{hi: uint8(r), lo: uint8(r), kind: kindPair}
		n++
	}
	for hi := int(Ace); hi > int(Two); hi-- {
		for lo := hi - 1; lo >= int(Two); lo-- {
			infos[n] = pocketInfo{hi: uint8(hi), lo: uint8(lo), kind: kindSuited}
			infos[n+1] = pocketInfo{hi: uint8(hi), lo: uint8(lo), kind: kindOffsuit}
			n += 2
		}
	}
	return infos
}()

// pocketTable maps any ordered pair of distinct cards to its class. It is
// filled during package initialisation so concurrent readers never race.
var pocketTable = func() [NumberOfCards][NumberOfCards]PocketClass {
	var index [NumberOfRanks][NumberOfRanks][3]PocketClass
	for i, info := range pocketInfos {
		index[info.hi][info.lo][info.kind] = PocketClass(i)
	}

	var table [NumberOfCards][NumberOfCards]PocketClass
	for a := range NumberOfCards {
		for b := range NumberOfCards {
			if a == b {
				table[a][b] = PocketNone
				continue
			}
			ca, cb := Card(a), Card(b)
			hi, lo := ca.Rank(), cb.Rank()
			if lo > hi {
				hi, lo = lo, hi
			}
			kind := kindOffsuit
			switch {
			case hi == lo:
				kind = kindPair
			case ca.Suit() == cb.Suit():
				kind = kindSuited
			}
			table[a][b] = index[hi][lo][kind]
		}
	}
	return table
}()

var pocketMasks = func() [NumberOfPocketClasses][]Hand {
	var masks [NumberOfPocketClasses][]Hand
	for _, h := range twoCardTable {
		c := PocketClassOf(h)
		masks[c] = append(masks[c], h)
	}
	return masks
}()

// PocketClassOf returns the starting hand class of a two card hand, or
// PocketNone when h does not hold exactly two cards.
func PocketClassOf(h Hand) PocketClass {
	h &= DeckMask
	if bits.OnesCount64(uint64(h)) != 2 {
		return PocketNone
	}
	hi := 63 - bits.LeadingZeros64(uint64(h))
	lo := bits.TrailingZeros64(uint64(h))
	return pocketTable[hi][lo]
}

// Valid reports whether p is one of the 169 classes.
func (p PocketClass) Valid() bool {
	return p < NumberOfPocketClasses
}

// IsPair reports whether the class is a pocket pair.
func (p PocketClass) IsPair() bool {
	return p.Valid() && pocketInfos[p].kind == kindPair
}

// IsSuited reports whether the class is an unpaired suited hand.
func (p PocketClass) IsSuited() bool {
	return p.Valid() && pocketInfos[p].kind == kindSuited
}

// Ranks returns the high and low rank of the class.
func (p PocketClass) Ranks() (hi, lo uint8) {
	if !p.Valid() {
		return 0, 0
	}
	return pocketInfos[p].hi, pocketInfos[p].lo
}

// Masks lists every concrete two card hand in the class: 6 for a pair, 4
// for a suited class and 12 for an offsuit class. The slice is shared; do
// not modify it.
func (p PocketClass) Masks() []Hand {
	if !p.Valid() {
		return nil
	}
	return pocketMasks[p]
}

// Combos returns the number of concrete hands in the class.
func (p PocketClass) Combos() int {
	return len(p.Masks())
}

// String returns the usual shorthand: "AA", "AKs", "72o".
func (p PocketClass) String() string {
	if !p.Valid() {
		return "None"
	}
	info := pocketInfos[p]
	s := RankString(info.hi) + RankString(info.lo)
	switch info.kind {
	case kindSuited:
		s += "s"
	case kindOffsuit:
		s += "o"
	}
	return s
}

// ParsePocketClass is the inverse of PocketClass.String. Pairs take no
// suffix; "AK" without a suffix is rejected as ambiguous.
func ParsePocketClass(s string) (PocketClass, bool) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		s = strings.ToUpper(s[:2]) + strings.ToLower(s[2:])
	}
	for i := range PocketClass(NumberOfPocketClasses) {
		if i.String() == s {
			return i, true
		}
	}
	return PocketNone, false
}
