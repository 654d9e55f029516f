package analysis

import (
	"fmt"

	"github.com/lox/holdem-odds/enumerate"
	"github.com/lox/holdem-odds/poker"
)

const (
	ahead = iota
	tied
	behind
)

// Completion counts the potential denominators are scaled by, per known
// card count. The turn keeps 45 rather than the 44 cards actually left once
// an opponent pocket is placed, so values line up with existing tables.
var potentialScale = map[int]float64{
	5: 990,
	6: 45,
	7: 1,
}

// Potential is the 3x3 transition matrix behind HandPotential: rows are the
// standing now (ahead, tied, behind) against each opponent pocket, columns
// the standing once the board is complete. Totals counts opponents per row.
type Potential struct {
	Matrix [3][3]uint64
	Totals [3]uint64
}

// Positive is the chance a hand behind or tied now ends up ahead.
func (p Potential) Positive(scale float64) float64 {
	den := scale * (float64(p.Totals[behind]) + float64(p.Totals[tied])/2)
	if den == 0 {
		return 0
	}
	num := float64(p.Matrix[behind][ahead]) +
		float64(p.Matrix[behind][tied])/2 +
		float64(p.Matrix[tied][ahead])/2
	return num / den
}

// Negative is the chance a hand ahead or tied now ends up behind.
func (p Potential) Negative(scale float64) float64 {
	den := scale * (float64(p.Totals[ahead]) + float64(p.Totals[tied])/2)
	if den == 0 {
		return 0
	}
	num := float64(p.Matrix[ahead][behind]) +
		float64(p.Matrix[ahead][tied])/2 +
		float64(p.Matrix[tied][behind])/2
	return num / den
}

// HandPotential returns the positive and negative potential of a pocket on
// a flop, turn or river board, measured against every opponent pocket and
// every way the board can complete.
func HandPotential(pocket, board poker.Hand, opts ...Option) (ppot, npot float64, err error) {
	cfg := newConfig(opts)
	p, cards, err := handPotential(pocket, board)
	if err != nil {
		return 0, 0, err
	}
	scale := potentialScale[cards]
	cfg.logger.Debug("hand potential", "pocket", pocket, "board", board, "totals", p.Totals)
	return p.Positive(scale), p.Negative(scale), nil
}

// HandPotentialMatrix returns the raw transition counts behind HandPotential.
func HandPotentialMatrix(pocket, board poker.Hand) (Potential, error) {
	p, _, err := handPotential(pocket, board)
	return p, err
}

func handPotential(pocket, board poker.Hand) (Potential, int, error) {
	var p Potential
	if err := checkPocket("pocket", pocket); err != nil {
		return p, 0, err
	}
	if err := checkDisjoint([]string{"pocket", "board"}, []poker.Hand{pocket, board}); err != nil {
		return p, 0, err
	}
	cards := (pocket | board).CountCards()
	if cards < 5 || cards > 7 {
		return p, 0, fmt.Errorf("%w: potential needs 3-5 board cards, got %d", poker.ErrOutOfRange, board.CountCards())
	}

	ours := pocket | board
	ourRank := poker.EvaluateUnchecked(ours, cards)
	toCome := 7 - cards

	opponents, _ := enumerate.Hands(0, ours, 2)
	for opp := range opponents.All() {
		oppRank := poker.EvaluateUnchecked(opp|board, cards)
		row := standing(ourRank, oppRank)
		p.Totals[row]++

		completions, _ := enumerate.Hands(0, ours|opp, toCome)
		for extra := range completions.All() {
			ourBest := poker.EvaluateUnchecked(ours|extra, 7)
			oppBest := poker.EvaluateUnchecked(opp|board|extra, 7)
			p.Matrix[row][standing(ourBest, oppBest)]++
		}
	}
	return p, cards, nil
}

func standing(ours, theirs poker.HandValue) int {
	switch {
	case ours > theirs:
		return ahead
	case ours == theirs:
		return tied
	default:
		return behind
	}
}
