package analysis

import (
	"github.com/lox/holdem-odds/enumerate"
	"github.com/lox/holdem-odds/internal/randutil"
	"github.com/lox/holdem-odds/poker"
)

// Distribution is indexed by poker.HandType.
type Distribution [poker.NumberOfHandTypes]float64

// Sum adds every category.
func (d Distribution) Sum() float64 {
	var s float64
	for _, v := range d {
		s += v
	}
	return s
}

func (d Distribution) scaled(by float64) Distribution {
	if by == 0 {
		return d
	}
	for i := range d {
		d[i] /= by
	}
	return d
}

// HandPlayerOpponentOdds returns, per final hand category, how likely the
// pocket is to win with that category (player) and how likely a random
// opponent is to beat it with that category (opponent). A split pot counts
// half to each side under its own category, so the two distributions sum
// to 1 together.
//
// With an empty board the answer comes from the pocket odds table given by
// WithPocketOdds, or from a fixed-seed sample of the pocket's class when
// there is none.
func HandPlayerOpponentOdds(pocket, board poker.Hand, opts ...Option) (player, opponent Distribution, err error) {
	cfg := newConfig(opts)
	if err := checkOpponentInputs(pocket, board); err != nil {
		return player, opponent, err
	}

	if board == 0 {
		class := poker.PocketClassOf(pocket)
		if cfg.table != nil {
			player, opponent = cfg.table.Row(class)
			return player, opponent, nil
		}
		seed := int64(pocketOddsSeed)
		if cfg.seeded {
			seed = cfg.seed
		}
		cfg.logger.Debug("sampling pocket odds row", "class", class, "trials", cfg.trials, "seed", seed)
		player, opponent, count := sampleClassRow(class, cfg.trials, seed)
		return player.scaled(float64(count)), opponent.scaled(float64(count)), nil
	}

	player, opponent, count := countPlayerOpponent(pocket, board)
	cfg.logger.Debug("enumerated opponent odds", "pocket", pocket, "board", board, "hands", count)
	return player.scaled(float64(count)), opponent.scaled(float64(count)), nil
}

// HandPlayerOpponentCounts is HandPlayerOpponentOdds without normalisation:
// it returns the raw tallies and the number of (opponent, board) pairs
// evaluated. It always enumerates, so an empty board walks every opponent
// pocket against every five card board and is slow.
func HandPlayerOpponentCounts(pocket, board poker.Hand, opts ...Option) (player, opponent Distribution, count uint64, err error) {
	cfg := newConfig(opts)
	if err := checkOpponentInputs(pocket, board); err != nil {
		return player, opponent, 0, err
	}
	player, opponent, count = countPlayerOpponent(pocket, board)
	cfg.logger.Debug("enumerated opponent counts", "pocket", pocket, "board", board, "hands", count)
	return player, opponent, count, nil
}

func checkOpponentInputs(pocket, board poker.Hand) error {
	if err := checkPocket("pocket", pocket); err != nil {
		return err
	}
	if err := checkBoard(board); err != nil {
		return err
	}
	return checkDisjoint([]string{"pocket", "board"}, []poker.Hand{pocket, board})
}

func countPlayerOpponent(pocket, board poker.Hand) (player, opponent Distribution, count uint64) {
	// Inputs are validated, so neither enumeration can fail.
	opponents, _ := enumerate.Hands(0, pocket|board, 2)
	for opp := range opponents.All() {
		boards, _ := enumerate.Hands(board, pocket|opp, 5)
		for b := range boards.All() {
			tallyShowdown(&player, &opponent, pocket|b, opp|b)
			count++
		}
	}
	return player, opponent, count
}

func tallyShowdown(player, opponent *Distribution, ours, theirs poker.Hand) {
	pv := poker.EvaluateUnchecked(ours, 7)
	ov := poker.EvaluateUnchecked(theirs, 7)
	switch {
	case pv > ov:
		player[pv.Type()] += 1.0
	case pv < ov:
		opponent[ov.Type()] += 1.0
	default:
		player[pv.Type()] += 0.5
		opponent[ov.Type()] += 0.5
	}
}

// sampleClassRow estimates the empty-board distributions of a class from
// one representative pocket; every pocket of a class shares them by suit
// symmetry.
func sampleClassRow(class poker.PocketClass, trials int, seed int64) (player, opponent Distribution, count uint64) {
	pocket := class.Masks()[0]
	rng := randutil.NewStream(seed, uint64(class))
	for range trials {
		// pocket leaves 50 live cards, so neither draw can fail.
		opp, _ := enumerate.RandomHand(rng, 0, pocket, 2)
		b, _ := enumerate.RandomHand(rng, 0, pocket|opp, 5)
		tallyShowdown(&player, &opponent, pocket|b, opp|b)
		count++
	}
	return player, opponent, count
}
