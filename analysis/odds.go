package analysis

import (
	"fmt"
	"iter"

	"github.com/lox/holdem-odds/enumerate"
	"github.com/lox/holdem-odds/poker"
)

// MaxPlayers is the most pockets that still leave room for a full board.
const MaxPlayers = (poker.NumberOfCards - 5) / 2

// HandOdds enumerates every completion of board that avoids the pockets and
// dead, and tallies for each pocket how often it holds the unique best hand
// (a win), shares the best hand (a tie), or neither (a loss).
func HandOdds(pockets []poker.Hand, board, dead poker.Hand, opts ...Option) (*OddsResult, error) {
	cfg := newConfig(opts)
	known, err := checkOddsInputs(pockets, board, dead)
	if err != nil {
		return nil, err
	}

	boards, err := enumerate.Hands(board, dead|known, 5)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("enumerating hand odds",
		"players", len(pockets), "board", board, "dead", dead, "boards", boards.Len())

	result := tallyOdds(pockets, boards.All())
	result.Total = boards.Len()
	return result, nil
}

// SampledHandOdds estimates HandOdds from trials random completions of
// board. Use WithSeed for reproducible results.
func SampledHandOdds(pockets []poker.Hand, board, dead poker.Hand, trials int, opts ...Option) (*OddsResult, error) {
	cfg := newConfig(opts)
	known, err := checkOddsInputs(pockets, board, dead)
	if err != nil {
		return nil, err
	}

	boards, err := enumerate.RandomHands(board, dead|known, 5, trials, enumerate.WithSeed(cfg.seed))
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("sampling hand odds",
		"players", len(pockets), "board", board, "dead", dead, "trials", trials)

	result := tallyOdds(pockets, boards.All())
	result.Total = uint64(boards.Len())
	result.Sampled = true
	return result, nil
}

func checkOddsInputs(pockets []poker.Hand, board, dead poker.Hand) (poker.Hand, error) {
	if len(pockets) < 1 || len(pockets) > MaxPlayers {
		return 0, fmt.Errorf("%w: need 1-%d pockets, got %d", poker.ErrOutOfRange, MaxPlayers, len(pockets))
	}
	names := make([]string, 0, len(pockets)+2)
	hands := make([]poker.Hand, 0, len(pockets)+2)
	var known poker.Hand
	for i, p := range pockets {
		name := fmt.Sprintf("pocket %d", i)
		if err := checkPocket(name, p); err != nil {
			return 0, err
		}
		names = append(names, name)
		hands = append(hands, p)
		known |= p
	}
	if err := checkBoard(board); err != nil {
		return 0, err
	}
	names = append(names, "board", "dead cards")
	hands = append(hands, board, dead)
	if err := checkDisjoint(names, hands); err != nil {
		return 0, err
	}
	return known, nil
}

func tallyOdds(pockets []poker.Hand, boards iter.Seq[poker.Hand]) *OddsResult {
	result := newOddsResult(len(pockets))
	values := make([]poker.HandValue, len(pockets))

	for b := range boards {
		var best poker.HandValue
		winners := 0
		for i, p := range pockets {
			v := poker.EvaluateUnchecked(p|b, 7)
			values[i] = v
			switch {
			case v > best:
				best = v
				winners = 1
			case v == best:
				winners++
			}
		}

		for i, v := range values {
			switch {
			case v != best:
				result.Losses[i]++
			case winners == 1:
				result.Wins[i]++
			default:
				result.Ties[i]++
			}
		}
	}
	return result
}
