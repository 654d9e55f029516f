package analysis

import (
	"fmt"

	"github.com/lox/holdem-odds/enumerate"
	"github.com/lox/holdem-odds/poker"
)

// OutsMask returns the unseen cards that improve the player's hand on a flop
// or turn board. A card improves the hand when it raises the category, or
// keeps the category and raises the top card. When opponent pockets are
// given, a card also has to leave the player strictly ahead of each of them.
// Opponent cards are never counted as outs.
func OutsMask(player, board poker.Hand, opponents ...poker.Hand) (poker.Hand, error) {
	if err := checkPocket("player", player); err != nil {
		return 0, err
	}
	names := []string{"player", "board"}
	hands := []poker.Hand{player, board}
	var dead poker.Hand
	for i, opp := range opponents {
		name := fmt.Sprintf("opponent %d", i)
		if err := checkPocket(name, opp); err != nil {
			return 0, err
		}
		names = append(names, name)
		hands = append(hands, opp)
		dead |= opp
	}
	if err := checkDisjoint(names, hands); err != nil {
		return 0, err
	}

	known := player | board
	cards := known.CountCards()
	if cards != 5 && cards != 6 {
		return 0, fmt.Errorf("%w: outs need a flop or turn board, got %d board cards",
			poker.ErrOutOfRange, board.CountCards())
	}

	orig := poker.EvaluateUnchecked(known, cards)
	boardCards := board.CountCards()

	var outs poker.Hand
	candidates, _ := enumerate.Hands(0, dead|known, 1)
	for card := range candidates.All() {
		v := poker.EvaluateUnchecked(known|card, cards+1)
		if !improves(orig, v) {
			continue
		}
		beatsAll := true
		for _, opp := range opponents {
			if poker.EvaluateUnchecked(opp|board|card, boardCards+3) >= v {
				beatsAll = false
				break
			}
		}
		if beatsAll {
			outs |= card
		}
	}
	return outs, nil
}

// Outs returns the number of cards in OutsMask.
func Outs(player, board poker.Hand, opponents ...poker.Hand) (int, error) {
	mask, err := OutsMask(player, board, opponents...)
	if err != nil {
		return 0, err
	}
	return mask.CountCards(), nil
}

func improves(before, after poker.HandValue) bool {
	if after.Type() != before.Type() {
		return after.Type() > before.Type()
	}
	return after.TopCard() > before.TopCard()
}
