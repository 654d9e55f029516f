package analysis

import (
	"fmt"
	"math"

	"github.com/lox/holdem-odds/enumerate"
	"github.com/lox/holdem-odds/poker"
)

// HandStrength is the share of opponent pockets the player's current hand
// beats, counting ties as half, raised to the power players-1 to
// approximate a multi-way pot. It looks only at the cards known now.
func HandStrength(pocket, board poker.Hand, players int) (float64, error) {
	if err := checkPocket("pocket", pocket); err != nil {
		return 0, err
	}
	if err := checkBoard(board); err != nil {
		return 0, err
	}
	if err := checkDisjoint([]string{"pocket", "board"}, []poker.Hand{pocket, board}); err != nil {
		return 0, err
	}
	if players < 2 || players > MaxPlayers {
		return 0, fmt.Errorf("%w: need 2-%d players, got %d", poker.ErrOutOfRange, MaxPlayers, players)
	}

	cards := 2 + board.CountCards()
	ours := poker.EvaluateUnchecked(pocket|board, cards)

	var wins, ties, count uint64
	opponents, _ := enumerate.Hands(0, pocket|board, 2)
	for opp := range opponents.All() {
		theirs := poker.EvaluateUnchecked(opp|board, cards)
		switch {
		case ours > theirs:
			wins++
		case ours == theirs:
			ties++
		}
		count++
	}
	if count == 0 {
		return 0, nil
	}

	hs := (float64(wins) + float64(ties)*0.5) / float64(count)
	return math.Pow(hs, float64(players-1)), nil
}

// EffectiveHandStrength blends hand strength with the chance of improving:
// hs + (1 - hs) * ppot, where hs is HandStrength for the given number of
// players. It needs a flop or turn board, or a river where ppot is zero.
func EffectiveHandStrength(pocket, board poker.Hand, players int, opts ...Option) (float64, error) {
	hs, err := HandStrength(pocket, board, players)
	if err != nil {
		return 0, err
	}
	ppot, _, err := HandPotential(pocket, board, opts...)
	if err != nil {
		return 0, err
	}
	return hs + (1-hs)*ppot, nil
}
