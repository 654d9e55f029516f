package main

import (
	"errors"
	"fmt"
	"iter"

	"github.com/lox/holdem-odds/analysis"
	"github.com/lox/holdem-odds/enumerate"
	"github.com/lox/holdem-odds/poker"
)

type EnumCmd struct {
	Cards  int    `short:"n" default:"2" help:"Cards per hand, shared cards included (1-7)"`
	Shared string `short:"s" help:"Cards included in every hand"`
	Dead   string `short:"d" help:"Cards no hand may contain"`
	Random int    `short:"r" help:"Sample this many random hands instead of enumerating"`
	Limit  int    `short:"l" default:"20" help:"Hands to print (-1 prints all)"`
	Types  bool   `short:"t" help:"Tally hand categories instead of listing hands"`
}

func (c *EnumCmd) Run(app *App) error {
	if c.Types && c.Cards < 1 {
		return errors.New("tallying hand categories needs at least 1 card per hand")
	}
	shared, err := parseCards("shared", c.Shared, enumerate.MaxCards)
	if err != nil {
		return err
	}
	dead, err := parseCards("dead", c.Dead, poker.NumberOfCards)
	if err != nil {
		return err
	}

	var (
		hands iter.Seq[poker.Hand]
		total uint64
		what  = "hands"
	)
	if c.Random > 0 {
		s, err := enumerate.RandomHands(shared, dead, c.Cards, c.Random, enumerate.WithSeed(app.seed))
		if err != nil {
			return err
		}
		hands, total, what = s.All(), uint64(s.Len()), "sampled hands"
	} else {
		e, err := enumerate.Hands(shared, dead, c.Cards)
		if err != nil {
			return err
		}
		hands, total = e.All(), e.Len()
	}
	app.logger.Debug("enumerating", "cards", c.Cards, "shared", shared, "dead", dead, "hands", total)

	start := app.clock.Now()
	if c.Types {
		var tally analysis.Distribution
		for h := range hands {
			if err := app.ctx.Err(); err != nil {
				return err
			}
			tally[poker.EvaluateTypeUnchecked(h, c.Cards)]++
		}
		if total > 0 {
			for i := range tally {
				tally[i] /= float64(total)
			}
		}
		displayDistributions(app.out, []string{fmt.Sprintf("%d cards", c.Cards)}, []analysis.Distribution{tally})
	} else {
		var printed int
		for h := range hands {
			if c.Limit >= 0 && printed >= c.Limit {
				break
			}
			fmt.Fprintf(app.out, "%s\n", h)
			printed++
		}
		if rest := total - uint64(printed); rest > 0 {
			fmt.Fprintf(app.out, "%s\n", footerStyle.Render(fmt.Sprintf("... %d more", rest)))
		}
	}

	displayFooter(app.out, fmt.Sprintf("%d %s", total, what), app.clock.Since(start))
	return nil
}

var streetCards = map[string]int{
	"preflop": 0,
	"flop":    3,
	"turn":    4,
	"river":   5,
}

type DealCmd struct {
	Players int    `short:"p" default:"2" help:"Players at the table"`
	Street  string `default:"river" enum:"preflop,flop,turn,river" help:"How far to deal the board (preflop|flop|turn|river)"`
	Dead    string `short:"d" help:"Cards removed from the deck before dealing"`
}

func (c *DealCmd) Run(app *App) error {
	if c.Players < 2 || c.Players > analysis.MaxPlayers {
		return fmt.Errorf("players must be between 2 and %d, got %d", analysis.MaxPlayers, c.Players)
	}
	dead, err := parseCards("dead", c.Dead, poker.NumberOfCards)
	if err != nil {
		return err
	}

	deck := poker.NewDeck(app.rng(), dead)
	pockets := make([]poker.Hand, c.Players)
	for i := range pockets {
		var ok bool
		if pockets[i], ok = deck.Deal(2); !ok {
			return errors.New("not enough cards left to deal every pocket")
		}
	}
	board, ok := deck.Deal(streetCards[c.Street])
	if !ok {
		return errors.New("not enough cards left to deal the board")
	}

	start := app.clock.Now()
	result, err := analysis.HandOdds(pockets, board, dead, app.options()...)
	if err != nil {
		return err
	}
	elapsed := app.clock.Since(start)

	displayBoard(app.out, "board", board)

	w := newTabWriter(app.out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("seat"),
		headerStyle.Render("hand"),
		headerStyle.Render("made"),
		headerStyle.Render("equity"))
	for i, pocket := range pockets {
		made := string(poker.TierOf(pocket))
		if board != 0 {
			made = poker.MustEvaluate(pocket | board).String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1,
			handStyle.Render(pocket.String()),
			categoryStyle.Render(made),
			winStyle.Render(percent(result.Player(i).Equity())))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	displayFooter(app.out, fmt.Sprintf("%d boards", result.Total), elapsed)
	return nil
}
