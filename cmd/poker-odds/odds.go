package main

import (
	"errors"
	"fmt"

	"github.com/lox/holdem-odds/analysis"
	"github.com/lox/holdem-odds/poker"
)

type OddsCmd struct {
	Hands  []string `arg:"" help:"Player pockets, e.g. 'AcKd' 'QhJs'"`
	Board  string   `short:"b" help:"Community cards (e.g. 'Td7s8h')"`
	Dead   string   `short:"d" help:"Dead cards removed from the deck"`
	Sample bool     `short:"s" help:"Sample random boards instead of enumerating every board"`
}

func (c *OddsCmd) Run(app *App) error {
	pockets, err := parsePockets(c.Hands)
	if err != nil {
		return err
	}
	if len(pockets) < 2 {
		return errors.New("odds needs at least 2 hands")
	}
	board, err := parseCards("board", c.Board, 5)
	if err != nil {
		return err
	}
	dead, err := parseCards("dead", c.Dead, poker.NumberOfCards)
	if err != nil {
		return err
	}

	start := app.clock.Now()
	var result *analysis.OddsResult
	if c.Sample {
		result, err = analysis.SampledHandOdds(pockets, board, dead, app.trials, app.options()...)
	} else {
		result, err = analysis.HandOdds(pockets, board, dead, app.options()...)
	}
	if err != nil {
		return err
	}
	elapsed := app.clock.Since(start)

	displayBoard(app.out, "board", board)
	displayBoard(app.out, "dead", dead)
	displayOdds(app.out, pockets, result)

	what := fmt.Sprintf("%d boards", result.Total)
	if result.Sampled {
		what = fmt.Sprintf("%d sampled boards", result.Total)
	}
	displayFooter(app.out, what, elapsed)
	return nil
}

type OpponentCmd struct {
	Hand   string `arg:"" help:"Player pocket, e.g. 'AsKs'"`
	Board  string `short:"b" help:"Community cards (0-5)"`
	Counts bool   `help:"Print raw tallies instead of probabilities (slow with an empty board)"`
}

func (c *OpponentCmd) Run(app *App) error {
	pocket, err := parsePocket(c.Hand)
	if err != nil {
		return err
	}
	board, err := parseCards("board", c.Board, 5)
	if err != nil {
		return err
	}

	start := app.clock.Now()
	if c.Counts {
		player, opponent, count, err := analysis.HandPlayerOpponentCounts(pocket, board, app.options()...)
		if err != nil {
			return err
		}
		elapsed := app.clock.Since(start)

		displayBoard(app.out, "board", board)
		w := newTabWriter(app.out)
		fmt.Fprintf(w, "%s\t%s\t%s\n", categoryStyle.Render("hand"), handStyle.Render("player"), handStyle.Render("opponent"))
		for i := poker.NumberOfHandTypes - 1; i >= 0; i-- {
			if player[i] == 0 && opponent[i] == 0 {
				continue
			}
			fmt.Fprintf(w, "%s\t%.1f\t%.1f\n", categoryStyle.Render(poker.HandType(i).String()), player[i], opponent[i])
		}
		if err := w.Flush(); err != nil {
			return err
		}
		displayFooter(app.out, fmt.Sprintf("%d showdowns", count), elapsed)
		return nil
	}

	player, opponent, err := analysis.HandPlayerOpponentOdds(pocket, board, app.options()...)
	if err != nil {
		return err
	}
	elapsed := app.clock.Since(start)

	displayBoard(app.out, "board", board)
	displayDistributions(app.out, []string{pocket.String(), "opponent"}, []analysis.Distribution{player, opponent})
	displayFooter(app.out, "opponent odds", elapsed)
	return nil
}

type PotentialCmd struct {
	Hand   string `arg:"" help:"Player pocket, e.g. 'AsKs'"`
	Board  string `short:"b" required:"" help:"Flop, turn or river"`
	Matrix bool   `help:"Also print the ahead/tied/behind transition counts"`
}

func (c *PotentialCmd) Run(app *App) error {
	pocket, err := parsePocket(c.Hand)
	if err != nil {
		return err
	}
	board, err := parseCards("board", c.Board, 5)
	if err != nil {
		return err
	}

	start := app.clock.Now()
	ppot, npot, err := analysis.HandPotential(pocket, board, app.options()...)
	if err != nil {
		return err
	}

	displayBoard(app.out, "board", board)
	w := newTabWriter(app.out)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("ppot"), headerStyle.Render("npot"))
	fmt.Fprintf(w, "%s\t%s\t%s\n", handStyle.Render(pocket.String()), winStyle.Render(fmt.Sprintf("%.4f", ppot)), percentStyle.Render(fmt.Sprintf("%.4f", npot)))
	if err := w.Flush(); err != nil {
		return err
	}

	if c.Matrix {
		p, err := analysis.HandPotentialMatrix(pocket, board)
		if err != nil {
			return err
		}
		fmt.Fprintln(app.out)
		displayMatrix(app, p)
	}

	displayFooter(app.out, "hand potential", app.clock.Since(start))
	return nil
}

func displayMatrix(app *App, p analysis.Potential) {
	names := []string{"ahead", "tied", "behind"}
	w := newTabWriter(app.out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", categoryStyle.Render("now"),
		headerStyle.Render(names[0]), headerStyle.Render(names[1]), headerStyle.Render(names[2]), headerStyle.Render("total"))
	for row, name := range names {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", categoryStyle.Render(name),
			p.Matrix[row][0], p.Matrix[row][1], p.Matrix[row][2], p.Totals[row])
	}
	w.Flush()
}

type OutsCmd struct {
	Hand      string   `arg:"" help:"Player pocket, e.g. 'AsKs'"`
	Opponents []string `arg:"" optional:"" help:"Known opponent pockets"`
	Board     string   `short:"b" required:"" help:"Flop or turn"`
}

func (c *OutsCmd) Run(app *App) error {
	pocket, err := parsePocket(c.Hand)
	if err != nil {
		return err
	}
	opponents, err := parsePockets(c.Opponents)
	if err != nil {
		return err
	}
	board, err := parseCards("board", c.Board, 4)
	if err != nil {
		return err
	}

	outs, err := analysis.OutsMask(pocket, board, opponents...)
	if err != nil {
		return err
	}

	displayBoard(app.out, "board", board)
	fmt.Fprintf(app.out, "%s %s\n", headerStyle.Render("outs"), winStyle.Render(fmt.Sprint(outs.CountCards())))
	if outs != 0 {
		fmt.Fprintf(app.out, "%s\n", outs)
	}
	return nil
}

type StrengthCmd struct {
	Hand    string `arg:"" help:"Player pocket, e.g. 'AsKs'"`
	Board   string `short:"b" help:"Community cards (0-5)"`
	Players int    `short:"p" default:"2" help:"Players in the hand, including you"`
}

func (c *StrengthCmd) Run(app *App) error {
	pocket, err := parsePocket(c.Hand)
	if err != nil {
		return err
	}
	board, err := parseCards("board", c.Board, 5)
	if err != nil {
		return err
	}

	start := app.clock.Now()
	hs, err := analysis.HandStrength(pocket, board, c.Players)
	if err != nil {
		return err
	}

	ehs := "."
	// Potential is undefined before the flop.
	if board.CountCards() >= 3 {
		v, err := analysis.EffectiveHandStrength(pocket, board, c.Players, app.options()...)
		if err != nil {
			return err
		}
		ehs = fmt.Sprintf("%.4f", v)
	}

	displayBoard(app.out, "board", board)
	w := newTabWriter(app.out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("players"),
		headerStyle.Render("hs"), headerStyle.Render("ehs"))
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", handStyle.Render(pocket.String()), c.Players,
		winStyle.Render(fmt.Sprintf("%.4f", hs)), winStyle.Render(ehs))
	if err := w.Flush(); err != nil {
		return err
	}
	displayFooter(app.out, "hand strength", app.clock.Since(start))
	return nil
}
