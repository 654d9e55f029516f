package main

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-odds/analysis"
	"github.com/lox/holdem-odds/poker"
)

type EvalCmd struct {
	Hands []string `arg:"" help:"Hands of 1-7 cards, e.g. 'AsKsQsJsTs' or 'As Ks 7d' (quote hands with spaces)"`
}

func (c *EvalCmd) Run(app *App) error {
	hands := make([]poker.Hand, len(c.Hands))
	values := make([]poker.HandValue, len(c.Hands))
	var best poker.HandValue
	for i, s := range c.Hands {
		h, err := poker.ParseHand(s)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		v, err := poker.EvaluateHand(h)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands[i], values[i] = h, v
		best = max(best, v)
	}

	w := newTabWriter(app.out)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("value"),
		headerStyle.Render("rank"))
	for i, h := range hands {
		desc := values[i].String()
		if len(hands) > 1 && values[i] == best {
			desc = winStyle.Render(desc + " *")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", handStyle.Render(h.String()), desc, uint32(values[i]))
	}
	return w.Flush()
}

type PocketCmd struct {
	Classes []string `arg:"" optional:"" help:"Classes (AKs, 72o, QQ) or pockets (AsKd); lists all classes when omitted"`
}

func (c *PocketCmd) Run(app *App) error {
	classes, err := parseClasses(c.Classes)
	if err != nil {
		return err
	}

	// Listing every class only shows equity when a table is loaded; sampling
	// all 169 rows on demand is the job of gen-pocket-odds.
	withEquity := len(c.Classes) > 0 || app.table != nil
	equities := make([]float64, len(classes))

	start := app.clock.Now()
	if withEquity {
		g, ctx := errgroup.WithContext(app.ctx)
		if workers := app.cfg.Odds.Workers; workers > 0 {
			g.SetLimit(workers)
		}
		for i, class := range classes {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				player, _, err := analysis.HandPlayerOpponentOdds(class.Masks()[0], 0, app.options()...)
				if err != nil {
					return fmt.Errorf("%s: %w", class, err)
				}
				equities[i] = player.Sum()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	w := newTabWriter(app.out)
	fmt.Fprintf(w, "%s\t%s\t%s", headerStyle.Render("class"), headerStyle.Render("combos"), headerStyle.Render("tier"))
	if withEquity {
		fmt.Fprintf(w, "\t%s", headerStyle.Render("equity"))
	}
	fmt.Fprintf(w, "\n")
	for i, class := range classes {
		fmt.Fprintf(w, "%s\t%d\t%s", handStyle.Render(class.String()), class.Combos(), categoryStyle.Render(string(class.Tier())))
		if withEquity {
			fmt.Fprintf(w, "\t%s", winStyle.Render(percent(equities[i])))
		}
		fmt.Fprintf(w, "\n")
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if withEquity {
		source := "sampled"
		if app.table != nil {
			source = "table"
		}
		displayFooter(app.out, fmt.Sprintf("%d classes (%s)", len(classes), source), app.clock.Since(start))
	}
	return nil
}

// parseClasses accepts class names and concrete pockets. No arguments means
// every class.
func parseClasses(args []string) ([]poker.PocketClass, error) {
	if len(args) == 0 {
		classes := make([]poker.PocketClass, poker.NumberOfPocketClasses)
		for i := range classes {
			classes[i] = poker.PocketClass(i)
		}
		return classes, nil
	}

	classes := make([]poker.PocketClass, 0, len(args))
	for _, arg := range args {
		if class, ok := poker.ParsePocketClass(strings.TrimSpace(arg)); ok {
			classes = append(classes, class)
			continue
		}
		pocket, err := parsePocket(arg)
		if err != nil {
			return nil, fmt.Errorf("unknown class or pocket %q: %w", arg, err)
		}
		classes = append(classes, poker.PocketClassOf(pocket))
	}
	return classes, nil
}
