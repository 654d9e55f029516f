package main

import (
	"fmt"

	"github.com/lox/holdem-odds/analysis"
	"github.com/lox/holdem-odds/internal/fileutil"
)

// GenPocketOddsCmd samples --trials showdowns per class from streams of
// --seed. Unlike the other commands a zero seed is used as is, so the table
// is always reproducible.
type GenPocketOddsCmd struct {
	Workers   int    `help:"Classes sampled in parallel (0 = config or one per CPU)"`
	Output    string `short:"o" required:"" type:"path" help:"File to write"`
	GoPackage string `help:"Write Go source for this package instead of JSON"`
}

func (c *GenPocketOddsCmd) Run(app *App) error {
	workers := c.Workers
	if workers == 0 {
		workers = app.cfg.Odds.Workers
	}

	app.logger.Info("generating pocket odds", "trials", app.trials, "seed", app.seed, "workers", workers)
	start := app.clock.Now()

	table, err := analysis.GeneratePocketOdds(app.ctx, app.trials, app.seed,
		analysis.WithLogger(app.logger),
		analysis.WithWorkers(workers),
	)
	if err != nil {
		return err
	}

	if c.GoPackage != "" {
		err = fileutil.WriteFileAtomic(c.Output, []byte(table.GoCode(c.GoPackage)), 0o644)
	} else {
		err = analysis.SavePocketOdds(c.Output, table)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}

	app.logger.Info("wrote pocket odds", "path", c.Output, "elapsed", app.clock.Since(start))
	return nil
}
