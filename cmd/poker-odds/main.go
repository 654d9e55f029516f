package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-odds/analysis"
	"github.com/lox/holdem-odds/internal/config"
	"github.com/lox/holdem-odds/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command. Unset flags fall back to
// the config file.
type Globals struct {
	Config   string `help:"HCL config file (missing file means defaults)" default:"poker-odds.hcl" env:"POKER_ODDS_CONFIG" type:"path"`
	LogLevel string `help:"Log level (debug|info|warn|error)"`
	NoColor  bool   `help:"Disable colored output"`
	Seed     *int64 `help:"Random seed for reproducible results (0 for random)"`
	Trials   int    `help:"Default number of Monte Carlo trials"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`

	Eval          EvalCmd          `cmd:"" help:"Evaluate one or more hands of 1-7 cards"`
	Odds          OddsCmd          `cmd:"" help:"Win/tie/loss odds for two or more pockets"`
	Opponent      OpponentCmd      `cmd:"" help:"Final hand categories of a pocket and a random opponent"`
	Potential     PotentialCmd     `cmd:"" help:"Positive and negative potential of a pocket"`
	Outs          OutsCmd          `cmd:"" help:"Cards that improve a pocket on a flop or turn"`
	Strength      StrengthCmd      `cmd:"" help:"Hand strength and effective hand strength"`
	Pocket        PocketCmd        `cmd:"" help:"Starting hand classes, tiers and preflop equity"`
	Enum          EnumCmd          `cmd:"" help:"Enumerate or sample hands from the unseen cards"`
	Deal          DealCmd          `cmd:"" help:"Deal a random hand to a table of players"`
	GenPocketOdds GenPocketOddsCmd `cmd:"gen-pocket-odds" help:"Generate the preflop pocket odds table"`
}

// App carries everything a command needs once flags and config are
// resolved.
type App struct {
	ctx    context.Context
	out    io.Writer
	logger *log.Logger
	clock  quartz.Clock
	cfg    *config.Config

	seed   int64
	trials int
	table  *analysis.PocketOdds
}

func newApp(ctx context.Context, g Globals, out, errOut io.Writer, clock quartz.Clock) (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel()
	if g.LogLevel != "" {
		level, err = log.ParseLevel(g.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", g.LogLevel, err)
		}
	}
	logger := log.NewWithOptions(errOut, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app := &App{
		ctx:    ctx,
		out:    out,
		logger: logger,
		clock:  clock,
		cfg:    cfg,
		seed:   cfg.Odds.Seed,
		trials: cfg.Odds.Trials,
	}
	if g.Seed != nil {
		app.seed = *g.Seed
	}
	if g.Trials < 0 {
		return nil, fmt.Errorf("invalid trials: %d", g.Trials)
	}
	if g.Trials > 0 {
		app.trials = g.Trials
	}

	if path := cfg.Tables.PocketOdds; path != "" {
		table, err := analysis.LoadPocketOdds(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded pocket odds table", "path", path, "trials", table.Trials)
		app.table = table
	}
	return app, nil
}

// options returns the analysis options implied by flags and config.
func (a *App) options() []analysis.Option {
	opts := []analysis.Option{
		analysis.WithLogger(a.logger),
		analysis.WithTrials(a.trials),
		analysis.WithWorkers(a.cfg.Odds.Workers),
	}
	// Unseeded runs keep the fixed seed of on-demand pocket odds rows.
	if a.seed != 0 {
		opts = append(opts, analysis.WithSeed(a.seed))
	}
	if a.table != nil {
		opts = append(opts, analysis.WithPocketOdds(a.table))
	}
	return opts
}

func (a *App) rng() *rand.Rand {
	return randutil.FromSeed(a.seed)
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Texas hold'em hand evaluation, enumeration and odds"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := newApp(ctx, cli.Globals, os.Stdout, os.Stderr, quartz.NewReal())
	kctx.FatalIfErrorf(err)

	err = kctx.Run(app)
	kctx.FatalIfErrorf(err)
}
