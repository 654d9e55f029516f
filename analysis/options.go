// Package analysis computes hold'em equity on top of the poker evaluator and
// the enumerate package: exhaustive and sampled win/tie/loss odds, hand
// category distributions against a random opponent, hand potential, outs,
// and hand strength.
//
// Every entry point validates its inputs once and then runs unchecked
// evaluation in its inner loops. Nothing here is safe to share mid-call, but
// separate calls may run concurrently.
package analysis

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-odds/poker"
)

// ErrDuplicateCards reports a card that appears in more than one of the
// pockets, board and dead cards passed to a call.
var ErrDuplicateCards = errors.New("duplicate cards")

const (
	// DefaultTrials is the sample size for on-demand pocket odds rows and
	// sampled odds when no trial count is given.
	DefaultTrials = 20000
	// pocketOddsSeed keeps on-demand pocket odds rows reproducible.
	pocketOddsSeed = 1
)

type config struct {
	logger  *log.Logger
	table   *PocketOdds
	seed    int64
	seeded  bool
	trials  int
	workers int
}

// Option configures an analysis call.
type Option func(*config)

// WithLogger sends Debug progress lines to logger. The default discards them.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPocketOdds supplies a precomputed table for the empty-board path of
// HandPlayerOpponentOdds.
func WithPocketOdds(table *PocketOdds) Option {
	return func(c *config) {
		c.table = table
	}
}

// WithSeed fixes the random source of sampling calls. Seed 0 means
// process-local randomness.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithTrials sets the sample size of on-demand pocket odds rows.
func WithTrials(trials int) Option {
	return func(c *config) {
		if trials > 0 {
			c.trials = trials
		}
	}
}

// WithWorkers bounds the goroutines used by GeneratePocketOdds. Zero or less
// means one per CPU.
func WithWorkers(workers int) Option {
	return func(c *config) {
		c.workers = workers
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: log.New(io.Discard),
		trials: DefaultTrials,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers <= 0 {
		c.workers = runtime.NumCPU()
	}
	return c
}

func checkPocket(name string, pocket poker.Hand) error {
	if n := pocket.CountCards(); n != 2 {
		return fmt.Errorf("%w: %s must hold 2 cards, got %d", poker.ErrOutOfRange, name, n)
	}
	return nil
}

func checkBoard(board poker.Hand) error {
	if n := board.CountCards(); n > 5 {
		return fmt.Errorf("%w: board holds at most 5 cards, got %d", poker.ErrOutOfRange, n)
	}
	return nil
}

// checkDisjoint fails with ErrDuplicateCards when any two of the named
// hands share a card.
func checkDisjoint(names []string, hands []poker.Hand) error {
	var seen poker.Hand
	for i, h := range hands {
		if dup := seen & h; dup != 0 {
			return fmt.Errorf("%w: %s repeats %s", ErrDuplicateCards, names[i], dup)
		}
		seen |= h
	}
	return nil
}
