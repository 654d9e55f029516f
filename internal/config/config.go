// Package config loads the optional HCL file of the poker-odds command.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/holdem-odds/internal/fileutil"
)

const (
	DefaultLogLevel = "info"
	DefaultTrials   = 100000
)

// Config is the complete command configuration. Every block is optional.
type Config struct {
	Log    *LogConfig    `hcl:"log,block"`
	Odds   *OddsConfig   `hcl:"odds,block"`
	Tables *TablesConfig `hcl:"tables,block"`
}

// LogConfig sets the default log level.
type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// OddsConfig holds sampling defaults.
type OddsConfig struct {
	Trials  int   `hcl:"trials,optional"`
	Seed    int64 `hcl:"seed,optional"`    // 0 => process-local randomness
	Workers int   `hcl:"workers,optional"` // 0 => one per CPU
}

// TablesConfig points at precomputed tables.
type TablesConfig struct {
	PocketOdds string `hcl:"pocket_odds,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	exists, err := fileutil.Exists(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}
	if !exists {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Odds == nil {
		c.Odds = &OddsConfig{}
	}
	if c.Odds.Trials == 0 {
		c.Odds.Trials = DefaultTrials
	}
	if c.Tables == nil {
		c.Tables = &TablesConfig{}
	}
}

// Validate checks values the defaults cannot fix.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Odds.Trials < 0 {
		return fmt.Errorf("invalid trials: %d", c.Odds.Trials)
	}
	if c.Odds.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Odds.Workers)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
