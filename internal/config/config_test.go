package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultTrials, cfg.Odds.Trials)
	assert.Zero(t, cfg.Odds.Seed)
	assert.Empty(t, cfg.Tables.PocketOdds)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "poker-odds.hcl")
	src := `
log {
  level = "debug"
}

odds {
  trials  = 5000
  seed    = 42
  workers = 2
}

tables {
  pocket_odds = "pocket_odds.json"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.Equal(t, 5000, cfg.Odds.Trials)
	assert.Equal(t, int64(42), cfg.Odds.Seed)
	assert.Equal(t, 2, cfg.Odds.Workers)
	assert.Equal(t, "pocket_odds.json", cfg.Tables.PocketOdds)
}

func TestParsePartialFile(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`odds { seed = 7 }`), "partial.hcl")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Odds.Seed)
	assert.Equal(t, DefaultTrials, cfg.Odds.Trials)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.NotNil(t, cfg.Tables)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `odds {`},
		{"unknown attribute", `odds { rounds = 3 }`},
		{"wrong type", `odds { trials = "many" }`},
		{"bad level", `log { level = "loud" }`},
		{"negative trials", `odds { trials = -1 }`},
		{"negative workers", `odds { workers = -2 }`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.src), tc.name+".hcl")
			assert.Error(t, err)
		})
	}
}
