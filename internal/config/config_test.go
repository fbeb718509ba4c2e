package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/btree/internal/core/observability/log"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, log.LevelInfo, cfg.Level())
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load("testdata/btree.yaml")
	require.NoError(t, err)

	assert.Equal(t, log.LevelDebug, cfg.Level())
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, uint64(10), cfg.Ticks)
	assert.Equal(t, "127.0.0.1:9090", cfg.Listen)
	assert.Equal(t, LatticeConfig{Cols: 2, Rows: 3}, cfg.Lattice)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse(strings.NewReader("ticks: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cfg.Ticks)
	assert.Equal(t, Defaults().Listen, cfg.Listen)
	assert.Equal(t, Defaults().Lattice, cfg.Lattice)

	cfg, err = Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad level":   "log_level: loud\n",
		"bad lattice": "lattice: {cols: 0, rows: 2}\n",
		"bad yaml":    "ticks: [\n",
		"no listen":   "listen: \"\"\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	assert.Error(t, err)
}
