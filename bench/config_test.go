package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greenwave/bench"
)

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()
	cfg := bench.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Vertices)
	assert.Equal(t, 10, cfg.Runs)
	assert.Equal(t, 20, cfg.Cycle)
	assert.False(t, cfg.LocalSearch.Enabled)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*bench.Config)
	}{
		{"one vertex", func(c *bench.Config) { c.Vertices = 1 }},
		{"no runs", func(c *bench.Config) { c.Runs = 0 }},
		{"zero cycle", func(c *bench.Config) { c.Cycle = 0 }},
		{"zero parallel", func(c *bench.Config) { c.Parallel = 0 }},
		{"zero tuples", func(c *bench.Config) { c.TuplesPerIteration = 0 }},
		{"degree above n-1", func(c *bench.Config) { c.Graph.MaxDegree = c.Vertices }},
		{"min degree zero", func(c *bench.Config) { c.Graph.MinDegree = 0 }},
		{"negative weight", func(c *bench.Config) { c.Graph.MinWeight = -1 }},
		{"inverted weights", func(c *bench.Config) { c.Graph.MinWeight, c.Graph.MaxWeight = 5, 2 }},
		{"ls without perturbations", func(c *bench.Config) {
			c.LocalSearch.Enabled = true
			c.LocalSearch.Perturbations = 0
		}},
		{"ls without iterations", func(c *bench.Config) {
			c.LocalSearch.Enabled = true
			c.LocalSearch.MaxIterations = 0
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := bench.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), bench.ErrInvalidConfig)
		})
	}
}

func TestConfig_SmallNetworks(t *testing.T) {
	t.Parallel()
	cfg := bench.DefaultConfig()
	cfg.Vertices = 2
	cfg.Cycle = 1
	assert.NoError(t, cfg.Validate(), "max degree and weight defaults clamp to the smallest network")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
vertices: 40
runs: 5
seed: 1234
parallel: 4
local_search:
  enabled: true
  max_stall: 20
`), 0o600))

	cfg, err := bench.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Vertices)
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, bench.DefaultCycle, cfg.Cycle, "absent keys keep defaults")
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 4, cfg.Parallel)
	assert.True(t, cfg.LocalSearch.Enabled)
	assert.Equal(t, 20, cfg.LocalSearch.MaxStall)
	assert.Equal(t, 5, cfg.LocalSearch.Perturbations)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := bench.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("vertices: [1, 2"), 0o600))
	_, err = bench.LoadConfig(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("runs: 0\n"), 0o600))
	_, err = bench.LoadConfig(invalid)
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestCalcStats(t *testing.T) {
	t.Parallel()
	s := bench.CalcStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, s.N)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 5.0, s.Mean)
	assert.InDelta(t, 2.138, s.Std, 1e-3)

	assert.Equal(t, bench.Stats{}, bench.CalcStats(nil))
	assert.Equal(t, bench.Stats{N: 1, Min: 3, Mean: 3}, bench.CalcStats([]float64{3}))
}
