package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greenwave/bench"
)

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := parseOptions(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultConfig(), opts.cfg)
	assert.Equal(t, "memory", opts.store)
	assert.Equal(t, "info", opts.logLevel)
}

func TestParseOptions_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: 30\nruns: 7\ncycle: 40\n"), 0o600))

	opts, err := parseOptions([]string{"--config", path, "--runs", "3", "--local-search", "--parallel", "2"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 30, opts.cfg.Vertices)
	assert.Equal(t, 3, opts.cfg.Runs)
	assert.Equal(t, 40, opts.cfg.Cycle)
	assert.Equal(t, 2, opts.cfg.Parallel)
	assert.True(t, opts.cfg.LocalSearch.Enabled)
}

func TestParseOptions_Env(t *testing.T) {
	t.Setenv("GREENWAVE_STORE", "sqlite")
	t.Setenv("GREENWAVE_DSN", "bench.db")

	opts, err := parseOptions(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", opts.store)
	assert.Equal(t, "bench.db", opts.dsn)
}

func TestRun_WrongArguments(t *testing.T) {
	for _, args := range [][]string{
		{"--vertices", "0"},
		{"--runs", "0"},
		{"--runs"},
		{"--log-level", "loud"},
		{"--bogus"},
	} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, exitWrongArgs, run(context.Background(), args, &stdout, &stderr), "%v", args)
	}
}

func TestRun_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "bench.db")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(),
		[]string{"--runs", "2", "--vertices", "12", "--seed", "5", "--store", "sqlite", "--dsn", dsn, "--log-level", "error"},
		&stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Heuristic/Random penalty factor")

	info, err := os.Stat(dsn)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRun_UnknownStore(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--store", "redis", "--quiet", "--log-level", "error"}, &stdout, &stderr)
	assert.Equal(t, exitRuntimeError, code)
	assert.Empty(t, stdout.String())
}
