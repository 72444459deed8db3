package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/driver"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "searchdriver dev\n", out)
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("problems: 50\nnodes: 500\nalgorithms: [dfs]\n"), 0o600))
	metrics := filepath.Join(t.TempDir(), "out.prom")

	out, logs, err := execute(t, "run",
		"--config", path,
		"--problems", "2",
		"--nodes", "15",
		"--algorithms", "bfs,ucs",
		"--print-paths",
		"--log-format", "json",
		"--metrics-file", metrics,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "BFS Problem #2")
	assert.Contains(t, out, "UCS Problem #2")
	assert.NotContains(t, out, "Problem #3")
	assert.NotContains(t, out, "DEPTH FIRST")
	assert.Contains(t, logs, `"msg":"run finished"`)
	assert.FileExists(t, metrics)
}

func TestRun_FlagsReplaceInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithms: [greedy]\nproblems: 0\n"), 0o600))
	t.Setenv("LVSEARCH_DENSITY", "3")

	out, _, err := execute(t, "run",
		"--config", path,
		"--algorithms", "bfs",
		"--problems", "2",
		"--nodes", "10",
		"--density", "0.2",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "BFS Problem #2")

	_, _, err = execute(t, "run", "--config", path, "--problems", "2")
	assert.ErrorIs(t, err, driver.ErrUnknownAlgorithm, "without the flag the file value is still rejected")
}

func TestRun_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "run", "--algorithms", "bfs,greedy")
	assert.ErrorIs(t, err, driver.ErrUnknownAlgorithm)

	_, _, err = execute(t, "run", "--density", "2")
	assert.ErrorIs(t, err, driver.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--domain", "torus")
	assert.ErrorIs(t, err, driver.ErrUnknownDomain)
}

func TestRun_GridDomain(t *testing.T) {
	out, _, err := execute(t, "run",
		"--domain", "grid",
		"--problems", "3",
		"--nodes", "25",
		"--walls", "0.2",
		"--algorithms", "ucs,astar",
		"--print-paths",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "(grid)")
	assert.Contains(t, out, "ASTAR Problem #3")
	assert.NotContains(t, out, "BFS Problem")
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	cmd := newRunCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--seed", "9", "--uniform-costs", "--walls", "0.5"}))

	cfg := driver.DefaultConfig()
	require.NoError(t, applyFlags(cmd.Flags(), &cfg))
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.UniformCosts)
	assert.InDelta(t, 0.5, cfg.Walls, 1e-12)
	assert.Equal(t, driver.DefaultConfig().Problems, cfg.Problems)
	assert.Equal(t, driver.DefaultConfig().Algorithms, cfg.Algorithms)
}
