package driver_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/driver"
	"github.com/katalvlaran/lvsearch/search"
)

// ------------------------------------------------------------------------
// 1. Configuration layering and validation.
// ------------------------------------------------------------------------

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := driver.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, driver.DefaultConfig(), cfg)
	assert.Equal(t, 10, cfg.Problems)
	assert.Equal(t, 100, cfg.Nodes)
	assert.InDelta(t, 0.1, cfg.Density, 1e-12)
	assert.Equal(t, driver.DomainGraph, cfg.Domain)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
problems: 3
nodes: 20
density: 0.3
uniform_costs: true
algorithms: [bfs, dls]
depth_limit: 6
log:
  level: debug
  format: json
`), 0o600))

	t.Setenv("LVSEARCH_NODES", "25")
	t.Setenv("LVSEARCH_ALGORITHMS", "ucs, ASTAR")
	t.Setenv("LVSEARCH_PRINT_PATHS", "true")
	t.Setenv("LVSEARCH_DOMAIN", "Grid")
	t.Setenv("LVSEARCH_WALLS", "0.4")

	cfg, err := driver.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Problems)
	assert.Equal(t, 25, cfg.Nodes, "environment beats the file")
	assert.InDelta(t, 0.3, cfg.Density, 1e-12)
	assert.True(t, cfg.UniformCosts)
	assert.Equal(t, []string{"ucs", "astar"}, cfg.Algorithms)
	assert.Equal(t, 6, cfg.DepthLimit)
	assert.True(t, cfg.PrintPaths)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, driver.DomainGrid, cfg.Domain)
	assert.InDelta(t, 0.4, cfg.Walls, 1e-12)
	assert.Equal(t, 4, cfg.Parallelism, "unset keys keep their defaults")
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := driver.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("problems: [1, 2"), 0o600))
	_, err = driver.LoadConfig(bad)
	assert.ErrorIs(t, err, driver.ErrInvalidConfig)

	t.Setenv("LVSEARCH_SEED", "abc")
	t.Setenv("LVSEARCH_WALLS", "many")
	_, err = driver.LoadConfig("")
	assert.ErrorIs(t, err, driver.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "LVSEARCH_WALLS")
}

func TestReadConfig_DefersValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithms: [greedy]\nproblems: 0\n"), 0o600))
	t.Setenv("LVSEARCH_DOMAIN", "torus")

	cfg, err := driver.ReadConfig(path)
	require.NoError(t, err, "out-of-range values are left for Validate")
	assert.Equal(t, []string{"greedy"}, cfg.Algorithms)
	assert.Equal(t, 0, cfg.Problems)
	assert.Equal(t, "torus", cfg.Domain)
	assert.ErrorIs(t, cfg.Validate(), driver.ErrUnknownDomain)

	_, err = driver.LoadConfig(path)
	assert.ErrorIs(t, err, driver.ErrUnknownDomain)

	_, err = driver.ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an unreadable file still fails")
}

func TestConfig_Validate(t *testing.T) {
	mutate := map[string]func(*driver.Config){
		"no problems":   func(c *driver.Config) { c.Problems = 0 },
		"no nodes":      func(c *driver.Config) { c.Nodes = 0 },
		"density":       func(c *driver.Config) { c.Density = 1.5 },
		"no algorithms": func(c *driver.Config) { c.Algorithms = nil },
		"duplicate":     func(c *driver.Config) { c.Algorithms = []string{"bfs", "bfs"} },
		"depth limit":   func(c *driver.Config) { c.DepthLimit = -1 },
		"parallelism":   func(c *driver.Config) { c.Parallelism = 0 },
		"log level":     func(c *driver.Config) { c.Log.Level = "loud" },
		"log format":    func(c *driver.Config) { c.Log.Format = "xml" },
		"max deepening": func(c *driver.Config) { c.MaxDeepening = -2 },
		"walls":         func(c *driver.Config) { c.Walls = 1 },
	}
	for name, m := range mutate {
		t.Run(name, func(t *testing.T) {
			cfg := driver.DefaultConfig()
			m(&cfg)
			assert.ErrorIs(t, cfg.Validate(), driver.ErrInvalidConfig)
		})
	}

	cfg := driver.DefaultConfig()
	cfg.Domain = "torus"
	assert.ErrorIs(t, cfg.Validate(), driver.ErrUnknownDomain)

	cfg = driver.DefaultConfig()
	cfg.Algorithms = []string{"bfs", "greedy"}
	err := cfg.Validate()
	assert.ErrorIs(t, err, driver.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "greedy")

	cfg.Algorithms = driver.Algorithms()
	assert.NoError(t, cfg.Validate())
}

func TestAlgorithms_EveryNameRuns(t *testing.T) {
	names := driver.Algorithms()
	require.Len(t, names, 6)
	assert.Equal(t, search.AlgorithmBFS, names[0])
	assert.Equal(t, search.AlgorithmAStar, names[len(names)-1])

	names[0] = "mutated"
	assert.Equal(t, search.AlgorithmBFS, driver.Algorithms()[0], "callers get a copy")

	cfg := smallConfig()
	cfg.Problems = 1
	set, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)
	for _, name := range driver.Algorithms() {
		cfg.Algorithms = []string{name}
		require.NoError(t, cfg.Validate(), name)
		_, _, err := set[0].Solve(name, cfg)
		assert.NoError(t, err, name)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := driver.NewLogger(driver.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = driver.NewLogger(driver.LogConfig{Level: "loud", Format: "text"}, &buf)
	assert.ErrorIs(t, err, driver.ErrInvalidConfig)
}

// ------------------------------------------------------------------------
// 2. Problem sets.
// ------------------------------------------------------------------------

func smallConfig() driver.Config {
	cfg := driver.DefaultConfig()
	cfg.Problems = 4
	cfg.Nodes = 30
	cfg.Density = 0.15
	cfg.Seed = 7
	cfg.Algorithms = driver.Algorithms()
	cfg.DepthLimit = 3
	cfg.Parallelism = 3

	return cfg
}

func TestNewProblemSet(t *testing.T) {
	cfg := smallConfig()
	set, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)
	require.Len(t, set, cfg.Problems)

	again, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)
	for i, p := range set {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, driver.DomainGraph, p.Domain)
		require.NotNil(t, p.Graph)
		assert.Nil(t, p.Grid)
		assert.Equal(t, cfg.Nodes, p.Graph.NumNodes())
		assert.Equal(t, p.String(), again[i].String(), "problem %d is reproducible", i)

		found, _, err := p.Solve(search.AlgorithmBFS, cfg)
		require.NoError(t, err)
		assert.Equal(t, p.Solvable, found)
	}
	assert.NotEqual(t, set[0].String(), set[1].String(), "each problem has its own seed")

	cfg.Nodes = 0
	_, err = driver.NewProblemSet(cfg)
	assert.ErrorIs(t, err, driver.ErrInvalidConfig)

	_, _, err = driver.Problem{}.Solve(search.AlgorithmBFS, cfg)
	assert.Error(t, err, "a zero Problem cannot be solved")
}

func TestNewProblemSet_Grid(t *testing.T) {
	cfg := smallConfig()
	cfg.Domain = driver.DomainGrid
	cfg.Nodes = 30 // 6×6
	cfg.Walls = 0.2
	set, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)
	require.Len(t, set, cfg.Problems)

	for _, p := range set {
		assert.Equal(t, driver.DomainGrid, p.Domain)
		require.NotNil(t, p.Grid)
		assert.Nil(t, p.Graph)
		assert.Equal(t, 6, p.Grid.Width)
		assert.Equal(t, 6, p.Grid.Height)
		assert.True(t, p.Grid.IsOpen(0, 0))
		assert.True(t, p.Grid.IsOpen(5, 5))

		ucsFound, ucsCost, err := p.Solve(search.AlgorithmUniformCost, cfg)
		require.NoError(t, err)
		assert.Equal(t, p.Solvable, ucsFound)
		astarFound, astarCost, err := p.Solve(search.AlgorithmAStar, cfg)
		require.NoError(t, err)
		assert.Equal(t, ucsFound, astarFound)
		assert.Equal(t, ucsCost, astarCost)
	}

	_, _, err = set[0].Solve("greedy", cfg)
	assert.ErrorIs(t, err, driver.ErrUnknownAlgorithm)
}

// ------------------------------------------------------------------------
// 3. Runs, reports and metrics.
// ------------------------------------------------------------------------

func TestRunner_Run(t *testing.T) {
	cfg := smallConfig()
	cfg.PrintPaths = true
	cfg.MetricsFile = filepath.Join(t.TempDir(), "lvsearch.prom")
	set, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)

	var logs bytes.Buffer
	log, err := driver.NewLogger(driver.LogConfig{Level: "debug", Format: "json"}, &logs)
	require.NoError(t, err)

	r := driver.NewRunner(cfg, set, driver.WithLogger(log), driver.WithRunID("run-1"))
	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "run-1", report.RunID)
	require.Len(t, report.Sections, len(cfg.Algorithms))

	ucs, ok := report.Section(search.AlgorithmUniformCost)
	require.True(t, ok)
	astar, _ := report.Section(search.AlgorithmAStar)
	bfs, _ := report.Section(search.AlgorithmBFS)
	dls, _ := report.Section(search.AlgorithmDepthLimitedDFS)
	assert.Equal(t, "DEPTH LIMITED (limit 3)", dls.Title)

	var expanded int64
	for i, o := range ucs.Outcomes {
		assert.Equal(t, i+1, o.Problem)
		assert.Equal(t, set[i].Solvable, o.Found)
		assert.Equal(t, o.Found, astar.Outcomes[i].Found)
		assert.Equal(t, o.Cost, astar.Outcomes[i].Cost, "problem %d", i+1)
		if o.Found {
			assert.LessOrEqual(t, bfs.Outcomes[i].Length, o.Length)
			assert.True(t, strings.HasPrefix(o.Path, "Step 1 -> State: 0\n"))
		}
		assert.LessOrEqual(t, dls.Outcomes[i].Length, cfg.DepthLimit)
		expanded += o.Expanded
	}
	assert.Equal(t, expanded, ucs.TotalExpanded, "the shared counter sums every search")

	// Metrics agree with the report.
	reg := r.Metrics().Registry()
	assert.InDelta(t, float64(ucs.TotalExpanded), counterValue(t, reg, "lvsearch_expanded_states_total", "algorithm", "ucs"), 0)
	assert.InDelta(t, float64(ucs.Solved), counterValue(t, reg, "lvsearch_searches_total", "outcome", "found", "algorithm", "ucs"), 0)
	searched := 0
	for _, sec := range report.Sections {
		if len(sec.Outcomes) > sec.Skipped {
			searched++
		}
	}
	n, err := testutil.GatherAndCount(reg, "lvsearch_search_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, searched, n, "one duration series per algorithm that ran")

	prom, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "lvsearch_searches_total")

	var out bytes.Buffer
	require.NoError(t, report.Write(&out))
	text := out.String()
	for _, want := range []string{"Run run-1 (graph)", "BFS\n", "UNIFORM COST SEARCH", "ITERATIVE DEEPENING", "A*", "UCS Problem #1", "Average Cost:", "SOLUTION PATH:"} {
		assert.Contains(t, text, want)
	}

	assert.Contains(t, logs.String(), `"run_id":"run-1"`)
	assert.Contains(t, logs.String(), `"msg":"search finished"`)
}

func TestRunner_Run_Grid(t *testing.T) {
	cfg := smallConfig()
	cfg.Domain = driver.DomainGrid
	cfg.Problems = 6
	cfg.Nodes = 16 // 4×4
	cfg.Walls = 0.3
	cfg.PrintPaths = true
	set, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)

	report, err := driver.NewRunner(cfg, set, driver.WithRunID("grid-1")).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, driver.DomainGrid, report.Domain)

	ucs, _ := report.Section(search.AlgorithmUniformCost)
	astar, _ := report.Section(search.AlgorithmAStar)
	ids, _ := report.Section(search.AlgorithmIterativeDeepening)
	bfs, _ := report.Section(search.AlgorithmBFS)
	for i, o := range ucs.Outcomes {
		assert.Equal(t, set[i].Solvable, o.Found)
		assert.Equal(t, o.Cost, astar.Outcomes[i].Cost, "problem %d", i+1)
		if !o.Found {
			assert.True(t, ids.Outcomes[i].Skipped)
			continue
		}
		assert.True(t, strings.HasPrefix(o.Path, "Step 1 -> State: (0,0)\n"))
		assert.True(t, strings.HasSuffix(o.Path, "-> State: (3,3)\n"))
		assert.Equal(t, bfs.Outcomes[i].Length, ids.Outcomes[i].Length, "both find the fewest moves")
		assert.GreaterOrEqual(t, o.Length, 6, "corner to corner takes at least 6 moves")
	}

	var out bytes.Buffer
	require.NoError(t, report.Write(&out))
	assert.Contains(t, out.String(), "Run grid-1 (grid)")
}

func TestRunner_SkipsExhaustiveSearchOnUnsolvable(t *testing.T) {
	cfg := smallConfig()
	cfg.Problems = 12
	cfg.Density = 0 // spanning edges only: node 0 is often not the root
	cfg.Algorithms = []string{search.AlgorithmBFS, search.AlgorithmDFS}
	set, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)

	unsolvable := 0
	for _, p := range set {
		if !p.Solvable {
			unsolvable++
		}
	}
	require.Positive(t, unsolvable, "fixture needs an unsolvable problem")

	report, err := driver.NewRunner(cfg, set).Run(context.Background())
	require.NoError(t, err)
	dfs, _ := report.Section(search.AlgorithmDFS)
	bfs, _ := report.Section(search.AlgorithmBFS)
	assert.Equal(t, unsolvable, dfs.Skipped)
	assert.Zero(t, bfs.Skipped)
	assert.Equal(t, bfs.Solved, dfs.Solved)

	var out bytes.Buffer
	require.NoError(t, report.Write(&out))
	assert.Contains(t, out.String(), "Skipped: goal unreachable")
	assert.Contains(t, out.String(), "No solution found")
}

func TestRunner_Cancelled(t *testing.T) {
	cfg := smallConfig()
	set, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = driver.NewRunner(cfg, set).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_UnknownAlgorithm(t *testing.T) {
	cfg := smallConfig()
	set, err := driver.NewProblemSet(cfg)
	require.NoError(t, err)

	cfg.Algorithms = []string{"greedy"}
	_, err = driver.NewRunner(cfg, set).Run(context.Background())
	assert.ErrorIs(t, err, driver.ErrUnknownAlgorithm)
}

// counterValue returns the value of the counter series of family name whose
// labels match the given name/value pairs.
func counterValue(t *testing.T, reg prometheus.Gatherer, name string, labels ...string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	series:
		for _, m := range mf.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for i := 0; i+1 < len(labels); i += 2 {
				if got[labels[i]] != labels[i+1] {
					continue series
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	t.Fatalf("no series %s%v", name, labels)

	return 0
}
