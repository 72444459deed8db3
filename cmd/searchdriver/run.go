package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvsearch/driver"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every configured algorithm over a random problem set",
		Args:  cobra.NoArgs,
		RunE:  runBenchmark,
	}

	def := driver.DefaultConfig()
	f := cmd.Flags()
	f.String("domain", def.Domain, "problem domain: graph or grid")
	f.Int("problems", def.Problems, "number of random problems")
	f.Int("nodes", def.Nodes, "nodes per problem graph, or minimum cells per maze")
	f.Float64("density", def.Density, "edge density in [0,1] (graph)")
	f.Float64("walls", def.Walls, "wall probability in [0,1) (grid)")
	f.Bool("uniform-costs", def.UniformCosts, "use cost 1 for every transition")
	f.Int64("seed", def.Seed, "seed of the first problem (problem i uses seed+i)")
	f.StringSlice("algorithms", def.Algorithms, "algorithms to run: bfs,ucs,dfs,dls,ids,astar")
	f.Int("depth-limit", def.DepthLimit, "depth limit of dls")
	f.Int("max-deepening", def.MaxDeepening, "cap on the ids depth limit (0 = none)")
	f.Int("parallelism", def.Parallelism, "searches run at once")
	f.Bool("print-paths", def.PrintPaths, "print every solution path")
	f.String("log-level", def.Log.Level, "debug, info, warn or error")
	f.String("log-format", def.Log.Format, "text or json")
	f.String("metrics-file", def.MetricsFile, "write Prometheus metrics to this file")

	return cmd
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	// Flags are the last layer, so validate only after applying them.
	cfg, err := driver.ReadConfig(path)
	if err != nil {
		return err
	}
	if err = applyFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := driver.NewLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	set, err := driver.NewProblemSet(cfg)
	if err != nil {
		return err
	}

	runner := driver.NewRunner(cfg, set, driver.WithLogger(log))
	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout())
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(f *pflag.FlagSet, cfg *driver.Config) error {
	var err error
	f.Visit(func(fl *pflag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "domain":
			cfg.Domain, err = f.GetString(fl.Name)
		case "problems":
			cfg.Problems, err = f.GetInt(fl.Name)
		case "nodes":
			cfg.Nodes, err = f.GetInt(fl.Name)
		case "density":
			cfg.Density, err = f.GetFloat64(fl.Name)
		case "walls":
			cfg.Walls, err = f.GetFloat64(fl.Name)
		case "uniform-costs":
			cfg.UniformCosts, err = f.GetBool(fl.Name)
		case "seed":
			cfg.Seed, err = f.GetInt64(fl.Name)
		case "algorithms":
			cfg.Algorithms, err = f.GetStringSlice(fl.Name)
		case "depth-limit":
			cfg.DepthLimit, err = f.GetInt(fl.Name)
		case "max-deepening":
			cfg.MaxDeepening, err = f.GetInt(fl.Name)
		case "parallelism":
			cfg.Parallelism, err = f.GetInt(fl.Name)
		case "print-paths":
			cfg.PrintPaths, err = f.GetBool(fl.Name)
		case "log-level":
			cfg.Log.Level, err = f.GetString(fl.Name)
		case "log-format":
			cfg.Log.Format, err = f.GetString(fl.Name)
		case "metrics-file":
			cfg.MetricsFile, err = f.GetString(fl.Name)
		}
	})

	return err
}
