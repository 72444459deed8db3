// SPDX-License-Identifier: MIT
// Package: lvsearch/driver
//
// Package driver compares the search algorithms on a set of random
// problems and reports expansions, path lengths, costs and timings.
// Problems are random directed graphs (domain "graph") or random square
// mazes (domain "grid").
//
// Flow:
//  1. LoadConfig(path): defaults, then the YAML file, then LVSEARCH_*
//     environment overrides, then validation. ReadConfig stops before
//     validation so the CLI can overlay its flags first.
//  2. NewProblemSet(cfg): cfg.Problems random problems (seed cfg.Seed+i).
//     A graph is searched from node 0 to node cfg.Nodes-1, a maze from its
//     top left to its bottom right corner.
//  3. NewRunner(cfg, set, opts...).Run(ctx): every algorithm over every
//     problem, cfg.Parallelism searches at a time.
//  4. Report.Write(w): per-problem blocks and per-algorithm averages.
//
// Unbounded depth-first searches (dfs, ids) are skipped on problems whose
// goal is unreachable, since they would enumerate every simple path.
//
// Metrics (private registry, optionally written to cfg.MetricsFile):
//
//	lvsearch_expanded_states_total{algorithm}
//	lvsearch_searches_total{algorithm,outcome}
//	lvsearch_path_cost{algorithm}
//	lvsearch_search_duration_seconds{algorithm}
//
// Errors: ErrInvalidConfig, ErrUnknownDomain, ErrUnknownAlgorithm.
package driver
