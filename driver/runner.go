package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/search"
)

// Runner runs every configured algorithm over a problem set.
//
// Searches of one algorithm run concurrently, at most Config.Parallelism at
// a time; each search is itself single-threaded. Algorithms run one after
// the other so their timings do not interfere.
type Runner struct {
	cfg      Config
	problems []Problem
	log      *slog.Logger
	metrics  *Metrics
	runID    string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. A nil logger keeps the default, which discards.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics records into m instead of a runner-owned Metrics.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) {
		if id != "" {
			r.runID = id
		}
	}
}

// NewRunner returns a Runner over problems. cfg should have passed Validate.
func NewRunner(cfg Config, problems []Problem, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:      cfg,
		problems: problems,
		log:      slog.New(slog.DiscardHandler),
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics()
	}

	return r
}

// RunID identifies the run in logs and in the report.
func (r *Runner) RunID() string { return r.runID }

// Metrics returns the collectors the runner records into.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// Run executes the benchmark. It stops at the first search error or when
// ctx is cancelled. With Config.MetricsFile set, the metrics are written
// after the last algorithm.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	log := r.log.With(slog.String("run_id", r.runID))
	log.Info("run started",
		slog.String("domain", r.cfg.Domain),
		slog.Int("problems", len(r.problems)),
		slog.Any("algorithms", r.cfg.Algorithms),
		slog.Int("parallelism", r.cfg.Parallelism),
	)

	report := &Report{RunID: r.runID, Domain: r.cfg.Domain}
	begin := time.Now()
	for _, name := range r.cfg.Algorithms {
		sec, err := r.runAlgorithm(ctx, log, name)
		if err != nil {
			log.Error("run aborted", slog.String("algorithm", name), slog.Any("error", err))
			return nil, err
		}
		report.Sections = append(report.Sections, sec)
	}
	report.Elapsed = time.Since(begin)

	if r.cfg.MetricsFile != "" {
		if err := r.metrics.WriteFile(r.cfg.MetricsFile); err != nil {
			return report, fmt.Errorf("write metrics: %w", err)
		}
		log.Debug("metrics written", slog.String("path", r.cfg.MetricsFile))
	}
	log.Info("run finished", slog.Duration("elapsed", report.Elapsed))

	return report, nil
}

func (r *Runner) runAlgorithm(ctx context.Context, log *slog.Logger, name string) (Section, error) {
	alg, ok := algorithms[name]
	if !ok {
		return Section{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	title := alg.title
	if name == search.AlgorithmDepthLimitedDFS {
		title = fmt.Sprintf("%s (limit %d)", title, r.cfg.DepthLimit)
	}

	var counter search.Counter
	outcomes := make([]Outcome, len(r.problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i, p := range r.problems {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			plog := log.With(slog.Int("problem", p.Index+1))

			o := Outcome{Problem: p.Index + 1}
			if alg.exhaustive && !p.Solvable {
				o.Skipped = true
				outcomes[i] = o
				r.metrics.observe(name, o)
				plog.Debug("search skipped", slog.String("algorithm", name))
				return nil
			}

			o, err := r.search(name, p, o, &counter, plog)
			outcomes[i] = o
			r.metrics.observe(name, o)
			if err != nil {
				return fmt.Errorf("%s problem %d: %w", name, p.Index+1, err)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Section{}, err
	}

	sec := newSection(name, title, outcomes, counter.Load())
	log.Info("algorithm finished",
		slog.String("algorithm", name),
		slog.Int("solved", sec.Solved),
		slog.Int("skipped", sec.Skipped),
		slog.Float64("avg_expanded", sec.AvgExpanded),
		slog.Float64("avg_cost", sec.AvgCost),
		slog.Duration("duration", sec.Duration),
	)

	return sec, nil
}

// search runs one invocation and fills o from its result.
func (r *Runner) search(name string, p Problem, o Outcome, counter *search.Counter, log *slog.Logger) (Outcome, error) {
	if p.solve == nil {
		o.err = fmt.Errorf("problem %d: not built by NewProblemSet", p.Index+1)
		return o, o.err
	}
	start := time.Now()
	sol, err := p.solve(name, r.cfg, search.WithCounter(counter), search.WithLogger(log))
	o.Duration = time.Since(start)
	if err != nil {
		o.err = err
		return o, err
	}

	o.Found = sol.found
	o.Expanded = sol.expanded
	o.Length = sol.length
	o.Cost = sol.cost
	o.Path = sol.path

	return o, nil
}
