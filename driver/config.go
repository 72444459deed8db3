package driver

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/search"
)

// EnvPrefix prefixes every environment override, e.g. LVSEARCH_NODES.
const EnvPrefix = "LVSEARCH_"

// Sentinel errors.
var (
	// ErrInvalidConfig is returned when a configuration value is out of range
	// or cannot be parsed.
	ErrInvalidConfig = errors.New("driver: invalid config")

	// ErrUnknownDomain is returned for a domain other than graph or grid.
	ErrUnknownDomain = errors.New("driver: unknown domain")

	// ErrUnknownAlgorithm is returned for an algorithm name outside
	// bfs, ucs, dfs, dls, ids, astar.
	ErrUnknownAlgorithm = errors.New("driver: unknown algorithm")
)

// Problem domains.
const (
	// DomainGraph samples random directed graphs.
	DomainGraph = "graph"
	// DomainGrid samples random square mazes.
	DomainGrid = "grid"
)

// Config describes one benchmark run: the random problem set, the
// algorithms to compare, and how to report.
type Config struct {
	// Domain selects the kind of problem: DomainGraph or DomainGrid.
	Domain string `yaml:"domain"`

	// Problems is the number of random problems in the set.
	Problems int `yaml:"problems" validate:"min=1"`

	// Nodes is the node count of every problem graph. A grid problem is the
	// smallest square maze with at least Nodes cells.
	Nodes int `yaml:"nodes" validate:"min=1"`

	// Density is the target edge density in [0,1] of graph problems.
	Density float64 `yaml:"density" validate:"gte=0,lte=1"`

	// Walls is the wall probability in [0,1) of grid problems.
	Walls float64 `yaml:"walls" validate:"gte=0,lt=1"`

	// UniformCosts makes every transition cost 1. Otherwise graph edges cost
	// 1..20 and grid cells 1..9.
	UniformCosts bool `yaml:"uniform_costs"`

	// Seed seeds problem i with Seed+i.
	Seed int64 `yaml:"seed"`

	// Algorithms lists the searches to run, in report order.
	Algorithms []string `yaml:"algorithms" validate:"min=1,unique"`

	// DepthLimit is the limit of the dls algorithm.
	DepthLimit int `yaml:"depth_limit" validate:"min=0"`

	// MaxDeepening caps iterative deepening; 0 means no cap.
	MaxDeepening int `yaml:"max_deepening" validate:"min=0"`

	// Parallelism bounds how many searches run at once.
	Parallelism int `yaml:"parallelism" validate:"min=1"`

	// PrintPaths adds every solution path to the report.
	PrintPaths bool `yaml:"print_paths"`

	// Log configures the slog handler.
	Log LogConfig `yaml:"log"`

	// MetricsFile, if set, receives the Prometheus text exposition after a run.
	MetricsFile string `yaml:"metrics_file"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig mirrors the classic comparison: ten 100-node problems with
// density 0.1 and costs in [1,20].
func DefaultConfig() Config {
	return Config{
		Domain:       DomainGraph,
		Problems:     10,
		Nodes:        100,
		Density:      0.1,
		Walls:        0.25,
		UniformCosts: false,
		Seed:         1,
		Algorithms: []string{
			search.AlgorithmBFS,
			search.AlgorithmUniformCost,
			search.AlgorithmDFS,
			search.AlgorithmIterativeDeepening,
			search.AlgorithmAStar,
		},
		DepthLimit:   4,
		MaxDeepening: 0,
		Parallelism:  4,
		PrintPaths:   false,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration with priority: env > file > defaults,
// then validates it. An empty path skips the file; a missing file is an error.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return cfg, err
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ReadConfig layers defaults, the file at path and the environment like
// LoadConfig but does not validate, so a caller can apply further
// overrides (command-line flags) first and call Validate once at the end.
// Only unreadable or unparsable input is an error here.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return nil
}

// loadConfigFromEnv applies LVSEARCH_* overrides. Lists are comma-separated.
func loadConfigFromEnv(cfg *Config) error {
	var errs []error
	env := func(name string) (string, bool) {
		v, ok := os.LookupEnv(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	setInt := func(name string, dst *int) {
		if v, ok := env(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, name, v))
				return
			}
			*dst = n
		}
	}
	setBool := func(name string, dst *bool) {
		if v, ok := env(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, name, v))
				return
			}
			*dst = b
		}
	}

	setInt("PROBLEMS", &cfg.Problems)
	setInt("NODES", &cfg.Nodes)
	setInt("DEPTH_LIMIT", &cfg.DepthLimit)
	setInt("MAX_DEEPENING", &cfg.MaxDeepening)
	setInt("PARALLELISM", &cfg.Parallelism)
	setBool("UNIFORM_COSTS", &cfg.UniformCosts)
	setBool("PRINT_PATHS", &cfg.PrintPaths)

	if v, ok := env("DENSITY"); ok {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %sDENSITY=%q", ErrInvalidConfig, EnvPrefix, v))
		} else {
			cfg.Density = d
		}
	}
	if v, ok := env("WALLS"); ok {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %sWALLS=%q", ErrInvalidConfig, EnvPrefix, v))
		} else {
			cfg.Walls = w
		}
	}
	if v, ok := env("DOMAIN"); ok {
		cfg.Domain = strings.ToLower(v)
	}
	if v, ok := env("SEED"); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %sSEED=%q", ErrInvalidConfig, EnvPrefix, v))
		} else {
			cfg.Seed = s
		}
	}
	if v, ok := env("ALGORITHMS"); ok {
		cfg.Algorithms = splitList(v)
	}
	if v, ok := env("LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := env("LOG_FORMAT"); ok {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v, ok := env("METRICS_FILE"); ok {
		cfg.MetricsFile = v
	}

	return errors.Join(errs...)
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}

	return out
}

var validate = validator.New()

// Validate checks every field. An unknown domain wraps ErrUnknownDomain,
// unknown algorithm names wrap ErrUnknownAlgorithm, and every other
// violation wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Domain != DomainGraph && c.Domain != DomainGrid {
		return fmt.Errorf("%w: %q", ErrUnknownDomain, c.Domain)
	}
	for _, name := range c.Algorithms {
		if !isAlgorithm(name) {
			return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
