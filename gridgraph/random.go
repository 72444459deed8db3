package gridgraph

import (
	"fmt"
	"math"
	"math/rand"
)

// Option configures Random.
type Option func(*randomConfig)

type randomConfig struct {
	rng     *rand.Rand
	maxCost int
	conn    Connectivity
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgraph: WithRand(nil)")
	}

	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithMaxCost draws open-cell costs uniformly from [1, n] instead of 1.
// Panics if n < 1 or n > 9 (costs must print as one digit).
func WithMaxCost(n int) Option {
	if n < 1 || n > 9 {
		panic(fmt.Sprintf("gridgraph: WithMaxCost(%d) must be in [1,9]", n))
	}

	return func(c *randomConfig) {
		c.maxCost = n
	}
}

// WithConnectivity selects Conn4 (default) or Conn8 moves.
func WithConnectivity(conn Connectivity) Option {
	return func(c *randomConfig) {
		c.conn = conn
	}
}

// Random samples a width×height maze. Each cell except the two corners
// (0,0) and (width-1,height-1) is a wall with probability walls; open cells
// cost 1, or a uniform draw from [1, maxCost] with WithMaxCost. Cells are
// sampled in row-major order, so a fixed seed gives a fixed maze. The corners
// need not be connected; use Reachable.
func Random(width, height int, walls float64, opts ...Option) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Random(%d, %d): %w", width, height, ErrEmptyGrid)
	}
	if walls < 0 || walls >= 1 || math.IsNaN(walls) {
		return nil, fmt.Errorf("Random: walls=%g: %w", walls, ErrInvalidWalls)
	}
	cfg := randomConfig{maxCost: 1, conn: Conn4}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil && width*height > 1 {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
		for x := range values[y] {
			corner := (x == 0 && y == 0) || (x == width-1 && y == height-1)
			if !corner && cfg.rng.Float64() < walls {
				continue // wall
			}
			values[y][x] = 1
			if cfg.maxCost > 1 && cfg.rng != nil {
				values[y][x] += cfg.rng.Intn(cfg.maxCost)
			}
		}
	}

	return NewGridGraph(values, GridOptions{LandThreshold: 1, Conn: cfg.conn})
}
