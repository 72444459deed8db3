package gridgraph

import (
	"fmt"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Neighbor order is fixed, so successor order is deterministic.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	threshold := opts.LandThreshold
	if threshold < 1 {
		threshold = 1
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   threshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsOpen reports whether (x,y) is in bounds and not a wall.
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the open cells adjacent to p, in NeighborOffsets order.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		if nx, ny := p.X+d[0], p.Y+d[1]; gg.IsOpen(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}

	return out
}

// Adjacent reports whether b is one move from a under gg.Conn.
func (gg *GridGraph) Adjacent(a, b Point) bool {
	for _, d := range gg.neighborOffsets {
		if a.X+d[0] == b.X && a.Y+d[1] == b.Y {
			return true
		}
	}

	return false
}

// MinCost returns the smallest entry cost of any open cell, or 0 if every
// cell is a wall.
func (gg *GridGraph) MinCost() int {
	best := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if v := gg.CellValues[y][x]; v >= gg.LandThreshold && (best == 0 || v < best) {
				best = v
			}
		}
	}

	return best
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// checkOpen validates that p is an open cell.
func (gg *GridGraph) checkOpen(p Point) error {
	if !gg.InBounds(p.X, p.Y) {
		return fmt.Errorf("%v in %dx%d grid: %w", p, gg.Width, gg.Height, ErrOutOfBounds)
	}
	if !gg.IsOpen(p.X, p.Y) {
		return fmt.Errorf("%v: %w", p, ErrBlocked)
	}

	return nil
}

// String renders the grid one row per line: '#' for walls, the cost digit
// for open cells (costs above 9 print as '+').
func (gg *GridGraph) String() string {
	var b strings.Builder
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			switch {
			case v < gg.LandThreshold:
				b.WriteByte('#')
			case v > 9:
				b.WriteByte('+')
			default:
				b.WriteByte(byte('0' + v))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
