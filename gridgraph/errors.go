package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBlocked indicates a start or goal placed on a wall.
	ErrBlocked = errors.New("gridgraph: cell is a wall")
	// ErrNotAdjacent indicates a transition between cells that are not neighbors.
	ErrNotAdjacent = errors.New("gridgraph: cells are not adjacent")
	// ErrBadMaze indicates malformed maze text.
	ErrBadMaze = errors.New("gridgraph: malformed maze")
	// ErrInvalidWalls indicates a wall ratio outside [0,1).
	ErrInvalidWalls = errors.New("gridgraph: wall ratio must be in [0,1)")
	// ErrNeedRandSource indicates Random was called without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("gridgraph: random source required (use WithSeed or WithRand)")
)
