package gridgraph

import (
	"fmt"
	"strings"
)

// ParseMaze builds a grid from text, one row per line:
//
//	#        wall
//	.        open, cost 1
//	1..9     open, that cost
//	S / G    start / goal, cost 1 (exactly one of each)
//
// Blank lines are ignored. Returns ErrBadMaze for unknown characters or a
// missing or repeated S/G, ErrNonRectangular for ragged rows.
func ParseMaze(text string, conn Connectivity) (gg *GridGraph, start, goal Point, err error) {
	var (
		rows         [][]int
		seenS, seenG bool
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		y := len(rows)
		row := make([]int, len(line))
		for x, ch := range []byte(line) {
			switch {
			case ch == '#':
				row[x] = 0
			case ch == '.':
				row[x] = 1
			case ch >= '1' && ch <= '9':
				row[x] = int(ch - '0')
			case ch == 'S' && !seenS:
				row[x], start, seenS = 1, Point{X: x, Y: y}, true
			case ch == 'G' && !seenG:
				row[x], goal, seenG = 1, Point{X: x, Y: y}, true
			default:
				return nil, start, goal, fmt.Errorf("%w: %q at (%d,%d)", ErrBadMaze, ch, x, y)
			}
		}
		rows = append(rows, row)
	}
	if !seenS || !seenG {
		return nil, start, goal, fmt.Errorf("%w: need exactly one S and one G", ErrBadMaze)
	}

	gg, err = NewGridGraph(rows, GridOptions{LandThreshold: 1, Conn: conn})
	if err != nil {
		return nil, start, goal, fmt.Errorf("ParseMaze: %w", err)
	}

	return gg, start, goal, nil
}
