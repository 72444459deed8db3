package gridgraph

// ConnectedComponents finds all contiguous regions of open cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order, and components appear in row-major
// order of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()

	return comps
}

// Reachable reports whether b can be reached from a. Moves are symmetric,
// so this is a same-component test. Walls and out-of-bounds cells reach
// nothing.
func (gg *GridGraph) Reachable(a, b Point) bool {
	if !gg.IsOpen(a.X, a.Y) || !gg.IsOpen(b.X, b.Y) {
		return false
	}
	labels, _ := gg.label()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// label assigns every open cell its component number (walls get -1).
func (gg *GridGraph) label() ([]int, [][]int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) {
				continue // wall
			}
			i0 := gg.index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to collect component
			id := len(comps)
			queue := []int{i0}
			labels[i0] = id

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsOpen(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return labels, comps
}
