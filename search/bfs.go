package search

// BFS runs breadth-first search.
//
// The frontier is FIFO and the goal test is applied when a successor is
// generated. States are marked visited at generation time, so each state
// enters the frontier at most once. Because nodes leave the frontier in
// nondecreasing depth, the first solution uses the fewest transitions; it
// is not necessarily the cheapest.
//
// Complexity: O(V + E) expansions and successor checks.
func (p *Problem[S]) BFS(opts ...Option) (Result[S], error) {
	r := p.newRun(AlgorithmBFS, resolveOptions(opts))

	root := r.tree.Root(p.start)
	if p.IsGoal(p.start) {
		return r.finish(root, true), nil
	}

	visited := map[S]struct{}{p.start: {}}
	queue := []NodeID{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, e := range r.expand(cur) {
			if _, seen := visited[e]; seen {
				continue
			}
			id, err := r.tree.Child(e, cur)
			if err != nil {
				return r.fail(err)
			}
			if p.IsGoal(e) {
				return r.finish(id, true), nil
			}
			visited[e] = struct{}{}
			queue = append(queue, id)
		}
	}

	return r.finish(NoParent, false), nil
}
