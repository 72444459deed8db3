package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// roads is a small explicit directed graph of named places. Successors are
// returned in insertion order.
type roads struct {
	adj   map[string][]road
	start string
	goal  string
}

type road struct {
	to   string
	cost int
}

func newRoads(start, goal string) *roads {
	return &roads{adj: map[string][]road{}, start: start, goal: goal}
}

// add inserts the directed road u→v.
func (r *roads) add(u, v string, cost int) *roads {
	r.adj[u] = append(r.adj[u], road{to: v, cost: cost})

	return r
}

// at returns the place called name.
func (r *roads) at(name string) place { return place{r: r, name: name} }

// problem searches from the start place with the implicit goal test.
func (r *roads) problem() *search.Problem[place] {
	return search.NewProblem(r.at(r.start))
}

type place struct {
	r    *roads
	name string
}

func (p place) Successors() []place {
	out := make([]place, 0, len(p.r.adj[p.name]))
	for _, e := range p.r.adj[p.name] {
		out = append(out, p.r.at(e.to))
	}

	return out
}

func (p place) TransitionCost(next place) int {
	for _, e := range p.r.adj[p.name] {
		if e.to == next.name {
			return e.cost
		}
	}
	panic(fmt.Sprintf("no road %s→%s", p.name, next.name))
}

func (p place) IsGoal() bool   { return p.name == p.r.goal }
func (p place) IsStart() bool  { return p.name == p.r.start }
func (p place) String() string { return p.name }

// names projects a path onto place names.
func names(path []place) []string {
	if path == nil {
		return nil
	}
	out := make([]string, len(path))
	for i, p := range path {
		out[i] = p.name
	}

	return out
}

// triangle is 0→1 (1), 1→2 (1), 0→2 (5): the direct edge has fewer hops but
// a higher cost than the detour.
func triangle() *roads {
	return newRoads("0", "2").
		add("0", "1", 1).
		add("1", "2", 1).
		add("0", "2", 5)
}

// chain is a→b→c→d→e with unit costs.
func chain() *roads {
	return newRoads("a", "e").
		add("a", "b", 1).
		add("b", "c", 1).
		add("c", "d", 1).
		add("d", "e", 1)
}
