package digraph

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/search"
)

// ShortestPath returns the cheapest path from → to and its cost using
// uniform-cost search. Extra search options (budget, context, stats) are
// forwarded to the engine.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. from and to must exist (ErrVertexNotFound).
//
// Returns ErrNoPath when to is unreachable or the search was interrupted.
func ShortestPath[N comparable, C search.Cost](g *Graph[N, C], from, to N, opts ...search.Option) ([]N, C, error) {
	return ShortestPathToAny(g, []N{from}, []N{to}, opts...)
}

// ShortestPathToAny runs a multi-source search from every vertex in starts and
// stops at the first popped vertex contained in goals.
// Validation and errors match ShortestPath; empty starts or goals yield ErrNoPath.
func ShortestPathToAny[N comparable, C search.Cost](g *Graph[N, C], starts, goals []N, opts ...search.Option) ([]N, C, error) {
	var zero C
	if g == nil {
		return nil, zero, ErrNilGraph
	}
	for _, s := range starts {
		if !g.HasVertex(s) {
			return nil, zero, fmt.Errorf("%w: start %v", ErrVertexNotFound, s)
		}
	}
	goalSet := make(map[N]struct{}, len(goals))
	for _, v := range goals {
		if !g.HasVertex(v) {
			return nil, zero, fmt.Errorf("%w: goal %v", ErrVertexNotFound, v)
		}
		goalSet[v] = struct{}{}
	}

	path, cost, ok := search.Dijkstra(starts, g.Successors, func(n N) bool {
		_, hit := goalSet[n]
		return hit
	}, opts...)
	if !ok {
		return nil, zero, fmt.Errorf("%w: %v → %v", ErrNoPath, starts, goals)
	}

	return path, cost, nil
}
