package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/search"
)

// Heuristic returns an admissible A* estimate towards goal: the grid metric
// matching gg.Conn (Manhattan for Conn4, Chebyshev for Conn8) scaled by the
// cheapest land value, since every step enters at least one land cell.
func (gg *GridGraph) Heuristic(goal Point) search.HeuristicFunc[Point, int] {
	unit := gg.minLand
	if unit < 0 {
		unit = 0
	}
	if gg.Conn == Conn8 {
		return func(p Point) int { return p.Chebyshev(goal) * unit }
	}
	return func(p Point) int { return p.Manhattan(goal) * unit }
}

// ShortestPath returns the cheapest walk over land cells from → to using A*.
// Entering a cell costs its value; the start cell is free.
//
// Preconditions and validation (in order):
//  1. from and to must be inside the grid (ErrOutOfBounds).
//  2. from and to must be land (ErrBlocked).
//  3. land values must be non-negative (ErrNegativeCost).
//
// Returns ErrNoPath when to is unreachable or the search was interrupted.
// Extra search options are forwarded to the engine.
func (gg *GridGraph) ShortestPath(from, to Point, opts ...search.Option) ([]Point, int, error) {
	for _, p := range []Point{from, to} {
		if !gg.Contains(p) {
			return nil, 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, gg.Width, gg.Height)
		}
		if !gg.Passable(p) {
			return nil, 0, fmt.Errorf("%w: %v has value %d", ErrBlocked, p, gg.Value(p))
		}
	}
	if gg.minLand < 0 {
		return nil, 0, fmt.Errorf("%w: minimum land value %d", ErrNegativeCost, gg.minLand)
	}

	path, cost, ok := search.AStar([]Point{from}, gg.Successors, gg.Heuristic(to),
		func(p Point) bool { return p == to }, opts...)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v → %v", ErrNoPath, from, to)
	}
	return path, cost, nil
}
