package search

// AStar runs heuristic-guided best-first search from every node in starts.
//
// It follows Dijkstra with one difference: a relaxed neighbor is queued at
// priority cost+heuristic(neighbor) instead of cost. The accumulated cost stored
// with each entry, not its estimate, drives relaxation, and the returned cost is
// the true accumulated cost of the reached goal. Start nodes are queued at
// priority zero. Among entries with equal estimate the one with the larger
// accumulated cost pops first.
//
// The returned cost is minimal when heuristic is admissible (never overestimates
// the remaining cost). A consistent heuristic also avoids re-expanding nodes.
// Neither property is checked: a bad heuristic degrades the answer, not termination
// on finite graphs.
//
// Complexity: as Dijkstra in the worst case (heuristic == 0); typically far fewer
// expansions with an informative heuristic.
func AStar[N comparable, C Cost](
	starts []N,
	successors SuccessorFunc[N, C],
	heuristic HeuristicFunc[N, C],
	isGoal GoalFunc[N],
	opts ...Option,
) (path []N, cost C, ok bool) {
	if heuristic == nil {
		heuristic = func(N) C {
			var zero C
			return zero
		}
	}
	r := newRunner(successors, heuristic, isGoal, opts, len(starts))

	return r.run(starts)
}

// SolveAStar is AStar driven by an InformedProblem value instead of closures.
func SolveAStar[N comparable, C Cost](
	p InformedProblem[N, C],
	starts []N,
	opts ...Option,
) (path []N, cost C, ok bool) {
	return AStar(starts, p.Successors, p.Heuristic, p.IsGoal, opts...)
}
