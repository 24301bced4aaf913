package search

// Dijkstra runs uniform-cost search from every node in starts and returns the
// path to the first popped node satisfying isGoal together with its cost.
//
// Behaviour:
//  1. Every start is recorded at cost zero without parent and queued at priority zero.
//  2. The cheapest queued entry is popped; if isGoal accepts it the search ends.
//  3. Otherwise each (neighbor, edgeCost) from successors is relaxed: when the
//     neighbor is unknown or cost+edgeCost is strictly cheaper than its record,
//     the record is replaced and the neighbor is queued at that cost.
//  4. Repeat until a goal is popped or the frontier is empty.
//
// Returns:
//
//   - path: start … goal inclusive; a single node when a start is itself a goal.
//   - cost: the minimum accumulated cost to the reached goal.
//   - ok:   false when starts is empty or no reachable node satisfies isGoal.
//
// Edge costs must be non-negative. An infinite successor space with no reachable
// goal never terminates unless WithMaxExpansions or WithContext is supplied.
//
// Complexity:
//
//   - Time:  O((V + E) log E) heap operations over the explored region.
//   - Space: O(V + E) for the path table and the lazily-updated frontier.
func Dijkstra[N comparable, C Cost](
	starts []N,
	successors SuccessorFunc[N, C],
	isGoal GoalFunc[N],
	opts ...Option,
) (path []N, cost C, ok bool) {
	r := newRunner(successors, nil, isGoal, opts, len(starts))

	return r.run(starts)
}

// SolveDijkstra is Dijkstra driven by a Problem value instead of closures.
func SolveDijkstra[N comparable, C Cost](
	p Problem[N, C],
	starts []N,
	opts ...Option,
) (path []N, cost C, ok bool) {
	return Dijkstra(starts, p.Successors, p.IsGoal, opts...)
}
