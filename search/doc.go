// Package search provides a generic best-first graph-search engine with two
// algorithms: uniform-cost search (Dijkstra) and heuristic-guided search (A*).
//
// Overview:
//
//   - The graph is never materialised: callers supply start nodes, a successor
//     function, a goal predicate and, for A*, a heuristic. Neighbors are
//     generated lazily, only for nodes that are actually expanded.
//   - A min-priority frontier always yields the cheapest candidate; a
//     best-known-path table keeps, for every discovered node, the cheapest
//     (parent, cost) pair seen so far.
//   - When a goal is popped, the path is rebuilt by walking parent pointers back
//     to one of the start nodes.
//
// Key features:
//
//   - Multi-source: any number of start nodes, all at cost zero.
//   - Goal predicate instead of a single target: the first satisfying node wins.
//   - Any comparable node type and any numeric cost type via generics.
//   - Closures or interfaces: Dijkstra/AStar take functions,
//     SolveDijkstra/SolveAStar take Problem/InformedProblem values.
//   - Functional options: WithSkipStale, WithMaxExpansions, WithContext, WithStats.
//
// Stale frontier entries:
//
//   - There is no decrease-key. A cheaper path to a queued node pushes a second
//     entry; the older one stays queued. By default a stale entry is processed
//     again, which is harmless because relaxation only ever accepts strictly
//     cheaper costs. WithSkipStale discards such entries on pop instead.
//
// Tie-breaking:
//
//   - Equal priorities pop the larger accumulated cost first (for A* that is the
//     entry presumed closer to a goal), then in insertion order. Which of several
//     equal-cost optimal paths is returned is therefore deterministic but
//     implementation-defined.
//
// Error handling:
//
//   - "No path" is a value: ok == false.
//   - Negative costs or inadmissible heuristics are not detected; results may be
//     non-optimal.
//   - Internal invariant breaches panic with a value wrapping ErrInvariant.
//   - WithMaxExpansions(n) with n < 0 panics with ErrBadMaxExpansions.
//
// Concurrency:
//
//   - Each call owns its frontier and table; concurrent calls never interact as
//     long as the callbacks do not share mutable state. Callbacks run on the
//     calling goroutine.
//
// Complexity:
//
//   - Time:  O((V + E) log E) over the explored region.
//   - Space: O(V + E).
//
// Example:
//
//	path, cost, ok := search.Dijkstra(
//	    []string{"A"},
//	    func(n string) []search.Edge[string, int] { return graph[n] },
//	    func(n string) bool { return n == "L" },
//	)
package search
