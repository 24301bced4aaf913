// Package bestfirst is a generic best-first search toolkit: uniform-cost
// search (Dijkstra) and A* over any comparable node type with any numeric,
// non-negative, additive cost.
//
// What is in the box?
//
//	search/     — the engine: Dijkstra, AStar, their Problem-interface forms,
//	              options (stale-skip, expansion budget, context, stats)
//	digraph/    — a thread-safe weighted adjacency list that feeds the engine
//	gridgraph/  — 2D grids as graphs: routing, islands, text mazes
//	cmd/bestfirst — CLI over text mazes and YAML graphs, with batch mode
//
// The engine never materialises the graph. A search is described by three
// functions:
//
//	successors(n) []Edge   // outgoing (neighbor, step cost) pairs
//	isGoal(n) bool         // tested when a node is popped, not when pushed
//	heuristic(n) C         // A* only; must not overestimate the remaining cost
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     1
//	    │     │
//	    C──1──D
//
//	search.Dijkstra([]string{"A"}, succ, func(n string) bool { return n == "D" })
//	// → [A B D], 2, true
//
//	go get github.com/katalvlaran/bestfirst
package bestfirst
