package digraph

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/search"
)

// Directed reports whether new edges are one-way.
func (g *Graph[N, C]) Directed() bool {
	return g.directed
}

// AddVertex inserts id if absent. Re-adding is a no-op.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (g *Graph[N, C]) AddVertex(id N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(id)
}

// ensure adds id without locking. Callers must hold the write lock.
func (g *Graph[N, C]) ensure(id N) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
}

// AddEdge adds an edge from → to with weight w, auto-adding both vertices.
// Undirected graphs also store the mirror edge to → from.
// Parallel edges are kept; the search simply sees both.
// Thread-safe: acquires a write lock.
//
// Returns ErrNegativeWeight (wrapped with the offending edge) if w < 0.
//
// Complexity: O(1) amortized.
func (g *Graph[N, C]) AddEdge(from, to N, w C) error {
	var zero C
	if w < zero {
		return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, from, to, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(from)
	g.ensure(to)
	g.adj[from] = append(g.adj[from], search.Edge[N, C]{To: to, Cost: w})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], search.Edge[N, C]{To: from, Cost: w})
	}
	g.edges++

	return nil
}

// HasVertex reports whether id is present.
// Thread-safe: acquires a read lock.
func (g *Graph[N, C]) HasVertex(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]
	return ok
}

// Vertices returns all vertex IDs in insertion order.
// Thread-safe: acquires a read lock. The slice is a copy.
func (g *Graph[N, C]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[N, C]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of accepted AddEdge calls; a mirrored undirected
// edge counts once.
func (g *Graph[N, C]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Successors returns a copy of the outgoing edges of id in insertion order.
// Unknown vertices have no successors. The signature matches
// search.SuccessorFunc, so a method value can be handed straight to the engine.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg(id))
func (g *Graph[N, C]) Successors(id N) []search.Edge[N, C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.adj[id]
	if len(edges) == 0 {
		return nil
	}
	out := make([]search.Edge[N, C], len(edges))
	copy(out, edges)

	return out
}
