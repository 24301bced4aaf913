// Package digraph defines the in-memory weighted Graph used to feed the search
// engine, its construction options and sentinel errors.
//
// All Graph methods are guarded by a single sync.RWMutex: mutations take the
// write lock, queries the read lock, so concurrent searches may share one Graph.
//
// Errors:
//
//	ErrNegativeWeight  - an edge weight below zero was supplied.
//	ErrVertexNotFound  - a query referenced a vertex absent from the graph.
//	ErrNoPath          - no goal vertex is reachable from the start vertices.
//	ErrNilGraph        - a nil *Graph was passed to a path query.
package digraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/bestfirst/search"
)

// Sentinel errors for digraph operations.
var (
	// ErrNegativeWeight indicates AddEdge received a negative weight.
	ErrNegativeWeight = errors.New("digraph: negative edge weight")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrNoPath indicates that no goal vertex is reachable.
	ErrNoPath = errors.New("digraph: no path between the given vertices")

	// ErrNilGraph indicates a nil *Graph was passed to a path query.
	ErrNilGraph = errors.New("digraph: graph is nil")
)

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
}

// WithDirected sets whether new edges are one-way (true, the default) or
// mirrored in both directions (false).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// Graph is a weighted adjacency list over comparable vertex IDs.
//
// Vertices are kept in insertion order and every adjacency list preserves the
// order edges were added, so Successors is deterministic.
type Graph[N comparable, C search.Cost] struct {
	mu       sync.RWMutex
	directed bool
	order    []N                       // vertices in insertion order
	adj      map[N][]search.Edge[N, C] // outgoing edges per vertex
	edges    int                       // number of AddEdge calls accepted
}

// NewGraph returns an empty Graph configured by opts.
func NewGraph[N comparable, C search.Cost](opts ...GraphOption) *Graph[N, C] {
	cfg := graphConfig{directed: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, C]{
		directed: cfg.directed,
		adj:      make(map[N][]search.Edge[N, C]),
	}
}
