package digraph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Generator errors.
var (
	// ErrTooFewVertices indicates a generator was asked for fewer vertices than it needs.
	ErrTooFewVertices = errors.New("digraph: too few vertices")
	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("digraph: probability must lie in [0,1]")
)

// WeightFn produces an edge weight from the generator's random source.
// It must be deterministic for a given seed and never return a negative value.
type WeightFn func(rng *rand.Rand) int64

// UnitWeight always yields 1.
func UnitWeight(_ *rand.Rand) int64 { return 1 }

// UniformWeight returns a WeightFn sampling uniformly in [lo, hi].
// Panics if lo < 0 or hi < lo.
func UniformWeight(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeight: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		return lo + rng.Int63n(hi-lo+1)
	}
}

// GenOption configures a generator.
type GenOption func(*genConfig)

type genConfig struct {
	seed     int64
	weightFn WeightFn
	directed bool
}

// WithSeed fixes the random source; the default seed is 1.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.seed = seed }
}

// WithWeightFn sets the edge weight policy; the default is UnitWeight.
func WithWeightFn(fn WeightFn) GenOption {
	return func(c *genConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithGenDirected chooses directed (the default) or undirected output.
func WithGenDirected(directed bool) GenOption {
	return func(c *genConfig) { c.directed = directed }
}

func newGenConfig(opts []GenOption) (genConfig, *rand.Rand) {
	cfg := genConfig{seed: 1, weightFn: UnitWeight, directed: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, rand.New(rand.NewSource(cfg.seed))
}

// Chain returns the path 0 → 1 → … → n-1.
// Returns ErrTooFewVertices if n < 1.
//
// Complexity: O(n).
func Chain(n int, opts ...GenOption) (*Graph[int, int64], error) {
	if n < 1 {
		return nil, fmt.Errorf("Chain: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg, rng := newGenConfig(opts)
	g := NewGraph[int, int64](WithDirected(cfg.directed))
	g.AddVertex(0)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i, cfg.weightFn(rng)); err != nil {
			return nil, fmt.Errorf("Chain: %w", err)
		}
	}

	return g, nil
}

// Lattice returns a rows×cols 4-neighbor lattice. Vertex r*cols+c sits at
// row r, column c; every orthogonal pair is linked both ways.
// Returns ErrTooFewVertices if rows or cols < 1.
//
// Complexity: O(rows·cols).
func Lattice(rows, cols int, opts ...GenOption) (*Graph[int, int64], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Lattice: %dx%d: %w", rows, cols, ErrTooFewVertices)
	}
	cfg, rng := newGenConfig(opts)
	g := NewGraph[int, int64]()
	link := func(u, v int) error {
		if err := g.AddEdge(u, v, cfg.weightFn(rng)); err != nil {
			return err
		}
		return g.AddEdge(v, u, cfg.weightFn(rng))
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			g.AddVertex(u)
			if c+1 < cols {
				if err := link(u, u+1); err != nil {
					return nil, fmt.Errorf("Lattice: %w", err)
				}
			}
			if r+1 < rows {
				if err := link(u, u+cols); err != nil {
					return nil, fmt.Errorf("Lattice: %w", err)
				}
			}
		}
	}

	return g, nil
}

// RandomSparse samples an Erdős–Rényi-like graph over vertices 0..n-1:
// every admissible pair gets an edge independently with probability p.
// Directed graphs try every ordered pair (i,j), i≠j; undirected ones every i<j.
// Trial order is fixed, so a seed fully determines the result.
//
// Returns ErrTooFewVertices if n < 1, ErrInvalidProbability if p ∉ [0,1].
//
// Complexity: O(n²).
func RandomSparse(n int, p float64, opts ...GenOption) (*Graph[int, int64], error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	cfg, rng := newGenConfig(opts)
	g := NewGraph[int, int64](WithDirected(cfg.directed))
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 0; i < n; i++ {
		j0 := 0
		if !cfg.directed {
			j0 = i + 1
		}
		for j := j0; j < n; j++ {
			if i == j || rng.Float64() >= p {
				continue
			}
			if err := g.AddEdge(i, j, cfg.weightFn(rng)); err != nil {
				return nil, fmt.Errorf("RandomSparse: %w", err)
			}
		}
	}

	return g, nil
}
