// Package config loads the YAML graph files consumed by the bestfirst CLI:
// a weighted edge list plus an optional list of path queries.
//
//	directed: true
//	edges:
//	  - {from: A, to: B, weight: 3}
//	queries:
//	  - {name: a-to-b, from: A, to: B, algo: astar, estimates: {A: 3}}
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bestfirst/digraph"
)

// Sentinel errors returned by Load and Validate.
var (
	// ErrEmptyFile indicates the input held no YAML document.
	ErrEmptyFile = errors.New("config: empty graph file")
	// ErrEmptyVertex indicates an edge or query with a blank vertex name.
	ErrEmptyVertex = errors.New("config: vertex name must not be empty")
	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("config: negative edge weight")
	// ErrUnknownVertex indicates a query endpoint that no edge mentions.
	ErrUnknownVertex = errors.New("config: query references unknown vertex")
	// ErrBadAlgo indicates an algorithm name other than dijkstra or astar.
	ErrBadAlgo = errors.New("config: unknown algorithm")
	// ErrNegativeEstimate indicates a heuristic estimate below zero.
	ErrNegativeEstimate = errors.New("config: negative heuristic estimate")
	// ErrBadBudget indicates a negative max_expansions.
	ErrBadBudget = errors.New("config: max_expansions must be non-negative")
)

// Algo names a search strategy.
type Algo string

const (
	// AlgoDijkstra is uniform-cost search.
	AlgoDijkstra Algo = "dijkstra"
	// AlgoAStar is heuristic search.
	AlgoAStar Algo = "astar"
)

// ParseAlgo maps a user string to an Algo. The empty string means AlgoDijkstra.
func ParseAlgo(s string) (Algo, error) {
	switch Algo(s) {
	case "", AlgoDijkstra:
		return AlgoDijkstra, nil
	case AlgoAStar:
		return AlgoAStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadAlgo, s)
	}
}

// EdgeSpec is one weighted edge.
type EdgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Query asks for the cheapest path between two vertices.
type Query struct {
	Name string `yaml:"name"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Algo Algo   `yaml:"algo"`
	// Estimates is the A* heuristic towards To; missing vertices estimate 0.
	Estimates map[string]int64 `yaml:"estimates,omitempty"`
	// MaxExpansions caps the search; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions,omitempty"`
}

// Label returns Name, or "from->to" when Name is blank.
func (q Query) Label() string {
	if q.Name != "" {
		return q.Name
	}
	return q.From + "->" + q.To
}

// GraphFile is the decoded YAML document.
type GraphFile struct {
	Directed bool       `yaml:"directed"`
	Edges    []EdgeSpec `yaml:"edges"`
	Queries  []Query    `yaml:"queries"`
}

// Load decodes a GraphFile from r and validates it. Unknown keys are rejected.
func Load(r io.Reader) (*GraphFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var gf GraphFile
	if err := dec.Decode(&gf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("config: decoding graph file: %w", err)
	}
	if err := gf.Validate(); err != nil {
		return nil, err
	}

	return &gf, nil
}

// LoadFile opens path and calls Load. The path "-" reads standard input.
func LoadFile(path string) (*GraphFile, error) {
	if path == "-" {
		return Load(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: opening graph file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks edges first, then every query, and reports the first problem.
// A blank query Algo is normalised to AlgoDijkstra.
func (gf *GraphFile) Validate() error {
	known := make(map[string]struct{}, len(gf.Edges)*2)
	for i, e := range gf.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge #%d", ErrEmptyVertex, i)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s->%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		known[e.From] = struct{}{}
		known[e.To] = struct{}{}
	}

	for i := range gf.Queries {
		q := &gf.Queries[i]
		if q.From == "" || q.To == "" {
			return fmt.Errorf("%w: query %q", ErrEmptyVertex, q.Label())
		}
		for _, v := range []string{q.From, q.To} {
			if _, ok := known[v]; !ok {
				return fmt.Errorf("%w: query %q vertex %q", ErrUnknownVertex, q.Label(), v)
			}
		}
		algo, err := ParseAlgo(string(q.Algo))
		if err != nil {
			return fmt.Errorf("query %q: %w", q.Label(), err)
		}
		q.Algo = algo
		for v, h := range q.Estimates {
			if h < 0 {
				return fmt.Errorf("%w: query %q vertex %q estimate=%d", ErrNegativeEstimate, q.Label(), v, h)
			}
		}
		if q.MaxExpansions < 0 {
			return fmt.Errorf("%w: query %q", ErrBadBudget, q.Label())
		}
	}

	return nil
}

// Build materialises the edges as a graph. Validate must have succeeded.
func (gf *GraphFile) Build() (*digraph.Graph[string, int64], error) {
	g := digraph.NewGraph[string, int64](digraph.WithDirected(gf.Directed))
	for _, e := range gf.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
