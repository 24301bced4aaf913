package gridgraph

import (
	"github.com/katalvlaran/bestfirst/digraph"
	"github.com/katalvlaran/bestfirst/search"
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation, tracking the cheapest land cell.
	gg := &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    make([][]int, h),
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
	}
	for y := 0; y < h; y++ {
		gg.CellValues[y] = make([]int, w)
		copy(gg.CellValues[y], values[y])
		for _, v := range values[y] {
			if v < opts.LandThreshold {
				continue
			}
			if !gg.hasLand || v < gg.minLand {
				gg.minLand = v
			}
			gg.hasLand = true
		}
	}
	// Precompute neighbor offsets based on connectivity
	if opts.Conn == Conn8 {
		gg.neighborOffsets = offsets8
	} else {
		gg.neighborOffsets = offsets4
	}

	return gg, nil
}

// From2D is NewGridGraph with the default land threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies inside the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether p lies inside the grid.
func (gg *GridGraph) Contains(p Point) bool {
	return gg.InBounds(p.X, p.Y)
}

// Value returns the cell value at p. p must be in bounds.
func (gg *GridGraph) Value(p Point) int {
	return gg.CellValues[p.Y][p.X]
}

// Passable reports whether p is an in-bounds land cell.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.Contains(p) && gg.CellValues[p.Y][p.X] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []Point {
	return gg.neighborOffsets
}

// Successors returns the land neighbors of p, each weighted by the value of the
// entered cell. Water cells and p itself (if water) have no successors.
// The signature matches search.SuccessorFunc.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Successors(p Point) []search.Edge[Point, int] {
	if !gg.Passable(p) {
		return nil
	}
	out := make([]search.Edge[Point, int], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := p.Add(d)
		if !gg.Passable(n) {
			continue
		}
		out = append(out, search.Edge[Point, int]{To: n, Cost: gg.Value(n)})
	}

	return out
}

// ToDigraph converts the land cells into a directed *digraph.Graph keyed by Point.
// Every land cell becomes a vertex; an edge u→v exists for every pair of
// neighboring land cells, weighted by the value of v (the cell entered).
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToDigraph() (*digraph.Graph[Point, int], error) {
	g := digraph.NewGraph[Point, int]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := Pt(x, y)
			if !gg.Passable(u) {
				continue
			}
			g.AddVertex(u)
			for _, e := range gg.Successors(u) {
				if err := g.AddEdge(u, e.To, e.Cost); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Index maps p to its row-major index.
func (gg *GridGraph) Index(p Point) int {
	return gg.index(p.X, p.Y)
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// PointAt converts a row-major index back to a Point.
func (gg *GridGraph) PointAt(idx int) Point {
	x, y := gg.Coordinate(idx)
	return Pt(x, y)
}
