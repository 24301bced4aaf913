// Package gridgraph treats a 2D grid of cells as a graph for the best-first
// search engine in package search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Successors exposes land cells lazily: entering a cell costs its value.
//   - ShortestPath routes between two land cells with A* and an admissible
//     grid-metric heuristic.
//   - ConnectedComponents identifies “islands” of cells with value ≥ LandThreshold.
//   - ExpandIsland computes minimal water conversions between two islands with
//     a multi-source uniform-cost search.
//   - ParseText reads a maze from text and reports its marker cells.
//   - ToDigraph materialises the land cells as a *digraph.Graph.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland, ShortestPath: O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ToDigraph:           O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no path exists between the requested cells or components.
//   - ErrOutOfBounds, ErrBlocked: a ShortestPath endpoint is outside the grid or water.
//   - ErrNegativeCost: land values below zero cannot be step costs.
//   - ErrBadRune, ErrBadDirection: parse failures.
package gridgraph
