package digraph_test

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/digraph"
	"github.com/katalvlaran/bestfirst/search"
)

// ExampleShortestPath builds a small undirected network and queries it.
//
//	P1───1───P2───3───P3
//	 │        │
//	 4        2
//	 │        │
//	P4───1───P5───5───P6
func ExampleShortestPath() {
	g := digraph.NewGraph[string, int](digraph.WithDirected(false))
	for _, e := range []struct {
		u, v string
		w    int
	}{
		{"P1", "P2", 1}, {"P2", "P3", 3}, {"P1", "P4", 4},
		{"P2", "P5", 2}, {"P4", "P5", 1}, {"P5", "P6", 5},
	} {
		_ = g.AddEdge(e.u, e.v, e.w)
	}

	path, cost, err := digraph.ShortestPath(g, "P1", "P6")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, cost)
	// Output: [P1 P2 P5 P6] 8
}

// ExampleGraph_Successors hands a Graph to the engine directly via a method value.
func ExampleGraph_Successors() {
	g := digraph.NewGraph[int, float64]()
	_ = g.AddEdge(1, 2, 0.5)
	_ = g.AddEdge(2, 3, 0.25)
	_ = g.AddEdge(1, 3, 1)

	path, cost, ok := search.AStar([]int{1}, g.Successors, nil, func(n int) bool { return n == 3 })
	fmt.Println(ok, path, cost)
	// Output: true [1 2 3] 0.75
}
