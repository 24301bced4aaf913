package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/gridgraph"
)

// ExampleGridGraph_ConnectedComponents identifies contiguous “islands” of
// non-zero cells. Values 1, 2 and 3 all count as land (threshold 1), so the
// 3 in the corner joins the first island through (0,1).
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			fmt.Printf(" (%v)", gg.PointAt(idx))
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

// ExampleGridGraph_ExpandIsland computes the minimal number of water cells
// to convert so that two islands touch.
func ExampleGridGraph_ExpandIsland() {
	grid := [][]int{
		{1, 1, 0, 0, 0, 2},
		{1, 0, 0, 0, 0, 2},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	path, cost, _ := gg.ExpandIsland(0, 1)
	fmt.Printf("convert %d water cells:", cost)
	for _, idx := range path {
		fmt.Printf(" (%v)", gg.PointAt(idx))
	}
	fmt.Println()

	// Output:
	// convert 3 water cells: (1,0) (2,0) (3,0) (4,0) (5,0)
}

// ExampleParseText reads a maze, finds its S and E markers and routes between them.
func ExampleParseText() {
	maze := `
S..#
##.#
E..9
`
	parsed, err := gridgraph.ParseText(maze, nil, gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := parsed.Marker('S')
	end, _ := parsed.Marker('E')

	path, cost, err := parsed.Grid.ShortestPath(start, end)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cost, path)

	// Output:
	// 6 [0,0 1,0 2,0 2,1 2,2 1,2 0,2]
}
