package gridgraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := From2D(grid, Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_Diagonal8 uses diagonal connectivity to catch
// “touching corners” islands.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect through diagonal hops into a single island;
// with Conn4 every one is isolated.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg8, err := From2D(grid, Conn8)
	require.NoError(t, err)
	comps := gg8.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	gg4, err := From2D(grid, Conn4)
	require.NoError(t, err)
	assert.Len(t, gg4.ConnectedComponents(), 9)
}

// TestConnectedComponents_Edge covers all-water and single-land grids.
func TestConnectedComponents_Edge(t *testing.T) {
	gg, err := From2D([][]int{{0, 0}, {0, 0}}, Conn4)
	require.NoError(t, err)
	assert.Empty(t, gg.ConnectedComponents())

	gg2, err := From2D([][]int{{0, 1}}, Conn4)
	require.NoError(t, err)
	comps := gg2.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []int{1}, comps[0])
}

// TestConnectedComponents_Threshold shows that raising LandThreshold turns
// low cells into water and splits islands.
func TestConnectedComponents_Threshold(t *testing.T) {
	grid := [][]int{{3, 1, 3}}
	gg, err := NewGridGraph(grid, GridOptions{LandThreshold: 2, Conn: Conn4})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {2}}, gg.ConnectedComponents())

	assert.Equal(t, 0, gg.ComponentOf(Pt(0, 0)))
	assert.Equal(t, 1, gg.ComponentOf(Pt(2, 0)))
	assert.Equal(t, -1, gg.ComponentOf(Pt(1, 0)), "water")
	assert.Equal(t, -1, gg.ComponentOf(Pt(9, 0)), "out of bounds")
}

// TestConnectedComponents_InvalidRects ensures From2D rejects bad inputs.
func TestConnectedComponents_InvalidRects(t *testing.T) {
	_, err := From2D(nil, Conn4)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = From2D([][]int{{1}, {}}, Conn4)
	assert.ErrorIs(t, err, ErrNonRectangular)
}
