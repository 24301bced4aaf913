package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no path exists between the requested cells or components.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBlocked indicates an endpoint lies on a water/wall cell.
	ErrBlocked = errors.New("gridgraph: endpoint is not a land cell")
	// ErrNegativeCost indicates land cells with negative values, unusable as step costs.
	ErrNegativeCost = errors.New("gridgraph: land cell values must be non-negative step costs")
	// ErrBadRune indicates ParseText met a character its mapping does not know.
	ErrBadRune = errors.New("gridgraph: unmapped character")
	// ErrBadDirection indicates an unknown direction character.
	ErrBadDirection = errors.New("gridgraph: invalid direction")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built,
// so one GridGraph can serve concurrent searches.
//
// Width and Height define dimensions; CellValues[y][x] holds the input value.
// Land cells (value ≥ LandThreshold) are walkable and cost their value to enter.
// Conn and LandThreshold are set from GridOptions during construction.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets []Point
	minLand         int  // smallest land value, 0 if there is no land
	hasLand         bool // at least one land cell exists
}
