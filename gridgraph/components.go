package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major). Components are ordered by their first cell in row-major scan
// order, and cells within a component in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] < gg.LandThreshold {
				continue // water
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				p := gg.PointAt(u)
				for _, d := range gg.neighborOffsets {
					v := p.Add(d)
					if !gg.Passable(v) {
						continue
					}
					vi := gg.Index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// ComponentOf returns the index into ConnectedComponents() of the island
// containing p, or -1 if p is out of bounds or water.
func (gg *GridGraph) ComponentOf(p Point) int {
	if !gg.Passable(p) {
		return -1
	}
	target := gg.Index(p)
	for ci, comp := range gg.ConnectedComponents() {
		for _, i := range comp {
			if i == target {
				return ci
			}
		}
	}
	return -1
}
