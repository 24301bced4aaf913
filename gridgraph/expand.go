package gridgraph

import (
	"github.com/katalvlaran/bestfirst/search"
)

// ExpandIsland finds a minimum‐conversion path of “water” cells (value < LandThreshold)
// to connect any cell in component srcComp to any cell in component dstComp,
// as identified by ConnectedComponents(). Each water‐cell conversion costs 1.
// Returns the sequence of cell‐indices (row‐major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi‐source uniform-cost search from all srcComp cells:
//     • Moving into an existing land cell   → cost 0
//     • Moving into a water cell             → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct the path from the search's parent links.
//
// Extra search options (budget, context, stats) are forwarded to the engine;
// an interrupted search reports ErrNoPath.
//
// Complexity: O(W·H·log(W·H)).
// Memory:     O(W·H) for the path table and frontier.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int, opts ...search.Option) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	starts := make([]int, len(comps[srcComp]))
	copy(starts, comps[srcComp])
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	successors := func(u int) []search.Edge[int, int] {
		p := gg.PointAt(u)
		out := make([]search.Edge[int, int], 0, len(gg.neighborOffsets))
		for _, d := range gg.neighborOffsets {
			v := p.Add(d)
			if !gg.Contains(v) {
				continue
			}
			step := 0
			if gg.Value(v) < gg.LandThreshold {
				step = 1
			}
			out = append(out, search.Edge[int, int]{To: gg.Index(v), Cost: step})
		}
		return out
	}
	isGoal := func(u int) bool {
		_, ok := dstSet[u]
		return ok
	}

	path, cost, ok := search.Dijkstra(starts, successors, isGoal, opts...)
	if !ok {
		return nil, 0, ErrNoPath
	}
	return path, cost, nil
}
