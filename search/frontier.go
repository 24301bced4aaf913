package search

import "container/heap"

// entry is a frontier element.
//
// priority – ordering key: accumulated cost (Dijkstra) or cost + heuristic (A*).
// cost     – accumulated cost from a start node along the path that pushed it.
// seq      – insertion counter, the last-resort tie-break.
type entry[N comparable, C Cost] struct {
	priority C
	cost     C
	node     N
	seq      uint64
}

// before reports whether a must pop ahead of b.
// Lower priority first; on equal priority the larger accumulated cost wins,
// since it implies a smaller heuristic remainder; then insertion order.
func (a *entry[N, C]) before(b *entry[N, C]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cost != b.cost {
		return a.cost > b.cost
	}

	return a.seq < b.seq
}

// entryHeap implements heap.Interface over entries.
// Stale duplicates of a node may coexist; there is no decrease-key.
type entryHeap[N comparable, C Cost] []entry[N, C]

// Len returns the number of queued entries.
func (h entryHeap[N, C]) Len() int { return len(h) }

// Less orders entries with entry.before.
func (h entryHeap[N, C]) Less(i, j int) bool { return h[i].before(&h[j]) }

// Swap swaps two entries.
func (h entryHeap[N, C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *entryHeap[N, C]) Push(x any) { *h = append(*h, x.(entry[N, C])) }

// Pop removes the last element; called by heap.Pop only.
func (h *entryHeap[N, C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero entry[N, C]
	old[n-1] = zero // drop the node reference
	*h = old[:n-1]

	return item
}

// frontier is the priority-ordered set of nodes awaiting expansion.
type frontier[N comparable, C Cost] struct {
	items entryHeap[N, C]
	seq   uint64
}

// newFrontier returns an empty frontier with room for capacity entries.
func newFrontier[N comparable, C Cost](capacity int) *frontier[N, C] {
	return &frontier[N, C]{items: make(entryHeap[N, C], 0, capacity)}
}

// push queues node with the given priority and accumulated cost.
func (f *frontier[N, C]) push(node N, priority, cost C) {
	heap.Push(&f.items, entry[N, C]{
		priority: priority,
		cost:     cost,
		node:     node,
		seq:      f.seq,
	})
	f.seq++
}

// pop removes and returns the entry with the least priority.
// ok is false when the frontier is empty.
func (f *frontier[N, C]) pop() (e entry[N, C], ok bool) {
	if len(f.items) == 0 {
		return e, false
	}

	return heap.Pop(&f.items).(entry[N, C]), true
}

// len returns the number of queued entries, stale ones included.
func (f *frontier[N, C]) len() int { return len(f.items) }
