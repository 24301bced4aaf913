package search

import "fmt"

// record is the best-known (parent, cost) pair of a node.
// Start nodes have hasParent == false.
type record[N comparable, C Cost] struct {
	parent    N
	hasParent bool
	cost      C
}

// pathTable maps every discovered node to its cheapest known predecessor and cost.
// Entries are overwritten only on strict improvement and never removed.
type pathTable[N comparable, C Cost] map[N]record[N, C]

// invariantError is the panic payload raised on internal contract breaches.
type invariantError struct {
	msg string
}

func (e *invariantError) Error() string { return ErrInvariant.Error() + ": " + e.msg }

// Unwrap lets errors.Is match ErrInvariant on a recovered payload.
func (e *invariantError) Unwrap() error { return ErrInvariant }

// seed records node as a start: no parent, zero cost.
// It reports false when node was already seeded (duplicate start).
func (t pathTable[N, C]) seed(node N) bool {
	if _, dup := t[node]; dup {
		return false
	}
	var zero C
	t[node] = record[N, C]{cost: zero}

	return true
}

// relax stores (parent, cost) for node if node is unknown or cost is strictly
// cheaper than the recorded one. It reports whether the table changed.
func (t pathTable[N, C]) relax(node, parent N, cost C) bool {
	if cur, ok := t[node]; ok && !(cost < cur.cost) {
		return false
	}
	t[node] = record[N, C]{parent: parent, hasParent: true, cost: cost}

	return true
}

// costOf returns the recorded cost of node. Panics if node is absent.
func (t pathTable[N, C]) costOf(node N) C {
	rec, ok := t[node]
	if !ok {
		panic(&invariantError{msg: fmt.Sprintf("no table entry for reached node %v", node)})
	}

	return rec.cost
}

// pathTo walks parent pointers back from target to a start node and returns the
// forward-ordered path, target included. A start node yields a one-element path.
//
// Panics with an ErrInvariant payload if a node on the walk is absent from the
// table or if the walk exceeds the table size (a parent cycle).
func (t pathTable[N, C]) pathTo(target N) []N {
	reverse := []N{target}
	current := target
	for {
		rec, ok := t[current]
		if !ok {
			panic(&invariantError{msg: fmt.Sprintf("no table entry for %v", current)})
		}
		if !rec.hasParent {
			break
		}
		if len(reverse) > len(t) {
			panic(&invariantError{msg: fmt.Sprintf("parent cycle through %v", current)})
		}
		current = rec.parent
		reverse = append(reverse, current)
	}

	// reverse in place
	for i, j := 0, len(reverse)-1; i < j; i, j = i+1, j-1 {
		reverse[i], reverse[j] = reverse[j], reverse[i]
	}

	return reverse
}
