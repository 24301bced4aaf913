package search

// runner holds the mutable state of a single search invocation.
// Nothing in it outlives the call that created it.
type runner[N comparable, C Cost] struct {
	successors SuccessorFunc[N, C]
	heuristic  HeuristicFunc[N, C] // nil for uniform-cost search
	isGoal     GoalFunc[N]
	options    Options
	table      pathTable[N, C]
	open       *frontier[N, C]
	stats      Stats
}

// newRunner wires the callbacks and allocates fresh per-call structures.
func newRunner[N comparable, C Cost](
	successors SuccessorFunc[N, C],
	heuristic HeuristicFunc[N, C],
	isGoal GoalFunc[N],
	opts []Option,
	sizeHint int,
) *runner[N, C] {
	return &runner[N, C]{
		successors: successors,
		heuristic:  heuristic,
		isGoal:     isGoal,
		options:    buildOptions(opts),
		table:      make(pathTable[N, C], sizeHint),
		open:       newFrontier[N, C](sizeHint),
	}
}

// init seeds every start node at cost zero, without parent, priority zero.
func (r *runner[N, C]) init(starts []N) {
	var zero C
	for _, s := range starts {
		if !r.table.seed(s) {
			continue // duplicate start
		}
		r.open.push(s, zero, zero)
		r.stats.Pushed++
	}
}

// process is the control loop: pop the cheapest entry, test the goal, otherwise
// expand and relax its successors. It returns the reached node, if any.
//
// Loop termination conditions:
//
//   - a popped node satisfies the goal predicate (StopGoal);
//   - the frontier is empty (StopExhausted);
//   - the expansion budget is spent (StopBudget);
//   - the optional context is done (StopCanceled).
func (r *runner[N, C]) process() (target N, found bool) {
	ctx := r.options.Ctx
	for {
		// 1) Honour cancellation before doing any more work.
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				r.stats.Reason, r.stats.Err = StopCanceled, err
				return target, false
			}
		}

		// 2) Pop the minimum-priority entry.
		e, ok := r.open.pop()
		if !ok {
			r.stats.Reason = StopExhausted
			return target, false
		}

		// 3) Optionally drop entries superseded by a cheaper path.
		if r.options.SkipStale && r.table.costOf(e.node) < e.cost {
			r.stats.Stale++
			continue
		}

		// 4) Goal test on pop, not on push.
		if r.isGoal(e.node) {
			r.stats.Reason = StopGoal
			return e.node, true
		}

		// 5) Budget check happens only for nodes we are about to expand.
		if r.options.MaxExpansions > 0 && r.stats.Expanded >= r.options.MaxExpansions {
			r.stats.Reason, r.stats.Err = StopBudget, ErrBudgetExceeded
			return target, false
		}
		r.stats.Expanded++

		r.relax(e.node, e.cost)
	}
}

// relax examines every successor of node, reached at accumulated cost, and records
// strictly cheaper paths. Each improvement pushes a new frontier entry; older
// entries for the same neighbor stay queued (lazy decrease-key).
func (r *runner[N, C]) relax(node N, cost C) {
	for _, edge := range r.successors(node) {
		newCost := cost + edge.Cost
		if !r.table.relax(edge.To, node, newCost) {
			continue
		}
		r.stats.Relaxed++

		priority := newCost
		if r.heuristic != nil {
			priority = newCost + r.heuristic(edge.To)
		}
		r.open.push(edge.To, priority, newCost)
		r.stats.Pushed++
	}
}

// run executes the whole search and packs the result.
// The returned cost is the recorded table cost of the reached node.
func (r *runner[N, C]) run(starts []N) (path []N, cost C, ok bool) {
	r.init(starts)
	target, found := r.process()
	if r.options.Stats != nil {
		*r.options.Stats = r.stats
	}
	if !found {
		return nil, cost, false
	}

	return r.table.pathTo(target), r.table.costOf(target), true
}
