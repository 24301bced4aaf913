// Package batch answers many path queries over one shared graph concurrently.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bestfirst/digraph"
	"github.com/katalvlaran/bestfirst/internal/config"
	"github.com/katalvlaran/bestfirst/search"
)

// Result is the answer to one query. An unreachable goal is reported with
// Found=false, not as an error.
type Result struct {
	Query  string   `json:"query"`
	Algo   string   `json:"algo"`
	Found  bool     `json:"found"`
	Path   []string `json:"path,omitempty"`
	Cost   int64    `json:"cost"`
	Stats  Counters `json:"stats"`
	Reason string   `json:"reason"`
}

// Counters mirrors search.Stats for output.
type Counters struct {
	Expanded int `json:"expanded"`
	Pushed   int `json:"pushed"`
	Relaxed  int `json:"relaxed"`
	Stale    int `json:"stale"`
}

// Solve runs one query against g, honouring ctx. The only error it returns
// is ctx's, when the search was cancelled.
func Solve(ctx context.Context, g *digraph.Graph[string, int64], q config.Query) (Result, error) {
	var st search.Stats
	opts := []search.Option{search.WithContext(ctx), search.WithStats(&st)}
	if q.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(q.MaxExpansions))
	}
	isGoal := func(v string) bool { return v == q.To }
	starts := []string{q.From}

	var (
		path []string
		cost int64
		ok   bool
	)
	algo := q.Algo
	if algo == "" {
		algo = config.AlgoDijkstra
	}
	switch algo {
	case config.AlgoAStar:
		path, cost, ok = search.AStar(starts, g.Successors, estimator(q.Estimates), isGoal, opts...)
	default:
		path, cost, ok = search.Dijkstra(starts, g.Successors, isGoal, opts...)
	}
	if st.Reason == search.StopCanceled {
		return Result{}, st.Err
	}

	return Result{
		Query:  q.Label(),
		Algo:   string(algo),
		Found:  ok,
		Path:   path,
		Cost:   cost,
		Stats:  Counters{Expanded: st.Expanded, Pushed: st.Pushed, Relaxed: st.Relaxed, Stale: st.Stale},
		Reason: st.Reason.String(),
	}, nil
}

// estimator turns a table of estimates into a heuristic; nil means zero.
func estimator(h map[string]int64) search.HeuristicFunc[string, int64] {
	if len(h) == 0 {
		return nil
	}
	return func(v string) int64 { return h[v] }
}

// Run solves queries with at most workers goroutines (GOMAXPROCS when
// workers <= 0). Results keep the order of queries. Cancelling ctx stops the
// remaining work and Run returns ctx's error.
func Run(ctx context.Context, g *digraph.Graph[string, int64], queries []config.Query, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(queries))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		i, q := i, q
		grp.Go(func() error {
			res, err := Solve(gctx, g, q)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
