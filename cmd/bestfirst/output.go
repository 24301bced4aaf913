package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bestfirst/internal/batch"
	"github.com/katalvlaran/bestfirst/search"
)

// errNotFound makes the process exit non-zero after an unsuccessful query
// has been reported.
var errNotFound = errors.New("no path found")

func counters(st search.Stats) batch.Counters {
	return batch.Counters{Expanded: st.Expanded, Pushed: st.Pushed, Relaxed: st.Relaxed, Stale: st.Stale}
}

// emit writes v as indented JSON when --json is set, otherwise calls text.
func (a *app) emit(v any, text func()) error {
	if !a.json {
		text()
		return nil
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult renders one graph query in text form.
func (a *app) printResult(r batch.Result) {
	if !r.Found {
		fmt.Fprintf(a.out, "%s: no path (%s, expanded %d)\n", r.Query, r.Reason, r.Stats.Expanded)
		return
	}
	fmt.Fprintf(a.out, "%s: cost %d via %s (expanded %d)\n",
		r.Query, r.Cost, strings.Join(r.Path, " -> "), r.Stats.Expanded)
}
