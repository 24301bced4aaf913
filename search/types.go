// Core types, callbacks and configuration options
// shared by the best-first search drivers (Dijkstra and A*).
//
// The engine never inspects node contents: a node is any comparable value used as
// a map key and emitted in the result path. Costs are numeric kinds supplying a
// zero value, a total order and addition.

package search

import (
	"context"
	"errors"
)

// Sentinel errors used by the search engine.
var (
	// ErrInvariant marks an internal invariant breach (e.g. reconstructing a path
	// for a node absent from the best-known-path table). It is only ever carried
	// by a panic and signals an implementation bug.
	ErrInvariant = errors.New("search: internal invariant violated")

	// ErrBadMaxExpansions indicates that WithMaxExpansions received a negative value.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")

	// ErrBudgetExceeded is reported through Stats.Err when the expansion budget
	// configured with WithMaxExpansions ran out before a goal was reached.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")
)

// Cost is the set of numeric kinds usable as edge and path costs.
// The zero value is the additive identity. Costs must be non-negative;
// this is a documented precondition and is not checked at runtime.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Edge is one (neighbor, edge-cost) pair produced by a successor function.
type Edge[N comparable, C Cost] struct {
	To   N // neighbor node
	Cost C // non-negative cost of the move
}

// SuccessorFunc returns the outgoing edges of a node. It must terminate for every
// node it is queried with; an empty result ends that branch of the search.
type SuccessorFunc[N comparable, C Cost] func(node N) []Edge[N, C]

// GoalFunc reports whether a node satisfies the search target.
type GoalFunc[N comparable] func(node N) bool

// HeuristicFunc estimates the remaining cost from a node to the nearest goal.
// Optimality of A* requires it to never overestimate (admissible).
type HeuristicFunc[N comparable, C Cost] func(node N) C

// Problem is the interface form of the callbacks consumed by SolveDijkstra.
type Problem[N comparable, C Cost] interface {
	Successors(node N) []Edge[N, C]
	IsGoal(node N) bool
}

// InformedProblem adds a heuristic to Problem and is consumed by SolveAStar.
type InformedProblem[N comparable, C Cost] interface {
	Problem[N, C]
	Heuristic(node N) C
}

// StopReason tells why a search loop terminated.
type StopReason int

const (
	// StopGoal means a popped node satisfied the goal predicate.
	StopGoal StopReason = iota
	// StopExhausted means the frontier emptied without reaching a goal.
	StopExhausted
	// StopBudget means the MaxExpansions budget ran out.
	StopBudget
	// StopCanceled means the context supplied via WithContext was done.
	StopCanceled
)

// String returns a lower-case name for the reason.
func (r StopReason) String() string {
	switch r {
	case StopGoal:
		return "goal"
	case StopExhausted:
		return "exhausted"
	case StopBudget:
		return "budget"
	case StopCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Stats collects counters of a single search run. Pass a pointer with WithStats;
// the driver resets it at the start of every call.
type Stats struct {
	Expanded int        // entries popped and expanded (goal pop excluded)
	Pushed   int        // entries pushed into the frontier, starts included
	Relaxed  int        // strict improvements recorded in the path table
	Stale    int        // popped entries skipped by WithSkipStale
	Reason   StopReason // why the loop terminated
	Err      error      // ErrBudgetExceeded or ctx.Err() when interrupted
}

// Option configures a search run via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a search run.
//
// SkipStale     – skip popped entries whose cost is worse than the recorded one.
// MaxExpansions – stop after this many expansions; 0 means unlimited.
// Ctx           – optional context checked once per pop; nil means never checked.
// Stats         – optional out-parameter receiving run counters.
type Options struct {
	SkipStale     bool
	MaxExpansions int
	Ctx           context.Context
	Stats         *Stats
}

// DefaultOptions returns the options used when no Option is supplied:
// stale entries are re-processed, no expansion budget, no context, no stats.
func DefaultOptions() Options {
	return Options{
		SkipStale:     false,
		MaxExpansions: 0,
		Ctx:           nil,
		Stats:         nil,
	}
}

// WithSkipStale makes the driver discard a popped entry whose accumulated cost is
// strictly greater than the cost recorded for its node. Both strategies return
// the same costs; skipping only saves repeated expansions.
func WithSkipStale() Option {
	return func(o *Options) {
		o.SkipStale = true
	}
}

// WithMaxExpansions caps the number of expanded entries. When the cap is hit the
// search reports "not found" and Stats.Reason == StopBudget.
// Panics with ErrBadMaxExpansions for negative n; 0 disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithContext attaches a context whose cancellation stops the search loop.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStats records run counters into s. A nil pointer is ignored.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		if s != nil {
			o.Stats = s
		}
	}
}

// buildOptions applies opts on top of DefaultOptions.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
