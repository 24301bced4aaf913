package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFrontier_PopsByPriority checks ascending priority order.
func TestFrontier_PopsByPriority(t *testing.T) {
	f := newFrontier[string, int](0)
	f.push("c", 7, 7)
	f.push("a", 1, 1)
	f.push("b", 4, 4)

	var got []string
	for {
		e, ok := f.pop()
		if !ok {
			break
		}
		got = append(got, e.node)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, f.len())
}

// TestFrontier_TieBreakPrefersLargerCost checks the A* tie rule:
// equal estimate → larger accumulated cost first.
func TestFrontier_TieBreakPrefersLargerCost(t *testing.T) {
	f := newFrontier[string, int](4)
	f.push("near-start", 10, 2)
	f.push("near-goal", 10, 8)
	f.push("middle", 10, 5)
	f.push("cheap", 3, 3)

	order := make([]string, 0, 4)
	for f.len() > 0 {
		e, _ := f.pop()
		order = append(order, e.node)
	}
	assert.Equal(t, []string{"cheap", "near-goal", "middle", "near-start"}, order)
}

// TestFrontier_FullTieIsFIFO checks insertion order on identical keys.
func TestFrontier_FullTieIsFIFO(t *testing.T) {
	f := newFrontier[int, float64](0)
	for i := 0; i < 5; i++ {
		f.push(i, 1.5, 1.5)
	}
	for i := 0; i < 5; i++ {
		e, ok := f.pop()
		require.True(t, ok)
		assert.Equal(t, i, e.node)
	}
	_, ok := f.pop()
	assert.False(t, ok)
}

// TestFrontier_DuplicatesCoexist shows there is no decrease-key.
func TestFrontier_DuplicatesCoexist(t *testing.T) {
	f := newFrontier[string, int](0)
	f.push("x", 9, 9)
	f.push("x", 2, 2)
	require.Equal(t, 2, f.len())

	first, _ := f.pop()
	second, _ := f.pop()
	assert.Equal(t, 2, first.cost)
	assert.Equal(t, 9, second.cost)
}

// ------------------------------------------------------------------------
// Best-known-path table and reconstruction.
// ------------------------------------------------------------------------

func TestPathTable_RelaxIsStrict(t *testing.T) {
	tbl := make(pathTable[string, int])
	require.True(t, tbl.seed("s"))
	require.False(t, tbl.seed("s"), "duplicate start")

	assert.True(t, tbl.relax("a", "s", 5))
	assert.False(t, tbl.relax("a", "s", 5), "equal cost must not relax")
	assert.False(t, tbl.relax("a", "s", 6))
	assert.True(t, tbl.relax("a", "s", 4))
	assert.Equal(t, 4, tbl.costOf("a"))

	// A start is never re-parented by an equal (zero) cost.
	assert.False(t, tbl.relax("s", "a", 0))
}

func TestPathTable_PathTo(t *testing.T) {
	tbl := make(pathTable[string, int])
	tbl.seed("A")
	tbl.relax("B", "A", 3)
	tbl.relax("D", "B", 5)
	tbl.relax("F", "D", 6)

	assert.Equal(t, []string{"A", "B", "D", "F"}, tbl.pathTo("F"))
	assert.Equal(t, []string{"A"}, tbl.pathTo("A"), "start yields a single-node path")
}

func TestPathTable_MissingNodePanics(t *testing.T) {
	tbl := make(pathTable[string, int])
	tbl.seed("A")

	assertInvariantPanic(t, func() { tbl.pathTo("ghost") })
	assertInvariantPanic(t, func() { tbl.costOf("ghost") })
}

func TestPathTable_CyclePanics(t *testing.T) {
	tbl := pathTable[string, int]{
		"A": {parent: "B", hasParent: true, cost: 1},
		"B": {parent: "A", hasParent: true, cost: 1},
	}
	assertInvariantPanic(t, func() { tbl.pathTo("A") })
}

func assertInvariantPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic payload must be an error, got %T", r)
		assert.True(t, errors.Is(err, ErrInvariant))
	}()
	fn()
}

func TestBuildOptions(t *testing.T) {
	var st Stats
	cfg := buildOptions([]Option{WithSkipStale(), WithMaxExpansions(7), WithStats(&st), WithContext(nil), WithStats(nil)})
	assert.True(t, cfg.SkipStale)
	assert.Equal(t, 7, cfg.MaxExpansions)
	assert.Nil(t, cfg.Ctx)
	assert.Same(t, &st, cfg.Stats)

	assert.Equal(t, DefaultOptions(), buildOptions(nil))
}

func TestStopReason_String(t *testing.T) {
	assert.Equal(t, "goal", StopGoal.String())
	assert.Equal(t, "exhausted", StopExhausted.String())
	assert.Equal(t, "budget", StopBudget.String())
	assert.Equal(t, "canceled", StopCanceled.String())
	assert.Equal(t, "unknown", StopReason(42).String())
}
