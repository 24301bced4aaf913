package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/internal/batch"
)

const maze = `S..#
##.#
E..9
`

const graphYAML = `
directed: true
edges:
  - {from: A, to: B, weight: 3}
  - {from: A, to: C, weight: 2}
  - {from: B, to: C, weight: 5}
  - {from: B, to: D, weight: 2}
  - {from: B, to: G, weight: 7}
  - {from: C, to: E, weight: 2}
  - {from: C, to: F, weight: 9}
  - {from: D, to: E, weight: 8}
  - {from: D, to: F, weight: 1}
  - {from: E, to: G, weight: 3}
  - {from: F, to: G, weight: 6}
  - {from: F, to: H, weight: 7}
  - {from: F, to: K, weight: 8}
  - {from: G, to: I, weight: 6}
  - {from: G, to: J, weight: 9}
  - {from: H, to: I, weight: 7}
  - {from: H, to: J, weight: 2}
  - {from: I, to: K, weight: 4}
  - {from: J, to: K, weight: 6}
  - {from: J, to: L, weight: 4}
  - {from: K, to: L, weight: 5}
queries:
  - {name: a-l, from: A, to: L}
  - {name: c-j, from: C, to: J, algo: astar}
  - {name: back, from: L, to: A}
`

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGridCommand(t *testing.T) {
	path := writeFile(t, "maze.txt", maze)

	for _, algo := range []string{"astar", "dijkstra"} {
		out, _, err := run(t, "grid", "-i", path, "--algo", algo, "--render")
		require.NoError(t, err, algo)
		assert.Contains(t, out, "cost 6 in 6 steps", algo)
		assert.Contains(t, out, "S**#\n##*#\nE**9\n", algo)
	}
}

func TestGridCommand_JSON(t *testing.T) {
	path := writeFile(t, "maze.txt", maze)

	out, _, err := run(t, "--json", "grid", "-i", path, "--conn", "8", "--skip-stale")
	require.NoError(t, err)

	var res gridResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Found)
	assert.Equal(t, "astar", res.Algo)
	assert.Equal(t, "goal", res.Reason)
	assert.Equal(t, res.Steps, res.Cost, "every entered cell costs 1")
	assert.Equal(t, "0,0", res.Path[0])
	assert.Equal(t, "0,2", res.Path[len(res.Path)-1])
}

func TestGridCommand_NoPath(t *testing.T) {
	path := writeFile(t, "maze.txt", "S#E\n")

	out, _, err := run(t, "grid", "-i", path)
	assert.ErrorIs(t, err, errNotFound)
	assert.Contains(t, out, "no path (exhausted")

	out, _, err = run(t, "grid", "-i", path, "--algo", "dijkstra")
	assert.ErrorIs(t, err, errNotFound)
	assert.Contains(t, out, "no path (exhausted")
}

func TestGridCommand_BadInput(t *testing.T) {
	path := writeFile(t, "maze.txt", "S..\n")

	_, _, err := run(t, "grid", "-i", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'E'")

	_, _, err = run(t, "grid", "-i", path, "--conn", "6")
	assert.ErrorContains(t, err, "--conn")

	_, _, err = run(t, "grid", "-i", path, "--start", "SS")
	assert.ErrorContains(t, err, "--start")

	_, _, err = run(t, "grid", "-i", path, "--algo", "greedy")
	assert.Error(t, err)

	_, _, err = run(t, "grid", "-i", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestGraphCommand(t *testing.T) {
	path := writeFile(t, "graph.yaml", graphYAML)

	out, _, err := run(t, "graph", "-i", path, "--from", "A", "--to", "L")
	require.NoError(t, err)
	assert.Contains(t, out, "A->L: cost 19 via A -> B -> D -> F -> K -> L (expanded")

	out, _, err = run(t, "--json", "graph", "-i", path, "--from", "C", "--to", "J", "--algo", "astar")
	require.NoError(t, err)
	var res batch.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"C", "E", "G", "J"}, res.Path)
	assert.Equal(t, int64(14), res.Cost)

	_, _, err = run(t, "graph", "-i", path, "--from", "L", "--to", "A")
	assert.ErrorIs(t, err, errNotFound)

	_, _, err = run(t, "graph", "-i", path, "--from", "A", "--to", "Z")
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	path := writeFile(t, "graph.yaml", graphYAML)

	out, _, err := run(t, "--json", "batch", "-i", path, "-w", "2")
	require.NoError(t, err)

	var results []batch.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "a-l", results[0].Query)
	assert.Equal(t, int64(19), results[0].Cost)
	assert.Equal(t, "c-j", results[1].Query)
	assert.Equal(t, int64(14), results[1].Cost)
	assert.False(t, results[2].Found)

	out, _, err = run(t, "batch", "-i", path)
	require.NoError(t, err)
	assert.Contains(t, out, "back: no path (exhausted")
}

func TestBatchCommand_NoQueries(t *testing.T) {
	path := writeFile(t, "graph.yaml", "edges: [{from: A, to: B, weight: 1}]\n")
	_, _, err := run(t, "batch", "-i", path)
	assert.ErrorContains(t, err, "no queries")
}

func TestLogging(t *testing.T) {
	path := writeFile(t, "maze.txt", maze)

	_, errOut, err := run(t, "--log-level", "debug", "grid", "-i", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "maze loaded")
	assert.Contains(t, errOut, "search finished")

	_, _, err = run(t, "--log-level", "loud", "grid", "-i", path)
	assert.ErrorContains(t, err, "--log-level")
}
