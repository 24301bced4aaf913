package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/gridgraph"
	"github.com/katalvlaran/bestfirst/internal/batch"
	"github.com/katalvlaran/bestfirst/internal/config"
	"github.com/katalvlaran/bestfirst/search"
)

// gridResult is the JSON form of a maze query.
type gridResult struct {
	Algo   string         `json:"algo"`
	Found  bool           `json:"found"`
	Cost   int            `json:"cost"`
	Steps  int            `json:"steps"`
	Path   []string       `json:"path,omitempty"`
	Stats  batch.Counters `json:"stats"`
	Reason string         `json:"reason"`
}

type gridFlags struct {
	input         string
	algo          string
	conn          int
	startMarker   string
	endMarker     string
	maxExpansions int
	skipStale     bool
	render        bool
}

func newGridCmd(a *app) *cobra.Command {
	var f gridFlags

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Find the cheapest route through a text maze",
		Long: `grid reads a maze where '#' is a wall, '.' costs 1 to enter, digits
cost their value and capital letters are markers on open floor. The route
runs from the start marker (S) to the end marker (E).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGrid(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "maze text file (- for stdin)")
	cmd.Flags().StringVar(&f.algo, "algo", string(config.AlgoAStar), "astar or dijkstra")
	cmd.Flags().IntVar(&f.conn, "conn", 4, "neighbor connectivity: 4 or 8")
	cmd.Flags().StringVar(&f.startMarker, "start", "S", "start marker character")
	cmd.Flags().StringVar(&f.endMarker, "end", "E", "end marker character")
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "give up after this many expansions (0 = unlimited)")
	cmd.Flags().BoolVar(&f.skipStale, "skip-stale", false, "discard outdated frontier entries instead of re-expanding them")
	cmd.Flags().BoolVar(&f.render, "render", false, "print the maze with the route marked '*'")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) runGrid(cmd *cobra.Command, f gridFlags) error {
	algo, err := config.ParseAlgo(f.algo)
	if err != nil {
		return err
	}
	opts := gridgraph.DefaultGridOptions()
	switch f.conn {
	case 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return fmt.Errorf("invalid --conn %d: want 4 or 8", f.conn)
	}
	start, err := markerRune("start", f.startMarker)
	if err != nil {
		return err
	}
	end, err := markerRune("end", f.endMarker)
	if err != nil {
		return err
	}

	text, err := readInput(f.input)
	if err != nil {
		return err
	}
	parsed, err := gridgraph.ParseText(text, nil, opts)
	if err != nil {
		return err
	}
	gg := parsed.Grid
	from, ok := parsed.Marker(start)
	if !ok {
		return fmt.Errorf("maze must contain exactly one %q marker, found %d", start, len(parsed.Markers[start]))
	}
	to, ok := parsed.Marker(end)
	if !ok {
		return fmt.Errorf("maze must contain exactly one %q marker, found %d", end, len(parsed.Markers[end]))
	}
	a.logger.Info("maze loaded", "width", gg.Width, "height", gg.Height, "from", from, "to", to)

	var st search.Stats
	sopts := []search.Option{search.WithContext(cmd.Context()), search.WithStats(&st)}
	if f.maxExpansions > 0 {
		sopts = append(sopts, search.WithMaxExpansions(f.maxExpansions))
	}
	if f.skipStale {
		sopts = append(sopts, search.WithSkipStale())
	}

	var (
		path  []gridgraph.Point
		cost  int
		found bool
	)
	switch algo {
	case config.AlgoAStar:
		path, cost, err = gg.ShortestPath(from, to, sopts...)
		found = err == nil
		if err != nil && !errors.Is(err, gridgraph.ErrNoPath) {
			return err
		}
	default:
		path, cost, found = search.Dijkstra([]gridgraph.Point{from}, gg.Successors,
			func(p gridgraph.Point) bool { return p == to }, sopts...)
	}
	if st.Reason == search.StopCanceled {
		return st.Err
	}
	a.logger.Debug("search finished", "algo", algo, "reason", st.Reason, "expanded", st.Expanded, "stale", st.Stale)

	res := gridResult{
		Algo:   string(algo),
		Found:  found,
		Cost:   cost,
		Stats:  counters(st),
		Reason: st.Reason.String(),
	}
	if found {
		res.Steps = len(path) - 1
		for _, p := range path {
			res.Path = append(res.Path, p.String())
		}
	}

	err = a.emit(res, func() {
		if !found {
			fmt.Fprintf(a.out, "no path (%s, expanded %d)\n", res.Reason, res.Stats.Expanded)
			return
		}
		fmt.Fprintf(a.out, "cost %d in %d steps (expanded %d)\n", res.Cost, res.Steps, res.Stats.Expanded)
		if f.render {
			fmt.Fprint(a.out, renderRoute(parsed, path))
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return errNotFound
	}
	return nil
}

// markerRune checks that a marker flag names exactly one character.
func markerRune(name, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("invalid --%s %q: want a single character", name, s)
	}
	return r, nil
}

// readInput returns the contents of path, or standard input for "-".
func readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading maze: %w", err)
	}
	return string(data), nil
}

// renderRoute redraws the maze: walls '#', floor '.', other terrain its digit,
// markers as themselves and the interior of the route as '*'.
func renderRoute(parsed *gridgraph.Parsed, path []gridgraph.Point) string {
	gg := parsed.Grid
	canvas := make([][]rune, gg.Height)
	for y := range canvas {
		canvas[y] = make([]rune, gg.Width)
		for x := range canvas[y] {
			v := gg.Value(gridgraph.Pt(x, y))
			switch {
			case v < gg.LandThreshold:
				canvas[y][x] = '#'
			case v == 1:
				canvas[y][x] = '.'
			case v >= 2 && v <= 9:
				canvas[y][x] = rune('0' + v)
			default:
				canvas[y][x] = '?'
			}
		}
	}
	for i, p := range path {
		if i == 0 || i == len(path)-1 {
			continue
		}
		canvas[p.Y][p.X] = '*'
	}
	for r, pts := range parsed.Markers {
		for _, p := range pts {
			canvas[p.Y][p.X] = r
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
