package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands.
type app struct {
	out      io.Writer
	errOut   io.Writer
	logLevel string
	json     bool
	logger   *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "bestfirst",
		Short: "Shortest paths with uniform-cost search and A*",
		Long: `bestfirst answers cheapest-path questions over text mazes and
weighted graphs described in YAML, using uniform-cost search (Dijkstra) or A*.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.errOut, a.logLevel, a.json)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "emit results and logs as JSON")

	root.AddCommand(newGridCmd(a), newGraphCmd(a), newBatchCmd(a))

	return root
}

// newLogger builds a slog logger writing to w at the named level.
func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
