package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/internal/batch"
	"github.com/katalvlaran/bestfirst/internal/config"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		input         string
		q             config.Query
		algo          string
		maxExpansions int
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Find the cheapest path between two vertices of a YAML graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gf, err := config.LoadFile(input)
			if err != nil {
				return err
			}
			if q.Algo, err = config.ParseAlgo(algo); err != nil {
				return err
			}
			q.MaxExpansions = maxExpansions
			gf.Queries = []config.Query{q}
			if err := gf.Validate(); err != nil {
				return err
			}
			g, err := gf.Build()
			if err != nil {
				return err
			}
			a.logger.Info("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "directed", g.Directed())

			res, err := batch.Solve(cmd.Context(), g, gf.Queries[0])
			if err != nil {
				return err
			}
			a.logger.Debug("search finished", "query", res.Query, "reason", res.Reason, "expanded", res.Stats.Expanded)

			if err := a.emit(res, func() { a.printResult(res) }); err != nil {
				return err
			}
			if !res.Found {
				return fmt.Errorf("%s: %w", res.Query, errNotFound)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML graph file (- for stdin)")
	cmd.Flags().StringVar(&q.From, "from", "", "start vertex")
	cmd.Flags().StringVar(&q.To, "to", "", "goal vertex")
	cmd.Flags().StringVar(&algo, "algo", string(config.AlgoDijkstra), "dijkstra or astar (zero heuristic)")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "give up after this many expansions (0 = unlimited)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
